// Package matrix builds binary variant-by-donor carrier matrices and
// reduces them to per-donor burden counts.
package matrix

import (
	"errors"
	"fmt"
	"github.com/dasnellings/meiTools/genotype"
	"github.com/dasnellings/meiTools/mei"
	"golang.org/x/exp/slices"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"io"
	"strings"
)

// ErrDonorMismatch is returned by Concat when the inputs do not share donor columns.
var ErrDonorMismatch = errors.New("carrier matrices have different donor columns")

// ErrCategoryMismatch is returned by Builder.Add for a variant of another category.
var ErrCategoryMismatch = errors.New("variant category does not match matrix")

// Stats tallies genotype calls that encoded to 0 without being an explicit call.
type Stats struct {
	Unrecognized int // code present but not one of 0/0, 0/1, 1/1, 0, 1
	Absent       int // donor missing from the variant's genotype mapping
}

func (s Stats) add(o Stats) Stats {
	return Stats{Unrecognized: s.Unrecognized + o.Unrecognized, Absent: s.Absent + o.Absent}
}

// Carrier is an immutable variant-by-donor matrix with cells of 0 or 1.
type Carrier struct {
	variants []string
	donors   []string
	rowIdx   map[string]int
	colIdx   map[string]int
	cells    *mat.Dense // nil when there are no rows or no donors
	stats    Stats
}

func newCarrier(variants, donors []string, cells *mat.Dense, stats Stats) *Carrier {
	c := &Carrier{
		variants: variants,
		donors:   donors,
		rowIdx:   make(map[string]int, len(variants)),
		colIdx:   make(map[string]int, len(donors)),
		cells:    cells,
		stats:    stats,
	}
	// duplicate ids only arise from concatenation across categories; the
	// first row wins for At and RowSum lookups.
	for i := len(variants) - 1; i >= 0; i-- {
		c.rowIdx[variants[i]] = i
	}
	for j := range donors {
		c.colIdx[donors[j]] = j
	}
	return c
}

// Dims returns the number of variant rows and donor columns.
func (c *Carrier) Dims() (rows, cols int) {
	return len(c.variants), len(c.donors)
}

func (c *Carrier) Variants() []string { return c.variants }

func (c *Carrier) Donors() []string { return c.donors }

func (c *Carrier) Stats() Stats { return c.stats }

// At returns the carrier flag for variant id and donor. found is false if
// either is not part of the matrix.
func (c *Carrier) At(id, donor string) (flag uint8, found bool) {
	i, rowFound := c.rowIdx[id]
	j, colFound := c.colIdx[donor]
	if !rowFound || !colFound {
		return 0, false
	}
	return uint8(c.cells.At(i, j)), true
}

// RowSum returns the number of donors carrying variant id.
func (c *Carrier) RowSum(id string) int {
	i, found := c.rowIdx[id]
	if !found || c.cells == nil {
		return 0
	}
	return int(floats.Sum(c.cells.RawRowView(i)))
}

// ColSums returns the number of variants carried by each donor.
func (c *Carrier) ColSums() map[string]int {
	ans := make(map[string]int, len(c.donors))
	var col []float64
	for j := range c.donors {
		if c.cells == nil {
			ans[c.donors[j]] = 0
			continue
		}
		col = mat.Col(col, j, c.cells)
		ans[c.donors[j]] = int(floats.Sum(col))
	}
	return ans
}

// Write prints the matrix as a tab-delimited table with a header of donor ids.
func (c *Carrier) Write(out io.Writer) error {
	var err error
	s := new(strings.Builder)
	s.WriteString("variantId")
	for j := range c.donors {
		s.WriteByte('\t')
		s.WriteString(c.donors[j])
	}
	if _, err = fmt.Fprintln(out, s.String()); err != nil {
		return err
	}

	var i, j int
	for i = range c.variants {
		s.Reset()
		s.WriteString(c.variants[i])
		for j = range c.donors {
			s.WriteByte('\t')
			if c.cells.At(i, j) == 1 {
				s.WriteByte('1')
			} else {
				s.WriteByte('0')
			}
		}
		if _, err = fmt.Fprintln(out, s.String()); err != nil {
			return err
		}
	}
	return nil
}

// Builder accumulates the classified variants of one category.
type Builder struct {
	category   mei.Category
	encode     genotype.Encoder
	ids        []string // first insertion order
	rows       map[string]mei.Variant
	collisions []string
}

// NewBuilder returns a Builder for category that encodes cells with encode.
func NewBuilder(category mei.Category, encode genotype.Encoder) *Builder {
	return &Builder{
		category: category,
		encode:   encode,
		rows:     make(map[string]mei.Variant),
	}
}

func (b *Builder) Category() mei.Category { return b.category }

// Add stores v as a row. If a row with the same id already exists it is
// overwritten, the id is recorded as a collision and Add returns true.
func (b *Builder) Add(v mei.Variant) (collision bool, err error) {
	if v.Category != b.category {
		return false, fmt.Errorf("%w: %s is %s, matrix is %s", ErrCategoryMismatch, v.Id, v.Category, b.category)
	}
	_, collision = b.rows[v.Id]
	if collision {
		b.collisions = append(b.collisions, v.Id)
	} else {
		b.ids = append(b.ids, v.Id)
	}
	b.rows[v.Id] = v
	return collision, nil
}

// Collisions returns the ids that were added more than once.
func (b *Builder) Collisions() []string { return b.collisions }

// Len returns the number of distinct rows.
func (b *Builder) Len() int { return len(b.ids) }

// Build encodes every (variant, donor) cell. Donors missing from a
// variant's genotype mapping are non-carriers.
func (b *Builder) Build(donors []string) *Carrier {
	var stats Stats
	variants := make([]string, len(b.ids))
	copy(variants, b.ids)
	cols := make([]string, len(donors))
	copy(cols, donors)

	if len(variants) == 0 || len(cols) == 0 {
		return newCarrier(variants, cols, nil, stats)
	}

	cells := mat.NewDense(len(variants), len(cols), nil)
	var field, code string
	var found bool
	var i, j int
	for i = range variants {
		gt := b.rows[variants[i]].Genotypes
		for j = range cols {
			field, found = gt[cols[j]]
			if !found {
				stats.Absent++
				continue
			}
			code = genotype.Code(field)
			if !genotype.Recognized(code) {
				stats.Unrecognized++
			}
			cells.Set(i, j, float64(b.encode(code)))
		}
	}
	return newCarrier(variants, cols, cells, stats)
}

// Concat stacks matrices row-wise. All inputs must have identical donor columns.
func Concat(m ...*Carrier) (*Carrier, error) {
	if len(m) == 0 {
		return newCarrier(nil, nil, nil, Stats{}), nil
	}
	donors := m[0].donors
	var variants []string
	var stats Stats
	var cells *mat.Dense
	for k := range m {
		if !slices.Equal(donors, m[k].donors) {
			return nil, fmt.Errorf("%w: matrix %d", ErrDonorMismatch, k)
		}
		variants = append(variants, m[k].variants...)
		stats = stats.add(m[k].stats)
		if m[k].cells == nil {
			continue
		}
		if cells == nil {
			cells = mat.DenseCopyOf(m[k].cells)
			continue
		}
		stacked := new(mat.Dense)
		stacked.Stack(cells, m[k].cells)
		cells = stacked
	}
	return newCarrier(variants, donors, cells, stats), nil
}
