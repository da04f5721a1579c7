package burden

import (
	"errors"
	"fmt"
	"github.com/dasnellings/meiTools/filter"
	"github.com/dasnellings/meiTools/genotype"
	"github.com/dasnellings/meiTools/matrix"
	"github.com/dasnellings/meiTools/mei"
	"github.com/dasnellings/meiTools/report"
	"github.com/dasnellings/meiTools/variants"
	log "github.com/sirupsen/logrus"
	"github.com/vertgenlab/gonomics/exception"
	"github.com/vertgenlab/gonomics/fileio"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
	"golang.org/x/sync/errgroup"
	"io"
	"sync"
)

// Options controls a single run.
type Options struct {
	Join    report.Join
	Strict  bool // abort on the first malformed variant record
	Verbose int
}

// Summary counts what was read, excluded and resolved by policy during a run.
type Summary struct {
	Records               int
	Malformed             int
	AbsentVariants        int // distinct ids absent from the reference
	PresentVariants       int // distinct ids present in the reference
	Collisions            int
	Donors                int // donors genotyped in the VCF
	UnrecognizedGenotypes int
	MissingGenotypes      int
	ExcludedMetadataRows  int
	ReportedDonors        int
}

func (s Summary) String() string {
	return fmt.Sprintf("records:%d malformed:%d absentFromRef:%d presentInRef:%d collisions:%d donors:%d unrecognizedGenotypes:%d missingGenotypes:%d excludedMetadataRows:%d reportedDonors:%d",
		s.Records, s.Malformed, s.AbsentVariants, s.PresentVariants, s.Collisions, s.Donors,
		s.UnrecognizedGenotypes, s.MissingGenotypes, s.ExcludedMetadataRows, s.ReportedDonors)
}

// Result holds every product of a run. The matrices are not modified after Run returns.
type Result struct {
	Absent   *matrix.Carrier
	Present  *matrix.Carrier
	Combined *matrix.Carrier
	Counts   map[string]int
	Rows     []report.Row
	Summary  Summary
}

// Run classifies records, builds one carrier matrix per category, stacks
// them and joins the per-donor column sums with table.
func Run(table filter.Table, records []mei.Record, opts Options) (Result, error) {
	var ans Result
	var v mei.Variant
	var collision bool
	var err error

	builders := make(map[mei.Category]*matrix.Builder, len(mei.Categories))
	for _, c := range mei.Categories {
		builders[c] = matrix.NewBuilder(c, genotype.ForCategory(c))
	}

	// STEP 1: classify each record into its category matrix
	for i := range records {
		ans.Summary.Records++
		v, err = mei.Classify(records[i])
		if err != nil {
			if opts.Strict || !errors.Is(err, mei.ErrMalformedRecord) {
				return ans, err
			}
			log.Warnf("excluding record: %s", err)
			ans.Summary.Malformed++
			continue
		}
		collision, err = builders[v.Category].Add(v)
		if err != nil {
			return ans, err
		}
		if collision {
			log.Warnf("variant id %s (%s) seen more than once, keeping %s:%d", v.Id, v.Category, v.Chrom, v.Pos)
			ans.Summary.Collisions++
		}
	}

	// STEP 2: encode both matrices over the same donor columns
	donors := Donors(records)
	carriers := make([]*matrix.Carrier, len(mei.Categories))
	wg := new(sync.WaitGroup)
	for k, c := range mei.Categories {
		wg.Add(1)
		go func(k int, b *matrix.Builder) {
			carriers[k] = b.Build(donors)
			wg.Done()
		}(k, builders[c])
	}
	wg.Wait()
	ans.Absent, ans.Present = carriers[0], carriers[1]

	// STEP 3: stack and reduce to one count per donor
	ans.Combined, err = matrix.Concat(carriers...)
	if err != nil {
		return ans, err
	}
	ans.Counts = ans.Combined.ColSums()

	// STEP 4: join with metadata
	ans.Rows = report.Assemble(table, ans.Counts, opts.Join)

	ans.Summary.AbsentVariants = builders[mei.AbsentFromReference].Len()
	ans.Summary.PresentVariants = builders[mei.PresentInReference].Len()
	ans.Summary.Donors = len(donors)
	ans.Summary.UnrecognizedGenotypes = ans.Combined.Stats().Unrecognized
	ans.Summary.MissingGenotypes = ans.Combined.Stats().Absent
	ans.Summary.ExcludedMetadataRows = table.Excluded
	ans.Summary.ReportedDonors = len(ans.Rows)
	return ans, nil
}

// Donors returns the sorted set of donor ids genotyped in any record.
func Donors(records []mei.Record) []string {
	set := make(map[string]struct{})
	for i := range records {
		for d := range records[i].Genotypes() {
			set[d] = struct{}{}
		}
	}
	ans := maps.Keys(set)
	slices.Sort(ans)
	return ans
}

// Burden reads the VCF and metadata files concurrently, runs the pipeline
// and writes the per-donor report to output. If matrixOutput is not empty
// the combined carrier matrix is written there as well.
func Burden(invcf, metadata, output, matrixOutput string, opts Options) (Summary, error) {
	var table filter.Table
	var records []mei.Record
	var g errgroup.Group

	g.Go(func() error {
		var err error
		table, err = filter.ReadMetadata(metadata)
		if opts.Verbose > 0 && err == nil {
			log.Printf("read %d whitelisted donors from %s", len(table.Donors), metadata)
		}
		return err
	})
	g.Go(func() error {
		records, _ = variants.Read(invcf)
		if opts.Verbose > 0 {
			log.Printf("read %d records from %s", len(records), invcf)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return Summary{}, err
	}

	res, err := Run(table, records, opts)
	if err != nil {
		return res.Summary, err
	}
	if opts.Verbose > 0 {
		log.Println(res.Summary)
	}

	out := fileio.EasyCreate(output)
	defer cleanup(out)
	if err = report.Write(out, res.Rows); err != nil {
		return res.Summary, err
	}

	if matrixOutput != "" {
		mOut := fileio.EasyCreate(matrixOutput)
		defer cleanup(mOut)
		if err = res.Combined.Write(mOut); err != nil {
			return res.Summary, err
		}
	}
	return res.Summary, nil
}

// Matrix writes the combined carrier matrix of a VCF without metadata.
func Matrix(invcf, output string, opts Options) (Summary, error) {
	records, _ := variants.Read(invcf)
	res, err := Run(filter.Table{}, records, opts)
	if err != nil {
		return res.Summary, err
	}
	out := fileio.EasyCreate(output)
	defer cleanup(out)
	return res.Summary, res.Combined.Write(out)
}

// Classify writes one line per distinct variant id with its category and carrier count.
func Classify(invcf, output string, opts Options) (Summary, error) {
	records, _ := variants.Read(invcf)
	res, err := Run(filter.Table{}, records, opts)
	if err != nil {
		return res.Summary, err
	}
	out := fileio.EasyCreate(output)
	defer cleanup(out)
	return res.Summary, WriteVariants(out, res)
}

// WriteVariants prints the id, category and number of carriers of each matrix row.
func WriteVariants(out io.Writer, res Result) error {
	var err error
	if _, err = fmt.Fprintln(out, "variantId\tcategory\tnbCarriers"); err != nil {
		return err
	}
	for _, part := range []struct {
		category mei.Category
		carriers *matrix.Carrier
	}{{mei.AbsentFromReference, res.Absent}, {mei.PresentInReference, res.Present}} {
		for _, id := range part.carriers.Variants() {
			if _, err = fmt.Fprintf(out, "%s\t%s\t%d\n", id, part.category, part.carriers.RowSum(id)); err != nil {
				return err
			}
		}
	}
	return nil
}

func cleanup(f io.Closer) {
	err := f.Close()
	exception.PanicOnErr(err)
}
