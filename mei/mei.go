// Package mei classifies mobile element insertion records by whether the
// insertion is present in or absent from the reference genome.
package mei

import (
	"errors"
	"fmt"
)

const (
	InsertionAllele  string = "<MEI>" // symbolic allele denoting the inserted element
	SourceElementKey string = "SRCID" // INFO key naming the germline source element
	ClassKey         string = "CLASS" // INFO key with the element class (e.g. L1, Alu)
)

// ErrMalformedRecord is returned for a record with no usable insertion allele or identifier.
var ErrMalformedRecord = errors.New("malformed variant record")

// Category records which allele of a record carries the insertion.
type Category int

const (
	AbsentFromReference Category = iota // ALT is the insertion allele
	PresentInReference                  // REF is the insertion allele
)

func (c Category) String() string {
	switch c {
	case AbsentFromReference:
		return "ABSENT_FROM_REFERENCE"
	case PresentInReference:
		return "PRESENT_IN_REFERENCE"
	default:
		return fmt.Sprintf("Category(%d)", int(c))
	}
}

// Categories lists every category in matrix concatenation order.
var Categories = []Category{AbsentFromReference, PresentInReference}

// Record is a single multi-sample variant line.
type Record interface {
	Chrom() string
	Pos() int
	Ref() string
	Alt() string
	Info() map[string]string
	// Genotypes maps each donor id to its raw FORMAT field, GT first (e.g. "0/1:12").
	Genotypes() map[string]string
}

// Variant is a Record that passed classification.
type Variant struct {
	Id        string
	Category  Category
	Chrom     string
	Pos       int
	Genotypes map[string]string
}

func (v Variant) String() string {
	return fmt.Sprintf("%s\t%s\t%s\t%d", v.Id, v.Category, v.Chrom, v.Pos)
}

// Identifier returns the source element id of r when it has one, so that
// insertions derived from one source element collapse onto a single id.
// Otherwise the id is built from the element class and the coordinates.
func Identifier(r Record) (string, error) {
	info := r.Info()
	if id, found := info[SourceElementKey]; found && id != "" {
		return id, nil
	}
	class, found := info[ClassKey]
	if !found || class == "" {
		return "", fmt.Errorf("%w: %s:%d has neither %s nor %s in INFO", ErrMalformedRecord, r.Chrom(), r.Pos(), SourceElementKey, ClassKey)
	}
	return fmt.Sprintf("%s_%s_%d", class, r.Chrom(), r.Pos()), nil
}

// Classify assigns r an identifier and a category. Records where neither
// or both of REF and ALT are the insertion allele return ErrMalformedRecord.
func Classify(r Record) (Variant, error) {
	var ans Variant
	var err error

	refIns := r.Ref() == InsertionAllele
	altIns := r.Alt() == InsertionAllele
	switch {
	case altIns && !refIns:
		ans.Category = AbsentFromReference
	case refIns && !altIns:
		ans.Category = PresentInReference
	default:
		return ans, fmt.Errorf("%w: %s:%d has REF %q and ALT %q", ErrMalformedRecord, r.Chrom(), r.Pos(), r.Ref(), r.Alt())
	}

	ans.Id, err = Identifier(r)
	if err != nil {
		return ans, err
	}
	ans.Chrom = r.Chrom()
	ans.Pos = r.Pos()
	ans.Genotypes = r.Genotypes()
	return ans, nil
}
