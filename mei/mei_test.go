package mei

import (
	"errors"
	"testing"
)

type testRecord struct {
	chrom     string
	pos       int
	ref       string
	alt       string
	info      map[string]string
	genotypes map[string]string
}

func (r testRecord) Chrom() string                { return r.chrom }
func (r testRecord) Pos() int                     { return r.pos }
func (r testRecord) Ref() string                  { return r.ref }
func (r testRecord) Alt() string                  { return r.alt }
func (r testRecord) Info() map[string]string      { return r.info }
func (r testRecord) Genotypes() map[string]string { return r.genotypes }

func TestClassifyAbsent(t *testing.T) {
	r := testRecord{chrom: "1", pos: 1000, ref: "A", alt: InsertionAllele,
		info:      map[string]string{"CLASS": "L1"},
		genotypes: map[string]string{"D1": "0/1:30"}}
	v, err := Classify(r)
	if err != nil {
		t.Fatal(err)
	}
	if v.Id != "L1_1_1000" || v.Category != AbsentFromReference {
		t.Errorf("problem classifying absent insertion: %s", v)
	}
	if v.Genotypes["D1"] != "0/1:30" {
		t.Error("genotypes not carried through classification")
	}
}

func TestClassifyPresent(t *testing.T) {
	r := testRecord{chrom: "X", pos: 55, ref: InsertionAllele, alt: "T",
		info: map[string]string{"CLASS": "Alu"}}
	v, err := Classify(r)
	if err != nil {
		t.Fatal(err)
	}
	if v.Id != "Alu_X_55" || v.Category != PresentInReference {
		t.Errorf("problem classifying reference insertion: %s", v)
	}
}

func TestClassifySourceElement(t *testing.T) {
	r := testRecord{chrom: "22", pos: 29059272, ref: "G", alt: InsertionAllele,
		info: map[string]string{"CLASS": "L1", "SRCID": "22q12.1"}}
	v, err := Classify(r)
	if err != nil {
		t.Fatal(err)
	}
	if v.Id != "22q12.1" {
		t.Errorf("expected source element id, got %s", v.Id)
	}
}

func TestClassifyMalformed(t *testing.T) {
	tests := []testRecord{
		{chrom: "1", pos: 1, ref: InsertionAllele, alt: InsertionAllele, info: map[string]string{"CLASS": "L1"}},
		{chrom: "1", pos: 2, ref: "A", alt: "T", info: map[string]string{"CLASS": "L1"}},
		{chrom: "1", pos: 3, ref: "A", alt: "<MEI>,<INS>", info: map[string]string{"CLASS": "L1"}},
		{chrom: "1", pos: 4, ref: "A", alt: InsertionAllele, info: map[string]string{}},
	}
	for _, r := range tests {
		if _, err := Classify(r); !errors.Is(err, ErrMalformedRecord) {
			t.Errorf("expected malformed record at %s:%d, got %v", r.chrom, r.pos, err)
		}
	}
}

func TestCategoryString(t *testing.T) {
	if AbsentFromReference.String() != "ABSENT_FROM_REFERENCE" || PresentInReference.String() != "PRESENT_IN_REFERENCE" {
		t.Error("problem with category names")
	}
}
