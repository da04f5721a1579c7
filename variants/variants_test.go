package variants

import (
	"github.com/vertgenlab/gonomics/vcf"
	"testing"
)

func TestFromVcf(t *testing.T) {
	v := vcf.Vcf{
		Chr:    "1",
		Pos:    1000,
		Ref:    "A",
		Alt:    []string{"<MEI>"},
		Info:   "CLASS=L1;SRCID=1q23;REP",
		Format: []string{"GT", "DP"},
		Samples: []vcf.Sample{
			{Alleles: []int16{0, 1}, Phase: []bool{false, false}, FormatData: []string{"", "30"}},
			{Alleles: []int16{-1, -1}, Phase: []bool{false, false}, FormatData: []string{"", "0"}},
			{Alleles: []int16{1}, Phase: []bool{false}, FormatData: []string{"", "7"}},
			{Alleles: []int16{1, 1}, Phase: []bool{false, true}, FormatData: []string{"", "9"}},
		},
	}
	r := FromVcf(v, []string{"D1", "D2", "D3", "D4"})
	if r.Chrom() != "1" || r.Pos() != 1000 || r.Ref() != "A" || r.Alt() != "<MEI>" {
		t.Error("problem with record coordinates")
	}
	if r.Info()["CLASS"] != "L1" || r.Info()["SRCID"] != "1q23" {
		t.Errorf("problem parsing info: %v", r.Info())
	}
	if value, found := r.Info()["REP"]; !found || value != "" {
		t.Error("problem parsing info flag")
	}
	expected := map[string]string{"D1": "0/1:30", "D2": "./.:0", "D3": "1:7", "D4": "1|1:9"}
	for d, gt := range expected {
		if r.Genotypes()[d] != gt {
			t.Errorf("genotype of %s = %q, expected %q", d, r.Genotypes()[d], gt)
		}
	}
}

func TestParseInfo(t *testing.T) {
	if len(ParseInfo(".")) != 0 {
		t.Error("missing info must be empty")
	}
	m := ParseInfo("A=1;;B=x=y")
	if m["A"] != "1" || m["B"] != "x=y" || len(m) != 2 {
		t.Errorf("problem parsing info: %v", m)
	}
}

func TestSampleNames(t *testing.T) {
	var h vcf.Header
	h.Samples = map[string]int{"D2": 1, "D1": 0, "D3": 2}
	names := SampleNames(h)
	if len(names) != 3 || names[0] != "D1" || names[1] != "D2" || names[2] != "D3" {
		t.Errorf("problem ordering samples: %v", names)
	}
}
