// Package variants adapts gonomics VCF records to mei.Record.
package variants

import (
	"github.com/dasnellings/meiTools/mei"
	"github.com/vertgenlab/gonomics/vcf"
	"strconv"
	"strings"
)

// Record wraps a vcf.Vcf with the sample names from its header.
type Record struct {
	v         vcf.Vcf
	info      map[string]string
	genotypes map[string]string
}

// FromVcf builds a Record. samples[i] must name v.Samples[i].
func FromVcf(v vcf.Vcf, samples []string) *Record {
	r := &Record{
		v:         v,
		info:      ParseInfo(v.Info),
		genotypes: make(map[string]string, len(v.Samples)),
	}
	for i := range v.Samples {
		if i >= len(samples) {
			break
		}
		r.genotypes[samples[i]] = rawGenotype(v.Format, v.Samples[i])
	}
	return r
}

func (r *Record) Chrom() string                { return r.v.Chr }
func (r *Record) Pos() int                     { return r.v.Pos }
func (r *Record) Ref() string                  { return r.v.Ref }
func (r *Record) Alt() string                  { return strings.Join(r.v.Alt, ",") }
func (r *Record) Info() map[string]string      { return r.info }
func (r *Record) Genotypes() map[string]string { return r.genotypes }

// SampleNames returns the sample names of a header in column order.
func SampleNames(header vcf.Header) []string {
	ans := make([]string, len(header.Samples))
	for name, idx := range header.Samples {
		if idx >= 0 && idx < len(ans) {
			ans[idx] = name
		}
	}
	return ans
}

// Read loads every record of a VCF file. The second return value lists the
// donors (samples) in header order.
func Read(filename string) ([]mei.Record, []string) {
	records, header := vcf.GoReadToChan(filename)
	samples := SampleNames(header)
	var ans []mei.Record
	for v := range records {
		ans = append(ans, FromVcf(v, samples))
	}
	return ans, samples
}

// ParseInfo splits a VCF INFO column into key/value pairs. Flags map to "".
func ParseInfo(info string) map[string]string {
	ans := make(map[string]string)
	if info == "" || info == "." {
		return ans
	}
	var key, value string
	var found bool
	for _, field := range strings.Split(info, ";") {
		if field == "" {
			continue
		}
		key, value, found = strings.Cut(field, "=")
		if !found {
			value = ""
		}
		ans[key] = value
	}
	return ans
}

// rawGenotype rebuilds the sample column text, GT first, from the parsed sample.
func rawGenotype(format []string, s vcf.Sample) string {
	fields := []string{genotypeString(s)}
	start := 0
	if len(format) > 0 && format[0] == "GT" {
		start = 1
	}
	for i := start; i < len(s.FormatData); i++ {
		fields = append(fields, s.FormatData[i])
	}
	return strings.Join(fields, ":")
}

// genotypeString writes alleles as a GT code, '.' for missing alleles.
func genotypeString(s vcf.Sample) string {
	if len(s.Alleles) == 0 {
		return "."
	}
	b := new(strings.Builder)
	for j := range s.Alleles {
		if j > 0 {
			if j < len(s.Phase) && s.Phase[j] {
				b.WriteByte('|')
			} else {
				b.WriteByte('/')
			}
		}
		if s.Alleles[j] < 0 {
			b.WriteByte('.')
		} else {
			b.WriteString(strconv.Itoa(int(s.Alleles[j])))
		}
	}
	return b.String()
}
