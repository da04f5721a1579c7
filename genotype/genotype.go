package genotype

import (
	"github.com/dasnellings/meiTools/mei"
	"strings"
)

// Encoder maps a genotype code (e.g. "0/1") to 1 (carrier) or 0 (not carrier).
type Encoder func(code string) uint8

// Code returns the genotype code of a raw sample field. Only the first
// colon-delimited token is used, the remaining FORMAT values are ignored.
func Code(field string) string {
	if i := strings.IndexByte(field, ':'); i >= 0 {
		return field[:i]
	}
	return field
}

// AltCarrier encodes genotypes of insertions absent from the reference.
// Homozygous alternative, heterozygous and haploid alternative calls are
// carriers. Everything else, including missing calls, is not.
func AltCarrier(code string) uint8 {
	switch code {
	case "1/1", "0/1", "1":
		return 1
	default:
		return 0
	}
}

// RefCarrier encodes genotypes of insertions present in the reference.
// Here the reference allele is the insertion, so homozygous reference,
// heterozygous and haploid reference calls are carriers.
func RefCarrier(code string) uint8 {
	switch code {
	case "0/0", "0/1", "0":
		return 1
	default:
		return 0
	}
}

// ForCategory returns the encoding rule for variants of category c.
func ForCategory(c mei.Category) Encoder {
	if c == mei.PresentInReference {
		return RefCarrier
	}
	return AltCarrier
}

// Recognized reports whether code is one of the calls the encoders
// distinguish. Other codes (missing, phased, multi-allelic) encode to 0
// under both rules.
func Recognized(code string) bool {
	switch code {
	case "0/0", "0/1", "1/1", "0", "1":
		return true
	default:
		return false
	}
}
