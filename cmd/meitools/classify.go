package main

import (
	"flag"
	"fmt"
	"github.com/dasnellings/meiTools/burden"
	log "github.com/sirupsen/logrus"
	"github.com/vertgenlab/gonomics/exception"
)

func classifyUsage(classifyFlags *flag.FlagSet) {
	fmt.Print(
		"classify - list each MEI id, whether it is absent from or present in the reference, and its number of carriers\n\n" +
			"Usage:\n" +
			"  meitools classify [options] -i genotypedMEI.vcf > variants.tsv\n\n" +
			"Options:\n")
	classifyFlags.PrintDefaults()
}

func runClassify(args []string) {
	var err error
	classifyFlags := flag.NewFlagSet("classify", flag.ExitOnError)

	input := classifyFlags.String("i", "", "Multi-sample VCF with genotyped MEIs.")
	output := classifyFlags.String("o", "stdout", "Output variant table.")
	strict := classifyFlags.Bool("strict", false, "Abort on VCF records that are neither ALT=<MEI> nor REF=<MEI>.")
	verbose := classifyFlags.Int("v", 0, "Verbose output by setting to >0.")

	err = classifyFlags.Parse(args)
	exception.PanicOnErr(err)
	classifyFlags.Usage = func() { classifyUsage(classifyFlags) }

	if *input == "" {
		classifyFlags.Usage()
		errExit("\nERROR: must have input for -i")
	}
	setVerbosity(*verbose)

	summary, err := burden.Classify(*input, *output, burden.Options{Strict: *strict, Verbose: *verbose})
	if err != nil {
		errExit(fmt.Sprintf("ERROR: %s", err))
	}
	log.Infof("classified %d records: %d absent from reference, %d present in reference, %d malformed",
		summary.Records, summary.AbsentVariants, summary.PresentVariants, summary.Malformed)
}
