package main

import (
	"flag"
	"fmt"
	"github.com/dasnellings/meiTools/burden"
	"github.com/vertgenlab/gonomics/exception"
)

func matrixUsage(matrixFlags *flag.FlagSet) {
	fmt.Print(
		"matrix - write the binary carrier matrix (rows: MEI ids, columns: donors)\n\n" +
			"Usage:\n" +
			"  meitools matrix [options] -i genotypedMEI.vcf > carriers.tsv\n\n" +
			"Options:\n")
	matrixFlags.PrintDefaults()
}

func runMatrix(args []string) {
	var err error
	matrixFlags := flag.NewFlagSet("matrix", flag.ExitOnError)

	input := matrixFlags.String("i", "", "Multi-sample VCF with genotyped MEIs.")
	output := matrixFlags.String("o", "stdout", "Output carrier matrix.")
	strict := matrixFlags.Bool("strict", false, "Abort on VCF records that are neither ALT=<MEI> nor REF=<MEI>.")
	verbose := matrixFlags.Int("v", 0, "Verbose output by setting to >0.")

	err = matrixFlags.Parse(args)
	exception.PanicOnErr(err)
	matrixFlags.Usage = func() { matrixUsage(matrixFlags) }

	if *input == "" {
		matrixFlags.Usage()
		errExit("\nERROR: must have input for -i")
	}
	setVerbosity(*verbose)

	_, err = burden.Matrix(*input, *output, burden.Options{Strict: *strict, Verbose: *verbose})
	if err != nil {
		errExit(fmt.Sprintf("ERROR: %s", err))
	}
}
