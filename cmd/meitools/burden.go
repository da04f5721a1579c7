package main

import (
	"flag"
	"fmt"
	"github.com/dasnellings/meiTools/burden"
	"github.com/dasnellings/meiTools/report"
	"github.com/vertgenlab/gonomics/exception"
)

func burdenUsage(burdenFlags *flag.FlagSet) {
	fmt.Print(
		"burden - count the distinct germline MEIs carried by each whitelisted donor\n" +
			"\tInsertions absent from the reference (ALT=<MEI>) are carried by 0/1, 1/1 and 1 genotypes.\n" +
			"\tInsertions present in the reference (REF=<MEI>) are carried by 0/0, 0/1 and 0 genotypes.\n\n" +
			"Usage:\n" +
			"  meitools burden [options] -i genotypedMEI.vcf -m donorMetadata.tsv > nbMEIperDonor.tsv\n\n" +
			"Options:\n")
	burdenFlags.PrintDefaults()
}

func runBurden(args []string) {
	var err error
	burdenFlags := flag.NewFlagSet("burden", flag.ExitOnError)

	input := burdenFlags.String("i", "", "Multi-sample VCF with genotyped MEIs.")
	metadata := burdenFlags.String("m", "", "Tab-delimited donor metadata. Column 1 donor id, column 3 exclusion status, columns 5-7 ancestry, project code and tumor type.")
	output := burdenFlags.String("o", "stdout", "Output per-donor MEI counts.")
	matrixOutput := burdenFlags.String("matrix", "", "Also write the combined binary carrier matrix to this file.")
	inner := burdenFlags.Bool("inner", false, "Only report whitelisted donors genotyped in the VCF. By default donors absent from the VCF are reported with 0 MEIs.")
	strict := burdenFlags.Bool("strict", false, "Abort on VCF records that are neither ALT=<MEI> nor REF=<MEI>. By default they are excluded and counted.")
	verbose := burdenFlags.Int("v", 0, "Verbose output by setting to >0.")

	err = burdenFlags.Parse(args)
	exception.PanicOnErr(err)
	burdenFlags.Usage = func() { burdenUsage(burdenFlags) }

	if *input == "" || *metadata == "" {
		burdenFlags.Usage()
		errExit("\nERROR: must have inputs for -i and -m")
	}
	setVerbosity(*verbose)

	opts := burden.Options{Strict: *strict, Verbose: *verbose}
	if *inner {
		opts.Join = report.InnerJoin
	}

	_, err = burden.Burden(*input, *metadata, *output, *matrixOutput, opts)
	if err != nil {
		errExit(fmt.Sprintf("ERROR: %s", err))
	}
}
