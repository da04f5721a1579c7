package main

import (
	"flag"
	"fmt"
	log "github.com/sirupsen/logrus"
	"os"
	"strings"
	"text/tabwriter"
)

const version string = "0.0.1"

type subcommand struct {
	name     string
	function func(args []string)
	blurb    string
}

// SubCommands lists the commands in the order usage prints them.
var SubCommands = []*subcommand{
	{"burden", runBurden, "count MEIs carried by each whitelisted donor"},
	{"matrix", runMatrix, "write the binary variant by donor carrier matrix"},
	{"classify", runClassify, "list MEI ids with reference status and carrier count"},
}

func usage() {
	s := new(strings.Builder)
	s.WriteString(
		"meitools v" + version + ": per-donor burden of germline mobile element insertions\n\n" +
			"usage: meitools <command> [options]\n\n")

	w := tabwriter.NewWriter(s, 0, 8, 5, '\t', tabwriter.AlignRight)
	for i := range SubCommands {
		fmt.Fprintf(w, "\t%s\t%s\n", SubCommands[i].name, SubCommands[i].blurb)
	}
	w.Flush()
	fmt.Print(s.String())
}

// commandMap indexes SubCommands by name.
func commandMap() map[string]func(args []string) {
	m := make(map[string]func(args []string))
	for i := range SubCommands {
		m[SubCommands[i].name] = SubCommands[i].function
	}
	return m
}

func main() {
	flag.Usage = usage
	flag.Parse()

	if flag.NArg() == 0 {
		flag.Usage()
		return
	}
	command, found := commandMap()[flag.Arg(0)]
	if !found {
		flag.Usage()
		errExit(fmt.Sprintf("\nERROR: unknown command %q", flag.Arg(0)))
	}
	command(flag.Args()[1:])
}

// setVerbosity routes diagnostics to stderr so reports can be written to stdout.
func setVerbosity(verbose int) {
	log.SetOutput(os.Stderr)
	switch {
	case verbose > 1:
		log.SetLevel(log.DebugLevel)
	case verbose > 0:
		log.SetLevel(log.InfoLevel)
	default:
		log.SetLevel(log.WarnLevel)
	}
}

func errExit(err string) {
	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}
