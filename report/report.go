// Package report joins donor metadata with per-donor MEI counts.
package report

import (
	"fmt"
	"github.com/dasnellings/meiTools/filter"
	"io"
)

// Join selects which metadata donors are reported.
type Join int

const (
	LeftJoin  Join = iota // every whitelisted donor, 0 when absent from the VCF
	InnerJoin             // only whitelisted donors genotyped in the VCF
)

const Header string = "donorId\tancestry\tprojectCode\ttumorType\tnbMEI"

// Row is one line of the per-donor report.
type Row struct {
	filter.Donor
	NbMEI int
}

func (r Row) String() string {
	return fmt.Sprintf("%s\t%d", r.Donor, r.NbMEI)
}

// Assemble joins table with counts. Donors absent from table are never
// reported. Rows are sorted by donor id.
func Assemble(table filter.Table, counts map[string]int, join Join) []Row {
	var ans []Row
	var n int
	var found bool
	for _, id := range table.Ids() {
		n, found = counts[id]
		if !found && join == InnerJoin {
			continue
		}
		ans = append(ans, Row{Donor: table.Donors[id], NbMEI: n})
	}
	return ans
}

// Write prints rows as a tab-delimited table with a header line.
func Write(out io.Writer, rows []Row) error {
	var err error
	if _, err = fmt.Fprintln(out, Header); err != nil {
		return err
	}
	for i := range rows {
		if _, err = fmt.Fprintln(out, rows[i]); err != nil {
			return err
		}
	}
	return nil
}
