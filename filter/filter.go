package filter

import (
	"bufio"
	"errors"
	"fmt"
	log "github.com/sirupsen/logrus"
	"github.com/vertgenlab/gonomics/fileio"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
	"io"
	"strings"
)

// Whitelist is the exclusion column value of donors passing every filter.
const Whitelist string = "Whitelist"

const minFields int = 7

// column indexes of the metadata table
const (
	donorCol     = 0
	exclusionCol = 2
	ancestryCol  = 4
	projectCol   = 5
	tumorTypeCol = 6
)

// ErrMalformedRow is returned for a whitelisted row with fewer than 7 fields.
var ErrMalformedRow = errors.New("malformed metadata row")

// Donor holds the attributes of one whitelisted donor.
type Donor struct {
	Id          string
	Ancestry    string
	ProjectCode string
	TumorType   string
}

func (d Donor) String() string {
	return fmt.Sprintf("%s\t%s\t%s\t%s", d.Id, d.Ancestry, d.ProjectCode, d.TumorType)
}

// Table maps donor id to donor for every whitelisted row.
type Table struct {
	Donors     map[string]Donor
	Excluded   int // rows dropped for not being whitelisted
	Duplicates int // whitelisted rows overwriting an earlier row with the same donor id
}

// Ids returns the donor ids in sorted order.
func (t Table) Ids() []string {
	ids := maps.Keys(t.Donors)
	slices.Sort(ids)
	return ids
}

// ReadMetadata parses a tab-delimited metadata file. Lines beginning with
// '#' are comments. A whitelisted row with fewer than 7 fields returns
// ErrMalformedRow.
func ReadMetadata(filename string) (Table, error) {
	file := fileio.EasyOpen(filename)
	defer file.Close()
	ans, err := ReadTable(file)
	if err != nil {
		return ans, fmt.Errorf("%s: %w", filename, err)
	}
	return ans, nil
}

// ReadTable parses metadata rows from r. The last line does not need a
// trailing newline.
func ReadTable(r io.Reader) (Table, error) {
	ans := Table{Donors: make(map[string]Donor)}
	reader := bufio.NewReader(r)
	var line string
	var keep, found bool
	var d Donor
	var err, readErr error
	for readErr != io.EOF {
		line, readErr = reader.ReadString('\n')
		if readErr != nil && readErr != io.EOF {
			return ans, readErr
		}
		line = strings.TrimRight(line, "\r\n")
		if strings.HasPrefix(line, "#") || strings.TrimSpace(line) == "" {
			continue
		}
		d, keep, err = ParseRow(line)
		if err != nil {
			return ans, err
		}
		if !keep {
			ans.Excluded++
			continue
		}
		if _, found = ans.Donors[d.Id]; found {
			log.Warnf("donor %s listed more than once, keeping the last row", d.Id)
			ans.Duplicates++
		}
		ans.Donors[d.Id] = d
	}
	return ans, nil
}

// ParseRow parses one metadata line. keep is false for donors that are not whitelisted.
func ParseRow(line string) (d Donor, keep bool, err error) {
	words := strings.Split(strings.TrimRight(line, "\r"), "\t")
	if len(words) <= exclusionCol || words[exclusionCol] != Whitelist {
		return d, false, nil
	}
	if len(words) < minFields {
		return d, false, fmt.Errorf("%w: expected at least %d fields, found %d on line:\n%s", ErrMalformedRow, minFields, len(words), line)
	}
	d.Id = words[donorCol]
	d.Ancestry = words[ancestryCol]
	d.ProjectCode = words[projectCol]
	d.TumorType = words[tumorTypeCol]
	return d, true, nil
}
