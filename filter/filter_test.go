package filter

import (
	"errors"
	"strings"
	"testing"
)

func TestReadMetadata(t *testing.T) {
	table, err := ReadMetadata("testdata/metadata.tsv")
	if err != nil {
		t.Fatal(err)
	}
	if len(table.Donors) != 2 {
		t.Errorf("expected 2 whitelisted donors, got %d", len(table.Donors))
	}
	expected := Donor{Id: "D1", Ancestry: "EUR", ProjectCode: "LIRI-JP", TumorType: "Liver-HCC"}
	if table.Donors["D1"] != expected {
		t.Errorf("problem parsing donor: %s", table.Donors["D1"])
	}
	if _, found := table.Donors["D2"]; found {
		t.Error("graylisted donor kept")
	}
	if _, found := table.Donors["D4"]; found {
		t.Error("marker match must be case-sensitive")
	}
	if table.Excluded != 2 {
		t.Errorf("expected 2 excluded rows, got %d", table.Excluded)
	}
	ids := table.Ids()
	if len(ids) != 2 || ids[0] != "D1" || ids[1] != "D3" {
		t.Errorf("problem sorting donor ids: %v", ids)
	}
}

func TestReadMetadataMalformed(t *testing.T) {
	_, err := ReadMetadata("testdata/malformed.tsv")
	if !errors.Is(err, ErrMalformedRow) {
		t.Errorf("expected malformed row error, got %v", err)
	}
}

func TestParseRow(t *testing.T) {
	_, keep, err := ParseRow("D9\tx\tExcluded")
	if keep || err != nil {
		t.Error("short non-whitelisted rows must be dropped without error")
	}
	_, keep, err = ParseRow("D9")
	if keep || err != nil {
		t.Error("row without a marker must be dropped without error")
	}
	d, keep, err := ParseRow("D9\tx\tWhitelist\t1\tSAS\tPROJ\tTYPE\textra")
	if !keep || err != nil || d.TumorType != "TYPE" {
		t.Errorf("problem parsing row with extra fields: %v %v", d, err)
	}
	_, _, err = ParseRow("D9\tx\tWhitelist\t1\tSAS")
	if !errors.Is(err, ErrMalformedRow) {
		t.Error("short whitelisted row must be malformed")
	}
}

func TestReadMetadataNoTrailingNewline(t *testing.T) {
	table, err := ReadMetadata("testdata/no_newline.tsv")
	if err != nil {
		t.Fatal(err)
	}
	if len(table.Donors) != 2 {
		t.Errorf("expected 2 whitelisted donors, got %d", len(table.Donors))
	}
	if table.Donors["D2"].TumorType != "Breast-AdenoCA" {
		t.Errorf("problem parsing unterminated last line: %s", table.Donors["D2"])
	}
}

func TestReadTable(t *testing.T) {
	table, err := ReadTable(strings.NewReader("#h\r\nD1\ts\tWhitelist\t1\tEUR\tP\tT\r\nD2\ts\tExcluded"))
	if err != nil {
		t.Fatal(err)
	}
	if table.Donors["D1"].TumorType != "T" || table.Excluded != 1 {
		t.Errorf("problem reading table: %v", table)
	}

	_, err = ReadTable(strings.NewReader("D1\ts\tWhitelist\t1"))
	if !errors.Is(err, ErrMalformedRow) {
		t.Errorf("expected malformed row on unterminated last line, got %v", err)
	}

	table, err = ReadTable(strings.NewReader(""))
	if err != nil || len(table.Donors) != 0 {
		t.Error("empty input must give an empty table")
	}
}
