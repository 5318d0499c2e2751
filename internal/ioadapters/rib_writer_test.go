package ioadapters

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/bgp-policy-sim/bgpsim/internal/asgraph"
	"github.com/bgp-policy-sim/bgpsim/internal/sim"
)

func TestFormatASPathMultiElement(t *testing.T) {
	if got, want := FormatASPath([]int{1, 2, 3}), "(1, 2, 3)"; got != want {
		t.Errorf("FormatASPath = %q, want %q", got, want)
	}
}

func TestFormatASPathSingleElementHasTrailingComma(t *testing.T) {
	if got, want := FormatASPath([]int{3}), "(3,)"; got != want {
		t.Errorf("FormatASPath = %q, want %q", got, want)
	}
}

func TestWriteRIBCSVSortsRowsAscending(t *testing.T) {
	entries := []sim.RIBEntry{
		{ASN: 2, Route: &sim.Route{Prefix: "p", ASPath: []asgraph.ASN{2, 3}}},
		{ASN: 1, Route: &sim.Route{Prefix: "p", ASPath: []asgraph.ASN{1, 2, 3}}},
		{ASN: 3, Route: &sim.Route{Prefix: "p", ASPath: []asgraph.ASN{3}}},
	}

	path := filepath.Join(t.TempDir(), "ribs.csv")
	if err := WriteRIBCSV(path, entries); err != nil {
		t.Fatalf("WriteRIBCSV() = %v, want nil", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading output: %v", err)
	}
	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	if len(lines) != 4 {
		t.Fatalf("got %d lines, want 4 (header + 3 rows)", len(lines))
	}
	if lines[0] != "asn,prefix,as_path" {
		t.Errorf("header = %q", lines[0])
	}
	if !strings.HasPrefix(lines[1], "1,p,") {
		t.Errorf("row 1 = %q, want to start with asn 1", lines[1])
	}
	if !strings.HasPrefix(lines[3], "3,p,") {
		t.Errorf("row 3 = %q, want to start with asn 3", lines[3])
	}
}
