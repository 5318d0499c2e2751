package ioadapters

import (
	"path/filepath"
	"testing"

	"github.com/bgp-policy-sim/bgpsim/internal/asgraph"
)

func TestLoadROVASNsParsesValidLines(t *testing.T) {
	path := writeTempFile(t, "rov.txt", "# comment\n1\n\n2\n")

	asns := LoadROVASNs(path)
	if len(asns) != 2 || asns[0] != asgraph.ASN(1) || asns[1] != asgraph.ASN(2) {
		t.Fatalf("LoadROVASNs() = %v, want [1 2]", asns)
	}
}

func TestLoadROVASNsSkipsInvalidLines(t *testing.T) {
	path := writeTempFile(t, "rov.txt", "1\nnotanasn\n2\n")

	asns := LoadROVASNs(path)
	if len(asns) != 2 {
		t.Fatalf("LoadROVASNs() = %v, want 2 entries (invalid line skipped)", asns)
	}
}

func TestLoadROVASNsMissingFileReturnsEmptyNotError(t *testing.T) {
	asns := LoadROVASNs(filepath.Join(t.TempDir(), "missing.txt"))
	if len(asns) != 0 {
		t.Fatalf("LoadROVASNs() on a missing file = %v, want empty (ROV disabled, not a fatal error)", asns)
	}
}
