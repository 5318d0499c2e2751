package ioadapters

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/bgp-policy-sim/bgpsim/internal/asgraph"
)

func writeTempFile(t *testing.T, name, contents string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("writing temp file: %v", err)
	}
	return path
}

func TestLoadRelationshipsParsesProviderAndPeer(t *testing.T) {
	path := writeTempFile(t, "rel.txt", "# comment\n1|2|-1\n2|3|0\n\n")

	result, err := LoadRelationships(path)
	if err != nil {
		t.Fatalf("LoadRelationships() = %v, want nil", err)
	}
	if result.LinesLoaded != 2 {
		t.Errorf("LinesLoaded = %d, want 2", result.LinesLoaded)
	}
	if result.LinesSkipped != 0 {
		t.Errorf("LinesSkipped = %d, want 0", result.LinesSkipped)
	}

	neighbors1 := result.Graph.Neighbors(1)
	if len(neighbors1) != 1 || neighbors1[0] != (asgraph.Neighbor{ASN: 2, Relation: asgraph.ProviderToCustomer}) {
		t.Errorf("AS 1 neighbors = %v, want provider of 2", neighbors1)
	}
	neighbors2 := result.Graph.Neighbors(2)
	found := false
	for _, n := range neighbors2 {
		if n == (asgraph.Neighbor{ASN: 3, Relation: asgraph.PeerToPeer}) {
			found = true
		}
	}
	if !found {
		t.Errorf("AS 2 neighbors = %v, want a peer relationship with 3", neighbors2)
	}
}

func TestLoadRelationshipsDiscardsTrailingLabel(t *testing.T) {
	path := writeTempFile(t, "rel.txt", "1|2|-1|some-label\n")

	result, err := LoadRelationships(path)
	if err != nil {
		t.Fatalf("LoadRelationships() = %v, want nil", err)
	}
	if result.LinesLoaded != 1 {
		t.Fatalf("LinesLoaded = %d, want 1", result.LinesLoaded)
	}
}

func TestLoadRelationshipsSkipsMalformedLines(t *testing.T) {
	path := writeTempFile(t, "rel.txt", "1|2|-1\nnot-enough-fields\n1|x|-1\n1|2|99\n")

	result, err := LoadRelationships(path)
	if err != nil {
		t.Fatalf("LoadRelationships() = %v, want nil", err)
	}
	if result.LinesLoaded != 1 {
		t.Errorf("LinesLoaded = %d, want 1", result.LinesLoaded)
	}
	if result.LinesSkipped != 3 {
		t.Errorf("LinesSkipped = %d, want 3", result.LinesSkipped)
	}
}

func TestLoadRelationshipsMissingFile(t *testing.T) {
	if _, err := LoadRelationships(filepath.Join(t.TempDir(), "missing.txt")); err == nil {
		t.Fatalf("LoadRelationships() on a missing file = nil error, want an error")
	}
}
