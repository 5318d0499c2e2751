package ioadapters

import (
	"bytes"
	"compress/gzip"
	"os"
	"path/filepath"
	"testing"
)

func TestCompressedReaderPlainFile(t *testing.T) {
	path := writeTempFile(t, "plain.txt", "line1\nline2\n")

	r := NewCompressedReader(path)
	if err := r.Open(); err != nil {
		t.Fatalf("Open() = %v, want nil", err)
	}
	defer r.Close()

	var lines []string
	scanner := r.Scanner()
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if len(lines) != 2 || lines[0] != "line1" || lines[1] != "line2" {
		t.Fatalf("lines = %v, want [line1 line2]", lines)
	}
}

func TestCompressedReaderGzipFile(t *testing.T) {
	var buf bytes.Buffer
	gz := gzip.NewWriter(&buf)
	gz.Write([]byte("1|2|-1\n2|3|0\n"))
	gz.Close()

	path := filepath.Join(t.TempDir(), "rel.txt.gz")
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		t.Fatalf("writing gzip fixture: %v", err)
	}

	r := NewCompressedReader(path)
	if err := r.Open(); err != nil {
		t.Fatalf("Open() = %v, want nil", err)
	}
	defer r.Close()

	var lines []string
	scanner := r.Scanner()
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if len(lines) != 2 || lines[0] != "1|2|-1" {
		t.Fatalf("lines = %v, want [1|2|-1 2|3|0]", lines)
	}
}
