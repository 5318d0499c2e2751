/* ============================================================= *\
   compressed_reader.go

   Transparent-decompression file reader. Grounded on readers.go's
   CompressedReader: plain files, .gz, and .bz2 are all scanned the
   same way by the caller.
\* ============================================================= */

package ioadapters

import (
	"bufio"
	"compress/bzip2"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"strings"
)

// CompressedReader opens filename and exposes a line scanner over its
// (possibly decompressed) contents.
type CompressedReader struct {
	filename     string
	fp           *os.File
	decompressed io.Reader
	toClose      io.Closer // bzip2.Reader has no Close method, so only .gz sets this.
}

// NewCompressedReader returns a reader bound to filename. Call Open
// before Scanner.
func NewCompressedReader(filename string) *CompressedReader {
	return &CompressedReader{filename: filename}
}

// Open opens the underlying file and wraps it with a decompressor
// chosen by the filename's suffix.
func (r *CompressedReader) Open() error {
	fp, err := os.Open(r.filename)
	if err != nil {
		return fmt.Errorf("%s: %w", r.filename, err)
	}
	r.fp = fp

	switch {
	case strings.HasSuffix(r.filename, ".gz"):
		gz, err := gzip.NewReader(fp)
		if err != nil {
			fp.Close()
			return fmt.Errorf("%s: %w", r.filename, err)
		}
		r.toClose = gz
		r.decompressed = gz
	case strings.HasSuffix(r.filename, ".bz2"):
		r.decompressed = bzip2.NewReader(fp)
	default:
		r.decompressed = fp
	}
	return nil
}

// Scanner returns a line scanner over the decompressed contents.
func (r *CompressedReader) Scanner() *bufio.Scanner {
	return bufio.NewScanner(r.decompressed)
}

// Close releases the underlying file (and decompressor, if any).
func (r *CompressedReader) Close() {
	if r.toClose != nil {
		r.toClose.Close()
	}
	if r.fp != nil {
		r.fp.Close()
	}
}
