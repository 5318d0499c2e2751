/* ============================================================= *\
   rov.go

   ROV-enabled ASN list reader: one ASN per line, decimal. Empty
   lines and lines beginning with '#' are ignored; malformed lines
   are skipped with a warning. A missing file yields an empty set
   (ROV disabled), matching main.cpp's load_rov_asns, which warns but
   does not fail when the file can't be opened.
\* ============================================================= */

package ioadapters

import (
	"log"
	"strconv"
	"strings"

	"github.com/bgp-policy-sim/bgpsim/internal/asgraph"
)

// LoadROVASNs reads filename and returns the set of ROV-enabled ASNs.
// If the file cannot be opened, it logs a warning and returns an
// empty slice rather than failing the run.
func LoadROVASNs(filename string) []asgraph.ASN {
	r := NewCompressedReader(filename)
	if err := r.Open(); err != nil {
		log.Printf("Warning: could not open ROV ASNs file: %s: %v", filename, err)
		return nil
	}
	defer r.Close()

	scanner := newLineScanner(r)

	var asns []asgraph.ASN
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		n, err := strconv.Atoi(line)
		if err != nil {
			log.Printf("Warning: skipping invalid ASN: %s", line)
			continue
		}
		asns = append(asns, asgraph.ASN(n))
	}
	if err := scanner.Err(); err != nil {
		log.Printf("Warning: error reading ROV ASNs file: %v", err)
	}

	return asns
}
