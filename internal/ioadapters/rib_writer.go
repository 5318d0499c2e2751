/* ============================================================= *\
   rib_writer.go

   RIB CSV writer: header "asn,prefix,as_path", one data line per
   (AS, prefix) RIB entry, sorted ascending lexicographically by
   (asn, prefix, formatted-path). Grounded on safeset.go's
   write_to_file and the original's export_ribs_csv sort-then-write
   shape.
\* ============================================================= */

package ioadapters

import (
	"bufio"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/bgp-policy-sim/bgpsim/internal/sim"
)

// FormatASPath renders an AS path as a parenthesized, comma-space
// separated list: "(a, b, c)". A single-element path gets a trailing
// comma before the closing paren: "(a,)".
func FormatASPath(path []int) string {
	var b strings.Builder
	b.WriteByte('(')
	for i, asn := range path {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(strconv.Itoa(asn))
	}
	if len(path) == 1 {
		b.WriteByte(',')
	}
	b.WriteByte(')')
	return b.String()
}

type ribRow struct {
	asn    int
	prefix string
	path   string
}

// WriteRIBCSV writes entries to filename, sorted ascending by
// (asn, prefix, formatted-path) as required by spec.md §6.
func WriteRIBCSV(filename string, entries []sim.RIBEntry) error {
	rows := make([]ribRow, 0, len(entries))
	for _, e := range entries {
		path := make([]int, len(e.Route.ASPath))
		for i, asn := range e.Route.ASPath {
			path[i] = int(asn)
		}
		rows = append(rows, ribRow{
			asn:    int(e.ASN),
			prefix: e.Route.Prefix,
			path:   FormatASPath(path),
		})
	}

	sort.Slice(rows, func(i, j int) bool {
		if rows[i].asn != rows[j].asn {
			return rows[i].asn < rows[j].asn
		}
		if rows[i].prefix != rows[j].prefix {
			return rows[i].prefix < rows[j].prefix
		}
		return rows[i].path < rows[j].path
	})

	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("creating output file: %w", err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	if _, err := w.WriteString("asn,prefix,as_path\n"); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	for _, row := range rows {
		if _, err := fmt.Fprintf(w, "%d,%s,\"%s\"\n", row.asn, row.prefix, row.path); err != nil {
			return fmt.Errorf("writing row: %w", err)
		}
	}
	return w.Flush()
}
