/* ============================================================= *\
   relationships.go

   CAIDA-style AS relationship file reader. Lines that are empty or
   begin with '#' are ignored. Data lines are pipe-separated:
   ASN1|ASN2|REL[|LABEL]. REL -1 means ASN1 is provider of ASN2; REL 0
   means ASN1 and ASN2 are peers. Any other value skips the line
   silently. An optional trailing label field is consumed and
   discarded. Grounded on caida_file_readers.go's read_as_rel and
   readers.go's CompressedReader (transparent .gz/.bz2 decompression,
   since CAIDA distributes as-rel files compressed).
\* ============================================================= */

package ioadapters

import (
	"bufio"
	"fmt"
	"strconv"
	"strings"

	"github.com/bgp-policy-sim/bgpsim/internal/asgraph"
)

// LoadRelationshipsResult carries the loaded graph plus load counters
// for diagnostics (spec.md §7's non-fatal skip-with-warning contract).
type LoadRelationshipsResult struct {
	Graph           *asgraph.Graph
	LinesLoaded     int
	LinesSkipped    int
}

// LoadRelationships reads a CAIDA-format AS relationship file from
// filename, decompressing transparently if it ends in .gz or .bz2.
func LoadRelationships(filename string) (*LoadRelationshipsResult, error) {
	r := NewCompressedReader(filename)
	if err := r.Open(); err != nil {
		return nil, fmt.Errorf("opening relationships file: %w", err)
	}
	defer r.Close()

	g := asgraph.New()
	result := &LoadRelationshipsResult{Graph: g}

	scanner := newLineScanner(r)
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.FieldsFunc(line, func(c rune) bool { return c == '|' })
		if len(fields) < 3 {
			result.LinesSkipped++
			continue
		}

		asn1, err1 := strconv.Atoi(strings.TrimSpace(fields[0]))
		asn2, err2 := strconv.Atoi(strings.TrimSpace(fields[1]))
		rel, err3 := strconv.Atoi(strings.TrimSpace(fields[2]))
		if err1 != nil || err2 != nil || err3 != nil {
			result.LinesSkipped++
			continue
		}
		// fields[3], if present, is the trailing BGP label: consumed and discarded.

		var relFromAsn1 asgraph.Relation
		switch rel {
		case -1:
			relFromAsn1 = asgraph.ProviderToCustomer
		case 0:
			relFromAsn1 = asgraph.PeerToPeer
		default:
			result.LinesSkipped++
			continue
		}

		g.AddRelationship(asgraph.ASN(asn1), asgraph.ASN(asn2), relFromAsn1)
		result.LinesLoaded++
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scanning relationships file: %w", err)
	}

	return result, nil
}

// bufSize matches the teacher's read_customer_cone scanner buffer,
// large enough for CAIDA's longer cone/relationship lines.
const bufSize = 512 * 1024

func newLineScanner(r *CompressedReader) *bufio.Scanner {
	scanner := r.Scanner()
	buf := make([]byte, bufSize)
	scanner.Buffer(buf, bufSize)
	return scanner
}
