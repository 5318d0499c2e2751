/* ============================================================= *\
   announcements.go

   Announcements CSV reader. Header line discarded; each data line is
   seed_asn,prefix,rov_invalid. rov_invalid is truthy iff it contains
   any of the substrings "True", "true", or "1".
\* ============================================================= */

package ioadapters

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/bgp-policy-sim/bgpsim/internal/asgraph"
)

// Announcement is one seed route to install at load time.
type Announcement struct {
	Origin     asgraph.ASN
	Prefix     string
	ROVInvalid bool
}

// LoadAnnouncements reads filename, discarding its header line, and
// returns one Announcement per well-formed data line.
func LoadAnnouncements(filename string) ([]Announcement, error) {
	r := NewCompressedReader(filename)
	if err := r.Open(); err != nil {
		return nil, fmt.Errorf("opening announcements file: %w", err)
	}
	defer r.Close()

	scanner := newLineScanner(r)

	if !scanner.Scan() {
		return nil, fmt.Errorf("announcements file %s has no header line", filename)
	}

	var announcements []Announcement
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}
		fields := strings.SplitN(line, ",", 3)
		if len(fields) != 3 {
			continue
		}

		asn, err := strconv.Atoi(strings.TrimSpace(fields[0]))
		if err != nil {
			continue
		}

		rovField := fields[2]
		rovInvalid := strings.Contains(rovField, "True") ||
			strings.Contains(rovField, "true") ||
			strings.Contains(rovField, "1")

		announcements = append(announcements, Announcement{
			Origin:     asgraph.ASN(asn),
			Prefix:     strings.TrimSpace(fields[1]),
			ROVInvalid: rovInvalid,
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scanning announcements file: %w", err)
	}

	return announcements, nil
}
