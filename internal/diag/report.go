/* ============================================================= *\
   report.go

   CSV writer for the supplemental customer-cone report.
\* ============================================================= */

package diag

import (
	"bufio"
	"fmt"
	"os"
)

// WriteConeReport writes sizes to filename as "asn,cone_size" rows,
// sorted ascending by ASN (sizes is already sorted by CustomerCones).
func WriteConeReport(filename string, sizes []ConeSize) error {
	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("creating cone report file: %w", err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	if _, err := w.WriteString("asn,cone_size\n"); err != nil {
		return err
	}
	for _, s := range sizes {
		if _, err := fmt.Fprintf(w, "%d,%d\n", s.ASN, s.Size); err != nil {
			return err
		}
	}
	return w.Flush()
}
