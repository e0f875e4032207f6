// internal/output/fasta.go
package output

import (
	"fmt"
	"io"
)

// WriteFASTA writes one record per spacer (PAM excluded), with coordinates
// and the off-target total in the header.
func WriteFASTA(w io.Writer, r Report) error {
	for _, row := range r.Rows {
		if _, err := fmt.Fprintf(
			w,
			">%s start=%d end=%d strand=%s pam=%s off_target=%d\n%s\n",
			row.Name, row.Start, row.End, row.Strand, row.PAM, row.Total, row.Spacer,
		); err != nil {
			return err
		}
	}
	return nil
}
