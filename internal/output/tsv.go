// internal/output/tsv.go
package output

import (
	"io"
	"strings"

	"bedesign-core/offtarget"
)

// WriteTSV writes the report table: one header row, then one row per spacer
// in admission order. Column order depends on the PAM side and is relied on
// by downstream tools.
func WriteTSV(w io.Writer, r Report) error {
	if _, err := io.WriteString(w, strings.Join(offtarget.Header(r.End, r.MaxMM), "\t")+"\n"); err != nil {
		return err
	}
	for _, row := range r.Rows {
		if _, err := io.WriteString(w, strings.Join(row.Fields(r.End), "\t")+"\n"); err != nil {
			return err
		}
	}
	return nil
}
