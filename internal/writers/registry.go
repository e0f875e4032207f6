// internal/writers/registry.go
package writers

import (
	"fmt"
	"io"
	"sort"

	"bedesign/internal/output"
)

// ReportWriters maps a format name to its renderer. Register in init() blocks.
var ReportWriters = map[string]func(io.Writer, output.Report) error{}

// Register is idempotent, last wins.
func Register(format string, fn func(io.Writer, output.Report) error) { ReportWriters[format] = fn }

func init() {
	Register("tsv", output.WriteTSV)
	Register("json", output.WriteJSON)
	Register("fasta", output.WriteFASTA)
}

// Formats lists the registered format names, sorted.
func Formats() []string {
	out := make([]string, 0, len(ReportWriters))
	for k := range ReportWriters {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// Has reports whether a writer is registered for format.
func Has(format string) bool {
	_, ok := ReportWriters[format]
	return ok
}

// WriteReport dispatches to the writer registered for format.
func WriteReport(format string, w io.Writer, r output.Report) error {
	fn, ok := ReportWriters[format]
	if !ok {
		return fmt.Errorf("unknown report format %q (no writer registered)", format)
	}
	return fn(w, r)
}
