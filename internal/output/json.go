// internal/output/json.go
package output

import (
	"encoding/json"
	"io"
	"strconv"
	"strings"

	"bedesign-core/guide"
	"bedesign-core/offtarget"
	"bedesign/pkg/api"
)

// ToAPIRow converts a report row to the stable wire schema (v1).
func ToAPIRow(r offtarget.Row) api.ReportRowV1 {
	return api.ReportRowV1{
		ID:        r.Name,
		Record:    r.Record,
		Strand:    r.Strand.String(),
		Start:     r.Start,
		End:       r.End,
		Seq:       r.Text,
		Spacer:    r.Spacer,
		PAM:       r.PAM,
		Window:    positions(r.Window),
		GC:        guide.FormatGC(r.GC),
		Mismatch:  append([]int(nil), r.Counts...),
		OffTarget: r.Total,
	}
}

func positions(csv string) []int {
	out := []int{}
	for _, f := range strings.Split(csv, ",") {
		if n, err := strconv.Atoi(f); err == nil {
			out = append(out, n)
		}
	}
	return out
}

// WriteJSON writes the whole report as one pretty-indented JSON document.
func WriteJSON(w io.Writer, r Report) error {
	doc := api.ReportV1{PAM: r.PAM, PAMEnd: int(r.End), MaxMM: r.MaxMM, Spacers: make([]api.ReportRowV1, 0, len(r.Rows))}
	for _, row := range r.Rows {
		doc.Spacers = append(doc.Spacers, ToAPIRow(row))
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}
