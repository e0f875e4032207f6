// core/offtarget/aggregate.go
package offtarget

import (
	"strconv"

	"bedesign-core/guide"
	"bedesign-core/pam"
)

// Row is one report line: a candidate and its off-target profile.
type Row struct {
	guide.Candidate
	Counts []int // index = mismatch level
	Total  int   // hits at levels 1..MaxMM
}

// Aggregate joins candidates with t, keeping candidate order. Level 0 is the
// exact match and is left out of Total.
func Aggregate(cands []guide.Candidate, t *Table) []Row {
	rows := make([]Row, 0, len(cands))
	for _, c := range cands {
		counts := t.Counts(c.Name)
		total := 0
		for _, n := range counts[1:] {
			total += n
		}
		rows = append(rows, Row{Candidate: c, Counts: counts, Total: total})
	}
	return rows
}

// Header is the report header; spacer and PAM columns follow the PAM side.
func Header(end pam.End, maxMM int) []string {
	h := []string{"SgID", "Start", "End", "Sg_seq"}
	if end == pam.End5 {
		h = append(h, "PAM", "Spacer")
	} else {
		h = append(h, "Spacer", "PAM")
	}
	h = append(h, "Location_of_target_base_in_spacer", "GC_content")
	for i := 0; i <= maxMM; i++ {
		h = append(h, "M"+strconv.Itoa(i))
	}
	return append(h, "Total")
}

// Fields renders r in Header order.
func (r Row) Fields(end pam.End) []string {
	f := []string{r.Name, strconv.Itoa(r.Start), strconv.Itoa(r.End), r.Text}
	if end == pam.End5 {
		f = append(f, r.PAM, r.Spacer)
	} else {
		f = append(f, r.Spacer, r.PAM)
	}
	f = append(f, r.Window, guide.FormatGC(r.GC))
	for _, n := range r.Counts {
		f = append(f, strconv.Itoa(n))
	}
	return append(f, strconv.Itoa(r.Total))
}
