// core/guide/design.go
package guide

import (
	"fmt"

	"bedesign-core/fasta"
	"bedesign-core/pam"
)

// Candidate is an accepted spacer, ready for export and reporting.
type Candidate struct {
	Name   string // <record>_<S|A>_<n>
	Record string
	Strand pam.Strand
	Start  int // 0-based, original orientation
	End    int
	Text   string // canonical protospacer (spacer + PAM)
	Spacer string
	PAM    string
	Window string
	GC     float64
}

// Stats counts what happened to raw matches during a run.
type Stats struct {
	Raw            int
	RejectedWindow int
	RejectedPolyT  int
	Duplicates     int
	Accepted       int
}

// Designer turns sequence records into named, deduplicated candidates.
type Designer struct {
	fwd, rev *pam.Matcher
	params   Params
	reg      *Registry
	stats    Stats
}

// NewDesigner compiles spec and validates the evaluation settings. A nil
// registry gets a fresh one; pass a shared registry to dedupe across designers.
func NewDesigner(spec pam.Spec, target byte, win Window, reg *Registry) (*Designer, error) {
	fwd, rev, err := pam.Compile(spec)
	if err != nil {
		return nil, err
	}
	p := Params{End: spec.End, PAMLen: len(spec.PAM), SpacerLen: spec.SpacerLen, Target: target, Window: win}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if reg == nil {
		reg = NewRegistry()
	}
	return &Designer{fwd: fwd, rev: rev, params: p, reg: reg}, nil
}

// Matchers exposes the compiled forward and reverse matchers.
func (d *Designer) Matchers() (fwd, rev *pam.Matcher) { return d.fwd, d.rev }

// Stats returns the counters accumulated so far.
func (d *Designer) Stats() Stats { return d.stats }

// Design scans one record. Names are numbered per strand from 1, counting
// admitted candidates only.
func (d *Designer) Design(rec fasta.Record) ([]Candidate, error) {
	var out []Candidate
	counter := map[pam.Strand]int{}
	err := pam.Scan(rec.Seq, d.fwd, d.rev, func(m pam.RawMatch) error {
		d.stats.Raw++
		ev, why := Evaluate(m, d.params)
		switch why {
		case RejectWindow:
			d.stats.RejectedWindow++
			return nil
		case RejectPolyT:
			d.stats.RejectedPolyT++
			return nil
		}
		if !d.reg.Admit(ev.Spacer) {
			d.stats.Duplicates++
			return nil
		}
		d.stats.Accepted++
		counter[m.Strand]++
		out = append(out, Candidate{
			Name:   fmt.Sprintf("%s_%c_%d", rec.ID, byte(m.Strand), counter[m.Strand]),
			Record: rec.ID,
			Strand: m.Strand,
			Start:  m.Start,
			End:    m.End,
			Text:   m.Text,
			Spacer: ev.Spacer,
			PAM:    ev.PAM,
			Window: ev.Window,
			GC:     ev.GC,
		})
		return nil
	})
	return out, err
}

// DesignAll scans records in order, sharing the designer's registry.
func (d *Designer) DesignAll(recs []fasta.Record) ([]Candidate, error) {
	var out []Candidate
	for _, r := range recs {
		cs, err := d.Design(r)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", r.ID, err)
		}
		out = append(out, cs...)
	}
	return out, nil
}
