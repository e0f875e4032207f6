// core/pam/scan.go
package pam

// Strand is the strand a protospacer was found on.
type Strand byte

const (
	Forward Strand = 'S' // sense
	Reverse Strand = 'A' // antisense
)

func (s Strand) String() string {
	switch s {
	case Forward:
		return "forward"
	case Reverse:
		return "reverse"
	}
	return "unknown"
}

// RawMatch is one protospacer hit.
// Start/End are 0-based, half-open, in the scanned (original) orientation.
// Text is canonical: reverse-strand hits are reverse-complemented so the
// PAM/spacer layout always reads as on the forward strand.
type RawMatch struct {
	Strand Strand
	Start  int
	End    int
	Text   string
}

// Scan visits every match of fwd and rev in seq, forward strand first, each
// in ascending start order. Matches may overlap: after a hit at p the search
// resumes at p+1. A non-nil error from visit stops the scan and is returned.
func Scan(seq []byte, fwd, rev *Matcher, visit func(RawMatch) error) error {
	if err := scanStrand(seq, fwd, Forward, visit); err != nil {
		return err
	}
	return scanStrand(seq, rev, Reverse, visit)
}

func scanStrand(seq []byte, m *Matcher, strand Strand, visit func(RawMatch) error) error {
	w := m.Len()
	if w == 0 || len(seq) < w {
		return nil
	}
	end := len(seq) - w
	for pos := 0; pos <= end; pos++ {
		if !m.matchAt(seq, pos) {
			continue
		}
		win := seq[pos : pos+w]
		var text string
		if strand == Reverse {
			text = string(RevComp(win))
		} else {
			text = string(win)
		}
		if err := visit(RawMatch{Strand: strand, Start: pos, End: pos + w, Text: text}); err != nil {
			return err
		}
	}
	return nil
}

// ScanAll collects every match of Scan into a slice.
func ScanAll(seq []byte, fwd, rev *Matcher) []RawMatch {
	var out []RawMatch
	_ = Scan(seq, fwd, rev, func(m RawMatch) error {
		out = append(out, m)
		return nil
	})
	return out
}
