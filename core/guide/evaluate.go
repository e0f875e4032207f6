// core/guide/evaluate.go
package guide

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"bedesign-core/pam"
)

// PolyT is the terminator-like run no spacer may contain.
const PolyT = "TTTT"

// Window is the editable stretch of a spacer, Start being 1-based.
type Window struct {
	Start int
	Size  int
}

// Params are the per-candidate evaluation settings.
type Params struct {
	End       pam.End
	PAMLen    int
	SpacerLen int
	Target    byte
	Window    Window
}

// Validate checks the window against the spacer and the target base.
func (p Params) Validate() error {
	switch {
	case p.SpacerLen <= 0:
		return fmt.Errorf("spacer length must be > 0, got %d", p.SpacerLen)
	case p.Window.Size <= 0:
		return fmt.Errorf("window size must be > 0, got %d", p.Window.Size)
	case p.Window.Start < 1:
		return fmt.Errorf("window start is 1-based, got %d", p.Window.Start)
	case p.Window.Start+p.Window.Size-1 > p.SpacerLen:
		return fmt.Errorf("window %d-%d exceeds spacer length %d",
			p.Window.Start, p.Window.Start+p.Window.Size-1, p.SpacerLen)
	}
	if strings.IndexByte("ACGT", p.Target) < 0 {
		return errors.New("target base must be one of A, C, G, T")
	}
	return nil
}

// Reject tells why a raw match was dropped.
type Reject int

const (
	Accept Reject = iota
	RejectWindow
	RejectPolyT
)

func (r Reject) String() string {
	switch r {
	case Accept:
		return "accept"
	case RejectWindow:
		return "no target base in window"
	case RejectPolyT:
		return "poly-T run in spacer"
	}
	return "unknown"
}

// Evaluation is what survives the window and composition filters.
type Evaluation struct {
	Spacer string
	PAM    string
	Window string // comma-joined 1-based positions of the target base
	GC     float64
}

// Split separates canonical protospacer text into spacer and PAM.
func Split(text string, p Params) (spacer, motif string) {
	if p.End == pam.End5 {
		return text[p.PAMLen:], text[:p.PAMLen]
	}
	return text[:p.SpacerLen], text[p.SpacerLen:]
}

// WindowPositions lists the 1-based spacer positions inside w holding target.
// ok is false when the window does not contain target at all.
func WindowPositions(spacer string, target byte, w Window) (string, bool) {
	lo := w.Start - 1
	hi := lo + w.Size
	if lo < 0 {
		lo = 0
	}
	if hi > len(spacer) {
		hi = len(spacer)
	}
	var pos []string
	for i := lo; i < hi; i++ {
		if spacer[i] == target {
			pos = append(pos, strconv.Itoa(i+1))
		}
	}
	return strings.Join(pos, ","), len(pos) > 0
}

// GCContent is the G+C fraction of seq rounded to two decimals.
func GCContent(seq string) float64 {
	if len(seq) == 0 {
		return 0
	}
	n := strings.Count(seq, "G") + strings.Count(seq, "C")
	return math.Round(float64(n)/float64(len(seq))*100) / 100
}

// FormatGC renders a GC fraction the way reports print it ("0.80").
func FormatGC(gc float64) string { return strconv.FormatFloat(gc, 'f', 2, 64) }

// Evaluate applies the window check, then the poly-T rule, to one raw match.
func Evaluate(m pam.RawMatch, p Params) (Evaluation, Reject) {
	spacer, motif := Split(m.Text, p)
	loc, ok := WindowPositions(spacer, p.Target, p.Window)
	if !ok {
		return Evaluation{}, RejectWindow
	}
	if strings.Contains(spacer, PolyT) {
		return Evaluation{}, RejectPolyT
	}
	return Evaluation{Spacer: spacer, PAM: motif, Window: loc, GC: GCContent(spacer)}, Accept
}
