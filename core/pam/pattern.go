// core/pam/pattern.go
package pam

import (
	"errors"
	"fmt"
	"strings"
)

// End says on which side of the spacer the PAM sits.
type End int

const (
	End5 End = 5 // PAM precedes the spacer
	End3 End = 3 // PAM follows the spacer (SpCas9 NGG)
)

func (e End) String() string {
	switch e {
	case End5:
		return "5'"
	case End3:
		return "3'"
	}
	return fmt.Sprintf("End(%d)", int(e))
}

// ErrUnknownSymbol is wrapped by ConfigError when a PAM holds a non-IUPAC byte.
var ErrUnknownSymbol = errors.New("unknown ambiguity symbol")

// ConfigError reports an unusable PAM specification.
type ConfigError struct {
	Field string
	Err   error
}

func (e *ConfigError) Error() string { return fmt.Sprintf("pam: %s: %v", e.Field, e.Err) }
func (e *ConfigError) Unwrap() error { return e.Err }

// Spec is a PAM motif plus the spacer it guards.
type Spec struct {
	PAM       string
	SpacerLen int
	End       End
}

// Validate checks the spec without compiling it.
func (s Spec) Validate() error {
	if s.PAM == "" {
		return &ConfigError{Field: "pam", Err: errors.New("empty motif")}
	}
	for i := 0; i < len(s.PAM); i++ {
		if _, ok := Mask(s.PAM[i]); !ok {
			return &ConfigError{Field: "pam", Err: fmt.Errorf("%w %q at position %d", ErrUnknownSymbol, s.PAM[i], i+1)}
		}
	}
	if s.SpacerLen <= 0 {
		return &ConfigError{Field: "spacer", Err: fmt.Errorf("length must be > 0, got %d", s.SpacerLen)}
	}
	if s.End != End3 && s.End != End5 {
		return &ConfigError{Field: "end", Err: fmt.Errorf("must be 3 or 5, got %d", int(s.End))}
	}
	return nil
}

// Len is the length of a full protospacer (spacer + PAM).
func (s Spec) Len() int { return len(s.PAM) + s.SpacerLen }

// classAny marks a spacer column: any byte is accepted there.
const classAny uint8 = 0xFF

// Matcher is a fixed-length pattern with one base class per column.
type Matcher struct {
	classes []uint8
	pamCols []int // columns that are not classAny
}

// Len is the width of the window the matcher tests.
func (m *Matcher) Len() int { return len(m.classes) }

// Match reports whether window (exactly Len bytes) fits the pattern.
// Only concrete A/C/G/T bases satisfy a PAM column.
func (m *Matcher) Match(window []byte) bool {
	if len(window) != len(m.classes) {
		return false
	}
	return m.matchAt(window, 0)
}

func (m *Matcher) matchAt(seq []byte, pos int) bool {
	for _, j := range m.pamCols {
		if m.classes[j]&seqMask[seq[pos+j]] == 0 {
			return false
		}
	}
	return true
}

// String renders the matcher as a character-class pattern, e.g. ".{20}[ACGT][G][G]".
func (m *Matcher) String() string {
	var b strings.Builder
	run := 0
	flush := func() {
		if run > 0 {
			fmt.Fprintf(&b, ".{%d}", run)
			run = 0
		}
	}
	for _, c := range m.classes {
		if c == classAny {
			run++
			continue
		}
		flush()
		b.WriteByte('[')
		b.WriteString(maskBases(c))
		b.WriteByte(']')
	}
	flush()
	return b.String()
}

func newMatcher(pam []uint8, spacerLen int, pamFirst bool) *Matcher {
	classes := make([]uint8, 0, len(pam)+spacerLen)
	spacer := make([]uint8, spacerLen)
	for i := range spacer {
		spacer[i] = classAny
	}
	if pamFirst {
		classes = append(append(classes, pam...), spacer...)
	} else {
		classes = append(append(classes, spacer...), pam...)
	}
	m := &Matcher{classes: classes}
	for j, c := range classes {
		if c != classAny {
			m.pamCols = append(m.pamCols, j)
		}
	}
	return m
}

// Compile builds the forward-strand matcher and the matcher that finds the
// same motif on the opposite strand while scanning the original orientation.
func Compile(s Spec) (fwd, rev *Matcher, err error) {
	if err := s.Validate(); err != nil {
		return nil, nil, err
	}
	n := len(s.PAM)
	fw := make([]uint8, n)
	rv := make([]uint8, n)
	for i := 0; i < n; i++ {
		m, _ := Mask(s.PAM[i])
		fw[i] = m
		rv[n-1-i] = complementMask(m)
	}
	pamFirst := s.End == End5
	return newMatcher(fw, s.SpacerLen, pamFirst), newMatcher(rv, s.SpacerLen, !pamFirst), nil
}
