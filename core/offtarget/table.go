// core/offtarget/table.go
package offtarget

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ErrNoHeader means the matcher output did not even carry its header line.
var ErrNoHeader = errors.New("offtarget: result table has no header line")

// minColumns is the narrowest row from which name (column 4) and level
// (second-to-last column) can be told apart.
const minColumns = 6

// Table holds hit counts per candidate name and mismatch level 0..MaxMM.
type Table struct {
	MaxMM  int
	counts map[string][]int
}

func NewTable(maxMM int) *Table {
	if maxMM < 0 {
		maxMM = 0
	}
	return &Table{MaxMM: maxMM, counts: make(map[string][]int)}
}

// Add counts one hit for name at level. It reports false (and counts
// nothing) when level is outside 0..MaxMM.
func (t *Table) Add(name string, level int) bool {
	if level < 0 || level > t.MaxMM {
		return false
	}
	c, ok := t.counts[name]
	if !ok {
		c = make([]int, t.MaxMM+1)
		t.counts[name] = c
	}
	c[level]++
	return true
}

// Counts returns a copy of the per-level counts for name; unknown names
// yield all zeros.
func (t *Table) Counts(name string) []int {
	out := make([]int, t.MaxMM+1)
	copy(out, t.counts[name])
	return out
}

// Names is the number of distinct names with at least one hit.
func (t *Table) Names() int { return len(t.counts) }

// SkipFunc is told about every row the parser drops; line is 1-based.
type SkipFunc func(line int, reason string)

// ParseSeqmap reads a seqmap-style hit table: one header line, then one row
// per alignment with the probe name in column 4 and the mismatch count in
// the second-to-last column. Rows that cannot be read are reported through
// skip and otherwise ignored.
func ParseSeqmap(r io.Reader, maxMM int, skip SkipFunc) (*Table, error) {
	if skip == nil {
		skip = func(int, string) {}
	}
	t := NewTable(maxMM)
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), 16*1024*1024)

	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			return nil, fmt.Errorf("offtarget: read header: %w", err)
		}
		return nil, ErrNoHeader
	}
	ln := 1
	for sc.Scan() {
		ln++
		line := strings.TrimRight(sc.Text(), "\r\n")
		if strings.TrimSpace(line) == "" {
			continue
		}
		f := strings.Split(line, "\t")
		if len(f) < minColumns {
			skip(ln, fmt.Sprintf("expected at least %d columns, got %d", minColumns, len(f)))
			continue
		}
		name := strings.TrimSpace(f[3])
		level, err := strconv.Atoi(strings.TrimSpace(f[len(f)-2]))
		if err != nil {
			skip(ln, fmt.Sprintf("bad mismatch level %q", f[len(f)-2]))
			continue
		}
		if !t.Add(name, level) {
			skip(ln, fmt.Sprintf("mismatch level %d outside 0..%d", level, maxMM))
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("offtarget: line %d: %w", ln+1, err)
	}
	return t, nil
}
