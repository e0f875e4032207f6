// core/fasta/reader.go
package fasta

import (
	"context"
	"errors"
	"fmt"
)

// ErrNoRecords is returned when an input holds no FASTA header at all.
var ErrNoRecords = errors.New("fasta: no records")

// Record represents a parsed FASTA sequence.
type Record struct {
	ID  string
	Seq []byte
}

// LoadRecords reads every record of path ("-" for stdin, gzip allowed).
// Records sharing a header are concatenated in file order and reported once,
// at the position of their first occurrence.
func LoadRecords(ctx context.Context, path string) ([]Record, error) {
	rc, err := Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rc.Close() }()

	var out []Record
	index := map[string]int{}
	err = StreamCtx(ctx, rc, func(r Record) error {
		if i, ok := index[r.ID]; ok {
			out[i].Seq = append(out[i].Seq, r.Seq...)
			return nil
		}
		index[r.ID] = len(out)
		out = append(out, r)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("%s: %w", path, ErrNoRecords)
	}
	return out, nil
}
