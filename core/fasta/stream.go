// core/fasta/stream.go
package fasta

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"io"
)

// StreamCtx parses FASTA from r and emits one Record per header line.
// The record name is the whole header after '>', trimmed. Sequence lines are
// joined without separator and uppercased.
//
// It is cancelable: returning promptly when ctx is Done, even mid-record.
func StreamCtx(ctx context.Context, r io.Reader, emit func(Record) error) error {
	sc := bufio.NewScanner(r)
	const maxLine = 64 * 1024 * 1024 // allow very long single-line sequences (64 MiB)
	buf := make([]byte, 64*1024)
	sc.Buffer(buf, maxLine)

	var (
		name   string
		open   bool
		seq    = make([]byte, 0, 1<<16)
		lineNo int
	)

	flush := func() error {
		if !open {
			return nil
		}
		return emit(Record{ID: name, Seq: append([]byte(nil), seq...)})
	}

	for sc.Scan() {
		lineNo++
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		line := bytes.TrimSpace(sc.Bytes())
		if len(line) == 0 {
			continue
		}
		if line[0] == '>' {
			if err := flush(); err != nil {
				return err
			}
			seq = seq[:0]
			name = string(bytes.TrimSpace(line[1:]))
			open = true
			continue
		}
		if !open {
			return fmt.Errorf("fasta: line %d: sequence data before first header", lineNo)
		}
		seq = append(seq, bytes.ToUpper(line)...)
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("fasta scan: %w", err)
	}
	return flush()
}

// Stream is StreamCtx with a background context.
func Stream(r io.Reader, emit func(Record) error) error {
	return StreamCtx(context.Background(), r, emit)
}
