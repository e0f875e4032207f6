package seqmap

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strconv"
	"time"

	"bedesign-core/offtarget"
)

var (
	// ErrExternal wraps any failure of the matcher process itself.
	ErrExternal = errors.New("off-target matcher failed")

	// ErrMissingResult means the matcher exited but left no result table.
	ErrMissingResult = errors.New("off-target result table missing")
)

// Runner executes the off-target search for a job and blocks until the
// result table at job.Result is complete.
type Runner interface {
	Run(ctx context.Context, job Job) error
}

// RunnerFunc adapts a function to Runner.
type RunnerFunc func(ctx context.Context, job Job) error

func (f RunnerFunc) Run(ctx context.Context, job Job) error { return f(ctx, job) }

// Exec runs the seqmap binary:
//
//	seqmap <mismatch> <spacers.fa> <genome> <out> /output_all_matches
type Exec struct {
	Bin string
}

// Args is the argument list passed to the binary for job.
func (e Exec) Args(job Job) []string {
	return []string{strconv.Itoa(job.MaxMM), job.Spacers, job.Genome, job.Result, "/output_all_matches"}
}

func (e Exec) Run(ctx context.Context, job Job) error {
	cmd := exec.CommandContext(ctx, e.Bin, e.Args(job)...)
	// children of a killed wrapper script may hold the pipes open
	cmd.WaitDelay = 2 * time.Second
	var out bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &out
	if err := cmd.Run(); err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return fmt.Errorf("%w: %s: %v: %s", ErrExternal, e.Bin, err, bytes.TrimSpace(out.Bytes()))
	}
	return nil
}

// Import reads the matcher's result table for job.
func Import(job Job, skip offtarget.SkipFunc) (*offtarget.Table, error) {
	fh, err := os.Open(job.Result)
	if errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrMissingResult, job.Result)
	}
	if err != nil {
		return nil, err
	}
	defer func() { _ = fh.Close() }()

	t, err := offtarget.ParseSeqmap(fh, job.MaxMM, skip)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrExternal, job.Result, err)
	}
	return t, nil
}
