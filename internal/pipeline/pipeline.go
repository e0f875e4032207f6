// internal/pipeline/pipeline.go
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"bedesign-core/fasta"
	"bedesign-core/guide"
	"bedesign-core/offtarget"
	"bedesign/internal/cmdutil"
	"bedesign/internal/config"
	"bedesign/internal/output"
	"bedesign/internal/seqmap"
	"bedesign/internal/writers"
)

var (
	// ErrInput wraps failures to read the gene or genome input.
	ErrInput = errors.New("input error")

	// ErrOutput wraps failures to write the report.
	ErrOutput = errors.New("output error")
)

// Summary describes a finished run.
type Summary struct {
	Records     int
	Stats       guide.Stats
	SkippedRows int
	Overwrote   bool
	TempDir     string // set only when the scratch directory was kept
	Report      output.Report
}

// Run executes the whole design job described by cfg. It blocks while the
// matcher runs; ctx cancels both the read and the matcher process.
func Run(ctx context.Context, cfg config.Config, runner seqmap.Runner, lg *cmdutil.Logger, stdout io.Writer) (Summary, error) {
	var sum Summary
	if err := cfg.Validate(); err != nil {
		return sum, err
	}
	designer, err := guide.NewDesigner(cfg.Spec(), cfg.TargetBase(), cfg.Window(), nil)
	if err != nil {
		return sum, fmt.Errorf("%w: %w", config.ErrInvalid, err)
	}
	if _, err := os.Stat(cfg.Genome); err != nil {
		return sum, fmt.Errorf("%w: genome: %w", ErrInput, err)
	}

	lg.Infof("Loading gene file [%s]", cfg.Input)
	recs, err := fasta.LoadRecords(ctx, cfg.Input)
	if err != nil {
		if ctx.Err() != nil {
			return sum, ctx.Err()
		}
		return sum, fmt.Errorf("%w: %w", ErrInput, err)
	}
	sum.Records = len(recs)

	fwd, rev := designer.Matchers()
	lg.Infof("Scanning %d record(s) with %s / %s", len(recs), fwd, rev)
	cands, err := designer.DesignAll(recs)
	if err != nil {
		return sum, err
	}
	sum.Stats = designer.Stats()
	lg.Infof("%d raw site(s): %d without %s in window, %d with poly-T, %d duplicate(s), %d accepted",
		sum.Stats.Raw, sum.Stats.RejectedWindow, cfg.Target, sum.Stats.RejectedPolyT, sum.Stats.Duplicates, sum.Stats.Accepted)

	dir, err := os.MkdirTemp("", "bedesign-*")
	if err != nil {
		return sum, err
	}
	if cfg.KeepTemp {
		sum.TempDir = dir
		lg.Infof("Keeping temporary files in %s", dir)
	} else {
		defer func() { _ = os.RemoveAll(dir) }()
	}

	job, err := seqmap.Export(dir, cands, cfg.Genome, cfg.Mismatch)
	if err != nil {
		return sum, err
	}

	var table *offtarget.Table
	if len(cands) == 0 {
		lg.Warnf("no candidates found; skipping off-target search")
		table = offtarget.NewTable(cfg.Mismatch)
	} else {
		lg.Infof("Calculating off-target effect for %d spacer(s). Please wait.", len(cands))
		if err := runner.Run(ctx, job); err != nil {
			return sum, err
		}
		table, err = seqmap.Import(job, func(line int, reason string) {
			sum.SkippedRows++
			lg.Warnf("%s:%d skipped: %s", job.Result, line, reason)
		})
		if err != nil {
			return sum, err
		}
	}

	sum.Report = output.Report{
		PAM:   cfg.PAM,
		End:   cfg.Spec().End,
		MaxMM: cfg.Mismatch,
		Rows:  offtarget.Aggregate(cands, table),
	}
	existed, err := writers.WriteReportFile(cfg.Output, cfg.Format, stdout, sum.Report)
	sum.Overwrote = existed
	if existed {
		lg.Warnf("%s existed and was overwritten", cfg.Output)
	}
	if err != nil {
		return sum, fmt.Errorf("%w: %w", ErrOutput, err)
	}
	lg.Infof("Task done! %d spacer(s) written to %s", len(sum.Report.Rows), cfg.Output)
	return sum, nil
}
