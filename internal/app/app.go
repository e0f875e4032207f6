// internal/app/app.go
package app

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"bedesign/internal/cli"
	"bedesign/internal/cmdutil"
	"bedesign/internal/config"
	"bedesign/internal/pipeline"
	"bedesign/internal/seqmap"
	"bedesign/internal/writers"
)

// Exit codes.
const (
	ExitOK       = 0
	ExitFailure  = 1
	ExitUsage    = 2
	ExitOutput   = 3
	ExitCanceled = 130
)

// RunnerFactory picks the off-target matcher for a configuration.
type RunnerFactory func(config.Config) seqmap.Runner

// SeqmapRunner runs the configured seqmap binary.
func SeqmapRunner(c config.Config) seqmap.Runner { return seqmap.Exec{Bin: c.Seqmap} }

// RunContext parses argv, runs the design pipeline and returns an exit code.
func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	return RunWith(parent, argv, stdout, stderr, SeqmapRunner)
}

// RunWith is RunContext with a custom matcher, for tests.
func RunWith(parent context.Context, argv []string, stdout, stderr io.Writer, newRunner RunnerFactory) int {
	v := config.New()
	cmd := cli.NewCommand(v, func(cmd *cobra.Command, cfg config.Config) error {
		lg := cmdutil.NewLogger(stderr, cfg.Quiet)
		lg.Infof("bedesign %s", cli.Describe(cfg))
		_, err := pipeline.Run(cmd.Context(), cfg, newRunner(cfg), lg, stdout)
		return err
	})
	cmd.SetArgs(argv)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	err := cmd.ExecuteContext(parent)
	if err == nil {
		return ExitOK
	}
	code := exitCode(err)
	if code == ExitOK {
		return code
	}
	_, _ = fmt.Fprintln(stderr, "error:", err)
	if code == ExitUsage && cli.IsUsage(err) {
		_, _ = fmt.Fprintln(stderr, cmd.UsageString())
	}
	return code
}

func exitCode(err error) int {
	switch {
	case errors.Is(err, context.Canceled):
		return ExitCanceled
	case cli.IsUsage(err), errors.Is(err, config.ErrInvalid):
		return ExitUsage
	case errors.Is(err, pipeline.ErrOutput):
		if writers.IsBrokenPipe(err) {
			return ExitOK
		}
		return ExitOutput
	}
	return ExitFailure
}

// Run is RunContext with a background context.
func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}
