package app

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bedesign/internal/config"
	"bedesign/internal/seqmap"
	"bedesign/internal/version"
)

// noHits writes an empty but well-formed seqmap table.
func noHits(config.Config) seqmap.Runner {
	return seqmap.RunnerFunc(func(_ context.Context, job seqmap.Job) error {
		return os.WriteFile(job.Result, []byte("trans_id\ttrans_coord\ttarget_seq\tprobe_id\tprobe_seq\tnum_mismatch\tstrand\n"), 0o644)
	})
}

func inputs(t *testing.T) (gene, genome string) {
	t.Helper()
	dir := t.TempDir()
	gene = filepath.Join(dir, "gene.fa")
	genome = filepath.Join(dir, "genome.fa")
	require.NoError(t, os.WriteFile(gene, []byte(">g1\nAACCTAGATACCGGTTTTAGGACCTAGG\n"), 0o644))
	require.NoError(t, os.WriteFile(genome, []byte(">chr\nACGT\n"), 0o644))
	return gene, genome
}

func run(t *testing.T, args ...string) (int, string, string) {
	t.Helper()
	var out, errb bytes.Buffer
	code := RunWith(context.Background(), args, &out, &errb, noHits)
	return code, out.String(), errb.String()
}

func TestHelp(t *testing.T) {
	code, out, _ := run(t, "-h")
	assert.Equal(t, ExitOK, code)
	assert.Contains(t, out, "--window-start")
	assert.Contains(t, out, "base editing sgRNA design")
}

func TestVersion(t *testing.T) {
	code, out, _ := run(t, "--version")
	assert.Equal(t, ExitOK, code)
	assert.Equal(t, "bedesign version "+version.Version+"\n", out)
}

func TestUsageErrors(t *testing.T) {
	for _, args := range [][]string{
		{"--no-such-flag"},
		{"-i", "gene.fa", "stray-positional"},
		{"-s", "twenty"},
	} {
		code, _, stderr := run(t, args...)
		assert.Equal(t, ExitUsage, code, "%v", args)
		assert.Contains(t, stderr, "error:")
	}
}

func TestConfigErrors(t *testing.T) {
	gene, genome := inputs(t)
	for _, args := range [][]string{
		{"-g", genome},
		{"-i", gene},
		{"-i", gene, "-g", genome, "-p", "NGJ"},
		{"-i", gene, "-g", genome, "-w", "19"},
		{"-i", gene, "-g", genome, "-e", "4"},
	} {
		code, _, _ := run(t, args...)
		assert.Equal(t, ExitUsage, code, "%v", args)
	}
}

func TestEndToEnd(t *testing.T) {
	gene, genome := inputs(t)
	out := filepath.Join(t.TempDir(), "result.txt")
	code, _, stderr := run(t, "-i", gene, "-g", genome, "-s", "6", "-W", "3", "-w", "2", "-o", out)
	require.Equal(t, ExitOK, code, stderr)
	assert.Contains(t, stderr, "Task done!")

	b, err := os.ReadFile(out)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(b)), "\n")
	require.Len(t, lines, 4)
	assert.True(t, strings.HasPrefix(lines[1], "g1_S_1\t5\t14\tAGATACCGG\tAGATAC\tCGG\t3\t0.33\t0\t0\t0"))
}

func TestQuietAndStdout(t *testing.T) {
	gene, genome := inputs(t)
	code, out, stderr := run(t, "-i", gene, "-g", genome, "-s", "6", "-W", "3", "-w", "2", "-o", "-", "-q", "--format", "fasta")
	require.Equal(t, ExitOK, code, stderr)
	assert.Empty(t, stderr)
	assert.True(t, strings.HasPrefix(out, ">g1_S_1 start=5 end=14"))
}

func TestConfigFile(t *testing.T) {
	gene, genome := inputs(t)
	dir := t.TempDir()
	cfg := filepath.Join(dir, "bedesign.yaml")
	out := filepath.Join(dir, "r.tsv")
	require.NoError(t, os.WriteFile(cfg, []byte(
		"input: "+gene+"\ngenome: "+genome+"\nspacer: 6\nwindow-size: 3\nwindow-start: 2\noutput: "+out+"\n"), 0o644))
	code, _, stderr := run(t, "--config", cfg, "-q")
	require.Equal(t, ExitOK, code, stderr)
	_, err := os.Stat(out)
	assert.NoError(t, err)
}

func TestMatcherFailureExitCode(t *testing.T) {
	gene, genome := inputs(t)
	var out, errb bytes.Buffer
	code := RunWith(context.Background(),
		[]string{"-i", gene, "-g", genome, "-s", "6", "-W", "3", "-w", "2", "-o", filepath.Join(t.TempDir(), "r")},
		&out, &errb, func(config.Config) seqmap.Runner {
			return seqmap.RunnerFunc(func(context.Context, seqmap.Job) error { return nil })
		})
	assert.Equal(t, ExitFailure, code)
	assert.Contains(t, errb.String(), "result table missing")
}

func TestCanceled(t *testing.T) {
	gene, genome := inputs(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	var out, errb bytes.Buffer
	code := RunWith(ctx, []string{"-i", gene, "-g", genome, "-s", "6", "-W", "3", "-w", "2", "-o", "-"}, &out, &errb, noHits)
	assert.Equal(t, ExitCanceled, code)
}
