// internal/cli/options.go
package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"bedesign/internal/config"
	"bedesign/internal/version"
)

// UsageError marks errors caused by bad command line input.
type UsageError struct{ Err error }

func (e *UsageError) Error() string { return e.Err.Error() }
func (e *UsageError) Unwrap() error { return e.Err }

// IsUsage reports whether err came from flag or argument parsing.
func IsUsage(err error) bool {
	var u *UsageError
	return errors.As(err, &u)
}

const long = `bedesign: base editing sgRNA design

Scans a gene FASTA for PAM sites on both strands, keeps spacers whose editing
window holds the target base and that carry no TTTT run, drops duplicates
(a spacer and its reverse complement count once), counts off-target hits in a
genome with seqmap, and writes a tab-separated report.

Settings can also come from a YAML/TOML/JSON file (--config) or from
BEDESIGN_* environment variables, e.g. BEDESIGN_WINDOW_START=3.`

const example = `  bedesign -i gene.fa -g genome.fa
  bedesign -i gene.fa -g genome.fa -p TTTV -e 5 -s 23 -t C -W 4 -w 8 -o cas12a.tsv
  bedesign -i gene.fa -g genome.fa --format json -o - | jq '.spacers[0]'`

// RunFunc receives the decoded (not yet validated) configuration.
type RunFunc func(cmd *cobra.Command, cfg config.Config) error

// NewCommand builds the root command, registering every flag on v.
func NewCommand(v *viper.Viper, run RunFunc) *cobra.Command {
	var cfgFile string
	cmd := &cobra.Command{
		Use:           "bedesign",
		Short:         "Design base-editing guide sequences with off-target counts",
		Long:          long,
		Example:       example,
		Version:       version.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args: func(cmd *cobra.Command, args []string) error {
			if err := cobra.NoArgs(cmd, args); err != nil {
				return &UsageError{Err: err}
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(v, cmd.Flags(), cfgFile)
			if err != nil {
				return err
			}
			return run(cmd, cfg)
		},
	}
	cmd.SetVersionTemplate("bedesign version {{.Version}}\n")
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &UsageError{Err: err}
	})

	f := cmd.Flags()
	f.SortFlags = false
	f.StringVar(&cfgFile, "config", "", "config file (yaml, toml or json)")
	Register(f)
	return cmd
}

// Register adds the design flags to f. Names double as config keys.
func Register(f *pflag.FlagSet) {
	// input
	f.StringP("input", "i", "", "gene FASTA file ('-' for stdin, .gz allowed) [*]")
	f.StringP("genome", "g", "", "genome FASTA file for off-target search [*]")

	// design
	f.StringP("pam", "p", "NGG", "PAM in IUPAC codes")
	f.IntP("end", "e", 3, "PAM end: 3 (PAM after spacer) or 5 (PAM before spacer)")
	f.IntP("spacer", "s", 20, "spacer length")
	f.IntP("window-size", "W", 5, "base editing window size")
	f.IntP("window-start", "w", 4, "base editing window start (1-based, within spacer)")
	f.StringP("target", "t", "A", "target base")

	// off-target
	f.IntP("mismatch", "m", 1, "max mismatches for off-target search")
	f.String("seqmap", config.DefaultSeqmap(), "seqmap binary")
	f.Bool("keep-temp", false, "keep the seqmap scratch directory")

	// output
	f.StringP("output", "o", "./result.txt", "report path ('-' for stdout)")
	f.String("format", "tsv", "report format: tsv | json | fasta")
	f.BoolP("quiet", "q", false, "suppress progress messages")
}

// Describe renders the configuration as a one-line summary for logs.
func Describe(c config.Config) string {
	return fmt.Sprintf("pam=%s end=%d spacer=%d window=%d+%d target=%s mismatch=%d",
		c.PAM, c.PAMEnd, c.Spacer, c.WindowStart, c.WindowSize, c.Target, c.Mismatch)
}
