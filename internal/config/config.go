// Package config is for run-wide settings that are unmarshalled from Viper:
// command line flags, BEDESIGN_* environment variables and an optional
// config file, in that order of precedence.
package config

import (
	"errors"
	"fmt"
	"runtime"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"bedesign-core/guide"
	"bedesign-core/pam"
)

// EnvPrefix is prepended to every environment override, e.g. BEDESIGN_PAM.
const EnvPrefix = "BEDESIGN"

// Config is the root-level settings struct.
type Config struct {
	// path to the gene FASTA that is scanned for spacers
	Input string `mapstructure:"input"`

	// path to the genome FASTA the off-target search runs against
	Genome string `mapstructure:"genome"`

	// report path ("-" for stdout) and its format
	Output string `mapstructure:"output"`
	Format string `mapstructure:"format"`

	// PAM motif in IUPAC codes and the side of the spacer it sits on (3 or 5)
	PAM    string `mapstructure:"pam"`
	PAMEnd int    `mapstructure:"end"`

	// spacer length in nt
	Spacer int `mapstructure:"spacer"`

	// editing window, start is 1-based within the spacer
	WindowSize  int `mapstructure:"window-size"`
	WindowStart int `mapstructure:"window-start"`

	// the base the editor converts
	Target string `mapstructure:"target"`

	// the largest mismatch count searched for off-targets
	Mismatch int `mapstructure:"mismatch"`

	// external matcher binary
	Seqmap string `mapstructure:"seqmap"`

	// keep the matcher's scratch directory after the run
	KeepTemp bool `mapstructure:"keep-temp"`

	Quiet bool `mapstructure:"quiet"`
}

// DefaultSeqmap is the matcher binary name for the running platform.
func DefaultSeqmap() string {
	if runtime.GOOS == "windows" {
		return "seqmap.exe"
	}
	return "seqmap"
}

// SetDefaults registers the defaults on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("output", "./result.txt")
	v.SetDefault("format", "tsv")
	v.SetDefault("pam", "NGG")
	v.SetDefault("end", 3)
	v.SetDefault("spacer", 20)
	v.SetDefault("window-size", 5)
	v.SetDefault("window-start", 4)
	v.SetDefault("target", "A")
	v.SetDefault("mismatch", 1)
	v.SetDefault("seqmap", DefaultSeqmap())
}

// New returns a viper instance with defaults and environment lookup wired.
func New() *viper.Viper {
	v := viper.New()
	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	return v
}

// Load binds fs to v, reads file when non-empty, and decodes the result.
func Load(v *viper.Viper, fs *pflag.FlagSet, file string) (Config, error) {
	var c Config
	if fs != nil {
		if err := v.BindPFlags(fs); err != nil {
			return c, fmt.Errorf("bind flags: %w", err)
		}
	}
	if file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return c, fmt.Errorf("read config %s: %w", file, err)
		}
	}
	if err := v.Unmarshal(&c); err != nil {
		return c, fmt.Errorf("unable to decode config: %w", err)
	}
	c.PAM = strings.ToUpper(strings.TrimSpace(c.PAM))
	c.Target = strings.ToUpper(strings.TrimSpace(c.Target))
	return c, nil
}

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid configuration")

// Spec is the PAM specification described by c.
func (c Config) Spec() pam.Spec {
	return pam.Spec{PAM: c.PAM, SpacerLen: c.Spacer, End: pam.End(c.PAMEnd)}
}

// Window is the editing window described by c.
func (c Config) Window() guide.Window {
	return guide.Window{Start: c.WindowStart, Size: c.WindowSize}
}

// TargetBase is the first byte of Target, or 0 when unset.
func (c Config) TargetBase() byte {
	if c.Target == "" {
		return 0
	}
	return c.Target[0]
}

// Validate reports configuration errors before any input is read.
func (c Config) Validate() error {
	invalid := func(format string, a ...any) error {
		return fmt.Errorf("%w: %s", ErrInvalid, fmt.Sprintf(format, a...))
	}
	if c.Input == "" {
		return invalid("an input gene FASTA is required (--input)")
	}
	if c.Genome == "" {
		return invalid("a genome FASTA is required (--genome)")
	}
	if err := c.Spec().Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	if len(c.Target) != 1 {
		return invalid("--target must be a single base, got %q", c.Target)
	}
	p := guide.Params{
		End: c.Spec().End, PAMLen: len(c.PAM), SpacerLen: c.Spacer,
		Target: c.TargetBase(), Window: c.Window(),
	}
	if err := p.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	if c.Mismatch < 0 {
		return invalid("--mismatch must be ≥ 0")
	}
	switch c.Format {
	case "tsv", "json", "fasta":
	default:
		return invalid("invalid --format %q", c.Format)
	}
	if c.Output == "" {
		return invalid("--output must not be empty")
	}
	return nil
}
