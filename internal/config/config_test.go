package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bedesign-core/pam"
)

func valid() Config {
	return Config{
		Input: "gene.fa", Genome: "genome.fa", Output: "out.tsv", Format: "tsv",
		PAM: "NGG", PAMEnd: 3, Spacer: 20, WindowSize: 5, WindowStart: 4,
		Target: "A", Mismatch: 1,
	}
}

func TestDefaults(t *testing.T) {
	v := New()
	c, err := Load(v, nil, "")
	require.NoError(t, err)
	assert.Equal(t, "NGG", c.PAM)
	assert.Equal(t, 3, c.PAMEnd)
	assert.Equal(t, 20, c.Spacer)
	assert.Equal(t, 5, c.WindowSize)
	assert.Equal(t, 4, c.WindowStart)
	assert.Equal(t, "A", c.Target)
	assert.Equal(t, 1, c.Mismatch)
	assert.Equal(t, "./result.txt", c.Output)
	assert.Equal(t, "tsv", c.Format)
	assert.Equal(t, DefaultSeqmap(), c.Seqmap)
}

func TestFlagsOverrideConfigFileOverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "bedesign.yaml")
	require.NoError(t, os.WriteFile(file, []byte("pam: nrg\nspacer: 23\nmismatch: 2\n"), 0o644))

	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.Int("spacer", 20, "")
	fs.String("input", "", "")
	require.NoError(t, fs.Parse([]string{"--spacer", "21", "--input", "g.fa"}))

	c, err := Load(New(), fs, file)
	require.NoError(t, err)
	assert.Equal(t, "NRG", c.PAM, "from file, uppercased")
	assert.Equal(t, 21, c.Spacer, "flag wins over file")
	assert.Equal(t, 2, c.Mismatch)
	assert.Equal(t, "g.fa", c.Input)
}

func TestEnvOverride(t *testing.T) {
	t.Setenv("BEDESIGN_WINDOW_START", "2")
	c, err := Load(New(), nil, "")
	require.NoError(t, err)
	assert.Equal(t, 2, c.WindowStart)
}

func TestMissingConfigFile(t *testing.T) {
	_, err := Load(New(), nil, filepath.Join(t.TempDir(), "none.yaml"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	require.NoError(t, valid().Validate())

	tests := []struct {
		name string
		mod  func(*Config)
	}{
		{"no input", func(c *Config) { c.Input = "" }},
		{"no genome", func(c *Config) { c.Genome = "" }},
		{"bad pam symbol", func(c *Config) { c.PAM = "NGZ" }},
		{"zero spacer", func(c *Config) { c.Spacer = 0 }},
		{"bad end", func(c *Config) { c.PAMEnd = 4 }},
		{"zero window", func(c *Config) { c.WindowSize = 0 }},
		{"window past spacer", func(c *Config) { c.WindowStart = 18 }},
		{"window start zero", func(c *Config) { c.WindowStart = 0 }},
		{"two-base target", func(c *Config) { c.Target = "AC" }},
		{"ambiguous target", func(c *Config) { c.Target = "N" }},
		{"negative mismatch", func(c *Config) { c.Mismatch = -1 }},
		{"bad format", func(c *Config) { c.Format = "xml" }},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c := valid()
			tc.mod(&c)
			err := c.Validate()
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalid))
		})
	}
}

func TestValidateKeepsPAMCause(t *testing.T) {
	c := valid()
	c.PAM = "NGX"
	assert.ErrorIs(t, c.Validate(), pam.ErrUnknownSymbol)
}

func TestSpecAndWindow(t *testing.T) {
	c := valid()
	c.PAMEnd = 5
	assert.Equal(t, pam.Spec{PAM: "NGG", SpacerLen: 20, End: pam.End5}, c.Spec())
	assert.Equal(t, 4, c.Window().Start)
	assert.Equal(t, byte('A'), c.TargetBase())
}
