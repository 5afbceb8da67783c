package cli_test

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sokinpui/codegen/cli"
	"github.com/sokinpui/codegen/codegen"
	"github.com/sokinpui/codegen/model"
)

func TestBind(t *testing.T) {
	fs := pflag.NewFlagSet("gen", pflag.ContinueOnError)
	verbose := fs.Bool("verbose", false, "caller's own flag")
	args := cli.Bind(fs)

	require.NoError(t, fs.Parse([]string{"-o", "tables.go", "--check", "--verbose"}))

	assert.Equal(t, "tables.go", args.Output)
	assert.True(t, args.Check)
	assert.True(t, *verbose)
	assert.Equal(t, model.ModeCheck, args.Mode())
	assert.NoError(t, args.Validate())
}

func TestBind_LongOutput(t *testing.T) {
	fs := pflag.NewFlagSet("gen", pflag.ContinueOnError)
	args := cli.Bind(fs)

	require.NoError(t, fs.Parse([]string{"--output=tables.go"}))
	assert.Equal(t, "tables.go", args.Output)
	assert.False(t, args.Check)
	assert.Equal(t, model.ModeWrite, args.Mode())
}

func TestArgs_OutputRequired(t *testing.T) {
	args := &cli.Args{Check: true}
	assert.ErrorIs(t, args.Validate(), cli.ErrOutputRequired)
	assert.ErrorIs(t, args.WriteStr("x"), cli.ErrOutputRequired)
}

func TestArgs_WriteStr(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gen.txt")

	args := &cli.Args{Output: path}
	require.NoError(t, args.WriteStr("one\n"))

	args.Check = true
	require.NoError(t, args.WriteStr("one\r\n"))
	assert.ErrorIs(t, args.WriteStr("two\n"), codegen.ErrMismatch)
}

func TestBind_Cobra(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gen.txt")

	var args *cli.Args
	newCmd := func(flags ...string) *cobra.Command {
		cmd := &cobra.Command{
			Use:           "gen",
			SilenceUsage:  true,
			SilenceErrors: true,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return args.WriteStr("generated\n")
			},
		}
		args = cli.Bind(cmd.Flags())
		cmd.SetArgs(flags)
		cmd.SetOut(io.Discard)
		return cmd
	}

	require.NoError(t, newCmd("--output", path).Execute())
	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "generated\n", string(got))

	require.NoError(t, newCmd("-o", path, "--check").Execute())

	require.NoError(t, os.WriteFile(path, []byte("edited by hand\n"), 0644))
	err = newCmd("-o", path, "--check").Execute()
	assert.True(t, errors.Is(err, codegen.ErrMismatch))
}

func TestParseFlags(t *testing.T) {
	cfg, err := cli.ParseFlags([]string{"-o", "out.go", "--check", "-i", "gen.txt", "--color", "never", "--context", "5", "-v"}, io.Discard)
	require.NoError(t, err)

	assert.Equal(t, "out.go", cfg.Output)
	assert.True(t, cfg.Check)
	assert.Equal(t, "gen.txt", cfg.Input)
	assert.Equal(t, model.ColorNever, cfg.Color)
	assert.Equal(t, 5, cfg.Context)
	assert.True(t, cfg.Verbose)
	assert.False(t, cfg.LogJSON)
}

func TestParseFlags_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"missing output", []string{"--check"}},
		{"input and clipboard", []string{"-o", "out.go", "-i", "x", "--clipboard"}},
		{"bad color", []string{"-o", "out.go", "--color", "rainbow"}},
		{"negative context", []string{"-o", "out.go", "--context", "-1"}},
		{"unknown flag", []string{"-o", "out.go", "--bogus"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := cli.ParseFlags(tt.args, io.Discard)
			assert.Error(t, err)
		})
	}
}

func TestParseFlags_Help(t *testing.T) {
	_, err := cli.ParseFlags([]string{"--help"}, io.Discard)
	assert.ErrorIs(t, err, pflag.ErrHelp)
}
