package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/pflag"

	"github.com/sokinpui/codegen/codegen"
	"github.com/sokinpui/codegen/model"
)

// ErrOutputRequired is returned when --output was not given.
var ErrOutputRequired = errors.New("--output is required")

// Args holds the flags a generator program needs to write or verify its output.
// Use Bind to add them to the program's own flag set.
type Args struct {
	Output string
	Check  bool
}

// Bind registers -o/--output and --check on fs and returns the Args they
// populate. fs may be a cobra command's Flags().
func Bind(fs *pflag.FlagSet) *Args {
	a := &Args{}
	a.Register(fs)
	return a
}

// Register binds a's fields to -o/--output and --check on fs.
func (a *Args) Register(fs *pflag.FlagSet) {
	fs.StringVarP(&a.Output, "output", "o", "", "Path of the generated file.")
	fs.BoolVar(&a.Check, "check", false, "Verify the generated file is up to date instead of writing it.")
}

// Validate reports missing required flags.
func (a *Args) Validate() error {
	if a.Output == "" {
		return ErrOutputRequired
	}
	return nil
}

// Mode returns the mode selected by --check.
func (a *Args) Mode() model.Mode {
	return model.ModeOf(a.Check)
}

// WriteStr writes or verifies content according to the parsed flags.
func (a *Args) WriteStr(content string) error {
	if err := a.Validate(); err != nil {
		return err
	}
	return codegen.WriteStr(content, a.Output, a.Check)
}

// Config holds all the command-line flag values of the codegen binary.
type Config struct {
	Args

	Input     string
	Clipboard bool
	Color     model.ColorMode
	Context   int
	Verbose   bool
	LogJSON   bool
}

// ParseFlags defines and parses the codegen binary's flags from args
// (without the program name).
func ParseFlags(args []string, stderr io.Writer) (*Config, error) {
	if stderr == nil {
		stderr = os.Stderr
	}
	cfg := &Config{}
	fs := pflag.NewFlagSet("codegen", pflag.ContinueOnError)
	fs.SetOutput(stderr)

	cfg.Args.Register(fs)
	var color string
	fs.StringVarP(&cfg.Input, "input", "i", "", "Read generated content from this file ('-' for stdin).")
	fs.BoolVar(&cfg.Clipboard, "clipboard", false, "Read generated content from the clipboard.")
	fs.StringVar(&color, "color", "auto", "Colorize diagnostics: auto, always or never.")
	fs.IntVar(&cfg.Context, "context", 3, "Lines of context shown around each change.")
	fs.BoolVarP(&cfg.Verbose, "verbose", "v", false, "Enable debug logging.")
	fs.BoolVar(&cfg.LogJSON, "log-json", false, "Emit logs as JSON.")

	fs.Usage = func() {
		fmt.Fprintln(stderr, "Usage: codegen -o PATH [--check] [flags]")
		fmt.Fprintln(stderr, "\nWrite generated content to PATH, or verify PATH is up to date with --check.")
		fmt.Fprintln(stderr, "\nExample: go run ./gen | codegen -o tables.go --check")
		fmt.Fprintln(stderr, "\nFlags:")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if cfg.Input != "" && cfg.Clipboard {
		return nil, fmt.Errorf("--input and --clipboard are mutually exclusive")
	}
	if cfg.Context < 0 {
		return nil, fmt.Errorf("--context must not be negative")
	}

	mode, err := model.ParseColorMode(color)
	if err != nil {
		return nil, err
	}
	cfg.Color = mode

	return cfg, nil
}
