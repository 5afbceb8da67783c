package app

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"runtime/debug"

	"github.com/sokinpui/codegen/cli"
	"github.com/sokinpui/codegen/codegen"
	"github.com/sokinpui/codegen/internal/logging"
	"github.com/sokinpui/codegen/internal/source"
	"github.com/sokinpui/codegen/internal/ui"
	"github.com/sokinpui/codegen/model"
)

// App orchestrates the codegen binary.
type App struct {
	cfg            *cli.Config
	sourceProvider *source.SourceProvider
	syncer         *codegen.Syncer
	printer        *ui.Printer
	log            *slog.Logger
}

// DetailedError enhances a standard error with a stack trace.
type DetailedError struct {
	Err   error
	Stack []byte
}

func (e *DetailedError) Error() string {
	return e.Err.Error()
}

func (e *DetailedError) Unwrap() error {
	return e.Err
}

// New creates a new App reading piped content from stdin (nil for none),
// writing results to stdout and diagnostics to stderr. Its logger becomes the
// process default.
func New(cfg *cli.Config, stdin io.Reader, stdout, stderr io.Writer) *App {
	level := logging.LevelWarn
	if cfg.Verbose {
		level = logging.LevelDebug
	}
	log := logging.New(logging.Options{Level: level, Output: stderr, JSON: cfg.LogJSON})
	logging.SetDefault(log)

	return &App{
		cfg:            cfg,
		sourceProvider: source.New(cfg.Input, cfg.Clipboard, stdin, log),
		syncer: &codegen.Syncer{
			Stdout: stdout,
			Stderr: stderr,
			Logger: log,
			Diff:   codegen.DiffOptions{Context: cfg.Context, Color: cfg.Color},
		},
		printer: ui.New(stdout, stderr, cfg.Color),
		log:     log,
	}
}

// Printer returns the printer used for diagnostics.
func (a *App) Printer() *ui.Printer {
	return a.printer
}

// Run reads the generated content and writes or checks it.
func (a *App) Run() (report model.Report, err error) {
	// Centralized panic recovery to provide stack traces for unexpected errors.
	defer func() {
		if r := recover(); r != nil {
			err = &DetailedError{
				Err:   fmt.Errorf("internal panic: %v", r),
				Stack: debug.Stack(),
			}
		}
	}()

	content, err := a.sourceProvider.GetContent()
	if err != nil {
		return model.Report{Path: a.cfg.Output, Mode: a.cfg.Mode()}, err
	}

	report, err = a.syncer.Sync(content, a.cfg.Output, a.cfg.Check)
	if errors.Is(err, codegen.ErrMismatch) {
		a.printer.Error("Generated file is out of date; regenerate it without --check:")
		a.printer.Path("%s", a.cfg.Output)
	}
	a.log.Debug("done", logging.Path(report.Path), logging.Mode(report.Mode), logging.Distance(report.Distance), logging.Err(err))
	return report, err
}
