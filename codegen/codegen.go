// Package codegen writes generated text to a file, or verifies that a file
// still holds exactly what the generator would produce.
//
// A typical generator program ends with:
//
//	if err := codegen.WriteStr(src, *output, *check); err != nil {
//		log.Fatal(err)
//	}
//
// and CI runs the generator with --check so that stale or hand-edited output
// fails the build.
package codegen

import (
	"io"
	"log/slog"
	"os"

	"github.com/sokinpui/codegen/internal/diff"
	"github.com/sokinpui/codegen/internal/fs"
	"github.com/sokinpui/codegen/internal/logging"
	"github.com/sokinpui/codegen/internal/normalize"
	"github.com/sokinpui/codegen/internal/ui"
	"github.com/sokinpui/codegen/model"
)

// DiffOptions configures how a mismatch is rendered.
type DiffOptions = diff.Options

// Syncer reconciles generated content with a destination file.
// The zero value writes to the process's stdout and stderr.
type Syncer struct {
	// Stdout receives the success message of a passing check.
	Stdout io.Writer
	// Stderr receives the rendered diff of a failing check.
	Stderr io.Writer
	Logger *slog.Logger
	Diff   DiffOptions
}

// WriteStr writes content to output, or with check set, verifies that output
// already holds content modulo line endings.
func WriteStr(content, output string, check bool) error {
	var s Syncer
	_, err := s.Sync(content, output, check)
	return err
}

// Sync dispatches to Write or Check.
func (s *Syncer) Sync(content, output string, check bool) (model.Report, error) {
	if check {
		return s.Check(content, output)
	}
	return model.Report{Path: output, Mode: model.ModeWrite}, s.Write(content, output)
}

// Write truncates output and writes content to it verbatim.
func (s *Syncer) Write(content, output string) error {
	log := s.logger().With(logging.Path(output), logging.Mode(model.ModeWrite))

	if err := fs.WriteFile(output, content); err != nil {
		log.Debug("write failed", logging.Err(err))
		return &IOError{Op: "write", Path: output, Err: err}
	}
	log.Debug("wrote generated content", logging.Bytes(len(content)))
	return nil
}

// Check compares content against the current contents of output without
// modifying the file. A mismatch renders a diff to Stderr and returns
// ErrMismatch; a match prints "Success" to Stdout.
func (s *Syncer) Check(content, output string) (model.Report, error) {
	report := model.Report{Path: output, Mode: model.ModeCheck}
	log := s.logger().With(logging.Path(output), logging.Mode(model.ModeCheck))

	actual, err := fs.ReadFile(output)
	if err != nil {
		log.Debug("read failed", logging.Err(err))
		return report, &IOError{Op: "read", Path: output, Err: err}
	}

	expected := normalize.String(content)
	actual = normalize.String(actual)

	printer := ui.New(s.stdout(), s.stderr(), s.Diff.Color)
	changes := diff.New(actual, expected)
	report.Distance = changes.Distance
	if !changes.Equal() {
		log.Debug("generated content is stale", logging.Distance(changes.Distance), logging.Regions(changes.Regions()))
		if err := changes.Render(s.stderr(), output, output+" (generated)", s.Diff); err != nil {
			log.Debug("failed to render diff", logging.Err(err))
			printer.Warning("could not render diff for %s: %v", output, err)
		}
		return report, ErrMismatch
	}

	log.Debug("generated content is up to date")
	printer.Success("Success")
	return report, nil
}

func (s *Syncer) stdout() io.Writer {
	if s.Stdout == nil {
		return os.Stdout
	}
	return s.Stdout
}

func (s *Syncer) stderr() io.Writer {
	if s.Stderr == nil {
		return os.Stderr
	}
	return s.Stderr
}

func (s *Syncer) logger() *slog.Logger {
	if s.Logger == nil {
		return logging.Default()
	}
	return s.Logger
}
