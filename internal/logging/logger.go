// Package logging provides structured logging for codegen using slog.
package logging

import (
	"io"
	"log/slog"
	"os"
	"sync"

	"github.com/sokinpui/codegen/model"
)

const (
	LevelDebug = slog.LevelDebug
	LevelInfo  = slog.LevelInfo
	LevelWarn  = slog.LevelWarn
)

var (
	defaultLogger *slog.Logger
	defaultOnce   sync.Once
)

// Options configures the logger behavior.
type Options struct {
	// Level sets the minimum log level. Defaults to LevelInfo.
	Level slog.Level
	// Output sets the output destination. Defaults to os.Stderr.
	Output io.Writer
	// JSON enables JSON output format.
	JSON bool
}

// New creates a new logger with the given options.
func New(opts Options) *slog.Logger {
	if opts.Output == nil {
		opts.Output = os.Stderr
	}
	handlerOpts := &slog.HandlerOptions{Level: opts.Level}

	var handler slog.Handler
	if opts.JSON {
		handler = slog.NewJSONHandler(opts.Output, handlerOpts)
	} else {
		handler = slog.NewTextHandler(opts.Output, handlerOpts)
	}
	return slog.New(handler)
}

// Default returns the default logger: text on stderr at Info level.
func Default() *slog.Logger {
	defaultOnce.Do(func() {
		if defaultLogger == nil {
			defaultLogger = New(Options{Level: LevelInfo})
		}
	})
	return defaultLogger
}

// SetDefault replaces the default logger and installs it as slog's default.
func SetDefault(logger *slog.Logger) {
	defaultOnce.Do(func() {})
	defaultLogger = logger
	slog.SetDefault(logger)
}

// keyError is the attribute key used by Err.
const keyError = "error"

// Path returns an attribute for the target file.
func Path(p string) slog.Attr {
	return slog.String("path", p)
}

// Mode returns an attribute for the sync mode.
func Mode(m model.Mode) slog.Attr {
	return slog.String("mode", m.String())
}

// Distance returns an attribute for a changeset distance.
func Distance(d int) slog.Attr {
	return slog.Int("distance", d)
}

// Regions returns an attribute for the number of changed regions.
func Regions(n int) slog.Attr {
	return slog.Int("regions", n)
}

// Bytes returns an attribute for a content size.
func Bytes(n int) slog.Attr {
	return slog.Int("bytes", n)
}

// Err returns an attribute for an error, or an empty attribute for nil.
func Err(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any(keyError, err)
}
