package source

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/atotto/clipboard"
	"golang.org/x/term"
)

// ErrNoSource is returned when no input was named and stdin is a terminal.
var ErrNoSource = errors.New("no generated content: pipe it on stdin, or use --input or --clipboard")

// SourceProvider determines and retrieves the generated content.
type SourceProvider struct {
	Input     string
	Clipboard bool

	stdin      io.Reader
	stdinPiped func() bool
	readClip   func() (string, error)
	log        *slog.Logger
}

// New creates a SourceProvider reading from input (a path, or "-" for stdin),
// the clipboard, or piped stdin, in that order of precedence. A nil stdin
// counts as not piped.
func New(input string, useClipboard bool, stdin io.Reader, log *slog.Logger) *SourceProvider {
	if log == nil {
		log = slog.Default()
	}
	return &SourceProvider{
		Input:      input,
		Clipboard:  useClipboard,
		stdin:      stdin,
		stdinPiped: func() bool { return isPiped(stdin) },
		readClip:   clipboard.ReadAll,
		log:        log,
	}
}

// GetContent returns the generated content verbatim.
func (sp *SourceProvider) GetContent() (string, error) {
	switch {
	case sp.Input == "-":
		return sp.readStdin()
	case sp.Input != "":
		sp.log.Debug("reading generated content", "source", "file", "input", sp.Input)
		content, err := os.ReadFile(sp.Input)
		if err != nil {
			return "", fmt.Errorf("failed to read input: %w", err)
		}
		return string(content), nil
	case sp.Clipboard:
		sp.log.Debug("reading generated content", "source", "clipboard")
		content, err := sp.readClip()
		if err != nil {
			return "", fmt.Errorf("failed to read from clipboard: %w", err)
		}
		return content, nil
	case sp.stdinPiped():
		return sp.readStdin()
	default:
		return "", ErrNoSource
	}
}

func (sp *SourceProvider) readStdin() (string, error) {
	if sp.stdin == nil {
		return "", ErrNoSource
	}
	sp.log.Debug("reading generated content", "source", "stdin")
	content, err := io.ReadAll(sp.stdin)
	if err != nil {
		return "", fmt.Errorf("failed to read from stdin: %w", err)
	}
	return string(content), nil
}

// isPiped reports whether r carries piped content: any reader other than an
// interactive terminal.
func isPiped(r io.Reader) bool {
	if r == nil {
		return false
	}
	if f, ok := r.(*os.File); ok {
		return !term.IsTerminal(int(f.Fd()))
	}
	return true
}
