package ui

import (
	"io"
	"os"

	"github.com/fatih/color"
	"golang.org/x/term"

	"github.com/sokinpui/codegen/model"
)

// Printer writes colored status lines. Success goes to Out, everything else
// to Err so that stdout carries only the result of a check.
type Printer struct {
	Out io.Writer
	Err io.Writer

	success *color.Color
	warning *color.Color
	failure *color.Color
	path    *color.Color
}

// New creates a Printer. Nil writers default to os.Stdout and os.Stderr.
// In auto mode each stream is colored only when it is itself a terminal.
func New(out, errOut io.Writer, mode model.ColorMode) *Printer {
	if out == nil {
		out = os.Stdout
	}
	if errOut == nil {
		errOut = os.Stderr
	}
	p := &Printer{
		Out:     out,
		Err:     errOut,
		success: color.New(color.FgGreen),
		warning: color.New(color.FgYellow),
		failure: color.New(color.FgRed),
		path:    color.New(color.FgYellow),
	}
	setColor(p.success, colorEnabled(out, mode))
	for _, c := range []*color.Color{p.warning, p.failure, p.path} {
		setColor(c, colorEnabled(errOut, mode))
	}
	return p
}

func (p *Printer) Success(format string, a ...interface{}) {
	p.success.Fprintf(p.Out, format+"\n", a...)
}

func (p *Printer) Warning(format string, a ...interface{}) {
	p.warning.Fprintf(p.Err, format+"\n", a...)
}

func (p *Printer) Error(format string, a ...interface{}) {
	p.failure.Fprintf(p.Err, format+"\n", a...)
}

func (p *Printer) Path(format string, a ...interface{}) {
	p.path.Fprintf(p.Err, "  "+format+"\n", a...)
}

func colorEnabled(w io.Writer, mode model.ColorMode) bool {
	switch mode {
	case model.ColorAlways:
		return true
	case model.ColorNever:
		return false
	}
	if _, ok := os.LookupEnv("NO_COLOR"); ok || os.Getenv("TERM") == "dumb" {
		return false
	}
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func setColor(c *color.Color, enabled bool) {
	if enabled {
		c.EnableColor()
	} else {
		c.DisableColor()
	}
}
