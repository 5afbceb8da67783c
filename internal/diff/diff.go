// Package diff computes and renders the line-oriented changeset between the
// contents of a file on disk and freshly generated text.
package diff

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/pmezard/go-difflib/difflib"

	"github.com/sokinpui/codegen/model"
)

const defaultContext = 3

// Options configures how a changeset is rendered. The zero value is usable.
type Options struct {
	// Context is the number of unchanged lines shown around each change.
	// Default: 3
	Context int
	// Color selects whether added and removed lines are styled.
	Color model.ColorMode
}

// Changeset is the line diff between an old and a new text, split on "\n".
type Changeset struct {
	oldLines []string
	newLines []string
	opcodes  []difflib.OpCode

	// Distance counts inserted plus deleted lines. It is zero only when both
	// texts are identical.
	Distance int
}

// New compares old against updated.
func New(old, updated string) *Changeset {
	c := &Changeset{
		oldLines: strings.Split(old, "\n"),
		newLines: strings.Split(updated, "\n"),
	}
	if old == updated {
		return c
	}

	c.opcodes = difflib.NewMatcher(c.oldLines, c.newLines).GetOpCodes()
	for _, op := range c.opcodes {
		switch op.Tag {
		case 'r':
			c.Distance += (op.I2 - op.I1) + (op.J2 - op.J1)
		case 'd':
			c.Distance += op.I2 - op.I1
		case 'i':
			c.Distance += op.J2 - op.J1
		}
	}
	return c
}

// Equal reports whether the two texts were identical.
func (c *Changeset) Equal() bool {
	return c.Distance == 0
}

// Regions returns the number of contiguous changed regions.
func (c *Changeset) Regions() int {
	n := 0
	for _, op := range c.opcodes {
		if op.Tag != 'e' {
			n++
		}
	}
	return n
}

// Render writes the changeset to w as a unified diff labelled with fromFile
// and toFile. Nothing is written for an empty changeset.
func (c *Changeset) Render(w io.Writer, fromFile, toFile string, opts Options) error {
	if c.Equal() {
		return nil
	}
	if opts.Context <= 0 {
		opts.Context = defaultContext
	}

	text, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        renderLines(c.oldLines),
		B:        renderLines(c.newLines),
		FromFile: fromFile,
		ToFile:   toFile,
		Context:  opts.Context,
	})
	if err != nil {
		return fmt.Errorf("failed to build unified diff: %w", err)
	}

	st := newStyles(w, opts.Color)
	for i, line := range strings.SplitAfter(text, "\n") {
		if line == "" {
			continue
		}
		// Only the first two lines are the file header; a removed "-- comment"
		// line also starts with "---".
		if _, err := io.WriteString(w, st.line(strings.TrimSuffix(line, "\n"), i < 2)+"\n"); err != nil {
			return err
		}
	}
	return nil
}

const noNewline = "\\ No newline at end of file"

// renderLines turns lines split on "\n" back into newline-terminated diff
// lines. A final line without a newline carries the unified diff marker.
func renderLines(lines []string) []string {
	eol := lines[len(lines)-1] == ""
	if eol {
		lines = lines[:len(lines)-1]
	}
	out := make([]string, len(lines))
	for i, l := range lines {
		out[i] = l + "\n"
	}
	if !eol {
		out[len(out)-1] += noNewline + "\n"
	}
	return out
}

type styles struct {
	plain   bool
	header  lipgloss.Style
	hunk    lipgloss.Style
	added   lipgloss.Style
	removed lipgloss.Style
}

func newStyles(w io.Writer, mode model.ColorMode) styles {
	r := lipgloss.NewRenderer(w)
	switch mode {
	case model.ColorAlways:
		r.SetColorProfile(termenv.ANSI256)
	case model.ColorNever:
		r.SetColorProfile(termenv.Ascii)
	}

	base := r.NewStyle().TabWidth(lipgloss.NoTabConversion)
	return styles{
		plain:   r.ColorProfile() == termenv.Ascii,
		header:  base.Foreground(lipgloss.Color("240")),
		hunk:    base.Foreground(lipgloss.Color("6")).Bold(true),
		added:   base.Foreground(lipgloss.Color("2")),
		removed: base.Foreground(lipgloss.Color("1")),
	}
}

func (s styles) line(l string, header bool) string {
	if s.plain {
		return l
	}
	switch {
	case header && (strings.HasPrefix(l, "---") || strings.HasPrefix(l, "+++")):
		return s.header.Render(l)
	case strings.HasPrefix(l, "@@"):
		return s.hunk.Render(l)
	case strings.HasPrefix(l, "+"):
		return s.added.Render(l)
	case strings.HasPrefix(l, "-"):
		return s.removed.Render(l)
	default:
		return l
	}
}
