package model

import "fmt"

// Mode selects whether generated content is persisted or verified.
type Mode int

const (
	// ModeWrite overwrites the target file with the generated content.
	ModeWrite Mode = iota
	// ModeCheck compares the generated content against the target file.
	ModeCheck
)

// ModeOf maps the --check flag onto a Mode.
func ModeOf(check bool) Mode {
	if check {
		return ModeCheck
	}
	return ModeWrite
}

func (m Mode) String() string {
	switch m {
	case ModeWrite:
		return "write"
	case ModeCheck:
		return "check"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// ColorMode controls whether diagnostics are styled.
type ColorMode int

const (
	ColorAuto ColorMode = iota
	ColorAlways
	ColorNever
)

// ParseColorMode parses the value of a --color flag.
func ParseColorMode(s string) (ColorMode, error) {
	switch s {
	case "", "auto":
		return ColorAuto, nil
	case "always":
		return ColorAlways, nil
	case "never":
		return ColorNever, nil
	default:
		return ColorAuto, fmt.Errorf("invalid color mode %q (want auto, always or never)", s)
	}
}

func (c ColorMode) String() string {
	switch c {
	case ColorAlways:
		return "always"
	case ColorNever:
		return "never"
	default:
		return "auto"
	}
}

// Report describes the outcome of a single sync.
type Report struct {
	Path string
	Mode Mode
	// Distance is zero when the file matched; only meaningful in check mode.
	Distance int
}
