// Package normalize canonicalizes line endings so that generated text can be
// compared regardless of the platform it was written on.
package normalize

import (
	"strings"

	"golang.org/x/text/transform"
)

// LineEndings returns a transformer that rewrites "\r\n" and lone "\r" to "\n".
func LineEndings() transform.Transformer {
	return lineEndings{}
}

type lineEndings struct{ transform.NopResetter }

func (lineEndings) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	for nSrc < len(src) {
		c := src[nSrc]
		width := 1
		if c == '\r' {
			// A trailing CR may be the first half of a CRLF pair.
			if nSrc+1 == len(src) && !atEOF {
				return nDst, nSrc, transform.ErrShortSrc
			}
			if nSrc+1 < len(src) && src[nSrc+1] == '\n' {
				width = 2
			}
			c = '\n'
		}
		if nDst >= len(dst) {
			return nDst, nSrc, transform.ErrShortDst
		}
		dst[nDst] = c
		nDst++
		nSrc += width
	}
	return nDst, nSrc, nil
}

// String returns s with every line ending rewritten to "\n".
func String(s string) string {
	if !strings.ContainsRune(s, '\r') {
		return s
	}
	out, _, err := transform.String(LineEndings(), s)
	if err != nil {
		// The transformer never reports a terminal error; fall back to the
		// equivalent replacement so the caller always gets a result.
		return strings.ReplaceAll(strings.ReplaceAll(s, "\r\n", "\n"), "\r", "\n")
	}
	return out
}
