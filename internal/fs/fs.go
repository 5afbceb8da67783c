package fs

import (
	"bufio"
	"os"
)

// WriteFile truncates path and writes content to it verbatim. Parent
// directories are never created.
func WriteFile(path, content string) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	w := bufio.NewWriter(f)
	if _, err := w.WriteString(content); err != nil {
		return err
	}
	return w.Flush()
}

// ReadFile returns the full contents of path as a string.
func ReadFile(path string) (string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(content), nil
}
