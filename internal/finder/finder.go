// Package finder picks an input when none is given on the command line.
package finder

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ErrNotFound is returned when no file matches
var ErrNotFound = errors.New("no input file found")

// Newest returns the most recently modified non-hidden file in dir matching pattern
func Newest(dir, pattern string) (string, error) {
	matches, err := filepath.Glob(filepath.Join(dir, pattern))
	if err != nil {
		return "", fmt.Errorf("glob %s: %w", pattern, err)
	}

	var (
		newest  string
		newestT int64
	)
	for _, m := range matches {
		// Hidden files include the transcription sidecars.
		if strings.HasPrefix(filepath.Base(m), ".") {
			continue
		}
		info, err := os.Stat(m)
		if err != nil {
			return "", fmt.Errorf("stat %s: %w", m, err)
		}
		if info.IsDir() {
			continue
		}
		if t := info.ModTime().UnixNano(); newest == "" || t > newestT {
			newest, newestT = m, t
		}
	}

	if newest == "" {
		return "", fmt.Errorf("%w: no %s files in %s", ErrNotFound, pattern, dir)
	}
	return newest, nil
}
