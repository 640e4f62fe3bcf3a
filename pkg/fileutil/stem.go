package fileutil

import (
	"path/filepath"
	"strings"
)

// Stem returns the base name of path without its extension.
// A leading dot is part of the name, so ".recording" stays ".recording".
func Stem(path string) string {
	base := filepath.Base(path)
	ext := filepath.Ext(base)
	if ext == base {
		return base
	}
	return strings.TrimSuffix(base, ext)
}
