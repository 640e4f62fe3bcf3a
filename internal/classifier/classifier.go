package classifier

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/nguyentantai21042004/scribe/internal/transcript"
)

// Classify inspects path without modifying anything.
// A .json file must hold a transcription; a parse failure is an error.
func (c *implClassifier) Classify(ctx context.Context, path string) (Result, error) {
	if isStructured(path) {
		data, err := os.ReadFile(path)
		if err != nil {
			return Result{}, fmt.Errorf("read transcription: %w", err)
		}
		t, err := transcript.Decode(data)
		if err != nil {
			return Result{}, fmt.Errorf("parse %s: %w", path, err)
		}
		c.logger.Info(ctx, "Input file is a transcription with %d segments.", len(t.Segments))
		return Result{Transcription: t}, nil
	}

	text, ok, err := readText(path)
	if err != nil {
		return Result{}, err
	}
	if !ok {
		c.logger.Debug(ctx, "Input file is not text, treating as media: %s", path)
		return Result{}, nil
	}

	c.logger.Info(ctx, "Input file appears to be plaintext.")
	return Result{Text: &text}, nil
}

func isStructured(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".json")
}

// readText returns the file content when it is valid UTF-8.
// Media files are rejected after the prefix without reading the rest.
func readText(path string) (string, bool, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", false, fmt.Errorf("open input: %w", err)
	}
	defer f.Close()

	prefix := make([]byte, prefixSize)
	n, err := io.ReadFull(f, prefix)
	if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, io.ErrUnexpectedEOF) {
		return "", false, fmt.Errorf("read input: %w", err)
	}
	prefix = prefix[:n]

	if !validPrefix(prefix, n == prefixSize) {
		return "", false, nil
	}

	rest, err := io.ReadAll(f)
	if err != nil {
		return "", false, fmt.Errorf("read input: %w", err)
	}

	data := append(prefix, rest...)
	if !utf8.Valid(data) {
		return "", false, nil
	}
	return string(data), true, nil
}

// validPrefix tolerates a rune cut in half by the prefix boundary
func validPrefix(p []byte, truncated bool) bool {
	if truncated {
		for i := len(p) - 1; i >= 0 && i >= len(p)-utf8.UTFMax; i-- {
			if utf8.RuneStart(p[i]) {
				if !utf8.FullRune(p[i:]) {
					p = p[:i]
				}
				break
			}
		}
	}
	return utf8.Valid(p)
}
