package cache

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/nguyentantai21042004/scribe/internal/transcript"
	"github.com/nguyentantai21042004/scribe/pkg/fileutil"
)

// Path returns the hidden sidecar next to inputPath: dir/.<base>.json
func Path(inputPath string) string {
	base := fileutil.Stem(inputPath)
	return filepath.Join(filepath.Dir(inputPath), "."+base+".json")
}

// IsFresh reports whether cachePath exists and is not older than inputPath.
// A missing input is an error; a missing cache entry is simply stale.
func IsFresh(inputPath, cachePath string) (bool, error) {
	in, err := os.Stat(inputPath)
	if err != nil {
		return false, fmt.Errorf("stat input: %w", err)
	}

	entry, err := os.Stat(cachePath)
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("stat cache entry: %w", err)
	}

	return !entry.ModTime().Before(in.ModTime()), nil
}

// Load reads a cache entry. Structural problems wrap transcript.ErrMalformed.
func Load(cachePath string) (*transcript.Transcription, error) {
	data, err := os.ReadFile(cachePath)
	if err != nil {
		return nil, fmt.Errorf("read cache entry: %w", err)
	}
	t, err := transcript.Decode(data)
	if err != nil {
		return nil, fmt.Errorf("cache entry %s (rerun with --force to rebuild): %w", cachePath, err)
	}
	return t, nil
}

// Store overwrites the cache entry with t
func Store(cachePath string, t *transcript.Transcription) error {
	data, err := transcript.Encode(t)
	if err != nil {
		return err
	}
	if err := os.WriteFile(cachePath, data, 0644); err != nil {
		return fmt.Errorf("write cache entry: %w", err)
	}
	return nil
}
