package fileutil

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStem(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"clip.mp4", "clip"},
		{filepath.Join("videos", "2024-01-01_standup.mkv"), "2024-01-01_standup"},
		{"archive.tar.gz", "archive.tar"},
		{"noext", "noext"},
		{".recording", ".recording"},
		{filepath.Join("dir", ".other"), ".other"},
		{".hidden.mp4", ".hidden"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, Stem(tt.path))
		})
	}
}
