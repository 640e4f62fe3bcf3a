package cache

import (
	"context"

	"github.com/nguyentantai21042004/scribe/internal/transcript"
)

// Cache returns the transcription of a media file, transcribing it only when
// the sidecar entry is stale or missing.
type Cache interface {
	Get(ctx context.Context, inputPath string, skipCache bool) (*transcript.Transcription, error)
}
