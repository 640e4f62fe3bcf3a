package cache

import (
	"context"
	"fmt"

	"github.com/nguyentantai21042004/scribe/internal/transcript"
)

// Get loads the sidecar when it is fresh. Otherwise, or when skipCache is set,
// it extracts audio, transcribes it and overwrites the sidecar.
// A malformed fresh entry is an error, never a reason to transcribe again.
func (c *implCache) Get(ctx context.Context, inputPath string, skipCache bool) (*transcript.Transcription, error) {
	cachePath := Path(inputPath)

	fresh, err := IsFresh(inputPath, cachePath)
	if err != nil {
		return nil, err
	}

	if fresh && !skipCache {
		c.logger.Info(ctx, "Loading cached transcription from: %s", cachePath)
		return Load(cachePath)
	}

	if skipCache {
		c.logger.Debug(ctx, "Cache bypassed for %s", inputPath)
	}

	audioPath, err := c.extractor.Extract(ctx, inputPath)
	if err != nil {
		return nil, fmt.Errorf("extract audio: %w", err)
	}

	t, err := c.transcriber.Transcribe(ctx, audioPath)
	if err != nil {
		return nil, fmt.Errorf("transcribe: %w", err)
	}

	c.logger.Debug(ctx, "Caching transcription to: %s", cachePath)
	if err := Store(cachePath, t); err != nil {
		return nil, err
	}

	c.extractor.Discard(ctx, audioPath)
	return t, nil
}
