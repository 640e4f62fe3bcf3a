package media

import (
	"context"
	"os"
)

// Discard removes the extracted audio if ffmpeg.cleanup_audio is set, logs a warning if it fails
func (e *implExtractor) Discard(ctx context.Context, audioPath string) {
	if !e.cfg.CleanupAudio || audioPath == "" {
		return
	}

	if err := os.Remove(audioPath); err != nil {
		e.logger.Warn(ctx, "Failed to cleanup audio file %s: %v", audioPath, err)
	} else {
		e.logger.Debug(ctx, "Cleaned up audio file: %s", audioPath)
	}
}
