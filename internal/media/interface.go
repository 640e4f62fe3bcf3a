package media

import (
	"context"
	"time"
)

// Extractor turns a media file into a compact mono audio file
type Extractor interface {
	Extract(ctx context.Context, inputPath string) (string, error)
	Duration(ctx context.Context, audioPath string) (time.Duration, error)
	// Discard removes an extracted audio file when the configuration asks for it
	Discard(ctx context.Context, audioPath string)
}
