package stt

import (
	"context"

	"github.com/nguyentantai21042004/scribe/internal/transcript"
)

// Transcriber converts an audio file into time-stamped segments
type Transcriber interface {
	Transcribe(ctx context.Context, audioPath string) (*transcript.Transcription, error)
}
