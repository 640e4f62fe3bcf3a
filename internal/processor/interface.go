package processor

import "context"

// Options are the per-run switches from the command line
type Options struct {
	// TranscriptionOnly skips the summary and returns the assembled transcript
	TranscriptionOnly bool
	// Force bypasses the transcription cache
	Force bool
	// Prompt is an extra directive appended to the summary request
	Prompt string
}

// Processor runs the whole pipeline for one input
type Processor interface {
	Process(ctx context.Context, inputPath string, opts Options) (string, error)
}
