package classifier

import (
	"context"

	"github.com/nguyentantai21042004/scribe/internal/transcript"
)

// Kind names the outcome of classifying an input file
type Kind int

const (
	KindMedia Kind = iota
	KindTranscription
	KindText
)

func (k Kind) String() string {
	switch k {
	case KindTranscription:
		return "transcription"
	case KindText:
		return "text"
	default:
		return "media"
	}
}

// Result holds at most one of Transcription or Text. Both nil means the input
// is opaque media that needs extraction.
type Result struct {
	Transcription *transcript.Transcription
	Text          *string
}

// Kind reports which outcome r holds
func (r Result) Kind() Kind {
	switch {
	case r.Transcription != nil:
		return KindTranscription
	case r.Text != nil:
		return KindText
	default:
		return KindMedia
	}
}

// Classifier decides what an input file already contains
type Classifier interface {
	Classify(ctx context.Context, path string) (Result, error)
}
