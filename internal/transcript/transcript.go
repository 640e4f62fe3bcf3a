// Package transcript holds the structured transcription records shared by the
// classifier, the cache, the speech-to-text clients and the assembler.
package transcript

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrMalformed marks structured data that does not describe a transcription
var ErrMalformed = errors.New("malformed transcription")

// Segment is one utterance with its offset from the start of the recording
type Segment struct {
	Start float64 `json:"start"`
	End   float64 `json:"end,omitempty"`
	Text  string  `json:"text"`
}

// Transcription is an ordered list of segments in playback order
type Transcription struct {
	Text     string    `json:"text,omitempty"`
	Language string    `json:"language,omitempty"`
	Duration float64   `json:"duration,omitempty"`
	Segments []Segment `json:"segments"`
}

type rawSegment struct {
	Start *float64 `json:"start"`
	End   float64  `json:"end"`
	Text  *string  `json:"text"`
}

type rawTranscription struct {
	Text     string        `json:"text"`
	Language string        `json:"language"`
	Duration float64       `json:"duration"`
	Segments *[]rawSegment `json:"segments"`
}

// Decode parses and validates a JSON transcription. Every failure wraps ErrMalformed.
func Decode(data []byte) (*Transcription, error) {
	var raw rawTranscription
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	if raw.Segments == nil {
		return nil, fmt.Errorf("%w: missing segments", ErrMalformed)
	}

	t := &Transcription{
		Text:     raw.Text,
		Language: raw.Language,
		Duration: raw.Duration,
		Segments: make([]Segment, 0, len(*raw.Segments)),
	}
	for i, rs := range *raw.Segments {
		if rs.Start == nil {
			return nil, fmt.Errorf("%w: segment %d has no start", ErrMalformed, i)
		}
		if rs.Text == nil {
			return nil, fmt.Errorf("%w: segment %d has no text", ErrMalformed, i)
		}
		t.Segments = append(t.Segments, Segment{Start: *rs.Start, End: rs.End, Text: *rs.Text})
	}

	if err := t.Validate(); err != nil {
		return nil, err
	}
	return t, nil
}

// Encode serializes t. A nil segment list is written as an empty array so the
// result always decodes again.
func Encode(t *Transcription) ([]byte, error) {
	if t == nil {
		return nil, fmt.Errorf("%w: nil transcription", ErrMalformed)
	}
	out := *t
	if out.Segments == nil {
		out.Segments = []Segment{}
	}
	data, err := json.Marshal(&out)
	if err != nil {
		return nil, fmt.Errorf("encode transcription: %w", err)
	}
	return data, nil
}

// Validate checks that offsets are non-negative and never go backwards
func (t *Transcription) Validate() error {
	prev := 0.0
	for i, s := range t.Segments {
		if s.Start < 0 {
			return fmt.Errorf("%w: segment %d starts at %v", ErrMalformed, i, s.Start)
		}
		if s.Start < prev {
			return fmt.Errorf("%w: segment %d starts at %v before previous %v", ErrMalformed, i, s.Start, prev)
		}
		prev = s.Start
	}
	return nil
}
