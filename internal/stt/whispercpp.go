package stt

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/nguyentantai21042004/scribe/internal/transcript"
)

type whisperCPPOutput struct {
	Result struct {
		Language string `json:"language"`
	} `json:"result"`
	Transcription []struct {
		Offsets struct {
			From int64 `json:"from"`
			To   int64 `json:"to"`
		} `json:"offsets"`
		Text string `json:"text"`
	} `json:"transcription"`
}

// Transcribe runs whisper.cpp with JSON output and converts the millisecond offsets
func (w *whisperCPPTranscriber) Transcribe(ctx context.Context, audioPath string) (*transcript.Transcription, error) {
	// whisper.cpp appends .json to the prefix
	outputPrefix := strings.TrimSuffix(audioPath, filepath.Ext(audioPath)) + ".whisper"
	jsonPath := outputPrefix + ".json"

	// -oj: JSON output
	// -of: output file prefix
	// -np: no progress prints on stdout
	args := []string{
		"-m", w.cfg.ModelPath,
		"-f", audioPath,
		"-l", w.cfg.Language,
		"-t", strconv.Itoa(w.cfg.Threads),
		"-oj",
		"-of", outputPrefix,
		"-np",
	}

	w.logger.Info(ctx, "Transcribing with whisper.cpp (%d threads): %s", w.cfg.Threads, audioPath)
	if _, err := w.executor.Execute(ctx, w.cfg.BinaryPath, args...); err != nil {
		return nil, fmt.Errorf("whisper transcribe: %w", err)
	}
	defer w.cleanupTempFile(ctx, jsonPath)

	data, err := os.ReadFile(jsonPath)
	if err != nil {
		return nil, fmt.Errorf("read whisper output: %w", err)
	}

	var out whisperCPPOutput
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("%w: whisper output: %v", transcript.ErrMalformed, err)
	}

	t := &transcript.Transcription{
		Language: out.Result.Language,
		Segments: make([]transcript.Segment, 0, len(out.Transcription)),
	}
	var text []string
	for _, s := range out.Transcription {
		t.Segments = append(t.Segments, transcript.Segment{
			Start: float64(s.Offsets.From) / 1000,
			End:   float64(s.Offsets.To) / 1000,
			Text:  s.Text,
		})
		text = append(text, strings.TrimSpace(s.Text))
	}
	t.Text = strings.Join(text, " ")

	if err := t.Validate(); err != nil {
		return nil, err
	}

	w.logger.Info(ctx, "Transcription completed: %d segments", len(t.Segments))
	return t, nil
}

func (w *whisperCPPTranscriber) cleanupTempFile(ctx context.Context, path string) {
	if err := os.Remove(path); err != nil {
		w.logger.Warn(ctx, "Failed to cleanup temp file %s: %v", path, err)
	}
}
