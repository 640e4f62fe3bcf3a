package stt

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"

	"github.com/nguyentantai21042004/scribe/internal/transcript"
)

// Transcribe streams audioPath to the service and asks for segment-level output
func (o *openAITranscriber) Transcribe(ctx context.Context, audioPath string) (*transcript.Transcription, error) {
	f, err := os.Open(audioPath)
	if err != nil {
		return nil, fmt.Errorf("open audio: %w", err)
	}

	pr, pw := io.Pipe()
	mw := multipart.NewWriter(pw)

	go func() {
		defer f.Close()
		pw.CloseWithError(writeForm(mw, f, filepath.Base(audioPath), o.model))
	}()

	o.logger.Info(ctx, "Transcribing with %s: %s", o.model, audioPath)
	data, err := o.client.Post(ctx, "/audio/transcriptions", mw.FormDataContentType(), pr)
	// Unblocks the writer if the request ended early.
	pr.Close()
	if err != nil {
		return nil, fmt.Errorf("transcribe %s: %w", audioPath, err)
	}

	t, err := transcript.Decode(data)
	if err != nil {
		return nil, fmt.Errorf("transcribe %s: %w", audioPath, err)
	}

	o.logger.Debug(ctx, "Received %d segments", len(t.Segments))
	return t, nil
}

func writeForm(mw *multipart.Writer, audio io.Reader, filename, model string) error {
	if err := mw.WriteField("model", model); err != nil {
		return err
	}
	if err := mw.WriteField("response_format", "verbose_json"); err != nil {
		return err
	}
	fw, err := mw.CreateFormFile("file", filename)
	if err != nil {
		return err
	}
	if _, err := io.Copy(fw, audio); err != nil {
		return err
	}
	return mw.Close()
}
