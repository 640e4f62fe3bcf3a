package processor

import (
	"context"
	"fmt"
	"time"

	"github.com/nguyentantai21042004/scribe/internal/assembler"
	"github.com/nguyentantai21042004/scribe/internal/classifier"
	"github.com/nguyentantai21042004/scribe/internal/summarizer"
	"github.com/nguyentantai21042004/scribe/internal/transcript"
	"github.com/nguyentantai21042004/scribe/internal/watcher"
)

// Process classifies inputPath, transcribes it when it is media, assembles the
// dated document and, unless TranscriptionOnly is set, summarizes it.
func (p *implProcessor) Process(ctx context.Context, inputPath string, opts Options) (string, error) {
	startTime := time.Now()

	if p.cfg.Input.Settle > 0 {
		if err := p.waitStable(ctx, inputPath); err != nil {
			return "", err
		}
	}

	// Step 1: Classify
	res, err := p.classifier.Classify(ctx, inputPath)
	if err != nil {
		return "", fmt.Errorf("classify: %w", err)
	}
	p.logger.Debug(ctx, "Classified %s as %s", inputPath, res.Kind())

	// Step 2: Obtain a transcription unless the input already is one or is text
	var (
		t    *transcript.Transcription
		text string
	)
	switch res.Kind() {
	case classifier.KindTranscription:
		t = res.Transcription
	case classifier.KindText:
		text = *res.Text
	default:
		c, err := p.newCache()
		if err != nil {
			return "", fmt.Errorf("set up transcription: %w", err)
		}
		if t, err = c.Get(ctx, inputPath, opts.Force); err != nil {
			return "", err
		}
	}

	// Step 3: Assemble
	doc, err := assembler.NewDocument(inputPath, t, text)
	if err != nil {
		return "", fmt.Errorf("assemble: %w", err)
	}
	rendered := assembler.Render(doc)

	if opts.TranscriptionOnly {
		if p.cfg.Summary.Docx {
			p.exportDocx(ctx, inputPath, "transcript", func(path string) error {
				return summarizer.WriteTranscriptDocx(doc.Filename, rendered, path)
			})
		}
		p.logger.Info(ctx, "Processing time: %s", time.Since(startTime))
		return rendered, nil
	}

	// Step 4: Summarize
	s, err := p.newSummarizer()
	if err != nil {
		return "", fmt.Errorf("set up summarizer: %w", err)
	}
	summary, err := s.Summarize(ctx, rendered, opts.Prompt)
	if err != nil {
		return "", err
	}

	if p.cfg.Summary.Docx {
		p.exportDocx(ctx, inputPath, "summary", func(path string) error {
			return summarizer.WriteSummaryDocx(doc.Filename, summary, path)
		})
	}

	p.logger.Info(ctx, "Processing time: %s", time.Since(startTime))
	return summary, nil
}

func (p *implProcessor) waitStable(ctx context.Context, inputPath string) error {
	w, err := watcher.New(inputPath, p.cfg.Input.Settle, p.logger)
	if err != nil {
		return fmt.Errorf("watch input: %w", err)
	}
	defer w.Stop()

	if err := w.WaitStable(ctx); err != nil {
		return fmt.Errorf("wait for input: %w", err)
	}
	return nil
}
