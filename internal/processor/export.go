package processor

import (
	"context"

	"github.com/nguyentantai21042004/scribe/internal/summarizer"
)

// exportDocx writes the optional .docx copy, logs warning if it fails.
func (p *implProcessor) exportDocx(ctx context.Context, inputPath, kind string, write func(path string) error) {
	path := summarizer.DocxPath(inputPath, kind)
	if err := write(path); err != nil {
		p.logger.Warn(ctx, "Failed to write %s: %v", path, err)
		return
	}
	p.logger.Info(ctx, "Wrote %s", path)
}
