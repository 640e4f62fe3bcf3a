package processor

import (
	"github.com/nguyentantai21042004/scribe/internal/cache"
	"github.com/nguyentantai21042004/scribe/internal/classifier"
	"github.com/nguyentantai21042004/scribe/internal/config"
	"github.com/nguyentantai21042004/scribe/internal/logger"
	"github.com/nguyentantai21042004/scribe/internal/media"
	"github.com/nguyentantai21042004/scribe/internal/stt"
	"github.com/nguyentantai21042004/scribe/internal/summarizer"
	"github.com/nguyentantai21042004/scribe/pkg/executor"
)

type implProcessor struct {
	cfg        *config.Config
	logger     logger.Logger
	classifier classifier.Classifier

	// Built on first use so that runs which never reach a service need no API key.
	newCache      func() (cache.Cache, error)
	newSummarizer func() (summarizer.Summarizer, error)
}

// New creates a new Processor instance
func New(cfg *config.Config, exec executor.Executor, log logger.Logger) Processor {
	return &implProcessor{
		cfg:        cfg,
		logger:     log,
		classifier: classifier.New(log),
		newCache: func() (cache.Cache, error) {
			transcriber, err := stt.New(cfg, exec, log)
			if err != nil {
				return nil, err
			}
			return cache.New(media.New(cfg, exec, log), transcriber, log), nil
		},
		newSummarizer: func() (summarizer.Summarizer, error) {
			return summarizer.New(cfg, log)
		},
	}
}
