package media

import (
	"github.com/nguyentantai21042004/scribe/internal/config"
	"github.com/nguyentantai21042004/scribe/internal/logger"
	"github.com/nguyentantai21042004/scribe/pkg/executor"
)

type implExtractor struct {
	cfg      config.FFmpegConfig
	audioDir string
	executor executor.Executor
	logger   logger.Logger
}

// New creates a new Extractor instance
func New(cfg *config.Config, exec executor.Executor, log logger.Logger) Extractor {
	return &implExtractor{
		cfg:      cfg.FFmpeg,
		audioDir: cfg.Paths.AudioDir,
		executor: exec,
		logger:   log,
	}
}
