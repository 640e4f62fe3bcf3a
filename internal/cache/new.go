package cache

import (
	"github.com/nguyentantai21042004/scribe/internal/logger"
	"github.com/nguyentantai21042004/scribe/internal/media"
	"github.com/nguyentantai21042004/scribe/internal/stt"
)

type implCache struct {
	extractor   media.Extractor
	transcriber stt.Transcriber
	logger      logger.Logger
}

// New creates a new Cache instance
func New(extractor media.Extractor, transcriber stt.Transcriber, log logger.Logger) Cache {
	return &implCache{
		extractor:   extractor,
		transcriber: transcriber,
		logger:      log,
	}
}
