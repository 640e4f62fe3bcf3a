package classifier

import (
	"github.com/nguyentantai21042004/scribe/internal/logger"
)

// prefixSize is how much of a file is read before deciding it is not text
const prefixSize = 1024

type implClassifier struct {
	logger logger.Logger
}

// New creates a new Classifier instance
func New(log logger.Logger) Classifier {
	return &implClassifier{logger: log}
}
