package stt

import (
	"fmt"
	"net/http"

	"github.com/nguyentantai21042004/scribe/internal/config"
	"github.com/nguyentantai21042004/scribe/internal/logger"
	"github.com/nguyentantai21042004/scribe/internal/openai"
	"github.com/nguyentantai21042004/scribe/pkg/executor"
)

// New creates the Transcriber selected by stt.backend
func New(cfg *config.Config, exec executor.Executor, log logger.Logger) (Transcriber, error) {
	switch cfg.STT.Backend {
	case config.BackendWhisperCPP:
		return NewWhisperCPP(cfg.Whisper, exec, log), nil
	case config.BackendOpenAI, "":
		return NewOpenAI(cfg.OpenAI, nil, log)
	default:
		return nil, fmt.Errorf("unsupported stt backend %q", cfg.STT.Backend)
	}
}

type openAITranscriber struct {
	client *openai.Client
	model  string
	logger logger.Logger
}

// NewOpenAI creates a Transcriber backed by the audio transcriptions endpoint.
// httpClient may be nil.
func NewOpenAI(cfg config.OpenAIConfig, httpClient *http.Client, log logger.Logger) (Transcriber, error) {
	client, err := openai.NewClient(cfg.BaseURL, cfg.APIKey, httpClient, log)
	if err != nil {
		return nil, err
	}
	return &openAITranscriber{
		client: client,
		model:  cfg.STTModel,
		logger: log,
	}, nil
}

type whisperCPPTranscriber struct {
	cfg      config.WhisperConfig
	executor executor.Executor
	logger   logger.Logger
}

// NewWhisperCPP creates a Transcriber running a local whisper.cpp binary
func NewWhisperCPP(cfg config.WhisperConfig, exec executor.Executor, log logger.Logger) Transcriber {
	return &whisperCPPTranscriber{
		cfg:      cfg,
		executor: exec,
		logger:   log,
	}
}
