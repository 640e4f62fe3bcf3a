package summarizer

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/nguyentantai21042004/scribe/internal/config"
	"github.com/nguyentantai21042004/scribe/internal/logger"
	"github.com/nguyentantai21042004/scribe/internal/openai"
)

// New creates the Summarizer selected by summary.provider
func New(cfg *config.Config, log logger.Logger) (Summarizer, error) {
	switch cfg.Summary.Provider {
	case config.ProviderGemini:
		return NewGemini(cfg.Gemini, nil, log)
	case config.ProviderOpenAI, "":
		return NewOpenAI(cfg.OpenAI, nil, log)
	default:
		return nil, fmt.Errorf("unsupported summary provider %q", cfg.Summary.Provider)
	}
}

type openAISummarizer struct {
	client *openai.Client
	model  string
	logger logger.Logger
}

// NewOpenAI creates a Summarizer backed by the chat completions endpoint.
// httpClient may be nil.
func NewOpenAI(cfg config.OpenAIConfig, httpClient *http.Client, log logger.Logger) (Summarizer, error) {
	client, err := openai.NewClient(cfg.BaseURL, cfg.APIKey, httpClient, log)
	if err != nil {
		return nil, err
	}
	return &openAISummarizer{
		client: client,
		model:  cfg.ChatModel,
		logger: log,
	}, nil
}

type geminiSummarizer struct {
	cfg        config.GeminiConfig
	httpClient *http.Client
	logger     logger.Logger
}

// NewGemini creates a Summarizer backed by the Gemini API. httpClient may be nil.
func NewGemini(cfg config.GeminiConfig, httpClient *http.Client, log logger.Logger) (Summarizer, error) {
	if cfg.APIKey == "" {
		return nil, errors.New("gemini api key is not configured (set GEMINI_API_KEY)")
	}
	return &geminiSummarizer{
		cfg:        cfg,
		httpClient: httpClient,
		logger:     log,
	}, nil
}
