// Package openai is the HTTP plumbing shared by the transcription and chat
// clients: bearer auth, one attempt per call, and service error extraction.
package openai

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/nguyentantai21042004/scribe/internal/logger"
)

// maxErrorBody bounds how much of a failed response ends up in an error
const maxErrorBody = 512

// ErrStatus is matched by every StatusError
var ErrStatus = errors.New("unexpected status")

// StatusError is returned for a non-2xx response
type StatusError struct {
	StatusCode int
	Message    string
	Body       string
}

func (e *StatusError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("http %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("http %d: %s", e.StatusCode, e.Body)
}

func (e *StatusError) Is(target error) bool {
	return target == ErrStatus
}

type errorResponse struct {
	Error struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"error"`
}

// Client sends authenticated requests to an OpenAI-compatible API
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	logger     logger.Logger
}

// NewClient creates a Client. httpClient may be nil.
func NewClient(baseURL, apiKey string, httpClient *http.Client, log logger.Logger) (*Client, error) {
	if apiKey == "" {
		return nil, errors.New("openai api key is not configured (set OPENAI_API_KEY)")
	}
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		httpClient: httpClient,
		logger:     log,
	}, nil
}

// Post sends body to path and returns the full response body of a 2xx response.
func (c *Client) Post(ctx context.Context, path, contentType string, body io.Reader) ([]byte, error) {
	url := c.baseURL + path
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, body)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", contentType)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("post %s: %w", url, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response from %s: %w", url, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		statusErr := &StatusError{StatusCode: resp.StatusCode, Body: fragment(data)}
		var apiErr errorResponse
		if json.Unmarshal(data, &apiErr) == nil && apiErr.Error.Message != "" {
			statusErr.Message = apiErr.Error.Message
			c.logger.Error(ctx, "API error from %s: %s", url, apiErr.Error.Message)
		}
		return nil, fmt.Errorf("post %s: %w", url, statusErr)
	}

	return data, nil
}

func fragment(data []byte) string {
	s := strings.TrimSpace(string(data))
	if len(s) > maxErrorBody {
		return s[:maxErrorBody] + "..."
	}
	return s
}
