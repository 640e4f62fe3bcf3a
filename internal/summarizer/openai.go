package summarizer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
)

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

func buildChatRequest(model, document, extraPrompt string) chatRequest {
	req := chatRequest{
		Model: model,
		Messages: []chatMessage{
			{Role: "system", Content: systemDirective},
			{Role: "user", Content: document},
		},
	}
	if extraPrompt != "" {
		req.Messages = append(req.Messages, chatMessage{Role: "system", Content: extraPrompt})
	}
	return req
}

// Summarize sends one chat completion request and returns the first choice
func (s *openAISummarizer) Summarize(ctx context.Context, document, extraPrompt string) (string, error) {
	body, err := json.Marshal(buildChatRequest(s.model, document, extraPrompt))
	if err != nil {
		return "", fmt.Errorf("encode chat request: %w", err)
	}

	s.logger.Info(ctx, "Summarizing with %s", s.model)
	data, err := s.client.Post(ctx, "/chat/completions", "application/json", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("summarize: %w", err)
	}

	var resp chatResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return "", fmt.Errorf("summarize: %w: chat response: %v", ErrMalformedResponse, err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("summarize: %w: chat response has no choices", ErrMalformedResponse)
	}

	return resp.Choices[0].Message.Content, nil
}
