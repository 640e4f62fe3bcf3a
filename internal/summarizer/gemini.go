package summarizer

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"google.golang.org/genai"
)

// Summarize calls Gemini once with the directive as system instruction
func (s *geminiSummarizer) Summarize(ctx context.Context, document, extraPrompt string) (string, error) {
	clientCfg := &genai.ClientConfig{
		APIKey:     s.cfg.APIKey,
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: s.httpClient,
	}
	if s.cfg.BaseURL != "" {
		clientCfg.HTTPOptions = genai.HTTPOptions{BaseURL: s.cfg.BaseURL}
	}

	client, err := genai.NewClient(ctx, clientCfg)
	if err != nil {
		return "", fmt.Errorf("create gemini client: %w", err)
	}

	instruction := &genai.Content{Parts: []*genai.Part{genai.NewPartFromText(systemDirective)}}
	if extraPrompt != "" {
		instruction.Parts = append(instruction.Parts, genai.NewPartFromText(extraPrompt))
	}

	s.logger.Info(ctx, "Summarizing with %s", s.cfg.Model)
	result, err := client.Models.GenerateContent(ctx, s.cfg.Model, genai.Text(document), &genai.GenerateContentConfig{
		SystemInstruction: instruction,
	})
	if err != nil {
		if msg := apiErrorMessage(err); msg != "" {
			s.logger.Error(ctx, "Gemini error: %s", msg)
		}
		return "", fmt.Errorf("generate content: %w", err)
	}

	if result != nil && len(result.Candidates) > 0 && result.Candidates[0].Content != nil {
		var text strings.Builder
		for _, part := range result.Candidates[0].Content.Parts {
			if part.Text != "" {
				text.WriteString(part.Text)
			}
		}
		return text.String(), nil
	}

	return "", fmt.Errorf("%w: empty response from Gemini", ErrMalformedResponse)
}

// apiErrorMessage extracts the service message from a Gemini API error, if any.
func apiErrorMessage(err error) string {
	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		return apiErr.Message
	}
	var apiErrPtr *genai.APIError
	if errors.As(err, &apiErrPtr) && apiErrPtr != nil {
		return apiErrPtr.Message
	}
	return ""
}
