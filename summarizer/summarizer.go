package summarizer

import (
	"context"
	"errors"
	"strings"
	"time"

	"google.golang.org/genai"

	"social-listener/cmd/api/trace"
	"social-listener/internal/logger"
)

// ErrNotConfigured is returned when no Gemini API key is available.
var ErrNotConfigured = errors.New("summarizer is not configured")

// ErrEmptyInput is returned when there is nothing to summarize.
var ErrEmptyInput = errors.New("summarize input is empty")

// maxInputRunes caps the text sent to the model.
const maxInputRunes = 2000

const systemInstruction = `
You are a summarization assistant for social media discussions. Summarize the
provided Reddit content in 2-3 plain sentences: the main topic, the overall
tone of the discussion, and any notable claims. Respond with the summary text
only, no preamble, no markdown.
`

// Summarizer wraps Gemini text summarization behind a single reusable handle.
type Summarizer struct {
	apiKey string
	model  string
}

// New builds a Summarizer. A missing API key is reported immediately so the
// feature degrades to an explicit error instead of failing on first use.
func New(apiKey, model string) (*Summarizer, error) {
	if apiKey == "" {
		return nil, ErrNotConfigured
	}
	return &Summarizer{apiKey: apiKey, model: model}, nil
}

// Summarize returns a short plain-text summary of the given content.
func (s *Summarizer) Summarize(ctx context.Context, text string) (string, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return "", ErrEmptyInput
	}
	text = truncate(text, maxInputRunes)

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: s.apiKey,
	})
	if err != nil {
		return "", err
	}

	// the model call counts as one outbound span of the serving request
	requestID, spanID := trace.NextSpanID(ctx)
	start := time.Now()

	result, err := client.Models.GenerateContent(
		ctx,
		s.model,
		genai.Text(text),
		&genai.GenerateContentConfig{
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: systemInstruction}}},
		},
	)
	if err != nil {
		logger.ErrorWithFields("gemini summarize failed", logger.Fields{
			"model":      s.model,
			"duration":   time.Since(start).String(),
			"request_id": requestID,
			"span_id":    spanID,
			"error":      err.Error(),
		})
		return "", err
	}
	logger.DebugWithFields("gemini summarize success", logger.Fields{
		"model":      s.model,
		"duration":   time.Since(start).String(),
		"request_id": requestID,
		"span_id":    spanID,
	})

	summary := strings.TrimSpace(result.Text())
	if summary == "" {
		return "", errors.New("summarizer returned empty response")
	}
	return summary, nil
}

// truncate returns s truncated to max runes.
func truncate(s string, max int) string {
	rs := []rune(s)
	if len(rs) <= max {
		return s
	}
	return string(rs[:max])
}
