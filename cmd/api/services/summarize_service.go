package services

import (
	"context"
	"errors"

	"social-listener/summarizer"
)

// ErrSummarizerUnavailable is returned when Gemini was never configured.
var ErrSummarizerUnavailable = errors.New("summarizer is unavailable")

// SummarizeService exposes LLM summarization to the API layer. sum is nil
// when no API key is configured; the feature then degrades to an explicit
// error, never a silent failure.
type SummarizeService struct {
	sum *summarizer.Summarizer
}

func NewSummarizeService(sum *summarizer.Summarizer) *SummarizeService {
	return &SummarizeService{sum: sum}
}

func (s *SummarizeService) Summarize(ctx context.Context, text string) (string, error) {
	if s.sum == nil {
		return "", ErrSummarizerUnavailable
	}
	return s.sum.Summarize(ctx, text)
}
