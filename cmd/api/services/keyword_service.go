package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"social-listener/internal/logger"
	"social-listener/models"
)

var (
	ErrBlankKeyword    = errors.New("keyword must not be blank")
	ErrKeywordNotFound = errors.New("keyword not found")
)

// KeywordService manages the keywords a user tracks. Listing is fail-soft;
// saving and deleting surface store errors because they are write paths.
type KeywordService struct {
	keywords keywordStore
}

func NewKeywordService(keywords keywordStore) *KeywordService {
	return &KeywordService{keywords: keywords}
}

// Save stores a new tracked keyword in the Active state.
func (s *KeywordService) Save(ctx context.Context, ownerID, keyword, subreddit string) (*models.SavedKeyword, error) {
	keyword = strings.TrimSpace(keyword)
	if keyword == "" {
		return nil, ErrBlankKeyword
	}
	if subreddit == "" {
		subreddit = "all"
	}

	saved := &models.SavedKeyword{
		ID:        uuid.NewString(),
		OwnerID:   ownerID,
		Keyword:   keyword,
		Subreddit: subreddit,
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
		Status:    models.KeywordActive,
	}
	if _, err := s.keywords.Insert(ctx, saved); err != nil {
		return nil, fmt.Errorf("keyword insert: %w", err)
	}
	return saved, nil
}

// List returns the owner's active keywords. Store errors degrade to an
// empty list, logged for operators.
func (s *KeywordService) List(ctx context.Context, ownerID string) []models.SavedKeyword {
	keywords, err := s.keywords.FindActiveByOwner(ctx, ownerID)
	if err != nil {
		logger.ErrorWithFields("failed to fetch saved keywords, serving empty list", logger.Fields{
			"owner_id": ownerID,
			"error":    err.Error(),
		})
		return []models.SavedKeyword{}
	}
	if keywords == nil {
		keywords = []models.SavedKeyword{}
	}
	return keywords
}

// Delete soft-deletes a keyword: Active -> Deleted, terminal. The document
// is never removed from the store.
func (s *KeywordService) Delete(ctx context.Context, ownerID, keywordID string) error {
	matched, err := s.keywords.SoftDelete(ctx, ownerID, keywordID)
	if err != nil {
		return fmt.Errorf("keyword delete: %w", err)
	}
	if matched == 0 {
		return ErrKeywordNotFound
	}
	return nil
}
