package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"social-listener/config"
	"social-listener/internal/logger"
	"social-listener/models"
	"social-listener/reddit"
	"social-listener/sentiment"
)

// ErrRedditUnavailable is returned when the Reddit client was never
// configured. The search endpoint fails fast rather than returning partial
// results.
var ErrRedditUnavailable = errors.New("reddit search is unavailable")

// SearchService orchestrates one search: query Reddit, score each post,
// persist the search record and the enriched posts.
type SearchService struct {
	client   *reddit.Client
	posts    postStore
	searches searchStore
	cfg      config.SearchConfig
}

// NewSearchService wires the search pipeline. client may be nil when Reddit
// credentials are missing; searches then fail with ErrRedditUnavailable.
func NewSearchService(client *reddit.Client, posts postStore, searches searchStore, cfg config.SearchConfig) *SearchService {
	return &SearchService{
		client:   client,
		posts:    posts,
		searches: searches,
		cfg:      cfg,
	}
}

// Search runs the keyword search for one owner and returns the enriched
// posts. Persistence failures are logged and skipped so a flaky store never
// hides fresh results from the caller.
func (s *SearchService) Search(ctx context.Context, ownerID, keyword, subreddit string, limit int) ([]models.Post, error) {
	if s.client == nil {
		return nil, ErrRedditUnavailable
	}

	keyword = strings.TrimSpace(keyword)
	if subreddit == "" {
		subreddit = "all"
	}
	if limit <= 0 {
		limit = s.cfg.DefaultLimit
	}
	if limit > s.cfg.MaxLimit {
		limit = s.cfg.MaxLimit
	}

	logger.Log.Infof("searching for keyword %q in r/%s (limit: %d)", keyword, subreddit, limit)

	submissions, err := s.client.Search(ctx, keyword, subreddit, limit)
	if err != nil {
		return nil, fmt.Errorf("reddit search: %w", err)
	}

	searchTimestamp := time.Now().UTC().Format(time.RFC3339)
	posts := make([]models.Post, 0, len(submissions))
	for _, sub := range submissions {
		post, err := buildPost(sub, ownerID, keyword, searchTimestamp, s.cfg.BodyTruncateLen)
		if err != nil {
			// one malformed submission never aborts the batch
			logger.Log.Warnf("skipping submission %q: %v", sub.ID, err)
			continue
		}
		posts = append(posts, post)
	}

	s.persist(ctx, ownerID, keyword, subreddit, searchTimestamp, posts)

	logger.Log.Infof("found %d posts for keyword %q", len(posts), keyword)
	return posts, nil
}

// History returns the owner's recent searches. Read path, fail-soft: a store
// error is logged and an empty history is served.
func (s *SearchService) History(ctx context.Context, ownerID string) []models.SearchRecord {
	records, err := s.searches.FindRecentByOwner(ctx, ownerID, s.cfg.HistoryPageSize)
	if err != nil {
		logger.ErrorWithFields("failed to fetch search history, serving empty list", logger.Fields{
			"owner_id": ownerID,
			"error":    err.Error(),
		})
		return []models.SearchRecord{}
	}
	if records == nil {
		records = []models.SearchRecord{}
	}
	return records
}

// buildPost maps one raw submission to an enriched Post. A submission
// without an id or title counts as malformed.
func buildPost(sub reddit.Submission, ownerID, keyword, searchTimestamp string, bodyLimit int) (models.Post, error) {
	if sub.ID == "" {
		return models.Post{}, errors.New("submission has no id")
	}
	if sub.Title == "" {
		return models.Post{}, errors.New("submission has no title")
	}

	author := sub.Author
	if author == "" {
		author = "[deleted]"
	}

	var body *string
	if sub.Selftext != "" {
		truncated := truncateRunes(sub.Selftext, bodyLimit)
		body = &truncated
	}

	score := sentiment.ScorePost(sub.Title, body)

	return models.Post{
		ID:              sub.ID,
		Title:           sub.Title,
		Author:          author,
		Subreddit:       sub.Subreddit,
		Upvotes:         sub.Score,
		URL:             sub.URL,
		Comments:        sub.NumComments,
		CreatedUTC:      sub.CreatedUTC,
		Permalink:       "https://reddit.com" + sub.Permalink,
		Body:            body,
		KeywordSearched: keyword,
		SearchTimestamp: searchTimestamp,
		SentimentScore:  &score,
		OwnerID:         ownerID,
	}, nil
}

// persist writes the search record and upserts each post. Individual post
// upsert failures are logged and skipped.
func (s *SearchService) persist(ctx context.Context, ownerID, keyword, subreddit, searchTimestamp string, posts []models.Post) {
	record := &models.SearchRecord{
		ID:           uuid.NewString(),
		OwnerID:      ownerID,
		Keyword:      keyword,
		Subreddit:    subreddit,
		Timestamp:    searchTimestamp,
		PostCount:    len(posts),
		AvgSentiment: averageSentiment(posts),
	}
	if _, err := s.searches.Insert(ctx, record); err != nil {
		logger.Log.Warnf("failed to store search record for keyword %q: %v", keyword, err)
	}

	for i := range posts {
		if _, err := s.posts.UpsertByRedditID(ctx, &posts[i]); err != nil {
			logger.Log.Warnf("failed to upsert post %s: %v", posts[i].ID, err)
		}
	}
}

// averageSentiment is the mean of the posts' scores, nil for an empty batch.
func averageSentiment(posts []models.Post) *float64 {
	var sum float64
	var count int
	for _, p := range posts {
		if p.SentimentScore != nil {
			sum += *p.SentimentScore
			count++
		}
	}
	if count == 0 {
		return nil
	}
	avg := roundTo2(sum / float64(count))
	return &avg
}

// truncateRunes returns s truncated to max runes.
func truncateRunes(s string, max int) string {
	rs := []rune(s)
	if len(rs) <= max {
		return s
	}
	return string(rs[:max])
}
