package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"social-listener/cmd/api/dto"
	"social-listener/models"
)

// ErrInvalidDate is returned when a date bound cannot be parsed. Bad dates
// are a caller error and reject the request before any filtering happens.
var ErrInvalidDate = errors.New("invalid date in filter criteria")

// FilterService applies range/substring/date criteria to in-memory post
// collections. It holds no state and touches no storage.
type FilterService struct{}

func NewFilterService() *FilterService {
	return &FilterService{}
}

// Apply returns the posts satisfying every supplied constraint, preserving
// input order and leaving the input untouched. A post with no sentiment
// score fails any sentiment bound.
func (s *FilterService) Apply(posts []models.Post, criteria dto.FilterCriteriaDTO) ([]models.Post, error) {
	startEpoch, err := parseDateBound(criteria.StartDate)
	if err != nil {
		return nil, err
	}
	endEpoch, err := parseDateBound(criteria.EndDate)
	if err != nil {
		return nil, err
	}

	filtered := make([]models.Post, 0, len(posts))
	for _, post := range posts {
		if criteria.MinUpvotes != nil && post.Upvotes < *criteria.MinUpvotes {
			continue
		}
		if criteria.MaxUpvotes != nil && post.Upvotes > *criteria.MaxUpvotes {
			continue
		}
		if criteria.MinComments != nil && post.Comments < *criteria.MinComments {
			continue
		}
		if criteria.MaxComments != nil && post.Comments > *criteria.MaxComments {
			continue
		}
		if criteria.Subreddit != nil && *criteria.Subreddit != "" &&
			!strings.Contains(strings.ToLower(post.Subreddit), strings.ToLower(*criteria.Subreddit)) {
			continue
		}
		if startEpoch != nil && post.CreatedUTC < *startEpoch {
			continue
		}
		if endEpoch != nil && post.CreatedUTC > *endEpoch {
			continue
		}
		if criteria.MinSentiment != nil &&
			(post.SentimentScore == nil || *post.SentimentScore < *criteria.MinSentiment) {
			continue
		}
		if criteria.MaxSentiment != nil &&
			(post.SentimentScore == nil || *post.SentimentScore > *criteria.MaxSentiment) {
			continue
		}
		filtered = append(filtered, post)
	}

	return filtered, nil
}

// dateLayouts are the accepted ISO-8601 shapes. Offset-less values are
// interpreted as UTC.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

func parseDateBound(value *string) (*float64, error) {
	if value == nil || *value == "" {
		return nil, nil
	}

	for _, layout := range dateLayouts {
		t, err := time.ParseInLocation(layout, *value, time.UTC)
		if err == nil {
			epoch := float64(t.Unix())
			return &epoch, nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrInvalidDate, *value)
}
