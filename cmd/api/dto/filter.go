package dto

import (
	"social-listener/models"
)

// FilterCriteriaDTO are the optional post-filter constraints. Absent fields
// impose no constraint; supplied fields combine as a logical AND.
type FilterCriteriaDTO struct {
	MinUpvotes   *int     `json:"min_upvotes"`
	MaxUpvotes   *int     `json:"max_upvotes"`
	MinComments  *int     `json:"min_comments"`
	MaxComments  *int     `json:"max_comments"`
	Subreddit    *string  `json:"subreddit"`
	StartDate    *string  `json:"start_date"`
	EndDate      *string  `json:"end_date"`
	MinSentiment *float64 `json:"min_sentiment"`
	MaxSentiment *float64 `json:"max_sentiment"`
}

// FilterRequestDTO is the payload for /api/filter-posts. The call is
// stateless: posts come in the request body and nothing is persisted.
type FilterRequestDTO struct {
	Posts   []models.Post     `json:"posts" binding:"required"`
	Filters FilterCriteriaDTO `json:"filters"`
}
