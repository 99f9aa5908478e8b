package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"social-listener/cmd/api/dto"
	"social-listener/models"
)

func strPtr(s string) *string   { return &s }
func intPtr(n int) *int         { return &n }
func f64Ptr(v float64) *float64 { return &v }

func samplePosts() []models.Post {
	return []models.Post{
		{ID: "a1", Title: "first", Subreddit: "golang", Upvotes: 10, Comments: 3, CreatedUTC: 1700000000, SentimentScore: f64Ptr(7.5)},
		{ID: "b2", Title: "second", Subreddit: "programming", Upvotes: 2, Comments: 50, CreatedUTC: 1710000000, SentimentScore: f64Ptr(4.0)},
		{ID: "c3", Title: "third", Subreddit: "golang", Upvotes: 8, Comments: 1, CreatedUTC: 1720000000, SentimentScore: nil},
	}
}

func TestFilterApplyNoCriteriaReturnsAllInOrder(t *testing.T) {
	svc := NewFilterService()
	posts := samplePosts()

	got, err := svc.Apply(posts, dto.FilterCriteriaDTO{})
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, "a1", got[0].ID)
	assert.Equal(t, "b2", got[1].ID)
	assert.Equal(t, "c3", got[2].ID)
}

func TestFilterApplyCombinedBounds(t *testing.T) {
	svc := NewFilterService()

	got, err := svc.Apply(samplePosts(), dto.FilterCriteriaDTO{
		MinUpvotes:   intPtr(5),
		MinSentiment: f64Ptr(5.0),
	})
	require.NoError(t, err)
	// only the first post has both enough upvotes and a score above the bound
	require.Len(t, got, 1)
	assert.Equal(t, "a1", got[0].ID)
}

func TestFilterApplyNilSentimentFailsSentimentBounds(t *testing.T) {
	svc := NewFilterService()

	got, err := svc.Apply(samplePosts(), dto.FilterCriteriaDTO{MaxSentiment: f64Ptr(9.9)})
	require.NoError(t, err)
	for _, p := range got {
		assert.NotNil(t, p.SentimentScore)
	}
	require.Len(t, got, 2)
}

func TestFilterApplySubredditSubstringCaseInsensitive(t *testing.T) {
	svc := NewFilterService()

	got, err := svc.Apply(samplePosts(), dto.FilterCriteriaDTO{Subreddit: strPtr("GOLang")})
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "a1", got[0].ID)
	assert.Equal(t, "c3", got[1].ID)
}

func TestFilterApplyEmptySubredditIgnored(t *testing.T) {
	svc := NewFilterService()

	got, err := svc.Apply(samplePosts(), dto.FilterCriteriaDTO{Subreddit: strPtr("")})
	require.NoError(t, err)
	assert.Len(t, got, 3)
}

func TestFilterApplyDateRange(t *testing.T) {
	svc := NewFilterService()

	// the first post was created 2023-11-14, the bound excludes it
	got, err := svc.Apply(samplePosts(), dto.FilterCriteriaDTO{
		StartDate: strPtr("2023-11-15"),
	})
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "b2", got[0].ID)
	assert.Equal(t, "c3", got[1].ID)
}

func TestFilterApplyAcceptsSeveralDateLayouts(t *testing.T) {
	svc := NewFilterService()

	for _, value := range []string{"2024-01-01", "2024-01-01T00:00:00", "2024-01-01T00:00:00Z"} {
		_, err := svc.Apply(samplePosts(), dto.FilterCriteriaDTO{StartDate: strPtr(value)})
		assert.NoError(t, err, "layout %q", value)
	}
}

func TestFilterApplyInvalidDateRejected(t *testing.T) {
	svc := NewFilterService()

	_, err := svc.Apply(samplePosts(), dto.FilterCriteriaDTO{StartDate: strPtr("not-a-date")})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestFilterApplyIsIdempotent(t *testing.T) {
	svc := NewFilterService()
	criteria := dto.FilterCriteriaDTO{MinUpvotes: intPtr(5)}

	once, err := svc.Apply(samplePosts(), criteria)
	require.NoError(t, err)
	twice, err := svc.Apply(once, criteria)
	require.NoError(t, err)
	assert.Equal(t, once, twice)
}

func TestFilterApplyLeavesInputUntouched(t *testing.T) {
	svc := NewFilterService()
	posts := samplePosts()

	_, err := svc.Apply(posts, dto.FilterCriteriaDTO{MinUpvotes: intPtr(100)})
	require.NoError(t, err)
	assert.Equal(t, samplePosts(), posts)
}
