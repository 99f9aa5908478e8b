package services

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"social-listener/models"
)

func scoredPost(date string, score float64) models.Post {
	return models.Post{
		SearchTimestamp: date + "T12:00:00Z",
		SentimentScore:  f64Ptr(score),
	}
}

func TestBuildSentimentTrendsGroupsByDayNewestFirst(t *testing.T) {
	posts := []models.Post{
		scoredPost("2025-08-01", 6.0),
		scoredPost("2025-08-02", 8.0),
		scoredPost("2025-08-01", 4.0),
	}

	trends := BuildSentimentTrends(posts, 30)
	require.Len(t, trends, 2)

	assert.Equal(t, "2025-08-02", trends[0].Date)
	assert.Equal(t, 8.0, trends[0].AvgSentiment)
	assert.Equal(t, 1, trends[0].PostCount)

	assert.Equal(t, "2025-08-01", trends[1].Date)
	assert.Equal(t, 5.0, trends[1].AvgSentiment)
	assert.Equal(t, 2, trends[1].PostCount)
}

func TestBuildSentimentTrendsSkipsUnusablePosts(t *testing.T) {
	posts := []models.Post{
		{SearchTimestamp: "2025-08-01T12:00:00Z", SentimentScore: nil},
		{SearchTimestamp: "bad", SentimentScore: f64Ptr(7.0)},
		{SearchTimestamp: "", SentimentScore: f64Ptr(7.0)},
	}

	assert.Empty(t, BuildSentimentTrends(posts, 30))
}

func TestBuildSentimentTrendsCapsBuckets(t *testing.T) {
	var posts []models.Post
	for day := 1; day <= 31; day++ {
		posts = append(posts, scoredPost(fmt.Sprintf("2025-07-%02d", day), 5.0))
	}

	trends := BuildSentimentTrends(posts, 30)
	require.Len(t, trends, 30)
	// the oldest day falls off, not the newest
	assert.Equal(t, "2025-07-31", trends[0].Date)
	assert.Equal(t, "2025-07-02", trends[29].Date)
}

func TestBuildSentimentTrendsRoundsAverages(t *testing.T) {
	posts := []models.Post{
		scoredPost("2025-08-01", 5.0),
		scoredPost("2025-08-01", 5.0),
		scoredPost("2025-08-01", 6.0),
	}

	trends := BuildSentimentTrends(posts, 30)
	require.Len(t, trends, 1)
	assert.Equal(t, 5.33, trends[0].AvgSentiment)
}

func TestBuildKeywordStatsAggregatesPerKeyword(t *testing.T) {
	searches := []models.SearchRecord{
		{Keyword: "rust", PostCount: 5, AvgSentiment: f64Ptr(6.0), Timestamp: "2025-08-01T10:00:00Z"},
		{Keyword: "rust", PostCount: 3, AvgSentiment: nil, Timestamp: "2025-08-03T10:00:00Z"},
	}

	stats := BuildKeywordStats(searches, 10)
	require.Len(t, stats, 1)

	assert.Equal(t, "rust", stats[0].Keyword)
	assert.Equal(t, 2, stats[0].SearchCount)
	assert.Equal(t, 8, stats[0].TotalPosts)
	// nil averages are ignored, not treated as zero
	require.NotNil(t, stats[0].AvgSentiment)
	assert.Equal(t, 6.0, *stats[0].AvgSentiment)
	assert.Equal(t, "2025-08-03T10:00:00Z", stats[0].LastSearch)
}

func TestBuildKeywordStatsSortsByCountWithStableTies(t *testing.T) {
	searches := []models.SearchRecord{
		{Keyword: "alpha", PostCount: 1},
		{Keyword: "beta", PostCount: 1},
		{Keyword: "gamma", PostCount: 1},
		{Keyword: "beta", PostCount: 1},
	}

	stats := BuildKeywordStats(searches, 10)
	require.Len(t, stats, 3)
	assert.Equal(t, "beta", stats[0].Keyword)
	// alpha and gamma tie on count and keep first-seen order
	assert.Equal(t, "alpha", stats[1].Keyword)
	assert.Equal(t, "gamma", stats[2].Keyword)
}

func TestBuildKeywordStatsCapsAtTop(t *testing.T) {
	var searches []models.SearchRecord
	for i := 0; i < 12; i++ {
		searches = append(searches, models.SearchRecord{Keyword: fmt.Sprintf("kw-%d", i), PostCount: 1})
	}

	stats := BuildKeywordStats(searches, 10)
	assert.Len(t, stats, 10)
}

func TestBuildKeywordStatsNoSentimentMeansNilAverage(t *testing.T) {
	stats := BuildKeywordStats([]models.SearchRecord{{Keyword: "quiet", PostCount: 0}}, 10)
	require.Len(t, stats, 1)
	assert.Nil(t, stats[0].AvgSentiment)
}

func TestDashboardServesEmptyViewWhenStoreFails(t *testing.T) {
	down := errors.New("store down")

	cases := map[string]struct {
		posts    *fakePostStore
		searches *fakeSearchStore
	}{
		"post store down":   {&fakePostStore{err: down}, &fakeSearchStore{}},
		"search store down": {&fakePostStore{}, &fakeSearchStore{err: down}},
		"both down":         {&fakePostStore{err: down}, &fakeSearchStore{err: down}},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			svc := NewDashboardService(tc.posts, tc.searches, 100)
			view := svc.Dashboard(context.Background(), "owner-1")
			assert.Equal(t, models.EmptyDashboardView(), view)
		})
	}
}

func TestDashboardAggregatesFromStores(t *testing.T) {
	posts := &fakePostStore{
		scored: []models.Post{scoredPost("2025-08-01", 6.0), scoredPost("2025-08-01", 8.0)},
		count:  7,
	}
	searches := &fakeSearchStore{
		recent: []models.SearchRecord{{ID: "s1", Keyword: "go"}},
		all:    []models.SearchRecord{{Keyword: "go", PostCount: 4, Timestamp: "2025-08-01T10:00:00Z"}},
		count:  3,
	}

	svc := NewDashboardService(posts, searches, 100)
	view := svc.Dashboard(context.Background(), "owner-1")

	require.Len(t, view.RecentSearches, 1)
	require.Len(t, view.SentimentTrends, 1)
	assert.Equal(t, 7.0, view.SentimentTrends[0].AvgSentiment)
	require.Len(t, view.KeywordStats, 1)
	assert.Equal(t, "go", view.KeywordStats[0].Keyword)

	// totals come from count queries, never from in-hand slice lengths
	assert.Equal(t, int64(3), view.SummaryStats.TotalSearches)
	assert.Equal(t, int64(7), view.SummaryStats.TotalPosts)

	// every store read is scoped to the requesting owner
	assert.Equal(t, "owner-1", posts.lastOwner)
	assert.Equal(t, "owner-1", searches.lastOwner)
}

func TestAverageOfTrends(t *testing.T) {
	assert.Nil(t, averageOfTrends(nil))
	assert.Nil(t, averageOfTrends([]models.SentimentTrend{}))

	trends := []models.SentimentTrend{
		{AvgSentiment: 4.0},
		{AvgSentiment: 7.0},
	}
	got := averageOfTrends(trends)
	require.NotNil(t, got)
	assert.Equal(t, 5.5, *got)
}
