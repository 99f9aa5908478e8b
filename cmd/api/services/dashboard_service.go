package services

import (
	"context"
	"fmt"
	"math"
	"sort"

	"social-listener/internal/logger"
	"social-listener/models"
)

const (
	recentSearchLimit = 10
	trendBucketLimit  = 30
	keywordStatLimit  = 10
)

// DashboardService turns stored posts and searches into the per-owner
// analytics view. All reads are scoped to one owner; data never crosses
// owners.
type DashboardService struct {
	posts            postStore
	searches         searchStore
	trendSampleLimit int
}

func NewDashboardService(posts postStore, searches searchStore, trendSampleLimit int) *DashboardService {
	if trendSampleLimit <= 0 {
		trendSampleLimit = 100
	}
	return &DashboardService{
		posts:            posts,
		searches:         searches,
		trendSampleLimit: trendSampleLimit,
	}
}

// Dashboard assembles the view for one owner. It is fail-soft: if the store
// is unreachable or any step fails, the error is logged for operators and an
// empty view is returned. A broken analytics view must never break the rest
// of the application.
func (s *DashboardService) Dashboard(ctx context.Context, ownerID string) models.DashboardView {
	view, err := s.build(ctx, ownerID)
	if err != nil {
		logger.ErrorWithFields("dashboard aggregation failed, serving empty view", logger.Fields{
			"owner_id": ownerID,
			"error":    err.Error(),
		})
		return models.EmptyDashboardView()
	}
	return view
}

func (s *DashboardService) build(ctx context.Context, ownerID string) (models.DashboardView, error) {
	recent, err := s.searches.FindRecentByOwner(ctx, ownerID, recentSearchLimit)
	if err != nil {
		return models.DashboardView{}, fmt.Errorf("recent searches: %w", err)
	}
	if recent == nil {
		recent = []models.SearchRecord{}
	}

	scoredPosts, err := s.posts.FindScoredByOwner(ctx, ownerID, s.trendSampleLimit)
	if err != nil {
		return models.DashboardView{}, fmt.Errorf("scored posts: %w", err)
	}
	trends := BuildSentimentTrends(scoredPosts, trendBucketLimit)

	allSearches, err := s.searches.FindAllByOwner(ctx, ownerID)
	if err != nil {
		return models.DashboardView{}, fmt.Errorf("all searches: %w", err)
	}
	keywordStats := BuildKeywordStats(allSearches, keywordStatLimit)

	// Counts are always exact. Reusing a partial in-hand slice as a count
	// shortcut silently undercounts, so both totals issue count queries.
	totalSearches, err := s.searches.CountByOwner(ctx, ownerID)
	if err != nil {
		return models.DashboardView{}, fmt.Errorf("search count: %w", err)
	}
	totalPosts, err := s.posts.CountByOwner(ctx, ownerID)
	if err != nil {
		return models.DashboardView{}, fmt.Errorf("post count: %w", err)
	}

	return models.DashboardView{
		RecentSearches:  recent,
		SentimentTrends: trends,
		KeywordStats:    keywordStats,
		SummaryStats: models.SummaryStats{
			TotalSearches: totalSearches,
			TotalPosts:    totalPosts,
			AvgSentiment:  averageOfTrends(trends),
		},
	}, nil
}

// BuildSentimentTrends groups scored posts into day buckets keyed by the
// YYYY-MM-DD prefix of their search timestamp, newest first, capped at
// maxBuckets. Posts without a search timestamp are excluded.
func BuildSentimentTrends(posts []models.Post, maxBuckets int) []models.SentimentTrend {
	type bucket struct {
		sum   float64
		count int
	}
	buckets := map[string]*bucket{}

	for _, p := range posts {
		if p.SentimentScore == nil || len(p.SearchTimestamp) < 10 {
			continue
		}
		date := p.SearchTimestamp[:10]
		b, ok := buckets[date]
		if !ok {
			b = &bucket{}
			buckets[date] = b
		}
		b.sum += *p.SentimentScore
		b.count++
	}

	trends := make([]models.SentimentTrend, 0, len(buckets))
	for date, b := range buckets {
		avg := 5.0
		if b.count > 0 {
			avg = roundTo2(b.sum / float64(b.count))
		}
		trends = append(trends, models.SentimentTrend{
			Date:         date,
			AvgSentiment: avg,
			PostCount:    b.count,
		})
	}

	sort.Slice(trends, func(i, j int) bool {
		return trends[i].Date > trends[j].Date
	})
	if len(trends) > maxBuckets {
		trends = trends[:maxBuckets]
	}
	return trends
}

// BuildKeywordStats aggregates search records into a per-keyword
// leaderboard: search count, total posts, a nil-ignoring sentiment mean, and
// the latest search timestamp. Sorted by search count descending; keywords
// with equal counts keep their first-seen order. Capped at top entries.
func BuildKeywordStats(searches []models.SearchRecord, top int) []models.KeywordStat {
	type acc struct {
		searchCount   int
		totalPosts    int
		sentimentSum  float64
		sentimentSeen int
		lastSearch    string
	}
	accs := map[string]*acc{}
	var order []string

	for _, rec := range searches {
		a, ok := accs[rec.Keyword]
		if !ok {
			a = &acc{}
			accs[rec.Keyword] = a
			order = append(order, rec.Keyword)
		}
		a.searchCount++
		a.totalPosts += rec.PostCount
		if rec.AvgSentiment != nil {
			a.sentimentSum += *rec.AvgSentiment
			a.sentimentSeen++
		}
		if rec.Timestamp > a.lastSearch {
			a.lastSearch = rec.Timestamp
		}
	}

	stats := make([]models.KeywordStat, 0, len(order))
	for _, keyword := range order {
		a := accs[keyword]
		var avg *float64
		if a.sentimentSeen > 0 {
			v := roundTo2(a.sentimentSum / float64(a.sentimentSeen))
			avg = &v
		}
		stats = append(stats, models.KeywordStat{
			Keyword:      keyword,
			SearchCount:  a.searchCount,
			TotalPosts:   a.totalPosts,
			AvgSentiment: avg,
			LastSearch:   a.lastSearch,
		})
	}

	sort.SliceStable(stats, func(i, j int) bool {
		return stats[i].SearchCount > stats[j].SearchCount
	})
	if len(stats) > top {
		stats = stats[:top]
	}
	return stats
}

// averageOfTrends is the dashboard headline average: a mean of the day-bucket
// averages, nil when there are no buckets.
func averageOfTrends(trends []models.SentimentTrend) *float64 {
	if len(trends) == 0 {
		return nil
	}
	var sum float64
	for _, t := range trends {
		sum += t.AvgSentiment
	}
	avg := roundTo2(sum / float64(len(trends)))
	return &avg
}

func roundTo2(v float64) float64 {
	return math.Round(v*100) / 100
}
