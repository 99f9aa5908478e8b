package models

// SentimentTrend is one day bucket of the sentiment trend chart, keyed by the
// YYYY-MM-DD prefix of the posts' search timestamps.
type SentimentTrend struct {
	Date         string  `json:"date"`
	AvgSentiment float64 `json:"avg_sentiment"`
	PostCount    int     `json:"post_count"`
}

// KeywordStat is one leaderboard row aggregated over a user's searches.
type KeywordStat struct {
	Keyword      string   `json:"keyword"`
	SearchCount  int      `json:"search_count"`
	TotalPosts   int      `json:"total_posts"`
	AvgSentiment *float64 `json:"avg_sentiment"`
	LastSearch   string   `json:"last_search"`
}

// SummaryStats are the dashboard headline numbers. AvgSentiment is the mean
// of the day-bucket averages, not a per-post mean, and nil when there are no
// buckets.
type SummaryStats struct {
	TotalSearches int64    `json:"total_searches"`
	TotalPosts    int64    `json:"total_posts"`
	AvgSentiment  *float64 `json:"avg_sentiment"`
}

// DashboardView is the derived analytics view for one owner. It is computed
// on request and never stored.
type DashboardView struct {
	RecentSearches  []SearchRecord   `json:"recent_searches"`
	SentimentTrends []SentimentTrend `json:"sentiment_trends"`
	KeywordStats    []KeywordStat    `json:"keyword_stats"`
	SummaryStats    SummaryStats     `json:"summary_stats"`
}

// EmptyDashboardView is the fail-soft value returned when the store is
// unreachable: all collections empty, summary zeroed.
func EmptyDashboardView() DashboardView {
	return DashboardView{
		RecentSearches:  []SearchRecord{},
		SentimentTrends: []SentimentTrend{},
		KeywordStats:    []KeywordStat{},
		SummaryStats:    SummaryStats{},
	}
}
