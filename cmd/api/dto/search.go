package dto

// SearchRequestDTO is the payload for /api/search-posts and
// /api/save-keyword. Subreddit defaults to "all", limit to the configured
// default and is capped at the configured maximum.
type SearchRequestDTO struct {
	Keyword   string `json:"keyword" binding:"required"`
	Subreddit string `json:"subreddit"`
	Limit     int    `json:"limit"`
}

// SummarizeRequestDTO is the payload for /api/summarize.
type SummarizeRequestDTO struct {
	Text string `json:"text" binding:"required"`
}

// SummarizeResponseDTO carries the generated summary.
type SummarizeResponseDTO struct {
	Summary string `json:"summary"`
}

// ExportResponseDTO carries the CSV export as a named in-band document,
// matching the shape the frontend downloads from.
type ExportResponseDTO struct {
	Filename string `json:"filename"`
	Content  string `json:"content"`
}
