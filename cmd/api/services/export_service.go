package services

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"strconv"
	"time"

	"social-listener/models"
)

// csvColumns is the fixed export column order.
var csvColumns = []string{
	"id", "title", "author", "subreddit", "upvotes", "comments",
	"created_utc", "permalink", "keyword_searched", "sentiment_score",
}

// ExportService renders an owner's stored posts as CSV.
type ExportService struct {
	posts postStore
}

func NewExportService(posts postStore) *ExportService {
	return &ExportService{posts: posts}
}

// ExportCSV returns a filename and the CSV content for the owner's posts,
// optionally restricted to one keyword.
func (s *ExportService) ExportCSV(ctx context.Context, ownerID, keyword string) (string, string, error) {
	posts, err := s.posts.FindByOwner(ctx, ownerID, keyword)
	if err != nil {
		return "", "", fmt.Errorf("export fetch: %w", err)
	}

	content, err := BuildCSV(posts)
	if err != nil {
		return "", "", err
	}

	filename := fmt.Sprintf("reddit_posts_%s.csv", time.Now().Format("20060102_150405"))
	return filename, content, nil
}

// BuildCSV serializes posts with the fixed column order. Timestamps are
// rendered as local ISO-8601; a missing sentiment score becomes an empty
// cell.
func BuildCSV(posts []models.Post) (string, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(csvColumns); err != nil {
		return "", err
	}

	for _, p := range posts {
		createdAt := time.Unix(int64(p.CreatedUTC), 0).Format("2006-01-02T15:04:05")

		sentimentCell := ""
		if p.SentimentScore != nil {
			sentimentCell = strconv.FormatFloat(*p.SentimentScore, 'f', 2, 64)
		}

		row := []string{
			p.ID,
			p.Title,
			p.Author,
			p.Subreddit,
			strconv.Itoa(p.Upvotes),
			strconv.Itoa(p.Comments),
			createdAt,
			p.Permalink,
			p.KeywordSearched,
			sentimentCell,
		}
		if err := w.Write(row); err != nil {
			return "", err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return "", err
	}
	return buf.String(), nil
}
