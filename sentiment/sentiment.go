package sentiment

import (
	"math"
	"regexp"
	"strings"

	"github.com/jonreiter/govader"
	"github.com/russross/blackfriday/v2"
)

var analyzer = govader.NewSentimentIntensityAnalyzer()

// RemoveLinks strips markdown links (keeping the link text) and bare URLs,
// which otherwise skew VADER scoring.
func RemoveLinks(input string) string {
	linkPattern := regexp.MustCompile(`\[(.*?)\]\((https?:\/\/[^\s\)]+)\)`)
	input = linkPattern.ReplaceAllString(input, "$1")

	urlPattern := regexp.MustCompile(`https?://\S+|www\.\S+`)
	input = urlPattern.ReplaceAllString(input, "")

	return input
}

// ConvertMarkdownToText flattens reddit-flavored markdown to plain text.
func ConvertMarkdownToText(input string) string {
	output := blackfriday.Run([]byte(input), blackfriday.WithNoExtensions())
	plainText := strings.Join(strings.Fields(string(output)), " ")

	return RemoveLinks(plainText)
}

// Score maps text to a sentiment score in [0,10], 5.0 neutral.
//
// Empty input returns exactly 5.0 with no analysis. Otherwise the VADER
// compound polarity in [-1,1] is mapped linearly onto [0,10] and rounded to
// two decimals. Deterministic, never fails, safe on arbitrary unicode.
func Score(text string) float64 {
	if strings.TrimSpace(text) == "" {
		return 5.0
	}

	plain := ConvertMarkdownToText(text)
	compound := analyzer.PolarityScores(plain).Compound

	return round2((compound + 1) / 2 * 10)
}

// ScorePost scores a post from its title and optional body, the body treated
// as empty when absent.
func ScorePost(title string, body *string) float64 {
	text := title
	if body != nil && *body != "" {
		text = title + " " + *body
	}
	return Score(text)
}

// TrendingScore rates engagement against age: (upvotes + 2*comments) per
// hour, two decimals. Ages at or below zero clamp to 0.1 hours.
//
// Not persisted or surfaced anywhere yet; the hook for future trending
// views.
func TrendingScore(upvotes, comments int, ageHours float64) float64 {
	if ageHours <= 0 {
		ageHours = 0.1
	}
	return round2(float64(upvotes+comments*2) / ageHours)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
