package sentiment_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"social-listener/sentiment"
)

func TestScoreEmptyTextIsNeutral(t *testing.T) {
	assert.Equal(t, 5.0, sentiment.Score(""))
	assert.Equal(t, 5.0, sentiment.Score("   "))
	assert.Equal(t, 5.0, sentiment.Score("\n\t"))
}

func TestScoreStaysInBounds(t *testing.T) {
	inputs := []string{
		"I love this, it's amazing!",
		"This is terrible and awful",
		"meh",
		"42",
		"日本語のテキストでも落ちない",
		"!!!???",
		strings.Repeat("great ", 500),
		"[link](https://example.com) only",
	}
	for _, in := range inputs {
		score := sentiment.Score(in)
		if score < 0 || score > 10 {
			t.Fatalf("score %v out of [0,10] for input %q", score, in)
		}
	}
}

func TestScorePolarity(t *testing.T) {
	positive := sentiment.Score("I love this, it's amazing!")
	negative := sentiment.Score("This is terrible and awful")

	if positive <= 5.0 {
		t.Fatalf("expected positive text to score above 5.0, got %v", positive)
	}
	if negative >= 5.0 {
		t.Fatalf("expected negative text to score below 5.0, got %v", negative)
	}
}

func TestScoreIsDeterministic(t *testing.T) {
	const text = "Mixed feelings: the update is great but the bugs are annoying."
	first := sentiment.Score(text)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, sentiment.Score(text))
	}
}

func TestScorePostConcatenatesTitleAndBody(t *testing.T) {
	body := "The body is wonderful and delightful."
	withBody := sentiment.ScorePost("Neutral title", &body)
	withoutBody := sentiment.ScorePost("Neutral title", nil)

	if withBody <= withoutBody {
		t.Fatalf("expected body text to raise the score: with=%v without=%v", withBody, withoutBody)
	}

	empty := ""
	assert.Equal(t, withoutBody, sentiment.ScorePost("Neutral title", &empty))
}

func TestTrendingScoreMonotonicInEngagement(t *testing.T) {
	base := sentiment.TrendingScore(10, 2, 4)

	if sentiment.TrendingScore(11, 2, 4) < base {
		t.Fatal("trending score decreased when upvotes increased")
	}
	if sentiment.TrendingScore(10, 3, 4) < base {
		t.Fatal("trending score decreased when comments increased")
	}
	if sentiment.TrendingScore(10, 2, 8) > base {
		t.Fatal("trending score increased when age increased")
	}
}

func TestTrendingScoreClampsAge(t *testing.T) {
	assert.Equal(t, sentiment.TrendingScore(10, 2, 0.1), sentiment.TrendingScore(10, 2, 0))
	assert.Equal(t, sentiment.TrendingScore(10, 2, 0.1), sentiment.TrendingScore(10, 2, -3))
}

func TestTrendingScoreFormula(t *testing.T) {
	// (10 + 2*2) / 4 = 3.5
	assert.Equal(t, 3.5, sentiment.TrendingScore(10, 2, 4))
	// zero engagement is zero regardless of age
	assert.Equal(t, 0.0, sentiment.TrendingScore(0, 0, 12))
}

func TestRemoveLinksKeepsLinkTextDropsURLs(t *testing.T) {
	out := sentiment.RemoveLinks("see [the docs](https://example.com/docs) and https://example.com/raw")
	assert.Contains(t, out, "the docs")
	assert.NotContains(t, out, "https://")
}

func TestConvertMarkdownToTextStripsURLs(t *testing.T) {
	out := sentiment.ConvertMarkdownToText("check https://example.com/raw and **bold** text")
	assert.NotContains(t, out, "https://")
	assert.Contains(t, out, "bold")
}
