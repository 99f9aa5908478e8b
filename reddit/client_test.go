package reddit

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClientRequiresCredentials(t *testing.T) {
	_, err := NewClient("", "secret", "agent")
	assert.ErrorIs(t, err, ErrNotConfigured)

	_, err = NewClient("id", "", "agent")
	assert.ErrorIs(t, err, ErrNotConfigured)

	client, err := NewClient("id", "secret", "agent")
	require.NoError(t, err)
	assert.NotNil(t, client)
}

func TestBuildSearchURLScopesToSubreddit(t *testing.T) {
	raw, err := buildSearchURL("go generics", "golang", 25)
	require.NoError(t, err)

	u, err := url.Parse(raw)
	require.NoError(t, err)
	assert.Equal(t, "/r/golang/search", u.Path)

	q := u.Query()
	assert.Equal(t, "go generics", q.Get("q"))
	assert.Equal(t, "new", q.Get("sort"))
	assert.Equal(t, "25", q.Get("limit"))
	// without this flag Reddit ignores the /r/<subreddit>/ path and the
	// search silently goes site-wide
	assert.Equal(t, "true", q.Get("restrict_sr"))
}

func TestParseListing(t *testing.T) {
	payload := []byte(`{
		"data": {
			"after": "t3_next",
			"children": [
				{"data": {
					"id": "abc123",
					"title": "Go 1.25 released",
					"author": "gopher",
					"subreddit": "golang",
					"score": 120,
					"url": "https://example.com/article",
					"num_comments": 42,
					"created_utc": 1735689600.0,
					"permalink": "/r/golang/comments/abc123/go_125_released/",
					"selftext": "Release notes inside."
				}},
				{"data": {
					"id": "def456",
					"title": "Generics question",
					"author": "",
					"subreddit": "golang",
					"score": 3,
					"num_comments": 1,
					"created_utc": 1735693200.0,
					"permalink": "/r/golang/comments/def456/generics_question/"
				}}
			]
		}
	}`)

	subs, err := parseListing(payload, 25)
	require.NoError(t, err)
	require.Len(t, subs, 2)

	assert.Equal(t, "abc123", subs[0].ID)
	assert.Equal(t, "gopher", subs[0].Author)
	assert.Equal(t, 120, subs[0].Score)
	assert.Equal(t, 42, subs[0].NumComments)
	assert.Equal(t, 1735689600.0, subs[0].CreatedUTC)
	assert.Equal(t, "Release notes inside.", subs[0].Selftext)

	// missing fields decode to zero values, not errors
	assert.Equal(t, "", subs[1].Author)
	assert.Equal(t, "", subs[1].Selftext)
}

func TestParseListingHonorsLimit(t *testing.T) {
	payload := []byte(`{
		"data": {
			"children": [
				{"data": {"id": "a"}},
				{"data": {"id": "b"}},
				{"data": {"id": "c"}}
			]
		}
	}`)

	subs, err := parseListing(payload, 2)
	require.NoError(t, err)
	assert.Len(t, subs, 2)
}

func TestParseListingRejectsMalformedJSON(t *testing.T) {
	_, err := parseListing([]byte(`{"data": [`), 10)
	assert.Error(t, err)
}
