package reddit

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"sync"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"

	"social-listener/cmd/api/trace"
	"social-listener/internal/logger"
)

const (
	authURL = "https://www.reddit.com/api/v1/access_token"
	apiURL  = "https://oauth.reddit.com"

	maxRetries     = 4
	initialBackoff = 2 * time.Second
	maxBackoff     = 30 * time.Second
)

// ErrNotConfigured is returned when the Reddit API credentials are missing.
var ErrNotConfigured = errors.New("reddit client is not configured")

// Client talks to the Reddit search API using the OAuth2 client-credentials
// flow. One instance is constructed at startup and shared by all requests.
type Client struct {
	conf      *clientcredentials.Config
	userAgent string

	mu   sync.Mutex
	http *http.Client
}

// NewClient builds a Client from app credentials. Both id and secret are
// required; callers treat ErrNotConfigured as "feature unavailable".
func NewClient(clientID, clientSecret, userAgent string) (*Client, error) {
	if clientID == "" || clientSecret == "" {
		return nil, ErrNotConfigured
	}

	conf := &clientcredentials.Config{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		TokenURL:     authURL,
		AuthStyle:    oauth2.AuthStyleInHeader,
	}

	return &Client{
		conf:      conf,
		userAgent: userAgent,
		http:      conf.Client(context.Background()),
	}, nil
}

// refreshHTTPClient rebuilds the underlying http client, forcing a new token
// on the next request.
func (c *Client) refreshHTTPClient() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.http = c.conf.Client(context.Background())
}

func (c *Client) httpClient() *http.Client {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.http
}

// Submission is one raw search result from the Reddit listing API.
type Submission struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Author      string  `json:"author"`
	Subreddit   string  `json:"subreddit"`
	Score       int     `json:"score"`
	URL         string  `json:"url"`
	NumComments int     `json:"num_comments"`
	CreatedUTC  float64 `json:"created_utc"`
	Permalink   string  `json:"permalink"`
	Selftext    string  `json:"selftext"`
}

type listingResponse struct {
	Data struct {
		After    string `json:"after"`
		Children []struct {
			Data Submission `json:"data"`
		} `json:"children"`
	} `json:"data"`
}

// Search queries /r/<subreddit>/search for submissions matching the keyword,
// newest first, up to limit results.
func (c *Client) Search(ctx context.Context, keyword, subreddit string, limit int) ([]Submission, error) {
	searchURL, err := buildSearchURL(keyword, subreddit, limit)
	if err != nil {
		return nil, err
	}

	body, err := c.fetch(ctx, searchURL, true)
	if err != nil {
		return nil, err
	}

	return parseListing(body, limit)
}

// buildSearchURL assembles the listing query. restrict_sr must be true or
// Reddit ignores the /r/<subreddit>/ path and searches site-wide; with
// subreddit "all" it is a no-op.
func buildSearchURL(keyword, subreddit string, limit int) (string, error) {
	parsedURL, err := url.Parse(fmt.Sprintf("%s/r/%s/search", apiURL, url.PathEscape(subreddit)))
	if err != nil {
		return "", fmt.Errorf("reddit: failed to build search URL: %w", err)
	}
	query := parsedURL.Query()
	query.Add("q", keyword)
	query.Add("sort", "new")
	query.Add("restrict_sr", "true")
	query.Add("limit", strconv.Itoa(limit))
	parsedURL.RawQuery = query.Encode()
	return parsedURL.String(), nil
}

// fetch performs the GET with one token refresh on 401 and exponential
// backoff on 429. Every attempt counts as one outbound span.
func (c *Client) fetch(ctx context.Context, rawURL string, allowRefresh bool) ([]byte, error) {
	backoff := initialBackoff

	for attempt := 0; ; attempt++ {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
		if err != nil {
			return nil, err
		}
		req.Header.Set("User-Agent", c.userAgent)

		requestID, spanID := trace.NextSpanID(ctx)
		req.Header.Set("X-Request-Id", requestID)
		req.Header.Set("X-Span-Id", spanID)

		resp, err := c.httpClient().Do(req)
		if err != nil {
			return nil, fmt.Errorf("reddit: request failed: %w", err)
		}

		switch resp.StatusCode {
		case http.StatusOK:
			data, err := io.ReadAll(resp.Body)
			resp.Body.Close()
			if err != nil {
				return nil, err
			}
			logger.DebugWithFields("reddit request success", logger.Fields{
				"url":        rawURL,
				"request_id": requestID,
				"span_id":    spanID,
			})
			return data, nil

		case http.StatusUnauthorized:
			resp.Body.Close()
			if !allowRefresh {
				return nil, fmt.Errorf("reddit: unauthorized after token refresh")
			}
			logger.WarnWithFields("reddit token expired, refreshing and retrying", logger.Fields{
				"request_id": requestID,
				"span_id":    spanID,
			})
			c.refreshHTTPClient()
			allowRefresh = false

		case http.StatusTooManyRequests:
			resp.Body.Close()
			if attempt >= maxRetries {
				return nil, fmt.Errorf("reddit: rate limited, max retries reached")
			}
			logger.WarnWithFields("reddit rate limited, backing off", logger.Fields{
				"backoff":    backoff.String(),
				"attempt":    attempt + 1,
				"request_id": requestID,
				"span_id":    spanID,
			})
			select {
			case <-time.After(backoff):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
			backoff *= 2
			if backoff > maxBackoff {
				backoff = maxBackoff
			}

		default:
			status := resp.StatusCode
			resp.Body.Close()
			return nil, fmt.Errorf("reddit: unexpected status %d", status)
		}
	}
}

// parseListing decodes a listing payload into submissions, capped at limit.
func parseListing(data []byte, limit int) ([]Submission, error) {
	var listing listingResponse
	if err := json.Unmarshal(data, &listing); err != nil {
		return nil, fmt.Errorf("reddit: failed to decode listing: %w", err)
	}

	subs := make([]Submission, 0, len(listing.Data.Children))
	for _, child := range listing.Data.Children {
		subs = append(subs, child.Data)
		if len(subs) >= limit {
			break
		}
	}
	return subs, nil
}
