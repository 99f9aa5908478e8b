package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Post represents one enriched Reddit submission.
// Collection: posts (unique index on "id")
//
// The reddit submission id is the upsert key: re-searching a keyword that
// returns an already-seen submission overwrites the stored copy, last writer
// wins. The Mongo _id is internal only and never serialized.
type Post struct {
	MongoID primitive.ObjectID `bson:"_id,omitempty" json:"-"`

	ID        string `bson:"id" json:"id"`
	Title     string `bson:"title" json:"title"`
	Author    string `bson:"author" json:"author"`
	Subreddit string `bson:"subreddit" json:"subreddit"`
	Upvotes   int    `bson:"upvotes" json:"upvotes"`
	URL       string `bson:"url" json:"url"`
	Comments  int    `bson:"comments" json:"comments"`

	// CreatedUTC is the submission time in epoch seconds, source of truth.
	CreatedUTC float64 `bson:"created_utc" json:"created_utc"`
	Permalink  string  `bson:"permalink" json:"permalink"`

	// Body is the selftext truncated to 500 runes, nil when the submission
	// has no text body.
	Body *string `bson:"body" json:"body"`

	// Provenance of the search that produced this record.
	KeywordSearched string `bson:"keyword_searched" json:"keyword_searched"`
	SearchTimestamp string `bson:"search_timestamp" json:"search_timestamp"`

	// SentimentScore is in [0,10] with 5.0 neutral; nil until computed.
	SentimentScore *float64 `bson:"sentiment_score" json:"sentiment_score"`

	// OwnerID is the user whose search produced this record. Empty in
	// stateless filter calls, required for persisted documents.
	OwnerID string `bson:"owner_id" json:"owner_id,omitempty"`
}
