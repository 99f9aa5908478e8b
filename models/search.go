package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// SearchRecord is one row of a user's search history.
// Collection: searches (index on owner_id + timestamp desc)
//
// Records are append-only: one per search invocation, never updated.
type SearchRecord struct {
	MongoID primitive.ObjectID `bson:"_id,omitempty" json:"-"`

	ID        string `bson:"id" json:"id"`
	OwnerID   string `bson:"owner_id" json:"owner_id"`
	Keyword   string `bson:"keyword" json:"keyword"`
	Subreddit string `bson:"subreddit" json:"subreddit"`

	// Timestamp is ISO-8601 in UTC, shared with the posts produced by the
	// same search.
	Timestamp string `bson:"timestamp" json:"timestamp"`

	PostCount int `bson:"post_count" json:"post_count"`

	// AvgSentiment is the mean of the constituent posts' scores, nil when
	// the search returned no posts.
	AvgSentiment *float64 `bson:"avg_sentiment" json:"avg_sentiment"`
}
