package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// KeywordStatus is the lifecycle state of a saved keyword.
// The only transition is Active -> Deleted, and Deleted is terminal.
type KeywordStatus string

const (
	KeywordActive  KeywordStatus = "active"
	KeywordDeleted KeywordStatus = "deleted"
)

// SavedKeyword is a keyword a user tracks.
// Collection: keywords (index on owner_id + status)
//
// Deletion is a soft delete: the document stays, status flips to deleted.
type SavedKeyword struct {
	MongoID primitive.ObjectID `bson:"_id,omitempty" json:"-"`

	ID        string        `bson:"id" json:"id"`
	OwnerID   string        `bson:"owner_id" json:"owner_id"`
	Keyword   string        `bson:"keyword" json:"keyword"`
	Subreddit string        `bson:"subreddit" json:"subreddit"`
	CreatedAt string        `bson:"created_at" json:"created_at"`
	Status    KeywordStatus `bson:"status" json:"status"`
}
