package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User represents a registered account.
// Collection: users (unique index on email)
type User struct {
	MongoID primitive.ObjectID `bson:"_id,omitempty" json:"-"`

	ID           string `bson:"id" json:"id"`
	Email        string `bson:"email" json:"email"`
	FullName     string `bson:"full_name" json:"full_name"`
	PasswordHash string `bson:"password_hash" json:"-"`
	CreatedAt    string `bson:"created_at" json:"created_at"`
}
