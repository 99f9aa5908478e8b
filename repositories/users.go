package repositories

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"social-listener/models"
)

type UserRepository struct {
	col *mongo.Collection
}

func NewUserRepository(db *mongo.Database) *UserRepository {
	return &UserRepository{col: db.Collection("users")}
}

// Insert inserts a new user document. The unique email index rejects
// duplicate registrations at the store level.
func (r *UserRepository) Insert(ctx context.Context, u *models.User) (*mongo.InsertOneResult, error) {
	return r.col.InsertOne(ctx, u)
}

// FindByEmail returns a user by email, mongo.ErrNoDocuments when absent.
func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var u models.User
	if err := r.col.FindOne(ctx, bson.M{"email": email}).Decode(&u); err != nil {
		return nil, err
	}
	return &u, nil
}

// FindByID returns a user by its application id (not the Mongo _id).
func (r *UserRepository) FindByID(ctx context.Context, id string) (*models.User, error) {
	var u models.User
	if err := r.col.FindOne(ctx, bson.M{"id": id}).Decode(&u); err != nil {
		return nil, err
	}
	return &u, nil
}

// IsExistByEmail checks whether a user with the email already exists.
func (r *UserRepository) IsExistByEmail(ctx context.Context, email string) (bool, error) {
	err := r.col.FindOne(ctx, bson.M{"email": email}).Err()
	if err == mongo.ErrNoDocuments {
		return false, nil
	}
	return err == nil, err
}
