package repositories

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"social-listener/models"
)

type SearchRepository struct {
	col *mongo.Collection
}

func NewSearchRepository(db *mongo.Database) *SearchRepository {
	return &SearchRepository{col: db.Collection("searches")}
}

// Insert appends a search record. Records are immutable after insertion.
func (r *SearchRepository) Insert(ctx context.Context, s *models.SearchRecord) (*mongo.InsertOneResult, error) {
	return r.col.InsertOne(ctx, s)
}

// FindRecentByOwner returns the owner's most recent searches, timestamp desc.
func (r *SearchRepository) FindRecentByOwner(ctx context.Context, ownerID string, limit int) ([]models.SearchRecord, error) {
	findOpts := options.Find().
		SetSort(bson.D{{Key: "timestamp", Value: -1}}).
		SetLimit(int64(limit))
	cur, err := r.col.Find(ctx, bson.M{"owner_id": ownerID}, findOpts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var results []models.SearchRecord
	for cur.Next(ctx) {
		var s models.SearchRecord
		if err := cur.Decode(&s); err != nil {
			return nil, err
		}
		results = append(results, s)
	}
	if err := cur.Err(); err != nil {
		return nil, err
	}
	return results, nil
}

// FindAllByOwner returns every search record for the owner in insertion
// order, for the keyword leaderboard aggregation.
func (r *SearchRepository) FindAllByOwner(ctx context.Context, ownerID string) ([]models.SearchRecord, error) {
	cur, err := r.col.Find(ctx, bson.M{"owner_id": ownerID})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var results []models.SearchRecord
	for cur.Next(ctx) {
		var s models.SearchRecord
		if err := cur.Decode(&s); err != nil {
			return nil, err
		}
		results = append(results, s)
	}
	if err := cur.Err(); err != nil {
		return nil, err
	}
	return results, nil
}

// CountByOwner returns the exact number of searches for the owner.
func (r *SearchRepository) CountByOwner(ctx context.Context, ownerID string) (int64, error) {
	return r.col.CountDocuments(ctx, bson.M{"owner_id": ownerID})
}
