package repositories

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"social-listener/models"
)

type KeywordRepository struct {
	col *mongo.Collection
}

func NewKeywordRepository(db *mongo.Database) *KeywordRepository {
	return &KeywordRepository{col: db.Collection("keywords")}
}

// Insert saves a new tracked keyword.
func (r *KeywordRepository) Insert(ctx context.Context, k *models.SavedKeyword) (*mongo.InsertOneResult, error) {
	return r.col.InsertOne(ctx, k)
}

// FindActiveByOwner returns the owner's keywords that are still active.
func (r *KeywordRepository) FindActiveByOwner(ctx context.Context, ownerID string) ([]models.SavedKeyword, error) {
	cur, err := r.col.Find(ctx, bson.M{
		"owner_id": ownerID,
		"status":   models.KeywordActive,
	})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var results []models.SavedKeyword
	for cur.Next(ctx) {
		var k models.SavedKeyword
		if err := cur.Decode(&k); err != nil {
			return nil, err
		}
		results = append(results, k)
	}
	if err := cur.Err(); err != nil {
		return nil, err
	}
	return results, nil
}

// SoftDelete flips the keyword status to deleted. The document is never
// removed. Returns the number of matched documents so the caller can
// distinguish "not found" from success.
func (r *KeywordRepository) SoftDelete(ctx context.Context, ownerID, keywordID string) (int64, error) {
	res, err := r.col.UpdateOne(ctx,
		bson.M{"id": keywordID, "owner_id": ownerID},
		bson.M{"$set": bson.M{"status": models.KeywordDeleted}},
	)
	if err != nil {
		return 0, err
	}
	return res.MatchedCount, nil
}
