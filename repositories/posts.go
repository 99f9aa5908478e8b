package repositories

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"social-listener/models"
)

type PostRepository struct {
	col *mongo.Collection
}

func NewPostRepository(db *mongo.Database) *PostRepository {
	return &PostRepository{col: db.Collection("posts")}
}

// UpsertByRedditID upserts a post keyed by its reddit submission id.
// Last writer wins: a re-search that returns the same submission replaces the
// stored fields wholesale.
func (r *PostRepository) UpsertByRedditID(ctx context.Context, p *models.Post) (*mongo.UpdateResult, error) {
	filter := bson.M{"id": p.ID}
	update := bson.M{
		"$set": bson.M{
			"id":               p.ID,
			"title":            p.Title,
			"author":           p.Author,
			"subreddit":        p.Subreddit,
			"upvotes":          p.Upvotes,
			"url":              p.URL,
			"comments":         p.Comments,
			"created_utc":      p.CreatedUTC,
			"permalink":        p.Permalink,
			"body":             p.Body,
			"keyword_searched": p.KeywordSearched,
			"search_timestamp": p.SearchTimestamp,
			"sentiment_score":  p.SentimentScore,
			"owner_id":         p.OwnerID,
		},
	}
	opts := options.Update().SetUpsert(true)
	return r.col.UpdateOne(ctx, filter, update, opts)
}

// FindScoredByOwner returns up to limit posts owned by ownerID that carry a
// sentiment score, for the trend aggregation.
func (r *PostRepository) FindScoredByOwner(ctx context.Context, ownerID string, limit int) ([]models.Post, error) {
	filter := bson.M{
		"owner_id":        ownerID,
		"sentiment_score": bson.M{"$ne": nil},
	}
	findOpts := options.Find().SetLimit(int64(limit))
	cur, err := r.col.Find(ctx, filter, findOpts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var results []models.Post
	for cur.Next(ctx) {
		var p models.Post
		if err := cur.Decode(&p); err != nil {
			return nil, err
		}
		results = append(results, p)
	}
	if err := cur.Err(); err != nil {
		return nil, err
	}
	return results, nil
}

// FindByOwner returns all posts owned by ownerID, optionally restricted to a
// keyword, sorted by created_utc desc. Used by the CSV export.
func (r *PostRepository) FindByOwner(ctx context.Context, ownerID, keyword string) ([]models.Post, error) {
	filter := bson.M{"owner_id": ownerID}
	if keyword != "" {
		filter["keyword_searched"] = keyword
	}
	findOpts := options.Find().SetSort(bson.D{{Key: "created_utc", Value: -1}})
	cur, err := r.col.Find(ctx, filter, findOpts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var results []models.Post
	for cur.Next(ctx) {
		var p models.Post
		if err := cur.Decode(&p); err != nil {
			return nil, err
		}
		results = append(results, p)
	}
	if err := cur.Err(); err != nil {
		return nil, err
	}
	return results, nil
}

// CountByOwner returns the exact number of posts owned by ownerID.
func (r *PostRepository) CountByOwner(ctx context.Context, ownerID string) (int64, error) {
	return r.col.CountDocuments(ctx, bson.M{"owner_id": ownerID})
}
