package services

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"

	"social-listener/models"
)

// Consumer-side store contracts. The concrete repositories satisfy them;
// tests substitute fakes.

type userStore interface {
	Insert(ctx context.Context, u *models.User) (*mongo.InsertOneResult, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByID(ctx context.Context, id string) (*models.User, error)
	IsExistByEmail(ctx context.Context, email string) (bool, error)
}

type postStore interface {
	UpsertByRedditID(ctx context.Context, p *models.Post) (*mongo.UpdateResult, error)
	FindScoredByOwner(ctx context.Context, ownerID string, limit int) ([]models.Post, error)
	FindByOwner(ctx context.Context, ownerID, keyword string) ([]models.Post, error)
	CountByOwner(ctx context.Context, ownerID string) (int64, error)
}

type searchStore interface {
	Insert(ctx context.Context, s *models.SearchRecord) (*mongo.InsertOneResult, error)
	FindRecentByOwner(ctx context.Context, ownerID string, limit int) ([]models.SearchRecord, error)
	FindAllByOwner(ctx context.Context, ownerID string) ([]models.SearchRecord, error)
	CountByOwner(ctx context.Context, ownerID string) (int64, error)
}

type keywordStore interface {
	Insert(ctx context.Context, k *models.SavedKeyword) (*mongo.InsertOneResult, error)
	FindActiveByOwner(ctx context.Context, ownerID string) ([]models.SavedKeyword, error)
	SoftDelete(ctx context.Context, ownerID, keywordID string) (int64, error)
}
