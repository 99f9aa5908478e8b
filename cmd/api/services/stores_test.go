package services

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"

	"social-listener/models"
)

// In-memory store fakes shared by the service tests.

type fakePostStore struct {
	scored    []models.Post
	posts     []models.Post
	count     int64
	err       error
	upserted  []models.Post
	lastOwner string
}

func (f *fakePostStore) UpsertByRedditID(_ context.Context, p *models.Post) (*mongo.UpdateResult, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.upserted = append(f.upserted, *p)
	return &mongo.UpdateResult{MatchedCount: 1}, nil
}

func (f *fakePostStore) FindScoredByOwner(_ context.Context, ownerID string, _ int) ([]models.Post, error) {
	f.lastOwner = ownerID
	if f.err != nil {
		return nil, f.err
	}
	return f.scored, nil
}

func (f *fakePostStore) FindByOwner(_ context.Context, ownerID, _ string) ([]models.Post, error) {
	f.lastOwner = ownerID
	if f.err != nil {
		return nil, f.err
	}
	return f.posts, nil
}

func (f *fakePostStore) CountByOwner(_ context.Context, ownerID string) (int64, error) {
	f.lastOwner = ownerID
	if f.err != nil {
		return 0, f.err
	}
	return f.count, nil
}

type fakeSearchStore struct {
	recent    []models.SearchRecord
	all       []models.SearchRecord
	count     int64
	err       error
	inserted  []models.SearchRecord
	lastOwner string
}

func (f *fakeSearchStore) Insert(_ context.Context, s *models.SearchRecord) (*mongo.InsertOneResult, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.inserted = append(f.inserted, *s)
	return &mongo.InsertOneResult{}, nil
}

func (f *fakeSearchStore) FindRecentByOwner(_ context.Context, ownerID string, _ int) ([]models.SearchRecord, error) {
	f.lastOwner = ownerID
	if f.err != nil {
		return nil, f.err
	}
	return f.recent, nil
}

func (f *fakeSearchStore) FindAllByOwner(_ context.Context, ownerID string) ([]models.SearchRecord, error) {
	f.lastOwner = ownerID
	if f.err != nil {
		return nil, f.err
	}
	return f.all, nil
}

func (f *fakeSearchStore) CountByOwner(_ context.Context, ownerID string) (int64, error) {
	f.lastOwner = ownerID
	if f.err != nil {
		return 0, f.err
	}
	return f.count, nil
}

type fakeKeywordStore struct {
	active   []models.SavedKeyword
	matched  int64
	err      error
	inserted []models.SavedKeyword
}

func (f *fakeKeywordStore) Insert(_ context.Context, k *models.SavedKeyword) (*mongo.InsertOneResult, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.inserted = append(f.inserted, *k)
	return &mongo.InsertOneResult{}, nil
}

func (f *fakeKeywordStore) FindActiveByOwner(_ context.Context, _ string) ([]models.SavedKeyword, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.active, nil
}

func (f *fakeKeywordStore) SoftDelete(_ context.Context, _, _ string) (int64, error) {
	if f.err != nil {
		return 0, f.err
	}
	return f.matched, nil
}
