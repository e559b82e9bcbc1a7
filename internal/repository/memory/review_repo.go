package memory

import (
	"context"
	"fmt"
	"sort"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/kaustubhgharat/rentify-sub000/internal/apperr"
	"github.com/kaustubhgharat/rentify-sub000/internal/model"
	"github.com/kaustubhgharat/rentify-sub000/internal/repository"
)

// ReviewRepo is the in-memory review port.
type ReviewRepo struct {
	db *DB
}

var _ repository.ReviewRepository = (*ReviewRepo)(nil)

func (r *ReviewRepo) Insert(ctx context.Context, rev *model.Review) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	for _, existing := range r.db.reviews {
		if existing.UserID == rev.UserID && existing.ListingID == rev.ListingID {
			return fmt.Errorf("listing already reviewed by this user: %w", apperr.ErrConflict)
		}
	}
	cp := *rev
	r.db.reviews[rev.ID] = &cp
	return nil
}

func (r *ReviewRepo) FindByID(ctx context.Context, id primitive.ObjectID) (*model.Review, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	rev, ok := r.db.reviews[id]
	if !ok {
		return nil, fmt.Errorf("review %s: %w", id.Hex(), apperr.ErrNotFound)
	}
	cp := *rev
	return &cp, nil
}

func (r *ReviewRepo) FindByListing(ctx context.Context, listingID primitive.ObjectID) ([]model.Review, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	matched := []model.Review{}
	for _, rev := range r.db.reviews {
		if rev.ListingID == listingID {
			matched = append(matched, *rev)
		}
	}
	sort.Slice(matched, func(i, j int) bool {
		return matched[i].CreatedAt.After(matched[j].CreatedAt)
	})
	return matched, nil
}

func (r *ReviewRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	if _, ok := r.db.reviews[id]; !ok {
		return fmt.Errorf("review %s: %w", id.Hex(), apperr.ErrNotFound)
	}
	delete(r.db.reviews, id)
	return nil
}

func (r *ReviewRepo) DeleteByListing(ctx context.Context, listingID primitive.ObjectID) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	for id, rev := range r.db.reviews {
		if rev.ListingID == listingID {
			delete(r.db.reviews, id)
		}
	}
	return nil
}
