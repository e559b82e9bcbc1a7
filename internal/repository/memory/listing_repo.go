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

// ListingRepo is the in-memory listing port.
type ListingRepo struct {
	db *DB
}

var _ repository.ListingRepository = (*ListingRepo)(nil)

func (r *ListingRepo) Insert(ctx context.Context, l *model.Listing) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	cp := *l
	r.db.listings[l.ID] = &cp
	return nil
}

func (r *ListingRepo) FindByID(ctx context.Context, id primitive.ObjectID) (*model.Listing, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	l, ok := r.db.listings[id]
	if !ok {
		return nil, fmt.Errorf("listing %s: %w", id.Hex(), apperr.ErrNotFound)
	}
	cp := *l
	return &cp, nil
}

func (r *ListingRepo) FindFiltered(ctx context.Context, f repository.ListingFilter) ([]model.Listing, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	matched := []model.Listing{}
	for _, l := range r.db.listings {
		if f.ListingType != "" && l.ListingType != f.ListingType {
			continue
		}
		if f.Gender != "" && l.Gender != f.Gender {
			continue
		}
		if f.MinRent != nil && l.RentPerMonth < *f.MinRent {
			continue
		}
		if f.MaxRent != nil && l.RentPerMonth > *f.MaxRent {
			continue
		}
		matched = append(matched, *l)
	}
	sortListingsNewestFirst(matched)
	return window(matched, f.Limit, f.Offset), nil
}

func (r *ListingRepo) FindByOwner(ctx context.Context, ownerID primitive.ObjectID) ([]model.Listing, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	matched := []model.Listing{}
	for _, l := range r.db.listings {
		if l.OwnerID == ownerID {
			matched = append(matched, *l)
		}
	}
	sortListingsNewestFirst(matched)
	return matched, nil
}

func (r *ListingRepo) FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]model.Listing, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	matched := []model.Listing{}
	for _, id := range ids {
		if l, ok := r.db.listings[id]; ok {
			matched = append(matched, *l)
		}
	}
	sortListingsNewestFirst(matched)
	return matched, nil
}

func (r *ListingRepo) Update(ctx context.Context, l *model.Listing) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	if _, ok := r.db.listings[l.ID]; !ok {
		return fmt.Errorf("listing %s: %w", l.ID.Hex(), apperr.ErrNotFound)
	}
	cp := *l
	r.db.listings[l.ID] = &cp
	return nil
}

func (r *ListingRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	if _, ok := r.db.listings[id]; !ok {
		return fmt.Errorf("listing %s: %w", id.Hex(), apperr.ErrNotFound)
	}
	delete(r.db.listings, id)
	return nil
}

func (r *ListingRepo) PushReviewID(ctx context.Context, listingID, reviewID primitive.ObjectID) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	if l, ok := r.db.listings[listingID]; ok {
		l.ReviewIDs = addToSet(l.ReviewIDs, reviewID)
	}
	return nil
}

func (r *ListingRepo) PullReviewID(ctx context.Context, listingID, reviewID primitive.ObjectID) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	if l, ok := r.db.listings[listingID]; ok {
		l.ReviewIDs = pull(l.ReviewIDs, reviewID)
	}
	return nil
}

func sortListingsNewestFirst(list []model.Listing) {
	sort.Slice(list, func(i, j int) bool {
		return list[i].CreatedAt.After(list[j].CreatedAt)
	})
}

func window[T any](list []T, limit, offset int) []T {
	if offset > 0 {
		if offset >= len(list) {
			return []T{}
		}
		list = list[offset:]
	}
	if limit > 0 && limit < len(list) {
		list = list[:limit]
	}
	return list
}
