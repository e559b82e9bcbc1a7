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

// RoommateRepo is the in-memory roommate-post port.
type RoommateRepo struct {
	db *DB
}

var _ repository.RoommateRepository = (*RoommateRepo)(nil)

func (r *RoommateRepo) Insert(ctx context.Context, p *model.RoommatePost) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	cp := *p
	r.db.posts[p.ID] = &cp
	return nil
}

func (r *RoommateRepo) FindByID(ctx context.Context, id primitive.ObjectID) (*model.RoommatePost, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	p, ok := r.db.posts[id]
	if !ok {
		return nil, fmt.Errorf("roommate post %s: %w", id.Hex(), apperr.ErrNotFound)
	}
	cp := *p
	return &cp, nil
}

func (r *RoommateRepo) FindFiltered(ctx context.Context, f repository.RoommateFilter) ([]model.RoommatePost, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	matched := []model.RoommatePost{}
	for _, p := range r.db.posts {
		if f.Gender != "" && p.Gender != f.Gender {
			continue
		}
		if f.MinRent != nil && p.Rent < *f.MinRent {
			continue
		}
		if f.MaxRent != nil && p.Rent > *f.MaxRent {
			continue
		}
		matched = append(matched, *p)
	}
	sortPostsNewestFirst(matched)
	return window(matched, f.Limit, f.Offset), nil
}

func (r *RoommateRepo) FindByUser(ctx context.Context, userID primitive.ObjectID) ([]model.RoommatePost, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	matched := []model.RoommatePost{}
	for _, p := range r.db.posts {
		if p.UserID == userID {
			matched = append(matched, *p)
		}
	}
	sortPostsNewestFirst(matched)
	return matched, nil
}

func (r *RoommateRepo) FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]model.RoommatePost, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	matched := []model.RoommatePost{}
	for _, id := range ids {
		if p, ok := r.db.posts[id]; ok {
			matched = append(matched, *p)
		}
	}
	sortPostsNewestFirst(matched)
	return matched, nil
}

func (r *RoommateRepo) Update(ctx context.Context, p *model.RoommatePost) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	if _, ok := r.db.posts[p.ID]; !ok {
		return fmt.Errorf("roommate post %s: %w", p.ID.Hex(), apperr.ErrNotFound)
	}
	cp := *p
	r.db.posts[p.ID] = &cp
	return nil
}

func (r *RoommateRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	if _, ok := r.db.posts[id]; !ok {
		return fmt.Errorf("roommate post %s: %w", id.Hex(), apperr.ErrNotFound)
	}
	delete(r.db.posts, id)
	return nil
}

func sortPostsNewestFirst(posts []model.RoommatePost) {
	sort.Slice(posts, func(i, j int) bool {
		return posts[i].CreatedAt.After(posts[j].CreatedAt)
	})
}
