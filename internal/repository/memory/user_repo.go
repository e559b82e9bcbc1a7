package memory

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/kaustubhgharat/rentify-sub000/internal/apperr"
	"github.com/kaustubhgharat/rentify-sub000/internal/model"
	"github.com/kaustubhgharat/rentify-sub000/internal/repository"
)

// UserRepo is the in-memory user port.
type UserRepo struct {
	db *DB
}

var _ repository.UserRepository = (*UserRepo)(nil)

func (r *UserRepo) Insert(ctx context.Context, u *model.User) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	for _, existing := range r.db.users {
		if existing.Username == u.Username || existing.Email == u.Email {
			return fmt.Errorf("username or email already taken: %w", apperr.ErrConflict)
		}
	}
	cp := *u
	r.db.users[u.ID] = &cp
	return nil
}

func (r *UserRepo) FindByID(ctx context.Context, id primitive.ObjectID) (*model.User, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	u, ok := r.db.users[id]
	if !ok {
		return nil, fmt.Errorf("user %s: %w", id.Hex(), apperr.ErrNotFound)
	}
	cp := *u
	return &cp, nil
}

func (r *UserRepo) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	for _, u := range r.db.users {
		if u.Username == username {
			cp := *u
			return &cp, nil
		}
	}
	return nil, fmt.Errorf("user %q: %w", username, apperr.ErrNotFound)
}

func (r *UserRepo) UpdatePasswordHash(ctx context.Context, id primitive.ObjectID, hash string) error {
	return r.mutate(id, func(u *model.User) { u.PasswordHash = hash })
}

func (r *UserRepo) AddFavoriteListing(ctx context.Context, userID, listingID primitive.ObjectID) error {
	return r.mutate(userID, func(u *model.User) {
		u.FavoriteListingIDs = addToSet(u.FavoriteListingIDs, listingID)
	})
}

func (r *UserRepo) RemoveFavoriteListing(ctx context.Context, userID, listingID primitive.ObjectID) error {
	return r.mutate(userID, func(u *model.User) {
		u.FavoriteListingIDs = pull(u.FavoriteListingIDs, listingID)
	})
}

func (r *UserRepo) AddFavoriteRoommatePost(ctx context.Context, userID, postID primitive.ObjectID) error {
	return r.mutate(userID, func(u *model.User) {
		u.FavoriteRoommatePostIDs = addToSet(u.FavoriteRoommatePostIDs, postID)
	})
}

func (r *UserRepo) RemoveFavoriteRoommatePost(ctx context.Context, userID, postID primitive.ObjectID) error {
	return r.mutate(userID, func(u *model.User) {
		u.FavoriteRoommatePostIDs = pull(u.FavoriteRoommatePostIDs, postID)
	})
}

func (r *UserRepo) mutate(userID primitive.ObjectID, fn func(*model.User)) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	u, ok := r.db.users[userID]
	if !ok {
		return fmt.Errorf("user %s: %w", userID.Hex(), apperr.ErrNotFound)
	}
	fn(u)
	return nil
}
