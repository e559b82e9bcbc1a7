package service

import (
	"context"

	"github.com/kaustubhgharat/rentify-sub000/internal/model"
	"github.com/kaustubhgharat/rentify-sub000/internal/repository"
)

// FavoriteService maintains the two favorite sets on a user. Adds verify
// the target exists; both add and remove are idempotent set operations, so
// re-adding a member or removing a non-member succeeds without effect.
type FavoriteService struct {
	users    repository.UserRepository
	listings repository.ListingRepository
	posts    repository.RoommateRepository
}

// NewFavoriteService constructs a FavoriteService.
func NewFavoriteService(users repository.UserRepository, listings repository.ListingRepository, posts repository.RoommateRepository) *FavoriteService {
	return &FavoriteService{users: users, listings: listings, posts: posts}
}

// AddListing favorites a listing for the actor.
func (s *FavoriteService) AddListing(ctx context.Context, actorID, listingID string) error {
	uid, err := parseID(actorID)
	if err != nil {
		return err
	}
	lid, err := parseID(listingID)
	if err != nil {
		return err
	}
	if _, err := s.listings.FindByID(ctx, lid); err != nil {
		return err
	}
	return s.users.AddFavoriteListing(ctx, uid, lid)
}

// RemoveListing unfavorites a listing; removing a non-member is a no-op.
func (s *FavoriteService) RemoveListing(ctx context.Context, actorID, listingID string) error {
	uid, err := parseID(actorID)
	if err != nil {
		return err
	}
	lid, err := parseID(listingID)
	if err != nil {
		return err
	}
	return s.users.RemoveFavoriteListing(ctx, uid, lid)
}

// ListListings returns the actor's favorited listings, newest first.
func (s *FavoriteService) ListListings(ctx context.Context, actorID string) ([]model.Listing, error) {
	uid, err := parseID(actorID)
	if err != nil {
		return nil, err
	}
	u, err := s.users.FindByID(ctx, uid)
	if err != nil {
		return nil, err
	}
	return s.listings.FindByIDs(ctx, u.FavoriteListingIDs)
}

// AddRoommatePost favorites a roommate post for the actor.
func (s *FavoriteService) AddRoommatePost(ctx context.Context, actorID, postID string) error {
	uid, err := parseID(actorID)
	if err != nil {
		return err
	}
	pid, err := parseID(postID)
	if err != nil {
		return err
	}
	if _, err := s.posts.FindByID(ctx, pid); err != nil {
		return err
	}
	return s.users.AddFavoriteRoommatePost(ctx, uid, pid)
}

// RemoveRoommatePost unfavorites a roommate post.
func (s *FavoriteService) RemoveRoommatePost(ctx context.Context, actorID, postID string) error {
	uid, err := parseID(actorID)
	if err != nil {
		return err
	}
	pid, err := parseID(postID)
	if err != nil {
		return err
	}
	return s.users.RemoveFavoriteRoommatePost(ctx, uid, pid)
}

// ListRoommatePosts returns the actor's favorited posts, newest first.
func (s *FavoriteService) ListRoommatePosts(ctx context.Context, actorID string) ([]model.RoommatePost, error) {
	uid, err := parseID(actorID)
	if err != nil {
		return nil, err
	}
	u, err := s.users.FindByID(ctx, uid)
	if err != nil {
		return nil, err
	}
	return s.posts.FindByIDs(ctx, u.FavoriteRoommatePostIDs)
}
