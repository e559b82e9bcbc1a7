// Package repository defines the persistence ports and their MongoDB
// implementations. Services depend on the interfaces; tests use the
// in-memory mirrors in the memory subpackage.
package repository

import (
	"context"
	"mime/multipart"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/kaustubhgharat/rentify-sub000/internal/model"
)

// ListingFilter narrows a listing browse. Nil bounds mean unbounded.
type ListingFilter struct {
	ListingType string
	Gender      string
	MinRent     *float64
	MaxRent     *float64
	Limit       int
	Offset      int
}

// RoommateFilter narrows a roommate-board browse.
type RoommateFilter struct {
	Gender  string
	MinRent *float64
	MaxRent *float64
	Limit   int
	Offset  int
}

// UserRepository persists accounts and their two favorite sets.
// Insert fails with apperr.ErrConflict when username or email is taken;
// finders fail with apperr.ErrNotFound.
type UserRepository interface {
	Insert(ctx context.Context, u *model.User) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*model.User, error)
	FindByUsername(ctx context.Context, username string) (*model.User, error)
	UpdatePasswordHash(ctx context.Context, id primitive.ObjectID, hash string) error
	AddFavoriteListing(ctx context.Context, userID, listingID primitive.ObjectID) error
	RemoveFavoriteListing(ctx context.Context, userID, listingID primitive.ObjectID) error
	AddFavoriteRoommatePost(ctx context.Context, userID, postID primitive.ObjectID) error
	RemoveFavoriteRoommatePost(ctx context.Context, userID, postID primitive.ObjectID) error
}

// ListingRepository persists listings. All multi-document finders return
// newest first.
type ListingRepository interface {
	Insert(ctx context.Context, l *model.Listing) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*model.Listing, error)
	FindFiltered(ctx context.Context, f ListingFilter) ([]model.Listing, error)
	FindByOwner(ctx context.Context, ownerID primitive.ObjectID) ([]model.Listing, error)
	FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]model.Listing, error)
	Update(ctx context.Context, l *model.Listing) error
	Delete(ctx context.Context, id primitive.ObjectID) error
	PushReviewID(ctx context.Context, listingID, reviewID primitive.ObjectID) error
	PullReviewID(ctx context.Context, listingID, reviewID primitive.ObjectID) error
}

// RoommateRepository persists roommate posts, newest first on finders.
type RoommateRepository interface {
	Insert(ctx context.Context, p *model.RoommatePost) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*model.RoommatePost, error)
	FindFiltered(ctx context.Context, f RoommateFilter) ([]model.RoommatePost, error)
	FindByUser(ctx context.Context, userID primitive.ObjectID) ([]model.RoommatePost, error)
	FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]model.RoommatePost, error)
	Update(ctx context.Context, p *model.RoommatePost) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}

// ReviewRepository persists reviews. Insert fails with apperr.ErrConflict
// when the (userId, listingId) pair already has a review.
type ReviewRepository interface {
	Insert(ctx context.Context, r *model.Review) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*model.Review, error)
	FindByListing(ctx context.Context, listingID primitive.ObjectID) ([]model.Review, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
	DeleteByListing(ctx context.Context, listingID primitive.ObjectID) error
}

// ImageStore is the image-hosting boundary. The application keeps only the
// returned ids (as public URLs), never raw bytes.
type ImageStore interface {
	Upload(ctx context.Context, file multipart.File, filename string) (string, error)
	Download(ctx context.Context, photoID string) ([]byte, error)
}
