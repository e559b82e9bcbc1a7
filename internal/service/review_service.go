package service

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"github.com/kaustubhgharat/rentify-sub000/internal/apperr"
	"github.com/kaustubhgharat/rentify-sub000/internal/model"
	"github.com/kaustubhgharat/rentify-sub000/internal/repository"
)

// ReviewService owns review creation and deletion. The store's compound
// unique index keeps it to one review per (user, listing).
type ReviewService struct {
	reviews  repository.ReviewRepository
	listings repository.ListingRepository
	log      *zap.SugaredLogger
}

// NewReviewService constructs a ReviewService.
func NewReviewService(reviews repository.ReviewRepository, listings repository.ListingRepository, log *zap.SugaredLogger) *ReviewService {
	return &ReviewService{reviews: reviews, listings: listings, log: log}
}

// Create inserts a review for a listing after checking the listing exists.
// A second review by the same user for the same listing is a Conflict.
func (s *ReviewService) Create(ctx context.Context, actorID, listingID string, rating int, comment string) (*model.Review, error) {
	userID, err := parseID(actorID)
	if err != nil {
		return nil, err
	}
	lid, err := parseID(listingID)
	if err != nil {
		return nil, err
	}
	if rating < 1 || rating > 5 {
		return nil, fmt.Errorf("rating must be between 1 and 5: %w", apperr.ErrInvalidInput)
	}
	if comment == "" {
		return nil, fmt.Errorf("comment is required: %w", apperr.ErrInvalidInput)
	}
	if _, err := s.listings.FindByID(ctx, lid); err != nil {
		return nil, err
	}

	rev := &model.Review{
		ID:        primitive.NewObjectID(),
		ListingID: lid,
		UserID:    userID,
		Rating:    rating,
		Comment:   comment,
		CreatedAt: time.Now(),
	}
	if err := s.reviews.Insert(ctx, rev); err != nil {
		return nil, err
	}
	if err := s.listings.PushReviewID(ctx, lid, rev.ID); err != nil {
		// Two independent single-document writes; the review stands even
		// if the back-reference write fails.
		s.log.Warnw("failed to attach review to listing", "listingId", listingID, "reviewId", rev.ID.Hex(), "err", err)
	}
	return rev, nil
}

// ListForListing returns a listing's reviews newest first, after checking
// the listing exists.
func (s *ReviewService) ListForListing(ctx context.Context, listingID string) ([]model.Review, error) {
	lid, err := parseID(listingID)
	if err != nil {
		return nil, err
	}
	if _, err := s.listings.FindByID(ctx, lid); err != nil {
		return nil, err
	}
	return s.reviews.FindByListing(ctx, lid)
}

// Delete removes a review the actor wrote, then retracts its id from the
// parent listing. The retraction is a separate operation: if it fails the
// delete stands and the listing keeps at worst a dangling id.
func (s *ReviewService) Delete(ctx context.Context, actorID, reviewID string) error {
	rid, err := parseID(reviewID)
	if err != nil {
		return err
	}
	rev, err := s.reviews.FindByID(ctx, rid)
	if err != nil {
		return err
	}
	if !owns(actorID, rev.UserID) {
		return fmt.Errorf("review belongs to another user: %w", apperr.ErrForbidden)
	}
	if err := s.reviews.Delete(ctx, rid); err != nil {
		return err
	}
	if err := s.listings.PullReviewID(ctx, rev.ListingID, rid); err != nil {
		s.log.Warnw("failed to retract review from listing", "listingId", rev.ListingID.Hex(), "reviewId", reviewID, "err", err)
	}
	return nil
}
