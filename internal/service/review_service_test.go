package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"github.com/kaustubhgharat/rentify-sub000/internal/apperr"
	"github.com/kaustubhgharat/rentify-sub000/internal/repository/memory"
	"github.com/kaustubhgharat/rentify-sub000/internal/service"
)

func seedListing(t *testing.T, db *memory.DB) primitive.ObjectID {
	t.Helper()
	svc := newListingService(db)
	l, err := svc.Create(context.Background(), ownerClaims(), validListingInput())
	require.NoError(t, err)
	return l.ID
}

func TestCreateReviewAttachesToListing(t *testing.T) {
	db := memory.New()
	svc := service.NewReviewService(db.Reviews(), db.Listings(), zap.NewNop().Sugar())
	ctx := context.Background()

	lid := seedListing(t, db)
	student := primitive.NewObjectID().Hex()

	rev, err := svc.Create(ctx, student, lid.Hex(), 5, "great wifi, decent food")
	require.NoError(t, err)
	assert.Equal(t, lid, rev.ListingID)

	l, err := db.Listings().FindByID(ctx, lid)
	require.NoError(t, err)
	assert.Contains(t, l.ReviewIDs, rev.ID)
}

func TestCreateReviewValidates(t *testing.T) {
	db := memory.New()
	svc := service.NewReviewService(db.Reviews(), db.Listings(), zap.NewNop().Sugar())
	ctx := context.Background()

	lid := seedListing(t, db)
	student := primitive.NewObjectID().Hex()

	_, err := svc.Create(ctx, student, lid.Hex(), 0, "too low")
	assert.ErrorIs(t, err, apperr.ErrInvalidInput)

	_, err = svc.Create(ctx, student, lid.Hex(), 6, "too high")
	assert.ErrorIs(t, err, apperr.ErrInvalidInput)

	_, err = svc.Create(ctx, student, lid.Hex(), 3, "")
	assert.ErrorIs(t, err, apperr.ErrInvalidInput)

	_, err = svc.Create(ctx, student, primitive.NewObjectID().Hex(), 3, "ghost listing")
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestSecondReviewForSameListingIsConflict(t *testing.T) {
	db := memory.New()
	svc := service.NewReviewService(db.Reviews(), db.Listings(), zap.NewNop().Sugar())
	ctx := context.Background()

	lid := seedListing(t, db)
	student := primitive.NewObjectID().Hex()

	_, err := svc.Create(ctx, student, lid.Hex(), 4, "first impressions")
	require.NoError(t, err)

	_, err = svc.Create(ctx, student, lid.Hex(), 2, "changed my mind")
	assert.ErrorIs(t, err, apperr.ErrConflict)

	// A different user reviewing the same listing is fine.
	_, err = svc.Create(ctx, primitive.NewObjectID().Hex(), lid.Hex(), 3, "okay place")
	assert.NoError(t, err)
}

func TestDeleteReviewRetractsFromListing(t *testing.T) {
	db := memory.New()
	svc := service.NewReviewService(db.Reviews(), db.Listings(), zap.NewNop().Sugar())
	ctx := context.Background()

	lid := seedListing(t, db)
	student := primitive.NewObjectID().Hex()

	rev, err := svc.Create(ctx, student, lid.Hex(), 4, "solid")
	require.NoError(t, err)

	err = svc.Delete(ctx, primitive.NewObjectID().Hex(), rev.ID.Hex())
	assert.ErrorIs(t, err, apperr.ErrForbidden)

	require.NoError(t, svc.Delete(ctx, student, rev.ID.Hex()))

	l, err := db.Listings().FindByID(ctx, lid)
	require.NoError(t, err)
	assert.NotContains(t, l.ReviewIDs, rev.ID)

	reviews, err := svc.ListForListing(ctx, lid.Hex())
	require.NoError(t, err)
	assert.Empty(t, reviews)
}
