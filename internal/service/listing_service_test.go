package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"github.com/kaustubhgharat/rentify-sub000/internal/apperr"
	"github.com/kaustubhgharat/rentify-sub000/internal/model"
	"github.com/kaustubhgharat/rentify-sub000/internal/repository"
	"github.com/kaustubhgharat/rentify-sub000/internal/repository/memory"
	"github.com/kaustubhgharat/rentify-sub000/internal/service"
	"github.com/kaustubhgharat/rentify-sub000/internal/token"
)

func ownerClaims() *token.Claims {
	return &token.Claims{UserID: primitive.NewObjectID().Hex(), Role: model.RoleOwner}
}

func validListingInput() service.CreateListingInput {
	return service.CreateListingInput{
		Title:             "2 Sharing PG near COEP",
		ListingType:       model.ListingTypePG,
		Gender:            model.GenderAny,
		BedsPerRoom:       2,
		AvailableBeds:     1,
		Address:           "Shivajinagar, Pune",
		RentPerMonth:      8500,
		DepositAmount:     15000,
		ElectricityBillBy: model.BillByShared,
		Furnishing:        model.FurnishingSemi,
		ImageURLs:         []string{"/api/photos/abc123"},
		Contact:           model.Contact{Name: "Ravi", Phone: "9876543210"},
	}
}

func newListingService(db *memory.DB) *service.ListingService {
	return service.NewListingService(db.Listings(), db.Reviews(), zap.NewNop().Sugar())
}

func TestCreateListingRequiresOwnerRole(t *testing.T) {
	svc := newListingService(memory.New())

	student := &token.Claims{UserID: primitive.NewObjectID().Hex(), Role: model.RoleStudent}
	_, err := svc.Create(context.Background(), student, validListingInput())
	assert.ErrorIs(t, err, apperr.ErrForbidden)

	_, err = svc.Create(context.Background(), ownerClaims(), validListingInput())
	assert.NoError(t, err)
}

func TestCreateListingClampsAvailableBeds(t *testing.T) {
	svc := newListingService(memory.New())

	in := validListingInput()
	in.BedsPerRoom = 2
	in.AvailableBeds = 4
	l, err := svc.Create(context.Background(), ownerClaims(), in)
	require.NoError(t, err)
	assert.Equal(t, 2, l.AvailableBeds)

	// bedsPerRoom of zero means beds are not tracked; no clamp.
	in = validListingInput()
	in.ListingType = model.ListingTypeFlat
	in.BHKType = "2BHK"
	in.BedsPerRoom = 0
	in.AvailableBeds = 3
	l, err = svc.Create(context.Background(), ownerClaims(), in)
	require.NoError(t, err)
	assert.Equal(t, 3, l.AvailableBeds)
}

func TestCreateListingValidatesFields(t *testing.T) {
	svc := newListingService(memory.New())
	ctx := context.Background()

	in := validListingInput()
	in.ListingType = "Bungalow"
	_, err := svc.Create(ctx, ownerClaims(), in)
	assert.ErrorIs(t, err, apperr.ErrInvalidInput)

	in = validListingInput()
	in.RentPerMonth = 0
	_, err = svc.Create(ctx, ownerClaims(), in)
	assert.ErrorIs(t, err, apperr.ErrInvalidInput)

	in = validListingInput()
	in.ImageURLs = nil
	_, err = svc.Create(ctx, ownerClaims(), in)
	assert.ErrorIs(t, err, apperr.ErrInvalidInput)

	in = validListingInput()
	in.Contact.Phone = ""
	_, err = svc.Create(ctx, ownerClaims(), in)
	assert.ErrorIs(t, err, apperr.ErrInvalidInput)
}

func TestUpdateListingOwnershipGate(t *testing.T) {
	svc := newListingService(memory.New())
	ctx := context.Background()

	owner := ownerClaims()
	l, err := svc.Create(ctx, owner, validListingInput())
	require.NoError(t, err)

	newTitle := "Renamed"

	// A missing listing is NotFound even for a would-be intruder.
	_, err = svc.Update(ctx, primitive.NewObjectID().Hex(), primitive.NewObjectID().Hex(), service.UpdateListingInput{Title: &newTitle})
	assert.ErrorIs(t, err, apperr.ErrNotFound)

	// An existing listing owned by someone else is Forbidden.
	_, err = svc.Update(ctx, primitive.NewObjectID().Hex(), l.ID.Hex(), service.UpdateListingInput{Title: &newTitle})
	assert.ErrorIs(t, err, apperr.ErrForbidden)

	updated, err := svc.Update(ctx, owner.UserID, l.ID.Hex(), service.UpdateListingInput{Title: &newTitle})
	require.NoError(t, err)
	assert.Equal(t, "Renamed", updated.Title)
}

func TestUpdateListingReclampsAfterMerge(t *testing.T) {
	svc := newListingService(memory.New())
	ctx := context.Background()

	owner := ownerClaims()
	l, err := svc.Create(ctx, owner, validListingInput())
	require.NoError(t, err)

	// Raising only availableBeds past bedsPerRoom clamps back down.
	beds := 5
	updated, err := svc.Update(ctx, owner.UserID, l.ID.Hex(), service.UpdateListingInput{AvailableBeds: &beds})
	require.NoError(t, err)
	assert.Equal(t, 2, updated.AvailableBeds)

	// Lowering bedsPerRoom drags availableBeds down with it.
	perRoom := 1
	updated, err = svc.Update(ctx, owner.UserID, l.ID.Hex(), service.UpdateListingInput{BedsPerRoom: &perRoom})
	require.NoError(t, err)
	assert.Equal(t, 1, updated.AvailableBeds)
}

func TestDeleteListingRemovesItsReviews(t *testing.T) {
	db := memory.New()
	svc := newListingService(db)
	reviewSvc := service.NewReviewService(db.Reviews(), db.Listings(), zap.NewNop().Sugar())
	ctx := context.Background()

	owner := ownerClaims()
	l, err := svc.Create(ctx, owner, validListingInput())
	require.NoError(t, err)

	rev, err := reviewSvc.Create(ctx, primitive.NewObjectID().Hex(), l.ID.Hex(), 4, "decent place")
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, owner.UserID, l.ID.Hex()))

	_, err = svc.Get(ctx, l.ID.Hex())
	assert.ErrorIs(t, err, apperr.ErrNotFound)

	reviews, err := db.Reviews().FindByListing(ctx, rev.ListingID)
	require.NoError(t, err)
	assert.Empty(t, reviews)
}

func TestListFiltersAndPaginates(t *testing.T) {
	db := memory.New()
	svc := newListingService(db)
	ctx := context.Background()
	owner := ownerClaims()

	rents := []float64{5000, 9000, 12000}
	for _, r := range rents {
		in := validListingInput()
		in.RentPerMonth = r
		_, err := svc.Create(ctx, owner, in)
		require.NoError(t, err)
	}

	min, max := 6000.0, 10000.0
	got, err := svc.List(ctx, repository.ListingFilter{MinRent: &min, MaxRent: &max, Limit: 20})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, 9000.0, got[0].RentPerMonth)

	got, err = svc.List(ctx, repository.ListingFilter{Limit: 2})
	require.NoError(t, err)
	assert.Len(t, got, 2)

	got, err = svc.List(ctx, repository.ListingFilter{Limit: 2, Offset: 2})
	require.NoError(t, err)
	assert.Len(t, got, 1)
}
