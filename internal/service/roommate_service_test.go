package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/kaustubhgharat/rentify-sub000/internal/apperr"
	"github.com/kaustubhgharat/rentify-sub000/internal/model"
	"github.com/kaustubhgharat/rentify-sub000/internal/repository"
	"github.com/kaustubhgharat/rentify-sub000/internal/repository/memory"
	"github.com/kaustubhgharat/rentify-sub000/internal/service"
)

func validRoommateInput() service.CreateRoommateInput {
	return service.CreateRoommateInput{
		Title:      "Looking for flatmate in Kothrud",
		Gender:     model.GenderMale,
		Address:    "Kothrud, Pune",
		Rent:       6000,
		Furnishing: model.RoommateSemi,
		ImageURLs:  []string{"/api/photos/xyz789"},
		Contact:    model.Contact{Name: "Aman", Phone: "9123456780"},
	}
}

func TestCreateRoommatePostAnyRole(t *testing.T) {
	svc := service.NewRoommateService(memory.New().Roommates())

	// Students and owners alike may post; only the actor id matters.
	p, err := svc.Create(context.Background(), primitive.NewObjectID().Hex(), validRoommateInput())
	require.NoError(t, err)
	assert.False(t, p.UserID.IsZero())
	assert.Equal(t, "Looking for flatmate in Kothrud", p.Title)
}

func TestCreateRoommatePostValidatesFields(t *testing.T) {
	svc := service.NewRoommateService(memory.New().Roommates())
	ctx := context.Background()
	actor := primitive.NewObjectID().Hex()

	in := validRoommateInput()
	in.Rent = 0
	_, err := svc.Create(ctx, actor, in)
	assert.ErrorIs(t, err, apperr.ErrInvalidInput)

	// Listing-style casing is not accepted on the roommate board.
	in = validRoommateInput()
	in.Furnishing = "Semi-furnished"
	_, err = svc.Create(ctx, actor, in)
	assert.ErrorIs(t, err, apperr.ErrInvalidInput)

	in = validRoommateInput()
	in.Title = ""
	_, err = svc.Create(ctx, actor, in)
	assert.ErrorIs(t, err, apperr.ErrInvalidInput)
}

func TestRoommatePostDeleteOwnership(t *testing.T) {
	svc := service.NewRoommateService(memory.New().Roommates())
	ctx := context.Background()

	userA := primitive.NewObjectID().Hex()
	userB := primitive.NewObjectID().Hex()

	p, err := svc.Create(ctx, userA, validRoommateInput())
	require.NoError(t, err)

	err = svc.Delete(ctx, userB, p.ID.Hex())
	assert.ErrorIs(t, err, apperr.ErrForbidden)

	require.NoError(t, svc.Delete(ctx, userA, p.ID.Hex()))

	err = svc.Delete(ctx, userA, p.ID.Hex())
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestRoommatePostUpdateMergesPartial(t *testing.T) {
	svc := service.NewRoommateService(memory.New().Roommates())
	ctx := context.Background()
	actor := primitive.NewObjectID().Hex()

	p, err := svc.Create(ctx, actor, validRoommateInput())
	require.NoError(t, err)

	rent := 7500.0
	updated, err := svc.Update(ctx, actor, p.ID.Hex(), service.UpdateRoommateInput{Rent: &rent})
	require.NoError(t, err)
	assert.Equal(t, 7500.0, updated.Rent)
	assert.Equal(t, p.Title, updated.Title)

	other := primitive.NewObjectID().Hex()
	_, err = svc.Update(ctx, other, p.ID.Hex(), service.UpdateRoommateInput{Rent: &rent})
	assert.ErrorIs(t, err, apperr.ErrForbidden)
}

func TestRoommateBoardFilters(t *testing.T) {
	svc := service.NewRoommateService(memory.New().Roommates())
	ctx := context.Background()
	actor := primitive.NewObjectID().Hex()

	in := validRoommateInput()
	in.Gender = model.GenderMale
	_, err := svc.Create(ctx, actor, in)
	require.NoError(t, err)

	in = validRoommateInput()
	in.Gender = model.GenderFemale
	in.Rent = 9000
	_, err = svc.Create(ctx, actor, in)
	require.NoError(t, err)

	got, err := svc.List(ctx, repository.RoommateFilter{Gender: model.GenderFemale, Limit: 20})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, 9000.0, got[0].Rent)

	max := 7000.0
	got, err = svc.List(ctx, repository.RoommateFilter{MaxRent: &max, Limit: 20})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, 6000.0, got[0].Rent)
}
