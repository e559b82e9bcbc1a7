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
	"github.com/kaustubhgharat/rentify-sub000/internal/token"
)

// ListingService owns listing CRUD and the availableBeds clamp.
type ListingService struct {
	listings repository.ListingRepository
	reviews  repository.ReviewRepository
	log      *zap.SugaredLogger
}

// NewListingService constructs a ListingService.
func NewListingService(listings repository.ListingRepository, reviews repository.ReviewRepository, log *zap.SugaredLogger) *ListingService {
	return &ListingService{listings: listings, reviews: reviews, log: log}
}

// CreateListingInput carries every field a new listing accepts.
type CreateListingInput struct {
	Title             string
	ListingType       string
	Gender            string
	BHKType           string
	BedsPerRoom       int
	AvailableBeds     int
	Address           string
	Latitude          *float64
	Longitude         *float64
	DepositAmount     float64
	RentPerMonth      float64
	MaintenanceAmount float64
	ElectricityBillBy string
	Furnishing        string
	Description       string
	Amenities         model.AmenitySet
	ImageURLs         []string
	Contact           model.Contact
}

// Create makes a new listing. The role gate runs before the store is
// touched: only the owner role may create listings, and the role is read
// from the token claims, not re-fetched.
func (s *ListingService) Create(ctx context.Context, actor *token.Claims, in CreateListingInput) (*model.Listing, error) {
	if actor.Role != model.RoleOwner {
		return nil, fmt.Errorf("only owners can create listings: %w", apperr.ErrForbidden)
	}
	ownerID, err := parseID(actor.UserID)
	if err != nil {
		return nil, err
	}
	if err := validateListingFields(in); err != nil {
		return nil, err
	}

	now := time.Now()
	l := &model.Listing{
		ID:                primitive.NewObjectID(),
		OwnerID:           ownerID,
		Title:             in.Title,
		ListingType:       in.ListingType,
		Gender:            in.Gender,
		BHKType:           in.BHKType,
		BedsPerRoom:       in.BedsPerRoom,
		AvailableBeds:     clampBeds(in.AvailableBeds, in.BedsPerRoom),
		Address:           in.Address,
		Latitude:          in.Latitude,
		Longitude:         in.Longitude,
		DepositAmount:     in.DepositAmount,
		RentPerMonth:      in.RentPerMonth,
		MaintenanceAmount: in.MaintenanceAmount,
		ElectricityBillBy: in.ElectricityBillBy,
		Furnishing:        in.Furnishing,
		Description:       in.Description,
		Amenities:         in.Amenities,
		ImageURLs:         in.ImageURLs,
		Contact:           in.Contact,
		ReviewIDs:         []primitive.ObjectID{},
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	if err := s.listings.Insert(ctx, l); err != nil {
		return nil, err
	}
	return l, nil
}

// Get fetches one listing.
func (s *ListingService) Get(ctx context.Context, id string) (*model.Listing, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}
	return s.listings.FindByID(ctx, oid)
}

// List browses listings newest first.
func (s *ListingService) List(ctx context.Context, f repository.ListingFilter) ([]model.Listing, error) {
	return s.listings.FindFiltered(ctx, f)
}

// ListMine returns the actor's own listings.
func (s *ListingService) ListMine(ctx context.Context, actorID string) ([]model.Listing, error) {
	oid, err := parseID(actorID)
	if err != nil {
		return nil, err
	}
	return s.listings.FindByOwner(ctx, oid)
}

// UpdateListingInput is a partial update; nil fields are left unchanged.
type UpdateListingInput struct {
	Title             *string
	ListingType       *string
	Gender            *string
	BHKType           *string
	BedsPerRoom       *int
	AvailableBeds     *int
	Address           *string
	Latitude          *float64
	Longitude         *float64
	DepositAmount     *float64
	RentPerMonth      *float64
	MaintenanceAmount *float64
	ElectricityBillBy *string
	Furnishing        *string
	Description       *string
	Amenities         *model.AmenitySet
	ImageURLs         []string
	Contact           *model.Contact
}

// Update mutates a listing the actor owns: load, compare owner, merge,
// re-apply the bed clamp, store. A non-owner gets Forbidden; a missing
// listing gets NotFound.
func (s *ListingService) Update(ctx context.Context, actorID, id string, in UpdateListingInput) (*model.Listing, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}
	l, err := s.listings.FindByID(ctx, oid)
	if err != nil {
		return nil, err
	}
	if !owns(actorID, l.OwnerID) {
		return nil, fmt.Errorf("listing belongs to another owner: %w", apperr.ErrForbidden)
	}

	mergeListing(l, in)
	if err := validateListingFields(listingAsCreateInput(l)); err != nil {
		return nil, err
	}
	// Clamp after the merge so a raised availableBeds can never outrun
	// bedsPerRoom, whichever of the two the request changed.
	l.AvailableBeds = clampBeds(l.AvailableBeds, l.BedsPerRoom)
	l.UpdatedAt = time.Now()

	if err := s.listings.Update(ctx, l); err != nil {
		return nil, err
	}
	return l, nil
}

// Delete removes a listing the actor owns, then clears its reviews as a
// second, independently-committed operation.
func (s *ListingService) Delete(ctx context.Context, actorID, id string) error {
	oid, err := parseID(id)
	if err != nil {
		return err
	}
	l, err := s.listings.FindByID(ctx, oid)
	if err != nil {
		return err
	}
	if !owns(actorID, l.OwnerID) {
		return fmt.Errorf("listing belongs to another owner: %w", apperr.ErrForbidden)
	}
	if err := s.listings.Delete(ctx, oid); err != nil {
		return err
	}
	if err := s.reviews.DeleteByListing(ctx, oid); err != nil {
		// The listing is already gone; leftover reviews are unreachable
		// dangling documents, not user-visible state.
		s.log.Warnw("failed to delete reviews for removed listing", "listingId", id, "err", err)
	}
	return nil
}

func mergeListing(l *model.Listing, in UpdateListingInput) {
	if in.Title != nil {
		l.Title = *in.Title
	}
	if in.ListingType != nil {
		l.ListingType = *in.ListingType
	}
	if in.Gender != nil {
		l.Gender = *in.Gender
	}
	if in.BHKType != nil {
		l.BHKType = *in.BHKType
	}
	if in.BedsPerRoom != nil {
		l.BedsPerRoom = *in.BedsPerRoom
	}
	if in.AvailableBeds != nil {
		l.AvailableBeds = *in.AvailableBeds
	}
	if in.Address != nil {
		l.Address = *in.Address
	}
	if in.Latitude != nil {
		l.Latitude = in.Latitude
	}
	if in.Longitude != nil {
		l.Longitude = in.Longitude
	}
	if in.DepositAmount != nil {
		l.DepositAmount = *in.DepositAmount
	}
	if in.RentPerMonth != nil {
		l.RentPerMonth = *in.RentPerMonth
	}
	if in.MaintenanceAmount != nil {
		l.MaintenanceAmount = *in.MaintenanceAmount
	}
	if in.ElectricityBillBy != nil {
		l.ElectricityBillBy = *in.ElectricityBillBy
	}
	if in.Furnishing != nil {
		l.Furnishing = *in.Furnishing
	}
	if in.Description != nil {
		l.Description = *in.Description
	}
	if in.Amenities != nil {
		l.Amenities = *in.Amenities
	}
	if in.ImageURLs != nil {
		l.ImageURLs = in.ImageURLs
	}
	if in.Contact != nil {
		l.Contact = *in.Contact
	}
}

func listingAsCreateInput(l *model.Listing) CreateListingInput {
	return CreateListingInput{
		Title:             l.Title,
		ListingType:       l.ListingType,
		Gender:            l.Gender,
		Address:           l.Address,
		RentPerMonth:      l.RentPerMonth,
		ElectricityBillBy: l.ElectricityBillBy,
		Furnishing:        l.Furnishing,
		ImageURLs:         l.ImageURLs,
		Contact:           l.Contact,
	}
}

func validateListingFields(in CreateListingInput) error {
	switch {
	case in.Title == "":
		return fmt.Errorf("title is required: %w", apperr.ErrInvalidInput)
	case !model.ValidListingType(in.ListingType):
		return fmt.Errorf("listingType must be PG, Flat or Hostel: %w", apperr.ErrInvalidInput)
	case in.Gender != "" && !model.ValidGender(in.Gender):
		return fmt.Errorf("gender must be Male, Female or Any: %w", apperr.ErrInvalidInput)
	case in.Address == "":
		return fmt.Errorf("address is required: %w", apperr.ErrInvalidInput)
	case in.RentPerMonth <= 0:
		return fmt.Errorf("rentPerMonth must be positive: %w", apperr.ErrInvalidInput)
	case !model.ValidBillBy(in.ElectricityBillBy):
		return fmt.Errorf("electricityBillBy must be Owner, Tenant or Shared: %w", apperr.ErrInvalidInput)
	case !model.ValidFurnishing(in.Furnishing):
		return fmt.Errorf("furnishing must be Furnished, Semi-furnished or Unfurnished: %w", apperr.ErrInvalidInput)
	case len(in.ImageURLs) == 0:
		return fmt.Errorf("at least one image is required: %w", apperr.ErrInvalidInput)
	case in.Contact.Name == "" || in.Contact.Phone == "":
		return fmt.Errorf("contact name and phone are required: %w", apperr.ErrInvalidInput)
	}
	return nil
}

// clampBeds silently reduces availableBeds to bedsPerRoom instead of
// rejecting the write. bedsPerRoom of zero means the listing does not
// track beds (flats), so no clamp applies.
func clampBeds(available, perRoom int) int {
	if perRoom > 0 && available > perRoom {
		return perRoom
	}
	return available
}
