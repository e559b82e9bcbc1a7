package service

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/kaustubhgharat/rentify-sub000/internal/apperr"
	"github.com/kaustubhgharat/rentify-sub000/internal/model"
	"github.com/kaustubhgharat/rentify-sub000/internal/repository"
)

// RoommateService owns roommate-board CRUD. Any authenticated user may
// post; mutation is gated on the post's userId.
type RoommateService struct {
	posts repository.RoommateRepository
}

// NewRoommateService constructs a RoommateService.
func NewRoommateService(posts repository.RoommateRepository) *RoommateService {
	return &RoommateService{posts: posts}
}

// CreateRoommateInput carries every field a new roommate post accepts.
type CreateRoommateInput struct {
	Title             string
	Gender            string
	Address           string
	Latitude          *float64
	Longitude         *float64
	DepositAmount     float64
	Rent              float64
	MaintenanceAmount float64
	Furnishing        string
	Description       string
	Amenities         model.AmenitySet
	ImageURLs         []string
	Contact           model.Contact
}

// Create makes a new roommate post for the actor. No role restriction.
func (s *RoommateService) Create(ctx context.Context, actorID string, in CreateRoommateInput) (*model.RoommatePost, error) {
	userID, err := parseID(actorID)
	if err != nil {
		return nil, err
	}
	if err := validateRoommateFields(in); err != nil {
		return nil, err
	}

	now := time.Now()
	p := &model.RoommatePost{
		ID:                primitive.NewObjectID(),
		UserID:            userID,
		Title:             in.Title,
		Gender:            in.Gender,
		Address:           in.Address,
		Latitude:          in.Latitude,
		Longitude:         in.Longitude,
		DepositAmount:     in.DepositAmount,
		Rent:              in.Rent,
		MaintenanceAmount: in.MaintenanceAmount,
		Furnishing:        in.Furnishing,
		Description:       in.Description,
		Amenities:         in.Amenities,
		ImageURLs:         in.ImageURLs,
		Contact:           in.Contact,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	if err := s.posts.Insert(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// Get fetches one roommate post.
func (s *RoommateService) Get(ctx context.Context, id string) (*model.RoommatePost, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}
	return s.posts.FindByID(ctx, oid)
}

// List browses the roommate board newest first.
func (s *RoommateService) List(ctx context.Context, f repository.RoommateFilter) ([]model.RoommatePost, error) {
	return s.posts.FindFiltered(ctx, f)
}

// ListMine returns the actor's own posts.
func (s *RoommateService) ListMine(ctx context.Context, actorID string) ([]model.RoommatePost, error) {
	oid, err := parseID(actorID)
	if err != nil {
		return nil, err
	}
	return s.posts.FindByUser(ctx, oid)
}

// UpdateRoommateInput is a partial update; nil fields are left unchanged.
type UpdateRoommateInput struct {
	Title             *string
	Gender            *string
	Address           *string
	Latitude          *float64
	Longitude         *float64
	DepositAmount     *float64
	Rent              *float64
	MaintenanceAmount *float64
	Furnishing        *string
	Description       *string
	Amenities         *model.AmenitySet
	ImageURLs         []string
	Contact           *model.Contact
}

// Update mutates a post the actor owns.
func (s *RoommateService) Update(ctx context.Context, actorID, id string, in UpdateRoommateInput) (*model.RoommatePost, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}
	p, err := s.posts.FindByID(ctx, oid)
	if err != nil {
		return nil, err
	}
	if !owns(actorID, p.UserID) {
		return nil, fmt.Errorf("post belongs to another user: %w", apperr.ErrForbidden)
	}

	mergeRoommate(p, in)
	if err := validateRoommateFields(roommateAsCreateInput(p)); err != nil {
		return nil, err
	}
	p.UpdatedAt = time.Now()

	if err := s.posts.Update(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// Delete removes a post the actor owns.
func (s *RoommateService) Delete(ctx context.Context, actorID, id string) error {
	oid, err := parseID(id)
	if err != nil {
		return err
	}
	p, err := s.posts.FindByID(ctx, oid)
	if err != nil {
		return err
	}
	if !owns(actorID, p.UserID) {
		return fmt.Errorf("post belongs to another user: %w", apperr.ErrForbidden)
	}
	return s.posts.Delete(ctx, oid)
}

func mergeRoommate(p *model.RoommatePost, in UpdateRoommateInput) {
	if in.Title != nil {
		p.Title = *in.Title
	}
	if in.Gender != nil {
		p.Gender = *in.Gender
	}
	if in.Address != nil {
		p.Address = *in.Address
	}
	if in.Latitude != nil {
		p.Latitude = in.Latitude
	}
	if in.Longitude != nil {
		p.Longitude = in.Longitude
	}
	if in.DepositAmount != nil {
		p.DepositAmount = *in.DepositAmount
	}
	if in.Rent != nil {
		p.Rent = *in.Rent
	}
	if in.MaintenanceAmount != nil {
		p.MaintenanceAmount = *in.MaintenanceAmount
	}
	if in.Furnishing != nil {
		p.Furnishing = *in.Furnishing
	}
	if in.Description != nil {
		p.Description = *in.Description
	}
	if in.Amenities != nil {
		p.Amenities = *in.Amenities
	}
	if in.ImageURLs != nil {
		p.ImageURLs = in.ImageURLs
	}
	if in.Contact != nil {
		p.Contact = *in.Contact
	}
}

func roommateAsCreateInput(p *model.RoommatePost) CreateRoommateInput {
	return CreateRoommateInput{
		Title:      p.Title,
		Gender:     p.Gender,
		Address:    p.Address,
		Rent:       p.Rent,
		Furnishing: p.Furnishing,
		ImageURLs:  p.ImageURLs,
		Contact:    p.Contact,
	}
}

func validateRoommateFields(in CreateRoommateInput) error {
	switch {
	case in.Title == "":
		return fmt.Errorf("title is required: %w", apperr.ErrInvalidInput)
	case in.Gender != "" && !model.ValidGender(in.Gender):
		return fmt.Errorf("gender must be Male, Female or Any: %w", apperr.ErrInvalidInput)
	case in.Address == "":
		return fmt.Errorf("address is required: %w", apperr.ErrInvalidInput)
	case in.Rent <= 0:
		return fmt.Errorf("rent must be positive: %w", apperr.ErrInvalidInput)
	case !model.ValidRoommateFurnishing(in.Furnishing):
		return fmt.Errorf("furnishing must be Furnished, Semi-Furnished or Unfurnished: %w", apperr.ErrInvalidInput)
	case len(in.ImageURLs) == 0:
		return fmt.Errorf("at least one image is required: %w", apperr.ErrInvalidInput)
	case in.Contact.Name == "" || in.Contact.Phone == "":
		return fmt.Errorf("contact name and phone are required: %w", apperr.ErrInvalidInput)
	}
	return nil
}
