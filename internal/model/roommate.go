package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Furnishing values for roommate posts. The board's stored data uses
// "Semi-Furnished" with a capital F, unlike listings; do not merge them.
const (
	RoommateFurnished   = "Furnished"
	RoommateSemi        = "Semi-Furnished"
	RoommateUnfurnished = "Unfurnished"
)

// RoommatePost is a looking-for-roommate advertisement. Parallel to Listing
// but with its own, simpler schema: a single `rent` figure and no bed or
// electricity accounting.
type RoommatePost struct {
	ID                primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID            primitive.ObjectID `bson:"userId" json:"userId"`
	Title             string             `bson:"title" json:"title"`
	Gender            string             `bson:"gender,omitempty" json:"gender,omitempty"`
	Address           string             `bson:"address" json:"address"`
	Latitude          *float64           `bson:"latitude,omitempty" json:"latitude,omitempty"`
	Longitude         *float64           `bson:"longitude,omitempty" json:"longitude,omitempty"`
	DepositAmount     float64            `bson:"depositAmount" json:"depositAmount"`
	Rent              float64            `bson:"rent" json:"rent"`
	MaintenanceAmount float64            `bson:"maintenanceAmount" json:"maintenanceAmount"`
	Furnishing        string             `bson:"furnishing" json:"furnishing"`
	Description       string             `bson:"description" json:"description"`
	Amenities         AmenitySet         `bson:"amenitySet" json:"amenitySet"`
	ImageURLs         []string           `bson:"imageUrls" json:"imageUrls"`
	Contact           Contact            `bson:"contact" json:"contact"`
	CreatedAt         time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt         time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// ValidRoommateFurnishing reports whether f is an accepted roommate-post
// furnishing value.
func ValidRoommateFurnishing(f string) bool {
	return f == RoommateFurnished || f == RoommateSemi || f == RoommateUnfurnished
}
