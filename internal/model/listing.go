package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Listing type values.
const (
	ListingTypePG     = "PG"
	ListingTypeFlat   = "Flat"
	ListingTypeHostel = "Hostel"
)

// Gender preference values, shared by listings and roommate posts.
const (
	GenderMale   = "Male"
	GenderFemale = "Female"
	GenderAny    = "Any"
)

// Electricity bill responsibility values.
const (
	BillByOwner  = "Owner"
	BillByTenant = "Tenant"
	BillByShared = "Shared"
)

// Furnishing values for listings. The roommate board historically uses
// "Semi-Furnished" (capital F) for stored data; the two enums stay separate.
const (
	FurnishingFurnished   = "Furnished"
	FurnishingSemi        = "Semi-furnished"
	FurnishingUnfurnished = "Unfurnished"
)

// AmenitySet flags what a place offers.
type AmenitySet struct {
	Wifi           bool `bson:"wifi" json:"wifi"`
	AC             bool `bson:"ac" json:"ac"`
	Food           bool `bson:"food" json:"food"`
	Parking        bool `bson:"parking" json:"parking"`
	Bed            bool `bson:"bed" json:"bed"`
	Table          bool `bson:"table" json:"table"`
	WashingMachine bool `bson:"washingMachine" json:"washingMachine"`
}

// Contact is the reach-the-poster block on a post.
type Contact struct {
	Name  string `bson:"name" json:"name"`
	Phone string `bson:"phone" json:"phone"`
	Email string `bson:"email,omitempty" json:"email,omitempty"`
}

// Listing is a PG/flat/hostel advertisement. Invariant: AvailableBeds never
// exceeds BedsPerRoom; writes that would violate it are clamped down.
type Listing struct {
	ID                primitive.ObjectID   `bson:"_id,omitempty" json:"id"`
	OwnerID           primitive.ObjectID   `bson:"ownerId" json:"ownerId"`
	Title             string               `bson:"title" json:"title"`
	ListingType       string               `bson:"listingType" json:"listingType"`
	Gender            string               `bson:"gender,omitempty" json:"gender,omitempty"`
	BHKType           string               `bson:"bhkType,omitempty" json:"bhkType,omitempty"`
	BedsPerRoom       int                  `bson:"bedsPerRoom,omitempty" json:"bedsPerRoom,omitempty"`
	AvailableBeds     int                  `bson:"availableBeds,omitempty" json:"availableBeds,omitempty"`
	Address           string               `bson:"address" json:"address"`
	Latitude          *float64             `bson:"latitude,omitempty" json:"latitude,omitempty"`
	Longitude         *float64             `bson:"longitude,omitempty" json:"longitude,omitempty"`
	DepositAmount     float64              `bson:"depositAmount" json:"depositAmount"`
	RentPerMonth      float64              `bson:"rentPerMonth" json:"rentPerMonth"`
	MaintenanceAmount float64              `bson:"maintenanceAmount" json:"maintenanceAmount"`
	ElectricityBillBy string               `bson:"electricityBillBy" json:"electricityBillBy"`
	Furnishing        string               `bson:"furnishing" json:"furnishing"`
	Description       string               `bson:"description" json:"description"`
	Amenities         AmenitySet           `bson:"amenitySet" json:"amenitySet"`
	ImageURLs         []string             `bson:"imageUrls" json:"imageUrls"`
	Contact           Contact              `bson:"contact" json:"contact"`
	ReviewIDs         []primitive.ObjectID `bson:"reviewIds" json:"reviewIds"`
	CreatedAt         time.Time            `bson:"createdAt" json:"createdAt"`
	UpdatedAt         time.Time            `bson:"updatedAt" json:"updatedAt"`
}

// ValidListingType reports whether t is PG, Flat or Hostel.
func ValidListingType(t string) bool {
	return t == ListingTypePG || t == ListingTypeFlat || t == ListingTypeHostel
}

// ValidGender reports whether g is an accepted gender preference.
func ValidGender(g string) bool {
	return g == GenderMale || g == GenderFemale || g == GenderAny
}

// ValidBillBy reports whether b is an accepted electricity arrangement.
func ValidBillBy(b string) bool {
	return b == BillByOwner || b == BillByTenant || b == BillByShared
}

// ValidFurnishing reports whether f is an accepted listing furnishing value.
func ValidFurnishing(f string) bool {
	return f == FurnishingFurnished || f == FurnishingSemi || f == FurnishingUnfurnished
}
