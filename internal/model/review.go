package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Review is a user's review of a listing. At most one review exists per
// (userId, listingId) pair; the compound unique index enforces it.
type Review struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	ListingID primitive.ObjectID `bson:"listingId" json:"listingId"`
	UserID    primitive.ObjectID `bson:"userId" json:"userId"`
	Rating    int                `bson:"rating" json:"rating"`
	Comment   string             `bson:"comment" json:"comment"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
}
