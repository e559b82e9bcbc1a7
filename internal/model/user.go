package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Roles a user can sign up with. Owners manage listings; students create
// roommate posts, favorite items and write reviews.
const (
	RoleStudent = "student"
	RoleOwner   = "owner"
)

// User is the persisted account document. Username and email are stored
// lower-cased so the unique indexes enforce case-insensitive uniqueness.
type User struct {
	ID                      primitive.ObjectID   `bson:"_id,omitempty" json:"id"`
	Username                string               `bson:"username" json:"username"`
	Email                   string               `bson:"email" json:"email"`
	PasswordHash            string               `bson:"passwordHash" json:"-"`
	Role                    string               `bson:"role" json:"role"`
	FavoriteListingIDs      []primitive.ObjectID `bson:"favoriteListingIds" json:"favoriteListingIds"`
	FavoriteRoommatePostIDs []primitive.ObjectID `bson:"favoriteRoommatePostIds" json:"favoriteRoommatePostIds"`
	CreatedAt               time.Time            `bson:"createdAt" json:"createdAt"`
	UpdatedAt               time.Time            `bson:"updatedAt" json:"updatedAt"`
}

// ValidRole reports whether r is one of the sign-up roles.
func ValidRole(r string) bool {
	return r == RoleStudent || r == RoleOwner
}
