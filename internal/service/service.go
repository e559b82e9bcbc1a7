// Package service holds the business rules: validation, the role gate on
// listing creation, the ownership-gated mutation sequence, the bed-count
// clamp and favorite-set semantics. Authentication itself happens before
// these run (middleware), so every actor id arriving here belongs to a
// verified session.
package service

import (
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/kaustubhgharat/rentify-sub000/internal/apperr"
)

func parseID(s string) (primitive.ObjectID, error) {
	id, err := primitive.ObjectIDFromHex(s)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("invalid id %q: %w", s, apperr.ErrInvalidInput)
	}
	return id, nil
}

// owns compares a session id to a resource's owner field in canonical hex
// form. Ownership is always by-value id comparison.
func owns(actorID string, ownerID primitive.ObjectID) bool {
	return actorID == ownerID.Hex()
}
