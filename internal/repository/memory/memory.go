// Package memory implements the repository ports in memory for tests.
// It mirrors the store-level semantics the services rely on: unique
// username/email and one review per (user, listing), set-semantics
// favorites, and newest-first ordering.
package memory

import (
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/kaustubhgharat/rentify-sub000/internal/model"
	"github.com/kaustubhgharat/rentify-sub000/internal/repository"
)

// DB is an in-memory document store shared by the per-collection repos.
type DB struct {
	mu       sync.Mutex
	users    map[primitive.ObjectID]*model.User
	listings map[primitive.ObjectID]*model.Listing
	posts    map[primitive.ObjectID]*model.RoommatePost
	reviews  map[primitive.ObjectID]*model.Review
}

// New creates an empty store.
func New() *DB {
	return &DB{
		users:    make(map[primitive.ObjectID]*model.User),
		listings: make(map[primitive.ObjectID]*model.Listing),
		posts:    make(map[primitive.ObjectID]*model.RoommatePost),
		reviews:  make(map[primitive.ObjectID]*model.Review),
	}
}

// Users returns the user port backed by this store.
func (db *DB) Users() repository.UserRepository { return &UserRepo{db: db} }

// Listings returns the listing port backed by this store.
func (db *DB) Listings() repository.ListingRepository { return &ListingRepo{db: db} }

// Roommates returns the roommate-post port backed by this store.
func (db *DB) Roommates() repository.RoommateRepository { return &RoommateRepo{db: db} }

// Reviews returns the review port backed by this store.
func (db *DB) Reviews() repository.ReviewRepository { return &ReviewRepo{db: db} }

func addToSet(ids []primitive.ObjectID, id primitive.ObjectID) []primitive.ObjectID {
	for _, existing := range ids {
		if existing == id {
			return ids
		}
	}
	return append(ids, id)
}

func pull(ids []primitive.ObjectID, id primitive.ObjectID) []primitive.ObjectID {
	out := make([]primitive.ObjectID, 0, len(ids))
	for _, existing := range ids {
		if existing != id {
			out = append(out, existing)
		}
	}
	return out
}
