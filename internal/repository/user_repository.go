package repository

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/kaustubhgharat/rentify-sub000/internal/apperr"
	"github.com/kaustubhgharat/rentify-sub000/internal/model"
)

// MongoUserRepository implements UserRepository on the users collection.
type MongoUserRepository struct {
	coll *mongo.Collection
}

// NewMongoUserRepository binds the repository to its collection.
func NewMongoUserRepository(db *mongo.Database) *MongoUserRepository {
	return &MongoUserRepository{coll: db.Collection("users")}
}

var _ UserRepository = (*MongoUserRepository)(nil)

func (r *MongoUserRepository) Insert(ctx context.Context, u *model.User) error {
	if _, err := r.coll.InsertOne(ctx, u); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return fmt.Errorf("username or email already taken: %w", apperr.ErrConflict)
		}
		return fmt.Errorf("UserRepository.Insert: %w", err)
	}
	return nil
}

func (r *MongoUserRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*model.User, error) {
	var u model.User
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&u)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, fmt.Errorf("user %s: %w", id.Hex(), apperr.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("UserRepository.FindByID: %w", err)
	}
	return &u, nil
}

func (r *MongoUserRepository) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	var u model.User
	err := r.coll.FindOne(ctx, bson.M{"username": username}).Decode(&u)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, fmt.Errorf("user %q: %w", username, apperr.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("UserRepository.FindByUsername: %w", err)
	}
	return &u, nil
}

func (r *MongoUserRepository) UpdatePasswordHash(ctx context.Context, id primitive.ObjectID, hash string) error {
	res, err := r.coll.UpdateByID(ctx, id, bson.M{"$set": bson.M{"passwordHash": hash}})
	if err != nil {
		return fmt.Errorf("UserRepository.UpdatePasswordHash: %w", err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("user %s: %w", id.Hex(), apperr.ErrNotFound)
	}
	return nil
}

// Favorite mutations use $addToSet / $pull so redundant calls are no-ops
// with set semantics, never duplicate entries or errors.

func (r *MongoUserRepository) AddFavoriteListing(ctx context.Context, userID, listingID primitive.ObjectID) error {
	return r.updateFavorites(ctx, userID, bson.M{"$addToSet": bson.M{"favoriteListingIds": listingID}})
}

func (r *MongoUserRepository) RemoveFavoriteListing(ctx context.Context, userID, listingID primitive.ObjectID) error {
	return r.updateFavorites(ctx, userID, bson.M{"$pull": bson.M{"favoriteListingIds": listingID}})
}

func (r *MongoUserRepository) AddFavoriteRoommatePost(ctx context.Context, userID, postID primitive.ObjectID) error {
	return r.updateFavorites(ctx, userID, bson.M{"$addToSet": bson.M{"favoriteRoommatePostIds": postID}})
}

func (r *MongoUserRepository) RemoveFavoriteRoommatePost(ctx context.Context, userID, postID primitive.ObjectID) error {
	return r.updateFavorites(ctx, userID, bson.M{"$pull": bson.M{"favoriteRoommatePostIds": postID}})
}

func (r *MongoUserRepository) updateFavorites(ctx context.Context, userID primitive.ObjectID, update bson.M) error {
	res, err := r.coll.UpdateByID(ctx, userID, update)
	if err != nil {
		return fmt.Errorf("UserRepository favorites update: %w", err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("user %s: %w", userID.Hex(), apperr.ErrNotFound)
	}
	return nil
}
