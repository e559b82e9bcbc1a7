package repository

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/kaustubhgharat/rentify-sub000/internal/apperr"
	"github.com/kaustubhgharat/rentify-sub000/internal/model"
)

// MongoReviewRepository implements ReviewRepository on the reviews
// collection. The compound unique index on (userId, listingId) turns a
// second review for the same pair into a duplicate-key error.
type MongoReviewRepository struct {
	coll *mongo.Collection
}

// NewMongoReviewRepository binds the repository to its collection.
func NewMongoReviewRepository(db *mongo.Database) *MongoReviewRepository {
	return &MongoReviewRepository{coll: db.Collection("reviews")}
}

var _ ReviewRepository = (*MongoReviewRepository)(nil)

func (r *MongoReviewRepository) Insert(ctx context.Context, rev *model.Review) error {
	if _, err := r.coll.InsertOne(ctx, rev); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return fmt.Errorf("listing already reviewed by this user: %w", apperr.ErrConflict)
		}
		return fmt.Errorf("ReviewRepository.Insert: %w", err)
	}
	return nil
}

func (r *MongoReviewRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*model.Review, error) {
	var rev model.Review
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&rev)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, fmt.Errorf("review %s: %w", id.Hex(), apperr.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("ReviewRepository.FindByID: %w", err)
	}
	return &rev, nil
}

// FindByListing returns a listing's reviews, newest first.
func (r *MongoReviewRepository) FindByListing(ctx context.Context, listingID primitive.ObjectID) ([]model.Review, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cur, err := r.coll.Find(ctx, bson.M{"listingId": listingID}, opts)
	if err != nil {
		return nil, fmt.Errorf("ReviewRepository.FindByListing: %w", err)
	}
	defer cur.Close(ctx)

	reviews := []model.Review{}
	if err := cur.All(ctx, &reviews); err != nil {
		return nil, fmt.Errorf("ReviewRepository decode: %w", err)
	}
	return reviews, nil
}

func (r *MongoReviewRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("ReviewRepository.Delete: %w", err)
	}
	if res.DeletedCount == 0 {
		return fmt.Errorf("review %s: %w", id.Hex(), apperr.ErrNotFound)
	}
	return nil
}

func (r *MongoReviewRepository) DeleteByListing(ctx context.Context, listingID primitive.ObjectID) error {
	if _, err := r.coll.DeleteMany(ctx, bson.M{"listingId": listingID}); err != nil {
		return fmt.Errorf("ReviewRepository.DeleteByListing: %w", err)
	}
	return nil
}
