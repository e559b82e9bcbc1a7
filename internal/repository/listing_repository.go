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

// MongoListingRepository implements ListingRepository on the listings
// collection.
type MongoListingRepository struct {
	coll *mongo.Collection
}

// NewMongoListingRepository binds the repository to its collection.
func NewMongoListingRepository(db *mongo.Database) *MongoListingRepository {
	return &MongoListingRepository{coll: db.Collection("listings")}
}

var _ ListingRepository = (*MongoListingRepository)(nil)

func (r *MongoListingRepository) Insert(ctx context.Context, l *model.Listing) error {
	if _, err := r.coll.InsertOne(ctx, l); err != nil {
		return fmt.Errorf("ListingRepository.Insert: %w", err)
	}
	return nil
}

func (r *MongoListingRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*model.Listing, error) {
	var l model.Listing
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&l)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, fmt.Errorf("listing %s: %w", id.Hex(), apperr.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("ListingRepository.FindByID: %w", err)
	}
	return &l, nil
}

// FindFiltered browses listings newest first, narrowed by the filter.
func (r *MongoListingRepository) FindFiltered(ctx context.Context, f ListingFilter) ([]model.Listing, error) {
	query := bson.M{}
	if f.ListingType != "" {
		query["listingType"] = f.ListingType
	}
	if f.Gender != "" {
		query["gender"] = f.Gender
	}
	rent := bson.M{}
	if f.MinRent != nil {
		rent["$gte"] = *f.MinRent
	}
	if f.MaxRent != nil {
		rent["$lte"] = *f.MaxRent
	}
	if len(rent) > 0 {
		query["rentPerMonth"] = rent
	}

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	if f.Limit > 0 {
		opts.SetLimit(int64(f.Limit))
	}
	if f.Offset > 0 {
		opts.SetSkip(int64(f.Offset))
	}
	return r.findMany(ctx, query, opts)
}

func (r *MongoListingRepository) FindByOwner(ctx context.Context, ownerID primitive.ObjectID) ([]model.Listing, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	return r.findMany(ctx, bson.M{"ownerId": ownerID}, opts)
}

func (r *MongoListingRepository) FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]model.Listing, error) {
	if len(ids) == 0 {
		return []model.Listing{}, nil
	}
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	return r.findMany(ctx, bson.M{"_id": bson.M{"$in": ids}}, opts)
}

func (r *MongoListingRepository) findMany(ctx context.Context, query bson.M, opts *options.FindOptions) ([]model.Listing, error) {
	cur, err := r.coll.Find(ctx, query, opts)
	if err != nil {
		return nil, fmt.Errorf("ListingRepository find: %w", err)
	}
	defer cur.Close(ctx)

	list := []model.Listing{}
	if err := cur.All(ctx, &list); err != nil {
		return nil, fmt.Errorf("ListingRepository decode: %w", err)
	}
	return list, nil
}

func (r *MongoListingRepository) Update(ctx context.Context, l *model.Listing) error {
	res, err := r.coll.ReplaceOne(ctx, bson.M{"_id": l.ID}, l)
	if err != nil {
		return fmt.Errorf("ListingRepository.Update: %w", err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("listing %s: %w", l.ID.Hex(), apperr.ErrNotFound)
	}
	return nil
}

func (r *MongoListingRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("ListingRepository.Delete: %w", err)
	}
	if res.DeletedCount == 0 {
		return fmt.Errorf("listing %s: %w", id.Hex(), apperr.ErrNotFound)
	}
	return nil
}

func (r *MongoListingRepository) PushReviewID(ctx context.Context, listingID, reviewID primitive.ObjectID) error {
	_, err := r.coll.UpdateByID(ctx, listingID, bson.M{"$addToSet": bson.M{"reviewIds": reviewID}})
	if err != nil {
		return fmt.Errorf("ListingRepository.PushReviewID: %w", err)
	}
	return nil
}

func (r *MongoListingRepository) PullReviewID(ctx context.Context, listingID, reviewID primitive.ObjectID) error {
	_, err := r.coll.UpdateByID(ctx, listingID, bson.M{"$pull": bson.M{"reviewIds": reviewID}})
	if err != nil {
		return fmt.Errorf("ListingRepository.PullReviewID: %w", err)
	}
	return nil
}
