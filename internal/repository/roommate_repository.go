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

// MongoRoommateRepository implements RoommateRepository on the
// roommatePosts collection.
type MongoRoommateRepository struct {
	coll *mongo.Collection
}

// NewMongoRoommateRepository binds the repository to its collection.
func NewMongoRoommateRepository(db *mongo.Database) *MongoRoommateRepository {
	return &MongoRoommateRepository{coll: db.Collection("roommatePosts")}
}

var _ RoommateRepository = (*MongoRoommateRepository)(nil)

func (r *MongoRoommateRepository) Insert(ctx context.Context, p *model.RoommatePost) error {
	if _, err := r.coll.InsertOne(ctx, p); err != nil {
		return fmt.Errorf("RoommateRepository.Insert: %w", err)
	}
	return nil
}

func (r *MongoRoommateRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*model.RoommatePost, error) {
	var p model.RoommatePost
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&p)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, fmt.Errorf("roommate post %s: %w", id.Hex(), apperr.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("RoommateRepository.FindByID: %w", err)
	}
	return &p, nil
}

func (r *MongoRoommateRepository) FindFiltered(ctx context.Context, f RoommateFilter) ([]model.RoommatePost, error) {
	query := bson.M{}
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
		query["rent"] = rent
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

func (r *MongoRoommateRepository) FindByUser(ctx context.Context, userID primitive.ObjectID) ([]model.RoommatePost, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	return r.findMany(ctx, bson.M{"userId": userID}, opts)
}

func (r *MongoRoommateRepository) FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]model.RoommatePost, error) {
	if len(ids) == 0 {
		return []model.RoommatePost{}, nil
	}
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	return r.findMany(ctx, bson.M{"_id": bson.M{"$in": ids}}, opts)
}

func (r *MongoRoommateRepository) findMany(ctx context.Context, query bson.M, opts *options.FindOptions) ([]model.RoommatePost, error) {
	cur, err := r.coll.Find(ctx, query, opts)
	if err != nil {
		return nil, fmt.Errorf("RoommateRepository find: %w", err)
	}
	defer cur.Close(ctx)

	posts := []model.RoommatePost{}
	if err := cur.All(ctx, &posts); err != nil {
		return nil, fmt.Errorf("RoommateRepository decode: %w", err)
	}
	return posts, nil
}

func (r *MongoRoommateRepository) Update(ctx context.Context, p *model.RoommatePost) error {
	res, err := r.coll.ReplaceOne(ctx, bson.M{"_id": p.ID}, p)
	if err != nil {
		return fmt.Errorf("RoommateRepository.Update: %w", err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("roommate post %s: %w", p.ID.Hex(), apperr.ErrNotFound)
	}
	return nil
}

func (r *MongoRoommateRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("RoommateRepository.Delete: %w", err)
	}
	if res.DeletedCount == 0 {
		return fmt.Errorf("roommate post %s: %w", id.Hex(), apperr.ErrNotFound)
	}
	return nil
}
