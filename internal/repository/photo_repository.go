package repository

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/gridfs"

	"github.com/kaustubhgharat/rentify-sub000/internal/apperr"
)

// GridFSImageStore implements ImageStore on GridFS. Uploaded images are
// addressed by their hex file id; handlers turn that into the public
// /api/photos/<id> URL that listings and posts store.
type GridFSImageStore struct {
	db *mongo.Database
}

// NewGridFSImageStore binds the store to a database.
func NewGridFSImageStore(db *mongo.Database) *GridFSImageStore {
	return &GridFSImageStore{db: db}
}

var _ ImageStore = (*GridFSImageStore)(nil)

func (s *GridFSImageStore) Upload(ctx context.Context, file multipart.File, filename string) (string, error) {
	bucket, err := gridfs.NewBucket(s.db)
	if err != nil {
		return "", fmt.Errorf("gridfs bucket: %w", apperr.ErrUploadFailed)
	}

	stream, err := bucket.OpenUploadStream(filename)
	if err != nil {
		return "", fmt.Errorf("open upload stream: %w", apperr.ErrUploadFailed)
	}
	defer stream.Close()

	if _, err := io.Copy(stream, file); err != nil {
		return "", fmt.Errorf("copy upload: %w", apperr.ErrUploadFailed)
	}

	return stream.FileID.(primitive.ObjectID).Hex(), nil
}

func (s *GridFSImageStore) Download(ctx context.Context, photoID string) ([]byte, error) {
	objID, err := primitive.ObjectIDFromHex(photoID)
	if err != nil {
		return nil, fmt.Errorf("photo %q: %w", photoID, apperr.ErrNotFound)
	}

	bucket, err := gridfs.NewBucket(s.db)
	if err != nil {
		return nil, fmt.Errorf("gridfs bucket: %w", err)
	}

	stream, err := bucket.OpenDownloadStream(objID)
	if err != nil {
		return nil, fmt.Errorf("photo %s: %w", photoID, apperr.ErrNotFound)
	}
	defer stream.Close()

	data, err := io.ReadAll(stream)
	if err != nil {
		return nil, fmt.Errorf("read photo %s: %w", photoID, err)
	}
	return data, nil
}
