package mongo

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/gridfs"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/moviehub/accounts-api/internal/core/domain"
)

const imageBucket = "profile_images"

// ImageStore keeps profile images in a GridFS bucket, one file per account,
// keyed by email. A new upload replaces the previous image.
type ImageStore struct {
	bucket *gridfs.Bucket
}

func NewImageStore(db *mongo.Database) (*ImageStore, error) {
	bucket, err := gridfs.NewBucket(db, options.GridFSBucket().SetName(imageBucket))
	if err != nil {
		return nil, fmt.Errorf("gridfs bucket: %w", err)
	}
	return &ImageStore{bucket: bucket}, nil
}

type imageMeta struct {
	ContentType string `bson:"content_type"`
}

func (s *ImageStore) Save(ctx context.Context, email, contentType string, r io.Reader) error {
	// Drop any previous image for this account first.
	if err := s.deleteByEmail(ctx, email); err != nil {
		return err
	}

	opts := options.GridFSUpload().SetMetadata(imageMeta{ContentType: contentType})
	if _, err := s.bucket.UploadFromStream(email, r, opts); err != nil {
		return fmt.Errorf("upload image: %w", err)
	}
	return nil
}

func (s *ImageStore) Open(ctx context.Context, email string) (io.ReadCloser, string, error) {
	cur, err := s.bucket.Find(bson.M{"filename": email})
	if err != nil {
		return nil, "", fmt.Errorf("find image: %w", err)
	}
	defer cur.Close(ctx)

	var file struct {
		ID       interface{} `bson:"_id"`
		Metadata imageMeta   `bson:"metadata"`
	}
	if !cur.Next(ctx) {
		return nil, "", domain.ErrImageNotFound
	}
	if err := cur.Decode(&file); err != nil {
		return nil, "", fmt.Errorf("decode image file: %w", err)
	}

	var buf bytes.Buffer
	if _, err := s.bucket.DownloadToStream(file.ID, &buf); err != nil {
		return nil, "", fmt.Errorf("download image: %w", err)
	}
	return io.NopCloser(&buf), file.Metadata.ContentType, nil
}

func (s *ImageStore) deleteByEmail(ctx context.Context, email string) error {
	cur, err := s.bucket.Find(bson.M{"filename": email})
	if err != nil {
		return fmt.Errorf("find image: %w", err)
	}
	defer cur.Close(ctx)

	for cur.Next(ctx) {
		var file struct {
			ID interface{} `bson:"_id"`
		}
		if err := cur.Decode(&file); err != nil {
			return fmt.Errorf("decode image file: %w", err)
		}
		if err := s.bucket.Delete(file.ID); err != nil {
			return fmt.Errorf("delete image: %w", err)
		}
	}
	return cur.Err()
}
