// Package storage keeps pet photos on local disk or in an S3 bucket.
package storage

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/pet-shelter/internal/config"
)

type Storage interface {
	// Put stores body under key and returns the public URL.
	Put(ctx context.Context, key string, body []byte, contentType string) (string, error)

	// Delete removes an object previously returned by Put. URLs the storage
	// does not own are ignored.
	Delete(ctx context.Context, url string) error

	Owns(url string) bool
}

func New(ctx context.Context, cfg *config.Config) (Storage, error) {
	switch cfg.StorageDriver {
	case "s3":
		return NewS3(ctx, S3Options{
			Bucket:    cfg.S3Bucket,
			Region:    cfg.S3Region,
			Endpoint:  cfg.S3Endpoint,
			AccessKey: cfg.S3AccessKey,
			SecretKey: cfg.S3SecretKey,
			PublicURL: cfg.S3PublicURL,
		})
	case "local", "":
		return NewLocal(cfg.UploadDir, cfg.UploadURLPrefix)
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.StorageDriver)
	}
}

// NewKey returns a collision-free object name for a processed photo.
func NewKey() string {
	return uuid.NewString() + ".webp"
}
