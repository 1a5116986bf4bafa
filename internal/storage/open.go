package storage

import (
	"context"
	"fmt"

	"github.com/TiaanDorfling/CampusLearn-HSLS-sub000/config"
)

// Open builds the store selected by upload.backend
func Open(ctx context.Context, cfg config.UploadConfig) (Store, error) {
	switch cfg.Backend {
	case "", "disk":
		return NewDiskStore(cfg.Dir, cfg.PublicPath)
	case "s3":
		client, err := NewS3Client(ctx, cfg.S3)
		if err != nil {
			return nil, fmt.Errorf("init s3 client: %w", err)
		}
		store := NewS3Store(client, cfg.S3)
		if err := store.EnsureBucket(ctx); err != nil {
			return nil, err
		}
		return store, nil
	default:
		return nil, fmt.Errorf("unknown upload backend %q", cfg.Backend)
	}
}
