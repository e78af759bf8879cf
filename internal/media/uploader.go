// README: Listing image uploads to S3-compatible object storage.
package media

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/rs/zerolog"

	"roamhaven/internal/config"
)

// Uploader stores listing images and returns their public reference.
type Uploader struct {
	client    *minio.Client
	bucket    string
	publicURL string
	log       zerolog.Logger
}

// NewUploader creates an Uploader and ensures the target bucket exists.
func NewUploader(ctx context.Context, client *minio.Client, cfg config.MediaConfig, log zerolog.Logger) (*Uploader, error) {
	err := client.MakeBucket(ctx, cfg.Bucket, minio.MakeBucketOptions{})
	if err != nil {
		exists, existsErr := client.BucketExists(ctx, cfg.Bucket)
		if existsErr != nil || !exists {
			return nil, fmt.Errorf("make/verify bucket %s: %w", cfg.Bucket, err)
		}
	}
	return &Uploader{
		client:    client,
		bucket:    cfg.Bucket,
		publicURL: strings.TrimRight(cfg.PublicURL, "/"),
		log:       log,
	}, nil
}

// Upload stores the image under a unique key and returns the public URL and
// the storage key needed for later deletion.
func (u *Uploader) Upload(ctx context.Context, filename string, r io.Reader, size int64, contentType string) (url, key string, err error) {
	key = "listings/" + uuid.NewString() + filepath.Ext(filename)

	_, err = u.client.PutObject(ctx, u.bucket, key, r, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", "", fmt.Errorf("put object %s: %w", key, err)
	}

	u.log.Debug().Str("key", key).Int64("size", size).Msg("image uploaded")
	return u.publicURL + "/" + key, key, nil
}

// Remove deletes a stored image by its storage key. Missing objects are not
// an error.
func (u *Uploader) Remove(ctx context.Context, key string) error {
	if key == "" {
		return nil
	}
	return u.client.RemoveObject(ctx, u.bucket, key, minio.RemoveObjectOptions{})
}
