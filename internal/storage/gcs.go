// Package storage uploads product images to a Google Cloud Storage bucket
// and hands back the public URL that gets stored on the product.
package storage

import (
	"context"
	"fmt"
	"io"

	"cloud.google.com/go/storage"
)

// ImageStore persists product images.
type ImageStore interface {
	// Upload writes the image under objectName and returns its public URL.
	Upload(ctx context.Context, objectName, contentType string, r io.Reader) (string, error)
}

// GCSImageStore stores images in a GCS bucket. Objects are served through
// the bucket's public endpoint, so the bucket must allow public reads.
type GCSImageStore struct {
	client *storage.Client
	bucket string
}

// NewGCSImageStore creates an image store backed by the given bucket.
func NewGCSImageStore(ctx context.Context, bucket string) (*GCSImageStore, error) {
	client, err := storage.NewClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create storage client: %w", err)
	}

	return &GCSImageStore{
		client: client,
		bucket: bucket,
	}, nil
}

// Upload writes the image to the bucket and returns its public URL.
func (s *GCSImageStore) Upload(ctx context.Context, objectName, contentType string, r io.Reader) (string, error) {
	w := s.client.Bucket(s.bucket).Object(objectName).NewWriter(ctx)
	w.ContentType = contentType

	if _, err := io.Copy(w, r); err != nil {
		_ = w.Close()
		return "", fmt.Errorf("failed to write image: %w", err)
	}
	if err := w.Close(); err != nil {
		return "", fmt.Errorf("failed to finish image upload: %w", err)
	}

	return fmt.Sprintf("https://storage.googleapis.com/%s/%s", s.bucket, objectName), nil
}

// Close releases the underlying client.
func (s *GCSImageStore) Close() error {
	return s.client.Close()
}
