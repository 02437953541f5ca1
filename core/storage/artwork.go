package storage

import (
	"context"
	"fmt"
	"net/http"
	"path"
	"strings"

	"metadata-bridge/core/metrics"

	"github.com/minio/minio-go/v7"
)

// ArtworkChecker answers whether an alternate catalog image exists in the bucket.
type ArtworkChecker struct {
	client Client
	bucket string
	prefix string
}

// NewArtworkChecker creates a checker resolving image paths under prefix.
func NewArtworkChecker(client Client, bucket, prefix string) *ArtworkChecker {
	return &ArtworkChecker{
		client: client,
		bucket: bucket,
		prefix: strings.Trim(prefix, "/"),
	}
}

// Bucket returns the bucket artwork is read from.
func (a *ArtworkChecker) Bucket() string {
	return a.bucket
}

// Prefix returns the key prefix image paths resolve under.
func (a *ArtworkChecker) Prefix() string {
	return a.prefix
}

// ObjectKey maps an image path to its object key.
func (a *ArtworkChecker) ObjectKey(imagePath string) string {
	p := strings.TrimLeft(strings.ReplaceAll(imagePath, "\\", "/"), "/")
	if a.prefix == "" {
		return path.Clean(p)
	}
	return path.Join(a.prefix, p)
}

// Exists reports whether the image object is present. A missing object is
// (false, nil); any other storage failure is returned as an error.
func (a *ArtworkChecker) Exists(ctx context.Context, imagePath string) (bool, error) {
	if strings.TrimSpace(imagePath) == "" {
		return false, nil
	}

	found, err := a.stat(ctx, a.ObjectKey(imagePath))
	metrics.RecordArtworkLookup(found, err)
	return found, err
}

func (a *ArtworkChecker) stat(ctx context.Context, key string) (bool, error) {
	_, err := a.client.StatObject(ctx, a.bucket, key, minio.StatObjectOptions{})
	if err == nil {
		return true, nil
	}

	resp := minio.ToErrorResponse(err)
	if resp.Code == "NoSuchKey" || resp.StatusCode == http.StatusNotFound {
		return false, nil
	}
	return false, fmt.Errorf("stat artwork %s: %w", key, err)
}
