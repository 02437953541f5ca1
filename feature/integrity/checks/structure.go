package checks

import (
	"bytes"
	"context"
	"fmt"
	"path"
	"strings"

	"metadata-bridge/core/storage"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

// ArtworkFolders lists the folders that must exist under the artwork prefix.
var ArtworkFolders = []string{"episodes"}

// RequiredFolders returns the folder keys expected under prefix, each with a
// trailing slash.
func RequiredFolders(prefix string) []string {
	prefix = strings.Trim(prefix, "/")
	out := make([]string, 0, len(ArtworkFolders))
	for _, folder := range ArtworkFolders {
		out = append(out, path.Join(prefix, folder)+"/")
	}
	return out
}

// CheckStructure returns the artwork folders missing from the bucket.
func CheckStructure(ctx context.Context, client storage.Client, bucket, prefix string) ([]string, error) {
	exists, err := client.BucketExists(ctx, bucket)
	if err != nil {
		return nil, fmt.Errorf("failed to check bucket existence: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("bucket %s does not exist", bucket)
	}

	missing := []string{}
	for _, folder := range RequiredFolders(prefix) {
		opts := minio.ListObjectsOptions{
			Prefix:    folder,
			Recursive: false,
			MaxKeys:   1,
		}

		found := false
		for obj := range client.ListObjects(ctx, bucket, opts) {
			if obj.Err != nil {
				return nil, fmt.Errorf("list %s: %w", folder, obj.Err)
			}
			found = true
			break
		}

		if !found {
			missing = append(missing, folder)
		}
	}

	return missing, nil
}

// FixStructure creates a zero-byte marker for each missing folder.
func FixStructure(ctx context.Context, client storage.Client, bucket string, logger *zap.Logger, missing []string) error {
	for _, folder := range missing {
		key := folder
		if !strings.HasSuffix(key, "/") {
			key += "/"
		}

		_, err := client.PutObject(ctx, bucket, key, bytes.NewReader(nil), 0, minio.PutObjectOptions{})
		if err != nil {
			logger.Error("Failed to create folder", zap.String("folder", key), zap.Error(err))
			return fmt.Errorf("create folder %s: %w", key, err)
		}
		logger.Info("Created missing folder", zap.String("folder", key))
	}
	return nil
}
