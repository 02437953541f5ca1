// Package storage provides an abstraction layer for the artwork object store.
//
// It wraps the MinIO Go client behind a narrow interface covering the
// operations the service needs: bucket checks, object stats and listings, and
// marker uploads. This abstraction supports both AWS S3 and self-hosted MinIO
// instances.
//
// # Client Interface
//
// The Client interface abstracts the underlying storage provider, making it easier
// to mock storage interactions for unit testing (as seen in core/storage/mocks).
//
// # Artwork
//
// ArtworkChecker maps alternate catalog image paths (e.g. "episodes/79824/334426.jpg")
// to object keys under the configured prefix and checks their existence with a
// single StatObject call.
//
// # Usage
//
//	client, err := storage.NewClient(cfg.Storage)
//	artwork := storage.NewArtworkChecker(client, cfg.Storage.Bucket, cfg.Storage.ArtworkPrefix)
//	ok, err := artwork.Exists(ctx, "episodes/79824/334426.jpg")
package storage
