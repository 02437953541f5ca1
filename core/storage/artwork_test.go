package storage_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"metadata-bridge/core/storage"
	"metadata-bridge/core/storage/mocks"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestArtworkChecker_ObjectKey(t *testing.T) {
	tests := []struct {
		name   string
		prefix string
		path   string
		want   string
	}{
		{"WithPrefix", "tvdb", "episodes/79824/334426.jpg", "tvdb/episodes/79824/334426.jpg"},
		{"LeadingSlash", "/tvdb/", "/episodes/1/2.jpg", "tvdb/episodes/1/2.jpg"},
		{"Backslashes", "tvdb", `episodes\1\2.jpg`, "tvdb/episodes/1/2.jpg"},
		{"NoPrefix", "", "episodes/1/2.jpg", "episodes/1/2.jpg"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := storage.NewArtworkChecker(new(mocks.Client), "artwork", tt.prefix)
			assert.Equal(t, tt.want, c.ObjectKey(tt.path))
		})
	}
}

func TestArtworkChecker_Exists(t *testing.T) {
	ctx := context.Background()

	t.Run("Present", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("StatObject", mock.Anything, "artwork", "tvdb/episodes/1/2.jpg", mock.Anything).
			Return(minio.ObjectInfo{Key: "tvdb/episodes/1/2.jpg", Size: 1024}, nil)

		ok, err := storage.NewArtworkChecker(client, "artwork", "tvdb").Exists(ctx, "episodes/1/2.jpg")
		require.NoError(t, err)
		assert.True(t, ok)
		client.AssertExpectations(t)
	})

	t.Run("NoSuchKey", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("StatObject", mock.Anything, "artwork", mock.Anything, mock.Anything).
			Return(minio.ObjectInfo{}, minio.ErrorResponse{Code: "NoSuchKey", StatusCode: http.StatusNotFound})

		ok, err := storage.NewArtworkChecker(client, "artwork", "tvdb").Exists(ctx, "episodes/1/404.jpg")
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("StorageFailure", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("StatObject", mock.Anything, "artwork", mock.Anything, mock.Anything).
			Return(minio.ObjectInfo{}, errors.New("connection refused"))

		ok, err := storage.NewArtworkChecker(client, "artwork", "tvdb").Exists(ctx, "episodes/1/2.jpg")
		assert.Error(t, err)
		assert.False(t, ok)
	})

	t.Run("EmptyPath", func(t *testing.T) {
		client := new(mocks.Client)

		ok, err := storage.NewArtworkChecker(client, "artwork", "tvdb").Exists(ctx, "  ")
		require.NoError(t, err)
		assert.False(t, ok)
		client.AssertNotCalled(t, "StatObject", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}
