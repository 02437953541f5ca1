package catalog

import (
	"context"
	"errors"
	"testing"

	"metadata-bridge/core/reconcile"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("Failed to open mock sql db: %v", err)
	}

	dialector := mysql.New(mysql.Config{
		Conn:                      db,
		SkipInitializeWithVersion: true,
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to open gorm db: %v", err)
	}

	return gormDB, mock
}

func TestStore_LoadCrossReferences_Mock(t *testing.T) {
	db, mock := setupMockDB(t)
	store := NewStore(db)

	rows := sqlmock.NewRows([]string{"id", "anime_id", "anidb_start_episode_type", "anidb_start_episode_number", "tvdb_id", "tvdb_season_number", "tvdb_start_episode_number"}).
		AddRow(1, 10, 1, 1, 500, 1, 1).
		AddRow(2, 10, 1, 13, 500, 2, 1)
	mock.ExpectQuery("SELECT \\* FROM `crossref_anidb_tvdb_v2` WHERE anime_id = \\? ORDER BY id").
		WithArgs(10).
		WillReturnRows(rows)

	refs, err := store.LoadCrossReferences(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, refs, 2)
	assert.Equal(t, 13, refs[1].SourceStartNumber)
	assert.Equal(t, reconcile.EpisodeTypeRegular, refs[1].SourceStartType)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStore_LoadAlternateEpisodes_MockError(t *testing.T) {
	db, mock := setupMockDB(t)
	store := NewStore(db)

	boom := errors.New("connection refused")
	mock.ExpectQuery("SELECT \\* FROM `tvdb_episode`").WillReturnError(boom)

	_, err := store.LoadAlternateEpisodes(context.Background(), 500)
	assert.ErrorIs(t, err, boom)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStore_GetEpisode_MockNotFound(t *testing.T) {
	db, mock := setupMockDB(t)
	store := NewStore(db)

	mock.ExpectQuery("SELECT \\* FROM `anidb_episode` WHERE episode_id = \\?").
		WillReturnRows(sqlmock.NewRows([]string{"episode_id"}))

	_, err := store.GetEpisode(context.Background(), 404)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStore_SQLite(t *testing.T) {
	store := NewStore(setupCatalogDB(t))
	ctx := context.Background()

	t.Run("GetAnime", func(t *testing.T) {
		anime, err := store.GetAnime(ctx, fixtureAnime)
		require.NoError(t, err)
		assert.Equal(t, "Fixture Title", anime.MainTitle)

		_, err = store.GetAnime(ctx, 999)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("GetEpisode", func(t *testing.T) {
		ep, err := store.GetEpisode(ctx, 1005)
		require.NoError(t, err)
		assert.Equal(t, 5, ep.Number)
		assert.Equal(t, "Episode 5", ep.DefaultTitle())
	})

	t.Run("GetEpisodesByAnime", func(t *testing.T) {
		eps, err := store.GetEpisodesByAnime(ctx, fixtureAnime)
		require.NoError(t, err)
		assert.Len(t, eps, 27)
		assert.Equal(t, 1001, eps[0].ID)
	})

	t.Run("LoadCrossReferences", func(t *testing.T) {
		refs, err := store.LoadCrossReferences(ctx, fixtureAnime)
		require.NoError(t, err)
		assert.Len(t, refs, 3)

		refs, err = store.LoadCrossReferences(ctx, unlinkedAnime)
		require.NoError(t, err)
		assert.Empty(t, refs)
	})

	t.Run("LoadOverrides", func(t *testing.T) {
		overrides, err := store.LoadOverrides(ctx, fixtureAnime)
		require.NoError(t, err)
		assert.Equal(t, []reconcile.Override{{EpisodeID: overrideEpisode, AlternateEpisodeID: 50105}}, overrides)
	})

	t.Run("LoadAlternateEpisodes", func(t *testing.T) {
		eps, err := store.LoadAlternateEpisodes(ctx, fixtureSeries)
		require.NoError(t, err)
		require.Len(t, eps, 26)
		assert.Equal(t, 90001, eps[0].ID)
		assert.Equal(t, 50212, eps[25].ID)
	})
}
