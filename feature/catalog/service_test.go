package catalog

import (
	"context"
	"errors"
	"testing"

	"metadata-bridge/core/reconcile"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func setupService(t *testing.T, titleSource reconcile.TitleSource, art reconcile.ArtworkChecker) *Service {
	t.Helper()
	return NewService(NewStore(setupCatalogDB(t)), art, titleSource, zap.NewNop())
}

func TestService_GetEpisodeMetadata(t *testing.T) {
	art := &fakeArtwork{present: map[string]bool{"episodes/500/50105.jpg": true}}
	svc := setupService(t, reconcile.TitleSourcePrimary, art)
	ctx := context.Background()

	tests := []struct {
		name      string
		episodeID int
		title     string
		overview  string
		image     reconcile.ImageRef
		source    string
		altID     int
	}{
		{"RegularFirstSeason", 1005, "Episode 5", "Overview 50105", reconcile.ImageRef{Kind: reconcile.ImageKindTvDBEpisode, ID: 50105}, "regular", 50105},
		{"RegularMissingArtwork", 1004, "Episode 4", "Overview 50104", reconcile.ImageNone, "regular", 50104},
		{"EmptyOverviewPlaceholder", 1003, "Episode 3", reconcile.OverviewPlaceholder, reconcile.ImageNone, "regular", 50103},
		{"SecondSeasonBoundary", 1013, "Episode 13", "Overview 50201", reconcile.ImageNone, "regular", 50201},
		{"Special", 1101, "Tokubetsu 1", "", reconcile.ImageNone, "special", 90001},
		{"OverrideWins", overrideEpisode, "Tokubetsu 2", "Overview 50105", reconcile.ImageRef{Kind: reconcile.ImageKindTvDBEpisode, ID: 50105}, "override", 50105},
		{"NotMappable", 1201, "Opening", "", reconcile.ImageNone, "none", 0},
		{"Unlinked", 2001, "Hitori", "", reconcile.ImageNone, "none", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			md, err := svc.GetEpisodeMetadata(ctx, tt.episodeID)
			require.NoError(t, err)
			assert.Equal(t, tt.title, md.Title)
			assert.Equal(t, tt.overview, md.Overview)
			assert.Equal(t, tt.image, md.Image)
			assert.Equal(t, tt.source, md.Source)
			assert.Equal(t, tt.altID, md.AlternateEpisodeID)
		})
	}
}

func TestService_GetEpisodeMetadata_AlternateTitles(t *testing.T) {
	svc := setupService(t, reconcile.TitleSourceAlternate, nil)

	md, err := svc.GetEpisodeMetadata(context.Background(), 1014)
	require.NoError(t, err)
	assert.Equal(t, "S02E02", md.Title)
	assert.Equal(t, 2, md.AlternateSeason)
	assert.Equal(t, 2, md.AlternateNumber)

	// Unresolved episodes keep the primary title.
	md, err = svc.GetEpisodeMetadata(context.Background(), 1201)
	require.NoError(t, err)
	assert.Equal(t, "Opening", md.Title)
}

func TestService_GetEpisodeMetadata_ArtworkError(t *testing.T) {
	art := &fakeArtwork{err: errors.New("storage offline")}
	svc := setupService(t, reconcile.TitleSourcePrimary, art)

	md, err := svc.GetEpisodeMetadata(context.Background(), 1005)
	require.NoError(t, err)
	assert.Equal(t, reconcile.ImageNone, md.Image)
	assert.Equal(t, "regular", md.Source)
}

func TestService_GetEpisodeMetadata_NotFound(t *testing.T) {
	svc := setupService(t, reconcile.TitleSourcePrimary, nil)

	_, err := svc.GetEpisodeMetadata(context.Background(), 404)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestService_GetAnimeEpisodes(t *testing.T) {
	art := &fakeArtwork{present: map[string]bool{}}
	svc := setupService(t, reconcile.TitleSourcePrimary, art)

	list, err := svc.GetAnimeEpisodes(context.Background(), fixtureAnime)
	require.NoError(t, err)

	assert.Equal(t, fixtureAnime, list.AnimeID)
	assert.Equal(t, "Fixture Title", list.MainTitle)
	require.Len(t, list.Episodes, 27)

	// Ordered by type then number: regulars, then credits, then specials.
	assert.Equal(t, 1001, list.Episodes[0].EpisodeID)
	assert.Equal(t, 1024, list.Episodes[23].EpisodeID)
	assert.Equal(t, "credits", list.Episodes[24].Type)
	assert.Equal(t, 1101, list.Episodes[25].EpisodeID)
	assert.Equal(t, 1102, list.Episodes[26].EpisodeID)

	for _, ep := range list.Episodes[:24] {
		assert.Equal(t, "regular", ep.Source, "episode %d", ep.EpisodeID)
		assert.NotZero(t, ep.AlternateEpisodeID)
	}
	assert.Equal(t, 50212, list.Episodes[23].AlternateEpisodeID)
	assert.Equal(t, "override", list.Episodes[26].Source)

	// Only season 1 rows carry image paths: twelve regulars plus the override.
	assert.Equal(t, 13, art.calls)
}

func TestService_GetAnimeEpisodes_NotFound(t *testing.T) {
	svc := setupService(t, reconcile.TitleSourcePrimary, nil)

	_, err := svc.GetAnimeEpisodes(context.Background(), 999)
	assert.ErrorIs(t, err, ErrNotFound)
}
