package catalog

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"metadata-bridge/core/database"
	"metadata-bridge/feature/catalog/models"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// Fixture ids. AniDB regular n is 1000+n, special n is 1100+n, credits n is 1200+n.
// TvDB series 500 has season 0 (90001-90002), season 1 (50101-50112) and
// season 2 (50201-50212).
const (
	fixtureAnime    = 10
	unlinkedAnime   = 20
	fixtureSeries   = 500
	overrideEpisode = 1102
)

func setupCatalogDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := database.Connect(database.Config{Driver: "sqlite", Name: ":memory:"})
	require.NoError(t, err)
	require.NoError(t, Migrate(db))

	require.NoError(t, db.Create(&[]models.Anime{
		{AnimeID: fixtureAnime, MainTitle: "Fixture Title", EpisodeCount: 24},
		{AnimeID: unlinkedAnime, MainTitle: "Unlinked", EpisodeCount: 1},
	}).Error)

	var eps []models.Episode
	for n := 1; n <= 24; n++ {
		eps = append(eps, models.Episode{
			EpisodeID: 1000 + n, AnimeID: fixtureAnime, EpisodeNumber: n, EpisodeType: 1,
			RomajiName: fmt.Sprintf("Dai %d wa", n), EnglishName: fmt.Sprintf("Episode %d", n),
		})
	}
	eps = append(eps,
		models.Episode{EpisodeID: 1101, AnimeID: fixtureAnime, EpisodeNumber: 1, EpisodeType: 3, RomajiName: "Tokubetsu 1"},
		models.Episode{EpisodeID: 1102, AnimeID: fixtureAnime, EpisodeNumber: 2, EpisodeType: 3, RomajiName: "Tokubetsu 2"},
		models.Episode{EpisodeID: 1201, AnimeID: fixtureAnime, EpisodeNumber: 1, EpisodeType: 2, RomajiName: "Opening"},
		models.Episode{EpisodeID: 2001, AnimeID: unlinkedAnime, EpisodeNumber: 1, EpisodeType: 1, RomajiName: "Hitori"},
	)
	require.NoError(t, db.Create(&eps).Error)

	var tvdb []models.TvDBEpisode
	for n := 1; n <= 2; n++ {
		tvdb = append(tvdb, models.TvDBEpisode{
			ID: 90000 + n, SeriesID: fixtureSeries, SeasonNumber: 0, EpisodeNumber: n,
			EpisodeName: fmt.Sprintf("Special %d", n),
		})
	}
	for season := 1; season <= 2; season++ {
		for n := 1; n <= 12; n++ {
			id := 50000 + season*100 + n
			row := models.TvDBEpisode{
				ID: id, SeriesID: fixtureSeries, SeasonNumber: season, EpisodeNumber: n,
				EpisodeName: fmt.Sprintf("S%02dE%02d", season, n),
				Overview:    fmt.Sprintf("Overview %d", id),
			}
			if season == 1 {
				row.Filename = fmt.Sprintf("episodes/500/%d.jpg", id)
			}
			tvdb = append(tvdb, row)
		}
	}
	// Season 1 episode 3 has no overview.
	tvdb[4].Overview = ""
	require.NoError(t, db.Create(&tvdb).Error)

	require.NoError(t, db.Create(&[]models.CrossRefTvDB{
		{AnimeID: fixtureAnime, AniDBStartEpisodeType: 1, AniDBStartEpisodeNumber: 1, TvDBID: fixtureSeries, TvDBSeasonNumber: 1, TvDBStartEpisodeNumber: 1},
		{AnimeID: fixtureAnime, AniDBStartEpisodeType: 1, AniDBStartEpisodeNumber: 13, TvDBID: fixtureSeries, TvDBSeasonNumber: 2, TvDBStartEpisodeNumber: 1},
		{AnimeID: fixtureAnime, AniDBStartEpisodeType: 3, AniDBStartEpisodeNumber: 1, TvDBID: fixtureSeries, TvDBSeasonNumber: 0, TvDBStartEpisodeNumber: 1},
	}).Error)

	require.NoError(t, db.Create(&[]models.CrossRefTvDBEpisode{
		{AnimeID: fixtureAnime, AniDBEpisodeID: overrideEpisode, TvDBEpisodeID: 50105},
	}).Error)

	return db
}

// fakeArtwork reports the listed paths as present.
type fakeArtwork struct {
	mu      sync.Mutex
	present map[string]bool
	err     error
	calls   int
}

func (f *fakeArtwork) Exists(ctx context.Context, path string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if f.err != nil {
		return false, f.err
	}
	return f.present[path], nil
}
