package reconcile

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// zeroBasedCatalog builds a catalog with season 1 based at 0 and episodes at
// indexes 0..n-1, matching the worked examples of the index formula.
func zeroBasedCatalog(id, n int) *AlternateCatalog {
	cat := &AlternateCatalog{
		ID:          id,
		SeasonBase:  map[int]int{1: 0},
		Episodes:    make(map[int]AlternateEpisode, n),
		byEpisodeID: make(map[int]AlternateEpisode, n),
	}
	for i := 0; i < n; i++ {
		ep := AlternateEpisode{ID: 5000 + i, SeriesID: id, Season: 1, Number: i + 1, AbsoluteIndex: i}
		cat.Episodes[i] = ep
		cat.byEpisodeID[ep.ID] = ep
	}
	return cat
}

func TestAbsoluteIndex(t *testing.T) {
	cat := zeroBasedCatalog(100, 12)

	tests := []struct {
		name      string
		ref       CrossReference
		number    int
		wantIndex int
		wantFound bool
	}{
		{
			name:      "ScenarioA",
			ref:       CrossReference{SourceStartNumber: 1, SourceStartType: EpisodeTypeRegular, AlternateID: 100, AlternateSeason: 1, AlternateStartNumber: 1},
			number:    5,
			wantIndex: 4,
			wantFound: true,
		},
		{
			name:      "ScenarioB",
			ref:       CrossReference{SourceStartNumber: 1, SourceStartType: EpisodeTypeRegular, AlternateID: 100, AlternateSeason: 1, AlternateStartNumber: 3},
			number:    1,
			wantIndex: 2,
			wantFound: true,
		},
		{
			name:      "ScenarioD_MissingSeason",
			ref:       CrossReference{SourceStartNumber: 1, SourceStartType: EpisodeTypeRegular, AlternateID: 100, AlternateSeason: 2, AlternateStartNumber: 1},
			number:    5,
			wantFound: false,
		},
		{
			name:      "ZeroIndexIsNone",
			ref:       CrossReference{SourceStartNumber: 1, SourceStartType: EpisodeTypeRegular, AlternateID: 100, AlternateSeason: 1, AlternateStartNumber: 1},
			number:    1,
			wantFound: false,
		},
		{
			name:      "PastLastEpisode",
			ref:       CrossReference{SourceStartNumber: 1, SourceStartType: EpisodeTypeRegular, AlternateID: 100, AlternateSeason: 1, AlternateStartNumber: 1},
			number:    13,
			wantFound: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			idx, ok := AbsoluteIndex(tt.ref, cat, tt.number)
			assert.Equal(t, tt.wantFound, ok)
			if tt.wantFound {
				assert.Equal(t, tt.wantIndex, idx)
			}
		})
	}
}

func TestAbsoluteIndex_NilCatalog(t *testing.T) {
	_, ok := AbsoluteIndex(CrossReference{AlternateSeason: 1}, nil, 1)
	assert.False(t, ok)
}

func TestAbsoluteIndex_SecondSeason(t *testing.T) {
	var rows []AlternateEpisode
	for n := 1; n <= 12; n++ {
		rows = append(rows, AlternateEpisode{ID: 100 + n, Season: 1, Number: n})
	}
	for n := 1; n <= 12; n++ {
		rows = append(rows, AlternateEpisode{ID: 200 + n, Season: 2, Number: n})
	}
	cat := NewAlternateCatalog(9, rows)

	// Primary episode 13 starts season 2.
	ref := CrossReference{SourceStartNumber: 13, SourceStartType: EpisodeTypeRegular, AlternateID: 9, AlternateSeason: 2, AlternateStartNumber: 1}

	idx, ok := AbsoluteIndex(ref, cat, 13)
	assert.True(t, ok)
	assert.Equal(t, 13, idx)
	assert.Equal(t, 201, cat.Episodes[idx].ID)

	idx, ok = AbsoluteIndex(ref, cat, 24)
	assert.True(t, ok)
	assert.Equal(t, 212, cat.Episodes[idx].ID)
}

func TestAbsoluteIndex_MonotonicWithinSeason(t *testing.T) {
	var rows []AlternateEpisode
	for n := 1; n <= 26; n++ {
		rows = append(rows, AlternateEpisode{ID: n, Season: 1, Number: n})
	}
	cat := NewAlternateCatalog(1, rows)
	ref := CrossReference{SourceStartNumber: 1, SourceStartType: EpisodeTypeRegular, AlternateID: 1, AlternateSeason: 1, AlternateStartNumber: 1}

	prev := 0
	for n := 1; n <= 26; n++ {
		idx, ok := AbsoluteIndex(ref, cat, n)
		assert.True(t, ok, "episode %d", n)
		assert.Greater(t, idx, prev, "episode %d", n)
		prev = idx
	}
}

func TestTranslate(t *testing.T) {
	tctx := NewTitleContext(1)
	tctx.Catalogs[100] = zeroBasedCatalog(100, 12)

	ref := CrossReference{SourceStartNumber: 1, SourceStartType: EpisodeTypeRegular, AlternateID: 100, AlternateSeason: 1, AlternateStartNumber: 1}

	ep, ok := Translate(ref, tctx, 5)
	assert.True(t, ok)
	assert.Equal(t, 4, ep.AbsoluteIndex)
	assert.Equal(t, 5004, ep.ID)

	t.Run("UnknownCatalog", func(t *testing.T) {
		other := ref
		other.AlternateID = 999
		_, ok := Translate(other, tctx, 5)
		assert.False(t, ok)
	})
}
