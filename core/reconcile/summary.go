package reconcile

import (
	"context"
	"fmt"
	"sort"

	"go.uber.org/zap"
)

// Source is the read side of the alternate catalog store for one primary title.
type Source interface {
	// LoadCrossReferences returns the range cross-references of a title.
	LoadCrossReferences(ctx context.Context, animeID int) ([]CrossReference, error)
	// LoadOverrides returns the direct episode overrides of a title.
	LoadOverrides(ctx context.Context, animeID int) ([]Override, error)
	// LoadAlternateEpisodes returns every episode of an alternate catalog series.
	LoadAlternateEpisodes(ctx context.Context, seriesID int) ([]AlternateEpisode, error)
}

// AlternateCatalog is the in-memory summary of one alternate catalog series.
type AlternateCatalog struct {
	// ID is the alternate catalog series ID.
	ID int
	// SeasonBase maps a season number to the absolute index of its first episode.
	SeasonBase map[int]int
	// Episodes maps an absolute index to its episode.
	Episodes map[int]AlternateEpisode

	byEpisodeID map[int]AlternateEpisode
}

// NewAlternateCatalog orders the rows by season then episode number, assigns
// 1-based absolute indexes and records where every season starts.
// Season 0 (specials) sorts first like any other season.
func NewAlternateCatalog(id int, rows []AlternateEpisode) *AlternateCatalog {
	eps := make([]AlternateEpisode, len(rows))
	copy(eps, rows)
	sort.SliceStable(eps, func(i, j int) bool {
		if eps[i].Season != eps[j].Season {
			return eps[i].Season < eps[j].Season
		}
		return eps[i].Number < eps[j].Number
	})

	cat := &AlternateCatalog{
		ID:          id,
		SeasonBase:  make(map[int]int),
		Episodes:    make(map[int]AlternateEpisode, len(eps)),
		byEpisodeID: make(map[int]AlternateEpisode, len(eps)),
	}

	for i, ep := range eps {
		idx := i + 1
		ep.AbsoluteIndex = idx
		if _, seen := cat.SeasonBase[ep.Season]; !seen {
			cat.SeasonBase[ep.Season] = idx
		}
		cat.Episodes[idx] = ep
		cat.byEpisodeID[ep.ID] = ep
	}

	return cat
}

// EpisodeByID looks up an episode by its alternate catalog ID.
func (c *AlternateCatalog) EpisodeByID(id int) (AlternateEpisode, bool) {
	if c == nil {
		return AlternateEpisode{}, false
	}
	ep, ok := c.byEpisodeID[id]
	return ep, ok
}

// TitleContext bundles the per-title data reused across every episode of the title.
type TitleContext struct {
	AnimeID         int
	Catalogs        map[int]*AlternateCatalog
	CrossReferences []CrossReference
	Overrides       map[int]int
}

// NewTitleContext returns an empty context for a title with no linkage.
func NewTitleContext(animeID int) *TitleContext {
	return &TitleContext{
		AnimeID:   animeID,
		Catalogs:  make(map[int]*AlternateCatalog),
		Overrides: make(map[int]int),
	}
}

// Catalog returns the summary for an alternate catalog series, or nil.
func (t *TitleContext) Catalog(seriesID int) *AlternateCatalog {
	if t == nil {
		return nil
	}
	return t.Catalogs[seriesID]
}

// OverrideEpisode returns the alternate episode an override points at, searching
// every catalog linked to the title.
func (t *TitleContext) OverrideEpisode(episodeID int) (AlternateEpisode, bool) {
	if t == nil {
		return AlternateEpisode{}, false
	}
	altID, ok := t.Overrides[episodeID]
	if !ok {
		return AlternateEpisode{}, false
	}
	for _, id := range t.catalogIDs() {
		if ep, ok := t.Catalogs[id].EpisodeByID(altID); ok {
			return ep, true
		}
	}
	return AlternateEpisode{}, false
}

func (t *TitleContext) catalogIDs() []int {
	ids := make([]int, 0, len(t.Catalogs))
	for id := range t.Catalogs {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

// BuildTitleContext loads and summarises the alternate catalog data of one title.
// A title without cross-references yields an empty context. Store errors are
// returned as-is, wrapped with the title ID.
func BuildTitleContext(ctx context.Context, src Source, animeID int, logger *zap.Logger) (*TitleContext, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	tctx := NewTitleContext(animeID)

	refs, err := src.LoadCrossReferences(ctx, animeID)
	if err != nil {
		return nil, fmt.Errorf("load cross references for anime %d: %w", animeID, err)
	}
	tctx.CrossReferences = refs

	overrides, err := src.LoadOverrides(ctx, animeID)
	if err != nil {
		return nil, fmt.Errorf("load overrides for anime %d: %w", animeID, err)
	}
	for _, o := range overrides {
		tctx.Overrides[o.EpisodeID] = o.AlternateEpisodeID
	}

	for _, ref := range refs {
		if _, done := tctx.Catalogs[ref.AlternateID]; done {
			continue
		}
		rows, err := src.LoadAlternateEpisodes(ctx, ref.AlternateID)
		if err != nil {
			return nil, fmt.Errorf("load alternate episodes for series %d: %w", ref.AlternateID, err)
		}
		tctx.Catalogs[ref.AlternateID] = NewAlternateCatalog(ref.AlternateID, rows)
	}

	if dups := DuplicateStarts(refs); len(dups) > 0 {
		logger.Debug("Ambiguous cross reference starts, first match wins",
			zap.Int("anime_id", animeID),
			zap.Any("duplicates", dups),
		)
	}

	return tctx, nil
}

// DuplicateStart describes cross-references sharing a start number within one type.
type DuplicateStart struct {
	Type   EpisodeType `json:"type"`
	Number int         `json:"number"`
	Count  int         `json:"count"`
}

// DuplicateStarts lists start numbers used more than once per episode type.
func DuplicateStarts(refs []CrossReference) []DuplicateStart {
	type key struct {
		t EpisodeType
		n int
	}
	counts := make(map[key]int)
	var order []key
	for _, r := range refs {
		k := key{r.SourceStartType, r.SourceStartNumber}
		if counts[k] == 0 {
			order = append(order, k)
		}
		counts[k]++
	}

	var out []DuplicateStart
	for _, k := range order {
		if counts[k] > 1 {
			out = append(out, DuplicateStart{Type: k.t, Number: k.n, Count: counts[k]})
		}
	}
	return out
}
