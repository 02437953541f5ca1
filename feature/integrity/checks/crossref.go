package checks

import (
	"sort"

	"metadata-bridge/core/reconcile"
)

// SeasonRef names a season of an alternate catalog.
type SeasonRef struct {
	SeriesID int `json:"tvdb_id"`
	Season   int `json:"season"`
}

// CrossRefReport lists linkage problems for one title. Resolution still
// works when problems exist; affected episodes fall back to their defaults.
type CrossRefReport struct {
	AnimeID int `json:"anime_id"`
	// Duplicates are range starts claimed by more than one record of a type.
	Duplicates []reconcile.DuplicateStart `json:"duplicates"`
	// UnknownCatalogs are referenced series with no episodes.
	UnknownCatalogs []int `json:"unknown_catalogs"`
	// MissingSeasons are referenced seasons absent from their series.
	MissingSeasons []SeasonRef `json:"missing_seasons"`
	// DanglingOverrides are primary episodes overridden to an unknown target.
	DanglingOverrides []int `json:"dangling_overrides"`
	OK                bool  `json:"ok"`
}

// CheckCrossReferences inspects a built title context.
func CheckCrossReferences(tctx *reconcile.TitleContext) *CrossRefReport {
	report := &CrossRefReport{
		AnimeID:           tctx.AnimeID,
		Duplicates:        reconcile.DuplicateStarts(tctx.CrossReferences),
		UnknownCatalogs:   []int{},
		MissingSeasons:    []SeasonRef{},
		DanglingOverrides: []int{},
	}
	if report.Duplicates == nil {
		report.Duplicates = []reconcile.DuplicateStart{}
	}

	unknown := map[int]bool{}
	missing := map[SeasonRef]bool{}
	for _, ref := range tctx.CrossReferences {
		cat := tctx.Catalog(ref.AlternateID)
		if cat == nil || len(cat.Episodes) == 0 {
			unknown[ref.AlternateID] = true
			continue
		}
		if _, ok := cat.SeasonBase[ref.AlternateSeason]; !ok {
			missing[SeasonRef{SeriesID: ref.AlternateID, Season: ref.AlternateSeason}] = true
		}
	}

	for id := range unknown {
		report.UnknownCatalogs = append(report.UnknownCatalogs, id)
	}
	sort.Ints(report.UnknownCatalogs)

	for sr := range missing {
		report.MissingSeasons = append(report.MissingSeasons, sr)
	}
	sort.Slice(report.MissingSeasons, func(i, j int) bool {
		a, b := report.MissingSeasons[i], report.MissingSeasons[j]
		if a.SeriesID != b.SeriesID {
			return a.SeriesID < b.SeriesID
		}
		return a.Season < b.Season
	})

	for episodeID := range tctx.Overrides {
		if _, ok := tctx.OverrideEpisode(episodeID); !ok {
			report.DanglingOverrides = append(report.DanglingOverrides, episodeID)
		}
	}
	sort.Ints(report.DanglingOverrides)

	report.OK = len(report.Duplicates) == 0 &&
		len(report.UnknownCatalogs) == 0 &&
		len(report.MissingSeasons) == 0 &&
		len(report.DanglingOverrides) == 0

	return report
}
