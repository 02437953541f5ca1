package reconcile

// AbsoluteIndex translates a primary episode number into an absolute index of
// the alternate catalog, using the selected cross-reference.
//
//	index = SeasonBase[season] + (number + altStart - 2) - (srcStart - 1)
//
// It reports false when the season is unknown, the index is not positive, or
// the catalog has no episode at that index.
func AbsoluteIndex(ref CrossReference, catalog *AlternateCatalog, number int) (int, bool) {
	if catalog == nil {
		return 0, false
	}
	base, ok := catalog.SeasonBase[ref.AlternateSeason]
	if !ok {
		return 0, false
	}

	idx := base + (number + ref.AlternateStartNumber - 2) - (ref.SourceStartNumber - 1)
	if idx <= 0 {
		return 0, false
	}
	if _, ok := catalog.Episodes[idx]; !ok {
		return 0, false
	}
	return idx, true
}

// Translate resolves the alternate episode for a primary episode number under
// the given cross-reference.
func Translate(ref CrossReference, tctx *TitleContext, number int) (AlternateEpisode, bool) {
	catalog := tctx.Catalog(ref.AlternateID)
	idx, ok := AbsoluteIndex(ref, catalog, number)
	if !ok {
		return AlternateEpisode{}, false
	}
	return catalog.Episodes[idx], true
}
