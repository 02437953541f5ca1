package reconcile

import "sort"

// SelectCrossReference returns the cross-reference whose range contains the
// given episode: among records of the same type, the one with the highest
// start number not exceeding number.
//
// Records sharing a start number keep their input order, so the first one
// supplied wins.
func SelectCrossReference(number int, episodeType EpisodeType, refs []CrossReference) (CrossReference, bool) {
	candidates := make([]CrossReference, 0, len(refs))
	for _, r := range refs {
		if r.SourceStartType == episodeType {
			candidates = append(candidates, r)
		}
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].SourceStartNumber > candidates[j].SourceStartNumber
	})

	for _, r := range candidates {
		if r.SourceStartNumber <= number {
			return r, true
		}
	}
	return CrossReference{}, false
}
