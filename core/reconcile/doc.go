// Package reconcile resolves primary catalog (AniDB) episodes to alternate
// catalog (TvDB) episodes and merges their metadata.
//
// Primary and alternate catalogs number the same content differently: the
// primary catalog counts episodes per title and type, the alternate one per
// season. Cross-reference records map ranges of primary numbers onto
// alternate seasons, and overrides pin single episodes directly.
//
// # Pipeline
//
//  1. Builder / BuildTitleContext: loads cross-references, overrides and
//     alternate episodes of one title into a TitleContext. Built once per
//     title and reused for all its episodes.
//  2. SelectCrossReference: picks the record with the highest start number
//     not exceeding the episode number, within the same episode type.
//  3. AbsoluteIndex / Translate: maps the episode number into the flattened,
//     1-based episode list of the alternate catalog.
//  4. Policy: applies overrides first, falls back to 2+3, and merges the
//     overview, artwork and (optionally) title.
//
// # Absence
//
// Missing cross-references, seasons or episodes are normal. Every stage
// reports them as a "not found" value (false, PathNone) and the merge step
// leaves the caller's defaults in place. Only store failures surface as
// errors, and only from the builder.
//
// # Usage
//
//	builder := reconcile.NewBuilder(store, logger)
//	tctx, err := builder.Build(ctx, animeID)
//	if err != nil {
//	    return err
//	}
//	policy := reconcile.NewPolicy(reconcile.TitleSourceAlternate, artwork, logger)
//	meta, match := policy.Resolve(ctx, episode, tctx)
package reconcile
