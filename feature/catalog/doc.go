// Package catalog serves AniDB episode metadata enriched from linked TvDB series.
//
// The Store reads the catalog tables through gorm and feeds core/reconcile,
// which builds a per-title summary and resolves each episode. A title with no
// linkage resolves to its AniDB defaults rather than failing.
//
// # HTTP Endpoints
//
//   - GET /episodes/:id : Resolves one AniDB episode.
//   - GET /anime/:id/episodes : Resolves every episode of a title, ordered by type then number.
package catalog
