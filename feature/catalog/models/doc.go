// Package models defines the gorm mappings for the catalog tables and their
// conversions into the resolution types of core/reconcile.
//
// Table names follow the source catalogs: anidb_* for the primary catalog,
// tvdb_* for the alternate catalog, crossref_* for the linkage between them.
package models
