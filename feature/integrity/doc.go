// Package integrity provides health checks for the metadata bridge.
//
// The checks are diagnostic. Resolution never consults them and keeps working
// with degraded data; these endpoints tell an operator what to repair.
//
// # Checks Provided
//
//   - Structure: the artwork bucket exists and has the expected folders under the artwork prefix.
//   - Schema: the catalog tables match the gorm models (missing tables, columns and type mismatches).
//   - CrossRef: for one title, duplicate range starts, references to unknown TvDB
//     series or seasons, and overrides pointing at unknown episodes.
//
// # HTTP Endpoints
//
//   - GET /integrity : Runs structure and schema checks.
//   - GET /integrity/structure : Runs structure check (supports ?fix=true).
//   - GET /integrity/schema : Runs schema check.
//   - GET /integrity/crossref/:animeId : Runs the cross reference check for a title.
package integrity
