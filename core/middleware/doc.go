// Package middleware groups the HTTP middleware for the Fiber application.
//
//   - auth: API key validation on feature routes.
//   - rayid: per-request ray id, stored in locals and echoed in X-Ray-ID.
//
// The start command registers rayid first so every log line can carry it.
package middleware
