// Package server holds the HTTP server configuration.
//
// The cmd package owns the Fiber application lifecycle. This package only
// describes where it listens, how long it waits on shutdown, and the API key
// that guards feature routes.
package server
