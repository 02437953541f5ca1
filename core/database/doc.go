// Package database handles catalog database connections and schema inspection.
//
// It provides a wrapper around GORM to configure MySQL (production) or SQLite
// (local files and tests) connections from the application's configuration.
//
// # Connect
//
// Connect opens the connection, applies pool settings and pings the server
// within the configured timeout.
//
// # Schema Inspection
//
// GetTableColumns returns the live column definitions of a table. The schema
// integrity check compares them with the catalog models.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    log.Fatal("Database connection failed", err)
//	}
//
//	columns, err := database.GetTableColumns(db, "anidb_episode")
package database
