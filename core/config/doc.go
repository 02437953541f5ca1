// Package config loads application configuration for the metadata bridge.
//
// Values come from environment variables, optionally seeded from a .env file.
// Defaults are declared next to each field with a `default` tag and the result
// is checked against its `validate` tags before it is returned.
//
// # Configuration Structure
//
//   - Server: listen address, API key, shutdown window, metrics toggle
//   - Database: catalog connection (mysql or sqlite)
//   - Storage: MinIO/S3 credentials, artwork bucket and prefix
//   - Log: level and format
//   - Metadata: preferred episode title source
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Server.Addr())
package config
