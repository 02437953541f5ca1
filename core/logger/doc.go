// Package logger builds the zap logger used by every command and feature.
//
// The level and encoding come from the `log` config section. Level "debug"
// selects zap's development config; any other level uses the production
// config with the requested level.
//
// WithRayID binds the request ray id set by the rayid middleware, so lines
// logged while resolving one request can be grouped.
//
//	log, err := logger.New(&logger.Config{Level: "info", Format: "json"})
//	if err != nil {
//	    return err
//	}
//	l := logger.WithRayID(log, c)
//	l.Warn("Episode not found", zap.Int("episode_id", id))
package logger
