package reconcile

// Config holds configuration for metadata resolution.
type Config struct {
	// TitleSource selects the preferred episode title source (primary, alternate).
	TitleSource string `mapstructure:"title_source" default:"primary" validate:"oneof=primary alternate"`
}

// Source returns the configured title source, defaulting to the primary catalog.
func (c Config) Source() TitleSource {
	if TitleSource(c.TitleSource) == TitleSourceAlternate {
		return TitleSourceAlternate
	}
	return TitleSourcePrimary
}
