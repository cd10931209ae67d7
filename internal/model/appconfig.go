package model

// AppConfig holds application-wide preferences and default settings.
type AppConfig struct {
	// Defaults applied to new manifests
	DefaultContainer          [3]float64        `json:"default_container"`
	DefaultWeightLimit        *float64          `json:"default_weight_limit,omitempty"`
	DefaultMissingWeightLimit WeightLimitPolicy `json:"default_missing_weight_limit"`

	// Application preferences
	OutputDir       string   `json:"output_dir"` // Where exports go when no path is given
	RecentManifests []string `json:"recent_manifests"`
	Theme           string   `json:"theme"` // "light", "dark", "system"
}

// DefaultAppConfig returns an AppConfig populated with sensible defaults:
// a 20ft container interior in millimetres and the zero weight policy.
func DefaultAppConfig() AppConfig {
	limit := 28200.0
	return AppConfig{
		DefaultContainer:          [3]float64{5898, 2352, 2393},
		DefaultWeightLimit:        &limit,
		DefaultMissingWeightLimit: DefaultSettings().MissingWeightLimit,
		OutputDir:                 ".",
		RecentManifests:           []string{},
		Theme:                     "system",
	}
}

// ApplyToManifest fills a new manifest with the configured defaults.
func (c AppConfig) ApplyToManifest(m *Manifest) {
	m.Container = NewContainer("Default", c.DefaultContainer, c.DefaultWeightLimit)
	m.Settings.MissingWeightLimit = c.DefaultMissingWeightLimit
}

// AddRecent puts path at the front of the recent list, dropping duplicates
// and keeping at most max entries.
func (c *AppConfig) AddRecent(path string, max int) {
	recent := []string{path}
	for _, p := range c.RecentManifests {
		if p != path {
			recent = append(recent, p)
		}
	}
	if len(recent) > max {
		recent = recent[:max]
	}
	c.RecentManifests = recent
}
