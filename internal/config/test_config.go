package config

import "time"

// TestConfig returns a config suitable for testing
func TestConfig() *Config {
	return &Config{
		Database: DatabaseConfig{
			Path:    ":memory:", // Use in-memory database for tests
			Timeout: 1 * time.Second,
		},
		Truncate: TruncateConfig{
			Lines:     2,
			End:       5,
			Separator: " ",
			Ellipsis:  "…",
		},
		UI:   defaultConfig().UI,
		Keys: defaultConfig().Keys,
	}
}
