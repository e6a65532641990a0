package apps

import (
	"strconv"
	"strings"
)

// Config holds configuration for one consumer application.
type Config struct {
	// URL is the base URL of the consumer instance.
	URL string `mapstructure:"url" default:""`
	// ApiKey is the consumer's API key.
	ApiKey string `mapstructure:"api_key" default:""`
	// Categories is a comma-separated list of wanted category ids.
	// If empty, the consumer variant's default set is used.
	Categories string `mapstructure:"categories" default:""`
	// AnimeCategories is a comma-separated list of wanted anime category ids.
	// Only meaningful for consumers that have the concept (sonarr).
	AnimeCategories string `mapstructure:"anime_categories" default:""`
	// SeedRatio is forwarded verbatim into the seed criteria of created
	// records. Opaque to the reconciliation logic.
	SeedRatio string `mapstructure:"seed_ratio" default:""`
	// MinimumSeeders is forwarded into created records.
	MinimumSeeders int `mapstructure:"minimum_seeders" default:"1"`
	// TimeoutSeconds is the request timeout in seconds.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
}

// IsConfigured reports whether both URL and API key are set. Unconfigured
// consumers are skipped by the sync.
func (c Config) IsConfigured() bool {
	return c.URL != "" && c.ApiKey != ""
}

// BaseURL returns the base URL without a trailing slash.
func (c Config) BaseURL() string {
	return strings.TrimRight(c.URL, "/")
}

// wantedCategories parses the configured category list, falling back to the
// variant's defaults when none are configured. Unparsable entries are dropped.
func (c Config) wantedCategories(defaults []int) []int {
	parsed := parseCSVInts(c.Categories)
	if len(parsed) == 0 {
		return defaults
	}
	return parsed
}

func parseCSVInts(s string) []int {
	var out []int
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		if v, err := strconv.Atoi(part); err == nil && v > 0 {
			out = append(out, v)
		}
	}
	return out
}
