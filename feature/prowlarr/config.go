package prowlarr

import (
	"fmt"
	"strings"
)

// Config holds configuration for the Prowlarr aggregator.
type Config struct {
	// URL is the base URL of the Prowlarr instance.
	URL string `mapstructure:"url" default:""`
	// ApiKey is the Prowlarr API key.
	ApiKey string `mapstructure:"api_key" default:""`
	// TimeoutSeconds is the request timeout in seconds.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
}

// IsConfigured reports whether both URL and API key are set.
func (c Config) IsConfigured() bool {
	return c.URL != "" && c.ApiKey != ""
}

// BaseURL returns the base URL without a trailing slash.
func (c Config) BaseURL() string {
	return strings.TrimRight(c.URL, "/")
}

// FeedURL returns the per-indexer newznab/torznab feed URL consumers are
// pointed at. Consumer-side records embed this URL; the indexer id is
// recovered from it when mapping records back.
func (c Config) FeedURL(indexerID int) string {
	return fmt.Sprintf("%s/%d/api", c.BaseURL(), indexerID)
}
