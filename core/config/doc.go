// Package config provides application configuration loading.
//
// Configuration comes from environment variables, optionally seeded from a
// .env file. Nested keys map to underscore-separated variables: prowlarr.url
// becomes PROWLARR_URL, sonarr.api_key becomes SONARR_API_KEY, and so on.
//
// Defaults are declared as `default` struct tags on the partial Config
// structs owned by each package and bound into Viper via reflection, so a
// package's configuration surface lives next to the code that reads it.
//
// A consumer application participates in the sync only when both its URL and
// API key are configured.
package config
