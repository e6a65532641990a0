package config

import (
	"reflect"
	"strings"

	"indexer-sync/core/logger"
	"indexer-sync/core/server"
	"indexer-sync/feature/apps"
	"indexer-sync/feature/prowlarr"
	"indexer-sync/feature/syncer"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
// It is divided into partial configurations owned by their packages.
type Config struct {
	// Server holds configuration for the HTTP server.
	Server server.Config `mapstructure:"server"`
	// Log holds configuration for the logger.
	Log logger.Config `mapstructure:"log"`
	// Sync holds configuration for the sync orchestration (interval, rules).
	Sync syncer.Config `mapstructure:"sync"`
	// Prowlarr holds configuration for the source aggregator.
	Prowlarr prowlarr.Config `mapstructure:"prowlarr"`
	// Sonarr holds configuration for the sonarr consumer.
	Sonarr apps.Config `mapstructure:"sonarr"`
	// Radarr holds configuration for the radarr consumer.
	Radarr apps.Config `mapstructure:"radarr"`
	// Lidarr holds configuration for the lidarr consumer.
	Lidarr apps.Config `mapstructure:"lidarr"`
	// Readarr holds configuration for the readarr consumer.
	Readarr apps.Config `mapstructure:"readarr"`
}

// LoadConfig loads configuration from environment variables and .env file.
func LoadConfig(path string) (*Config, error) {
	// Load .env if present; missing files are fine (e.g. production).
	envPath := path + "/.env"
	if path == "." {
		envPath = ".env"
	}
	_ = godotenv.Overload(envPath)

	v := viper.New()

	// Recursively parse struct tags to set default values
	bindValues(v, Config{}, "")

	// Map environment variables to nested keys (e.g. PROWLARR_URL -> prowlarr.url)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

// bindValues uses reflection to iterate over the struct and set default values in Viper
// based on the 'default' and 'mapstructure' tags.
func bindValues(v *viper.Viper, iface any, prefix string) {
	t := reflect.TypeOf(iface)

	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		tag := field.Tag.Get("mapstructure")
		if tag == "" {
			continue
		}

		key := tag
		if prefix != "" {
			key = prefix + "." + tag
		}

		if field.Type.Kind() == reflect.Struct {
			bindValues(v, reflect.New(field.Type).Elem().Interface(), key)
			continue
		}

		// Always set the default (even if empty) to register the key for AutomaticEnv
		v.SetDefault(key, field.Tag.Get("default"))
	}
}
