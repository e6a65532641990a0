package syncer

// Config holds configuration for the sync orchestration.
type Config struct {
	// IntervalMinutes is the period between scheduled runs in server mode.
	// Zero disables the scheduler; runs then only happen via the API trigger.
	IntervalMinutes int `mapstructure:"interval_minutes" default:"0"`
	// Rules is a comma-separated list of override rules in the form
	// target:indexerID:category[:animeCategory].
	Rules string `mapstructure:"rules" default:""`
}
