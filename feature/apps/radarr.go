package apps

import (
	"indexer-sync/core/reconcile"
	"indexer-sync/feature/prowlarr"
)

// radarrDefaultCategories is the movie branch of the newznab category tree.
var radarrDefaultCategories = []int{2000, 2010, 2020, 2030, 2040, 2045, 2050, 2060}

// Radarr is the movie consumer.
type Radarr struct {
	base
}

// NewRadarr creates the radarr consumer variant.
func NewRadarr(cfg Config, source prowlarr.Config) *Radarr {
	return &Radarr{
		base: base{
			name:       "radarr",
			apiVersion: "v3",
			cfg:        cfg,
			source:     source,
			wanted:     cfg.wantedCategories(radarrDefaultCategories),
		},
	}
}

// CreateBody is the common body; radarr has no variant-specific fields.
func (r *Radarr) CreateBody(src reconcile.SourceIndexer, categories, animeCategories []int) rawIndexer {
	return r.baseBody(src, categories)
}
