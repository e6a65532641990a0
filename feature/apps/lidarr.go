package apps

import (
	"indexer-sync/core/reconcile"
	"indexer-sync/feature/prowlarr"
)

// lidarrDefaultCategories is the audio branch of the newznab category tree.
var lidarrDefaultCategories = []int{3000, 3010, 3020, 3030, 3040}

// Lidarr is the music consumer. It still speaks API v1.
type Lidarr struct {
	base
}

// NewLidarr creates the lidarr consumer variant.
func NewLidarr(cfg Config, source prowlarr.Config) *Lidarr {
	return &Lidarr{
		base: base{
			name:       "lidarr",
			apiVersion: "v1",
			cfg:        cfg,
			source:     source,
			wanted:     cfg.wantedCategories(lidarrDefaultCategories),
		},
	}
}

// CreateBody extends the common body with lidarr's early-release field.
func (l *Lidarr) CreateBody(src reconcile.SourceIndexer, categories, animeCategories []int) rawIndexer {
	body := l.baseBody(src, categories)
	body.Fields = append(body.Fields, field{Name: "earlyReleaseLimit", Value: nil})
	return body
}
