package apps

import (
	"indexer-sync/core/reconcile"
	"indexer-sync/feature/prowlarr"
)

// readarrDefaultCategories spans the book branches of the newznab category tree.
var readarrDefaultCategories = []int{7000, 7010, 7020, 7030, 8000, 8010}

// Readarr is the book consumer. It still speaks API v1.
type Readarr struct {
	base
}

// NewReadarr creates the readarr consumer variant.
func NewReadarr(cfg Config, source prowlarr.Config) *Readarr {
	return &Readarr{
		base: base{
			name:       "readarr",
			apiVersion: "v1",
			cfg:        cfg,
			source:     source,
			wanted:     cfg.wantedCategories(readarrDefaultCategories),
		},
	}
}

// CreateBody is the common body; readarr has no variant-specific fields.
func (r *Readarr) CreateBody(src reconcile.SourceIndexer, categories, animeCategories []int) rawIndexer {
	return r.baseBody(src, categories)
}
