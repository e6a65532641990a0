package apps

import (
	"indexer-sync/core/reconcile"
	"indexer-sync/feature/prowlarr"
)

// sonarrDefaultCategories is the TV branch of the newznab category tree.
var sonarrDefaultCategories = []int{5000, 5010, 5020, 5030, 5040, 5045, 5050}

// Sonarr is the TV consumer. It is the only variant with anime categories
// and a season-pack seed time on its records.
type Sonarr struct {
	base
	animeDefaults []int
}

// NewSonarr creates the sonarr consumer variant.
func NewSonarr(cfg Config, source prowlarr.Config) *Sonarr {
	return &Sonarr{
		base: base{
			name:       "sonarr",
			apiVersion: "v3",
			cfg:        cfg,
			source:     source,
			wanted:     cfg.wantedCategories(sonarrDefaultCategories),
		},
		animeDefaults: parseCSVInts(cfg.AnimeCategories),
	}
}

// CreateBody extends the common body with sonarr's anime category field.
// The anime set is the configured default plus any override-forced entries.
func (s *Sonarr) CreateBody(src reconcile.SourceIndexer, categories, animeCategories []int) rawIndexer {
	body := s.baseBody(src, categories)

	anime := append([]int{}, s.animeDefaults...)
	for _, cat := range animeCategories {
		exists := false
		for _, have := range anime {
			if have == cat {
				exists = true
				break
			}
		}
		if !exists {
			anime = append(anime, cat)
		}
	}

	body.Fields = append(body.Fields, field{Name: "animeCategories", Value: anime})
	return body
}
