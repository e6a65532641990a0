package apps

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"indexer-sync/core/reconcile"
	"indexer-sync/feature/prowlarr"
)

// errUnmanaged marks a consumer record that does not point at the configured
// Prowlarr instance. Such records were added by hand for some other feed and
// are ignored entirely, never reconciled and never reported as orphans.
var errUnmanaged = errors.New("indexer not managed by this sync")

// App is one consumer application variant. It carries everything the engine
// and the transport client need that differs between sonarr, radarr, lidarr,
// and readarr: the API version, the record field quirks, and the default
// category dialect.
type App interface {
	reconcile.App

	// IndexerURL returns the list/create endpoint.
	IndexerURL() string

	// IndexerByIDURL returns the update endpoint for one record.
	IndexerByIDURL(appID int64) string

	// MapIndexer maps a raw consumer record into generic form. Records for
	// other feeds return errUnmanaged; records pointing at the source but
	// unparsable return a plain error and are skipped with a warning.
	MapIndexer(rec rawIndexer) (reconcile.ConsumerIndexer, error)

	// CreateBody builds the request body for a create or update call.
	CreateBody(src reconcile.SourceIndexer, categories, animeCategories []int) rawIndexer

	// Config returns the consumer's configuration.
	Config() Config
}

// base carries the behavior shared by every consumer variant.
type base struct {
	name       string
	apiVersion string
	cfg        Config
	source     prowlarr.Config
	wanted     []int
}

func (b *base) Name() string            { return b.name }
func (b *base) WantedCategories() []int { return b.wanted }
func (b *base) Config() Config          { return b.cfg }

func (b *base) IndexerURL() string {
	return fmt.Sprintf("%s/api/%s/indexer", b.cfg.BaseURL(), b.apiVersion)
}

func (b *base) IndexerByIDURL(appID int64) string {
	return fmt.Sprintf("%s/api/%s/indexer/%d", b.cfg.BaseURL(), b.apiVersion, appID)
}

// SameSettings is the identity-equality rule shared by all variants: the
// record must point at the exact feed URL for the source indexer and be
// enabled for both RSS and automatic search. Category comparison is the
// engine's job.
func (b *base) SameSettings(existing reconcile.ConsumerIndexer, src reconcile.SourceIndexer) bool {
	return existing.URL == b.source.FeedURL(src.ID) && existing.Enabled
}

// MapIndexer maps a raw record into generic form, recovering the source
// indexer id from the feed URL ("{base}/{id}/api").
func (b *base) MapIndexer(rec rawIndexer) (reconcile.ConsumerIndexer, error) {
	feed := rec.stringField("baseUrl")
	if !strings.HasPrefix(feed, b.source.BaseURL()+"/") {
		return reconcile.ConsumerIndexer{}, errUnmanaged
	}

	id, err := indexerIDFromFeed(feed)
	if err != nil {
		return reconcile.ConsumerIndexer{}, err
	}

	return reconcile.ConsumerIndexer{
		ID:              id,
		AppID:           rec.ID,
		Name:            rec.Name,
		URL:             feed,
		Enabled:         rec.EnableRss && rec.EnableAutomaticSearch,
		Categories:      rec.intSliceField("categories"),
		AnimeCategories: rec.intSliceField("animeCategories"),
	}, nil
}

// indexerIDFromFeed extracts the indexer id from a feed URL of the form
// "{base}/{id}/api".
func indexerIDFromFeed(feed string) (int, error) {
	trimmed := strings.TrimSuffix(strings.TrimRight(feed, "/"), "/api")
	segments := strings.Split(trimmed, "/")
	last := segments[len(segments)-1]

	id, err := strconv.Atoi(last)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("no indexer id in feed url %q", feed)
	}
	return id, nil
}

// baseBody builds the fields common to every variant's create/update body.
// Variants append their own fields on top.
func (b *base) baseBody(src reconcile.SourceIndexer, categories []int) rawIndexer {
	fields := []field{
		{Name: "baseUrl", Value: b.source.FeedURL(src.ID)},
		{Name: "apiPath", Value: "/api"},
		{Name: "apiKey", Value: b.source.ApiKey},
		{Name: "categories", Value: categories},
		{Name: "minimumSeeders", Value: b.cfg.MinimumSeeders},
	}
	if b.cfg.SeedRatio != "" {
		fields = append(fields, field{Name: "seedCriteria.seedRatio", Value: b.cfg.SeedRatio})
	}

	return rawIndexer{
		Name:                    fmt.Sprintf("%s (Prowlarr)", src.Name),
		Implementation:          "Torznab",
		ConfigContract:          "TorznabSettings",
		Protocol:                "torrent",
		Priority:                25,
		EnableRss:               true,
		EnableAutomaticSearch:   true,
		EnableInteractiveSearch: true,
		Tags:                    []int{},
		Fields:                  fields,
	}
}
