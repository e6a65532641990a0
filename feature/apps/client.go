package apps

import (
	"context"
	"errors"

	"indexer-sync/core/reconcile"
	"indexer-sync/core/transport"

	"go.uber.org/zap"
)

// Client implements the engine's transport collaborator for one consumer
// application, delegating field mapping and endpoints to the App variant.
type Client struct {
	app  App
	http transport.Client
	log  *zap.Logger
}

// NewClient creates the transport client for a consumer variant.
func NewClient(app App, log *zap.Logger) *Client {
	cfg := app.Config()
	return &Client{
		app:  app,
		http: transport.New(cfg.ApiKey, cfg.TimeoutSeconds),
		log:  log.With(zap.String("app", app.Name())),
	}
}

// NewClientWith creates a consumer client with an explicit transport.
// Used by tests to inject a mock.
func NewClientWith(app App, http transport.Client, log *zap.Logger) *Client {
	return &Client{app: app, http: http, log: log.With(zap.String("app", app.Name()))}
}

// FetchIndexers returns the consumer's current indexer records in generic
// form. Records for other feeds are ignored; a record pointing at the source
// that fails to map is skipped with a warning and the batch proceeds.
func (c *Client) FetchIndexers(ctx context.Context) ([]reconcile.ConsumerIndexer, error) {
	var records []rawIndexer
	if err := c.http.GetJSON(ctx, c.app.IndexerURL(), &records); err != nil {
		return nil, err
	}

	out := make([]reconcile.ConsumerIndexer, 0, len(records))
	for _, rec := range records {
		mapped, err := c.app.MapIndexer(rec)
		if errors.Is(err, errUnmanaged) {
			c.log.Debug("ignoring unmanaged indexer", zap.String("indexer", rec.Name))
			continue
		}
		if err != nil {
			merr := &reconcile.MappingError{App: c.app.Name(), Record: rec.Name, Err: err}
			c.log.Warn("skipping unmappable indexer record", zap.Error(merr))
			continue
		}
		out = append(out, mapped)
	}
	return out, nil
}

// CreateIndexer creates a new record for the source definition.
func (c *Client) CreateIndexer(ctx context.Context, src reconcile.SourceIndexer, categories, animeCategories []int) error {
	body := c.app.CreateBody(src, categories, animeCategories)
	return c.http.PostJSON(ctx, c.app.IndexerURL(), body, nil)
}

// UpdateIndexer rewrites the existing record identified by appID.
func (c *Client) UpdateIndexer(ctx context.Context, appID int64, src reconcile.SourceIndexer, categories, animeCategories []int) error {
	body := c.app.CreateBody(src, categories, animeCategories)
	body.ID = appID
	return c.http.PutJSON(ctx, c.app.IndexerByIDURL(appID), body, nil)
}
