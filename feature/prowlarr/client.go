package prowlarr

import (
	"context"
	"fmt"

	"indexer-sync/core/reconcile"
	"indexer-sync/core/transport"

	"go.uber.org/zap"
)

// Client fetches the source-of-truth indexer catalog from Prowlarr.
type Client struct {
	cfg  Config
	http transport.Client
	log  *zap.Logger
}

// NewClient creates a Prowlarr client.
func NewClient(cfg Config, log *zap.Logger) *Client {
	return &Client{
		cfg:  cfg,
		http: transport.New(cfg.ApiKey, cfg.TimeoutSeconds),
		log:  log,
	}
}

// NewClientWith creates a Prowlarr client with an explicit transport.
// Used by tests to inject a mock.
func NewClientWith(cfg Config, http transport.Client, log *zap.Logger) *Client {
	return &Client{cfg: cfg, http: http, log: log}
}

// Config returns the client's configuration. Consumer variants need it to
// build feed URLs pointing back at this Prowlarr instance.
func (c *Client) Config() Config {
	return c.cfg
}

// FetchCatalog returns every enabled indexer as a generic source record.
// Failure here is fatal for the whole run: no consumer can be reconciled
// without a source catalog. Individual malformed records are skipped with
// a warning; disabled indexers are skipped silently.
func (c *Client) FetchCatalog(ctx context.Context) ([]reconcile.SourceIndexer, error) {
	url := c.cfg.BaseURL() + "/api/v1/indexer"

	var records []indexerRecord
	if err := c.http.GetJSON(ctx, url, &records); err != nil {
		return nil, &reconcile.FetchError{Target: "prowlarr", Err: err}
	}

	catalog := make([]reconcile.SourceIndexer, 0, len(records))
	for _, rec := range records {
		if !rec.Enable {
			c.log.Debug("skipping disabled indexer", zap.String("indexer", rec.Name))
			continue
		}
		if rec.ID <= 0 || rec.Name == "" {
			merr := &reconcile.MappingError{
				App:    "prowlarr",
				Record: rec.Name,
				Err:    fmt.Errorf("missing id or name"),
			}
			c.log.Warn("skipping malformed indexer record", zap.Error(merr))
			continue
		}
		catalog = append(catalog, rec.toSource())
	}

	return catalog, nil
}
