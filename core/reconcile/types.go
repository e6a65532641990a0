package reconcile

import "context"

// SourceIndexer is one indexer definition from the aggregator's catalog.
// It is immutable for the duration of a run and uniquely identified by ID
// within one fetch.
type SourceIndexer struct {
	// ID is the aggregator-assigned indexer id, the join key against
	// consumer-side records.
	ID int `json:"id"`

	// Name is the display name of the indexer.
	Name string `json:"name"`

	// Categories is the flattened set of categories the indexer serves.
	Categories []int `json:"categories"`
}

// ConsumerIndexer is one existing indexer record on a consumer application,
// mapped into generic form by the consumer's field-mapping adapter.
type ConsumerIndexer struct {
	// ID is the source indexer id this record was created from, recovered
	// from the record's feed URL by the mapping adapter.
	ID int `json:"id"`

	// AppID is the consumer-local identifier, assigned by the consumer and
	// required to address update calls. It is never exposed to the source side.
	AppID int64 `json:"appId"`

	// Name is the record's display name on the consumer.
	Name string `json:"name"`

	// URL is the feed URL the record points at.
	URL string `json:"url"`

	// Enabled reports whether the record is active on the consumer.
	Enabled bool `json:"enabled"`

	// Categories is the record's stored category set.
	Categories []int `json:"categories"`

	// AnimeCategories is the record's stored anime category set.
	// Only populated for consumers that have the concept.
	AnimeCategories []int `json:"animeCategories"`
}

// App provides the consumer-specific knowledge the engine needs: identity,
// the wanted category set, and the consumer's equality rule for identity
// fields. One implementation exists per consumer variant; the engine only
// ever sees this interface.
type App interface {
	// Name returns the consumer's identity, used in rule matching and logs.
	Name() string

	// WantedCategories returns the consumer's declared category interest set.
	WantedCategories() []int

	// SameSettings reports whether the existing record's identity-relevant
	// fields (feed URL, enabled state, search flags) already match what would
	// be written for the source indexer. Categories are compared separately.
	SameSettings(existing ConsumerIndexer, src SourceIndexer) bool
}

// AppClient is the transport collaborator for one consumer application.
// The engine issues all its side effects through this interface.
type AppClient interface {
	// FetchIndexers returns the consumer's current indexer records in generic
	// form. Individual records that fail to map are skipped by the
	// implementation; a transport-level failure fails the whole call.
	FetchIndexers(ctx context.Context) ([]ConsumerIndexer, error)

	// CreateIndexer creates a new indexer record for the source definition
	// with the given category sets.
	CreateIndexer(ctx context.Context, src SourceIndexer, categories, animeCategories []int) error

	// UpdateIndexer rewrites the existing record identified by appID.
	UpdateIndexer(ctx context.Context, appID int64, src SourceIndexer, categories, animeCategories []int) error
}

// UpdateCandidate pairs a source definition with the stale consumer record
// it should overwrite.
type UpdateCandidate struct {
	Source   SourceIndexer
	Existing ConsumerIndexer
}

// Diff partitions a source catalog against a consumer's current state.
type Diff struct {
	// ToCreate holds wanted source indexers absent from the consumer.
	ToCreate []SourceIndexer

	// ToUpdate holds source indexers whose consumer record is stale.
	ToUpdate []UpdateCandidate

	// Orphans holds consumer records whose id has no counterpart in the
	// source catalog. They are reported for manual removal, never mutated.
	Orphans []ConsumerIndexer

	// Skipped holds source indexers rejected by the category policy.
	Skipped []SourceIndexer
}

// Result is the outcome of reconciling one consumer.
type Result struct {
	// Created lists the names of indexers created (or planned, in dry-run).
	Created []string `json:"created"`

	// Updated lists the names of indexers updated (or planned, in dry-run).
	Updated []string `json:"updated"`

	// Skipped lists the names of source indexers the policy rejected.
	Skipped []string `json:"skipped"`

	// Orphaned lists the ids of consumer records absent from the source.
	Orphaned []int `json:"orphaned"`

	// Failed lists the names of entries whose create or update call was
	// rejected. Failures never abort sibling entries.
	Failed []string `json:"failed"`
}
