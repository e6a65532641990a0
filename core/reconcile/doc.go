// Package reconcile contains the reconciliation engine: the diff between a
// source-of-truth indexer catalog and one consumer application's current
// indexer configuration, and the dispatch of the resulting mutations.
//
// # Architecture
//
// The engine works against two small interfaces:
//
//  1. App: consumer-specific knowledge (identity, wanted categories, and the
//     equality rule for identity-relevant fields). One implementation exists
//     per consumer variant (sonarr, radarr, lidarr, readarr); the engine holds
//     only the interface.
//
//  2. AppClient: the transport collaborator issuing fetch/create/update calls.
//     The engine is side-effect-free except through this interface.
//
// ComputeDiff is a pure function partitioning the catalog into creations,
// updates, orphans, and policy-rejected skips. NeedsUpdate is the equivalence
// check: identity fields per the consumer's rule, then an order-independent
// category comparison performed after override reversal, so rule-forced
// categories never register as drift.
//
// # Execution model
//
// Creates and updates are dispatched as two independent scatter/gather
// fan-outs. Each entry's outcome is captured individually; a rejected entry
// is logged and dropped, never cancelling its siblings. Orphans, the consumer
// records whose id has no counterpart in the source, are reported for manual
// removal and never mutated.
//
// # Errors
//
// FetchError, MappingError, and WriteError form the failure taxonomy. None of
// them bubble past the consumer-scoped operation that produced them: the
// engine returns a FetchError only for the consumer's own state fetch, and
// absorbs write failures into the Result.
package reconcile
