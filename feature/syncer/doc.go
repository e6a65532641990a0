// Package syncer orchestrates reconciliation runs.
//
// One run fetches the source catalog once (a failure there aborts the run,
// since nothing can be reconciled without it), then reconciles every configured
// consumer concurrently. Consumers share nothing mutable: the rule set is
// read-only and each consumer owns its own category computations, so no
// locking is needed across the fan-out. One consumer's total failure is
// captured in its report slot and never blocks the others.
//
// Concurrent triggers (a scheduler tick firing while an operator hits the
// API) are collapsed into a single run via singleflight; both callers
// receive the same report.
//
// The resulting RunReport is kept in memory only and served via the status
// endpoint; the process persists nothing across runs.
package syncer
