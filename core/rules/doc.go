// Package rules implements the override rule table.
//
// A rule binds a consumer selector ("all" or a consumer name), a source
// indexer id, and optionally a category and/or anime category to force into
// that consumer's configuration even when the default category-overlap policy
// would exclude it.
//
// Rules are parsed once from configuration at process start into an immutable
// RuleSet. The set is passed explicitly into policy and reconciliation calls,
// never held as ambient state, so the engine can be tested with synthetic
// rule sets.
//
// # Wire format
//
//	target:indexerID:category[:animeCategory]
//
// Examples:
//
//	all:12:5070          force category 5070 for indexer 12 everywhere
//	sonarr:3::5030       force anime category 5030 for indexer 3 on sonarr
//	radarr:7             force indexer 7 onto radarr with no extra category
package rules
