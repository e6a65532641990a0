// Package policy implements the category-inclusion policy.
//
// Given a consumer's wanted category set and a source indexer's available
// categories, the policy decides whether the indexer is relevant at all
// (Wanted), and what the consumer's stored category subset should look like
// (ExpectedCategories).
//
// Override rules layer on top of the default overlap policy. ApplyOverrides
// and ReverseOverrides are pure functions returning new collections; apply is
// idempotent and reverse exactly undoes a prior apply against the same base.
// Reversal is what keeps rule-forced categories from registering as drift on
// every run: the consumer's stored set is reversed before being compared to
// the policy-only expected set.
//
// Category sets are unordered for equality purposes. All comparisons go
// through EqualUnordered.
package policy
