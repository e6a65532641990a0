package reconcile

import (
	"indexer-sync/core/policy"
	"indexer-sync/core/rules"
)

// ComputeDiff partitions the source catalog against the consumer's current
// records: wanted indexers missing from the consumer go to ToCreate, common
// indexers with a stale record go to ToUpdate, consumer records absent from
// the source become Orphans, and indexers the policy rejects are Skipped.
//
// Output ordering follows catalog traversal for creations and updates, and
// existing-record traversal for orphans. No mutation happens here; the diff
// is a pure function of its inputs.
func ComputeDiff(app App, catalog []SourceIndexer, existing []ConsumerIndexer, rs rules.RuleSet) Diff {
	byID := make(map[int]ConsumerIndexer, len(existing))
	for _, c := range existing {
		byID[c.ID] = c
	}

	sourceIDs := make(map[int]struct{}, len(catalog))
	var d Diff

	for _, src := range catalog {
		sourceIDs[src.ID] = struct{}{}

		cur, present := byID[src.ID]
		if !present {
			if policy.Wanted(rs, app.Name(), app.WantedCategories(), src.Categories, src.ID) {
				d.ToCreate = append(d.ToCreate, src)
			} else {
				d.Skipped = append(d.Skipped, src)
			}
			continue
		}

		if NeedsUpdate(app, cur, src, rs) {
			d.ToUpdate = append(d.ToUpdate, UpdateCandidate{Source: src, Existing: cur})
		}
	}

	for _, c := range existing {
		if _, ok := sourceIDs[c.ID]; !ok {
			d.Orphans = append(d.Orphans, c)
		}
	}

	return d
}

// NeedsUpdate decides whether an existing consumer record is stale against
// the source definition. It is true when the identity-relevant fields differ
// per the consumer's own equality rule, or when the stored category set, with
// override-forced categories stripped back out, no longer set-equals the
// policy's expected subset. Reversing first keeps rule-injected categories
// from registering as drift on every run.
func NeedsUpdate(app App, existing ConsumerIndexer, src SourceIndexer, rs rules.RuleSet) bool {
	if !app.SameSettings(existing, src) {
		return true
	}

	stored, _ := policy.ReverseOverrides(rs, app.Name(), src.ID, existing.Categories, existing.AnimeCategories)
	expected := policy.ExpectedCategories(app.WantedCategories(), src.Categories)
	return !policy.EqualUnordered(stored, expected)
}
