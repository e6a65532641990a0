package reconcile

import (
	"testing"

	"indexer-sync/core/rules"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeApp is a minimal consumer for differ tests. Identity equality is a
// plain URL + enabled comparison against the expected feed URL.
type fakeApp struct {
	name   string
	wanted []int
}

func (a *fakeApp) Name() string            { return a.name }
func (a *fakeApp) WantedCategories() []int { return a.wanted }

func (a *fakeApp) SameSettings(existing ConsumerIndexer, src SourceIndexer) bool {
	return existing.URL == feedURL(src.ID) && existing.Enabled
}

func feedURL(id int) string {
	return map[int]string{
		1: "http://prowlarr:9696/1/api",
		2: "http://prowlarr:9696/2/api",
		5: "http://prowlarr:9696/5/api",
	}[id]
}

func TestComputeDiff_CreateMissingWanted(t *testing.T) {
	app := &fakeApp{name: "radarr", wanted: []int{2000}}
	catalog := []SourceIndexer{{ID: 1, Name: "alpha", Categories: []int{2000}}}

	d := ComputeDiff(app, catalog, nil, rules.NewRuleSet())

	require.Len(t, d.ToCreate, 1)
	assert.Equal(t, 1, d.ToCreate[0].ID)
	assert.Empty(t, d.ToUpdate)
	assert.Empty(t, d.Orphans)
	assert.Empty(t, d.Skipped)
}

func TestComputeDiff_ExistingMatchNotUpdated(t *testing.T) {
	app := &fakeApp{name: "radarr", wanted: []int{2000}}
	catalog := []SourceIndexer{{ID: 1, Name: "alpha", Categories: []int{2000}}}
	existing := []ConsumerIndexer{{
		ID:         1,
		AppID:      42,
		URL:        feedURL(1),
		Enabled:    true,
		Categories: []int{2000},
	}}

	d := ComputeDiff(app, catalog, existing, rules.NewRuleSet())

	assert.Empty(t, d.ToCreate)
	assert.Empty(t, d.ToUpdate)
	assert.Empty(t, d.Orphans)
}

func TestComputeDiff_Orphan(t *testing.T) {
	app := &fakeApp{name: "radarr", wanted: []int{2000}}
	existing := []ConsumerIndexer{{ID: 5, AppID: 7, URL: feedURL(5), Enabled: true, Categories: []int{2000}}}

	d := ComputeDiff(app, nil, existing, rules.NewRuleSet())

	require.Len(t, d.Orphans, 1)
	assert.Equal(t, 5, d.Orphans[0].ID)
	assert.Empty(t, d.ToCreate)
	assert.Empty(t, d.ToUpdate)
}

func TestComputeDiff_PolicyRejectedSkipped(t *testing.T) {
	app := &fakeApp{name: "radarr", wanted: []int{2000}}
	catalog := []SourceIndexer{{ID: 1, Name: "books-only", Categories: []int{7000}}}

	d := ComputeDiff(app, catalog, nil, rules.NewRuleSet())

	assert.Empty(t, d.ToCreate)
	require.Len(t, d.Skipped, 1)
	assert.Equal(t, "books-only", d.Skipped[0].Name)
}

func TestComputeDiff_RuleForcesInclusion(t *testing.T) {
	app := &fakeApp{name: "radarr", wanted: []int{2000}}
	catalog := []SourceIndexer{{ID: 1, Name: "books-only", Categories: []int{7000}}}
	rs := rules.NewRuleSet(rules.Rule{Target: "all", IndexerID: 1, Category: 5030})

	d := ComputeDiff(app, catalog, nil, rs)

	require.Len(t, d.ToCreate, 1)
	assert.Equal(t, "books-only", d.ToCreate[0].Name)
	assert.Empty(t, d.Skipped)
}

func TestComputeDiff_StaleCategoriesUpdated(t *testing.T) {
	app := &fakeApp{name: "radarr", wanted: []int{2000, 2030}}
	catalog := []SourceIndexer{{ID: 1, Name: "alpha", Categories: []int{2000, 2030}}}
	existing := []ConsumerIndexer{{
		ID:         1,
		AppID:      42,
		URL:        feedURL(1),
		Enabled:    true,
		Categories: []int{2000}, // missing 2030
	}}

	d := ComputeDiff(app, catalog, existing, rules.NewRuleSet())

	require.Len(t, d.ToUpdate, 1)
	assert.Equal(t, int64(42), d.ToUpdate[0].Existing.AppID)
}

func TestNeedsUpdate_OrderIndependentCategories(t *testing.T) {
	app := &fakeApp{name: "sonarr", wanted: []int{5000, 5030, 5040}}
	src := SourceIndexer{ID: 1, Categories: []int{5040, 5030, 5000}}
	existing := ConsumerIndexer{
		ID:         1,
		URL:        feedURL(1),
		Enabled:    true,
		Categories: []int{5030, 5000, 5040}, // same elements, different order
	}

	assert.False(t, NeedsUpdate(app, existing, src, rules.NewRuleSet()))
}

func TestNeedsUpdate_IdentityFieldsDiffer(t *testing.T) {
	app := &fakeApp{name: "sonarr", wanted: []int{5000}}
	src := SourceIndexer{ID: 1, Categories: []int{5000}}

	disabled := ConsumerIndexer{ID: 1, URL: feedURL(1), Enabled: false, Categories: []int{5000}}
	assert.True(t, NeedsUpdate(app, disabled, src, rules.NewRuleSet()))

	wrongURL := ConsumerIndexer{ID: 1, URL: "http://old-host/1/api", Enabled: true, Categories: []int{5000}}
	assert.True(t, NeedsUpdate(app, wrongURL, src, rules.NewRuleSet()))
}

func TestNeedsUpdate_OverrideCategoryIsNotDrift(t *testing.T) {
	app := &fakeApp{name: "sonarr", wanted: []int{5000}}
	src := SourceIndexer{ID: 1, Categories: []int{5000}}
	rs := rules.NewRuleSet(rules.Rule{Target: "sonarr", IndexerID: 1, Category: 5070})

	// The stored record carries the override-injected 5070; after reversal
	// it matches the policy-only expected set, so no update is needed.
	existing := ConsumerIndexer{
		ID:         1,
		URL:        feedURL(1),
		Enabled:    true,
		Categories: []int{5000, 5070},
	}
	assert.False(t, NeedsUpdate(app, existing, src, rs))

	// Without the rule, 5070 is genuine drift.
	assert.True(t, NeedsUpdate(app, existing, src, rules.NewRuleSet()))
}
