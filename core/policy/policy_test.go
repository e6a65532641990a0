package policy

import (
	"testing"

	"indexer-sync/core/rules"

	"github.com/stretchr/testify/assert"
)

func TestEqualUnordered(t *testing.T) {
	assert.True(t, EqualUnordered([]int{2000, 5030, 5070}, []int{5070, 2000, 5030}))
	assert.True(t, EqualUnordered(nil, []int{}))
	assert.False(t, EqualUnordered([]int{2000}, []int{2000, 5030}))
	assert.False(t, EqualUnordered([]int{2000, 5030}, []int{2000, 5040}))
}

func TestIntersect(t *testing.T) {
	assert.Equal(t, []int{2000, 2030}, Intersect([]int{2000, 2030, 2045}, []int{2030, 2000}))
	assert.Empty(t, Intersect([]int{2000}, []int{5000}))
	assert.Empty(t, Intersect(nil, []int{5000}))
}

func TestWanted(t *testing.T) {
	empty := rules.NewRuleSet()

	// Overlap is enough
	assert.True(t, Wanted(empty, "sonarr", []int{5000, 5030}, []int{5030, 8000}, 1))

	// No overlap, no rule
	assert.False(t, Wanted(empty, "sonarr", []int{5000}, []int{2000}, 1))

	// No overlap, but a matching rule forces inclusion
	forced := rules.NewRuleSet(rules.Rule{Target: "all", IndexerID: 1, Category: 5070})
	assert.True(t, Wanted(forced, "sonarr", []int{5000}, []int{2000}, 1))

	// Rule for a different indexer does not help
	assert.False(t, Wanted(forced, "sonarr", []int{5000}, []int{2000}, 2))

	// Consumer-scoped rule only matches its consumer
	scoped := rules.NewRuleSet(rules.Rule{Target: "sonarr", IndexerID: 1})
	assert.True(t, Wanted(scoped, "sonarr", []int{5000}, []int{2000}, 1))
	assert.False(t, Wanted(scoped, "radarr", []int{5000}, []int{2000}, 1))
}

func TestExpectedCategories(t *testing.T) {
	// Naturally-overlapping subset only; override categories never appear here
	got := ExpectedCategories([]int{5000, 5030, 5040}, []int{5030, 5040, 8000})
	assert.Equal(t, []int{5030, 5040}, got)

	assert.Empty(t, ExpectedCategories([]int{5000}, []int{2000}))
}

func TestApplyOverrides(t *testing.T) {
	rs := rules.NewRuleSet(
		rules.Rule{Target: "all", IndexerID: 1, Category: 5070},
		rules.Rule{Target: "sonarr", IndexerID: 1, AnimeCategory: 5030},
	)

	cats, anime := ApplyOverrides(rs, "sonarr", 1, []int{2000}, nil)
	assert.Equal(t, []int{2000, 5070}, cats)
	assert.Equal(t, []int{5030}, anime)

	// The inputs are untouched
	base := []int{2000}
	_, _ = ApplyOverrides(rs, "sonarr", 1, base, nil)
	assert.Equal(t, []int{2000}, base)
}

func TestApplyOverrides_Idempotent(t *testing.T) {
	rs := rules.NewRuleSet(rules.Rule{Target: "all", IndexerID: 1, Category: 5070, AnimeCategory: 5030})

	once, onceAnime := ApplyOverrides(rs, "radarr", 1, []int{2000}, []int{})
	twice, twiceAnime := ApplyOverrides(rs, "radarr", 1, once, onceAnime)

	assert.Equal(t, once, twice)
	assert.Equal(t, onceAnime, twiceAnime)
}

func TestApplyReverse_Inverse(t *testing.T) {
	rs := rules.NewRuleSet(
		rules.Rule{Target: "all", IndexerID: 1, Category: 5070},
		rules.Rule{Target: "sonarr", IndexerID: 1, Category: 5080, AnimeCategory: 5030},
	)

	bases := [][]int{
		nil,
		{},
		{2000},
		{2000, 5040, 5050},
	}

	for _, base := range bases {
		applied, appliedAnime := ApplyOverrides(rs, "sonarr", 1, base, nil)
		reversed, reversedAnime := ReverseOverrides(rs, "sonarr", 1, applied, appliedAnime)
		assert.True(t, EqualUnordered(base, reversed), "base %v round-trip gave %v", base, reversed)
		assert.Empty(t, reversedAnime)
	}
}

func TestReverseOverrides_AbsentCategory(t *testing.T) {
	rs := rules.NewRuleSet(rules.Rule{Target: "all", IndexerID: 1, Category: 5070})

	// Reversing a set that never had the override category is a no-op
	got, _ := ReverseOverrides(rs, "radarr", 1, []int{2000, 2030}, nil)
	assert.Equal(t, []int{2000, 2030}, got)
}
