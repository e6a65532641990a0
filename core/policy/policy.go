package policy

import "indexer-sync/core/rules"

// Wanted decides whether a source indexer is relevant to a consumer.
// An indexer is wanted when its categories overlap the consumer's wanted set,
// or when an override rule matches the consumer/indexer pair. A matching rule
// alone is sufficient, even with zero category overlap.
func Wanted(rs rules.RuleSet, app string, wanted, indexerCategories []int, indexerID int) bool {
	if len(Intersect(indexerCategories, wanted)) > 0 {
		return true
	}
	return rs.Matches(app, indexerID)
}

// ExpectedCategories computes what the consumer's stored category set should
// look like for this indexer, ignoring override-forced additions: the
// intersection of the consumer's wanted categories with the indexer's
// available categories. Override categories are pushed at write time and
// reversed back out before comparison, so they never appear here.
func ExpectedCategories(wanted, indexerCategories []int) []int {
	return Intersect(wanted, indexerCategories)
}

// ApplyOverrides returns copies of the category and anime-category sets with
// every category named by a matching rule added. Categories already present
// are not added twice, so repeated application is idempotent.
func ApplyOverrides(rs rules.RuleSet, app string, indexerID int, categories, animeCategories []int) ([]int, []int) {
	outCats := clone(categories)
	outAnime := clone(animeCategories)
	for _, r := range rs.Matching(app, indexerID) {
		if r.Category != 0 {
			outCats = add(outCats, r.Category)
		}
		if r.AnimeCategory != 0 {
			outAnime = add(outAnime, r.AnimeCategory)
		}
	}
	return outCats, outAnime
}

// ReverseOverrides returns copies of the category and anime-category sets with
// every category named by a matching rule removed, if present. Applying then
// reversing the same rule set against the same base yields the original sets.
func ReverseOverrides(rs rules.RuleSet, app string, indexerID int, categories, animeCategories []int) ([]int, []int) {
	outCats := clone(categories)
	outAnime := clone(animeCategories)
	for _, r := range rs.Matching(app, indexerID) {
		if r.Category != 0 {
			outCats = remove(outCats, r.Category)
		}
		if r.AnimeCategory != 0 {
			outAnime = remove(outAnime, r.AnimeCategory)
		}
	}
	return outCats, outAnime
}
