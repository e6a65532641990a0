package prowlarr

import "indexer-sync/core/reconcile"

// indexerRecord is the raw shape of one indexer in Prowlarr's API response.
// Only the fields the sync needs are mapped.
type indexerRecord struct {
	ID           int          `json:"id"`
	Name         string       `json:"name"`
	Enable       bool         `json:"enable"`
	Capabilities capabilities `json:"capabilities"`
}

type capabilities struct {
	Categories []category `json:"categories"`
}

// category is one node in the capabilities category tree.
type category struct {
	ID            int        `json:"id"`
	Name          string     `json:"name"`
	SubCategories []category `json:"subCategories"`
}

// toSource flattens the record into a generic source indexer. The category
// tree is flattened one level deep: top-level ids plus their subcategory ids,
// deduplicated.
func (r indexerRecord) toSource() reconcile.SourceIndexer {
	return reconcile.SourceIndexer{
		ID:         r.ID,
		Name:       r.Name,
		Categories: flattenCategories(r.Capabilities.Categories),
	}
}

func flattenCategories(tree []category) []int {
	seen := make(map[int]struct{})
	var out []int
	for _, top := range tree {
		if _, dup := seen[top.ID]; !dup {
			seen[top.ID] = struct{}{}
			out = append(out, top.ID)
		}
		for _, sub := range top.SubCategories {
			if _, dup := seen[sub.ID]; !dup {
				seen[sub.ID] = struct{}{}
				out = append(out, sub.ID)
			}
		}
	}
	return out
}
