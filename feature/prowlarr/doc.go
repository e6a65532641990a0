// Package prowlarr is the source side of the sync: it fetches the
// authoritative indexer catalog from a Prowlarr instance and maps it into
// generic source records.
//
// Each indexer's capabilities carry a category tree; the tree is flattened
// into a plain category set (top-level ids and subcategory ids) because the
// reconciliation engine only ever does set operations on categories.
//
// The package also owns the feed URL scheme: consumers are pointed at
// Prowlarr's per-indexer newznab endpoint ("{base}/{id}/api"), and the
// indexer id is recovered from that URL when consumer records are mapped
// back into generic form.
package prowlarr
