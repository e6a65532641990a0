// Package apps implements the consumer side of the sync: one App variant per
// downstream application (sonarr, radarr, lidarr, readarr) plus the transport
// client that speaks their indexer APIs.
//
// The variants exist because the applications disagree on details the engine
// must never see: API version (v3 vs v1), default category dialect (TV,
// movies, music, books branches of the newznab tree), and record fields
// (anime categories only exist on sonarr). Everything else, from the feed URL
// scheme to field-list mapping and identity equality, is shared in the
// embedded base.
//
// Identity equality for the equivalence check is defined here explicitly:
// a record matches when its feed URL is exactly the source indexer's feed URL
// and the record is enabled for RSS and automatic search.
//
// Consumer records that do not point at the configured Prowlarr instance are
// treated as unmanaged: never reconciled, never reported as orphans, never
// touched.
package apps
