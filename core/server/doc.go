// Package server holds configuration for the HTTP server mode.
//
// The server itself is assembled in the start command: a Fiber application
// with request-id and api-key middleware, a health endpoint, and the sync
// trigger/status routes registered by the syncer feature.
package server
