// Package transport provides the JSON REST client used to talk to the
// aggregator and to each consumer application.
//
// The client is deliberately thin: it handles authentication (X-Api-Key),
// JSON encoding/decoding, and maps non-success statuses to a StatusError
// carrying the server-reported body. Everything above it (endpoints, record
// mapping, retry policy) belongs to the feature packages.
//
// The underlying http.Transport uses strict connection, TLS, and
// response-header timeouts so a single unreachable consumer cannot stall
// a reconciliation run.
package transport
