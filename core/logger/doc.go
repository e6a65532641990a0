// Package logger provides a structured logging facility based on Zap.
//
// It offers a configured logger instance supporting development (console)
// and production (json) encodings, selected via configuration.
//
// # Correlation
//
// Two helpers attach correlation fields to a logger:
//
//   - WithRunID tags log entries with the id of the reconciliation run that
//     produced them. One run fans out over several consumer applications
//     concurrently, so the run id is what ties the interleaved output together.
//   - WithRequestID tags entries produced inside a Fiber request handler with
//     the request id injected by the requestid middleware.
//
// # Usage
//
//	log, _ := logger.New(&logger.Config{Level: "info", Format: "json"})
//	l := logger.WithRunID(log, runID)
//	l.Warn("orphaned indexer", zap.Int("indexer_id", id))
package logger
