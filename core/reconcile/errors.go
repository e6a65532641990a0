package reconcile

import "fmt"

// FetchError reports a failure to read live state, either the source catalog
// or one consumer's indexer list. A consumer-scoped fetch failure aborts that
// consumer's run only; a source catalog failure aborts the whole run.
type FetchError struct {
	// Target names what could not be fetched (e.g. "prowlarr", "sonarr").
	Target string
	Err    error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("failed to fetch state from %s: %v", e.Target, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

// MappingError reports a single raw record that could not be mapped into a
// generic indexer. The record is skipped; the rest of the batch proceeds.
type MappingError struct {
	// App is the consumer the record came from.
	App string
	// Record identifies the offending record, by name where available.
	Record string
	Err    error
}

func (e *MappingError) Error() string {
	return fmt.Sprintf("failed to map record %q from %s: %v", e.Record, e.App, e.Err)
}

func (e *MappingError) Unwrap() error { return e.Err }

// WriteError reports a create or update call rejected by a consumer. The
// entry is dropped from success accounting; sibling entries proceed.
type WriteError struct {
	// App is the consumer that rejected the call.
	App string
	// Indexer is the name of the rejected entry.
	Indexer string
	Err     error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("%s rejected indexer %q: %v", e.App, e.Indexer, e.Err)
}

func (e *WriteError) Unwrap() error { return e.Err }
