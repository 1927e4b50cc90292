// Package catalog holds the fixed mapping from (operation, status) to the
// human-readable messages returned in error and status envelopes.
//
// Messages are looked up with Message. Every operation has a message for the
// statuses it can produce; anything else falls back to a generic message for
// the status so callers never emit an empty string.
package catalog
