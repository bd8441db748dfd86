// Package dirsize computes recursive directory sizes for the picker.
//
// The walk is synchronous and bounded: it stops descending past a maximum depth,
// scans at most a fixed number of entries per directory, and never enters a
// directory whose canonical path it has already visited during the same call.
// Totals are memoized in a bounded least-recently-used cache keyed by the path
// string as given. Cached totals are never invalidated; a directory that changes
// after it was measured keeps reporting its old total.
package dirsize
