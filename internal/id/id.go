// Package id generates ULID identifiers for trades and journal records.
// ULIDs are lexicographically sortable by creation time, which keeps
// exported journals ordered without an extra sequence column.
package id

import "github.com/oklog/ulid/v2"

// New returns a fresh ULID string. ulid.Make draws from a process-wide
// monotonic entropy source, so IDs minted within the same millisecond still
// sort in creation order.
func New() string {
	return ulid.Make().String()
}
