// Package idgen generates identifiers: monotonically increasing
// sequence numbers for identifiers that must sort by creation order,
// and UUIDs for identifiers that must be unpredictable or globally
// unique.
package idgen
