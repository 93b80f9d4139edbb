package idgen

import (
	"sync/atomic"

	"github.com/google/uuid"
)

// Sequence hands out sequential identifiers. It is safe for concurrent
// use; every Next call returns a distinct value.
type Sequence struct {
	next atomic.Int64
}

// NewSequence creates a sequence whose first Next returns start.
func NewSequence(start int64) *Sequence {
	s := &Sequence{}
	s.next.Store(start)
	return s
}

// Next returns the current sequence value and advances the sequence.
func (s *Sequence) Next() int64 {
	return s.next.Add(1) - 1
}

// NewUUID returns a random (version 4) UUID as a string.
func NewUUID() string {
	return uuid.NewString()
}

// NewSortableUUID returns a time ordered (version 7) UUID as a string.
// Version 7 UUIDs sort by creation time, which keeps database indexes
// on identifier columns compact.
func NewSortableUUID() (string, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return "", err
	}
	return id.String(), nil
}
