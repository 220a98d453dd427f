// Package ledger is a minimal append-only business ledger. Entries are
// timestamped on append and can be looked up with a predicate or with an
// expression such as `data > 1000`.
package ledger

import (
	"time"

	"github.com/samber/lo"
	"golang.org/x/exp/constraints"

	"github.com/prateek041/typedpipes/internal/errkind"
)

// ErrInvalidArgument matches rejected IDs and malformed query expressions.
var ErrInvalidArgument = errkind.ErrInvalidArgument

// Entry is one ledger line.
type Entry[ID comparable, D any] struct {
	ID        ID
	Data      D
	Timestamp time.Time
}

// Clock supplies entry timestamps.
type Clock func() time.Time

// Ledger holds entries in append order. It is not safe for concurrent
// use.
type Ledger[ID comparable, D any] struct {
	entries []Entry[ID, D]
	clock   Clock
	checkID func(ID) error
}

// Option configures a Ledger.
type Option[ID comparable, D any] func(*Ledger[ID, D])

// WithClock replaces time.Now as the timestamp source.
func WithClock[ID comparable, D any](clock Clock) Option[ID, D] {
	return func(l *Ledger[ID, D]) { l.clock = clock }
}

// RejectNegativeIDs makes Add refuse IDs below zero.
func RejectNegativeIDs[ID constraints.Signed, D any]() Option[ID, D] {
	return func(l *Ledger[ID, D]) {
		l.checkID = func(id ID) error {
			if id < 0 {
				return errkind.InvalidArgument("ledger.Add", "id cannot be negative: %d", id)
			}
			return nil
		}
	}
}

// New returns an empty ledger.
func New[ID comparable, D any](opts ...Option[ID, D]) *Ledger[ID, D] {
	l := &Ledger[ID, D]{clock: time.Now}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Add stamps a new entry with the current time and appends it.
func (l *Ledger[ID, D]) Add(id ID, data D) (Entry[ID, D], error) {
	if l.checkID != nil {
		if err := l.checkID(id); err != nil {
			return Entry[ID, D]{}, err
		}
	}
	entry := Entry[ID, D]{ID: id, Data: data, Timestamp: l.clock()}
	l.entries = append(l.entries, entry)
	return entry, nil
}

// Len returns the number of entries.
func (l *Ledger[ID, D]) Len() int {
	return len(l.entries)
}

// Entries returns a copy of every entry in append order.
func (l *Ledger[ID, D]) Entries() []Entry[ID, D] {
	return append([]Entry[ID, D]{}, l.entries...)
}

// Find returns the entries satisfying pred, in append order. The ledger
// itself is left untouched.
func (l *Ledger[ID, D]) Find(pred func(Entry[ID, D]) bool) []Entry[ID, D] {
	return lo.Filter(l.entries, func(entry Entry[ID, D], _ int) bool {
		return pred(entry)
	})
}
