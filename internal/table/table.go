// Package table implements a fixed-capacity integer table with three
// interchangeable collision-resolution strategies: linear probing, quadratic
// probing and separate chaining. Deletion is always logical: removed entries
// stay in place as tombstones.
package table

import (
	"fmt"
	"strings"
)

// store is the slot representation backing a Table. One implementation is
// chosen at construction and never changes.
type store interface {
	insert(v int) error
	contains(v int) bool
	remove(v int) bool
	probe(v int) []int
	lines() []string
	stats() Stats
	reset()
}

// Stats summarizes slot usage
type Stats struct {
	Live    int
	Deleted int
	// Empty counts slots (or buckets, under Chaining) that never held an entry
	Empty int
}

// Table is a fixed-size hash table bound to one Strategy for its lifetime.
//
// A Table is not safe for concurrent mutation; callers sharing one across
// goroutines must synchronize externally.
type Table struct {
	strategy Strategy
	size     int
	store    store
}

// New creates an empty table of the given size using strategy
func New(strategy Strategy, size int) (*Table, error) {
	if size < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSize, size)
	}

	t := &Table{strategy: strategy, size: size}
	switch strategy {
	case LinearProbe:
		t.store = newOpenTable(size, linearStep{})
	case QuadraticProbe:
		t.store = newOpenTable(size, quadraticStep{})
	case Chaining:
		t.store = newChainTable(size)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownStrategy, strategy)
	}
	return t, nil
}

// Strategy returns the collision strategy the table was built with
func (t *Table) Strategy() Strategy { return t.strategy }

// Size returns the number of slots
func (t *Table) Size() int { return t.size }

// Insert places value in the table. Under open addressing it returns an error
// wrapping ErrTableFull when no empty or tombstoned slot is found within the
// probe bound; the table is left unchanged in that case.
func (t *Table) Insert(value int) error {
	if err := t.store.insert(value); err != nil {
		return fmt.Errorf("cannot insert value %d: %w", value, err)
	}
	return nil
}

// Contains reports whether a live entry holding value is present
func (t *Table) Contains(value int) bool {
	return t.store.contains(value)
}

// Remove tombstones the first live entry holding value along its probe
// sequence or chain. It returns false when nothing was removed.
func (t *Table) Remove(value int) bool {
	return t.store.remove(value)
}

// ProbeSequence returns the slot indices the strategy examines for value, in
// order, up to its probe bound. Under Chaining it is just the home bucket.
func (t *Table) ProbeSequence(value int) []int {
	return t.store.probe(value)
}

// Render returns one line per slot index describing its contents
func (t *Table) Render() []string {
	return t.store.lines()
}

// String returns Render joined by newlines
func (t *Table) String() string {
	return strings.Join(t.Render(), "\n")
}

// Stats returns the current slot usage
func (t *Table) Stats() Stats {
	return t.store.stats()
}

// LoadFactor is the ratio of stored entries, tombstones included, to slots.
// Under Chaining it may exceed 1.
func (t *Table) LoadFactor() float64 {
	s := t.store.stats()
	return float64(s.Live+s.Deleted) / float64(t.size)
}

// Reset discards every entry, tombstones included
func (t *Table) Reset() {
	t.store.reset()
}

func renderLine(index int, body string) string {
	return fmt.Sprintf("Index %d: %s", index, body)
}
