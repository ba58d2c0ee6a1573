package record

import "strconv"

// Entry represents a single value placed in a table slot or chain.
// Entries are never physically removed; deletion only flips Deleted.
type Entry struct {
	Value   int
	Deleted bool
}

// NewEntry returns a live entry holding v
func NewEntry(v int) Entry {
	return Entry{Value: v}
}

// Matches reports whether the entry is live and holds v
func (e Entry) Matches(v int) bool {
	return !e.Deleted && e.Value == v
}

// Delete marks the entry as a tombstone
func (e *Entry) Delete() {
	e.Deleted = true
}

// String returns the value, or DeletedMarker for a tombstone
func (e Entry) String() string {
	if e.Deleted {
		return DeletedMarker
	}
	return strconv.Itoa(e.Value)
}
