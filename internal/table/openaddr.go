package table

import "github.com/MikhailWahib/probetable/internal/record"

// slot is a single open-addressing cell. A slot that once held an entry
// stays used after the entry is deleted.
type slot struct {
	used  bool
	entry record.Entry
}

// stepper defines a probe sequence: the offset from the home bucket at step i
// and how many steps a probe may take before giving up.
type stepper interface {
	offset(i, size int) int
	limit(size int) int
}

type linearStep struct{}

func (linearStep) offset(i, size int) int { return i % size }

// limit covers every slot once
func (linearStep) limit(size int) int { return size }

type quadraticStep struct{}

func (quadraticStep) offset(i, size int) int { return (i * i) % size }

// limit stops after step size-2. Quadratic sequences do not reach every slot,
// so inserts can report a full table while empty slots remain.
func (quadraticStep) limit(size int) int {
	if size < 2 {
		return 1
	}
	return size - 1
}

type openTable struct {
	slots []slot
	step  stepper
}

func newOpenTable(size int, step stepper) *openTable {
	return &openTable{
		slots: make([]slot, size),
		step:  step,
	}
}

func (t *openTable) index(home, i int) int {
	return (home + t.step.offset(i, len(t.slots))) % len(t.slots)
}

func (t *openTable) insert(v int) error {
	home := Hash(v, len(t.slots))
	for i, n := 0, t.step.limit(len(t.slots)); i < n; i++ {
		s := &t.slots[t.index(home, i)]
		if !s.used || s.entry.Deleted {
			*s = slot{used: true, entry: record.NewEntry(v)}
			return nil
		}
	}
	return ErrTableFull
}

// find returns the slot index of the first live entry holding v, or -1.
// Tombstones are skipped; an empty slot ends the search.
func (t *openTable) find(v int) int {
	home := Hash(v, len(t.slots))
	for i, n := 0, t.step.limit(len(t.slots)); i < n; i++ {
		idx := t.index(home, i)
		s := t.slots[idx]
		if !s.used {
			return -1
		}
		if s.entry.Matches(v) {
			return idx
		}
	}
	return -1
}

func (t *openTable) contains(v int) bool {
	return t.find(v) >= 0
}

func (t *openTable) remove(v int) bool {
	idx := t.find(v)
	if idx < 0 {
		return false
	}
	t.slots[idx].entry.Delete()
	return true
}

func (t *openTable) probe(v int) []int {
	home := Hash(v, len(t.slots))
	n := t.step.limit(len(t.slots))
	seq := make([]int, 0, n)
	for i := 0; i < n; i++ {
		seq = append(seq, t.index(home, i))
	}
	return seq
}

func (t *openTable) lines() []string {
	out := make([]string, len(t.slots))
	for i, s := range t.slots {
		body := record.EmptyMarker
		if s.used {
			body = s.entry.String()
		}
		out[i] = renderLine(i, body)
	}
	return out
}

func (t *openTable) stats() Stats {
	var st Stats
	for _, s := range t.slots {
		switch {
		case !s.used:
			st.Empty++
		case s.entry.Deleted:
			st.Deleted++
		default:
			st.Live++
		}
	}
	return st
}

func (t *openTable) reset() {
	t.slots = make([]slot, len(t.slots))
}
