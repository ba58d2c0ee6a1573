package table

import (
	"strings"

	"github.com/MikhailWahib/probetable/internal/record"
)

// chainTable keeps an append-only chain per bucket. A nil chain is a bucket
// that never received an entry.
type chainTable struct {
	buckets [][]record.Entry
}

func newChainTable(size int) *chainTable {
	return &chainTable{buckets: make([][]record.Entry, size)}
}

func (t *chainTable) insert(v int) error {
	h := Hash(v, len(t.buckets))
	t.buckets[h] = append(t.buckets[h], record.NewEntry(v))
	return nil
}

func (t *chainTable) contains(v int) bool {
	for _, e := range t.buckets[Hash(v, len(t.buckets))] {
		if e.Matches(v) {
			return true
		}
	}
	return false
}

func (t *chainTable) remove(v int) bool {
	chain := t.buckets[Hash(v, len(t.buckets))]
	for i := range chain {
		if chain[i].Matches(v) {
			chain[i].Delete()
			return true
		}
	}
	return false
}

func (t *chainTable) probe(v int) []int {
	return []int{Hash(v, len(t.buckets))}
}

func (t *chainTable) lines() []string {
	out := make([]string, len(t.buckets))
	for i, chain := range t.buckets {
		if chain == nil {
			out[i] = renderLine(i, record.EmptyMarker)
			continue
		}
		var b strings.Builder
		for _, e := range chain {
			b.WriteString(e.String())
			b.WriteString(", ")
		}
		b.WriteString(record.ChainTerminator)
		out[i] = renderLine(i, b.String())
	}
	return out
}

func (t *chainTable) stats() Stats {
	var st Stats
	for _, chain := range t.buckets {
		if chain == nil {
			st.Empty++
			continue
		}
		for _, e := range chain {
			if e.Deleted {
				st.Deleted++
			} else {
				st.Live++
			}
		}
	}
	return st
}

func (t *chainTable) reset() {
	t.buckets = make([][]record.Entry, len(t.buckets))
}
