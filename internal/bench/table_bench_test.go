package bench

import (
	"math/rand"
	"testing"

	"github.com/MikhailWahib/probetable"
)

const benchSize = 1024

var strategies = []probetable.Strategy{
	probetable.LinearProbe,
	probetable.QuadraticProbe,
	probetable.Chaining,
}

func setupBenchTable(b *testing.B, s probetable.Strategy, fill int) *probetable.Table {
	b.Helper()
	t, err := probetable.New(s, &probetable.Config{Size: benchSize})
	if err != nil {
		b.Fatalf("Failed to create table: %v", err)
	}
	for i := 0; i < fill; i++ {
		if err := t.Insert(i); err != nil {
			b.Fatalf("Pre-populate insert failed: %v", err)
		}
	}
	return t
}

func BenchmarkInsert(b *testing.B) {
	for _, s := range strategies {
		b.Run(s.String(), func(b *testing.B) {
			t := setupBenchTable(b, s, 0)

			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				if i%(benchSize/2) == 0 {
					t.Reset()
				}
				if err := t.Insert(rand.Int()); err != nil {
					t.Reset()
				}
			}
		})
	}
}

func BenchmarkContains(b *testing.B) {
	for _, s := range strategies {
		b.Run(s.String(), func(b *testing.B) {
			numKeys := benchSize / 2
			t := setupBenchTable(b, s, numKeys)

			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				if !t.Contains(i % numKeys) {
					b.Fatalf("value not found")
				}
			}
		})
	}
}

func BenchmarkContainsMiss(b *testing.B) {
	for _, s := range strategies {
		b.Run(s.String(), func(b *testing.B) {
			t := setupBenchTable(b, s, benchSize/2)

			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				if t.Contains(-1 - rand.Intn(benchSize)) {
					b.Fatalf("unexpected hit")
				}
			}
		})
	}
}

// Every value collides on bucket 0 and the first half are tombstoned, so
// lookups must walk past them.
func BenchmarkContainsThroughTombstones(b *testing.B) {
	for _, s := range []probetable.Strategy{probetable.LinearProbe, probetable.Chaining} {
		b.Run(s.String(), func(b *testing.B) {
			t, err := probetable.New(s, &probetable.Config{Size: benchSize})
			if err != nil {
				b.Fatalf("Failed to create table: %v", err)
			}
			n := benchSize / 2
			for i := 0; i < n; i++ {
				if err := t.Insert(i * benchSize); err != nil {
					b.Fatalf("Pre-populate insert failed: %v", err)
				}
			}
			for i := 0; i < n/2; i++ {
				t.Remove(i * benchSize)
			}

			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				v := (n/2 + i%(n/2)) * benchSize
				if !t.Contains(v) {
					b.Fatalf("value not found")
				}
			}
		})
	}
}

func BenchmarkDemoScript(b *testing.B) {
	script := probetable.DemoScript()
	for _, s := range strategies {
		b.Run(s.String(), func(b *testing.B) {
			cfg := &probetable.Config{Strategy: s.String()}
			for i := 0; i < b.N; i++ {
				if _, err := probetable.Run(cfg, script); err != nil {
					b.Fatalf("Run failed: %v", err)
				}
			}
		})
	}
}
