// Package probetable is a fixed-capacity integer hash table demonstrating three
// collision-resolution strategies: linear probing, quadratic probing and
// separate chaining.
//
// Deletion is logical. A removed entry stays in its slot (or chain) as a
// tombstone so that probe sequences passing through it still reach entries
// placed after it; open-addressing inserts may reuse a tombstoned slot.
//
// Example usage:
//
//	t, err := probetable.New(probetable.LinearProbe, nil)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	if err := t.Insert(20); errors.Is(err, probetable.ErrTableFull) {
//		log.Printf("Insert failed: %v", err)
//	}
//
//	if t.Contains(20) {
//		t.Remove(20)
//	}
//
//	for _, line := range t.Render() {
//		fmt.Println(line)
//	}
//
// A Table is not safe for concurrent mutation without external synchronization.
package probetable

import (
	"github.com/MikhailWahib/probetable/internal/config"
	"github.com/MikhailWahib/probetable/internal/engine"
	"github.com/MikhailWahib/probetable/internal/table"
)

// Config is an alias for config.Config, re-exported for user convenience.
type Config = config.Config

// DefaultConfig returns a Config struct populated with default values. Re-exported for user convenience.
var DefaultConfig = config.DefaultConfig

// Table is an alias for table.Table.
type Table = table.Table

// Strategy is an alias for table.Strategy.
type Strategy = table.Strategy

// Collision strategies.
const (
	LinearProbe    = table.LinearProbe
	QuadraticProbe = table.QuadraticProbe
	Chaining       = table.Chaining
)

// ErrTableFull is returned by Insert when an open-addressing table has no
// free or tombstoned slot within the strategy's probe bound.
var ErrTableFull = table.ErrTableFull

// Op, Result and the op constructors drive Run.
type (
	Op     = engine.Op
	Result = engine.Result
)

// Op constructors, re-exported for user convenience.
var (
	Insert     = engine.Insert
	Contains   = engine.Contains
	Remove     = engine.Remove
	Snapshot   = engine.Snapshot
	DemoScript = engine.DemoScript
)

// New creates an empty table bound to strategy. Only cfg.Size is consulted;
// a nil cfg uses the default size of 10.
func New(strategy Strategy, cfg *Config) (*Table, error) {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	size := cfg.Size
	if size == 0 {
		size = config.DefaultConfig().Size
	}
	return table.New(strategy, size)
}

// Run applies ops to a fresh table described by cfg and returns the final
// render, intermediate snapshots and the outcome of every operation.
func Run(cfg *Config, ops []Op) (Result, error) {
	return engine.Run(cfg, ops)
}
