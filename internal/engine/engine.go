// Package engine applies scripted operations to a table and collects the
// observable results: query answers, rejected inserts and rendered snapshots.
package engine

import (
	"errors"
	"fmt"
	"log"

	"github.com/MikhailWahib/probetable/internal/config"
	"github.com/MikhailWahib/probetable/internal/table"
)

// Recorder receives operation and slot-usage observations
type Recorder interface {
	RecordOp(strategy, op, result string)
	RecordSlots(strategy string, st table.Stats)
}

type noopRecorder struct{}

func (noopRecorder) RecordOp(string, string, string) {}
func (noopRecorder) RecordSlots(string, table.Stats) {}

// Outcome is the result of applying one Op
type Outcome struct {
	Op Op
	// Found is the answer to a ContainsOp and whether a RemoveOp removed anything
	Found bool
	// Err is set when an InsertOp was rejected
	Err error
	// Render is set for a SnapshotOp
	Render []string
}

// Result collects everything observable from a run
type Result struct {
	Final     []string
	Snapshots [][]string
	Outcomes  []Outcome
}

// Queries returns the outcomes of ContainsOp operations, in order
func (r Result) Queries() []Outcome {
	var out []Outcome
	for _, o := range r.Outcomes {
		if o.Op.Kind == ContainsOp {
			out = append(out, o)
		}
	}
	return out
}

// Rejected returns the outcomes of inserts that failed, in order
func (r Result) Rejected() []Outcome {
	var out []Outcome
	for _, o := range r.Outcomes {
		if o.Err != nil {
			out = append(out, o)
		}
	}
	return out
}

type Engine struct {
	cfg      *config.Config
	table    *table.Table
	recorder Recorder
}

// NewEngine builds an engine around a fresh table described by cfg.
// A nil cfg uses config.DefaultConfig.
func NewEngine(cfg *config.Config) (*Engine, error) {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	cfg.FillDefaults()

	strategy, err := cfg.ParsedStrategy()
	if err != nil {
		return nil, err
	}
	t, err := table.New(strategy, cfg.Size)
	if err != nil {
		return nil, err
	}

	return &Engine{
		cfg:      cfg,
		table:    t,
		recorder: noopRecorder{},
	}, nil
}

// SetRecorder routes observations to r. A nil r disables recording.
func (e *Engine) SetRecorder(r Recorder) {
	if r == nil {
		r = noopRecorder{}
	}
	e.recorder = r
}

// Table returns the underlying table
func (e *Engine) Table() *table.Table {
	return e.table
}

// Apply runs a single operation against the table
func (e *Engine) Apply(op Op) Outcome {
	out := Outcome{Op: op}
	result := "ok"

	switch op.Kind {
	case InsertOp:
		if err := e.table.Insert(op.Value); err != nil {
			out.Err = err
			result = "error"
			if errors.Is(err, table.ErrTableFull) {
				result = "full"
			}
			if e.cfg.Verbose {
				log.Printf("%s: %v", e.table.Strategy(), err)
			}
		}
	case ContainsOp:
		out.Found = e.table.Contains(op.Value)
		result = hitOrMiss(out.Found)
	case RemoveOp:
		out.Found = e.table.Remove(op.Value)
		result = hitOrMiss(out.Found)
	case SnapshotOp:
		out.Render = e.table.Render()
	default:
		out.Err = fmt.Errorf("unknown operation %s", op.Kind)
		result = "error"
	}

	strategy := e.table.Strategy().String()
	e.recorder.RecordOp(strategy, op.Kind.String(), result)
	e.recorder.RecordSlots(strategy, e.table.Stats())
	return out
}

// Render returns the current table render
func (e *Engine) Render() []string {
	return e.table.Render()
}

// Reset empties the table, keeping its strategy and size
func (e *Engine) Reset() {
	e.table.Reset()
	e.recorder.RecordSlots(e.table.Strategy().String(), e.table.Stats())
}

// ApplyAll runs ops in order and returns everything they produced
func (e *Engine) ApplyAll(ops []Op) Result {
	var res Result
	for _, op := range ops {
		out := e.Apply(op)
		if op.Kind == SnapshotOp {
			res.Snapshots = append(res.Snapshots, out.Render)
		}
		res.Outcomes = append(res.Outcomes, out)
	}
	res.Final = e.table.Render()
	return res
}

// Run applies ops to a fresh table described by cfg. Rejected inserts are
// reported in the result, not as an error; the error is only for an invalid cfg.
func Run(cfg *config.Config, ops []Op) (Result, error) {
	e, err := NewEngine(cfg)
	if err != nil {
		return Result{}, err
	}
	return e.ApplyAll(ops), nil
}

func hitOrMiss(found bool) string {
	if found {
		return "hit"
	}
	return "miss"
}
