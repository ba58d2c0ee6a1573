// Package metrics exposes table operation counters and slot gauges through
// Prometheus.
package metrics

import (
	"io"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"

	"github.com/MikhailWahib/probetable/internal/table"
)

// Recorder counts operations and tracks slot usage per strategy
type Recorder struct {
	ops   *prometheus.CounterVec
	slots *prometheus.GaugeVec
}

// NewRecorder creates a Recorder and registers its collectors with reg.
// It panics if the collectors are already registered.
func NewRecorder(reg prometheus.Registerer) *Recorder {
	r := &Recorder{
		ops: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "probetable_ops_total",
			Help: "Total number of table operations by strategy, operation and result",
		}, []string{"strategy", "op", "result"}),
		slots: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "probetable_slots",
			Help: "Number of slots or chain entries by strategy and state",
		}, []string{"strategy", "state"}),
	}
	reg.MustRegister(r.ops, r.slots)
	return r
}

// RecordOp increments the operation counter
func (r *Recorder) RecordOp(strategy, op, result string) {
	r.ops.WithLabelValues(strategy, op, result).Inc()
}

// RecordSlots sets the slot gauges from st
func (r *Recorder) RecordSlots(strategy string, st table.Stats) {
	r.slots.WithLabelValues(strategy, "live").Set(float64(st.Live))
	r.slots.WithLabelValues(strategy, "deleted").Set(float64(st.Deleted))
	r.slots.WithLabelValues(strategy, "empty").Set(float64(st.Empty))
}

// Dump writes every metric gathered from g in the Prometheus text format.
func Dump(w io.Writer, g prometheus.Gatherer) error {
	mfs, err := g.Gather()
	if err != nil {
		return err
	}
	for _, mf := range mfs {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return err
		}
	}
	return nil
}
