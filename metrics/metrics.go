// Package metrics records search and fill statistics in a private
// Prometheus registry so a CLI run can dump them in text exposition format.
//
// A nil *Recorder is valid and records nothing, which lets library callers
// pass metrics through without nil checks.
package metrics

import (
	"io"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/common/expfmt"
)

const namespace = "gridroute"

// Recorder owns one registry and the collectors registered on it.
type Recorder struct {
	reg *prometheus.Registry

	searches     *prometheus.CounterVec
	expanded     prometheus.Counter
	pathLength   prometheus.Histogram
	fills        prometheus.Counter
	filledCells  prometheus.Counter
	durationSecs *prometheus.HistogramVec
}

// NewRecorder creates a Recorder backed by a fresh registry.
func NewRecorder() *Recorder {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Recorder{
		reg: reg,
		searches: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "searches_total",
			Help:      "A* searches by outcome.",
		}, []string{"found"}),
		expanded: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "expanded_nodes_total",
			Help:      "Nodes popped from the A* frontier.",
		}),
		pathLength: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "path_length",
			Help:      "Steps on successful A* paths.",
			Buckets:   prometheus.ExponentialBuckets(1, 2, 12), // 1 to 2048 steps
		}),
		fills: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "fills_total",
			Help:      "Flood fills performed.",
		}),
		filledCells: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "filled_cells_total",
			Help:      "Cells recolored by flood fills.",
		}),
		durationSecs: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "operation_duration_seconds",
			Help:      "Wall time of search and fill operations.",
			Buckets:   prometheus.ExponentialBuckets(0.00001, 4, 10), // 10µs to ~2.6s
		}, []string{"op"}),
	}
}

// ObserveSearch records one completed A* search.
func (r *Recorder) ObserveSearch(found bool, expanded, steps int, elapsed time.Duration) {
	if r == nil {
		return
	}
	r.searches.WithLabelValues(strconv.FormatBool(found)).Inc()
	r.expanded.Add(float64(expanded))
	if found {
		r.pathLength.Observe(float64(steps))
	}
	r.durationSecs.WithLabelValues("search").Observe(elapsed.Seconds())
}

// ObserveFill records one completed flood fill.
func (r *Recorder) ObserveFill(filled int, elapsed time.Duration) {
	if r == nil {
		return
	}
	r.fills.Inc()
	r.filledCells.Add(float64(filled))
	r.durationSecs.WithLabelValues("fill").Observe(elapsed.Seconds())
}

// Gatherer exposes the underlying registry.
func (r *Recorder) Gatherer() prometheus.Gatherer {
	return r.reg
}

// WriteText renders every metric family in Prometheus text format.
// A nil Recorder writes nothing.
func (r *Recorder) WriteText(w io.Writer) error {
	if r == nil {
		return nil
	}
	families, err := r.reg.Gather()
	if err != nil {
		return err
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return err
		}
	}

	return nil
}
