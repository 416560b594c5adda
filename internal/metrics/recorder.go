// Package metrics records conversion activity in a private Prometheus
// registry and reads it back for the CLI summary.
package metrics

import (
	"math"
	"sort"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	dto "github.com/prometheus/client_model/go"

	"github.com/agbru/fibkm/internal/conversion"
)

const namespace = "fibkm"

// Metric names, without the namespace prefix.
const (
	conversionsName = "conversions_total"
	failuresName    = "conversion_failures_total"
	relErrorName    = "conversion_relative_error"
	heapAllocName   = "heap_alloc_bytes"
	numGCName       = "gc_cycles_total"
)

// Recorder is a conversion.Observer that counts conversions per method and
// outcome, counts rejected inputs, and tracks the relative error of each
// method against the exact formula. It is safe for concurrent use.
type Recorder struct {
	registry    *prometheus.Registry
	conversions *prometheus.CounterVec
	failures    *prometheus.CounterVec
	relError    *prometheus.HistogramVec
}

// NewRecorder creates a Recorder backed by its own registry, so several
// recorders never collide.
func NewRecorder() *Recorder {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	r := &Recorder{
		registry: reg,
		conversions: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      conversionsName,
			Help:      "Number of conversions by method and outcome.",
		}, []string{"method", "outcome"}),
		failures: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      failuresName,
			Help:      "Number of rejected inputs by method.",
		}, []string{"method"}),
		relError: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      relErrorName,
			Help:      "Relative error of each conversion against the exact formula.",
			Buckets:   []float64{0, 1e-6, 1e-4, 1e-3, 2.5e-3, 5e-3, 1e-2, 5e-2},
		}, []string{"method"}),
	}
	registerRuntimeGauges(factory)
	return r
}

// Registry exposes the underlying registry, for instance to serve it.
func (r *Recorder) Registry() *prometheus.Registry { return r.registry }

// Observe implements conversion.Observer.
func (r *Recorder) Observe(res conversion.Result) {
	method := string(res.Method)
	r.conversions.WithLabelValues(method, string(res.Outcome)).Inc()

	exact := conversion.Exact(res.Miles)
	if exact > 0 && !math.IsInf(exact, 0) {
		r.relError.WithLabelValues(method).Observe(math.Abs(res.Kilometers-exact) / exact)
	}
}

// ObserveError implements conversion.Observer.
func (r *Recorder) ObserveError(method conversion.Method, _ float64, _ error) {
	r.failures.WithLabelValues(string(method)).Inc()
}

// MethodSnapshot is the recorded activity of one method.
type MethodSnapshot struct {
	Method       string            `json:"method"`
	Conversions  uint64            `json:"conversions"`
	Failures     uint64            `json:"failures"`
	Fallbacks    uint64            `json:"fallbacks"`
	Outcomes     map[string]uint64 `json:"outcomes"`
	MeanRelError float64           `json:"mean_rel_error"`
}

// Snapshot is a point-in-time reading of a Recorder.
type Snapshot struct {
	Methods   []MethodSnapshot `json:"methods"`
	HeapAlloc uint64           `json:"heap_alloc_bytes"`
	NumGC     uint64           `json:"gc_cycles"`
}

// Snapshot gathers the registry and folds it into per-method figures, sorted
// by method name.
func (r *Recorder) Snapshot() (Snapshot, error) {
	families, err := r.registry.Gather()
	if err != nil {
		return Snapshot{}, err
	}

	var snap Snapshot
	byMethod := make(map[string]*MethodSnapshot)
	get := func(method string) *MethodSnapshot {
		ms, ok := byMethod[method]
		if !ok {
			ms = &MethodSnapshot{Method: method, Outcomes: make(map[string]uint64)}
			byMethod[method] = ms
		}
		return ms
	}

	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			labels := labelsOf(m)

			switch mf.GetName() {
			case namespace + "_" + conversionsName:
				ms := get(labels["method"])
				n := uint64(m.GetCounter().GetValue())
				ms.Conversions += n
				ms.Outcomes[labels["outcome"]] += n
				if conversion.Outcome(labels["outcome"]).IsFallback() {
					ms.Fallbacks += n
				}
			case namespace + "_" + failuresName:
				get(labels["method"]).Failures += uint64(m.GetCounter().GetValue())
			case namespace + "_" + relErrorName:
				h := m.GetHistogram()
				if h.GetSampleCount() > 0 {
					get(labels["method"]).MeanRelError = h.GetSampleSum() / float64(h.GetSampleCount())
				}
			case namespace + "_" + heapAllocName:
				snap.HeapAlloc = uint64(m.GetGauge().GetValue())
			case namespace + "_" + numGCName:
				snap.NumGC = uint64(m.GetCounter().GetValue())
			}
		}
	}

	for _, ms := range byMethod {
		snap.Methods = append(snap.Methods, *ms)
	}
	sort.Slice(snap.Methods, func(i, j int) bool { return snap.Methods[i].Method < snap.Methods[j].Method })
	return snap, nil
}

func labelsOf(m *dto.Metric) map[string]string {
	labels := make(map[string]string, len(m.GetLabel()))
	for _, lp := range m.GetLabel() {
		labels[lp.GetName()] = lp.GetValue()
	}
	return labels
}
