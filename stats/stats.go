// Package stats collects selection statistics on a private Prometheus
// registry and exposes the enable/disable/reset/dump entry points of the
// storage engine's statistics API.
//
// Recording is disabled until Enable is called:
//
//	stats.Enable()
//	defer stats.Disable()
//	// ... apply selections ...
//	report, _ := stats.Dump()
package stats

import (
	"encoding/json"
	"fmt"
	"sort"
	"sync/atomic"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"

	"github.com/hugr-lab/soma-go/dimension"
)

// Collector counts selection events. It implements selection.Recorder.
// Safe for concurrent use.
type Collector struct {
	enabled  atomic.Bool
	registry *prometheus.Registry

	pointsSelected *prometheus.CounterVec
	pointsSkipped  *prometheus.CounterVec
	rangesSelected *prometheus.CounterVec
	failures       *prometheus.CounterVec
}

// NewCollector creates a disabled collector with its own registry.
func NewCollector() *Collector {
	c := &Collector{
		registry: prometheus.NewRegistry(),
		pointsSelected: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "soma_points_selected_total",
				Help: "Total number of point predicates installed",
			},
			[]string{"type"},
		),
		pointsSkipped: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "soma_points_skipped_total",
				Help: "Total number of candidate points outside the dimension domain",
			},
			[]string{"type"},
		),
		rangesSelected: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "soma_ranges_selected_total",
				Help: "Total number of range predicates installed",
			},
			[]string{"type"},
		),
		failures: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "soma_selection_failures_total",
				Help: "Total number of failed selection calls",
			},
			[]string{"op", "reason"},
		),
	}
	c.registry.MustRegister(c.pointsSelected, c.pointsSkipped, c.rangesSelected, c.failures)
	return c
}

// Enable turns recording on.
func (c *Collector) Enable() { c.enabled.Store(true) }

// Disable turns recording off. Collected values are kept.
func (c *Collector) Disable() { c.enabled.Store(false) }

// Enabled reports whether recording is on.
func (c *Collector) Enabled() bool { return c.enabled.Load() }

// Reset sets all statistics to zero.
func (c *Collector) Reset() {
	c.pointsSelected.Reset()
	c.pointsSkipped.Reset()
	c.rangesSelected.Reset()
	c.failures.Reset()
}

// Registry returns the Prometheus registry for exposition, e.g. with
// promhttp.HandlerFor.
func (c *Collector) Registry() *prometheus.Registry { return c.registry }

// PointSelected records an installed point predicate.
func (c *Collector) PointSelected(t dimension.ScalarType) {
	if c.Enabled() {
		c.pointsSelected.WithLabelValues(t.String()).Inc()
	}
}

// PointSkipped records a candidate point outside the domain.
func (c *Collector) PointSkipped(t dimension.ScalarType) {
	if c.Enabled() {
		c.pointsSkipped.WithLabelValues(t.String()).Inc()
	}
}

// RangesSelected records n installed range predicates.
func (c *Collector) RangesSelected(t dimension.ScalarType, n int) {
	if c.Enabled() {
		c.rangesSelected.WithLabelValues(t.String()).Add(float64(n))
	}
}

// SelectionFailed records a failed applicator call.
func (c *Collector) SelectionFailed(op, reason string) {
	if c.Enabled() {
		c.failures.WithLabelValues(op, reason).Inc()
	}
}

// Sample is one labelled counter value in a dump.
type Sample struct {
	Labels map[string]string `json:"labels"`
	Value  float64           `json:"value"`
}

// Snapshot returns current counter values keyed by metric name.
// Metrics without samples are omitted.
func (c *Collector) Snapshot() (map[string][]Sample, error) {
	families, err := c.registry.Gather()
	if err != nil {
		return nil, fmt.Errorf("failed to gather statistics: %w", err)
	}

	out := make(map[string][]Sample, len(families))
	for _, mf := range families {
		samples := make([]Sample, 0, len(mf.GetMetric()))
		for _, m := range mf.GetMetric() {
			samples = append(samples, Sample{
				Labels: labels(m),
				Value:  m.GetCounter().GetValue(),
			})
		}
		if len(samples) > 0 {
			out[mf.GetName()] = samples
		}
	}
	return out, nil
}

// Dump returns all statistics as a JSON document.
func (c *Collector) Dump() (string, error) {
	snap, err := c.Snapshot()
	if err != nil {
		return "", err
	}
	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to encode statistics: %w", err)
	}
	return string(data), nil
}

// Value returns the counter value for a metric. labelValues are given in
// label-name order. Returns 0 if nothing was recorded.
func (c *Collector) Value(metric string, labelValues ...string) float64 {
	snap, err := c.Snapshot()
	if err != nil {
		return 0
	}
	for _, s := range snap[metric] {
		if matchLabels(s.Labels, labelValues) {
			return s.Value
		}
	}
	return 0
}

func labels(m *dto.Metric) map[string]string {
	out := make(map[string]string, len(m.GetLabel()))
	for _, lp := range m.GetLabel() {
		out[lp.GetName()] = lp.GetValue()
	}
	return out
}

// matchLabels compares label values sorted by label name, matching how
// Prometheus orders label pairs.
func matchLabels(have map[string]string, want []string) bool {
	if len(have) != len(want) {
		return false
	}
	names := make([]string, 0, len(have))
	for name := range have {
		names = append(names, name)
	}
	sort.Strings(names)
	for i, name := range names {
		if have[name] != want[i] {
			return false
		}
	}
	return true
}

// Default is the process-wide collector used by the package functions.
var Default = NewCollector()

// Enable turns recording on for Default.
func Enable() { Default.Enable() }

// Disable turns recording off for Default.
func Disable() { Default.Disable() }

// Reset zeroes Default.
func Reset() { Default.Reset() }

// Dump returns Default's statistics as JSON.
func Dump() (string, error) { return Default.Dump() }
