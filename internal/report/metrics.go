package report

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/randomizedcoder/queue-latency-profiler/internal/harness"
)

// LatencyBuckets spans 64ns to ~4.3ms in powers of two.
var LatencyBuckets = prometheus.ExponentialBuckets(64e-9, 2, 17)

// Metrics holds the collectors describing profiler runs.
type Metrics struct {
	Latency   *prometheus.HistogramVec
	Messages  *prometheus.CounterVec
	Quantiles *prometheus.GaugeVec
	Mean      *prometheus.GaugeVec
	Duration  *prometheus.GaugeVec
}

// NewMetrics creates the collectors and registers them with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		Latency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "queue",
			Name:      "latency_seconds",
			Help:      "Enqueue-to-dequeue latency of profiled messages.",
			Buckets:   LatencyBuckets,
		}, []string{"queue"}),
		Messages: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "queue",
			Name:      "messages_total",
			Help:      "Messages passed through the queue.",
		}, []string{"queue"}),
		Quantiles: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: "queue",
			Name:      "latency_quantile_seconds",
			Help:      "Nearest-rank latency percentiles of the run.",
		}, []string{"queue", "quantile"}),
		Mean: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: "queue",
			Name:      "latency_mean_seconds",
			Help:      "Mean latency of the run.",
		}, []string{"queue"}),
		Duration: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: "queue",
			Name:      "run_duration_seconds",
			Help:      "Wall-clock duration of the run.",
		}, []string{"queue"}),
	}
	reg.MustRegister(m.Latency, m.Messages, m.Quantiles, m.Mean, m.Duration)
	return m
}

func nsToSeconds(ns int64) float64 {
	return float64(ns) / 1e9
}

// Observe records a finished run. Call it after the run has been joined,
// never from the producer or consumer.
func (m *Metrics) Observe(res *harness.Result) {
	h := m.Latency.WithLabelValues(res.Name)
	for _, s := range res.Samples {
		h.Observe(nsToSeconds(s))
	}

	s := res.Summary
	m.Messages.WithLabelValues(res.Name).Add(float64(s.Count))
	m.Mean.WithLabelValues(res.Name).Set(s.Mean / 1e9)
	m.Duration.WithLabelValues(res.Name).Set(res.Elapsed.Seconds())

	for _, q := range []struct {
		label string
		ns    int64
	}{
		{"0.5", s.P50},
		{"0.9", s.P90},
		{"0.99", s.P99},
		{"0.999", s.P999},
	} {
		m.Quantiles.WithLabelValues(res.Name, q.label).Set(nsToSeconds(q.ns))
	}
}

// WriteMetricsFile writes a Prometheus textfile for res to
// MetricsPath(dir, res.Name) and returns the path.
func WriteMetricsFile(dir string, res *harness.Result) (string, error) {
	reg := prometheus.NewRegistry()
	NewMetrics(reg).Observe(res)

	path := MetricsPath(dir, res.Name)
	if err := prometheus.WriteToTextfile(path, reg); err != nil {
		return "", fmt.Errorf("write metrics %s: %w", path, err)
	}
	return path, nil
}
