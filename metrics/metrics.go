// Package metrics exposes Prometheus collectors for loads and commits.
// A nil *Metrics is valid and records nothing.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Result label values.
const (
	ResultOK    = "ok"
	ResultError = "error"
)

type Metrics struct {
	loads          *prometheus.CounterVec
	commits        *prometheus.CounterVec
	commitDuration prometheus.Histogram
	retries        *prometheus.CounterVec
}

// New creates the collectors and registers them on reg.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		loads: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "pmxout_loads_total",
				Help: "Total number of startup loads by source and result",
			},
			[]string{"source", "result"},
		),
		commits: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "pmxout_commits_total",
				Help: "Total number of port assignment commits by result",
			},
			[]string{"result"},
		),
		commitDuration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "pmxout_commit_duration_seconds",
				Help:    "Duration of port assignment commits, retries included",
				Buckets: prometheus.DefBuckets,
			},
		),
		retries: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "pmxout_retries_total",
				Help: "Total number of retried remote calls by operation",
			},
			[]string{"op"},
		),
	}
	reg.MustRegister(m.loads, m.commits, m.commitDuration, m.retries)
	return m
}

func result(err error) string {
	if err != nil {
		return ResultError
	}
	return ResultOK
}

// ObserveLoad records one finished load of source ("outputs" or "ports").
func (m *Metrics) ObserveLoad(source string, err error) {
	if m == nil {
		return
	}
	m.loads.WithLabelValues(source, result(err)).Inc()
}

// ObserveCommit records one finished commit.
func (m *Metrics) ObserveCommit(d time.Duration, err error) {
	if m == nil {
		return
	}
	m.commits.WithLabelValues(result(err)).Inc()
	m.commitDuration.Observe(d.Seconds())
}

// IncRetry records one retried attempt of op.
func (m *Metrics) IncRetry(op string) {
	if m == nil {
		return
	}
	m.retries.WithLabelValues(op).Inc()
}
