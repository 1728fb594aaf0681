// Package metrics exposes Prometheus collectors for run, task, and model
// call activity.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics bundles every collector the orchestrator and API report into.
type Metrics struct {
	RunsStarted    prometheus.Counter
	RunsFinalized  *prometheus.CounterVec // label: status
	TasksEvaluated *prometheus.CounterVec // labels: phase, result
	EventsAppended prometheus.Counter
	TokensUsed     *prometheus.CounterVec // label: direction
	ModelCallMs    prometheus.Histogram
	ActiveWorkers  prometheus.Gauge
}

// New registers all collectors with reg. A nil reg registers into a private
// registry, which keeps tests isolated.
func New(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.NewRegistry()
	}
	factory := promauto.With(reg)
	return &Metrics{
		RunsStarted: factory.NewCounter(prometheus.CounterOpts{
			Name: "mintaborate_runs_started_total",
			Help: "Runs launched by the orchestrator.",
		}),
		RunsFinalized: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "mintaborate_runs_finalized_total",
			Help: "Runs finalized, by terminal status.",
		}, []string{"status"}),
		TasksEvaluated: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "mintaborate_tasks_evaluated_total",
			Help: "Task evaluations recorded, by phase and result.",
		}, []string{"phase", "result"}),
		EventsAppended: factory.NewCounter(prometheus.CounterOpts{
			Name: "mintaborate_run_events_total",
			Help: "Run events appended to the event log.",
		}),
		TokensUsed: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "mintaborate_model_tokens_total",
			Help: "Model tokens consumed, by direction (input or output).",
		}, []string{"direction"}),
		ModelCallMs: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "mintaborate_model_call_duration_ms",
			Help:    "Latency of model calls in milliseconds.",
			Buckets: prometheus.ExponentialBuckets(50, 2, 12),
		}),
		ActiveWorkers: factory.NewGauge(prometheus.GaugeOpts{
			Name: "mintaborate_active_workers",
			Help: "Workers currently driving an agent loop.",
		}),
	}
}
