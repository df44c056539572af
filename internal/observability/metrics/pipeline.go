package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// PipelineMetrics collects stage and provider instrumentation for one
// worker process. All methods are nil-safe so tests can pass nil.
type PipelineMetrics struct {
	registry *prometheus.Registry

	stageTotal      *prometheus.CounterVec
	stageDuration   *prometheus.HistogramVec
	stageRetries    *prometheus.CounterVec
	stagesInFlight  prometheus.Gauge
	providerLatency *prometheus.HistogramVec
	uploadsTotal    *prometheus.CounterVec
}

func NewPipelineMetrics() *PipelineMetrics {
	registry := prometheus.NewRegistry()

	stageTotal := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "papervault",
			Subsystem: "pipeline",
			Name:      "stage_total",
			Help:      "Total finished stage runs by stage and outcome.",
		},
		[]string{"stage", "outcome"},
	)
	stageDuration := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "papervault",
			Subsystem: "pipeline",
			Name:      "stage_duration_seconds",
			Help:      "Stage run duration in seconds by stage.",
			Buckets:   []float64{0.5, 1, 2, 5, 10, 30, 60, 120, 300, 600},
		},
		[]string{"stage"},
	)
	stageRetries := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "papervault",
			Subsystem: "pipeline",
			Name:      "stage_retries_total",
			Help:      "Transient stage failures that were re-enqueued.",
		},
		[]string{"stage"},
	)
	stagesInFlight := prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "papervault",
			Subsystem: "pipeline",
			Name:      "stages_in_flight",
			Help:      "Number of stage runs currently executing.",
		},
	)
	providerLatency := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "papervault",
			Subsystem: "provider",
			Name:      "call_duration_seconds",
			Help:      "AI provider call latency by operation and status.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"operation", "status"},
	)
	uploadsTotal := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "papervault",
			Subsystem: "intake",
			Name:      "uploads_total",
			Help:      "Uploads by resolution (accepted, duplicate, rejected).",
		},
		[]string{"resolution"},
	)

	registry.MustRegister(
		stageTotal, stageDuration, stageRetries, stagesInFlight,
		providerLatency, uploadsTotal,
	)

	return &PipelineMetrics{
		registry:        registry,
		stageTotal:      stageTotal,
		stageDuration:   stageDuration,
		stageRetries:    stageRetries,
		stagesInFlight:  stagesInFlight,
		providerLatency: providerLatency,
		uploadsTotal:    uploadsTotal,
	}
}

func (m *PipelineMetrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

func (m *PipelineMetrics) StageStarted() {
	if m == nil {
		return
	}
	m.stagesInFlight.Inc()
}

func (m *PipelineMetrics) StageFinished(stage, outcome string, duration time.Duration) {
	if m == nil {
		return
	}
	m.stagesInFlight.Dec()
	m.stageTotal.WithLabelValues(stage, outcome).Inc()
	m.stageDuration.WithLabelValues(stage).Observe(duration.Seconds())
}

func (m *PipelineMetrics) StageRetried(stage string) {
	if m == nil {
		return
	}
	m.stageRetries.WithLabelValues(stage).Inc()
}

func (m *PipelineMetrics) ProviderCall(operation string, duration time.Duration, err error) {
	if m == nil {
		return
	}
	status := "success"
	if err != nil {
		status = "error"
	}
	m.providerLatency.WithLabelValues(operation, status).Observe(duration.Seconds())
}

func (m *PipelineMetrics) UploadResolved(resolution string) {
	if m == nil {
		return
	}
	m.uploadsTotal.WithLabelValues(resolution).Inc()
}
