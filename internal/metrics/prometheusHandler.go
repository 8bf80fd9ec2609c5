package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var HttpRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "http_requests_total",
	Help: "Total number of requests labelled by path and status",
}, []string{"path", "status"})

var documentsGenerated = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "documents_generated_total",
	Help: "Documents generated, labelled by doc type and outcome",
}, []string{"doc_type", "outcome"})

var repairAttempts = promauto.NewCounter(prometheus.CounterOpts{
	Name: "validation_repair_attempts_total",
	Help: "AI repair calls made by the validation loop",
})

var fallbacksUsed = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "pipeline_fallbacks_total",
	Help: "Deterministic fallbacks taken, labelled by stage",
}, []string{"stage"})

var cacheHits = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "content_cache_lookups_total",
	Help: "Semantic content cache lookups by result",
}, []string{"result"})

type HttpStatusRecorder struct {
	http.ResponseWriter
	Status int
}

func (r *HttpStatusRecorder) CaptureWriteHeaderMetrics(code int) {
	r.Status = code
	r.ResponseWriter.WriteHeader(code)
}

func IncrementDocumentsGenerated(docType string, outcome string) {
	documentsGenerated.WithLabelValues(docType, outcome).Inc()
}

func IncrementRepairAttempts() {
	repairAttempts.Inc()
}

func IncrementFallback(stage string) {
	fallbacksUsed.WithLabelValues(stage).Inc()
}

func IncrementCacheLookup(result string) {
	cacheHits.WithLabelValues(result).Inc()
}

var requestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
	Name:    "pipeline_duration_seconds",
	Help:    "Total time spent generating one document.",
	Buckets: []float64{.1, .5, 1, 2, 5, 10, 30, 60, 120},
}, []string{"status"})

var dependencyLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
	Name:    "dependency_latency_seconds",
	Help:    "Latency of external service calls.",
	Buckets: []float64{.05, .1, .25, .5, 1, 2, 5, 10},
}, []string{"service"})

func CaptureExecutionMetrics(label string, timeElapsed time.Duration) {
	dependencyLatency.WithLabelValues(label).Observe(timeElapsed.Seconds())
}

func CapturePipelineMetrics(label string, timeElapsed time.Duration) {
	requestDuration.WithLabelValues(label).Observe(timeElapsed.Seconds())
}
