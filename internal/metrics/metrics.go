package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTPAttemptsTotal tracks individual HTTP attempts against the
	// assessment API, including the ones that get retried.
	HTTPAttemptsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "riskassess_http_attempts_total",
			Help: "Total number of HTTP attempts against the assessment API",
		},
		[]string{"method", "status"}, // "success", "retryable", "error"
	)

	// HTTPAttemptDuration tracks per-attempt latency.
	HTTPAttemptDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "riskassess_http_attempt_duration_seconds",
			Help:    "Duration of HTTP attempts in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method"},
	)

	// RetriesTotal tracks scheduled retries by reason.
	RetriesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "riskassess_retries_total",
			Help: "Total number of scheduled retries",
		},
		[]string{"reason"}, // "429", "500", "503", "transport"
	)

	// PagesFetchedTotal tracks patient pages consumed.
	PagesFetchedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "riskassess_pages_fetched_total",
			Help: "Total number of patient pages fetched",
		},
	)

	// PatientsProcessedTotal tracks classified vs skipped records.
	PatientsProcessedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "riskassess_patients_processed_total",
			Help: "Total number of patient records processed",
		},
		[]string{"status"}, // "classified", "skipped"
	)

	// ClassificationSize reports the size of each submitted alert list.
	ClassificationSize = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "riskassess_classification_size",
			Help: "Number of patients in each submitted alert list",
		},
		[]string{"list"}, // "high_risk", "fever", "data_quality"
	)
)

// RecordHTTPAttempt records a single HTTP attempt outcome.
func RecordHTTPAttempt(method, status string) {
	HTTPAttemptsTotal.WithLabelValues(method, status).Inc()
}

// RecordHTTPAttemptDuration records per-attempt latency.
func RecordHTTPAttemptDuration(method string, duration time.Duration) {
	HTTPAttemptDuration.WithLabelValues(method).Observe(duration.Seconds())
}

// RecordRetry records a scheduled retry by reason.
func RecordRetry(reason string) {
	RetriesTotal.WithLabelValues(reason).Inc()
}

// RecordPageFetched records a consumed patient page.
func RecordPageFetched() {
	PagesFetchedTotal.Inc()
}

// RecordPatientProcessed records a processed patient record.
func RecordPatientProcessed(status string) {
	PatientsProcessedTotal.WithLabelValues(status).Inc()
}

// RecordClassificationSizes records the final alert list sizes.
func RecordClassificationSizes(highRisk, fever, dataQuality int) {
	ClassificationSize.WithLabelValues("high_risk").Set(float64(highRisk))
	ClassificationSize.WithLabelValues("fever").Set(float64(fever))
	ClassificationSize.WithLabelValues("data_quality").Set(float64(dataQuality))
}
