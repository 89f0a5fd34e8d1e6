// Package metrics provides Prometheus metrics for the Disha AI engine
package metrics

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for the AI engine
type Metrics struct {
	// Chat request metrics
	ChatRequestsTotal   *prometheus.CounterVec
	ChatRequestDuration *prometheus.HistogramVec

	// Provider metrics
	ProviderCallDuration *prometheus.HistogramVec
	ProviderErrorsTotal  *prometheus.CounterVec
	FallbacksTotal       *prometheus.CounterVec

	// Attachment metrics
	AttachmentAnalysesTotal *prometheus.CounterVec

	// Server metrics
	ServerUptimeSeconds prometheus.Gauge
	ServerStartTime     time.Time
}

var (
	defaultMetrics *Metrics
	once           sync.Once
)

// Default returns the process-wide metrics instance. Collectors register
// with the default Prometheus registry, so construction happens once.
func Default() *Metrics {
	once.Do(func() {
		defaultMetrics = newMetrics()
	})
	return defaultMetrics
}

func newMetrics() *Metrics {
	m := &Metrics{
		ServerStartTime: time.Now(),
	}

	m.ChatRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "disha_chat_requests_total",
			Help: "Total number of chat generation requests",
		},
		[]string{"provider", "outcome"},
	)

	m.ChatRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "disha_chat_request_duration_seconds",
			Help:    "Duration of chat generation requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"provider"},
	)

	m.ProviderCallDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "disha_provider_call_duration_seconds",
			Help:    "Duration of remote provider calls in seconds",
			Buckets: []float64{.1, .25, .5, 1, 2.5, 5, 10, 30, 60},
		},
		[]string{"provider"},
	)

	m.ProviderErrorsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "disha_provider_errors_total",
			Help: "Total number of failed remote provider calls",
		},
		[]string{"provider", "reason"},
	)

	m.FallbacksTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "disha_fallbacks_total",
			Help: "Total number of responses served by the local advisor after a remote failure",
		},
		[]string{"reason"},
	)

	m.AttachmentAnalysesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "disha_attachment_analyses_total",
			Help: "Total number of attachment analyses",
		},
		[]string{"kind", "status"},
	)

	m.ServerUptimeSeconds = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "disha_server_uptime_seconds",
			Help: "Server uptime in seconds",
		},
	)

	go m.updateUptime()

	return m
}

func (m *Metrics) updateUptime() {
	ticker := time.NewTicker(10 * time.Second)
	defer ticker.Stop()

	for range ticker.C {
		m.ServerUptimeSeconds.Set(time.Since(m.ServerStartTime).Seconds())
	}
}

// RecordChatRequest records a completed chat request
func (m *Metrics) RecordChatRequest(provider, outcome string, duration time.Duration) {
	m.ChatRequestsTotal.WithLabelValues(provider, outcome).Inc()
	m.ChatRequestDuration.WithLabelValues(provider).Observe(duration.Seconds())
}

// RecordProviderCall records a remote provider call and its result
func (m *Metrics) RecordProviderCall(provider string, err error, reason string, duration time.Duration) {
	m.ProviderCallDuration.WithLabelValues(provider).Observe(duration.Seconds())
	if err != nil {
		m.ProviderErrorsTotal.WithLabelValues(provider, reason).Inc()
	}
}

// RecordFallback records a fallback to the local advisor
func (m *Metrics) RecordFallback(reason string) {
	m.FallbacksTotal.WithLabelValues(reason).Inc()
}

// RecordAttachmentAnalysis records an image or document analysis attempt
func (m *Metrics) RecordAttachmentAnalysis(kind, status string) {
	m.AttachmentAnalysesTotal.WithLabelValues(kind, status).Inc()
}
