package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	HTTPRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests.",
		},
		[]string{"method", "route", "status"},
	)

	HTTPRequestDurationSeconds = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	InfluencersCreatedTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dashboard_influencers_created_total",
			Help: "Total number of create-influencer submissions.",
		},
		[]string{"result"},
	)

	StatusTogglesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dashboard_status_toggles_total",
			Help: "Total number of influencer status toggles.",
		},
		[]string{"result"},
	)

	ActivityLogEntriesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dashboard_activity_log_entries_total",
			Help: "Total number of activity log entries recorded.",
		},
		[]string{"category", "status"},
	)
)

// MustRegister registers every collector with the default registry.
// Call it once from main.
func MustRegister() {
	prometheus.MustRegister(
		HTTPRequestsTotal,
		HTTPRequestDurationSeconds,
		InfluencersCreatedTotal,
		StatusTogglesTotal,
		ActivityLogEntriesTotal,
	)
}
