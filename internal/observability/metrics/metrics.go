package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	HTTPRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests.",
		},
		[]string{"service", "method", "path", "status"},
	)

	HTTPRequestDurationSeconds = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"service", "method", "path"},
	)

	AuthRegistrationsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "auth_registrations_total",
			Help: "Total number of registration attempts.",
		},
		[]string{"service", "result"},
	)

	AuthLoginsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "auth_logins_total",
			Help: "Total number of login attempts.",
		},
		[]string{"service", "result"},
	)

	GateChecksTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gate_checks_total",
			Help: "Total number of ingestion-secret and session-token gate checks.",
		},
		[]string{"service", "gate", "result"},
	)

	EventsIngestedTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "telemetry_events_ingested_total",
			Help: "Total number of device event ingestion attempts.",
		},
		[]string{"service", "result"},
	)

	EventQueriesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "telemetry_event_queries_total",
			Help: "Total number of owner event-window queries.",
		},
		[]string{"service", "result"},
	)
)

func MustRegister(serviceName string) {
	HTTPRequestsTotal = HTTPRequestsTotal.MustCurryWith(prometheus.Labels{"service": serviceName})
	HTTPRequestDurationSeconds = HTTPRequestDurationSeconds.MustCurryWith(prometheus.Labels{"service": serviceName}).(*prometheus.HistogramVec)
	AuthRegistrationsTotal = AuthRegistrationsTotal.MustCurryWith(prometheus.Labels{"service": serviceName})
	AuthLoginsTotal = AuthLoginsTotal.MustCurryWith(prometheus.Labels{"service": serviceName})
	GateChecksTotal = GateChecksTotal.MustCurryWith(prometheus.Labels{"service": serviceName})
	EventsIngestedTotal = EventsIngestedTotal.MustCurryWith(prometheus.Labels{"service": serviceName})
	EventQueriesTotal = EventQueriesTotal.MustCurryWith(prometheus.Labels{"service": serviceName})

	prometheus.MustRegister(
		HTTPRequestsTotal,
		HTTPRequestDurationSeconds,
		AuthRegistrationsTotal,
		AuthLoginsTotal,
		GateChecksTotal,
		EventsIngestedTotal,
		EventQueriesTotal,
	)
}
