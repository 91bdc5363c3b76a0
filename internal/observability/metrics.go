package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	RidesBookedTotal    = promauto.NewCounter(prometheus.CounterOpts{Namespace: "quickride", Name: "rides_booked_total", Help: "Total number of rides booked"})
	RidesCompletedTotal = promauto.NewCounter(prometheus.CounterOpts{Namespace: "quickride", Name: "rides_completed_total", Help: "Total number of rides completed"})
	RidesCancelledTotal = promauto.NewCounter(prometheus.CounterOpts{Namespace: "quickride", Name: "rides_cancelled_total", Help: "Total number of rides cancelled"})
	ActiveRide          = promauto.NewGauge(prometheus.GaugeOpts{Namespace: "quickride", Name: "active_ride", Help: "1 while a ride is active, 0 otherwise"})
	ConnectedClients    = promauto.NewGauge(prometheus.GaugeOpts{Namespace: "quickride", Name: "connected_clients", Help: "Number of websocket clients on the ride stream"})

	RideTransitionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{Namespace: "quickride", Name: "ride_transitions_total", Help: "Lifecycle transitions by resulting status"},
		[]string{"status"},
	)

	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{Namespace: "quickride", Name: "http_requests_total", Help: "Total HTTP requests handled"},
		[]string{"method", "path", "status"},
	)
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "quickride",
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency distribution",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)
)
