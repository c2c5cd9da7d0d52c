package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	RidesCreated      = promauto.NewCounter(prometheus.CounterOpts{Namespace: "carpool", Name: "rides_created_total", Help: "Total rides posted"})
	RidesDeleted      = promauto.NewCounter(prometheus.CounterOpts{Namespace: "carpool", Name: "rides_deleted_total", Help: "Total rides deleted by their driver"})
	BookingsCreated   = promauto.NewCounter(prometheus.CounterOpts{Namespace: "carpool", Name: "bookings_created_total", Help: "Total seats booked"})
	BookingsCancelled = promauto.NewCounter(prometheus.CounterOpts{Namespace: "carpool", Name: "bookings_cancelled_total", Help: "Total bookings cancelled"})

	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{Namespace: "carpool", Name: "http_requests_total", Help: "Total HTTP requests handled"},
		[]string{"method", "path", "status"},
	)
)
