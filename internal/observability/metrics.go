package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	RequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gatefare_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"route", "code", "method"},
	)

	BookingSessionsStarted = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "gatefare_booking_sessions_started_total",
			Help: "Total booking wizard sessions started",
		},
	)

	BookingSessionsActive = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "gatefare_booking_sessions_active",
			Help: "Booking wizard sessions currently held in memory",
		},
	)

	BookingSessionsExpired = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "gatefare_booking_sessions_expired_total",
			Help: "Abandoned booking sessions swept after their TTL",
		},
	)

	SubmissionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gatefare_submissions_total",
			Help: "Booking submissions by outcome",
		},
		[]string{"outcome"},
	)

	SubmissionDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "gatefare_submission_seconds",
			Help:    "Duration of calls to the notification endpoint",
			Buckets: prometheus.DefBuckets,
		},
	)

	CouponRejections = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gatefare_coupon_rejections_total",
			Help: "Coupon apply attempts that were rejected",
		},
		[]string{"code"},
	)

	RateLimitExceeded = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "gatefare_rate_limit_exceeded_total",
			Help: "Requests refused by the rate limiter",
		},
	)
)
