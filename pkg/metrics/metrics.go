package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	RateLimitAllowed = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "seosites", Name: "rate_limit_allowed_total", Help: "Number of allowed requests by limiter type."},
		[]string{"limiter"},
	)
	RateLimitRejected = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "seosites", Name: "rate_limit_rejected_total", Help: "Number of rejected requests by limiter type."},
		[]string{"limiter"},
	)
	Uploads = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "seosites", Name: "uploads_total", Help: "Image uploads by result (stored, rejected, too_large, error)."},
		[]string{"result"},
	)
	ImageCleanup = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "seosites", Name: "image_cleanup_total", Help: "Image files released after document writes, by result (deleted, missing, skipped, error)."},
		[]string{"result"},
	)
	HTTPRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "seosites", Name: "http_requests_total", Help: "HTTP requests by method and status code."},
		[]string{"method", "status"},
	)
)

func RegisterCollectors(reg prometheus.Registerer) {
	reg.MustRegister(RateLimitAllowed)
	reg.MustRegister(RateLimitRejected)
	reg.MustRegister(Uploads)
	reg.MustRegister(ImageCleanup)
	reg.MustRegister(HTTPRequests)
}
