package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "folio"

var (
	HTTPRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: namespace, Name: "http_requests_total", Help: "HTTP requests by route and status."},
		[]string{"method", "route", "status"},
	)
	HTTPDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{Namespace: namespace, Name: "http_request_duration_seconds", Help: "HTTP request latency by route.", Buckets: prometheus.DefBuckets},
		[]string{"method", "route"},
	)
	DocumentsCreated = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: namespace, Name: "documents_created_total", Help: "Document create attempts by result."},
		[]string{"result"},
	)
	Searches = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: namespace, Name: "searches_total", Help: "Document searches by effective mode."},
		[]string{"mode"},
	)
	SearchResults = prometheus.NewHistogram(
		prometheus.HistogramOpts{Namespace: namespace, Name: "search_results", Help: "Number of documents returned per search.", Buckets: prometheus.ExponentialBuckets(1, 4, 6)},
	)
	RateLimitRejected = prometheus.NewCounter(
		prometheus.CounterOpts{Namespace: namespace, Name: "rate_limit_rejected_total", Help: "Requests rejected by the rate limiter."},
	)
)

func RegisterCollectors(reg prometheus.Registerer) {
	reg.MustRegister(HTTPRequests)
	reg.MustRegister(HTTPDuration)
	reg.MustRegister(DocumentsCreated)
	reg.MustRegister(Searches)
	reg.MustRegister(SearchResults)
	reg.MustRegister(RateLimitRejected)
}
