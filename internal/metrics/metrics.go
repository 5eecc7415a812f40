package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Quiz selection outcomes.
const (
	OutcomeQuestion  = "question"
	OutcomeExhausted = "exhausted"
)

var (
	// HTTPRequests counts served requests by route pattern and status code.
	HTTPRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "http_requests_total",
		Help: "HTTP requests served, partitioned by method, route and status.",
	}, []string{"method", "route", "status"})

	// HTTPDuration observes request latency by route pattern.
	HTTPDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "http_request_duration_seconds",
		Help:    "HTTP request latency.",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "route"})

	// QuizSelections counts quiz draws by outcome.
	QuizSelections = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "trivia_quiz_selections_total",
		Help: "Quiz question selections, partitioned by outcome.",
	}, []string{"outcome"})
)
