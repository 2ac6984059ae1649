package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "santad_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)
	gamesCreated = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "santad_games_created_total",
			Help: "Total games created",
		},
	)
	participantsJoined = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "santad_participants_joined_total",
			Help: "Total participants enrolled across all games",
		},
	)
	assignments = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "santad_assignments_total",
			Help: "Assignment runs by outcome",
		},
		[]string{"success"},
	)
)

// PrometheusMiddleware records request duration.
func PrometheusMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		duration := time.Since(start).Seconds()
		status := strconv.Itoa(ww.Status())
		path := r.URL.Path
		if path == "" {
			path = "/"
		}
		httpRequestDuration.WithLabelValues(r.Method, path, status).Observe(duration)
	})
}

// RecordGameCreated counts a created game.
func RecordGameCreated() { gamesCreated.Inc() }

// RecordParticipantJoined counts an enrolled participant.
func RecordParticipantJoined() { participantsJoined.Inc() }

// RecordAssignment counts an assignment run by outcome.
func RecordAssignment(success bool) {
	assignments.WithLabelValues(strconv.FormatBool(success)).Inc()
}
