// Package metrics содержит метрики Prometheus сервиса рекомендаций.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "recommender"

// Результаты запросов к use case
const (
	ResultOK       = "ok"
	ResultNotFound = "not_found"
	ResultError    = "error"
)

var (
	// QueriesTotal - запросы к движку по операции и результату.
	QueriesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "queries_total",
			Help:      "Total number of engine queries",
		},
		[]string{"operation", "result"},
	)

	// QueryLatency - длительность запросов к движку.
	QueryLatency = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "query_latency_seconds",
			Help:      "Engine query latency in seconds",
			Buckets:   []float64{0.0005, 0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		},
		[]string{"operation"},
	)

	// CacheLookups - обращения к кэшу результатов: hit, miss, error.
	CacheLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cache_lookups_total",
			Help:      "Result cache lookups by outcome",
		},
		[]string{"operation", "outcome"},
	)

	// IndexBuildDuration - время сборки индекса.
	IndexBuildDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "index_build_seconds",
			Help:      "Index build duration in seconds",
			Buckets:   prometheus.ExponentialBuckets(0.01, 2, 14),
		},
	)

	// IndexBuildsTotal - сборки индекса по результату.
	IndexBuildsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "index_builds_total",
			Help:      "Index builds by result",
		},
		[]string{"result"},
	)

	// CatalogMovies - число фильмов в опубликованном индексе.
	CatalogMovies = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "catalog_movies",
			Help:      "Number of movies in the published index",
		},
	)

	// VocabularySize - размер словаря TF-IDF опубликованного индекса.
	VocabularySize = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "vocabulary_size",
			Help:      "TF-IDF vocabulary size of the published index",
		},
	)

	// EventsPublished - опубликованные события по типу и результату.
	EventsPublished = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "events_published_total",
			Help:      "Domain events published by type and result",
		},
		[]string{"type", "result"},
	)

	// HTTPRequests - HTTP-запросы по шаблону маршрута и коду ответа.
	HTTPRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by route and status code",
		},
		[]string{"method", "route", "status_code"},
	)

	// HTTPLatency - длительность HTTP-запросов.
	HTTPLatency = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency in seconds",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)
)

// RecordQuery фиксирует завершённый запрос к движку.
func RecordQuery(operation, result string, latency time.Duration) {
	QueriesTotal.WithLabelValues(operation, result).Inc()
	QueryLatency.WithLabelValues(operation).Observe(latency.Seconds())
}

// RecordCache фиксирует исход обращения к кэшу.
func RecordCache(operation, outcome string) {
	CacheLookups.WithLabelValues(operation, outcome).Inc()
}

// RecordBuild фиксирует сборку индекса. movies и terms учитываются только при успехе.
func RecordBuild(duration time.Duration, movies, terms int, err error) {
	if err != nil {
		IndexBuildsTotal.WithLabelValues(ResultError).Inc()
		return
	}

	IndexBuildsTotal.WithLabelValues(ResultOK).Inc()
	IndexBuildDuration.Observe(duration.Seconds())
	CatalogMovies.Set(float64(movies))
	VocabularySize.Set(float64(terms))
}

// RecordEvent фиксирует попытку публикации события.
func RecordEvent(eventType string, err error) {
	result := ResultOK
	if err != nil {
		result = ResultError
	}
	EventsPublished.WithLabelValues(eventType, result).Inc()
}

// Middleware считает HTTP-запросы. Метка route - шаблон маршрута chi, а не сырой путь.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		route := "unknown"
		if rctx := chi.RouteContext(r.Context()); rctx != nil && rctx.RoutePattern() != "" {
			route = rctx.RoutePattern()
		}

		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}

		HTTPRequests.WithLabelValues(r.Method, route, strconv.Itoa(status)).Inc()
		HTTPLatency.WithLabelValues(r.Method, route).Observe(time.Since(start).Seconds())
	})
}
