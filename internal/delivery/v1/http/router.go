package http

import (
	"time"

	_ "github.com/DRSN-tech/movie-recommender/docs" // Импорт сгенерированных файлов
	"github.com/DRSN-tech/movie-recommender/internal/cfg"
	"github.com/DRSN-tech/movie-recommender/internal/infrastructure/metrics"
	"github.com/DRSN-tech/movie-recommender/internal/usecase"
	"github.com/DRSN-tech/movie-recommender/pkg/logger"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/httprate"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger/v2"
)

type Router struct {
	router *chi.Mux
	logger logger.Logger
}

func NewRouter(router *chi.Mux, logger logger.Logger) *Router {
	return &Router{router: router, logger: logger}
}

func (r *Router) Init(uc usecase.RecommenderUC, cfg *cfg.HTTPConfig) {
	r.router.Use(middleware.RequestID)
	r.router.Use(middleware.RealIP)
	r.router.Use(middleware.Recoverer)
	r.router.Use(metrics.Middleware)

	handler := NewRecommenderHandler(uc, r.logger)

	r.router.Get("/healthz", handler.health)
	r.router.Handle("/metrics", promhttp.Handler())
	r.router.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(cfg.SwaggerBaseURL+"/swagger/doc.json"), // ссылка на JSON
	))

	r.router.Route("/api/v1", func(v1 chi.Router) {
		if cfg.RateLimit > 0 {
			v1.Use(httprate.LimitByIP(cfg.RateLimit, time.Minute))
		}

		registerRecommendationRoutes(v1, handler)
		registerStatsRoutes(v1, handler)
		registerMovieRoutes(v1, handler)
		v1.Post("/catalog/reload", handler.reload)
	})
}

func registerRecommendationRoutes(router chi.Router, h *RecommenderHandler) {
	router.Get("/recommendations", h.recommend)
	router.Get("/comparison", h.compare)
}

func registerStatsRoutes(router chi.Router, h *RecommenderHandler) {
	router.Route("/stats", func(st chi.Router) {
		st.Get("/", h.stats)
		st.Get("/ratings", h.ratingHistogram)
		st.Get("/years", h.yearCounts)
	})
}

func registerMovieRoutes(router chi.Router, h *RecommenderHandler) {
	router.Route("/movies", func(mv chi.Router) {
		mv.Get("/genre", h.moviesByGenre)
		mv.Get("/director", h.moviesByDirector)
		mv.Get("/year", h.moviesByYear)
		mv.Get("/rating", h.moviesByRating)
	})
	router.Get("/genres", h.genres)
	router.Get("/directors", h.directors)
}
