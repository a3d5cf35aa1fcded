package usecase

import (
	"context"

	"github.com/DRSN-tech/movie-recommender/internal/domain"
)

// CatalogSource отдаёт строки каталога в исходном порядке.
type CatalogSource interface {
	LoadMovies(ctx context.Context) ([]domain.Movie, error)
	Name() string
}

// ResultCache хранит готовые выдачи. Промах - (nil, nil).
type ResultCache interface {
	GetRecommendation(ctx context.Context, key string) (*domain.Recommendation, error)
	SetRecommendation(ctx context.Context, key string, rec *domain.Recommendation) error
	GetComparison(ctx context.Context, key string) (*domain.Comparison, error)
	SetComparison(ctx context.Context, key string, cmp *domain.Comparison) error
}
