package usecase

import (
	"context"

	"github.com/DRSN-tech/movie-recommender/internal/domain"
)

type RecommenderUC interface {
	Init(ctx context.Context) error
	Reload(ctx context.Context) (*IndexInfo, error)
	Info(ctx context.Context) (*IndexInfo, error)

	Recommend(ctx context.Context, req *RecommendReq) (*domain.Recommendation, error)
	Compare(ctx context.Context, req *CompareReq) (*domain.Comparison, error)

	Stats(ctx context.Context) (*domain.Stats, error)
	RatingHistogram(ctx context.Context, bins int) ([]domain.HistogramBin, error)
	YearCounts(ctx context.Context) ([]domain.YearCount, error)
	Genres(ctx context.Context) ([]string, error)
	Directors(ctx context.Context) ([]string, error)

	MoviesByGenre(ctx context.Context, genre string) ([]domain.Movie, error)
	MoviesByDirector(ctx context.Context, director string) ([]domain.Movie, error)
	MoviesByYearRange(ctx context.Context, req *YearRangeReq) ([]domain.Movie, error)
	MoviesByRatingRange(ctx context.Context, req *RatingRangeReq) ([]domain.Movie, error)
}
