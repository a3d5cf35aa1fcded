package converter

import "github.com/DRSN-tech/movie-recommender/internal/domain"

func ToMovieModel(m domain.Movie) MovieRedisModel {
	return MovieRedisModel{
		Index:       m.Index,
		Title:       m.Title,
		Genre:       m.Genre,
		Director:    m.Director,
		Cast:        m.Cast,
		Description: m.Description,
		Country:     m.Country,
		Year:        m.Year,
		Rating:      m.Rating,
	}
}

func ToMovie(m MovieRedisModel) domain.Movie {
	return domain.Movie{
		Index:       m.Index,
		Title:       m.Title,
		Genre:       m.Genre,
		Director:    m.Director,
		Cast:        m.Cast,
		Description: m.Description,
		Country:     m.Country,
		Year:        m.Year,
		Rating:      m.Rating,
	}
}

func ToRecommendationModel(rec *domain.Recommendation) *RecommendationRedisModel {
	items := make([]ScoredMovieRedisModel, 0, len(rec.Items))
	for _, item := range rec.Items {
		items = append(items, ScoredMovieRedisModel{
			Movie:         ToMovieModel(item.Movie),
			SimilarityPct: item.SimilarityPct,
		})
	}

	return &RecommendationRedisModel{
		Found: rec.Found,
		Movie: ToMovieModel(rec.Movie),
		Items: items,
	}
}

func ToRecommendation(model *RecommendationRedisModel) *domain.Recommendation {
	items := make([]domain.ScoredMovie, 0, len(model.Items))
	for _, item := range model.Items {
		items = append(items, domain.ScoredMovie{
			Movie:         ToMovie(item.Movie),
			SimilarityPct: item.SimilarityPct,
		})
	}

	return &domain.Recommendation{
		Found: model.Found,
		Movie: ToMovie(model.Movie),
		Items: items,
	}
}

func ToComparisonModel(cmp *domain.Comparison) *ComparisonRedisModel {
	return &ComparisonRedisModel{
		Found:         cmp.Found,
		First:         ToMovieModel(cmp.First),
		Second:        ToMovieModel(cmp.Second),
		SimilarityPct: cmp.SimilarityPct,
		RatingDiff:    cmp.RatingDiff,
		YearDiff:      cmp.YearDiff,
	}
}

func ToComparison(model *ComparisonRedisModel) *domain.Comparison {
	return &domain.Comparison{
		Found:         model.Found,
		First:         ToMovie(model.First),
		Second:        ToMovie(model.Second),
		SimilarityPct: model.SimilarityPct,
		RatingDiff:    model.RatingDiff,
		YearDiff:      model.YearDiff,
	}
}
