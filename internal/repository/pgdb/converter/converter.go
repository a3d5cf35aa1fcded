package converter

import (
	"fmt"

	"github.com/DRSN-tech/movie-recommender/internal/catalog"
	"github.com/DRSN-tech/movie-recommender/internal/domain"
	"github.com/DRSN-tech/movie-recommender/pkg/e"
)

// ToDomain переводит запись таблицы в фильм каталога. Index проставляет каталог.
// NULL в числовых колонках - *catalog.LoadError с e.ErrInvalidNumeric.
func ToDomain(model *MovieModel) (domain.Movie, error) {
	var missing []string
	if !model.Year.Valid {
		missing = append(missing, "year")
	}
	if !model.Rating.Valid {
		missing = append(missing, "rating")
	}
	if len(missing) > 0 {
		return domain.Movie{}, &catalog.LoadError{
			Columns: missing,
			Err:     e.Wrap(fmt.Sprintf("movie id %d", model.ID), e.ErrInvalidNumeric),
		}
	}

	return domain.Movie{
		Title:       model.Title,
		Genre:       model.Genre,
		Director:    model.Director,
		Cast:        model.Cast,
		Description: model.Description,
		Country:     model.Country,
		Year:        int(model.Year.Int32),
		Rating:      model.Rating.Decimal.InexactFloat64(),
	}, nil
}

func ToArrDomain(models []MovieModel) ([]domain.Movie, error) {
	result := make([]domain.Movie, 0, len(models))
	for i := range models {
		movie, err := ToDomain(&models[i])
		if err != nil {
			return nil, err
		}
		result = append(result, movie)
	}

	return result, nil
}
