package engine

import (
	"sort"
	"strings"

	"github.com/DRSN-tech/movie-recommender/internal/domain"
)

// FilterByGenre - фильмы, в поле жанра которых встречается value без учёта регистра.
func (e *Engine) FilterByGenre(value string) []domain.Movie {
	return e.filterContains(value, func(m domain.Movie) string { return m.Genre })
}

// FilterByDirector - фильмы, в поле режиссёра которых встречается value без учёта регистра.
func (e *Engine) FilterByDirector(value string) []domain.Movie {
	return e.filterContains(value, func(m domain.Movie) string { return m.Director })
}

// FilterByYearRange - фильмы с годом в [lo, hi], по убыванию рейтинга.
func (e *Engine) FilterByYearRange(lo, hi int) []domain.Movie {
	return byRatingDesc(e.catalog.FilterBy(func(m domain.Movie) bool {
		return m.Year >= lo && m.Year <= hi
	}))
}

// FilterByRatingRange - фильмы с рейтингом в [lo, hi], по убыванию рейтинга.
func (e *Engine) FilterByRatingRange(lo, hi float64) []domain.Movie {
	return byRatingDesc(e.catalog.FilterBy(func(m domain.Movie) bool {
		return m.Rating >= lo && m.Rating <= hi
	}))
}

func (e *Engine) filterContains(value string, field func(domain.Movie) string) []domain.Movie {
	needle := strings.ToLower(strings.TrimSpace(value))
	return e.catalog.FilterBy(func(m domain.Movie) bool {
		return strings.Contains(strings.ToLower(field(m)), needle)
	})
}

// byRatingDesc сортирует на месте; при равном рейтинге сохраняется порядок каталога.
func byRatingDesc(movies []domain.Movie) []domain.Movie {
	sort.SliceStable(movies, func(i, j int) bool { return movies[i].Rating > movies[j].Rating })
	return movies
}
