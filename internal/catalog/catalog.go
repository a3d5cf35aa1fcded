// Package catalog хранит строки каталога и отвечает на запросы по позиции и фильтрам.
package catalog

import "github.com/DRSN-tech/movie-recommender/internal/domain"

// Catalog - неизменяемый упорядоченный набор фильмов.
type Catalog struct {
	movies []domain.Movie
}

// New копирует movies и проставляет позиционные индексы 0..N-1.
func New(movies []domain.Movie) *Catalog {
	items := make([]domain.Movie, len(movies))
	copy(items, movies)
	for i := range items {
		items[i].Index = i
	}

	return &Catalog{movies: items}
}

// Len возвращает число фильмов.
func (c *Catalog) Len() int {
	return len(c.movies)
}

// Get возвращает фильм по позиции.
func (c *Catalog) Get(index int) (domain.Movie, bool) {
	if index < 0 || index >= len(c.movies) {
		return domain.Movie{}, false
	}

	return c.movies[index], true
}

// All возвращает копию всех фильмов в исходном порядке.
func (c *Catalog) All() []domain.Movie {
	return c.FilterBy(func(domain.Movie) bool { return true })
}

// FilterBy возвращает фильмы, для которых predicate истинен, сохраняя исходный порядок.
func (c *Catalog) FilterBy(predicate func(domain.Movie) bool) []domain.Movie {
	result := make([]domain.Movie, 0)
	for _, movie := range c.movies {
		if predicate(movie) {
			result = append(result, movie)
		}
	}

	return result
}
