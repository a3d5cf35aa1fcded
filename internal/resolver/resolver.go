// Package resolver сопоставляет произвольный запрос с фильмом каталога по названию.
package resolver

import (
	"strings"

	"github.com/DRSN-tech/movie-recommender/internal/features"
)

// Resolver ищет фильм по нормализованным названиям в три яруса:
// точное совпадение, вхождение запроса в название, вхождение отдельного слова запроса.
// Внутри яруса побеждает фильм с наименьшим индексом, релевантность не учитывается.
type Resolver struct {
	titles []string
}

// New принимает нормализованные названия в порядке каталога.
func New(normalizedTitles []string) *Resolver {
	titles := make([]string, len(normalizedTitles))
	copy(titles, normalizedTitles)
	return &Resolver{titles: titles}
}

// Resolve возвращает индекс фильма или false, если ни один ярус не дал совпадения.
// Пустой запрос ни с чем не совпадает.
func (r *Resolver) Resolve(query string) (int, bool) {
	q := features.NormalizeTitle(query)
	if q == "" {
		return 0, false
	}

	if i, ok := r.first(func(title string) bool { return title == q }); ok {
		return i, true
	}

	if i, ok := r.first(func(title string) bool { return strings.Contains(title, q) }); ok {
		return i, true
	}

	for _, token := range strings.Fields(q) {
		if i, ok := r.first(func(title string) bool { return strings.Contains(title, token) }); ok {
			return i, true
		}
	}

	return 0, false
}

func (r *Resolver) first(match func(title string) bool) (int, bool) {
	for i, title := range r.titles {
		if match(title) {
			return i, true
		}
	}
	return 0, false
}
