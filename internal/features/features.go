// Package features строит текстовые признаки фильма для векторизации и ключ для поиска по названию.
package features

import (
	"strings"

	"github.com/DRSN-tech/movie-recommender/internal/domain"
)

// Features - производные поля одного фильма.
type Features struct {
	CombinedText    string // жанр, режиссёр, актёры и описание через пробел
	NormalizedTitle string // название в нижнем регистре без пробелов по краям
}

// Build строит признаки фильма. Порядок полей фиксирован: он влияет на веса в векторах.
func Build(movie domain.Movie) Features {
	return Features{
		CombinedText:    CombinedText(movie),
		NormalizedTitle: NormalizeTitle(movie.Title),
	}
}

// BuildAll строит признаки для всех фильмов, индекс результата совпадает с индексом фильма.
func BuildAll(movies []domain.Movie) []Features {
	result := make([]Features, len(movies))
	for i, movie := range movies {
		result[i] = Build(movie)
	}

	return result
}

// CombinedText склеивает genre, director, cast и description.
func CombinedText(movie domain.Movie) string {
	return strings.Join([]string{movie.Genre, movie.Director, movie.Cast, movie.Description}, " ")
}

// NormalizeTitle приводит название или запрос к виду для сравнения.
func NormalizeTitle(title string) string {
	return strings.TrimSpace(strings.ToLower(title))
}

// Corpus возвращает CombinedText всех признаков в порядке каталога.
func Corpus(features []Features) []string {
	corpus := make([]string, len(features))
	for i, f := range features {
		corpus[i] = f.CombinedText
	}

	return corpus
}

// Titles возвращает NormalizedTitle всех признаков в порядке каталога.
func Titles(features []Features) []string {
	titles := make([]string, len(features))
	for i, f := range features {
		titles[i] = f.NormalizedTitle
	}

	return titles
}
