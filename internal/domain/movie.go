package domain

import "strings"

// GenreSeparator разделяет несколько жанров в одном поле ("Drama/Crime").
const GenreSeparator = "/"

// Movie описывает строку каталога.
type Movie struct {
	Index       int // позиция в каталоге, назначается при загрузке
	Title       string
	Genre       string
	Director    string
	Cast        string
	Description string
	Country     string
	Year        int
	Rating      float64 // 0–10
}

// Genres возвращает жанры фильма без пробелов по краям, пустые значения пропускаются.
func (m Movie) Genres() []string {
	parts := strings.Split(m.Genre, GenreSeparator)
	genres := make([]string, 0, len(parts))
	for _, part := range parts {
		if part = strings.TrimSpace(part); part != "" {
			genres = append(genres, part)
		}
	}

	return genres
}

// ScoredMovie - рекомендованный фильм со сходством в процентах (0–100, два знака).
type ScoredMovie struct {
	Movie         Movie
	SimilarityPct float64
}
