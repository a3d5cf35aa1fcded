package domain

// Recommendation - результат поиска похожих фильмов.
// Found == false означает, что запрос не сопоставился ни с одним названием; это не ошибка.
type Recommendation struct {
	Found bool
	Movie Movie
	Items []ScoredMovie
}

// Comparison - результат сравнения двух фильмов.
type Comparison struct {
	Found         bool
	First         Movie
	Second        Movie
	SimilarityPct float64 // 0–100, два знака
	RatingDiff    float64 // модуль разницы рейтингов, два знака
	YearDiff      int     // модуль разницы лет
}
