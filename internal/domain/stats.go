package domain

// Count - значение и число его появлений в каталоге.
type Count struct {
	Name  string
	Total int
}

// Stats - сводка по каталогу.
type Stats struct {
	Total        int
	AvgRating    float64
	MaxRating    float64
	MinRating    float64
	MinYear      int
	MaxYear      int
	TopGenres    []Count
	TopDirectors []Count
	TopCountries []Count
}

// HistogramBin - корзина гистограммы рейтингов [From, To).
// Последняя корзина включает правую границу.
type HistogramBin struct {
	From  float64
	To    float64
	Total int
}

// YearCount - число фильмов за год.
type YearCount struct {
	Year  int
	Total int
}
