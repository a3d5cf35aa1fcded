package engine

import (
	"testing"

	"github.com/DRSN-tech/movie-recommender/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func yearCatalog() []domain.Movie {
	return []domain.Movie{
		{Title: "A", Genre: "Drama", Director: "X", Country: "USA", Year: 2008, Rating: 9.0},
		{Title: "B", Genre: "Drama/Crime", Director: "Y", Country: "UK", Year: 2010, Rating: 6.0},
		{Title: "C", Genre: "Comedy", Director: "X", Country: "USA", Year: 2012, Rating: 8.0},
		{Title: "D", Genre: "Crime", Director: "Z", Country: "France", Year: 2015, Rating: 6.0},
		{Title: "E", Genre: "Drama", Director: "y", Country: "", Year: 2016, Rating: 7.0},
		{Title: "F", Genre: "Horror", Director: "W", Country: "UK", Year: 2013, Rating: 8.0},
	}
}

func titles(movies []domain.Movie) []string {
	result := make([]string, 0, len(movies))
	for _, m := range movies {
		result = append(result, m.Title)
	}
	return result
}

func TestFilterByYearRange(t *testing.T) {
	eng := New(yearCatalog(), Options{})

	// C и F с рейтингом 8 идут в порядке каталога, затем B и D с рейтингом 6
	assert.Equal(t, []string{"C", "F", "B", "D"}, titles(eng.FilterByYearRange(2010, 2015)))
	assert.Empty(t, eng.FilterByYearRange(2020, 2030))
	assert.NotNil(t, eng.FilterByYearRange(2020, 2030))
}

func TestFilterByRatingRange(t *testing.T) {
	eng := New(yearCatalog(), Options{})

	assert.Equal(t, []string{"C", "F", "E"}, titles(eng.FilterByRatingRange(7, 8)))
}

func TestFilterByGenreAndDirector(t *testing.T) {
	eng := New(yearCatalog(), Options{})

	assert.Equal(t, []string{"B", "D"}, titles(eng.FilterByGenre("crime")))
	assert.Equal(t, []string{"B", "E"}, titles(eng.FilterByDirector(" Y ")))
}

func TestStats(t *testing.T) {
	eng := New(yearCatalog(), Options{})

	stats := eng.Stats()
	assert.Equal(t, 6, stats.Total)
	assert.Equal(t, 7.33, stats.AvgRating)
	assert.Equal(t, 9.0, stats.MaxRating)
	assert.Equal(t, 6.0, stats.MinRating)
	assert.Equal(t, 2008, stats.MinYear)
	assert.Equal(t, 2016, stats.MaxYear)

	assert.Equal(t, []domain.Count{
		{Name: "Drama", Total: 3},
		{Name: "Crime", Total: 2},
		{Name: "Comedy", Total: 1},
		{Name: "Horror", Total: 1},
	}, stats.TopGenres)
	assert.Equal(t, []domain.Count{
		{Name: "X", Total: 2},
		{Name: "Y", Total: 1},
		{Name: "Z", Total: 1},
		{Name: "y", Total: 1},
		{Name: "W", Total: 1},
	}, stats.TopDirectors)
	assert.Equal(t, []domain.Count{
		{Name: "USA", Total: 2},
		{Name: "UK", Total: 2},
		{Name: "France", Total: 1},
	}, stats.TopCountries)
}

func TestGenresAndDirectors(t *testing.T) {
	eng := New(yearCatalog(), Options{})

	assert.Equal(t, []string{"Comedy", "Crime", "Drama", "Horror"}, eng.Genres())
	assert.Equal(t, []string{"W", "X", "Y", "Z", "y"}, eng.Directors())
}

func TestRatingHistogram(t *testing.T) {
	eng := New(yearCatalog(), Options{})

	bins := eng.RatingHistogram(3)
	require.Len(t, bins, 3)
	assert.Equal(t, domain.HistogramBin{From: 6, To: 7, Total: 2}, bins[0])
	assert.Equal(t, domain.HistogramBin{From: 7, To: 8, Total: 1}, bins[1])
	assert.Equal(t, domain.HistogramBin{From: 8, To: 9, Total: 3}, bins[2])

	assert.Len(t, eng.RatingHistogram(0), DefaultHistogramBins)

	flat := New([]domain.Movie{{Title: "a", Rating: 5}, {Title: "b", Rating: 5}}, Options{})
	assert.Equal(t, []domain.HistogramBin{{From: 5, To: 5, Total: 2}}, flat.RatingHistogram(4))
}

func TestRatingHistogram_RoundedEdges(t *testing.T) {
	// ширина 1/3: граница 1.3333 отдаётся как 1.33, рейтинг 1.33 попадает во вторую корзину
	eng := New([]domain.Movie{
		{Title: "a", Rating: 1},
		{Title: "b", Rating: 1.33},
		{Title: "c", Rating: 1.67},
		{Title: "d", Rating: 2},
	}, Options{})

	bins := eng.RatingHistogram(3)
	require.Len(t, bins, 3)
	assert.Equal(t, domain.HistogramBin{From: 1, To: 1.33, Total: 1}, bins[0])
	assert.Equal(t, domain.HistogramBin{From: 1.33, To: 1.67, Total: 1}, bins[1])
	assert.Equal(t, domain.HistogramBin{From: 1.67, To: 2, Total: 2}, bins[2])

	total := 0
	for _, b := range bins {
		total += b.Total
	}
	assert.Equal(t, 4, total)
}

func TestYearCounts(t *testing.T) {
	eng := New(append(yearCatalog(), domain.Movie{Title: "G", Year: 2010}), Options{})

	counts := eng.YearCounts()
	require.NotEmpty(t, counts)
	assert.Equal(t, domain.YearCount{Year: 2008, Total: 1}, counts[0])
	assert.Equal(t, domain.YearCount{Year: 2010, Total: 2}, counts[1])
	assert.Equal(t, 2016, counts[len(counts)-1].Year)
}
