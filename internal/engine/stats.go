package engine

import (
	"sort"
	"strings"

	"github.com/DRSN-tech/movie-recommender/internal/domain"
	"github.com/shopspring/decimal"
)

const (
	topLimit             = 5
	DefaultHistogramBins = 20
)

// Stats считает сводку по каталогу. Для пустого каталога возвращаются нулевые значения.
func (e *Engine) Stats() domain.Stats {
	movies := e.catalog.All()
	if len(movies) == 0 {
		return domain.Stats{
			TopGenres:    []domain.Count{},
			TopDirectors: []domain.Count{},
			TopCountries: []domain.Count{},
		}
	}

	var (
		sum       = decimal.Zero
		genres    = newCounter()
		directors = newCounter()
		countries = newCounter()
		stats     = domain.Stats{
			Total:     len(movies),
			MaxRating: movies[0].Rating,
			MinRating: movies[0].Rating,
			MinYear:   movies[0].Year,
			MaxYear:   movies[0].Year,
		}
	)

	for _, m := range movies {
		sum = sum.Add(decimal.NewFromFloat(m.Rating))
		stats.MaxRating = max(stats.MaxRating, m.Rating)
		stats.MinRating = min(stats.MinRating, m.Rating)
		stats.MaxYear = max(stats.MaxYear, m.Year)
		stats.MinYear = min(stats.MinYear, m.Year)

		for _, g := range m.Genres() {
			genres.add(g)
		}
		directors.add(m.Director)
		countries.add(m.Country)
	}

	stats.AvgRating = round2(sum.Div(decimal.NewFromInt(int64(len(movies)))))
	stats.TopGenres = genres.top(topLimit)
	stats.TopDirectors = directors.top(topLimit)
	stats.TopCountries = countries.top(topLimit)

	return stats
}

// Genres возвращает отсортированный список отдельных жанров.
func (e *Engine) Genres() []string {
	set := make(map[string]struct{})
	for _, m := range e.catalog.All() {
		for _, g := range m.Genres() {
			set[g] = struct{}{}
		}
	}

	return sortedKeys(set)
}

// Directors возвращает отсортированный список режиссёров.
func (e *Engine) Directors() []string {
	set := make(map[string]struct{})
	for _, m := range e.catalog.All() {
		if d := strings.TrimSpace(m.Director); d != "" {
			set[d] = struct{}{}
		}
	}

	return sortedKeys(set)
}

// RatingHistogram делит [min, max] рейтингов на bins корзин равной ширины.
// bins <= 0 - DefaultHistogramBins. Если все рейтинги равны, корзина одна.
func (e *Engine) RatingHistogram(bins int) []domain.HistogramBin {
	movies := e.catalog.All()
	if len(movies) == 0 {
		return []domain.HistogramBin{}
	}
	if bins <= 0 {
		bins = DefaultHistogramBins
	}

	lo, hi := movies[0].Rating, movies[0].Rating
	for _, m := range movies {
		lo = min(lo, m.Rating)
		hi = max(hi, m.Rating)
	}

	if lo == hi {
		return []domain.HistogramBin{{From: lo, To: hi, Total: len(movies)}}
	}

	width := (hi - lo) / float64(bins)
	result := make([]domain.HistogramBin, bins)
	for i := range result {
		result[i].From = round2(decimal.NewFromFloat(lo + float64(i)*width))
		result[i].To = round2(decimal.NewFromFloat(lo + float64(i+1)*width))
	}
	result[0].From = lo
	result[bins-1].To = hi

	// корзина - [From, To), последняя включает hi. Принадлежность по тем же границам, что отдаются наружу.
	for _, m := range movies {
		b := sort.Search(bins, func(i int) bool { return result[i].From > m.Rating }) - 1
		result[max(b, 0)].Total++
	}

	return result
}

// YearCounts возвращает число фильмов по годам в порядке возрастания года.
func (e *Engine) YearCounts() []domain.YearCount {
	counts := make(map[int]int)
	for _, m := range e.catalog.All() {
		counts[m.Year]++
	}

	result := make([]domain.YearCount, 0, len(counts))
	for year, total := range counts {
		result = append(result, domain.YearCount{Year: year, Total: total})
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Year < result[j].Year })

	return result
}

// counter считает значения и помнит порядок первого появления.
type counter struct {
	totals map[string]int
	order  []string
}

func newCounter() *counter {
	return &counter{totals: make(map[string]int)}
}

func (c *counter) add(value string) {
	value = strings.TrimSpace(value)
	if value == "" {
		return
	}
	if _, ok := c.totals[value]; !ok {
		c.order = append(c.order, value)
	}
	c.totals[value]++
}

// top возвращает limit самых частых значений; при равенстве раньше идёт то, что встретилось первым.
func (c *counter) top(limit int) []domain.Count {
	result := make([]domain.Count, 0, len(c.order))
	for _, name := range c.order {
		result = append(result, domain.Count{Name: name, Total: c.totals[name]})
	}
	sort.SliceStable(result, func(i, j int) bool { return result[i].Total > result[j].Total })

	if len(result) > limit {
		result = result[:limit]
	}

	return result
}

func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	return keys
}
