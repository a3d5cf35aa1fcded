// Package engine собирает каталог, признаки, TF-IDF и матрицу сходства в один неизменяемый индекс
// и отвечает на запросы рекомендаций, сравнения, статистики и фильтрации.
package engine

import (
	"time"

	"github.com/DRSN-tech/movie-recommender/internal/catalog"
	"github.com/DRSN-tech/movie-recommender/internal/domain"
	"github.com/DRSN-tech/movie-recommender/internal/features"
	"github.com/DRSN-tech/movie-recommender/internal/resolver"
	"github.com/DRSN-tech/movie-recommender/internal/similarity"
	"github.com/DRSN-tech/movie-recommender/pkg/tfidf"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Options - параметры построения индекса.
type Options struct {
	MaxFeatures int // размер словаря TF-IDF, <= 0 - значение по умолчанию
	Workers     int // воркеры построения матрицы, 0 - по числу CPU
}

// Engine - построенный индекс. После New не изменяется и безопасен для параллельного чтения.
type Engine struct {
	catalog  *catalog.Catalog
	features []features.Features
	model    *tfidf.Model
	index    *similarity.Matrix
	resolver *resolver.Resolver
	version  string
	builtAt  time.Time
}

// New строит индекс: признаки, затем TF-IDF, затем матрицу сходства.
func New(movies []domain.Movie, opts Options) *Engine {
	maxFeatures := opts.MaxFeatures
	if maxFeatures <= 0 {
		maxFeatures = tfidf.DefaultMaxFeatures
	}

	store := catalog.New(movies)
	feats := features.BuildAll(store.All())

	vecOpts := tfidf.DefaultOptions()
	vecOpts.MaxFeatures = maxFeatures
	model, vectors := tfidf.FitTransform(features.Corpus(feats), vecOpts)

	return &Engine{
		catalog:  store,
		features: feats,
		model:    model,
		index:    similarity.Build(vectors, opts.Workers),
		resolver: resolver.New(features.Titles(feats)),
		version:  uuid.NewString(),
		builtAt:  time.Now().UTC(),
	}
}

// Version - идентификатор этой сборки индекса.
func (e *Engine) Version() string {
	return e.version
}

// BuiltAt - время окончания сборки.
func (e *Engine) BuiltAt() time.Time {
	return e.builtAt
}

// Len - число фильмов.
func (e *Engine) Len() int {
	return e.catalog.Len()
}

// VocabularySize - размерность векторного пространства.
func (e *Engine) VocabularySize() int {
	return e.model.Dim()
}

// Movie возвращает фильм по индексу.
func (e *Engine) Movie(index int) (domain.Movie, bool) {
	return e.catalog.Get(index)
}

// Resolve сопоставляет запрос с индексом фильма.
func (e *Engine) Resolve(query string) (int, bool) {
	return e.resolver.Resolve(query)
}

// Score возвращает сходство двух фильмов (0–1).
func (e *Engine) Score(i, j int) float64 {
	return e.index.Score(i, j)
}

// Recommend находит фильм по запросу и n самых похожих на него.
func (e *Engine) Recommend(query string, n int) domain.Recommendation {
	idx, ok := e.resolver.Resolve(query)
	if !ok {
		return domain.Recommendation{}
	}

	movie, _ := e.catalog.Get(idx)
	neighbors := e.index.TopK(idx, n)

	items := make([]domain.ScoredMovie, 0, len(neighbors))
	for _, nb := range neighbors {
		rec, _ := e.catalog.Get(nb.Index)
		items = append(items, domain.ScoredMovie{
			Movie:         rec,
			SimilarityPct: toPercent(nb.Score),
		})
	}

	return domain.Recommendation{Found: true, Movie: movie, Items: items}
}

// Compare сравнивает два фильма по запросам. Found == false, если не найден хотя бы один.
func (e *Engine) Compare(first, second string) domain.Comparison {
	i, ok := e.resolver.Resolve(first)
	if !ok {
		return domain.Comparison{}
	}
	j, ok := e.resolver.Resolve(second)
	if !ok {
		return domain.Comparison{}
	}

	a, _ := e.catalog.Get(i)
	b, _ := e.catalog.Get(j)

	yearDiff := a.Year - b.Year
	if yearDiff < 0 {
		yearDiff = -yearDiff
	}

	return domain.Comparison{
		Found:         true,
		First:         a,
		Second:        b,
		SimilarityPct: toPercent(e.index.Score(i, j)),
		RatingDiff:    round2(decimal.NewFromFloat(a.Rating).Sub(decimal.NewFromFloat(b.Rating)).Abs()),
		YearDiff:      yearDiff,
	}
}

func toPercent(score float64) float64 {
	return round2(decimal.NewFromFloat(score).Mul(decimal.NewFromInt(100)))
}

func round2(d decimal.Decimal) float64 {
	return d.Round(2).InexactFloat64()
}
