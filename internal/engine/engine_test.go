package engine

import (
	"testing"

	"github.com/DRSN-tech/movie-recommender/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func heistCatalog() []domain.Movie {
	return []domain.Movie{
		{Title: "The Great Heist", Genre: "Crime/Drama", Director: "A. Smith", Cast: "John Doe, Jane Roe", Description: "A crew plans an impossible vault robbery.", Country: "USA", Year: 2012, Rating: 7.8},
		{Title: "Heist Masters", Genre: "Crime", Director: "A. Smith", Cast: "John Doe", Description: "Veteran thieves reunite for one last vault job.", Country: "USA", Year: 2015, Rating: 6.9},
		{Title: "Romance Blooms", Genre: "Romance", Director: "B. Jones", Cast: "Mary Major", Description: "Two florists fall in love in Paris.", Country: "France", Year: 2009, Rating: 7.25},
	}
}

func TestRecommend_RanksSharedGenreAndDirectorFirst(t *testing.T) {
	eng := New(heistCatalog(), Options{})

	rec := eng.Recommend("Heist Masters", 2)
	require.True(t, rec.Found)
	assert.Equal(t, 1, rec.Movie.Index)
	require.Len(t, rec.Items, 2)
	assert.Equal(t, "The Great Heist", rec.Items[0].Movie.Title)
	assert.Equal(t, "Romance Blooms", rec.Items[1].Movie.Title)
	assert.Greater(t, rec.Items[0].SimilarityPct, rec.Items[1].SimilarityPct)

	for _, item := range rec.Items {
		assert.NotEqual(t, rec.Movie.Index, item.Movie.Index)
		assert.GreaterOrEqual(t, item.SimilarityPct, 0.0)
		assert.LessOrEqual(t, item.SimilarityPct, 100.0)
	}
}

func TestRecommend_SizeBoundAndNotFound(t *testing.T) {
	eng := New(heistCatalog(), Options{})

	assert.Len(t, eng.Recommend("heist masters", 10).Items, 2)
	assert.Empty(t, eng.Recommend("heist masters", 0).Items)

	rec := eng.Recommend("no such film", 5)
	assert.False(t, rec.Found)
	assert.Empty(t, rec.Items)
}

func TestResolve_TokenFallsToFirstMatch(t *testing.T) {
	eng := New(heistCatalog(), Options{})

	idx, ok := eng.Resolve("heist")
	require.True(t, ok)
	assert.Equal(t, 0, idx)
}

func TestCompare(t *testing.T) {
	eng := New(heistCatalog(), Options{})

	cmp := eng.Compare("Romance Blooms", "The Great Heist")
	require.True(t, cmp.Found)
	assert.Equal(t, "Romance Blooms", cmp.First.Title)
	assert.Equal(t, "The Great Heist", cmp.Second.Title)
	assert.InDelta(t, 0, cmp.SimilarityPct, 5)
	assert.Equal(t, 0.55, cmp.RatingDiff)
	assert.Equal(t, 3, cmp.YearDiff)

	same := eng.Compare("heist masters", "Heist Masters")
	require.True(t, same.Found)
	assert.Equal(t, 100.0, same.SimilarityPct)

	assert.False(t, eng.Compare("Heist Masters", "missing").Found)
	assert.False(t, eng.Compare("missing", "Heist Masters").Found)
}

func TestNew_Deterministic(t *testing.T) {
	a := New(heistCatalog(), Options{Workers: 1})
	b := New(heistCatalog(), Options{Workers: 4})

	for i := 0; i < a.Len(); i++ {
		for j := 0; j < a.Len(); j++ {
			assert.Equal(t, a.Score(i, j), b.Score(i, j))
			assert.Equal(t, a.Score(i, j), a.Score(j, i))
		}
		assert.Equal(t, 1.0, a.Score(i, i))
	}
	assert.Equal(t, a.Recommend("heist", 2), b.Recommend("heist", 2))
	assert.NotEqual(t, a.Version(), b.Version())
}

func TestNew_EmptyFields(t *testing.T) {
	eng := New([]domain.Movie{
		{Title: "Blank"},
		{Title: "Other", Genre: "Drama", Description: "A story."},
		{Title: "Void"},
	}, Options{})

	assert.Equal(t, 3, eng.Len())
	assert.Equal(t, 0.0, eng.Score(0, 1))
	assert.Equal(t, 0.0, eng.Score(0, 2))
	assert.Equal(t, 1.0, eng.Score(0, 0))

	rec := eng.Recommend("blank", 2)
	require.True(t, rec.Found)
	require.Len(t, rec.Items, 2)
	assert.Equal(t, 0.0, rec.Items[0].SimilarityPct)
	// при равных оценках выше индекс меньше
	assert.Equal(t, 1, rec.Items[0].Movie.Index)
}

func TestNew_EmptyCatalog(t *testing.T) {
	eng := New(nil, Options{})

	assert.Zero(t, eng.Len())
	assert.Zero(t, eng.VocabularySize())
	assert.False(t, eng.Recommend("anything", 3).Found)
	assert.Equal(t, 0, eng.Stats().Total)
	assert.Empty(t, eng.RatingHistogram(10))
	assert.Empty(t, eng.YearCounts())
}
