package similarity

import (
	"fmt"
	"testing"

	"github.com/DRSN-tech/movie-recommender/pkg/tfidf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixtureVectors() []tfidf.Vector {
	_, vectors := tfidf.FitTransform([]string{
		"Crime/Drama A. Smith Jane Roe crew robs vault",
		"Crime A. Smith Tom Poe thieves plan robbery",
		"Romance B. Jones Ann Lee love story in paris",
		"",
		"Crime/Drama A. Smith Jane Roe crew robs vault",
	}, tfidf.DefaultOptions())
	return vectors
}

func TestBuild_MatrixProperties(t *testing.T) {
	m := Build(fixtureVectors(), 2)
	require.Equal(t, 5, m.Len())

	for i := 0; i < m.Len(); i++ {
		assert.InDelta(t, 1.0, m.Score(i, i), 1e-9, "self-similarity %d", i)
		for j := 0; j < m.Len(); j++ {
			s := m.Score(i, j)
			assert.Equal(t, s, m.Score(j, i), "symmetry %d,%d", i, j)
			assert.GreaterOrEqual(t, s, 0.0)
			assert.LessOrEqual(t, s, 1.0)
		}
	}

	assert.Greater(t, m.Score(0, 1), m.Score(0, 2))
	assert.InDelta(t, 1.0, m.Score(0, 4), 1e-9)
}

func TestBuild_ZeroVectorScoresZero(t *testing.T) {
	m := Build(fixtureVectors(), 1)
	for j := 0; j < m.Len(); j++ {
		if j != 3 {
			assert.Zero(t, m.Score(3, j))
		}
	}
}

func TestBuild_DeterministicAcrossWorkers(t *testing.T) {
	vectors := fixtureVectors()
	single := Build(vectors, 1)
	for _, workers := range []int{0, 3, 16} {
		t.Run(fmt.Sprintf("workers=%d", workers), func(t *testing.T) {
			assert.Equal(t, single.scores, Build(vectors, workers).scores)
		})
	}
}

func TestTopK(t *testing.T) {
	m := Build(fixtureVectors(), 0)

	top := m.TopK(0, 2)
	require.Len(t, top, 2)
	assert.Equal(t, 4, top[0].Index)
	assert.Equal(t, 1, top[1].Index)

	for i := 0; i < m.Len(); i++ {
		for _, k := range []int{0, 1, 3, 4, 10} {
			got := m.TopK(i, k)
			assert.Len(t, got, min(k, m.Len()-1))
			for p, nb := range got {
				assert.NotEqual(t, i, nb.Index)
				if p > 0 {
					prev := got[p-1]
					assert.True(t, prev.Score > nb.Score || (prev.Score == nb.Score && prev.Index < nb.Index))
				}
			}
		}
	}
}

func TestTopK_TiesByAscendingIndex(t *testing.T) {
	m := Build(fixtureVectors(), 0)

	// у нулевого вектора все соседи со сходством 0
	top := m.TopK(3, 4)
	require.Len(t, top, 4)
	assert.Equal(t, []int{0, 1, 2, 4}, []int{top[0].Index, top[1].Index, top[2].Index, top[3].Index})
}

func TestEmptyMatrix(t *testing.T) {
	m := Build(nil, 0)
	assert.Zero(t, m.Len())
	assert.Empty(t, m.TopK(0, 5))
	assert.Zero(t, m.Score(0, 0))
}
