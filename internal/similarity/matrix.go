// Package similarity хранит плотную матрицу косинусного сходства всех пар фильмов.
//
// Память матрицы растёт как O(N²): на 50 000 фильмов это около 20 ГБ float64.
// Для каталогов такого размера матрицу нужно заменять приближённым поиском соседей.
package similarity

import (
	"runtime"
	"sort"
	"sync"

	"github.com/DRSN-tech/movie-recommender/pkg/tfidf"
)

// Neighbor - сосед фильма и его сходство (0–1).
type Neighbor struct {
	Index int
	Score float64
}

// Matrix - симметричная матрица N×N со значениями в [0, 1] и единицами на диагонали.
type Matrix struct {
	n      int
	scores []float64
}

// Build считает косинус для каждой пары векторов. Нулевой вектор имеет сходство 0 со всеми
// остальными. Строки верхнего треугольника раздаются workers воркерам (0 - по числу CPU);
// каждая ячейка пишется ровно одним воркером, результат не зависит от их числа.
func Build(vectors []tfidf.Vector, workers int) *Matrix {
	n := len(vectors)
	m := &Matrix{n: n, scores: make([]float64, n*n)}
	if n == 0 {
		return m
	}

	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	norms := make([]float64, n)
	for i, v := range vectors {
		norms[i] = v.Norm()
	}

	rows := make(chan int, n)
	for i := 0; i < n; i++ {
		rows <- i
	}
	close(rows)

	var wg sync.WaitGroup
	for w := 0; w < min(workers, n); w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range rows {
				m.scores[i*n+i] = 1
				for j := i + 1; j < n; j++ {
					s := cosine(vectors[i], vectors[j], norms[i], norms[j])
					m.scores[i*n+j] = s
					m.scores[j*n+i] = s
				}
			}
		}()
	}
	wg.Wait()

	return m
}

func cosine(a, b tfidf.Vector, normA, normB float64) float64 {
	if normA == 0 || normB == 0 {
		return 0
	}

	s := a.Dot(b) / (normA * normB)
	switch {
	case s < 0:
		return 0
	case s > 1:
		return 1
	default:
		return s
	}
}

// Len возвращает число фильмов N.
func (m *Matrix) Len() int {
	return m.n
}

// Score возвращает сходство фильмов i и j. Вне диапазона возвращает 0.
func (m *Matrix) Score(i, j int) float64 {
	if i < 0 || j < 0 || i >= m.n || j >= m.n {
		return 0
	}
	return m.scores[i*m.n+j]
}

// TopK возвращает k самых похожих на i фильмов без самого i: по убыванию сходства,
// при равенстве - по возрастанию индекса. Длина результата min(k, N-1).
func (m *Matrix) TopK(i, k int) []Neighbor {
	if k <= 0 || i < 0 || i >= m.n {
		return []Neighbor{}
	}

	row := m.scores[i*m.n : (i+1)*m.n]
	candidates := make([]Neighbor, 0, m.n-1)
	for j, s := range row {
		if j != i {
			candidates = append(candidates, Neighbor{Index: j, Score: s})
		}
	}

	sort.Slice(candidates, func(a, b int) bool {
		if candidates[a].Score != candidates[b].Score {
			return candidates[a].Score > candidates[b].Score
		}
		return candidates[a].Index < candidates[b].Index
	})

	if k < len(candidates) {
		candidates = candidates[:k]
	}

	return candidates
}
