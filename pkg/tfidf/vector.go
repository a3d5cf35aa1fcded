package tfidf

import "math"

// Vector - разреженная строка матрицы TF-IDF. Indices отсортированы по возрастанию.
type Vector struct {
	Indices []int
	Values  []float64
}

// IsZero сообщает, что у документа нет ни одного термина из словаря.
func (v Vector) IsZero() bool {
	for _, x := range v.Values {
		if x != 0 {
			return false
		}
	}
	return true
}

// Norm возвращает L2-норму.
func (v Vector) Norm() float64 {
	var sum float64
	for _, x := range v.Values {
		sum += x * x
	}
	return math.Sqrt(sum)
}

// Dot возвращает скалярное произведение двух векторов одного пространства.
func (v Vector) Dot(other Vector) float64 {
	var (
		sum  float64
		i, j int
	)
	for i < len(v.Indices) && j < len(other.Indices) {
		switch {
		case v.Indices[i] == other.Indices[j]:
			sum += v.Values[i] * other.Values[j]
			i++
			j++
		case v.Indices[i] < other.Indices[j]:
			i++
		default:
			j++
		}
	}
	return sum
}

// Dense разворачивает вектор в плотный срез длины dim.
func (v Vector) Dense(dim int) []float64 {
	dense := make([]float64, dim)
	for k, i := range v.Indices {
		if i < dim {
			dense[i] = v.Values[k]
		}
	}
	return dense
}
