// Package tfidf строит TF-IDF векторы для корпуса документов.
//
// Токены - последовательности из двух и более букв, цифр или подчёркиваний в нижнем регистре.
// Вес термина - число вхождений в документ, умноженное на сглаженный idf = ln((1+n)/(1+df)) + 1.
// Строки нормируются по L2, поэтому косинус двух векторов равен их скалярному произведению.
package tfidf

import (
	"math"
	"regexp"
	"sort"
	"strings"
)

// DefaultMaxFeatures - размер словаря по умолчанию.
const DefaultMaxFeatures = 5000

var tokenRegex = regexp.MustCompile(`[\p{L}\p{N}\p{M}_]{2,}`)

// Options - параметры обучения модели.
type Options struct {
	MaxFeatures int                 // верхняя граница словаря, <= 0 - без ограничения
	StopWords   map[string]struct{} // исключаемые термины
}

// DefaultOptions возвращает словарь на 5000 терминов и английские стоп-слова.
func DefaultOptions() Options {
	return Options{
		MaxFeatures: DefaultMaxFeatures,
		StopWords:   EnglishStopWords(),
	}
}

// Model - обученный словарь и idf-веса.
type Model struct {
	vocabulary []string       // термины в алфавитном порядке
	index      map[string]int // термин -> позиция в vocabulary
	idf        []float64
	stopWords  map[string]struct{}
}

// Tokenize разбивает текст на токены в нижнем регистре.
func Tokenize(text string) []string {
	return tokenRegex.FindAllString(strings.ToLower(text), -1)
}

// Fit строит словарь и idf по корпусу за один проход.
// Если терминов больше MaxFeatures, остаются самые частые по всему корпусу,
// при равной частоте - первые по алфавиту.
func Fit(corpus []string, opts Options) *Model {
	var (
		termCount = make(map[string]int)
		docCount  = make(map[string]int)
	)

	for _, doc := range corpus {
		seen := make(map[string]struct{})
		for _, token := range analyze(doc, opts.StopWords) {
			termCount[token]++
			if _, ok := seen[token]; !ok {
				seen[token] = struct{}{}
				docCount[token]++
			}
		}
	}

	terms := make([]string, 0, len(termCount))
	for term := range termCount {
		terms = append(terms, term)
	}

	if opts.MaxFeatures > 0 && len(terms) > opts.MaxFeatures {
		sort.Slice(terms, func(i, j int) bool {
			ci, cj := termCount[terms[i]], termCount[terms[j]]
			if ci != cj {
				return ci > cj
			}
			return terms[i] < terms[j]
		})
		terms = terms[:opts.MaxFeatures]
	}
	sort.Strings(terms)

	n := float64(len(corpus))
	model := &Model{
		vocabulary: terms,
		index:      make(map[string]int, len(terms)),
		idf:        make([]float64, len(terms)),
		stopWords:  opts.StopWords,
	}
	for i, term := range terms {
		model.index[term] = i
		model.idf[i] = math.Log((1+n)/(1+float64(docCount[term]))) + 1
	}

	return model
}

// FitTransform обучает модель и сразу векторизует тот же корпус.
func FitTransform(corpus []string, opts Options) (*Model, []Vector) {
	model := Fit(corpus, opts)
	return model, model.Transform(corpus)
}

// Transform векторизует документы. Термины вне словаря пропускаются;
// документ без известных терминов даёт нулевой вектор.
func (m *Model) Transform(corpus []string) []Vector {
	vectors := make([]Vector, len(corpus))
	for i, doc := range corpus {
		vectors[i] = m.transformOne(doc)
	}

	return vectors
}

// Vocabulary возвращает копию словаря в порядке измерений.
func (m *Model) Vocabulary() []string {
	vocab := make([]string, len(m.vocabulary))
	copy(vocab, m.vocabulary)
	return vocab
}

// Dim возвращает размерность векторного пространства.
func (m *Model) Dim() int {
	return len(m.vocabulary)
}

// IDF возвращает idf термина и признак его наличия в словаре.
func (m *Model) IDF(term string) (float64, bool) {
	i, ok := m.index[term]
	if !ok {
		return 0, false
	}
	return m.idf[i], true
}

func (m *Model) transformOne(doc string) Vector {
	counts := make(map[int]float64)
	for _, token := range analyze(doc, m.stopWords) {
		if i, ok := m.index[token]; ok {
			counts[i]++
		}
	}

	vec := Vector{
		Indices: make([]int, 0, len(counts)),
		Values:  make([]float64, 0, len(counts)),
	}
	for i := range counts {
		vec.Indices = append(vec.Indices, i)
	}
	sort.Ints(vec.Indices)

	var sumSq float64
	for _, i := range vec.Indices {
		w := counts[i] * m.idf[i]
		vec.Values = append(vec.Values, w)
		sumSq += w * w
	}

	if sumSq > 0 {
		norm := math.Sqrt(sumSq)
		for k := range vec.Values {
			vec.Values[k] /= norm
		}
	}

	return vec
}

func analyze(doc string, stopWords map[string]struct{}) []string {
	tokens := Tokenize(doc)
	if len(stopWords) == 0 {
		return tokens
	}

	kept := tokens[:0]
	for _, token := range tokens {
		if _, stop := stopWords[token]; !stop {
			kept = append(kept, token)
		}
	}

	return kept
}
