package usecase

import "time"

// Границы запросов
const (
	MinRecommendations     = 1
	MaxRecommendations     = 10
	DefaultRecommendations = 5
	MaxHistogramBins       = 100
)

// RecommendReq - запрос похожих фильмов.
type RecommendReq struct {
	Title string
	N     int
}

// CompareReq - запрос сравнения двух фильмов.
type CompareReq struct {
	First  string
	Second string
}

// YearRangeReq - включительный диапазон лет.
type YearRangeReq struct {
	From int
	To   int
}

// RatingRangeReq - включительный диапазон рейтинга.
type RatingRangeReq struct {
	From float64
	To   float64
}

// IndexInfo описывает опубликованный индекс.
type IndexInfo struct {
	Version    string
	BuiltAt    time.Time
	Movies     int
	Vocabulary int
	Source     string
}

// MAPPERS

func NewRecommendReq(title string, n int) *RecommendReq {
	return &RecommendReq{
		Title: title,
		N:     n,
	}
}

func NewCompareReq(first, second string) *CompareReq {
	return &CompareReq{
		First:  first,
		Second: second,
	}
}

func NewYearRangeReq(from, to int) *YearRangeReq {
	return &YearRangeReq{
		From: from,
		To:   to,
	}
}

func NewRatingRangeReq(from, to float64) *RatingRangeReq {
	return &RatingRangeReq{
		From: from,
		To:   to,
	}
}
