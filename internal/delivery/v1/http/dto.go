package http

import (
	"time"

	"github.com/DRSN-tech/movie-recommender/internal/domain"
	"github.com/DRSN-tech/movie-recommender/internal/usecase"
)

// Запросы

type RecommendQuery struct {
	Title string `validate:"required,max=200"`
	N     int    `validate:"min=1,max=10"`
}

type CompareQuery struct {
	First  string `validate:"required,max=200"`
	Second string `validate:"required,max=200"`
}

type ValueQuery struct {
	Value string `validate:"required,max=200"`
}

type YearRangeQuery struct {
	From int `validate:"min=1800,max=2200"`
	To   int `validate:"min=1800,max=2200"`
}

type RatingRangeQuery struct {
	From float64 `validate:"min=0,max=10"`
	To   float64 `validate:"min=0,max=10"`
}

type BinsQuery struct {
	Bins int `validate:"min=0,max=100"`
}

// Ответы

type MovieResponse struct {
	Index       int     `json:"index"`
	Title       string  `json:"title"`
	Genre       string  `json:"genre"`
	Director    string  `json:"director"`
	Cast        string  `json:"cast"`
	Description string  `json:"description"`
	Country     string  `json:"country"`
	Year        int     `json:"year"`
	Rating      float64 `json:"rating"`
}

type ScoredMovieResponse struct {
	MovieResponse
	SimilarityPct float64 `json:"similarity_pct"`
}

type RecommendationResponse struct {
	Movie           MovieResponse         `json:"movie"`
	Recommendations []ScoredMovieResponse `json:"recommendations"`
}

type ComparisonResponse struct {
	First         MovieResponse `json:"first"`
	Second        MovieResponse `json:"second"`
	SimilarityPct float64       `json:"similarity_pct"`
	RatingDiff    float64       `json:"rating_diff"`
	YearDiff      int           `json:"year_diff"`
}

type CountResponse struct {
	Name  string `json:"name"`
	Total int    `json:"total"`
}

type StatsResponse struct {
	Total        int             `json:"total"`
	AvgRating    float64         `json:"avg_rating"`
	MaxRating    float64         `json:"max_rating"`
	MinRating    float64         `json:"min_rating"`
	MinYear      int             `json:"min_year"`
	MaxYear      int             `json:"max_year"`
	TopGenres    []CountResponse `json:"top_genres"`
	TopDirectors []CountResponse `json:"top_directors"`
	TopCountries []CountResponse `json:"top_countries"`
}

type HistogramBinResponse struct {
	From  float64 `json:"from"`
	To    float64 `json:"to"`
	Total int     `json:"total"`
}

type YearCountResponse struct {
	Year  int `json:"year"`
	Total int `json:"total"`
}

type MoviesResponse struct {
	Total  int             `json:"total"`
	Movies []MovieResponse `json:"movies"`
}

type NamesResponse struct {
	Total int      `json:"total"`
	Names []string `json:"names"`
}

type IndexInfoResponse struct {
	Status     string    `json:"status"`
	Version    string    `json:"version"`
	BuiltAt    time.Time `json:"built_at"`
	Movies     int       `json:"movies"`
	Vocabulary int       `json:"vocabulary"`
	Source     string    `json:"source"`
}

// MAPPERS

func NewMovieResponse(m domain.Movie) MovieResponse {
	return MovieResponse{
		Index:       m.Index,
		Title:       m.Title,
		Genre:       m.Genre,
		Director:    m.Director,
		Cast:        m.Cast,
		Description: m.Description,
		Country:     m.Country,
		Year:        m.Year,
		Rating:      m.Rating,
	}
}

func NewRecommendationResponse(rec *domain.Recommendation) *RecommendationResponse {
	items := make([]ScoredMovieResponse, 0, len(rec.Items))
	for _, item := range rec.Items {
		items = append(items, ScoredMovieResponse{
			MovieResponse: NewMovieResponse(item.Movie),
			SimilarityPct: item.SimilarityPct,
		})
	}

	return &RecommendationResponse{
		Movie:           NewMovieResponse(rec.Movie),
		Recommendations: items,
	}
}

func NewComparisonResponse(cmp *domain.Comparison) *ComparisonResponse {
	return &ComparisonResponse{
		First:         NewMovieResponse(cmp.First),
		Second:        NewMovieResponse(cmp.Second),
		SimilarityPct: cmp.SimilarityPct,
		RatingDiff:    cmp.RatingDiff,
		YearDiff:      cmp.YearDiff,
	}
}

func NewStatsResponse(s *domain.Stats) *StatsResponse {
	return &StatsResponse{
		Total:        s.Total,
		AvgRating:    s.AvgRating,
		MaxRating:    s.MaxRating,
		MinRating:    s.MinRating,
		MinYear:      s.MinYear,
		MaxYear:      s.MaxYear,
		TopGenres:    newCountResponses(s.TopGenres),
		TopDirectors: newCountResponses(s.TopDirectors),
		TopCountries: newCountResponses(s.TopCountries),
	}
}

func NewMoviesResponse(movies []domain.Movie) *MoviesResponse {
	items := make([]MovieResponse, 0, len(movies))
	for _, m := range movies {
		items = append(items, NewMovieResponse(m))
	}

	return &MoviesResponse{Total: len(items), Movies: items}
}

func NewNamesResponse(names []string) *NamesResponse {
	if names == nil {
		names = []string{}
	}

	return &NamesResponse{Total: len(names), Names: names}
}

func NewHistogramResponse(bins []domain.HistogramBin) []HistogramBinResponse {
	result := make([]HistogramBinResponse, 0, len(bins))
	for _, b := range bins {
		result = append(result, HistogramBinResponse{From: b.From, To: b.To, Total: b.Total})
	}

	return result
}

func NewYearCountsResponse(counts []domain.YearCount) []YearCountResponse {
	result := make([]YearCountResponse, 0, len(counts))
	for _, c := range counts {
		result = append(result, YearCountResponse{Year: c.Year, Total: c.Total})
	}

	return result
}

func NewIndexInfoResponse(info *usecase.IndexInfo) *IndexInfoResponse {
	return &IndexInfoResponse{
		Status:     "ok",
		Version:    info.Version,
		BuiltAt:    info.BuiltAt,
		Movies:     info.Movies,
		Vocabulary: info.Vocabulary,
		Source:     info.Source,
	}
}

func newCountResponses(counts []domain.Count) []CountResponse {
	result := make([]CountResponse, 0, len(counts))
	for _, c := range counts {
		result = append(result, CountResponse{Name: c.Name, Total: c.Total})
	}

	return result
}
