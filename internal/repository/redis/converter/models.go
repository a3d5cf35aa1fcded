package converter

// MovieRedisModel - фильм в закэшированной выдаче.
type MovieRedisModel struct {
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

type ScoredMovieRedisModel struct {
	Movie         MovieRedisModel `json:"movie"`
	SimilarityPct float64         `json:"similarity_pct"`
}

type RecommendationRedisModel struct {
	Found bool                    `json:"found"`
	Movie MovieRedisModel         `json:"movie"`
	Items []ScoredMovieRedisModel `json:"items"`
}

type ComparisonRedisModel struct {
	Found         bool            `json:"found"`
	First         MovieRedisModel `json:"first"`
	Second        MovieRedisModel `json:"second"`
	SimilarityPct float64         `json:"similarity_pct"`
	RatingDiff    float64         `json:"rating_diff"`
	YearDiff      int             `json:"year_diff"`
}
