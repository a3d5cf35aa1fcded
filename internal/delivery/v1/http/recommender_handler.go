package http

import (
	"net/http"
	"strings"

	"github.com/DRSN-tech/movie-recommender/internal/usecase"
	"github.com/DRSN-tech/movie-recommender/pkg/e"
	"github.com/DRSN-tech/movie-recommender/pkg/logger"
)

type RecommenderHandler struct {
	uc     usecase.RecommenderUC
	logger logger.Logger
}

func NewRecommenderHandler(uc usecase.RecommenderUC, logger logger.Logger) *RecommenderHandler {
	return &RecommenderHandler{uc: uc, logger: logger}
}

// recommend
//
//	@Summary		Похожие фильмы
//	@Description	Находит фильм по названию (точное совпадение, вхождение, слово) и возвращает до n похожих
//	@Tags			recommendations
//	@Produce		json
//	@Param			title	query		string	true	"Название или его часть"
//	@Param			n		query		int		false	"Число рекомендаций (1-10)"	default(5)
//	@Success		200		{object}	RecommendationResponse
//	@Failure		400		{object}	ErrorResponse	"Ошибка валидации"
//	@Failure		404		{object}	ErrorResponse	"Фильм не найден"
//	@Failure		503		{object}	ErrorResponse	"Индекс ещё не построен"
//	@Router			/recommendations [get]
func (h *RecommenderHandler) recommend(w http.ResponseWriter, r *http.Request) {
	n, err := queryInt(r, "n", usecase.DefaultRecommendations, false)
	if err != nil {
		h.badRequest(w, err)
		return
	}

	query := RecommendQuery{Title: strings.TrimSpace(r.URL.Query().Get("title")), N: n}
	if err := validate.Struct(query); err != nil {
		h.badRequest(w, err)
		return
	}

	rec, err := h.uc.Recommend(r.Context(), usecase.NewRecommendReq(query.Title, query.N))
	if err != nil {
		h.fail(w, err)
		return
	}

	if !rec.Found {
		WriteError(w, e.Wrap(query.Title, e.ErrMovieNotFound))
		return
	}

	WriteSuccess(w, http.StatusOK, NewRecommendationResponse(rec))
}

// compare
//
//	@Summary		Сравнение двух фильмов
//	@Tags			recommendations
//	@Produce		json
//	@Param			first	query		string	true	"Первый фильм"
//	@Param			second	query		string	true	"Второй фильм"
//	@Success		200		{object}	ComparisonResponse
//	@Failure		400		{object}	ErrorResponse
//	@Failure		404		{object}	ErrorResponse
//	@Router			/comparison [get]
func (h *RecommenderHandler) compare(w http.ResponseWriter, r *http.Request) {
	query := CompareQuery{
		First:  strings.TrimSpace(r.URL.Query().Get("first")),
		Second: strings.TrimSpace(r.URL.Query().Get("second")),
	}
	if err := validate.Struct(query); err != nil {
		h.badRequest(w, err)
		return
	}

	cmp, err := h.uc.Compare(r.Context(), usecase.NewCompareReq(query.First, query.Second))
	if err != nil {
		h.fail(w, err)
		return
	}

	if !cmp.Found {
		WriteError(w, e.Wrap(query.First+" / "+query.Second, e.ErrMovieNotFound))
		return
	}

	WriteSuccess(w, http.StatusOK, NewComparisonResponse(cmp))
}

// stats
//
//	@Summary	Сводка по каталогу
//	@Tags		stats
//	@Produce	json
//	@Success	200	{object}	StatsResponse
//	@Router		/stats [get]
func (h *RecommenderHandler) stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.uc.Stats(r.Context())
	if err != nil {
		h.fail(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, NewStatsResponse(stats))
}

// ratingHistogram
//
//	@Summary	Гистограмма рейтингов
//	@Tags		stats
//	@Produce	json
//	@Param		bins	query	int	false	"Число корзин (1-100)"	default(20)
//	@Success	200		{array}	HistogramBinResponse
//	@Failure	400		{object}	ErrorResponse
//	@Router		/stats/ratings [get]
func (h *RecommenderHandler) ratingHistogram(w http.ResponseWriter, r *http.Request) {
	bins, err := queryInt(r, "bins", 0, false)
	if err != nil {
		h.badRequest(w, err)
		return
	}

	if err := validate.Struct(BinsQuery{Bins: bins}); err != nil {
		h.badRequest(w, err)
		return
	}

	hist, err := h.uc.RatingHistogram(r.Context(), bins)
	if err != nil {
		h.fail(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, NewHistogramResponse(hist))
}

// yearCounts
//
//	@Summary	Число фильмов по годам
//	@Tags		stats
//	@Produce	json
//	@Success	200	{array}	YearCountResponse
//	@Router		/stats/years [get]
func (h *RecommenderHandler) yearCounts(w http.ResponseWriter, r *http.Request) {
	counts, err := h.uc.YearCounts(r.Context())
	if err != nil {
		h.fail(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, NewYearCountsResponse(counts))
}

// moviesByGenre
//
//	@Summary	Фильмы по жанру
//	@Tags		movies
//	@Produce	json
//	@Param		value	query		string	true	"Жанр или его часть"
//	@Success	200		{object}	MoviesResponse
//	@Failure	400		{object}	ErrorResponse
//	@Router		/movies/genre [get]
func (h *RecommenderHandler) moviesByGenre(w http.ResponseWriter, r *http.Request) {
	query := ValueQuery{Value: strings.TrimSpace(r.URL.Query().Get("value"))}
	if err := validate.Struct(query); err != nil {
		h.badRequest(w, err)
		return
	}

	movies, err := h.uc.MoviesByGenre(r.Context(), query.Value)
	if err != nil {
		h.fail(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, NewMoviesResponse(movies))
}

// moviesByDirector
//
//	@Summary	Фильмы по режиссёру
//	@Tags		movies
//	@Produce	json
//	@Param		value	query		string	true	"Режиссёр или часть имени"
//	@Success	200		{object}	MoviesResponse
//	@Failure	400		{object}	ErrorResponse
//	@Router		/movies/director [get]
func (h *RecommenderHandler) moviesByDirector(w http.ResponseWriter, r *http.Request) {
	query := ValueQuery{Value: strings.TrimSpace(r.URL.Query().Get("value"))}
	if err := validate.Struct(query); err != nil {
		h.badRequest(w, err)
		return
	}

	movies, err := h.uc.MoviesByDirector(r.Context(), query.Value)
	if err != nil {
		h.fail(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, NewMoviesResponse(movies))
}

// moviesByYear
//
//	@Summary		Фильмы за период
//	@Description	Включительный диапазон лет, по убыванию рейтинга
//	@Tags			movies
//	@Produce		json
//	@Param			from	query		int	true	"С года"
//	@Param			to		query		int	true	"По год"
//	@Success		200		{object}	MoviesResponse
//	@Failure		400		{object}	ErrorResponse
//	@Router			/movies/year [get]
func (h *RecommenderHandler) moviesByYear(w http.ResponseWriter, r *http.Request) {
	from, err := queryInt(r, "from", 0, true)
	if err != nil {
		h.badRequest(w, err)
		return
	}

	to, err := queryInt(r, "to", 0, true)
	if err != nil {
		h.badRequest(w, err)
		return
	}

	query := YearRangeQuery{From: from, To: to}
	if err := validate.Struct(query); err != nil {
		h.badRequest(w, err)
		return
	}

	movies, err := h.uc.MoviesByYearRange(r.Context(), usecase.NewYearRangeReq(query.From, query.To))
	if err != nil {
		h.fail(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, NewMoviesResponse(movies))
}

// moviesByRating
//
//	@Summary		Фильмы в диапазоне рейтинга
//	@Description	Включительный диапазон, по убыванию рейтинга
//	@Tags			movies
//	@Produce		json
//	@Param			from	query		number	false	"От"	default(0)
//	@Param			to		query		number	false	"До"	default(10)
//	@Success		200		{object}	MoviesResponse
//	@Failure		400		{object}	ErrorResponse
//	@Router			/movies/rating [get]
func (h *RecommenderHandler) moviesByRating(w http.ResponseWriter, r *http.Request) {
	from, err := queryFloat(r, "from", 0, false)
	if err != nil {
		h.badRequest(w, err)
		return
	}

	to, err := queryFloat(r, "to", 10, false)
	if err != nil {
		h.badRequest(w, err)
		return
	}

	query := RatingRangeQuery{From: from, To: to}
	if err := validate.Struct(query); err != nil {
		h.badRequest(w, err)
		return
	}

	movies, err := h.uc.MoviesByRatingRange(r.Context(), usecase.NewRatingRangeReq(query.From, query.To))
	if err != nil {
		h.fail(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, NewMoviesResponse(movies))
}

// genres
//
//	@Summary	Список жанров
//	@Tags		movies
//	@Produce	json
//	@Success	200	{object}	NamesResponse
//	@Router		/genres [get]
func (h *RecommenderHandler) genres(w http.ResponseWriter, r *http.Request) {
	names, err := h.uc.Genres(r.Context())
	if err != nil {
		h.fail(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, NewNamesResponse(names))
}

// directors
//
//	@Summary	Список режиссёров
//	@Tags		movies
//	@Produce	json
//	@Success	200	{object}	NamesResponse
//	@Router		/directors [get]
func (h *RecommenderHandler) directors(w http.ResponseWriter, r *http.Request) {
	names, err := h.uc.Directors(r.Context())
	if err != nil {
		h.fail(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, NewNamesResponse(names))
}

// reload
//
//	@Summary		Перезагрузка каталога
//	@Description	Заново читает каталог из источника и атомарно подменяет индекс
//	@Tags			catalog
//	@Produce		json
//	@Success		200	{object}	IndexInfoResponse
//	@Failure		422	{object}	ErrorResponse	"Каталог не прошёл разбор"
//	@Failure		500	{object}	ErrorResponse
//	@Router			/catalog/reload [post]
func (h *RecommenderHandler) reload(w http.ResponseWriter, r *http.Request) {
	info, err := h.uc.Reload(r.Context())
	if err != nil {
		h.logger.Errorf(err, "Catalog reload failed")
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, NewIndexInfoResponse(info))
}

// health отвечает 200, когда индекс построен, и 503 до этого.
func (h *RecommenderHandler) health(w http.ResponseWriter, r *http.Request) {
	info, err := h.uc.Info(r.Context())
	if err != nil {
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, NewIndexInfoResponse(info))
}

func (h *RecommenderHandler) badRequest(w http.ResponseWriter, err error) {
	h.logger.Warnf("%d %s", http.StatusBadRequest, err.Error())
	WriteError(w, err)
}

func (h *RecommenderHandler) fail(w http.ResponseWriter, err error) {
	code, _ := ToHTTPResponse(err)
	if code >= http.StatusInternalServerError {
		h.logger.Errorf(err, "Request failed")
	} else {
		h.logger.Warnf("%s", err.Error())
	}

	WriteError(w, err)
}
