package usecase

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/DRSN-tech/movie-recommender/internal/domain"
	"github.com/DRSN-tech/movie-recommender/internal/engine"
	"github.com/DRSN-tech/movie-recommender/internal/features"
	"github.com/DRSN-tech/movie-recommender/internal/infrastructure/metrics"
	"github.com/DRSN-tech/movie-recommender/pkg/e"
	"github.com/DRSN-tech/movie-recommender/pkg/logger"
	"golang.org/x/sync/singleflight"
)

const (
	backgroundTimeout  = 500 * time.Millisecond
	defaultLoadTimeout = time.Minute
	reloadKey          = "reload"
)

// RecommenderUseCase владеет текущим индексом и отвечает на запросы к нему.
// Индекс подменяется атомарно: читатели видят либо старую, либо полностью собранную новую версию.
type RecommenderUseCase struct {
	source      CatalogSource
	cache       ResultCache
	events      EventProducer // nil - события не публикуются
	engineOpts  engine.Options
	loadTimeout time.Duration
	logger      logger.Logger

	current atomic.Pointer[engine.Engine]
	reloads singleflight.Group
	bg      sync.WaitGroup
}

func NewRecommenderUC(
	source CatalogSource,
	cache ResultCache,
	events EventProducer,
	engineOpts engine.Options,
	loadTimeout time.Duration,
	logger logger.Logger,
) *RecommenderUseCase {
	if loadTimeout <= 0 {
		loadTimeout = defaultLoadTimeout
	}

	return &RecommenderUseCase{
		source:      source,
		cache:       cache,
		events:      events,
		engineOpts:  engineOpts,
		loadTimeout: loadTimeout,
		logger:      logger,
	}
}

// Init загружает каталог и публикует первый индекс.
func (u *RecommenderUseCase) Init(ctx context.Context) error {
	const op = "RecommenderUseCase.Init"

	if _, err := u.Reload(ctx); err != nil {
		return e.Wrap(op, err)
	}

	return nil
}

// Reload пересобирает индекс из источника и подменяет текущий.
// Одновременные вызовы объединяются в одну сборку. При ошибке остаётся прежний индекс.
func (u *RecommenderUseCase) Reload(ctx context.Context) (*IndexInfo, error) {
	const op = "RecommenderUseCase.Reload"

	res, err, shared := u.reloads.Do(reloadKey, func() (any, error) {
		return u.rebuild(ctx)
	})
	if err != nil {
		return nil, e.Wrap(op, err)
	}
	if shared {
		u.logger.Debugf("Reload coalesced with a concurrent one")
	}

	return res.(*IndexInfo), nil
}

func (u *RecommenderUseCase) rebuild(ctx context.Context) (*IndexInfo, error) {
	// сборка общая для всех ожидающих, поэтому не зависит от отмены ctx одного вызывающего
	loadCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), u.loadTimeout)
	defer cancel()

	start := time.Now()
	movies, err := u.source.LoadMovies(loadCtx)
	if err != nil {
		metrics.RecordBuild(time.Since(start), 0, 0, err)
		u.logger.Errorf(err, "Failed to load catalog from %s", u.source.Name())
		return nil, err
	}

	eng := engine.New(movies, u.engineOpts)
	elapsed := time.Since(start)
	u.current.Store(eng)

	metrics.RecordBuild(elapsed, eng.Len(), eng.VocabularySize(), nil)
	u.logger.Infof("Index %s built from %s: %d movies, %d terms in %s",
		eng.Version(), u.source.Name(), eng.Len(), eng.VocabularySize(), elapsed)

	u.publish(domain.NewEvent(domain.EventCatalogIndexed, map[string]any{
		"version":    eng.Version(),
		"source":     u.source.Name(),
		"movies":     eng.Len(),
		"vocabulary": eng.VocabularySize(),
		"build_ms":   elapsed.Milliseconds(),
	}))

	return u.info(eng), nil
}

// Info возвращает сведения об опубликованном индексе.
func (u *RecommenderUseCase) Info(_ context.Context) (*IndexInfo, error) {
	const op = "RecommenderUseCase.Info"

	eng, err := u.published()
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return u.info(eng), nil
}

// Recommend возвращает до N фильмов, похожих на найденный по названию.
// Ненайденное название - не ошибка: Found == false.
func (u *RecommenderUseCase) Recommend(ctx context.Context, req *RecommendReq) (*domain.Recommendation, error) {
	const op = "RecommenderUseCase.Recommend"
	start := time.Now()

	if err := validateRecommend(req); err != nil {
		metrics.RecordQuery("recommend", metrics.ResultError, time.Since(start))
		return nil, e.Wrap(op, err)
	}

	eng, err := u.published()
	if err != nil {
		metrics.RecordQuery("recommend", metrics.ResultError, time.Since(start))
		return nil, e.Wrap(op, err)
	}

	key := recommendKey(eng.Version(), req.N, req.Title)
	rec, err := u.cache.GetRecommendation(ctx, key)
	switch {
	case err != nil:
		metrics.RecordCache("recommend", "error")
		u.logger.Warnf("Failed to read recommendation from cache: %v", e.Wrap(op, err))
	case rec != nil:
		metrics.RecordCache("recommend", "hit")
	default:
		metrics.RecordCache("recommend", "miss")
	}

	if rec == nil {
		result := eng.Recommend(req.Title, req.N)
		rec = &result

		// Фоновое добавление выдачи в кэш
		u.background(func(bgCtx context.Context) {
			if err := u.cache.SetRecommendation(bgCtx, key, rec); err != nil {
				u.logger.Warnf("Failed to cache recommendation in background: %v", e.Wrap(op, err))
			}
		})
	}

	if !rec.Found {
		metrics.RecordQuery("recommend", metrics.ResultNotFound, time.Since(start))
		return rec, nil
	}

	metrics.RecordQuery("recommend", metrics.ResultOK, time.Since(start))
	u.publish(domain.NewEvent(domain.EventRecommendationServed, map[string]any{
		"version": eng.Version(),
		"query":   req.Title,
		"title":   rec.Movie.Title,
		"n":       req.N,
		"results": len(rec.Items),
	}))

	return rec, nil
}

// Compare сравнивает два фильма по названиям.
func (u *RecommenderUseCase) Compare(ctx context.Context, req *CompareReq) (*domain.Comparison, error) {
	const op = "RecommenderUseCase.Compare"
	start := time.Now()

	if strings.TrimSpace(req.First) == "" || strings.TrimSpace(req.Second) == "" {
		metrics.RecordQuery("compare", metrics.ResultError, time.Since(start))
		return nil, e.Wrap(op, e.ErrTitleRequired)
	}

	eng, err := u.published()
	if err != nil {
		metrics.RecordQuery("compare", metrics.ResultError, time.Since(start))
		return nil, e.Wrap(op, err)
	}

	key := compareKey(eng.Version(), req.First, req.Second)
	cmp, err := u.cache.GetComparison(ctx, key)
	switch {
	case err != nil:
		metrics.RecordCache("compare", "error")
		u.logger.Warnf("Failed to read comparison from cache: %v", e.Wrap(op, err))
	case cmp != nil:
		metrics.RecordCache("compare", "hit")
	default:
		metrics.RecordCache("compare", "miss")
	}

	if cmp == nil {
		result := eng.Compare(req.First, req.Second)
		cmp = &result

		u.background(func(bgCtx context.Context) {
			if err := u.cache.SetComparison(bgCtx, key, cmp); err != nil {
				u.logger.Warnf("Failed to cache comparison in background: %v", e.Wrap(op, err))
			}
		})
	}

	result := metrics.ResultOK
	if !cmp.Found {
		result = metrics.ResultNotFound
	}
	metrics.RecordQuery("compare", result, time.Since(start))

	return cmp, nil
}

// Stats возвращает сводку по каталогу.
func (u *RecommenderUseCase) Stats(_ context.Context) (*domain.Stats, error) {
	const op = "RecommenderUseCase.Stats"

	eng, err := u.published()
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	stats := eng.Stats()
	return &stats, nil
}

// RatingHistogram возвращает гистограмму рейтингов. bins == 0 - число корзин по умолчанию.
func (u *RecommenderUseCase) RatingHistogram(_ context.Context, bins int) ([]domain.HistogramBin, error) {
	const op = "RecommenderUseCase.RatingHistogram"

	if bins < 0 || bins > MaxHistogramBins {
		return nil, e.Wrap(op, e.ErrInvalidBins)
	}

	eng, err := u.published()
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return eng.RatingHistogram(bins), nil
}

func (u *RecommenderUseCase) YearCounts(_ context.Context) ([]domain.YearCount, error) {
	const op = "RecommenderUseCase.YearCounts"

	eng, err := u.published()
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return eng.YearCounts(), nil
}

func (u *RecommenderUseCase) Genres(_ context.Context) ([]string, error) {
	const op = "RecommenderUseCase.Genres"

	eng, err := u.published()
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return eng.Genres(), nil
}

func (u *RecommenderUseCase) Directors(_ context.Context) ([]string, error) {
	const op = "RecommenderUseCase.Directors"

	eng, err := u.published()
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return eng.Directors(), nil
}

// MoviesByGenre - фильмы, жанр которых содержит genre без учёта регистра.
func (u *RecommenderUseCase) MoviesByGenre(_ context.Context, genre string) ([]domain.Movie, error) {
	const op = "RecommenderUseCase.MoviesByGenre"

	eng, err := u.published()
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return eng.FilterByGenre(genre), nil
}

// MoviesByDirector - фильмы, режиссёр которых содержит director без учёта регистра.
func (u *RecommenderUseCase) MoviesByDirector(_ context.Context, director string) ([]domain.Movie, error) {
	const op = "RecommenderUseCase.MoviesByDirector"

	eng, err := u.published()
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return eng.FilterByDirector(director), nil
}

// MoviesByYearRange - фильмы в диапазоне лет по убыванию рейтинга.
func (u *RecommenderUseCase) MoviesByYearRange(_ context.Context, req *YearRangeReq) ([]domain.Movie, error) {
	const op = "RecommenderUseCase.MoviesByYearRange"

	if req.From > req.To {
		return nil, e.Wrap(op, e.ErrInvalidRange)
	}

	eng, err := u.published()
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return eng.FilterByYearRange(req.From, req.To), nil
}

// MoviesByRatingRange - фильмы в диапазоне рейтинга по убыванию рейтинга.
func (u *RecommenderUseCase) MoviesByRatingRange(_ context.Context, req *RatingRangeReq) ([]domain.Movie, error) {
	const op = "RecommenderUseCase.MoviesByRatingRange"

	if req.From > req.To {
		return nil, e.Wrap(op, e.ErrInvalidRange)
	}

	eng, err := u.published()
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return eng.FilterByRatingRange(req.From, req.To), nil
}

// Shutdown ждёт завершения фоновых записей в кэш и публикаций событий.
func (u *RecommenderUseCase) Shutdown(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		u.bg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (u *RecommenderUseCase) published() (*engine.Engine, error) {
	eng := u.current.Load()
	if eng == nil {
		return nil, e.ErrEngineNotReady
	}

	return eng, nil
}

func (u *RecommenderUseCase) info(eng *engine.Engine) *IndexInfo {
	return &IndexInfo{
		Version:    eng.Version(),
		BuiltAt:    eng.BuiltAt(),
		Movies:     eng.Len(),
		Vocabulary: eng.VocabularySize(),
		Source:     u.source.Name(),
	}
}

// publish отправляет событие в фоне; ошибка только логируется.
func (u *RecommenderUseCase) publish(event *domain.Event) {
	if u.events == nil {
		return
	}

	u.background(func(bgCtx context.Context) {
		err := u.events.WriteMessage(bgCtx, event)
		metrics.RecordEvent(event.Type, err)
		if err != nil {
			u.logger.Warnf("Failed to publish %s event %s: %v", event.Type, event.ID, err)
		}
	})
}

func (u *RecommenderUseCase) background(fn func(ctx context.Context)) {
	u.bg.Add(1)
	go func() {
		defer u.bg.Done()

		bgCtx, cancel := context.WithTimeout(context.Background(), backgroundTimeout)
		defer cancel()

		fn(bgCtx)
	}()
}

func validateRecommend(req *RecommendReq) error {
	if strings.TrimSpace(req.Title) == "" {
		return e.ErrTitleRequired
	}

	if req.N < MinRecommendations || req.N > MaxRecommendations {
		return e.ErrInvalidLimit
	}

	return nil
}

// Ключи кэша включают версию индекса, поэтому после перезагрузки старые выдачи не используются.

func recommendKey(version string, n int, title string) string {
	return fmt.Sprintf("recommend:%s:%d:%s", version, n, features.NormalizeTitle(title))
}

// compareKey квотирует оба названия: разделитель может встречаться в самих названиях.
func compareKey(version, first, second string) string {
	return fmt.Sprintf("compare:%s:%q|%q", version, features.NormalizeTitle(first), features.NormalizeTitle(second))
}
