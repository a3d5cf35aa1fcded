// Package source оборачивает удалённые источники каталога повторными попытками.
package source

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/DRSN-tech/movie-recommender/internal/catalog"
	"github.com/DRSN-tech/movie-recommender/internal/domain"
	"github.com/DRSN-tech/movie-recommender/internal/usecase"
	"github.com/DRSN-tech/movie-recommender/pkg/e"
	"github.com/DRSN-tech/movie-recommender/pkg/jitter"
	"github.com/DRSN-tech/movie-recommender/pkg/logger"
)

const maxDelay = 30 * time.Second

// Retrying повторяет загрузку каталога с экспоненциальной задержкой и джиттером.
// Ошибки разбора (*catalog.LoadError) не повторяются: данные от повтора не изменятся.
type Retrying struct {
	next       usecase.CatalogSource
	maxRetries int
	backoff    *jitter.Backoff
	logger     logger.Logger
}

func NewRetrying(next usecase.CatalogSource, maxRetries int, baseDelay time.Duration, logger logger.Logger) *Retrying {
	return NewRetryingWithBackoff(next, maxRetries, jitter.NewBackoff(baseDelay, maxDelay, jitter.DefaultJitter), logger)
}

func NewRetryingWithBackoff(next usecase.CatalogSource, maxRetries int, backoff *jitter.Backoff, logger logger.Logger) *Retrying {
	if maxRetries < 1 {
		maxRetries = 1
	}

	return &Retrying{
		next:       next,
		maxRetries: maxRetries,
		backoff:    backoff,
		logger:     logger,
	}
}

func (r *Retrying) Name() string {
	return r.next.Name()
}

// LoadMovies делает не больше maxRetries попыток.
func (r *Retrying) LoadMovies(ctx context.Context) ([]domain.Movie, error) {
	const op = "Retrying.LoadMovies"

	var lastErr error
	for attempt := 0; attempt < r.maxRetries; attempt++ {
		movies, err := r.next.LoadMovies(ctx)
		if err == nil {
			return movies, nil
		}
		lastErr = err

		var loadErr *catalog.LoadError
		if errors.As(err, &loadErr) {
			return nil, e.Wrap(op, err)
		}

		if attempt == r.maxRetries-1 {
			break
		}

		sleepTime := r.backoff.Next(attempt)
		r.logger.Warnf("catalog load from %s failed, retrying in %v (attempt %d): %v",
			r.next.Name(), sleepTime, attempt+1, err)

		select {
		case <-time.After(sleepTime):
		case <-ctx.Done():
			return nil, e.Wrap(op, ctx.Err())
		}
	}

	return nil, e.Wrap(op, fmt.Errorf("all %d attempts failed: %w", r.maxRetries, lastErr))
}
