// Package memory - кэш выдач в памяти процесса, когда Redis не настроен.
package memory

import (
	"context"
	"time"

	"github.com/DRSN-tech/movie-recommender/internal/domain"
	"github.com/patrickmn/go-cache"
)

const cleanupInterval = time.Minute

type CacheRepo struct {
	store *cache.Cache
}

func NewCacheRepo(ttl time.Duration) *CacheRepo {
	return &CacheRepo{store: cache.New(ttl, cleanupInterval)}
}

func (c *CacheRepo) GetRecommendation(_ context.Context, key string) (*domain.Recommendation, error) {
	v, ok := c.store.Get(key)
	if !ok {
		return nil, nil
	}

	rec, ok := v.(domain.Recommendation)
	if !ok {
		return nil, nil
	}

	return &rec, nil
}

func (c *CacheRepo) SetRecommendation(_ context.Context, key string, rec *domain.Recommendation) error {
	c.store.SetDefault(key, *rec)
	return nil
}

func (c *CacheRepo) GetComparison(_ context.Context, key string) (*domain.Comparison, error) {
	v, ok := c.store.Get(key)
	if !ok {
		return nil, nil
	}

	cmp, ok := v.(domain.Comparison)
	if !ok {
		return nil, nil
	}

	return &cmp, nil
}

func (c *CacheRepo) SetComparison(_ context.Context, key string, cmp *domain.Comparison) error {
	c.store.SetDefault(key, *cmp)
	return nil
}

// Len - число записей, включая ещё не вычищенные просроченные.
func (c *CacheRepo) Len() int {
	return c.store.ItemCount()
}
