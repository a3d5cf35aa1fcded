package redis

import (
	"context"
	"errors"
	"time"

	"github.com/DRSN-tech/movie-recommender/internal/domain"
	"github.com/DRSN-tech/movie-recommender/internal/repository/redis/converter"
	"github.com/DRSN-tech/movie-recommender/pkg/clients"
	"github.com/DRSN-tech/movie-recommender/pkg/e"
	"github.com/DRSN-tech/movie-recommender/pkg/logger"
	"github.com/goccy/go-json"
	"github.com/jimlawless/whereami"
	r "github.com/redis/go-redis/v9"
)

// CacheRepo хранит выдачи рекомендаций и сравнений в Redis с общим TTL.
type CacheRepo struct {
	client *clients.RedisClient
	ttl    time.Duration
	logger logger.Logger
}

func NewCacheRepo(client *clients.RedisClient, ttl time.Duration, logger logger.Logger) *CacheRepo {
	return &CacheRepo{
		client: client,
		ttl:    ttl,
		logger: logger,
	}
}

// GetRecommendation возвращает выдачу по ключу. Промах - (nil, nil).
func (c *CacheRepo) GetRecommendation(ctx context.Context, key string) (*domain.Recommendation, error) {
	var model converter.RecommendationRedisModel
	ok, err := c.get(ctx, key, &model)
	if err != nil || !ok {
		return nil, err
	}

	return converter.ToRecommendation(&model), nil
}

func (c *CacheRepo) SetRecommendation(ctx context.Context, key string, rec *domain.Recommendation) error {
	return c.set(ctx, key, converter.ToRecommendationModel(rec))
}

// GetComparison возвращает сравнение по ключу. Промах - (nil, nil).
func (c *CacheRepo) GetComparison(ctx context.Context, key string) (*domain.Comparison, error) {
	var model converter.ComparisonRedisModel
	ok, err := c.get(ctx, key, &model)
	if err != nil || !ok {
		return nil, err
	}

	return converter.ToComparison(&model), nil
}

func (c *CacheRepo) SetComparison(ctx context.Context, key string, cmp *domain.Comparison) error {
	return c.set(ctx, key, converter.ToComparisonModel(cmp))
}

func (c *CacheRepo) get(ctx context.Context, key string, dst any) (bool, error) {
	data, err := c.client.Client.Get(ctx, key).Bytes()
	if errors.Is(err, r.Nil) {
		return false, nil // cache miss
	}
	if err != nil {
		return false, e.Wrap(whereami.WhereAmI(), err)
	}

	if err := json.Unmarshal(data, dst); err != nil {
		// битая запись считается промахом и удаляется
		c.logger.Warnf("Redis unmarshal failed for key %s: %v", key, e.Wrap(whereami.WhereAmI(), err))
		if err := c.client.Client.Del(ctx, key).Err(); err != nil {
			c.logger.Warnf("Redis del failed: %v", e.Wrap(whereami.WhereAmI(), err))
		}
		return false, nil
	}

	return true, nil
}

func (c *CacheRepo) set(ctx context.Context, key string, model any) error {
	data, err := json.Marshal(model)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	if err := c.client.Client.Set(ctx, key, data, c.ttl).Err(); err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	return nil
}
