package redis

import (
	"context"
	"testing"
	"time"

	"github.com/DRSN-tech/movie-recommender/internal/cfg"
	"github.com/DRSN-tech/movie-recommender/internal/domain"
	"github.com/DRSN-tech/movie-recommender/pkg/clients"
	"github.com/DRSN-tech/movie-recommender/pkg/logger"
	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRepo(t *testing.T) (*CacheRepo, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := clients.NewRedisClient(&cfg.RedisCfg{
		Addr:        mr.Addr(),
		DialTimeout: time.Second,
		Timeout:     time.Second,
	})
	t.Cleanup(func() { _ = client.Close(context.Background()) })

	return NewCacheRepo(client, time.Minute, logger.NewNop()), mr
}

func TestCacheRepo_Recommendation(t *testing.T) {
	repo, mr := newRepo(t)
	ctx := context.Background()

	got, err := repo.GetRecommendation(ctx, "recommend:v1:2:heist")
	require.NoError(t, err)
	assert.Nil(t, got)

	rec := &domain.Recommendation{
		Found: true,
		Movie: domain.Movie{Index: 1, Title: "Heist Masters", Genre: "Crime", Year: 2015, Rating: 6.9},
		Items: []domain.ScoredMovie{
			{Movie: domain.Movie{Index: 0, Title: "The Great Heist", Rating: 7.8}, SimilarityPct: 61.24},
		},
	}
	require.NoError(t, repo.SetRecommendation(ctx, "recommend:v1:2:heist", rec))

	got, err = repo.GetRecommendation(ctx, "recommend:v1:2:heist")
	require.NoError(t, err)
	assert.Equal(t, rec, got)

	ttl := mr.TTL("recommend:v1:2:heist")
	assert.Equal(t, time.Minute, ttl)

	mr.FastForward(2 * time.Minute)
	got, err = repo.GetRecommendation(ctx, "recommend:v1:2:heist")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestCacheRepo_Comparison(t *testing.T) {
	repo, _ := newRepo(t)
	ctx := context.Background()

	cmp := &domain.Comparison{
		Found:         true,
		First:         domain.Movie{Title: "Romance Blooms"},
		Second:        domain.Movie{Index: 2, Title: "The Great Heist"},
		SimilarityPct: 0,
		RatingDiff:    0.55,
		YearDiff:      3,
	}
	require.NoError(t, repo.SetComparison(ctx, "compare:v1:a|b", cmp))

	got, err := repo.GetComparison(ctx, "compare:v1:a|b")
	require.NoError(t, err)
	assert.Equal(t, cmp, got)
}

func TestCacheRepo_CorruptedEntryIsMiss(t *testing.T) {
	repo, mr := newRepo(t)
	require.NoError(t, mr.Set("recommend:v1:1:x", "{not json"))

	got, err := repo.GetRecommendation(context.Background(), "recommend:v1:1:x")
	require.NoError(t, err)
	assert.Nil(t, got)
	assert.False(t, mr.Exists("recommend:v1:1:x"))
}

func TestCacheRepo_ServerDown(t *testing.T) {
	repo, mr := newRepo(t)
	mr.Close()

	_, err := repo.GetRecommendation(context.Background(), "recommend:v1:1:x")
	assert.Error(t, err)
}
