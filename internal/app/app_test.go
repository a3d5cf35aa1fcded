package app

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	config "github.com/DRSN-tech/movie-recommender/internal/cfg"
	"github.com/DRSN-tech/movie-recommender/internal/usecase"
	"github.com/DRSN-tech/movie-recommender/pkg/closer"
	"github.com/DRSN-tech/movie-recommender/pkg/e"
	"github.com/DRSN-tech/movie-recommender/pkg/logger"
	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = `title,genre,director,cast,description,country,year,rating
The Great Heist,Crime/Drama,A. Smith,John Doe,A crew plans a vault robbery.,USA,2012,7.8
Heist Masters,Crime,A. Smith,John Doe,Thieves reunite for one last vault job.,USA,2015,6.9
Romance Blooms,Romance,B. Jones,Mary Major,Two florists fall in love in Paris.,France,2009,7.2
`

func fileConfig(t *testing.T) *config.Config {
	t.Helper()

	path := filepath.Join(t.TempDir(), "movies.csv")
	require.NoError(t, os.WriteFile(path, []byte(sample), 0o600))

	return &config.Config{
		Catalog: &config.CatalogCfg{Source: config.SourceFile, Path: path, LoadTimeout: time.Second},
		Engine:  &config.EngineCfg{MaxFeatures: 100, Workers: 2},
		Cache:   &config.CacheCfg{TTL: time.Minute},
	}
}

func newCloser(t *testing.T) *closer.Closer {
	t.Helper()

	cl := closer.NewCloser(time.Second)
	t.Cleanup(func() { _ = cl.Close(context.Background()) })

	return cl
}

func TestNewRecommender_FileSource(t *testing.T) {
	cfg := fileConfig(t)

	uc, err := NewRecommender(context.Background(), cfg, logger.NewNop(), newCloser(t), Options{Cache: true})
	require.NoError(t, err)

	info, err := uc.Info(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, info.Movies)
	assert.Equal(t, "file:"+cfg.Catalog.Path, info.Source)

	rec, err := uc.Recommend(context.Background(), usecase.NewRecommendReq("heist masters", 1))
	require.NoError(t, err)
	require.True(t, rec.Found)
	assert.Equal(t, "The Great Heist", rec.Items[0].Movie.Title)
}

func TestNewRecommender_RedisCache(t *testing.T) {
	mr := miniredis.RunT(t)

	cfg := fileConfig(t)
	cfg.Redis = &config.RedisCfg{Addr: mr.Addr(), DialTimeout: time.Second, Timeout: time.Second}

	uc, err := NewRecommender(context.Background(), cfg, logger.NewNop(), newCloser(t), Options{Cache: true})
	require.NoError(t, err)

	_, err = uc.Recommend(context.Background(), usecase.NewRecommendReq("romance blooms", 2))
	require.NoError(t, err)
	require.NoError(t, uc.Shutdown(context.Background()))

	assert.NotEmpty(t, mr.Keys())
}

func TestNewRecommender_RedisUnavailable(t *testing.T) {
	mr := miniredis.RunT(t)
	addr := mr.Addr()
	mr.Close()

	cfg := fileConfig(t)
	cfg.Redis = &config.RedisCfg{Addr: addr, DialTimeout: 200 * time.Millisecond, Timeout: 200 * time.Millisecond}

	_, err := NewRecommender(context.Background(), cfg, logger.NewNop(), newCloser(t), Options{Cache: true})
	require.Error(t, err)

	// без Redis в опциях конфигурация Redis игнорируется
	_, err = NewRecommender(context.Background(), cfg, logger.NewNop(), newCloser(t), Options{})
	require.NoError(t, err)
}

func TestNewRecommender_CatalogErrors(t *testing.T) {
	cfg := fileConfig(t)
	cfg.Catalog.Path = filepath.Join(t.TempDir(), "absent.csv")

	_, err := NewRecommender(context.Background(), cfg, logger.NewNop(), newCloser(t), Options{})
	require.ErrorIs(t, err, e.ErrCatalogUnreadable)

	cfg.Catalog.Source = "ftp"
	_, err = NewRecommender(context.Background(), cfg, logger.NewNop(), newCloser(t), Options{})
	require.ErrorIs(t, err, e.ErrUnknownSource)
}
