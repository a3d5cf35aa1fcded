package cfg

import (
	"testing"
	"time"

	"github.com/DRSN-tech/movie-recommender/pkg/e"
	"github.com/DRSN-tech/movie-recommender/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("CATALOG_SOURCE", "")
	t.Setenv("REDIS_ADDR", "")
	t.Setenv("KAFKA_BROKERS", "")
	t.Setenv("HTTP_PORT", "")
	t.Setenv("MAX_FEATURES", "")

	config, err := Load(logger.NewNop())
	require.NoError(t, err)

	assert.Equal(t, SourceFile, config.Catalog.Source)
	assert.Equal(t, "data/movies.csv", config.Catalog.Path)
	assert.Equal(t, 5000, config.Engine.MaxFeatures)
	assert.Equal(t, "8080", config.Http.Port)
	assert.Equal(t, 10*time.Minute, config.Cache.TTL)
	assert.Nil(t, config.Redis)
	assert.Nil(t, config.Kafka)
	assert.Nil(t, config.Db)
	assert.Nil(t, config.Minio)
}

func TestLoad_OptionalIntegrations(t *testing.T) {
	t.Setenv("CATALOG_SOURCE", "minio")
	t.Setenv("CATALOG_BUCKET", "catalogs")
	t.Setenv("REDIS_ADDR", "redis:6379")
	t.Setenv("READ_TIMEOUT", "1s")
	t.Setenv("WRITE_TIMEOUT", "4s")
	t.Setenv("KAFKA_BROKERS", "kafka-1:9092, kafka-2:9092")

	config, err := Load(logger.NewNop())
	require.NoError(t, err)

	require.NotNil(t, config.Minio)
	assert.Equal(t, "catalogs", config.Minio.BucketName)
	assert.Equal(t, "movies.csv", config.Minio.ObjectKey)

	require.NotNil(t, config.Redis)
	assert.Equal(t, 4*time.Second, config.Redis.Timeout)

	require.NotNil(t, config.Kafka)
	assert.Equal(t, []string{"kafka-1:9092", "kafka-2:9092"}, config.Kafka.Brokers)
	assert.Equal(t, "recommender-events", config.Kafka.Topic)
}

func TestLoad_Errors(t *testing.T) {
	t.Run("unknown source", func(t *testing.T) {
		t.Setenv("CATALOG_SOURCE", "ftp")
		_, err := Load(logger.NewNop())
		require.ErrorIs(t, err, e.ErrUnknownSource)
	})

	t.Run("postgres without credentials", func(t *testing.T) {
		t.Setenv("CATALOG_SOURCE", "postgres")
		t.Setenv("POSTGRES_USER", "")
		_, err := Load(logger.NewNop())
		require.Error(t, err)
	})

	t.Run("non-positive max features", func(t *testing.T) {
		t.Setenv("CATALOG_SOURCE", "file")
		t.Setenv("MAX_FEATURES", "0")
		_, err := Load(logger.NewNop())
		require.ErrorIs(t, err, e.ErrIncorrectEnvVariable)
	})
}
