package kafka

import (
	"testing"
	"time"

	"github.com/DRSN-tech/movie-recommender/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeEvent(t *testing.T) {
	event := domain.NewEvent(domain.EventRecommendationServed, map[string]any{
		"query":   "heist",
		"n":       5,
		"results": int64(3),
	})

	data, err := EncodeEvent(event)
	require.NoError(t, err)

	decoded, err := DecodeEvent(data)
	require.NoError(t, err)

	assert.Equal(t, event.ID, decoded.ID)
	assert.Equal(t, domain.EventRecommendationServed, decoded.Type)
	assert.True(t, event.OccurredAt.Equal(decoded.OccurredAt))
	assert.Equal(t, map[string]any{
		"query":   "heist",
		"n":       5.0,
		"results": 3.0,
	}, decoded.Attributes)
}

func TestEncodeEvent_UnsupportedAttribute(t *testing.T) {
	event := domain.NewEvent(domain.EventCatalogIndexed, map[string]any{
		"built_at": time.Now(),
	})

	_, err := EncodeEvent(event)
	assert.Error(t, err)
}

func TestDecodeEvent_Garbage(t *testing.T) {
	_, err := DecodeEvent([]byte{0xff, 0xff, 0xff})
	assert.Error(t, err)
}
