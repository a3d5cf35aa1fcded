package jitter

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBackoff_NextStaysInBounds(t *testing.T) {
	b := NewBackoffWithRand(100*time.Millisecond, time.Second, DefaultJitter, rand.New(rand.NewSource(1)))

	cases := []struct {
		attempt int
		base    time.Duration
	}{
		{0, 100 * time.Millisecond},
		{1, 200 * time.Millisecond},
		{3, 800 * time.Millisecond},
		{4, time.Second},
		{10, time.Second},
	}

	for _, tc := range cases {
		got := b.Next(tc.attempt)
		assert.GreaterOrEqual(t, got, tc.base, "attempt %d", tc.attempt)
		assert.LessOrEqual(t, got, tc.base+tc.base/2, "attempt %d", tc.attempt)
	}
}

func TestBackoff_ZeroFactorIsExact(t *testing.T) {
	b := NewBackoff(time.Second, 10*time.Second, 0)
	assert.Equal(t, 4*time.Second, b.Next(2))
}
