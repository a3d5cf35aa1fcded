// Package jitter рассчитывает интервалы повторов с экспоненциальным ростом и случайной добавкой,
// чтобы повторные запросы к хранилищам не приходили одновременно.
package jitter

import (
	"math/rand"
	"sync"
	"time"
)

// DefaultJitter - стандартный коэффициент джиттера (50%)
const DefaultJitter = 0.5

// Backoff считает задержку перед очередной попыткой.
type Backoff struct {
	Base   time.Duration // задержка перед первым повтором
	Max    time.Duration // верхняя граница задержки без учёта джиттера
	Factor float64       // доля случайной добавки, 0.5 означает до +50%

	mu  sync.Mutex
	rng *rand.Rand
}

// NewBackoff создаёт Backoff со случайным генератором от текущего времени.
func NewBackoff(base, max time.Duration, factor float64) *Backoff {
	return NewBackoffWithRand(base, max, factor, rand.New(rand.NewSource(time.Now().UnixNano())))
}

// NewBackoffWithRand создаёт Backoff с заданным генератором. Полезно в тестах.
func NewBackoffWithRand(base, max time.Duration, factor float64, rng *rand.Rand) *Backoff {
	return &Backoff{Base: base, Max: max, Factor: factor, rng: rng}
}

// Next возвращает задержку для попытки attempt (нумерация с нуля).
// Результат лежит в диапазоне [d, d*(1+Factor)], где d = min(Base*2^attempt, Max).
func (b *Backoff) Next(attempt int) time.Duration {
	d := b.Base
	for i := 0; i < attempt; i++ {
		d *= 2
		if d >= b.Max {
			d = b.Max
			break
		}
	}

	b.mu.Lock()
	extra := b.rng.Float64() * b.Factor * float64(d)
	b.mu.Unlock()

	return d + time.Duration(extra)
}
