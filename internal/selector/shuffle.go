// Package selector picks balanced question sets and randomizes their order.
package selector

import (
	"math/rand/v2"
	"sync"
)

// Rand is the random source the selector draws from.
type Rand interface {
	IntN(n int) int
}

type globalRand struct{}

func (globalRand) IntN(n int) int { return rand.IntN(n) }

// lockedRand makes a seeded *rand.Rand safe to share between attempts.
type lockedRand struct {
	mu  sync.Mutex
	rng *rand.Rand
}

func (l *lockedRand) IntN(n int) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.rng.IntN(n)
}

// NewSeededRand returns a deterministic, goroutine-safe source.
func NewSeededRand(seed uint64) Rand {
	return &lockedRand{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// Shuffle returns a uniformly shuffled copy of seq. seq is left untouched.
func Shuffle[T any](seq []T) []T {
	return ShuffleWith(globalRand{}, seq)
}

// ShuffleWith is Shuffle with an explicit random source. It walks from the last
// index down, swapping each position with a uniformly chosen j in [0, i].
func ShuffleWith[T any](r Rand, seq []T) []T {
	out := make([]T, len(seq))
	copy(out, seq)
	for i := len(out) - 1; i > 0; i-- {
		j := r.IntN(i + 1)
		out[i], out[j] = out[j], out[i]
	}
	return out
}
