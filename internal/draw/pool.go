// Package draw implements the shuffled-without-replacement number pool that
// feeds a bingo game: numbers 1-75, each drawn exactly once, reproducible
// from a seed.
package draw

import (
	"errors"
	rand "math/rand/v2"

	"github.com/lox/minibingo/internal/randutil"
)

// PoolSize is the count of callable numbers in 75-ball bingo.
const PoolSize = 75

// ErrExhausted is returned by Draw once all numbers have been called.
var ErrExhausted = errors.New("draw pool exhausted")

// Pool is a no-repeat source of the numbers 1..PoolSize. Across one
// lifetime the union of remaining and drawn numbers is always exactly
// {1..75} with no overlap.
type Pool struct {
	seed int64
	src  *rand.PCG
	rng  *rand.Rand

	remaining []int
	history   []int
	drawn     [PoolSize + 1]bool
}

// New creates a pool whose draw sequence is fully determined by seed.
func New(seed int64) *Pool {
	p := &Pool{}
	p.reseed(seed)
	return p
}

// NewRandom creates a pool with a fresh nondeterministic seed. The seed is
// retained so Reset can replay the same sequence.
func NewRandom() *Pool {
	return New(randutil.RandomSeed())
}

func (p *Pool) reseed(seed int64) {
	p.seed = seed
	p.src = randutil.NewPCG(seed)
	p.rng = rand.New(p.src)
	p.refill()
}

func (p *Pool) refill() {
	p.remaining = make([]int, PoolSize)
	for i := range p.remaining {
		p.remaining[i] = i + 1
	}
	p.history = p.history[:0]
	p.drawn = [PoolSize + 1]bool{}
}

// Draw removes and returns one uniformly random remaining number, appending
// it to the history. It fails with ErrExhausted once the pool is empty.
func (p *Pool) Draw() (int, error) {
	if len(p.remaining) == 0 {
		return 0, ErrExhausted
	}
	idx := p.rng.IntN(len(p.remaining))
	n := p.remaining[idx]
	p.remaining[idx] = p.remaining[len(p.remaining)-1]
	p.remaining = p.remaining[:len(p.remaining)-1]
	p.history = append(p.history, n)
	p.drawn[n] = true
	return n, nil
}

// Peek returns the number the next Draw would yield without mutating any
// state, or ok=false if the pool is empty. It draws the index from a fork of
// the live source so the live sequence is not consumed.
func (p *Pool) Peek() (n int, ok bool) {
	if len(p.remaining) == 0 {
		return 0, false
	}
	fork := rand.New(randutil.Fork(p.src))
	return p.remaining[fork.IntN(len(p.remaining))], true
}

// Remaining returns how many numbers are still in the pool.
func (p *Pool) Remaining() int {
	return len(p.remaining)
}

// IsEmpty reports whether every number has been drawn.
func (p *Pool) IsEmpty() bool {
	return len(p.remaining) == 0
}

// History returns the drawn numbers in draw order. The slice is a copy.
func (p *Pool) History() []int {
	out := make([]int, len(p.history))
	copy(out, p.history)
	return out
}

// HasDrawn reports whether n has been drawn from this pool.
func (p *Pool) HasDrawn(n int) bool {
	if n < 1 || n > PoolSize {
		return false
	}
	return p.drawn[n]
}

// Seed returns the seed governing this pool's sequence.
func (p *Pool) Seed() int64 {
	return p.seed
}

// Reset refills the pool and clears the history, restarting the existing
// seed's sequence from the beginning.
func (p *Pool) Reset() {
	p.reseed(p.seed)
}

// ResetSeed refills the pool and clears the history under a new seed.
func (p *Pool) ResetSeed(seed int64) {
	p.reseed(seed)
}
