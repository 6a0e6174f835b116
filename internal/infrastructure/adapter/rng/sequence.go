package rng

import (
	"fmt"
	"sync"

	"luckyten/internal/domain/port/core"
)

// SequenceGenerator replays a fixed sequence of outcomes, cycling when the
// sequence is exhausted. Used wherever a deterministic draw is needed, such
// as forcing a win or a loss in tests.
type SequenceGenerator struct {
	mu     sync.Mutex
	values []int
	next   int
}

// NewSequenceGenerator creates a generator that yields the given values in
// order, then repeats
func NewSequenceGenerator(values ...int) core.OutcomeGenerator {
	if len(values) == 0 {
		panic("rng: sequence generator needs at least one value")
	}
	return &SequenceGenerator{values: values}
}

// Draw returns the next value of the sequence, clamped to the contract
// check: a sequence value outside [low, high] is a programming error
func (g *SequenceGenerator) Draw(low, high int) int {
	if low > high {
		panic(fmt.Sprintf("rng: invalid draw range [%d, %d]", low, high))
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	v := g.values[g.next]
	g.next = (g.next + 1) % len(g.values)

	if v < low || v > high {
		panic(fmt.Sprintf("rng: sequence value %d outside draw range [%d, %d]", v, low, high))
	}
	return v
}
