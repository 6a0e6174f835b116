package rng

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"luckyten/internal/domain/port/core"
)

// UniformGenerator implements the OutcomeGenerator port with a seeded
// pseudo-random source. The source is an owned instance, never the
// package-global one, so substituting a deterministic generator in tests
// requires no process-wide state.
type UniformGenerator struct {
	mu  sync.Mutex
	src *rand.Rand
}

// NewUniformGenerator creates a generator seeded from the operating
// system's entropy source, falling back to the wall clock if that fails
func NewUniformGenerator() core.OutcomeGenerator {
	var seed int64
	if err := binary.Read(crand.Reader, binary.BigEndian, &seed); err != nil {
		seed = time.Now().UnixNano()
	}
	return &UniformGenerator{
		src: rand.New(rand.NewSource(seed)),
	}
}

// Draw returns an integer uniformly distributed over [low, high]
func (g *UniformGenerator) Draw(low, high int) int {
	if low > high {
		panic(fmt.Sprintf("rng: invalid draw range [%d, %d]", low, high))
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	return low + g.src.Intn(high-low+1)
}
