package rng

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUniformGenerator_Draw(t *testing.T) {
	t.Run("should stay inside the closed interval", func(t *testing.T) {
		g := NewUniformGenerator()

		for i := 0; i < 10000; i++ {
			v := g.Draw(0, 9)
			assert.GreaterOrEqual(t, v, 0)
			assert.LessOrEqual(t, v, 9)
		}
	})

	t.Run("should handle a single-value range", func(t *testing.T) {
		g := NewUniformGenerator()

		for i := 0; i < 100; i++ {
			assert.Equal(t, 7, g.Draw(7, 7))
		}
	})

	t.Run("should panic on inverted range", func(t *testing.T) {
		g := NewUniformGenerator()

		assert.Panics(t, func() {
			g.Draw(5, 4)
		})
	})

	t.Run("should draw roughly uniformly over ten digits", func(t *testing.T) {
		g := NewUniformGenerator()

		const draws = 100000
		counts := make([]int, 10)
		for i := 0; i < draws; i++ {
			counts[g.Draw(0, 9)]++
		}

		// Chi-square against the uniform expectation. With 9 degrees of
		// freedom the 99.9% quantile is 27.88, so a fair source fails
		// this roughly once in a thousand runs.
		expected := float64(draws) / 10
		var chiSquare float64
		for _, c := range counts {
			diff := float64(c) - expected
			chiSquare += diff * diff / expected
		}
		assert.Less(t, chiSquare, 27.88, "draw distribution deviates from uniform: %v", counts)
	})
}

func TestSequenceGenerator_Draw(t *testing.T) {
	t.Run("should replay values in order and cycle", func(t *testing.T) {
		g := NewSequenceGenerator(5, 3, 9)

		got := []int{
			g.Draw(0, 9), g.Draw(0, 9), g.Draw(0, 9),
			g.Draw(0, 9), g.Draw(0, 9),
		}

		assert.Equal(t, []int{5, 3, 9, 5, 3}, got)
	})

	t.Run("should panic without values", func(t *testing.T) {
		assert.Panics(t, func() {
			NewSequenceGenerator()
		})
	})

	t.Run("should panic on value outside draw range", func(t *testing.T) {
		g := NewSequenceGenerator(42)

		assert.Panics(t, func() {
			g.Draw(0, 9)
		})
	})

	t.Run("should panic on inverted range", func(t *testing.T) {
		g := NewSequenceGenerator(5)

		assert.Panics(t, func() {
			g.Draw(9, 0)
		})
	})
}
