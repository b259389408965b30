package components_test

import (
	"math/rand"
	"testing"

	"github.com/simoninireland/cncp-playground/components"
)

// BenchmarkTracker_Occupy measures random edge occupation on 10k slots.
func BenchmarkTracker_Occupy(b *testing.B) {
	const n = 10000
	rng := rand.New(rand.NewSource(1))
	pairs := make([][2]int, 4*n)
	for i := range pairs {
		pairs[i] = [2]int{rng.Intn(n), rng.Intn(n)}
	}
	tr := components.NewTracker(n)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		tr.Reset()
		for _, p := range pairs {
			tr.Occupy(p[0], p[1])
		}
	}
}

// BenchmarkGenerationTracker_Occupy measures the same workload through generation scoping.
func BenchmarkGenerationTracker_Occupy(b *testing.B) {
	const n = 10000
	rng := rand.New(rand.NewSource(1))
	pairs := make([][2]int, 4*n)
	for i := range pairs {
		pairs[i] = [2]int{rng.Intn(n), rng.Intn(n)}
	}
	g := components.NewGenerationTracker(n)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		g.Reset()
		g.Enter()
		for _, p := range pairs {
			g.Occupy(p[0], p[1])
		}
		g.Leave()
	}
}
