package surface_test

import (
	"testing"

	"github.com/katalvlaran/lvlsurf/surface"
)

// buildLargeRing pairs n valence-2 corollas into one big cycle.
func buildLargeRing(b *testing.B, n int) *surface.RotationGraph {
	b.Helper()
	g := surface.NewRotationGraph()
	for i := 0; i < n; i++ {
		if _, err := g.AddCorolla(2); err != nil {
			b.Fatal(err)
		}
	}
	for i := 0; i < n; i++ {
		if err := g.PairHalfEdges(2*i+1, (2*i+2)%(2*n)); err != nil {
			b.Fatal(err)
		}
	}

	return g
}

func BenchmarkTraceFaces_Ring1k(b *testing.B) {
	g := buildLargeRing(b, 1_000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := surface.TraceFaces(g); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkEulerCharacteristic_Ring1k(b *testing.B) {
	g := buildLargeRing(b, 1_000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := surface.EulerCharacteristic(g); err != nil {
			b.Fatal(err)
		}
	}
}
