package simplicial_test

import (
	"testing"

	"github.com/katalvlaran/lvlsurf/simplicial"
)

// buildStrip glues a triangle strip of n triangles over n+2 vertices.
func buildStrip(b *testing.B, n int) *simplicial.Complex {
	b.Helper()
	c := simplicial.NewComplex()
	c.AddVertices(n + 2)
	for i := 0; i < n; i++ {
		if _, err := c.GlueTriangle(i, i+1, i+2); err != nil {
			b.Fatal(err)
		}
	}

	return c
}

func BenchmarkGlueTriangle_Strip1k(b *testing.B) {
	for i := 0; i < b.N; i++ {
		buildStrip(b, 1_000)
	}
}

func BenchmarkIsSemiSimplicial_Strip1k(b *testing.B) {
	c := buildStrip(b, 1_000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if !c.IsSemiSimplicial(2) {
			b.Fatal("strip must satisfy the identity")
		}
	}
}
