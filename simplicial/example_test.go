package simplicial_test

import (
	"fmt"

	"github.com/katalvlaran/lvlsurf/simplicial"
)

// ExampleComplex_GlueTriangle triangulates a square and inspects it.
func ExampleComplex_GlueTriangle() {
	c := simplicial.NewComplex()
	c.AddVertices(4)
	c.GlueTriangle(0, 1, 2)
	c.GlueTriangle(0, 3, 2)

	fmt.Println("triangles:", c.NumTriangles())
	fmt.Println("edges:", c.NumEdges())
	fmt.Println("edge set:", c.EdgeSet())
	fmt.Println("semi-simplicial:", c.IsSemiSimplicial(2))
	// Output:
	// triangles: 2
	// edges: 5
	// edge set: [[0 1] [0 2] [0 3] [1 2] [2 3]]
	// semi-simplicial: true
}
