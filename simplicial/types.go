// Package simplicial defines the Complex type and its sentinel errors.
// See doc.go for the package overview.
package simplicial

import (
	"errors"

	"github.com/emirpasic/gods/maps/treemap"
)

// Sentinel errors for complex operations.
var (
	// ErrIndexOutOfRange indicates a vertex, edge or triangle index outside
	// the current table bounds.
	ErrIndexOutOfRange = errors.New("simplicial: index out of range")

	// ErrDegenerateSimplex indicates a simplex with a repeated vertex
	// (a self-loop edge or a collapsed triangle).
	ErrDegenerateSimplex = errors.New("simplicial: degenerate simplex")

	// ErrUnsortedSimplex indicates GlueSortedTriangle input that is not
	// strictly ascending.
	ErrUnsortedSimplex = errors.New("simplicial: vertices not strictly ascending")

	// ErrLengthMismatch indicates bulk endpoint slices of different lengths.
	ErrLengthMismatch = errors.New("simplicial: endpoint slices differ in length")

	// ErrBadDimension indicates a boundary-operator dimension this complex
	// does not store (only 1 and 2 exist).
	ErrBadDimension = errors.New("simplicial: unsupported boundary dimension")

	// ErrBadGeometry indicates a coordinate slice whose length differs from
	// the vertex count.
	ErrBadGeometry = errors.New("simplicial: coordinate count does not match vertex count")
)

// pairKey is the canonical registry key for an edge: its sorted endpoints.
type pairKey [2]int

// comparePairs orders pairKeys lexicographically for the ordered registry.
func comparePairs(a, b interface{}) int {
	x, y := a.(pairKey), b.(pairKey)
	if x[0] != y[0] {
		return x[0] - y[0]
	}

	return x[1] - y[1]
}

// Complex is a semi-simplicial complex of dimension ≤ 2.
//
// edges[e] is the sorted boundary pair (∂₁ storage); triEdges[t][i] is
// ∂₂(t,i), the boundary edge excluding the triangle's i-th vertex;
// triVerts[t] is the sorted vertex triple. edgeIndex maps a sorted pair
// to the first edge carrying it, kept in ascending key order so EdgeSet
// and GlueTriangle reuse need no scanning. Not safe for concurrent
// mutation; Clone first for read-parallel work.
type Complex struct {
	nv       int
	edges    [][2]int
	triEdges [][3]int
	triVerts [][3]int

	edgeIndex *treemap.Map
}

// NewComplex returns an empty complex. Complexity: O(1).
func NewComplex() *Complex {
	return &Complex{
		edges:     make([][2]int, 0),
		triEdges:  make([][3]int, 0),
		triVerts:  make([][3]int, 0),
		edgeIndex: treemap.NewWith(comparePairs),
	}
}
