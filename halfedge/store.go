// Package halfedge defines the Store type and its sentinel errors.
// See doc.go for the package overview.
package halfedge

import (
	"errors"

	"github.com/katalvlaran/lvlsurf/perm"
)

// Sentinel errors for half-edge store operations.
var (
	// ErrIndexOutOfRange indicates a vertex or half-edge index outside the
	// current table bounds.
	ErrIndexOutOfRange = errors.New("halfedge: index out of range")

	// ErrBadValence indicates a corolla valence below one.
	ErrBadValence = errors.New("halfedge: corolla valence must be at least 1")
)

// Store is the mutable half-edge table.
//
// vertex[h] is the owning vertex of half-edge h (the incidence column);
// corollas[v] lists the half-edges of vertex v in rotation order (the
// inverted index over the column); rot is σ, the rotation permutation,
// one cycle per corolla. The three views are kept consistent by every
// mutation. Store is append-only and not safe for concurrent mutation;
// callers needing parallel reads should Clone first.
type Store struct {
	vertex   []int
	corollas [][]int
	rot      perm.Perm
}

// NewStore returns an empty half-edge store. Complexity: O(1).
func NewStore() *Store {
	return &Store{
		vertex:   make([]int, 0),
		corollas: make([][]int, 0),
		rot:      make(perm.Perm, 0),
	}
}

// AddVertex appends one vertex with an empty corolla and returns its index.
// Complexity: amortized O(1).
func (s *Store) AddVertex() int {
	s.corollas = append(s.corollas, nil)

	return len(s.corollas) - 1
}

// AddVertices appends n vertices and returns their indices in order.
// For n ≤ 0 it returns nil and changes nothing.
// Complexity: O(n).
func (s *Store) AddVertices(n int) []int {
	if n <= 0 {
		return nil
	}
	ids := make([]int, n)
	for i := range ids {
		ids[i] = s.AddVertex()
	}

	return ids
}

// AddCorolla creates one new vertex and valence new half-edges owned by
// it, returning the fresh half-edge indices in rotation order. σ restricted
// to the new half-edges is initialized as the single cycle h₀→h₁→…→h₀ in
// index order. Returns ErrBadValence for valence < 1; nothing is committed
// on failure.
// Complexity: O(valence).
func (s *Store) AddCorolla(valence int) ([]int, error) {
	// 1. Validate before any write.
	if valence < 1 {
		return nil, ErrBadValence
	}

	// 2. New vertex owning the corolla.
	v := s.AddVertex()

	// 3. Append half-edges: incidence column, corolla list, rotation cycle.
	base := len(s.vertex)
	ids := make([]int, valence)
	for i := 0; i < valence; i++ {
		h := base + i
		ids[i] = h
		s.vertex = append(s.vertex, v)
		s.rot = append(s.rot, base+(i+1)%valence)
	}
	s.corollas[v] = ids

	return ids, nil
}

// VertexOf returns the owning vertex of half-edge h.
// Returns ErrIndexOutOfRange for an unknown half-edge.
// Complexity: O(1).
func (s *Store) VertexOf(h int) (int, error) {
	if h < 0 || h >= len(s.vertex) {
		return 0, ErrIndexOutOfRange
	}

	return s.vertex[h], nil
}

// HalfEdgesOf returns a copy of the corolla of vertex v in rotation order.
// Returns ErrIndexOutOfRange for an unknown vertex.
// Complexity: O(valence of v).
func (s *Store) HalfEdgesOf(v int) ([]int, error) {
	if v < 0 || v >= len(s.corollas) {
		return nil, ErrIndexOutOfRange
	}
	out := make([]int, len(s.corollas[v]))
	copy(out, s.corollas[v])

	return out, nil
}

// Valence returns the number of half-edges owned by vertex v.
// Returns ErrIndexOutOfRange for an unknown vertex.
// Complexity: O(1).
func (s *Store) Valence(v int) (int, error) {
	if v < 0 || v >= len(s.corollas) {
		return 0, ErrIndexOutOfRange
	}

	return len(s.corollas[v]), nil
}

// NumVertices returns the current vertex count. Complexity: O(1).
func (s *Store) NumVertices() int { return len(s.corollas) }

// NumHalfEdges returns the current half-edge count. Complexity: O(1).
func (s *Store) NumHalfEdges() int { return len(s.vertex) }

// Rotation returns a copy of σ, the rotation permutation over all
// half-edges (one cycle per corolla).
// Complexity: O(n).
func (s *Store) Rotation() perm.Perm { return s.rot.Clone() }

// Clone returns a deep copy of the store, independent of the original.
// Complexity: O(V + H).
func (s *Store) Clone() *Store {
	out := &Store{
		vertex:   make([]int, len(s.vertex)),
		corollas: make([][]int, len(s.corollas)),
		rot:      s.rot.Clone(),
	}
	copy(out.vertex, s.vertex)
	for v, c := range s.corollas {
		if c == nil {
			continue
		}
		out.corollas[v] = make([]int, len(c))
		copy(out.corollas[v], c)
	}

	return out
}
