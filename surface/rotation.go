package surface

import (
	"fmt"

	"github.com/katalvlaran/lvlsurf/halfedge"
	"github.com/katalvlaran/lvlsurf/perm"
)

// RotationGraph is a half-edge store plus an inv pairing column.
//
// σ lives in the store (one cycle per corolla, fixed by AddCorolla) and
// vertex ownership is indexed there for O(1) VertexOf and O(valence)
// HalfEdgesOf. α is derived from inv; ϕ is recomputed from σ and α on
// every query, never cached.
type RotationGraph struct {
	store *halfedge.Store
	inv   []int
	cfg   config
}

// NewRotationGraph returns an empty rotation graph.
// Complexity: O(len(opts)).
func NewRotationGraph(opts ...Option) *RotationGraph {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	return &RotationGraph{store: halfedge.NewStore(), inv: make([]int, 0), cfg: cfg}
}

// AddCorolla creates one vertex with valence half-edges (phase one of
// construction). The fresh half-edges start unpaired.
// Returns halfedge.ErrBadValence for valence < 1.
// Complexity: O(valence).
func (g *RotationGraph) AddCorolla(valence int) ([]int, error) {
	ids, err := g.store.AddCorolla(valence)
	if err != nil {
		return nil, fmt.Errorf("AddCorolla(%d): %w", valence, err)
	}
	for range ids {
		g.inv = append(g.inv, unpaired)
	}

	return ids, nil
}

// PairHalfEdges records the symmetric pairing α(h)=k, α(k)=h (phase two).
// Pairing h with itself is permitted and leaves h a fixed point of α (a
// free half-edge); an identical re-pairing is a no-op.
// Returns halfedge.ErrIndexOutOfRange for unknown half-edges and
// ErrAlreadyPaired when either slot is taken by a different partner;
// nothing is committed on failure.
// Complexity: O(1).
func (g *RotationGraph) PairHalfEdges(h, k int) error {
	n := g.store.NumHalfEdges()
	if h < 0 || h >= n || k < 0 || k >= n {
		return fmt.Errorf("PairHalfEdges(%d,%d): %w", h, k, halfedge.ErrIndexOutOfRange)
	}
	if err := pairInto(g.inv, h, k); err != nil {
		return fmt.Errorf("PairHalfEdges(%d,%d): %w", h, k, err)
	}

	return nil
}

// IsComplete reports whether every half-edge has been paired, i.e. α is
// fully defined. Complexity: O(n).
func (g *RotationGraph) IsComplete() bool {
	for _, k := range g.inv {
		if k == unpaired {
			return false
		}
	}

	return true
}

// NumHalfEdges returns the total half-edge count. Complexity: O(1).
func (g *RotationGraph) NumHalfEdges() int { return g.store.NumHalfEdges() }

// NumVertices returns the vertex count. Complexity: O(1).
func (g *RotationGraph) NumVertices() int { return g.store.NumVertices() }

// VertexOf returns the owning vertex of half-edge h via the store index.
// Complexity: O(1).
func (g *RotationGraph) VertexOf(h int) (int, error) { return g.store.VertexOf(h) }

// HalfEdgesOf returns the corolla of vertex v in rotation order.
// Complexity: O(valence of v).
func (g *RotationGraph) HalfEdgesOf(v int) ([]int, error) { return g.store.HalfEdgesOf(v) }

// Sigma returns a copy of σ. Complexity: O(n).
func (g *RotationGraph) Sigma() perm.Perm { return g.store.Rotation() }

// Alpha returns α as derived from the pairing column.
// Returns ErrIncompleteStructure while any half-edge is unpaired.
// Complexity: O(n).
func (g *RotationGraph) Alpha() (perm.Perm, error) {
	a, err := completeAlpha(g.inv)
	if err != nil {
		return nil, fmt.Errorf("Alpha: %w", err)
	}

	return a, nil
}

// Phi derives ϕ = sortperm(σ∘α) from the current σ and α. It is
// recomputed on every call; rotation structures never cache ϕ.
// Returns ErrIncompleteStructure while any half-edge is unpaired.
// Complexity: O(n).
func (g *RotationGraph) Phi() (perm.Perm, error) {
	a, err := g.Alpha()
	if err != nil {
		return nil, err
	}

	return derivePhi(g.Sigma(), a)
}

// Clone returns a deep copy sharing no state with the original.
// Complexity: O(V + H).
func (g *RotationGraph) Clone() *RotationGraph {
	inv := make([]int, len(g.inv))
	copy(inv, g.inv)

	return &RotationGraph{store: g.store.Clone(), inv: inv, cfg: g.cfg}
}

// RotationSystem stores σ and α directly and owns no vertex column:
// vertex identity is recovered from the cycles of σ. It shares the
// two-phase construction discipline of RotationGraph.
type RotationSystem struct {
	sigma perm.Perm
	alpha []int
	cfg   config
}

// NewRotationSystem returns an empty rotation system.
// Complexity: O(len(opts)).
func NewRotationSystem(opts ...Option) *RotationSystem {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	return &RotationSystem{sigma: make(perm.Perm, 0), alpha: make([]int, 0), cfg: cfg}
}

// AddCorolla appends one σ-cycle of the given valence (a new implicit
// vertex) and returns the fresh half-edge indices in rotation order.
// Returns halfedge.ErrBadValence for valence < 1.
// Complexity: O(valence).
func (s *RotationSystem) AddCorolla(valence int) ([]int, error) {
	if valence < 1 {
		return nil, fmt.Errorf("AddCorolla(%d): %w", valence, halfedge.ErrBadValence)
	}
	base := len(s.sigma)
	ids := make([]int, valence)
	for i := 0; i < valence; i++ {
		ids[i] = base + i
		s.sigma = append(s.sigma, base+(i+1)%valence)
		s.alpha = append(s.alpha, unpaired)
	}

	return ids, nil
}

// PairHalfEdges records the symmetric pairing α(h)=k, α(k)=h.
// Same contract as RotationGraph.PairHalfEdges.
// Complexity: O(1).
func (s *RotationSystem) PairHalfEdges(h, k int) error {
	n := len(s.sigma)
	if h < 0 || h >= n || k < 0 || k >= n {
		return fmt.Errorf("PairHalfEdges(%d,%d): %w", h, k, halfedge.ErrIndexOutOfRange)
	}
	if err := pairInto(s.alpha, h, k); err != nil {
		return fmt.Errorf("PairHalfEdges(%d,%d): %w", h, k, err)
	}

	return nil
}

// IsComplete reports whether α is fully defined. Complexity: O(n).
func (s *RotationSystem) IsComplete() bool {
	for _, k := range s.alpha {
		if k == unpaired {
			return false
		}
	}

	return true
}

// NumHalfEdges returns the total half-edge count. Complexity: O(1).
func (s *RotationSystem) NumHalfEdges() int { return len(s.sigma) }

// NumVertices returns the vertex count, recovered as the number of
// σ-cycles. Complexity: O(n).
func (s *RotationSystem) NumVertices() int {
	cycles, err := perm.Cycles(s.sigma)
	if err != nil {
		// σ is maintained as a permutation by construction.
		return 0
	}

	return len(cycles)
}

// Sigma returns a copy of σ. Complexity: O(n).
func (s *RotationSystem) Sigma() perm.Perm { return s.sigma.Clone() }

// Alpha returns α. Returns ErrIncompleteStructure while any half-edge is
// unpaired. Complexity: O(n).
func (s *RotationSystem) Alpha() (perm.Perm, error) {
	a, err := completeAlpha(s.alpha)
	if err != nil {
		return nil, fmt.Errorf("Alpha: %w", err)
	}

	return a, nil
}

// Phi derives ϕ = sortperm(σ∘α); never cached.
// Returns ErrIncompleteStructure while any half-edge is unpaired.
// Complexity: O(n).
func (s *RotationSystem) Phi() (perm.Perm, error) {
	a, err := s.Alpha()
	if err != nil {
		return nil, err
	}

	return derivePhi(s.Sigma(), a)
}

// Clone returns a deep copy sharing no state with the original.
// Complexity: O(n).
func (s *RotationSystem) Clone() *RotationSystem {
	alpha := make([]int, len(s.alpha))
	copy(alpha, s.alpha)

	return &RotationSystem{sigma: s.sigma.Clone(), alpha: alpha, cfg: s.cfg}
}
