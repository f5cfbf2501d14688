package surface

import (
	"fmt"

	"github.com/katalvlaran/lvlsurf/perm"
)

// Hypermap stores σ, α, ϕ as three independent generators. α is an
// arbitrary permutation here — edges traced from a hypermap are the
// cycles of α, of whatever length. No warning is raised for non-pair
// cycles; callers wanting the stricter pairing law should build a
// CombinatorialMap or test perm.IsInvolution themselves.
type Hypermap struct {
	sigma, alpha, phi perm.Perm
	cfg               config
}

// NewHypermap builds a hypermap from three generator permutations. The
// generators are copied; the caller keeps ownership of its slices.
// Returns ErrGeneratorMismatch for unequal lengths,
// perm.ErrNotPermutation for a non-bijective generator, and — when
// WithAxiomChecks is set — ErrAxiomViolation if σ∘α∘ϕ ≠ id.
// Complexity: O(n).
func NewHypermap(sigma, alpha, phi perm.Perm, opts ...Option) (*Hypermap, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 1. All three generators must act on the same index range.
	if len(sigma) != len(alpha) || len(sigma) != len(phi) {
		return nil, fmt.Errorf("NewHypermap: %w", ErrGeneratorMismatch)
	}

	// 2. Each generator must be a bijection.
	for _, p := range []perm.Perm{sigma, alpha, phi} {
		if !perm.IsPermutation(p) {
			return nil, fmt.Errorf("NewHypermap: %w", perm.ErrNotPermutation)
		}
	}

	m := &Hypermap{sigma: sigma.Clone(), alpha: alpha.Clone(), phi: phi.Clone(), cfg: cfg}

	// 3. Opt-in composition axiom check (O(n), hence not implicit).
	if cfg.axiomChecks {
		if err := m.Validate(); err != nil {
			return nil, err
		}
	}

	return m, nil
}

// NumHalfEdges returns the generator length. Complexity: O(1).
func (m *Hypermap) NumHalfEdges() int { return len(m.sigma) }

// Sigma returns a copy of the stored σ. Complexity: O(n).
func (m *Hypermap) Sigma() perm.Perm { return m.sigma.Clone() }

// Alpha returns a copy of the stored α; stored generators are always
// complete, so the error is always nil. Complexity: O(n).
func (m *Hypermap) Alpha() (perm.Perm, error) { return m.alpha.Clone(), nil }

// Phi returns a copy of the stored ϕ — for hypermaps ϕ is a generator,
// not a derived value. Complexity: O(n).
func (m *Hypermap) Phi() (perm.Perm, error) { return m.phi.Clone(), nil }

// Validate verifies the composition axiom σ(α(ϕ(h))) = h for every
// half-edge h, reporting ErrAxiomViolation with the first offending index.
// Complexity: O(n).
func (m *Hypermap) Validate() error {
	for h := range m.phi {
		if m.sigma[m.alpha[m.phi[h]]] != h {
			return fmt.Errorf("Validate: half-edge %d: %w", h, ErrAxiomViolation)
		}
	}

	return nil
}

// CombinatorialMap is a hypermap whose α is an involution: every edge is
// an unordered pair of opposite half-edges (fixed points of α are free
// half-edges on the boundary).
type CombinatorialMap struct {
	Hypermap
}

// NewCombinatorialMap builds a combinatorial map from three generators.
// Beyond the Hypermap contract it always enforces the involution law,
// returning ErrNotInvolution when α∘α ≠ id — the check is what separates
// the two kinds, so it is not gated behind WithAxiomChecks.
// Complexity: O(n).
func NewCombinatorialMap(sigma, alpha, phi perm.Perm, opts ...Option) (*CombinatorialMap, error) {
	hm, err := NewHypermap(sigma, alpha, phi, opts...)
	if err != nil {
		return nil, err
	}
	if !perm.IsInvolution(hm.alpha) {
		return nil, fmt.Errorf("NewCombinatorialMap: %w", ErrNotInvolution)
	}

	return &CombinatorialMap{Hypermap: *hm}, nil
}

// Validate verifies both map axioms: σ∘α∘ϕ = id and α∘α = id.
// Complexity: O(n).
func (m *CombinatorialMap) Validate() error {
	if !perm.IsInvolution(m.alpha) {
		return fmt.Errorf("Validate: %w", ErrNotInvolution)
	}

	return m.Hypermap.Validate()
}

// FromRotationSystem freezes a fully-paired rotation structure into a
// combinatorial map, deriving ϕ once and storing it as a generator.
// Returns ErrIncompleteStructure while the source still has unpaired
// half-edges.
// Complexity: O(n).
func FromRotationSystem(s Surface) (*CombinatorialMap, error) {
	alpha, err := s.Alpha()
	if err != nil {
		return nil, fmt.Errorf("FromRotationSystem: %w", err)
	}
	phi, err := s.Phi()
	if err != nil {
		return nil, fmt.Errorf("FromRotationSystem: %w", err)
	}

	return NewCombinatorialMap(s.Sigma(), alpha, phi)
}
