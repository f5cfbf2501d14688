// Package surface defines the shared Surface capability interface,
// sentinel errors, and construction options. See doc.go for the overview.
package surface

import (
	"errors"

	"github.com/katalvlaran/lvlsurf/perm"
)

// Sentinel errors for surface operations.
var (
	// ErrIncompleteStructure indicates α (and hence ϕ) was queried while at
	// least one half-edge is still unpaired.
	ErrIncompleteStructure = errors.New("surface: unpaired half-edges, α is not fully defined")

	// ErrAlreadyPaired indicates an attempt to re-pair a half-edge with a
	// different partner. Re-issuing an identical pairing is a no-op.
	ErrAlreadyPaired = errors.New("surface: half-edge is already paired")

	// ErrAxiomViolation indicates stored generators break σ∘α∘ϕ = id.
	ErrAxiomViolation = errors.New("surface: composition axiom σ∘α∘ϕ = id violated")

	// ErrNotInvolution indicates α∘α ≠ id where an involution is required.
	ErrNotInvolution = errors.New("surface: α is not an involution")

	// ErrGeneratorMismatch indicates generator permutations of different lengths.
	ErrGeneratorMismatch = errors.New("surface: generator permutations have different lengths")

	// ErrBadGeometry indicates a coordinate slice whose length differs from
	// the structure's vertex count.
	ErrBadGeometry = errors.New("surface: coordinate count does not match vertex count")
)

// unpaired marks a pairing-column slot whose α image is not yet defined.
const unpaired = -1

// Surface is the capability interface shared by every surface kind:
// rotation graphs, rotation systems, combinatorial maps and hypermaps.
// Tracing, Euler characteristic and mesh export operate on it uniformly.
//
// Sigma always succeeds — σ is fixed at corolla construction. Alpha and
// Phi may fail with ErrIncompleteStructure on rotation structures whose
// pairing phase is unfinished; stored-generator structures never fail.
type Surface interface {
	// NumHalfEdges returns the total half-edge count.
	NumHalfEdges() int

	// Sigma returns a copy of the vertex permutation σ.
	Sigma() perm.Perm

	// Alpha returns a copy of the edge permutation α.
	Alpha() (perm.Perm, error)

	// Phi returns the face permutation ϕ (derived or stored, per kind).
	Phi() (perm.Perm, error)
}

// Option configures a surface structure at construction time.
type Option func(*config)

// config is the resolved, immutable construction configuration.
type config struct {
	// axiomChecks enables O(n) verification of the composition and
	// involution axioms at construction and after pairings.
	axiomChecks bool
}

// defaultConfig returns the zero configuration: no implicit axiom checks,
// so no hidden O(n) cost on mutation paths.
func defaultConfig() config { return config{} }

// WithAxiomChecks enables axiom verification (σ∘α∘ϕ = id, α∘α = id where
// required) at construction time. Validation stays available explicitly
// via Validate regardless of this option.
func WithAxiomChecks() Option {
	return func(c *config) { c.axiomChecks = true }
}

// derivePhi computes ϕ = sortperm(σ∘α), the inverse of σ∘α, which is the
// unique permutation satisfying σ∘α∘ϕ = id under the right-to-left
// composition convention of lvlsurf/perm.
func derivePhi(sigma, alpha perm.Perm) (perm.Perm, error) {
	sa, err := perm.Compose(sigma, alpha)
	if err != nil {
		return nil, err
	}

	return perm.SortPerm(sa)
}

// pairInto writes the symmetric pairing col[h]=k, col[k]=h into a pairing
// column. Bounds are the caller's concern; this helper enforces only the
// two-phase pairing discipline: a slot may be written once, and an
// identical re-pairing is accepted as a no-op.
func pairInto(col []int, h, k int) error {
	if col[h] == k && col[k] == h {
		return nil
	}
	if col[h] != unpaired || col[k] != unpaired {
		return ErrAlreadyPaired
	}
	col[h] = k
	col[k] = h

	return nil
}

// completeAlpha copies a fully-defined pairing column into a Perm, or
// reports ErrIncompleteStructure naming nothing but the failure kind.
func completeAlpha(col []int) (perm.Perm, error) {
	a := make(perm.Perm, len(col))
	for h, k := range col {
		if k == unpaired {
			return nil, ErrIncompleteStructure
		}
		a[h] = k
	}

	return a, nil
}
