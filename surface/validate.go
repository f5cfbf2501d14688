package surface

import "github.com/katalvlaran/lvlsurf/perm"

// IsValidRotationGraph checks the structural axioms of a rotation graph:
//
//  1. σ is a permutation of the half-edge indices;
//  2. σ preserves vertex ownership — every half-edge and its σ-image
//     belong to the same vertex (compose(σ, vertex) == vertex);
//  3. the pairing column is symmetric where defined — inv(inv(h)) = h —
//     which makes the derived α an involution once pairing completes.
//
// Validity is an explicit query, never checked implicitly on mutation,
// so construction stays free of hidden O(n) costs. A partially-paired
// graph can be valid; completeness is a separate question (IsComplete).
// Complexity: O(n).
func IsValidRotationGraph(g *RotationGraph) bool {
	sigma := g.Sigma()
	if !perm.IsPermutation(sigma) {
		return false
	}

	// σ must keep each half-edge within its own corolla.
	for h := range sigma {
		hv, err := g.VertexOf(h)
		if err != nil {
			return false
		}
		sv, err := g.VertexOf(sigma[h])
		if err != nil {
			return false
		}
		if hv != sv {
			return false
		}
	}

	// Pairing symmetry on the defined part of inv.
	for h, k := range g.inv {
		if k == unpaired {
			continue
		}
		if k < 0 || k >= len(g.inv) || g.inv[k] != h {
			return false
		}
	}

	return true
}

// IsInvolution reports whether the structure's α is fully defined and an
// involution. It returns false — not an error — for incomplete pairings,
// since "not yet an involution" is an expected state mid-construction.
// Complexity: O(n).
func IsInvolution(s Surface) bool {
	a, err := s.Alpha()
	if err != nil {
		return false
	}

	return perm.IsInvolution(a)
}
