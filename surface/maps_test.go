package surface_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlsurf/perm"
	"github.com/katalvlaran/lvlsurf/surface"
)

// torusGenerators returns σ, α, ϕ of the one-vertex square torus:
// valence-4 corolla, opposite half-edges paired. V=1, E=2, F=1, χ=0.
func torusGenerators() (sigma, alpha, phi perm.Perm) {
	sigma = perm.Perm{1, 2, 3, 0}
	alpha = perm.Perm{2, 3, 0, 1}
	// ϕ = (σ∘α)⁻¹.
	phi = perm.Perm{1, 2, 3, 0}

	return sigma, alpha, phi
}

//----------------------------------------------------------------------------//
// CombinatorialMap Tests
//----------------------------------------------------------------------------//

func TestCombinatorialMap_Torus(t *testing.T) {
	sigma, alpha, phi := torusGenerators()
	m, err := surface.NewCombinatorialMap(sigma, alpha, phi, surface.WithAxiomChecks())
	require.NoError(t, err)
	require.NoError(t, m.Validate())

	// Defining composition law: σ(α(ϕ(h))) = h for every half-edge.
	for h := 0; h < m.NumHalfEdges(); h++ {
		assert.Equal(t, h, sigma[alpha[phi[h]]])
	}

	chi, err := surface.EulerCharacteristic(m)
	require.NoError(t, err)
	assert.Equal(t, 0, chi)
	genus, err := surface.Genus(m)
	require.NoError(t, err)
	assert.Equal(t, 1, genus)
}

func TestCombinatorialMap_ConstructionErrors(t *testing.T) {
	sigma, alpha, phi := torusGenerators()

	_, err := surface.NewCombinatorialMap(sigma, alpha, phi[:3])
	assert.ErrorIs(t, err, surface.ErrGeneratorMismatch)

	_, err = surface.NewCombinatorialMap(perm.Perm{0, 0, 1, 2}, alpha, phi)
	assert.ErrorIs(t, err, perm.ErrNotPermutation)

	// α must be an involution for a combinatorial map, always checked.
	_, err = surface.NewCombinatorialMap(sigma, perm.Perm{1, 2, 3, 0}, phi)
	assert.ErrorIs(t, err, surface.ErrNotInvolution)

	// σ∘α∘ϕ = id is opt-in: the broken ϕ passes without the option...
	broken := perm.Perm{0, 1, 2, 3}
	_, err = surface.NewCombinatorialMap(sigma, alpha, broken)
	assert.NoError(t, err)
	// ...and is rejected with it.
	_, err = surface.NewCombinatorialMap(sigma, alpha, broken, surface.WithAxiomChecks())
	assert.ErrorIs(t, err, surface.ErrAxiomViolation)
}

func TestFromRotationSystem(t *testing.T) {
	g := surface.NewRotationGraph()
	_, err := g.AddCorolla(4)
	require.NoError(t, err)
	require.NoError(t, g.PairHalfEdges(0, 2))
	require.NoError(t, g.PairHalfEdges(1, 3))

	m, err := surface.FromRotationSystem(g)
	require.NoError(t, err)
	require.NoError(t, m.Validate())

	// The frozen map carries the torus generators.
	sigma, alpha, phi := torusGenerators()
	assert.Equal(t, sigma, m.Sigma())
	a, err := m.Alpha()
	require.NoError(t, err)
	assert.Equal(t, alpha, a)
	p, err := m.Phi()
	require.NoError(t, err)
	assert.Equal(t, phi, p)
}

func TestFromRotationSystem_Incomplete(t *testing.T) {
	g := surface.NewRotationGraph()
	_, err := g.AddCorolla(2)
	require.NoError(t, err)
	_, err = surface.FromRotationSystem(g)
	assert.ErrorIs(t, err, surface.ErrIncompleteStructure)
}

//----------------------------------------------------------------------------//
// Hypermap Tests
//----------------------------------------------------------------------------//

// TestHypermap_TriangularAlpha pins the documented open-question behavior:
// a hypermap α need not be an involution, and TraceEdges returns its
// cycles as-is, without warning or error.
func TestHypermap_TriangularAlpha(t *testing.T) {
	sigma := perm.Perm{1, 2, 0}
	alpha := perm.Perm{1, 2, 0} // one 3-cycle: a hyperedge of three darts
	// ϕ = (σ∘α)⁻¹; σ∘α = {2,0,1}, so ϕ = {1,2,0}.
	phi := perm.Perm{1, 2, 0}

	hm, err := surface.NewHypermap(sigma, alpha, phi, surface.WithAxiomChecks())
	require.NoError(t, err)

	es, err := surface.TraceEdges(hm)
	require.NoError(t, err)
	assert.Equal(t, [][]int{{0, 1, 2}}, es, "hyperedge cycles longer than 2 pass through untouched")
	assert.False(t, surface.IsInvolution(hm))

	// The same generators are rejected as a combinatorial map.
	_, err = surface.NewCombinatorialMap(sigma, alpha, phi)
	assert.ErrorIs(t, err, surface.ErrNotInvolution)
}

func TestHypermap_ValidateReportsViolation(t *testing.T) {
	sigma, alpha, _ := torusGenerators()
	hm, err := surface.NewHypermap(sigma, alpha, perm.Identity(4))
	require.NoError(t, err)
	assert.ErrorIs(t, hm.Validate(), surface.ErrAxiomViolation)
}
