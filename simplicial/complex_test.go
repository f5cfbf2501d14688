package simplicial_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlsurf/simplicial"
)

// buildSquare glues the canonical two-triangle square: four vertices,
// triangles (0,1,2) and (0,3,2).
func buildSquare(t *testing.T) *simplicial.Complex {
	t.Helper()
	c := simplicial.NewComplex()
	c.AddVertices(4)
	_, err := c.GlueTriangle(0, 1, 2)
	require.NoError(t, err)
	_, err = c.GlueTriangle(0, 3, 2)
	require.NoError(t, err)

	return c
}

//----------------------------------------------------------------------------//
// Vertex & Edge Tests
//----------------------------------------------------------------------------//

func TestAddVertices(t *testing.T) {
	c := simplicial.NewComplex()
	assert.Equal(t, []int{0, 1, 2}, c.AddVertices(3))
	assert.Nil(t, c.AddVertices(0))
	assert.Equal(t, 3, c.NumVertices())
}

func TestAddSortedEdge_Normalizes(t *testing.T) {
	c := simplicial.NewComplex()
	c.AddVertices(3)

	e, err := c.AddSortedEdge(2, 0)
	require.NoError(t, err)
	ev, err := c.EdgeVertices(e)
	require.NoError(t, err)
	assert.Equal(t, [2]int{0, 2}, ev, "endpoints are stored sorted")
}

// TestAddSortedEdge_SelfLoop pins the invariant src < tgt: a self-loop is
// degenerate for every vertex.
func TestAddSortedEdge_SelfLoop(t *testing.T) {
	c := simplicial.NewComplex()
	c.AddVertices(4)
	for u := 0; u < 4; u++ {
		_, err := c.AddSortedEdge(u, u)
		assert.ErrorIs(t, err, simplicial.ErrDegenerateSimplex)
	}
	assert.Equal(t, 0, c.NumEdges(), "nothing committed on failure")
}

func TestAddSortedEdge_OutOfRange(t *testing.T) {
	c := simplicial.NewComplex()
	c.AddVertices(2)
	_, err := c.AddSortedEdge(0, 2)
	assert.ErrorIs(t, err, simplicial.ErrIndexOutOfRange)
	_, err = c.AddSortedEdge(-1, 1)
	assert.ErrorIs(t, err, simplicial.ErrIndexOutOfRange)
}

func TestAddSortedEdges_Bulk(t *testing.T) {
	c := simplicial.NewComplex()
	c.AddVertices(4)

	ids, err := c.AddSortedEdges([]int{0, 1, 2}, []int{1, 2, 3})
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2}, ids)

	_, err = c.AddSortedEdges([]int{0}, []int{1, 2})
	assert.ErrorIs(t, err, simplicial.ErrLengthMismatch)
}

func TestAddSortedEdge_ParallelEdges(t *testing.T) {
	c := simplicial.NewComplex()
	c.AddVertices(2)
	_, err := c.AddSortedEdge(0, 1)
	require.NoError(t, err)
	_, err = c.AddSortedEdge(1, 0)
	require.NoError(t, err)

	assert.Equal(t, 2, c.NumEdges(), "parallel edges are appended")
	assert.Equal(t, [][2]int{{0, 1}}, c.EdgeSet(), "the registry keeps distinct pairs")
}

//----------------------------------------------------------------------------//
// Triangle Gluing Tests
//----------------------------------------------------------------------------//

func TestGlueTriangle_BoundaryConvention(t *testing.T) {
	c := simplicial.NewComplex()
	c.AddVertices(3)
	tr, err := c.GlueTriangle(0, 1, 2)
	require.NoError(t, err)

	tv, err := c.TriangleVertices(tr)
	require.NoError(t, err)
	assert.Equal(t, [3]int{0, 1, 2}, tv)

	// Boundary i excludes vertex i: ∂₂(t,0)={1,2}, ∂₂(t,1)={0,2}, ∂₂(t,2)={0,1}.
	te, err := c.TriangleEdges(tr)
	require.NoError(t, err)
	wantPairs := [3][2]int{{1, 2}, {0, 2}, {0, 1}}
	for i := 0; i < 3; i++ {
		e, err := c.TriangleBoundary(i, tr)
		require.NoError(t, err)
		assert.Equal(t, te[i], e)
		ev, err := c.EdgeVertices(e)
		require.NoError(t, err)
		assert.Equal(t, wantPairs[i], ev)
	}
}

func TestGlueTriangle_Errors(t *testing.T) {
	c := simplicial.NewComplex()
	c.AddVertices(3)

	_, err := c.GlueTriangle(0, 1, 3)
	assert.ErrorIs(t, err, simplicial.ErrIndexOutOfRange)
	_, err = c.GlueTriangle(0, 1, 1)
	assert.ErrorIs(t, err, simplicial.ErrDegenerateSimplex)
	_, err = c.GlueSortedTriangle(0, 2, 1)
	assert.ErrorIs(t, err, simplicial.ErrUnsortedSimplex)
	_, err = c.GlueSortedTriangle(0, 1, 1)
	assert.ErrorIs(t, err, simplicial.ErrUnsortedSimplex)

	assert.Equal(t, 0, c.NumEdges())
	assert.Equal(t, 0, c.NumTriangles())
}

// TestGlueTriangle_OrderInvariance verifies the commuting contract:
// gluing any vertex order — sorted or not — reaches the same state.
func TestGlueTriangle_OrderInvariance(t *testing.T) {
	reference := simplicial.NewComplex()
	reference.AddVertices(3)
	_, err := reference.GlueSortedTriangle(0, 1, 2)
	require.NoError(t, err)

	orders := [][3]int{
		{0, 1, 2}, {0, 2, 1}, {1, 0, 2}, {1, 2, 0}, {2, 0, 1}, {2, 1, 0},
	}
	for _, ord := range orders {
		c := simplicial.NewComplex()
		c.AddVertices(3)
		_, err := c.GlueTriangle(ord[0], ord[1], ord[2])
		require.NoError(t, err)
		assert.True(t, c.Equal(reference), "order %v must reach the canonical state", ord)
		assert.True(t, reference.Equal(c))
	}
}

func TestGlueTriangle_ReusesEdges(t *testing.T) {
	c := buildSquare(t)

	// The shared diagonal {0,2} exists once: 5 edges, not 6.
	assert.Equal(t, 2, c.NumTriangles())
	assert.Equal(t, 5, c.NumEdges())
	assert.Equal(t, [][2]int{{0, 1}, {0, 2}, {0, 3}, {1, 2}, {2, 3}}, c.EdgeSet())
	assert.Equal(t, 4-5+2, c.EulerCharacteristic())
}

//----------------------------------------------------------------------------//
// Equality & Clone Tests
//----------------------------------------------------------------------------//

func TestEqual_AcrossGluingPaths(t *testing.T) {
	a := buildSquare(t)

	b := simplicial.NewComplex()
	b.AddVertices(4)
	_, err := b.GlueTriangle(2, 0, 1)
	require.NoError(t, err)
	_, err = b.GlueSortedTriangle(0, 2, 3)
	require.NoError(t, err)

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(nil))

	c := simplicial.NewComplex()
	c.AddVertices(4)
	assert.False(t, a.Equal(c))
}

func TestClone_Independent(t *testing.T) {
	a := buildSquare(t)
	b := a.Clone()
	require.True(t, a.Equal(b))

	_, err := b.GlueTriangle(1, 2, 3)
	require.NoError(t, err)
	assert.False(t, a.Equal(b))
	assert.Equal(t, 2, a.NumTriangles())
	assert.Equal(t, 3, b.NumTriangles())
}
