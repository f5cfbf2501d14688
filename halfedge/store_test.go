package halfedge_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlsurf/halfedge"
	"github.com/katalvlaran/lvlsurf/perm"
)

//----------------------------------------------------------------------------//
// Vertex Tests
//----------------------------------------------------------------------------//

func TestAddVertex_DenseIndices(t *testing.T) {
	s := halfedge.NewStore()
	assert.Equal(t, 0, s.AddVertex())
	assert.Equal(t, 1, s.AddVertex())
	assert.Equal(t, 2, s.NumVertices())
}

func TestAddVertices(t *testing.T) {
	s := halfedge.NewStore()
	assert.Equal(t, []int{0, 1, 2}, s.AddVertices(3))
	assert.Nil(t, s.AddVertices(0))
	assert.Nil(t, s.AddVertices(-1))
	assert.Equal(t, 3, s.NumVertices())
}

//----------------------------------------------------------------------------//
// Corolla Tests
//----------------------------------------------------------------------------//

func TestAddCorolla_RotationCycle(t *testing.T) {
	s := halfedge.NewStore()

	ids, err := s.AddCorolla(3)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2}, ids)

	ids, err = s.AddCorolla(2)
	require.NoError(t, err)
	assert.Equal(t, []int{3, 4}, ids)

	// σ is one cycle per corolla: (0 1 2)(3 4).
	assert.Equal(t, perm.Perm{1, 2, 0, 4, 3}, s.Rotation())

	// Incidence column and inverted index agree.
	for _, h := range []int{0, 1, 2} {
		v, err := s.VertexOf(h)
		require.NoError(t, err)
		assert.Equal(t, 0, v)
	}
	he, err := s.HalfEdgesOf(1)
	require.NoError(t, err)
	assert.Equal(t, []int{3, 4}, he)

	val, err := s.Valence(0)
	require.NoError(t, err)
	assert.Equal(t, 3, val)
}

func TestAddCorolla_SingleHalfEdgeFixedPoint(t *testing.T) {
	s := halfedge.NewStore()
	ids, err := s.AddCorolla(1)
	require.NoError(t, err)
	assert.Equal(t, []int{0}, ids)
	// A valence-1 corolla makes its half-edge a fixed point of σ.
	assert.Equal(t, perm.Perm{0}, s.Rotation())
}

func TestAddCorolla_BadValence(t *testing.T) {
	s := halfedge.NewStore()
	_, err := s.AddCorolla(0)
	assert.ErrorIs(t, err, halfedge.ErrBadValence)
	// Nothing committed on failure.
	assert.Equal(t, 0, s.NumVertices())
	assert.Equal(t, 0, s.NumHalfEdges())
}

//----------------------------------------------------------------------------//
// Bounds & Clone Tests
//----------------------------------------------------------------------------//

func TestIndexOutOfRange(t *testing.T) {
	s := halfedge.NewStore()
	_, err := s.AddCorolla(2)
	require.NoError(t, err)

	_, err = s.VertexOf(2)
	assert.ErrorIs(t, err, halfedge.ErrIndexOutOfRange)
	_, err = s.VertexOf(-1)
	assert.ErrorIs(t, err, halfedge.ErrIndexOutOfRange)
	_, err = s.HalfEdgesOf(1)
	assert.ErrorIs(t, err, halfedge.ErrIndexOutOfRange)
	_, err = s.Valence(-1)
	assert.ErrorIs(t, err, halfedge.ErrIndexOutOfRange)
}

func TestClone_Independent(t *testing.T) {
	s := halfedge.NewStore()
	_, err := s.AddCorolla(3)
	require.NoError(t, err)

	c := s.Clone()
	_, err = c.AddCorolla(2)
	require.NoError(t, err)

	assert.Equal(t, 1, s.NumVertices())
	assert.Equal(t, 3, s.NumHalfEdges())
	assert.Equal(t, 2, c.NumVertices())
	assert.Equal(t, 5, c.NumHalfEdges())
	assert.Equal(t, perm.Perm{1, 2, 0}, s.Rotation())
}
