package simplicial

import (
	"fmt"

	"github.com/katalvlaran/lvlsurf/mesh"
)

// EdgeVertices returns the stored boundary pair of edge e, always sorted
// src < tgt. Returns ErrIndexOutOfRange for an unknown edge.
// Complexity: O(1).
func (c *Complex) EdgeVertices(e int) ([2]int, error) {
	if e < 0 || e >= len(c.edges) {
		return [2]int{}, fmt.Errorf("EdgeVertices(%d): %w", e, ErrIndexOutOfRange)
	}

	return c.edges[e], nil
}

// TriangleVertices returns the sorted vertex triple of triangle t.
// Returns ErrIndexOutOfRange for an unknown triangle.
// Complexity: O(1).
func (c *Complex) TriangleVertices(t int) ([3]int, error) {
	if t < 0 || t >= len(c.triVerts) {
		return [3]int{}, fmt.Errorf("TriangleVertices(%d): %w", t, ErrIndexOutOfRange)
	}

	return c.triVerts[t], nil
}

// TriangleEdges returns the boundary edges of triangle t in ∂₂ order:
// entry i excludes the triangle's i-th vertex.
// Returns ErrIndexOutOfRange for an unknown triangle.
// Complexity: O(1).
func (c *Complex) TriangleEdges(t int) ([3]int, error) {
	if t < 0 || t >= len(c.triEdges) {
		return [3]int{}, fmt.Errorf("TriangleEdges(%d): %w", t, ErrIndexOutOfRange)
	}

	return c.triEdges[t], nil
}

// VertexBoundary applies the face map ∂ᵢ to edge e: the boundary vertex
// remaining after the edge's i-th vertex is excluded, so ∂₀ yields the
// larger endpoint and ∂₁ the smaller.
// Returns ErrIndexOutOfRange for i outside {0,1} or an unknown edge.
// Complexity: O(1).
func (c *Complex) VertexBoundary(i, e int) (int, error) {
	if i < 0 || i > 1 {
		return 0, fmt.Errorf("VertexBoundary(%d,%d): %w", i, e, ErrIndexOutOfRange)
	}
	ev, err := c.EdgeVertices(e)
	if err != nil {
		return 0, fmt.Errorf("VertexBoundary(%d,%d): %w", i, e, ErrIndexOutOfRange)
	}

	// Excluding vertex 0 leaves vertex 1 and vice versa.
	return ev[1-i], nil
}

// TriangleBoundary applies the face map ∂ᵢ to triangle t: the boundary
// edge excluding the triangle's i-th vertex.
// Returns ErrIndexOutOfRange for i outside {0,1,2} or an unknown triangle.
// Complexity: O(1).
func (c *Complex) TriangleBoundary(i, t int) (int, error) {
	if i < 0 || i > 2 {
		return 0, fmt.Errorf("TriangleBoundary(%d,%d): %w", i, t, ErrIndexOutOfRange)
	}
	te, err := c.TriangleEdges(t)
	if err != nil {
		return 0, fmt.Errorf("TriangleBoundary(%d,%d): %w", i, t, ErrIndexOutOfRange)
	}

	return te[i], nil
}

// IsSemiSimplicial reports whether every n-simplex satisfies the
// semi-simplicial identity ∂ᵢ∂ⱼ = ∂ⱼ₋₁∂ᵢ for all 0 ≤ i < j ≤ n: deleting
// two boundary faces in either order must agree after reindexing. It is
// a test oracle — construction never runs it implicitly — and it returns
// false, not an error, on the first violation: a non-semi-simplicial
// state is an expected answer, not an exceptional one. Dimensions other
// than 2 hold vacuously (nothing above triangles is stored).
// Complexity: O(T).
func (c *Complex) IsSemiSimplicial(n int) bool {
	if n != 2 {
		return true
	}
	for t := range c.triEdges {
		for j := 1; j <= 2; j++ {
			for i := 0; i < j; i++ {
				left, err := c.VertexBoundary(i, c.triEdges[t][j])
				if err != nil {
					return false
				}
				right, err := c.VertexBoundary(j-1, c.triEdges[t][i])
				if err != nil {
					return false
				}
				if left != right {
					return false
				}
			}
		}
	}

	return true
}

// BoundaryMatrix returns the signed incidence matrix of ∂ₙ with one row
// per n-simplex: for n=1 an E×V matrix with −1 at the smaller endpoint
// and +1 at the larger; for n=2 a T×E matrix with alternating signs
// (−1)ⁱ on the three boundary edges.
// Returns ErrBadDimension for any other n.
// Complexity: O(rows × cols).
func (c *Complex) BoundaryMatrix(n int) ([][]int, error) {
	switch n {
	case 1:
		m := make([][]int, len(c.edges))
		for e, ev := range c.edges {
			row := make([]int, c.nv)
			row[ev[0]] = -1
			row[ev[1]] = 1
			m[e] = row
		}

		return m, nil
	case 2:
		m := make([][]int, len(c.triEdges))
		for t, te := range c.triEdges {
			row := make([]int, len(c.edges))
			sign := 1
			for i := 0; i < 3; i++ {
				row[te[i]] += sign
				sign = -sign
			}
			m[t] = row
		}

		return m, nil
	default:
		return nil, fmt.Errorf("BoundaryMatrix(%d): %w", n, ErrBadDimension)
	}
}

// Mesh exports the complex as a (vertices, faces) descriptor given an
// embedding: coords[v] positions vertex v, and each triangle becomes one
// triangular face.
// Returns ErrBadGeometry when len(coords) differs from the vertex count.
// Complexity: O(V + T).
func (c *Complex) Mesh(coords []mesh.Point) (*mesh.Mesh, error) {
	if len(coords) != c.nv {
		return nil, fmt.Errorf("Mesh: %d coords for %d vertices: %w", len(coords), c.nv, ErrBadGeometry)
	}
	vertices := make([]mesh.Point, len(coords))
	copy(vertices, coords)
	faces := make([][]int, len(c.triVerts))
	for t, tv := range c.triVerts {
		faces[t] = []int{tv[0], tv[1], tv[2]}
	}

	return &mesh.Mesh{Vertices: vertices, Faces: faces}, nil
}
