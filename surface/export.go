package surface

import (
	"fmt"

	"github.com/katalvlaran/lvlsurf/mesh"
)

// ExportMesh derives the (vertices, faces) descriptor of a fully-paired
// surface given an embedding: coords[i] is the position of vertex i,
// where vertex i is the i-th cycle of σ in deterministic trace order.
// Each exported face lists vertex indices in face-traversal order, one
// entry per half-edge along the boundary.
//
// Returns ErrBadGeometry when len(coords) differs from the vertex count
// and ErrIncompleteStructure while the pairing phase is unfinished.
// Complexity: O(n).
func ExportMesh(s Surface, coords []mesh.Point) (*mesh.Mesh, error) {
	// 1. Vertex identity: half-edge → index of its σ-cycle.
	vcycles, err := TraceVertices(s)
	if err != nil {
		return nil, fmt.Errorf("ExportMesh: %w", err)
	}
	owner := make([]int, s.NumHalfEdges())
	for v, cycle := range vcycles {
		for _, h := range cycle {
			owner[h] = v
		}
	}

	// 2. The embedding must cover exactly the recovered vertex set.
	if len(coords) != len(vcycles) {
		return nil, fmt.Errorf("ExportMesh: %d coords for %d vertices: %w",
			len(coords), len(vcycles), ErrBadGeometry)
	}

	// 3. Faces: ϕ-cycles mapped through vertex ownership.
	fcycles, err := TraceFaces(s)
	if err != nil {
		return nil, fmt.Errorf("ExportMesh: %w", err)
	}
	faces := make([][]int, len(fcycles))
	for f, cycle := range fcycles {
		faces[f] = make([]int, len(cycle))
		for i, h := range cycle {
			faces[f][i] = owner[h]
		}
	}

	vertices := make([]mesh.Point, len(coords))
	copy(vertices, coords)

	return &mesh.Mesh{Vertices: vertices, Faces: faces}, nil
}
