package mesh

// Point is a vertex position in up to three dimensions. Unused components
// stay zero; 2D embeddings simply leave Z at 0.
type Point struct {
	X, Y, Z float64
}

// Mesh is the export descriptor handed to external renderers.
//
// Vertices[i] is the position of vertex i; every face lists its vertex
// indices in boundary-traversal order. Faces index into Vertices only —
// a Mesh never references the structure it was derived from.
type Mesh struct {
	Vertices []Point
	Faces    [][]int
}

// NumVertices returns the vertex count. Complexity: O(1).
func (m *Mesh) NumVertices() int { return len(m.Vertices) }

// NumFaces returns the face count. Complexity: O(1).
func (m *Mesh) NumFaces() int { return len(m.Faces) }
