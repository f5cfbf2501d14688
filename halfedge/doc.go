// Package halfedge implements the half-edge store: the dense incidence
// table every surface structure in lvlsurf is built on.
//
// What:
//
//   - Store: append-only table of half-edges with a vertex-incidence
//     column, a per-vertex inverted index (the corolla lists), and the
//     rotation permutation σ maintained corolla-by-corolla
//   - AddVertex / AddVertices: append bare vertices
//   - AddCorolla(valence): one new vertex plus `valence` new half-edges
//     owned by it; σ restricted to the fresh half-edges is a single cycle
//     in index order (k → k+1, last wraps to first)
//   - VertexOf(h): owning vertex of a half-edge, O(1) via the column
//   - HalfEdgesOf(v): the corolla of v in rotation order, O(valence) via
//     the inverted index
//
// Why:
//   - Rotation graphs, rotation systems and combinatorial maps all need
//     the same indexed vertex↔half-edge incidence; it lives here once
//
// Indexing:
//   - Vertices and half-edges are dense 0-based ints, assigned in
//     creation order. Every half-edge belongs to exactly one vertex.
//
// Complexity:
//
//   - AddVertex/AddCorolla: amortized O(1) / O(valence)
//   - VertexOf:             O(1)
//   - HalfEdgesOf:          O(valence of v)
//
// Errors:
//
//   - ErrIndexOutOfRange  referenced vertex or half-edge does not exist
//   - ErrBadValence       corolla valence below one
package halfedge
