// Package simplicial implements semi-simplicial complexes of dimension
// up to 2: vertices (0-simplices), sorted edges (1-simplices) and glued
// triangles (2-simplices), with boundary operators and the
// semi-simplicial identity as an explicit test oracle.
//
// What:
//
//   - Complex: append-only tables of vertices, edges and triangles.
//     Every edge stores its boundary vertices as a sorted pair
//     (src < tgt), so self-loops are structurally impossible; every
//     triangle stores three boundary edges and three sorted boundary
//     vertices, boundary i being the edge that excludes the triangle's
//     i-th vertex
//   - AddVertices / AddSortedEdge / AddSortedEdges: 0- and 1-skeleton
//     construction; edges are normalized to (min, max) on entry
//   - GlueTriangle / GlueSortedTriangle: create-or-reuse the three
//     boundary edges and record the incidence. Gluing the same vertex
//     set in any order yields a structurally identical complex — the
//     vertex triple is canonicalized by sorting before any table writes
//   - VertexBoundary / TriangleBoundary: the face maps ∂ᵢ
//   - IsSemiSimplicial(n): the commuting-boundary oracle
//     ∂ᵢ∂ⱼ = ∂ⱼ₋₁∂ᵢ for i < j, returning false (never an error) on the
//     first violation
//   - BoundaryMatrix(n): the signed incidence matrix of ∂₁ or ∂₂
//   - EdgeSet: the distinct sorted edge pairs in ascending order, backed
//     by an ordered map so enumeration never needs a re-sort
//   - Equal: structural equality over the underlying tables
//   - Mesh: (vertices, faces) export for external renderers
//
// Indexing: vertices, edges and triangles are dense 0-based ints in
// creation order. All operations validate before writing; a failed call
// commits nothing.
//
// Complexity:
//
//   - AddSortedEdge / GlueTriangle: O(log E) via the edge registry
//   - IsSemiSimplicial:             O(T)
//   - EdgeSet:                      O(E)
//
// Errors:
//
//   - ErrIndexOutOfRange   vertex/edge/triangle index outside the tables
//   - ErrDegenerateSimplex repeated vertex in an edge or triangle
//   - ErrUnsortedSimplex   GlueSortedTriangle input not strictly ascending
//   - ErrLengthMismatch    bulk endpoint slices of different lengths
//   - ErrBadDimension      boundary matrix for a dimension not stored
//   - ErrBadGeometry       coordinate count differs from vertex count
package simplicial
