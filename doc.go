// Package lvlsurf is your in-memory toolkit for building and interrogating
// combinatorial surfaces — from half-edge primitives to rotation systems,
// combinatorial maps and semi-simplicial complexes.
//
// 🚀 What is lvlsurf?
//
//	A compact, deterministic library that brings together:
//		• Half-edge primitives: dense vertex-incidence tables with O(1) lookups
//		• Permutation algebra: inversion, composition, cycle decomposition
//		• Rotation graphs & rotation systems: corollas, edge pairing, face tracing
//		• Combinatorial maps & hypermaps: σ, α, ϕ generators with σ∘α∘ϕ = id
//		• Semi-simplicial complexes: sorted edges, glued triangles, boundary maps
//		• Mesh export: a plain (vertices, faces) descriptor for any renderer
//
// ✨ Why choose lvlsurf?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Deterministic – identical inputs always yield identical structures
//   - Pure Go – no cgo, no hidden deps
//   - Honest errors – sentinel errors everywhere, no panics at runtime
//
// Under the hood, everything is organized under six subpackages:
//
//	perm/       — finite permutation algebra over dense index ranges
//	halfedge/   — the half-edge store: vertices, corollas, rotation order
//	surface/    — rotation graphs/systems, combinatorial maps, hypermaps
//	simplicial/ — 1D/2D semi-simplicial complexes with boundary operators
//	builder/    — deterministic constructors for standard surfaces & complexes
//	mesh/       — the geometry hand-off boundary (vertices + faces, nothing else)
//
// Quick ASCII example:
//
//	    2───3
//	    │ ╲ │
//	    0───1
//
//	a square split into two glued triangles — five edges, χ = 1.
//
// Dive into the package docs for tutorials, invariants, and complexity notes.
//
//	go get github.com/katalvlaran/lvlsurf
package lvlsurf
