// Package builder provides deterministic constructors for standard
// combinatorial surfaces and semi-simplicial complexes: polygons,
// bouquets, the square torus, the tetrahedron sphere, single triangles,
// squares and triangulated grids.
//
// What:
//
//   - BuildSurface(sopts, bopts, cons...): create a rotation graph,
//     resolve options, apply constructors in order
//   - BuildComplex(bopts, cons...): same orchestration for complexes
//   - Polygon, Bouquet, Torus, Tetrahedron: surface constructors
//   - Triangle, Square, TriangulatedGrid: complex constructors
//
// Why:
//   - Reference topologies with known V/E/F and χ make fixtures,
//     examples and benchmarks one-liners instead of pairing tables
//
// Determinism: identical inputs, options and constructor order always
// produce identical structures — corollas, pairings and gluings are
// emitted in a fixed documented order, with no randomness anywhere.
//
// Errors:
//
//   - ErrTooFewVertices   constructor parameter below its minimum
//   - ErrBadDimensions    non-positive grid dimensions
//   - ErrConstructFailed  nil constructor, or post-build validation failed
//
// Constructors never panic; they validate early and return sentinel
// errors wrapped with method context.
package builder
