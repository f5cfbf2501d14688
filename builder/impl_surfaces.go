// SPDX-License-Identifier: MIT
// Package: lvlsurf/builder
//
// impl_surfaces.go — surface constructors: Polygon, Bouquet, Torus,
// Tetrahedron.
//
// Contract (all constructors):
//   - Validate parameters early; return sentinel errors, never panic.
//   - Emit corollas in ascending vertex order and pairings in the
//     documented order, so equal inputs give equal structures.
package builder

import (
	"fmt"

	"github.com/katalvlaran/lvlsurf/surface"
)

// File-local constants (no magic numbers; stable method tags for context).
const (
	methodPolygon     = "Polygon"
	methodBouquet     = "Bouquet"
	methodTorus       = "Torus"
	methodTetrahedron = "Tetrahedron"

	minPolygonVertices = 3
	minBouquetLoops    = 1
)

// Polygon returns a constructor that builds the n-gon ring: n valence-2
// vertices paired into one cycle. On the sphere it has two faces (inner
// and outer) and χ = 2.
// Emission order: corollas 0..n-1, then pairing (2i+1, 2(i+1) mod 2n)
// for i = 0..n-1.
func Polygon(n int) SurfaceConstructor {
	return func(g *surface.RotationGraph, _ builderConfig) error {
		if n < minPolygonVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPolygon, n, minPolygonVertices, ErrTooFewVertices)
		}
		for i := 0; i < n; i++ {
			if _, err := g.AddCorolla(2); err != nil {
				return fmt.Errorf("%s: AddCorolla: %w", methodPolygon, err)
			}
		}
		for i := 0; i < n; i++ {
			h, k := 2*i+1, (2*i+2)%(2*n)
			if err := g.PairHalfEdges(h, k); err != nil {
				return fmt.Errorf("%s: PairHalfEdges(%d,%d): %w", methodPolygon, h, k, err)
			}
		}

		return nil
	}
}

// Bouquet returns a constructor that builds the rose with n loops: one
// valence-2n vertex whose consecutive half-edge pairs form the loops.
// On the sphere: V=1, E=n, F=n+1, χ = 2.
func Bouquet(n int) SurfaceConstructor {
	return func(g *surface.RotationGraph, _ builderConfig) error {
		if n < minBouquetLoops {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodBouquet, n, minBouquetLoops, ErrTooFewVertices)
		}
		ids, err := g.AddCorolla(2 * n)
		if err != nil {
			return fmt.Errorf("%s: AddCorolla: %w", methodBouquet, err)
		}
		for i := 0; i < n; i++ {
			if err = g.PairHalfEdges(ids[2*i], ids[2*i+1]); err != nil {
				return fmt.Errorf("%s: PairHalfEdges: %w", methodBouquet, err)
			}
		}

		return nil
	}
}

// Torus returns a constructor for the one-vertex square torus: a single
// valence-4 corolla with opposite half-edges paired. V=1, E=2, F=1, χ=0,
// genus 1.
func Torus() SurfaceConstructor {
	return func(g *surface.RotationGraph, _ builderConfig) error {
		ids, err := g.AddCorolla(4)
		if err != nil {
			return fmt.Errorf("%s: AddCorolla: %w", methodTorus, err)
		}
		if err = g.PairHalfEdges(ids[0], ids[2]); err != nil {
			return fmt.Errorf("%s: PairHalfEdges: %w", methodTorus, err)
		}
		if err = g.PairHalfEdges(ids[1], ids[3]); err != nil {
			return fmt.Errorf("%s: PairHalfEdges: %w", methodTorus, err)
		}

		return nil
	}
}

// tetrahedronPairs lists the α pairing of the planar K₄ embedding built
// by Tetrahedron: vertex i owns half-edges {3i, 3i+1, 3i+2} in
// counterclockwise rotation order.
var tetrahedronPairs = [6][2]int{
	{0, 5}, {1, 10}, {2, 6}, {3, 8}, {4, 11}, {7, 9},
}

// Tetrahedron returns a constructor for the tetrahedron surface: four
// valence-3 vertices paired along the six edges of K₄ with planar
// rotations. V=4, E=6, F=4, χ = 2.
func Tetrahedron() SurfaceConstructor {
	return func(g *surface.RotationGraph, _ builderConfig) error {
		for i := 0; i < 4; i++ {
			if _, err := g.AddCorolla(3); err != nil {
				return fmt.Errorf("%s: AddCorolla: %w", methodTetrahedron, err)
			}
		}
		for _, p := range tetrahedronPairs {
			if err := g.PairHalfEdges(p[0], p[1]); err != nil {
				return fmt.Errorf("%s: PairHalfEdges(%d,%d): %w", methodTetrahedron, p[0], p[1], err)
			}
		}

		return nil
	}
}
