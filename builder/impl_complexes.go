// SPDX-License-Identifier: MIT
// Package: lvlsurf/builder
//
// impl_complexes.go — complex constructors: Triangle, Square,
// TriangulatedGrid.
package builder

import (
	"fmt"

	"github.com/katalvlaran/lvlsurf/simplicial"
)

const (
	methodTriangle = "Triangle"
	methodSquare   = "Square"
	methodGrid     = "TriangulatedGrid"
)

// Triangle returns a constructor for the lone 2-simplex: three vertices,
// three edges, one triangle, χ = 1.
func Triangle() ComplexConstructor {
	return func(c *simplicial.Complex, _ builderConfig) error {
		ids := c.AddVertices(3)
		if _, err := c.GlueSortedTriangle(ids[0], ids[1], ids[2]); err != nil {
			return fmt.Errorf("%s: %w", methodTriangle, err)
		}

		return nil
	}
}

// Square returns a constructor for the two-triangle square: four
// vertices, triangles (0,1,2) and (0,3,2) sharing the diagonal {0,2}.
// Five edges, χ = 1.
func Square() ComplexConstructor {
	return func(c *simplicial.Complex, _ builderConfig) error {
		ids := c.AddVertices(4)
		if _, err := c.GlueTriangle(ids[0], ids[1], ids[2]); err != nil {
			return fmt.Errorf("%s: %w", methodSquare, err)
		}
		if _, err := c.GlueTriangle(ids[0], ids[3], ids[2]); err != nil {
			return fmt.Errorf("%s: %w", methodSquare, err)
		}

		return nil
	}
}

// TriangulatedGrid returns a constructor gluing a rows×cols grid of unit
// squares, each split along its diagonal into two triangles: (rows+1)·
// (cols+1) vertices in row-major order, 2·rows·cols triangles.
// Emission order: cells row-major, lower triangle before upper.
func TriangulatedGrid(rows, cols int) ComplexConstructor {
	return func(c *simplicial.Complex, _ builderConfig) error {
		if rows < 1 || cols < 1 {
			return fmt.Errorf("%s: %dx%d: %w", methodGrid, rows, cols, ErrBadDimensions)
		}
		ids := c.AddVertices((rows + 1) * (cols + 1))
		// at maps grid coordinates to the row-major vertex id.
		at := func(r, col int) int { return ids[r*(cols+1)+col] }

		for r := 0; r < rows; r++ {
			for col := 0; col < cols; col++ {
				// Cell corners: nw—ne on row r, sw—se on row r+1.
				nw, ne := at(r, col), at(r, col+1)
				sw, se := at(r+1, col), at(r+1, col+1)
				if _, err := c.GlueTriangle(nw, sw, se); err != nil {
					return fmt.Errorf("%s: cell (%d,%d): %w", methodGrid, r, col, err)
				}
				if _, err := c.GlueTriangle(nw, ne, se); err != nil {
					return fmt.Errorf("%s: cell (%d,%d): %w", methodGrid, r, col, err)
				}
			}
		}

		return nil
	}
}
