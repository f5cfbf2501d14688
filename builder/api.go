// SPDX-License-Identifier: MIT
// Package: lvlsurf/builder
//
// api.go — thin public entry-points for the builder package.
//
// Design contract (strict):
//   - Two orchestrators: BuildSurface and BuildComplex. Each creates the
//     target structure, resolves the config, and runs constructors in order.
//   - All public factories are declared in impl_*.go files.
//   - Determinism: same inputs, options and constructor order ⇒ identical
//     structures.
//   - Safety: never panic; return sentinel errors from constructors.
package builder

import (
	"fmt"

	"github.com/katalvlaran/lvlsurf/simplicial"
	"github.com/katalvlaran/lvlsurf/surface"
)

// SurfaceConstructor applies a deterministic mutation to a rotation
// graph under a resolved configuration. Constructors validate parameters
// early, emit corollas and pairings in a fixed documented order, and
// return only sentinel errors.
type SurfaceConstructor func(g *surface.RotationGraph, cfg builderConfig) error

// ComplexConstructor is the simplicial counterpart of SurfaceConstructor.
type ComplexConstructor func(c *simplicial.Complex, cfg builderConfig) error

// BuildSurface creates a rotation graph with the given surface options,
// resolves the builder configuration, and applies all constructors in
// order. The first constructor error aborts the build; with
// WithValidation the finished graph must also pass IsValidRotationGraph.
// Complexity: O(len(bopts)) + Σ constructor costs (+ O(n) validation).
func BuildSurface(sopts []surface.Option, bopts []BuilderOption, cons ...SurfaceConstructor) (*surface.RotationGraph, error) {
	g := surface.NewRotationGraph(sopts...)
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildSurface: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildSurface: %w", err)
		}
	}

	if cfg.validate && !surface.IsValidRotationGraph(g) {
		return nil, fmt.Errorf("BuildSurface: validation: %w", ErrConstructFailed)
	}

	return g, nil
}

// BuildComplex creates a semi-simplicial complex, resolves the builder
// configuration, and applies all constructors in order. With
// WithValidation the finished complex must satisfy the semi-simplicial
// identity in dimension 2.
// Complexity: O(len(bopts)) + Σ constructor costs (+ O(T) validation).
func BuildComplex(bopts []BuilderOption, cons ...ComplexConstructor) (*simplicial.Complex, error) {
	c := simplicial.NewComplex()
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildComplex: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(c, cfg); err != nil {
			return nil, fmt.Errorf("BuildComplex: %w", err)
		}
	}

	if cfg.validate && !c.IsSemiSimplicial(2) {
		return nil, fmt.Errorf("BuildComplex: validation: %w", ErrConstructFailed)
	}

	return c, nil
}
