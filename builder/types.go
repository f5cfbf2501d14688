// SPDX-License-Identifier: MIT
// Package: lvlsurf/builder
//
// types.go — sentinel errors, functional options, resolved configuration.
package builder

import "errors"

// Sentinel errors for builder operations.
var (
	// ErrTooFewVertices indicates a constructor parameter below its minimum.
	ErrTooFewVertices = errors.New("builder: too few vertices")

	// ErrBadDimensions indicates non-positive grid dimensions.
	ErrBadDimensions = errors.New("builder: grid dimensions must be positive")

	// ErrConstructFailed indicates a nil constructor or a failed
	// post-construction validation pass.
	ErrConstructFailed = errors.New("builder: construction failed")
)

// BuilderOption configures orchestration behavior before construction.
type BuilderOption func(*builderConfig)

// builderConfig is the immutable resolved configuration.
type builderConfig struct {
	// validate runs the relevant validity predicate after the last
	// constructor (IsValidRotationGraph for surfaces, IsSemiSimplicial
	// for complexes) and fails the build on violation.
	validate bool
}

// newBuilderConfig resolves options deterministically, left to right.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithValidation enables the post-build validity check. The check costs
// O(n) once per build, never per constructor.
func WithValidation() BuilderOption {
	return func(c *builderConfig) { c.validate = true }
}
