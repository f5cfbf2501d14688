// Package perm defines the Perm type and sentinel errors for finite
// permutation algebra. See doc.go for the package overview.
package perm

import "errors"

// Sentinel errors for permutation operations.
var (
	// ErrNotPermutation indicates a slice that is not a bijection on {0,…,n−1}:
	// an entry out of range, or a repeated image.
	ErrNotPermutation = errors.New("perm: slice is not a permutation of 0..n-1")

	// ErrLengthMismatch indicates composed operands of different lengths.
	ErrLengthMismatch = errors.New("perm: operand lengths differ")
)

// Perm is a permutation of {0,…,n−1} in one-line notation: p[i] is the
// image of index i. The zero value (nil) is the empty permutation.
//
// Perm values are plain slices; callers that hand a Perm to another
// structure must not mutate it afterwards. All functions in this package
// treat their inputs as read-only and allocate fresh outputs.
type Perm []int

// Len returns the size of the underlying index range. Complexity: O(1).
func (p Perm) Len() int { return len(p) }

// Clone returns an independent copy of p. Complexity: O(n).
func (p Perm) Clone() Perm {
	if p == nil {
		return nil
	}
	q := make(Perm, len(p))
	copy(q, p)

	return q
}

// Equal reports whether p and q are identical permutations. Complexity: O(n).
func (p Perm) Equal(q Perm) bool {
	if len(p) != len(q) {
		return false
	}
	for i := range p {
		if p[i] != q[i] {
			return false
		}
	}

	return true
}
