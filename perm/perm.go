package perm

// Identity returns the identity permutation on {0,…,n−1}.
// For n ≤ 0 it returns the empty permutation.
// Complexity: O(n).
func Identity(n int) Perm {
	if n <= 0 {
		return Perm{}
	}
	p := make(Perm, n)
	for i := range p {
		p[i] = i
	}

	return p
}

// IsPermutation reports whether p is a bijection on {0,…,len(p)−1}.
// Complexity: O(n) time, O(n) space.
func IsPermutation(p Perm) bool {
	seen := make([]bool, len(p))
	for _, v := range p {
		// Out-of-range image or repeated image both break bijectivity.
		if v < 0 || v >= len(p) || seen[v] {
			return false
		}
		seen[v] = true
	}

	return true
}

// Invert returns p⁻¹, the unique permutation with p⁻¹[p[i]] = i.
// Returns ErrNotPermutation if p is not a bijection.
// Complexity: O(n).
func Invert(p Perm) (Perm, error) {
	if !IsPermutation(p) {
		return nil, ErrNotPermutation
	}
	inv := make(Perm, len(p))
	for i, v := range p {
		inv[v] = i
	}

	return inv, nil
}

// SortPerm returns the permutation q such that q[p[i]] = i, i.e. the
// inverse of p. It is numerically identical to Invert and exists as a
// named operation because the face permutation of a rotation system is
// defined as ϕ = sortperm(σ∘α) in the literature this package models.
// Complexity: O(n).
func SortPerm(p Perm) (Perm, error) {
	return Invert(p)
}

// Compose returns p∘q under the right-to-left convention: q is applied
// first, (p∘q)[i] = p[q[i]]. Composition order is a classic source of
// bugs, so the convention is fixed here once; every axiom in lvlsurf
// reads it this way (σ∘α∘ϕ = id means σ(α(ϕ(h))) = h).
// Returns ErrLengthMismatch if len(p) != len(q),
// ErrNotPermutation if either operand is not a bijection.
// Complexity: O(n).
func Compose(p, q Perm) (Perm, error) {
	// 1. Both operands must act on the same index range.
	if len(p) != len(q) {
		return nil, ErrLengthMismatch
	}

	// 2. Validate bijectivity before touching output (no partial results).
	if !IsPermutation(p) || !IsPermutation(q) {
		return nil, ErrNotPermutation
	}

	// 3. Apply q, then p.
	r := make(Perm, len(p))
	for i := range r {
		r[i] = p[q[i]]
	}

	return r, nil
}

// Cycles decomposes p into its disjoint cycles. The decomposition is
// deterministic: the smallest unvisited index starts each new cycle, and
// elements within a cycle follow by repeated application of p. Fixed
// points appear as singleton cycles.
// Returns ErrNotPermutation if p is not a bijection.
// Complexity: O(n) time, O(n) space.
func Cycles(p Perm) ([][]int, error) {
	if !IsPermutation(p) {
		return nil, ErrNotPermutation
	}

	visited := make([]bool, len(p))
	cycles := make([][]int, 0)
	for start := 0; start < len(p); start++ {
		if visited[start] {
			continue
		}
		// Walk the orbit of start until it closes.
		cycle := []int{start}
		visited[start] = true
		for next := p[start]; next != start; next = p[next] {
			visited[next] = true
			cycle = append(cycle, next)
		}
		cycles = append(cycles, cycle)
	}

	return cycles, nil
}

// IsInvolution reports whether p∘p is the identity, i.e. p[p[i]] = i for
// every i. A non-permutation is never an involution.
// Complexity: O(n) time, O(1) extra space beyond the bijectivity check.
func IsInvolution(p Perm) bool {
	if !IsPermutation(p) {
		return false
	}
	for i, v := range p {
		if p[v] != i {
			return false
		}
	}

	return true
}
