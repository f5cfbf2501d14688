// Package perm implements finite permutation algebra over dense, 0-based
// index ranges. It is the arithmetic core behind vertex, edge and face
// tracing in lvlsurf/surface: σ, α and ϕ are all values of type Perm.
//
// What:
//
//   - Perm: one-line notation — p[i] is the image of index i
//   - Identity(n): the identity permutation on {0,…,n−1}
//   - Invert(p): single-pass inverse, p⁻¹[p[i]] = i
//   - Compose(p, q): function composition p∘q, **right-to-left** — q is
//     applied first, (p∘q)[i] = p[q[i]]. The convention is fixed here once
//     and used verbatim by every axiom in lvlsurf (σ∘α∘ϕ = id means
//     σ(α(ϕ(h))) = h).
//   - Cycles(p): disjoint cycle decomposition with deterministic order —
//     the smallest unvisited index starts each cycle, elements follow by
//     repeated application
//   - SortPerm(p): the permutation q with q[p[i]] = i; numerically equal
//     to Invert, kept as a named operation because face permutations are
//     defined as ϕ = sortperm(σ∘α) in the rotation-system literature
//   - IsPermutation, IsInvolution, Equal: cheap predicates
//
// Why:
//   - Recover corollas, edges and face boundaries as cycles of σ, α, ϕ
//   - Derive ϕ from σ and α without storing it
//   - Verify the involution and composition axioms of combinatorial maps
//
// Complexity:
//
//   - Invert / Compose / SortPerm: Time O(n), Space O(n)
//   - Cycles:                      Time O(n), Space O(n)
//   - IsPermutation/IsInvolution:  Time O(n), Space O(n)/O(1)
//
// Errors:
//
//   - ErrNotPermutation  input slice is not a bijection on {0,…,n−1}
//   - ErrLengthMismatch  composed operands have different lengths
package perm
