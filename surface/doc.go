// Package surface implements combinatorial surface structures on top of
// lvlsurf/halfedge and lvlsurf/perm: rotation graphs, rotation systems,
// combinatorial maps and hypermaps, plus vertex/edge/face tracing and the
// mesh-export boundary.
//
// What:
//
//   - RotationGraph: half-edge store + σ + a pairing column; α is derived
//     from the pairing, ϕ is derived on demand
//   - RotationSystem: σ and α stored directly; vertex identity is
//     recovered from the cycles of σ, no ownership column exists
//   - CombinatorialMap: σ, α, ϕ stored as independent generators subject
//     to σ∘α∘ϕ = id, with α an involution
//   - Hypermap: same generators, α unconstrained — TraceEdges simply
//     returns its cycles, of whatever length (no warning is raised;
//     IsInvolution is available when a caller wants the stricter law)
//   - TraceVertices / TraceEdges / TraceFaces: cycle decompositions of
//     σ, α, ϕ — one cycle per vertex, edge and face boundary
//   - EulerCharacteristic / Genus: V − E + F and (2 − χ)/2
//   - ExportMesh: (vertices, faces) descriptor for external renderers
//
// Construction is strictly two-phase for rotation structures: build
// corollas first (AddCorolla), then pair half-edges into edges
// (PairHalfEdges). Querying α or ϕ while any half-edge is unpaired fails
// with ErrIncompleteStructure. ϕ is never cached for rotation structures —
// mutating σ or α would invalidate it — and is recomputed per query as
// sortperm(σ∘α), the inverse of σ∘α under the right-to-left composition
// convention fixed in lvlsurf/perm.
//
// Axiom checking (σ∘α∘ϕ = id, α∘α = id) costs O(n) and is therefore
// opt-in: pass WithAxiomChecks to constructors to verify at build time,
// or call Validate explicitly at any point.
//
// Complexity:
//
//   - AddCorolla: O(valence); PairHalfEdges: O(1)
//   - Traces, ϕ derivation, validation: O(n) in total half-edges
//
// Errors:
//
//   - ErrIncompleteStructure  α queried while half-edges remain unpaired
//   - ErrAlreadyPaired        re-pairing a half-edge to a new partner
//   - ErrAxiomViolation       σ∘α∘ϕ = id fails for stored generators
//   - ErrNotInvolution        combinatorial map built with non-involutive α
//   - ErrGeneratorMismatch    generator permutations of different lengths
//   - ErrBadGeometry          coordinate count differs from vertex count
//   - halfedge.ErrIndexOutOfRange, halfedge.ErrBadValence, and
//     perm.ErrNotPermutation are passed through where they originate
package surface
