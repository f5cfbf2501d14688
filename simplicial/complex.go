package simplicial

import "fmt"

// AddVertex appends one vertex and returns its index.
// Complexity: O(1).
func (c *Complex) AddVertex() int {
	c.nv++

	return c.nv - 1
}

// AddVertices appends n vertices and returns their indices in order.
// For n ≤ 0 it returns nil and changes nothing.
// Complexity: O(n).
func (c *Complex) AddVertices(n int) []int {
	if n <= 0 {
		return nil
	}
	ids := make([]int, n)
	for i := range ids {
		ids[i] = c.AddVertex()
	}

	return ids
}

// AddSortedEdge appends the edge {u,v} stored as (min, max) and returns
// its index. A repeated pair appends a parallel edge; only the first
// occurrence enters the canonical registry used by GlueTriangle and
// EdgeSet.
// Returns ErrDegenerateSimplex for u == v and ErrIndexOutOfRange for an
// unknown vertex; nothing is committed on failure.
// Complexity: O(log E).
func (c *Complex) AddSortedEdge(u, v int) (int, error) {
	// 1. Validate before writing.
	if u < 0 || u >= c.nv || v < 0 || v >= c.nv {
		return 0, fmt.Errorf("AddSortedEdge(%d,%d): %w", u, v, ErrIndexOutOfRange)
	}
	if u == v {
		return 0, fmt.Errorf("AddSortedEdge(%d,%d): %w", u, v, ErrDegenerateSimplex)
	}

	// 2. Normalize to the sorted-edge invariant src < tgt.
	if u > v {
		u, v = v, u
	}

	// 3. Append; register the pair on first sight only.
	e := len(c.edges)
	c.edges = append(c.edges, [2]int{u, v})
	key := pairKey{u, v}
	if _, found := c.edgeIndex.Get(key); !found {
		c.edgeIndex.Put(key, e)
	}

	return e, nil
}

// AddSortedEdges is the bulk, elementwise form of AddSortedEdge.
// Returns ErrLengthMismatch for slices of different lengths; on any
// element error the edges appended so far in this call are kept — each
// element is its own operation, per the append-only lifecycle.
// Complexity: O(k log E).
func (c *Complex) AddSortedEdges(us, vs []int) ([]int, error) {
	if len(us) != len(vs) {
		return nil, fmt.Errorf("AddSortedEdges: %w", ErrLengthMismatch)
	}
	ids := make([]int, 0, len(us))
	for i := range us {
		e, err := c.AddSortedEdge(us[i], vs[i])
		if err != nil {
			return ids, fmt.Errorf("AddSortedEdges[%d]: %w", i, err)
		}
		ids = append(ids, e)
	}

	return ids, nil
}

// findOrAddEdge returns the registered edge for the sorted pair (u,v),
// appending it first if absent. Callers guarantee u < v and bounds.
func (c *Complex) findOrAddEdge(u, v int) int {
	if e, found := c.edgeIndex.Get(pairKey{u, v}); found {
		return e.(int)
	}
	e := len(c.edges)
	c.edges = append(c.edges, [2]int{u, v})
	c.edgeIndex.Put(pairKey{u, v}, e)

	return e
}

// GlueTriangle records the triangle on vertices {a,b,c}, creating or
// reusing its three boundary edges. The vertex triple is canonicalized by
// sorting before any write, so gluing any permutation of the same set
// produces an identical stored structure. With sorted vertices
// (v₀,v₁,v₂), boundary i is the edge excluding vᵢ:
// ∂₂(t,0)={v₁,v₂}, ∂₂(t,1)={v₀,v₂}, ∂₂(t,2)={v₀,v₁}.
// Returns ErrIndexOutOfRange for an unknown vertex and
// ErrDegenerateSimplex for a repeated one; nothing is committed on failure.
// Complexity: O(log E).
func (x *Complex) GlueTriangle(a, b, c int) (int, error) {
	// 1. Validate before writing.
	for _, v := range [3]int{a, b, c} {
		if v < 0 || v >= x.nv {
			return 0, fmt.Errorf("GlueTriangle(%d,%d,%d): %w", a, b, c, ErrIndexOutOfRange)
		}
	}
	if a == b || b == c || a == c {
		return 0, fmt.Errorf("GlueTriangle(%d,%d,%d): %w", a, b, c, ErrDegenerateSimplex)
	}

	// 2. Canonicalize: sort the triple (three comparisons suffice).
	if a > b {
		a, b = b, a
	}
	if b > c {
		b, c = c, b
	}
	if a > b {
		a, b = b, a
	}

	return x.glueCanonical(a, b, c), nil
}

// GlueSortedTriangle is GlueTriangle for callers that already hold the
// triple in strictly ascending order; the result is identical.
// Returns ErrUnsortedSimplex when a < b < c does not hold (a repeated
// vertex included) and ErrIndexOutOfRange for an unknown vertex.
// Complexity: O(log E).
func (x *Complex) GlueSortedTriangle(a, b, c int) (int, error) {
	for _, v := range [3]int{a, b, c} {
		if v < 0 || v >= x.nv {
			return 0, fmt.Errorf("GlueSortedTriangle(%d,%d,%d): %w", a, b, c, ErrIndexOutOfRange)
		}
	}
	if !(a < b && b < c) {
		return 0, fmt.Errorf("GlueSortedTriangle(%d,%d,%d): %w", a, b, c, ErrUnsortedSimplex)
	}

	return x.glueCanonical(a, b, c), nil
}

// glueCanonical writes the triangle tables for a validated, sorted triple.
// Edges are created in boundary order ∂₂(t,0), ∂₂(t,1), ∂₂(t,2), keeping
// edge creation order a function of the vertex set alone.
func (x *Complex) glueCanonical(v0, v1, v2 int) int {
	e0 := x.findOrAddEdge(v1, v2)
	e1 := x.findOrAddEdge(v0, v2)
	e2 := x.findOrAddEdge(v0, v1)

	t := len(x.triEdges)
	x.triEdges = append(x.triEdges, [3]int{e0, e1, e2})
	x.triVerts = append(x.triVerts, [3]int{v0, v1, v2})

	return t
}

// NumVertices returns the vertex count. Complexity: O(1).
func (c *Complex) NumVertices() int { return c.nv }

// NumEdges returns the edge count, parallel edges included. Complexity: O(1).
func (c *Complex) NumEdges() int { return len(c.edges) }

// NumTriangles returns the triangle count. Complexity: O(1).
func (c *Complex) NumTriangles() int { return len(c.triEdges) }

// EulerCharacteristic computes χ = V − E + T over the stored tables.
// Complexity: O(1).
func (c *Complex) EulerCharacteristic() int {
	return c.nv - len(c.edges) + len(c.triEdges)
}

// EdgeSet returns the distinct sorted edge pairs in ascending order,
// straight off the ordered registry — no per-call sort.
// Complexity: O(E).
func (c *Complex) EdgeSet() [][2]int {
	out := make([][2]int, 0, c.edgeIndex.Size())
	c.edgeIndex.Each(func(key, _ interface{}) {
		out = append(out, [2]int(key.(pairKey)))
	})

	return out
}

// Equal reports structural equality: same vertex count and identical
// edge and triangle tables, irrespective of which gluing order reached
// the state.
// Complexity: O(V + E + T).
func (c *Complex) Equal(o *Complex) bool {
	if o == nil || c.nv != o.nv ||
		len(c.edges) != len(o.edges) || len(c.triEdges) != len(o.triEdges) {
		return false
	}
	for e := range c.edges {
		if c.edges[e] != o.edges[e] {
			return false
		}
	}
	for t := range c.triEdges {
		if c.triEdges[t] != o.triEdges[t] || c.triVerts[t] != o.triVerts[t] {
			return false
		}
	}

	return true
}

// Clone returns a deep copy sharing no state with the original.
// Complexity: O(V + E + T).
func (c *Complex) Clone() *Complex {
	out := NewComplex()
	out.nv = c.nv
	out.edges = append(out.edges, c.edges...)
	out.triEdges = append(out.triEdges, c.triEdges...)
	out.triVerts = append(out.triVerts, c.triVerts...)
	c.edgeIndex.Each(func(key, value interface{}) {
		out.edgeIndex.Put(key, value)
	})

	return out
}
