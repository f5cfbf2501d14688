package surface

import (
	"fmt"

	"github.com/katalvlaran/lvlsurf/perm"
)

// TraceVertices returns the cycles of σ — one cycle per vertex, listing
// its half-edges in rotation order. The decomposition is deterministic
// (see perm.Cycles), so cycle i is vertex i for structures whose corollas
// were created in index order.
// Complexity: O(n).
func TraceVertices(s Surface) ([][]int, error) {
	cycles, err := perm.Cycles(s.Sigma())
	if err != nil {
		return nil, fmt.Errorf("TraceVertices: %w", err)
	}

	return cycles, nil
}

// TraceEdges returns the cycles of α — pairs for rotation structures and
// combinatorial maps, cycles of arbitrary length for hypermaps.
// Returns ErrIncompleteStructure while the pairing phase is unfinished.
// Complexity: O(n).
func TraceEdges(s Surface) ([][]int, error) {
	a, err := s.Alpha()
	if err != nil {
		return nil, fmt.Errorf("TraceEdges: %w", err)
	}
	cycles, err := perm.Cycles(a)
	if err != nil {
		return nil, fmt.Errorf("TraceEdges: %w", err)
	}

	return cycles, nil
}

// TraceFaces returns the cycles of ϕ — one cycle per face, listing the
// half-edges along the face boundary in traversal order.
// Returns ErrIncompleteStructure while the pairing phase is unfinished.
// Complexity: O(n).
func TraceFaces(s Surface) ([][]int, error) {
	p, err := s.Phi()
	if err != nil {
		return nil, fmt.Errorf("TraceFaces: %w", err)
	}
	cycles, err := perm.Cycles(p)
	if err != nil {
		return nil, fmt.Errorf("TraceFaces: %w", err)
	}

	return cycles, nil
}

// EulerCharacteristic computes χ = V − E + F from the three traces.
// Returns ErrIncompleteStructure while the pairing phase is unfinished.
// Complexity: O(n).
func EulerCharacteristic(s Surface) (int, error) {
	vs, err := TraceVertices(s)
	if err != nil {
		return 0, err
	}
	es, err := TraceEdges(s)
	if err != nil {
		return 0, err
	}
	fs, err := TraceFaces(s)
	if err != nil {
		return 0, err
	}

	return len(vs) - len(es) + len(fs), nil
}

// Genus computes g = (2 − χ)/2. The value is the topological genus only
// for connected structures with involutive α (orientable closed surfaces);
// for anything else it is just the same arithmetic on χ.
// Complexity: O(n).
func Genus(s Surface) (int, error) {
	chi, err := EulerCharacteristic(s)
	if err != nil {
		return 0, err
	}

	return (2 - chi) / 2, nil
}
