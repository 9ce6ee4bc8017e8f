// File: methods_adjacent.go
// Role: Neighborhood APIs (Neighbors, NeighborIndices, HasEdge).
// Determinism:
//   - Neighbors() and NeighborIndices() return ascending dense-index order.
//     The order has no contract beyond reproducibility; treat results as sets.
// AI-HINT (file):
//   - Symmetry holds by construction: Build sets adj[a][b] and adj[b][a] together.

package core

// Neighbors returns the names adjacent to name.
//
// Implementation:
//   - Stage 1: Resolve name to its dense index (ErrUnknownNode).
//   - Stage 2: Iterate the set bits of the adjacency row and map them back to names.
//
// Behavior highlights:
//   - Unique names; callers must not depend on the order.
//   - The returned slice is freshly allocated and owned by the caller.
//
// Errors:
//   - ErrUnknownNode: name was never seen during Build.
//
// Complexity:
//   - Time O(V/64 + d), Space O(d), where d is the degree of name.
func (g *Graph) Neighbors(name string) ([]string, error) {
	i, err := g.Index(name)
	if err != nil {
		return nil, err
	}
	row := g.adj[i]
	out := make([]string, 0, row.OnesCount())
	row.IterateOnes(func(j int) bool {
		out = append(out, g.names[j])
		return true
	})

	return out, nil
}

// NeighborIndices returns the dense indices adjacent to index i.
//
// Errors:
//   - ErrUnknownNode: i is outside [0, Len()).
func (g *Graph) NeighborIndices(i int) ([]int, error) {
	if _, err := g.Name(i); err != nil {
		return nil, err
	}

	return g.adj[i].Slice(), nil
}

// HasEdge reports whether a and b are adjacent. Unknown names yield false.
//
// Complexity:
//   - Time O(1), Space O(1).
func (g *Graph) HasEdge(a, b string) bool {
	i, ok := g.index[a]
	if !ok {
		return false
	}
	j, ok := g.index[b]
	if !ok {
		return false
	}

	return g.adj[i].Bit(j) == 1
}
