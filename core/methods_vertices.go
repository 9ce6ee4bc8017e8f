// File: methods_vertices.go
// Role: Node identity queries (name ↔ dense index, counts, degree).
//
// Determinism:
//   - Nodes() returns names in dense-index (first-seen) order.
//
// Concurrency:
//   - Graph is immutable after Build; every method here is a pure read.
package core

import "fmt"

// HasNode reports whether name was seen during Build (empty name ⇒ false).
//
// Complexity:
//   - Time O(1), Space O(1).
func (g *Graph) HasNode(name string) bool {
	_, ok := g.index[name]

	return ok
}

// Index returns the dense index assigned to name.
//
// Errors:
//   - ErrUnknownNode: name was never seen during Build.
func (g *Graph) Index(name string) (int, error) {
	i, ok := g.index[name]
	if !ok {
		return -1, fmt.Errorf("%w: %q", ErrUnknownNode, name)
	}

	return i, nil
}

// Name returns the node name stored under dense index i.
//
// Errors:
//   - ErrUnknownNode: i is outside [0, Len()).
func (g *Graph) Name(i int) (string, error) {
	if i < 0 || i >= len(g.names) {
		return "", fmt.Errorf("%w: index %d out of range [0,%d)", ErrUnknownNode, i, len(g.names))
	}

	return g.names[i], nil
}

// Nodes returns a copy of all node names in dense-index order.
//
// Complexity:
//   - Time O(V), Space O(V).
func (g *Graph) Nodes() []string {
	out := make([]string, len(g.names))
	copy(out, g.names)

	return out
}

// Len returns the number of distinct nodes.
func (g *Graph) Len() int { return len(g.names) }

// EdgeCount returns the number of distinct undirected edges.
func (g *Graph) EdgeCount() int { return g.edges }

// Separator returns the separator the graph was built with.
func (g *Graph) Separator() string { return g.sep }

// Degree returns the number of distinct neighbors of name.
// A self-edge contributes one neighbor (the node itself).
//
// Errors:
//   - ErrUnknownNode: name was never seen during Build.
//
// Complexity:
//   - Time O(V/64), Space O(1).
func (g *Graph) Degree(name string) (int, error) {
	i, err := g.Index(name)
	if err != nil {
		return 0, err
	}

	return g.adj[i].OnesCount(), nil
}
