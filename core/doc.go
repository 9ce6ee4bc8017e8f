// Package core provides the cave Graph: an immutable, undirected graph built
// once from a list of "A-B" edge lines.
//
// Every distinct node name receives a dense integer index in first-seen
// order; a reverse lookup maps indices back to names. Adjacency is stored as
// one fixed-size bitset row per node, so the graph is effectively a V×V
// boolean matrix:
//
//	adj[i].Bit(j) == 1  ⇔  i and j are adjacent  ⇔  adj[j].Bit(i) == 1
//
// Node classes:
//
//   - Small: the name has no upper-case letter ("start", "end", "b").
//     Small nodes carry revisit restrictions during path enumeration.
//   - Large: the name has at least one upper-case letter ("A", "HN").
//
// The class is computed on demand by IsSmall / IsLarge and never stored.
//
// Construction:
//
//	Build(lines []string, opts ...GraphOption) (*Graph, error)
//	Parse(r io.Reader, opts ...GraphOption) (*Graph, error)
//	WithSeparator(sep string)            // default "-"
//
// Queries:
//
//	Neighbors(name) ([]string, error)    // O(V/64 + d), treat as a set
//	NeighborIndices(i) ([]int, error)
//	HasNode(name) bool                   // O(1)
//	HasEdge(a, b) bool                   // O(1)
//	Index(name) / Name(i)
//	Nodes() []string, Len(), EdgeCount(), Degree(name)
//	Matrix() [][]uint8, String()
//
// Errors:
//
//	ErrMalformedEdge  – a line is not exactly two letter-only names around the separator
//	ErrUnknownNode    – lookup of a name (or index) the graph does not contain
//	ErrEmptySeparator – WithSeparator("")
//
// A Graph is never mutated after Build returns, so it may be shared freely
// between goroutines and outlives any number of enumeration calls.
package core
