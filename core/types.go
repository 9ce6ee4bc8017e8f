// Package core defines the cave Graph: an immutable undirected graph whose
// nodes are identified by name and stored under dense integer indices.
//
// This file declares Graph, GraphOption, the sentinel errors, and the
// small/large node classification.
//
// Errors:
//
//	ErrMalformedEdge - an input line is not exactly two names around the separator.
//	ErrUnknownNode   - a lookup referenced a name absent from the graph.
//	ErrEmptySeparator - WithSeparator was given an empty string.
package core

import (
	"errors"

	"github.com/soniakeys/bits"
)

// Sentinel errors for core graph operations.
var (
	// ErrMalformedEdge indicates an input line did not parse into exactly two
	// non-empty node names around the separator.
	ErrMalformedEdge = errors.New("core: malformed edge")

	// ErrUnknownNode indicates a lookup referenced a node name never seen during Build.
	ErrUnknownNode = errors.New("core: unknown node")

	// ErrEmptySeparator indicates WithSeparator was given an empty string.
	ErrEmptySeparator = errors.New("core: empty edge separator")
)

// DefaultSeparator splits an edge line into its two node names.
const DefaultSeparator = "-"

// GraphOption configures how Build parses edge lines.
type GraphOption func(g *Graph)

// WithSeparator replaces DefaultSeparator. An empty separator makes Build
// fail with ErrEmptySeparator.
func WithSeparator(sep string) GraphOption {
	return func(g *Graph) { g.sep = sep }
}

// Graph is the cave network.
//
// index maps a node name to its dense index; names is the reverse lookup.
// adj[i] is a bitset row over all indices: bit j is set iff i and j are
// adjacent. Rows are symmetric. A Graph never changes after Build returns,
// so concurrent readers need no locking.
type Graph struct {
	sep string // edge separator used while building

	index map[string]int // node name → dense index, first-seen order
	names []string       // dense index → node name
	adj   []bits.Bits    // adjacency rows, len(adj) == len(names)
	edges int            // distinct undirected edges (self-edge counts once)
}

// IsSmall reports whether name is a small node: non-empty and with no
// upper-case letter. Start and end are small by this rule.
//
// Complexity: O(len(name)).
func IsSmall(name string) bool {
	if name == "" {
		return false
	}
	for i := 0; i < len(name); i++ {
		if name[i] >= 'A' && name[i] <= 'Z' {
			return false
		}
	}

	return true
}

// IsLarge reports whether name contains an upper-case letter.
func IsLarge(name string) bool {
	return name != "" && !IsSmall(name)
}
