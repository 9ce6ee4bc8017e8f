// File: view.go
// Role: Non-mutating views of the graph (adjacency matrix snapshot and text rendering).
// Determinism:
//   - Rows and columns follow dense-index order.

package core

import (
	"fmt"
	"strings"
)

// cellWidth is the fixed column width used by String.
const cellWidth = 5

// Matrix returns a fresh V×V 0/1 adjacency matrix in dense-index order.
// The result is a copy; mutating it does not affect the Graph.
//
// Complexity: O(V²).
func (g *Graph) Matrix() [][]uint8 {
	n := len(g.names)
	out := make([][]uint8, n)
	for i := 0; i < n; i++ {
		out[i] = make([]uint8, n)
		g.adj[i].IterateOnes(func(j int) bool {
			out[i][j] = 1
			return true
		})
	}

	return out
}

// String renders the adjacency matrix with a header row of node names.
func (g *Graph) String() string {
	var sb strings.Builder
	sb.WriteString(strings.Repeat(" ", cellWidth))
	for _, name := range g.names {
		fmt.Fprintf(&sb, " %*s", cellWidth, name)
	}
	sb.WriteByte('\n')
	for i, row := range g.Matrix() {
		fmt.Fprintf(&sb, "%*s", cellWidth, g.names[i])
		for _, v := range row {
			fmt.Fprintf(&sb, " %*d", cellWidth, v)
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}
