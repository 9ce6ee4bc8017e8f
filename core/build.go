// File: build.go
// Role: Graph construction from "A-B" edge lines.
// Determinism:
//   - Dense indices are assigned in first-seen order (left name before right name).
// AI-HINT (file):
//   - Build is the only constructor; the returned Graph is never mutated afterwards.
//   - Blank lines are ignored, every other malformed line aborts with ErrMalformedEdge.

package core

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/soniakeys/bits"
)

// edgeLine is one parsed input line, kept between the two build passes.
type edgeLine struct {
	from, to int
}

// Build constructs a Graph from edge lines of the form "A-B".
//
// Implementation:
//   - Stage 1: Apply options and validate the separator.
//   - Stage 2: Parse every line, register names in first-seen order.
//   - Stage 3: Allocate one bitset row per node and set both directions of each edge.
//
// Behavior highlights:
//   - Surrounding whitespace is trimmed; empty lines carry no edge and are skipped.
//   - Names must be non-empty runs of ASCII letters.
//   - Duplicate edges are recorded once.
//
// Errors:
//   - ErrEmptySeparator: separator option was "".
//   - ErrMalformedEdge: wrapped with the 1-based line number and the offending text.
//
// Complexity:
//   - Time O(L + V²/64) where L is total input length, Space O(V²/64).
func Build(edges []string, opts ...GraphOption) (*Graph, error) {
	g := &Graph{
		sep:   DefaultSeparator,
		index: make(map[string]int),
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.sep == "" {
		return nil, ErrEmptySeparator
	}

	// Stage 2: parse and register names.
	parsed := make([]edgeLine, 0, len(edges))
	var (
		from, to string
		err      error
	)
	for i, raw := range edges {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}
		if from, to, err = g.splitEdge(line); err != nil {
			return nil, fmt.Errorf("line %d %q: %w", i+1, line, err)
		}
		parsed = append(parsed, edgeLine{from: g.intern(from), to: g.intern(to)})
	}

	// Stage 3: the node count is final, so rows can be sized once.
	n := len(g.names)
	g.adj = make([]bits.Bits, n)
	for i := range g.adj {
		g.adj[i] = bits.New(n)
	}
	for _, e := range parsed {
		if g.adj[e.from].Bit(e.to) == 1 {
			continue
		}
		g.adj[e.from].SetBit(e.to, 1)
		g.adj[e.to].SetBit(e.from, 1)
		g.edges++
	}

	return g, nil
}

// Parse reads newline-separated edge lines from r and calls Build.
// Read errors are returned as-is.
func Parse(r io.Reader, opts ...GraphOption) (*Graph, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("core: read edges: %w", err)
	}

	return Build(lines, opts...)
}

// splitEdge splits line into exactly two valid names.
func (g *Graph) splitEdge(line string) (string, string, error) {
	parts := strings.Split(line, g.sep)
	if len(parts) != 2 {
		return "", "", fmt.Errorf("%w: want 2 names separated by %q, got %d part(s)",
			ErrMalformedEdge, g.sep, len(parts))
	}
	for _, name := range parts {
		if !validName(name) {
			return "", "", fmt.Errorf("%w: invalid node name %q", ErrMalformedEdge, name)
		}
	}

	return parts[0], parts[1], nil
}

// intern returns the dense index of name, assigning the next one if unseen.
func (g *Graph) intern(name string) int {
	if i, ok := g.index[name]; ok {
		return i
	}
	i := len(g.names)
	g.index[name] = i
	g.names = append(g.names, name)

	return i
}

// validName reports whether s is a non-empty run of ASCII letters.
func validName(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if (c < 'a' || c > 'z') && (c < 'A' || c > 'Z') {
			return false
		}
	}

	return true
}
