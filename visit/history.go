package visit

import "github.com/katalvlaran/cavepaths/core"

// History is the ordered list of nodes on one in-progress branch.
// The zero value is an empty history.
type History struct {
	nodes   []string
	doubled bool // some small node already occurs twice or more
}

// NewHistory returns a history holding only start.
func NewHistory(start string) History {
	return History{nodes: []string{start}}
}

// HistoryOf builds a history from names, computing the doubled flag by a
// full scan.
func HistoryOf(names ...string) History {
	h := History{nodes: make([]string, len(names))}
	copy(h.nodes, names)

	seen := make(map[string]bool, len(names))
	for _, n := range names {
		if !core.IsSmall(n) {
			continue
		}
		if seen[n] {
			h.doubled = true
			break
		}
		seen[n] = true
	}

	return h
}

// Extend returns a new History with name appended. The receiver is left
// untouched and the two never share a backing array.
//
// Complexity: O(L) for the copy and the duplicate check.
func (h History) Extend(name string) History {
	next := History{
		nodes:   make([]string, len(h.nodes)+1),
		doubled: h.doubled,
	}
	copy(next.nodes, h.nodes)
	next.nodes[len(h.nodes)] = name
	if !next.doubled && core.IsSmall(name) && h.Count(name) > 0 {
		next.doubled = true
	}

	return next
}

// Last returns the most recent node, or "" for an empty history.
func (h History) Last() string {
	if len(h.nodes) == 0 {
		return ""
	}

	return h.nodes[len(h.nodes)-1]
}

// Len returns the number of nodes on the branch.
func (h History) Len() int { return len(h.nodes) }

// Count returns how many times name occurs on the branch.
func (h History) Count(name string) int {
	n := 0
	for _, x := range h.nodes {
		if x == name {
			n++
		}
	}

	return n
}

// Doubled reports whether any small node occurs twice or more.
func (h History) Doubled() bool { return h.doubled }

// Nodes returns a copy of the branch.
func (h History) Nodes() []string {
	out := make([]string, len(h.nodes))
	copy(out, h.nodes)

	return out
}
