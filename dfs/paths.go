package dfs

import "sort"

// Path is a completed walk from the start node to the end node.
// Two paths are equal iff their elements are equal in order.
type Path []string

// String renders the path as comma-separated node names.
func (p Path) String() string { return JoinSig(p) }

// Equal reports element-wise equality.
func (p Path) Equal(q Path) bool { return Compare(p, q) == 0 }

// PathSet is a set of distinct paths keyed by full-sequence equality.
// The zero value is not usable; AllPaths returns initialized sets and
// NewPathSet builds one for tests or callers.
type PathSet struct {
	paths map[string]Path // signature → path
}

// NewPathSet returns a set holding copies of ps.
func NewPathSet(ps ...Path) *PathSet {
	s := &PathSet{paths: make(map[string]Path, len(ps))}
	for _, p := range ps {
		cp := make(Path, len(p))
		copy(cp, p)
		s.add(cp)
	}

	return s
}

// add records p, taking ownership of its backing array.
// It reports false if an equal path is already present.
func (s *PathSet) add(p Path) bool {
	sig := JoinSig(p)
	if _, ok := s.paths[sig]; ok {
		return false
	}
	s.paths[sig] = p

	return true
}

// Len returns the number of distinct paths.
func (s *PathSet) Len() int {
	if s == nil {
		return 0
	}

	return len(s.paths)
}

// Contains reports whether a path equal to p is in the set.
func (s *PathSet) Contains(p Path) bool {
	if s == nil {
		return false
	}
	_, ok := s.paths[JoinSig(p)]

	return ok
}

// Paths returns copies of every path, sorted lexicographically by element.
func (s *PathSet) Paths() []Path {
	out := make([]Path, 0, s.Len())
	if s == nil {
		return out
	}
	for _, p := range s.paths {
		cp := make(Path, len(p))
		copy(cp, p)
		out = append(out, cp)
	}
	sort.Slice(out, func(i, j int) bool { return Compare(out[i], out[j]) < 0 })

	return out
}

// Each calls fn for every path in unspecified order until fn returns false.
// fn must not modify p.
func (s *PathSet) Each(fn func(p Path) bool) {
	if s == nil {
		return
	}
	for _, p := range s.paths {
		if !fn(p) {
			return
		}
	}
}

// Equal reports whether both sets hold exactly the same paths.
func (s *PathSet) Equal(o *PathSet) bool {
	if s.Len() != o.Len() {
		return false
	}
	eq := true
	s.Each(func(p Path) bool {
		eq = o.Contains(p)
		return eq
	})

	return eq
}
