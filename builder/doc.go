// Package builder generates synthetic cave networks as "A-B" edge lines.
//
// Generators are deterministic: the same constructors, options and seed
// always produce the same lines in the same order, so the output can be fed
// to core.Build in benchmarks and golden tests.
//
// Entry points:
//
//	BuildLines(bopts, cons...) ([]string, error)
//	BuildGraph(gopts, bopts, cons...) (*core.Graph, error)
//
// Topologies over nodes 0..n-1:
//
//	Path(n), Cycle(n), Star(n), Complete(n), RandomSparse(n, p)
//
// Endpoints and explicit passages:
//
//	Entrance(i)  // "start-<node i>"
//	Exit(i)      // "<node i>-end"
//	Connect(a, b)
//
// Node names come from an IDFn (lower-case letters by default). With
// WithLargeEvery(k), every node whose index is a multiple of k is upper-cased
// and becomes a large cave.
//
// Two adjacent large caves admit infinitely many paths, so every constructor
// except RandomSparse rejects such a passage with ErrLargeAdjacent.
// RandomSparse simply never samples one.
package builder
