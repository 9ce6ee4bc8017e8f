// Package visit decides which node a path may legally enter next.
//
// A Policy is a tagged variant over one predicate signature,
//
//	Allows(candidate string, h History) bool
//
// evaluated fresh at every step of a depth-first search. Two policies exist:
//
//   - SingleVisit:   small nodes appear at most once on a path.
//   - OneSmallTwice: one small node, chosen freely along the way, may appear
//     twice; every other small node appears at most once.
//
// In both, "start" is never re-entered and large nodes are unrestricted.
// Reaching "end" is always legal the first time; the enumerator stops a
// branch there, so "end" is never expanded.
//
// History is a copy-on-branch value: Extend returns a new History with its
// own backing array, so sibling branches never observe each other's steps.
// History also carries a running "doubled" flag (a small node already
// appears twice), which makes OneSmallTwice O(L) per decision instead of
// rescanning for duplicates. HistoryOf computes the same flag by a full scan.
package visit
