// Package dfs enumerates every path between two nodes of a core.Graph by
// depth-first backtracking, under a visit.Policy that restricts how often
// small nodes may be re-entered.
//
// What:
//
//   - AllPaths(g, policy, opts...): the full PathSet from "start" to "end".
//   - Count(g, policy, opts...): its size, the number most callers want.
//   - Path / PathSet: completed walks and a set keyed by full-sequence
//     equality (not identity); Paths() returns them sorted.
//
// How:
//
//	walk(h):
//	  if last(h) == end: record h; return
//	  for n in neighbors(last(h)):
//	    if policy.Allows(n, h): walk(h + [n])
//
// Every recursive call owns its History (copy-on-branch), so no two live
// branches share a mutable buffer. The PathSet is the only shared state and
// receives exactly one insert per completed branch.
//
// Termination:
//
//   - "start" is never re-entered, so no branch returns to its origin.
//   - Each small node has a fixed budget (1, or 2 for the one doubled node
//     under OneSmallTwice), spent monotonically along a branch.
//   - In a well-formed cave no two large nodes are adjacent, so any cycle
//     through large nodes passes a small node and stops once its budget
//     is spent.
//
// For graphs that break the last rule, or that are merely huge, callers can
// bound the work with WithMaxDepth / WithMaxPaths (reported as
// ErrDepthLimit / ErrPathLimit, never silent truncation) or cancel through
// WithContext, which is checked before every branch expansion.
//
// Before searching, AllPaths runs a bfs reachability pass and returns an
// empty set at once when "end" lies in another component.
//
// Options:
//
//   - WithContext(ctx)    cancellation between branch expansions.
//   - WithStart(name)     start node (default "start").
//   - WithEnd(name)       end node (default "end").
//   - WithMaxPaths(n)     abort with ErrPathLimit past n distinct paths.
//   - WithMaxDepth(n)     abort with ErrDepthLimit past n nodes on a branch.
//   - WithOnPath(fn)      hook per recorded path; error aborts.
//   - WithLogger(l)       zap logger for debug events.
//
// Errors:
//
//   - ErrGraphNil          graph pointer is nil
//   - ErrMissingEndpoint   start or end not in the graph (checked before any search)
//   - ErrPathLimit         more paths than WithMaxPaths allows
//   - ErrDepthLimit        branch longer than WithMaxDepth allows
//   - context.Canceled / context.DeadlineExceeded
//   - hook errors          wrapped from OnPath
//
// Complexity:
//
//	Time and memory are proportional to the total length of all recorded
//	paths, which can grow combinatorially; the active stack holds at most
//	one History per depth level.
package dfs
