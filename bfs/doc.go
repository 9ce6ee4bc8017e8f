// Package bfs provides breadth-first search over a core.Graph, returning
// hop distances, parent links, and visit order.
//
// What
//
//   - Explore nodes in non-decreasing distance (edge count) from a start node.
//   - Returns a BFSResult containing:
//   - Order: visit sequence
//   - Depth: map from node → distance (edges) from start
//   - Parent: map from node → its predecessor in the BFS tree
//   - OnVisit hook (may abort with an error), neighbor filtering, MaxDepth.
//
// Why
//
//   - Reachable(ctx, g, from, to) lets the path enumerator skip searches
//     whose end node lies in another component.
//   - PathTo gives a fewest-hops route for diagnostics.
//
// Determinism
//
//	core.Graph.Neighbors returns names in dense-index order and BFS enqueues
//	them in that order, so the visit sequence is reproducible for a given input.
//
// Complexity (V = nodes, E = edges)
//
//   - Time:   O(V²/64 + E) (one bitset row scan per visited node)
//   - Memory: O(V)
//
// Options
//
//   - DefaultOptions(): background Context, no-op hook, no depth limit, no filtering.
//   - WithContext(ctx):       set a custom context for cancellation.
//   - WithMaxDepth(d):        stop exploring beyond depth d (>0); 0 means no limit.
//   - WithFilterNeighbor(fn): skip edges for which fn(curr,neighbor)==false.
//   - WithOnVisit(fn):        hook during visit; returning error aborts BFS.
//
// Errors
//
//   - ErrGraphNil             if the graph pointer is nil.
//   - ErrStartVertexNotFound  if the start node does not exist.
//   - ErrOptionViolation      if invalid Option (e.g. negative MaxDepth).
//   - ErrNeighbors            if core.Graph.Neighbors fails for any node.
//   - Wrapped user-supplied hook errors from OnVisit.
package bfs
