// Package cavepaths enumerates every distinct path through a cave network,
// the undirected graph of caves joined by passages read from "A-B" lines.
//
// 🚀 What is cavepaths?
//
//	A small, immutable-graph library and CLI that brings together:
//		• Graph construction: dense node indices, bitset adjacency rows
//		• Visit policies: single-visit and one-small-twice revisit rules
//		• Path enumeration: depth-first search with copy-on-branch history
//		• Reachability: BFS pre-check and fewest-hop routes
//		• Configuration: YAML file, environment overrides, validation
//
// Cave classes:
//
//   - Small: the name has no upper-case letter ("start", "end", "b").
//   - Large: the name has an upper-case letter ("A", "HN"); revisits are free.
//
// Under the hood, everything is organized under these subpackages:
//
//	core/          Graph, Build/Parse, node classes, matrix views
//	visit/         Policy and the per-path History it judges
//	dfs/           AllPaths, Count, Path and PathSet
//	bfs/           breadth-first order, depths and Reachable
//	builder/       synthetic cave generators for tests and benchmarks
//	config/        Config loading and validation
//	cmd/cavepaths/ the command-line front end
//
// Quick ASCII example:
//
//	       start
//	      /     \
//	 c───A───────b───d
//	      \     /
//	        end
//
//	has 10 single-visit paths and 36 one-small-twice paths.
//
//	go install github.com/katalvlaran/cavepaths/cmd/cavepaths@latest
package cavepaths
