// SPDX-License-Identifier: MIT
// Package: cavepaths/builder
//
// impl_topology.go - deterministic topologies over nodes 0..n-1.
//
// Determinism:
//   - Passages are emitted for i ascending, then j ascending (j > i).
//   - Names come from cfg.name, so WithIDScheme and WithLargeEvery apply.

package builder

import "fmt"

// Method tags prefixed to constructor errors.
const (
	methodPath     = "Path"
	methodCycle    = "Cycle"
	methodStar     = "Star"
	methodComplete = "Complete"
	methodEntrance = "Entrance"
	methodExit     = "Exit"
	methodConnect  = "Connect"

	minPathNodes     = 2
	minCycleNodes    = 3
	minStarNodes     = 2
	minCompleteNodes = 2
)

// Path chains node 0 to node n-1.
func Path(n int) Constructor {
	return func(ls *lineSet, cfg builderConfig) error {
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}
		for i := 0; i+1 < n; i++ {
			if err := ls.add(methodPath, cfg.name(i), cfg.name(i+1)); err != nil {
				return err
			}
		}

		return nil
	}
}

// Cycle is Path(n) plus the closing passage n-1 → 0.
func Cycle(n int) Constructor {
	return func(ls *lineSet, cfg builderConfig) error {
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}
		for i := 0; i < n; i++ {
			if err := ls.add(methodCycle, cfg.name(i), cfg.name((i+1)%n)); err != nil {
				return err
			}
		}

		return nil
	}
}

// Star joins hub node 0 to leaves 1..n-1.
// With WithLargeEvery(n) only the hub is large, which makes every leaf
// reachable from every other through it.
func Star(n int) Constructor {
	return func(ls *lineSet, cfg builderConfig) error {
		if n < minStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewVertices)
		}
		hub := cfg.name(0)
		for i := 1; i < n; i++ {
			if err := ls.add(methodStar, hub, cfg.name(i)); err != nil {
				return err
			}
		}

		return nil
	}
}

// Complete joins every pair of nodes. The path count grows factorially
// with n, so keep n small.
func Complete(n int) Constructor {
	return func(ls *lineSet, cfg builderConfig) error {
		if n < minCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteNodes, ErrTooFewVertices)
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if err := ls.add(methodComplete, cfg.name(i), cfg.name(j)); err != nil {
					return err
				}
			}
		}

		return nil
	}
}

// Entrance joins the start cave to node i.
func Entrance(i int) Constructor {
	return func(ls *lineSet, cfg builderConfig) error {
		if i < 0 {
			return fmt.Errorf("%s: index %d: %w", methodEntrance, i, ErrConstructFailed)
		}

		return ls.add(methodEntrance, cfg.start, cfg.name(i))
	}
}

// Exit joins node i to the end cave.
func Exit(i int) Constructor {
	return func(ls *lineSet, cfg builderConfig) error {
		if i < 0 {
			return fmt.Errorf("%s: index %d: %w", methodExit, i, ErrConstructFailed)
		}

		return ls.add(methodExit, cfg.name(i), cfg.end)
	}
}

// Connect emits the literal passage a-b. Names are validated by core.Build,
// not here.
func Connect(a, b string) Constructor {
	return func(ls *lineSet, cfg builderConfig) error {
		return ls.add(methodConnect, a, b)
	}
}
