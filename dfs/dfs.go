package dfs

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/katalvlaran/cavepaths/bfs"
	"github.com/katalvlaran/cavepaths/core"
	"github.com/katalvlaran/cavepaths/visit"
)

// pathWalker encapsulates state during enumeration.
// res is the only state shared between branches; each branch owns its History.
type pathWalker struct {
	graph  *core.Graph  // underlying graph
	policy visit.Policy // revisit rule for small nodes
	opts   Options      // enumeration options
	res    *PathSet     // result collector
}

// AllPaths returns every distinct path from the start node to the end node
// of g that the policy allows. Endpoints default to "start" and "end".
//
// The start node is never re-entered and the end node is never expanded:
// arriving there records the branch as a completed path.
//
// On ErrPathLimit, ErrDepthLimit, cancellation, or a hook error the
// returned set holds the paths recorded before the abort.
func AllPaths(g *core.Graph, p visit.Policy, opts ...Option) (*PathSet, error) {
	// 1. Validate input graph
	if g == nil {
		return nil, ErrGraphNil
	}

	// 2. Apply options
	dopts := DefaultOptions()
	var fn Option
	for _, fn = range opts {
		fn(&dopts)
	}

	// 3. Endpoints must exist before any search work
	for _, name := range []string{dopts.Start, dopts.End} {
		if !g.HasNode(name) {
			return nil, fmt.Errorf("%w: %q not in graph", ErrMissingEndpoint, name)
		}
	}

	res := NewPathSet()
	log := dopts.Logger.With(
		zap.Stringer("policy", p),
		zap.String("start", dopts.Start),
		zap.String("end", dopts.End),
	)

	// 4. Nothing to enumerate when end lies in another component
	reachable, err := bfs.Reachable(dopts.Ctx, g, dopts.Start, dopts.End)
	if err != nil {
		return res, fmt.Errorf("dfs: reachability: %w", err)
	}
	if !reachable {
		log.Debug("end not reachable from start")
		return res, nil
	}

	// 5. Walk
	w := &pathWalker{graph: g, policy: p, opts: dopts, res: res}
	began := time.Now()
	log.Debug("enumeration started", zap.Int("nodes", g.Len()), zap.Int("edges", g.EdgeCount()))
	err = w.walk(visit.NewHistory(dopts.Start))
	log.Debug("enumeration finished",
		zap.Int("paths", res.Len()),
		zap.Duration("elapsed", time.Since(began)),
		zap.Error(err),
	)

	return res, err
}

// Count returns the number of distinct paths AllPaths would produce.
func Count(g *core.Graph, p visit.Policy, opts ...Option) (int, error) {
	set, err := AllPaths(g, p, opts...)
	if err != nil {
		return 0, err
	}

	return set.Len(), nil
}

// walk expands the branch h. It records h when it ends at the end node,
// otherwise it recurses into every neighbor the policy allows, each with
// its own extended copy of h.
func (w *pathWalker) walk(h visit.History) error {
	// 1. Cancellation check between branch expansions
	select {
	case <-w.opts.Ctx.Done():
		return w.opts.Ctx.Err()
	default:
	}

	// 2. Arrival: record and stop this branch
	current := h.Last()
	if current == w.opts.End {
		return w.record(Path(h.Nodes()))
	}

	// 3. Fetch neighbors once
	nbs, err := w.graph.Neighbors(current)
	if err != nil {
		return fmt.Errorf("dfs: Neighbors(%q): %w", current, err)
	}

	// 4. Explore each legal neighbor
	var next string
	for _, next = range nbs {
		if !w.policy.AllowsFrom(w.opts.Start, next, h) {
			continue
		}
		if w.opts.MaxDepth > 0 && h.Len()+1 > w.opts.MaxDepth {
			return fmt.Errorf("%w: %d nodes after %s", ErrDepthLimit, w.opts.MaxDepth, JoinSig(h.Nodes()))
		}
		if err = w.walk(h.Extend(next)); err != nil {
			return err
		}
	}

	return nil
}

// record adds p to the result, enforcing MaxPaths and calling OnPath.
func (w *pathWalker) record(p Path) error {
	if w.res.Contains(p) {
		return nil
	}
	if w.opts.MaxPaths > 0 && w.res.Len() >= w.opts.MaxPaths {
		return fmt.Errorf("%w: more than %d paths", ErrPathLimit, w.opts.MaxPaths)
	}
	w.res.add(p)
	if w.opts.OnPath != nil {
		if err := w.opts.OnPath(p); err != nil {
			return fmt.Errorf("dfs: OnPath hook for %s: %w", p, err)
		}
	}

	return nil
}
