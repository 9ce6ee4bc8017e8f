// SPDX-License-Identifier: MIT
// Package: cavepaths/builder
//
// api.go - public entry points for the builder package.
//
// Design contract:
//   - One orchestrator per output form: BuildLines and BuildGraph.
//   - Options resolve into an immutable builderConfig (no global state).
//   - Determinism: same options, seed and constructor order ⇒ identical lines.
//   - Safety: never panic; return sentinel errors from constructors.

package builder

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/cavepaths/core"
)

// Constructor appends passages to ls using the resolved builderConfig.
// Constructors must validate parameters before emitting anything and must
// emit in a stable order.
type Constructor func(ls *lineSet, cfg builderConfig) error

// lineSet accumulates unique passages in emission order.
type lineSet struct {
	sep   string
	seen  map[[2]string]struct{}
	lines []string
}

func newLineSet(sep string) *lineSet {
	return &lineSet{sep: sep, seen: make(map[[2]string]struct{})}
}

// add records the passage a-b once. Reversed duplicates are dropped.
func (ls *lineSet) add(method, a, b string) error {
	if isLargePair(a, b) {
		return fmt.Errorf("%s: %s%s%s: %w", method, a, ls.sep, b, ErrLargeAdjacent)
	}
	key := [2]string{a, b}
	if b < a {
		key = [2]string{b, a}
	}
	if _, dup := ls.seen[key]; dup {
		return nil
	}
	ls.seen[key] = struct{}{}
	ls.lines = append(ls.lines, a+ls.sep+b)

	return nil
}

// isLargePair reports whether a passage a-b would join two large caves.
func isLargePair(a, b string) bool {
	return core.IsLarge(a) && core.IsLarge(b)
}

// name returns the cave name for node idx, upper-cased when the
// WithLargeEvery rule selects it.
func (c builderConfig) name(idx int) string {
	base := c.idFn(idx)
	if c.largeEvery > 0 && idx%c.largeEvery == 0 {
		return strings.ToUpper(base)
	}

	return base
}

// BuildLines resolves bopts and applies every constructor in order,
// returning the accumulated edge lines.
//
// Errors:
//   - Wraps constructor errors as "BuildLines: %w"; branch with errors.Is
//     against ErrTooFewVertices, ErrLargeAdjacent, ...
func BuildLines(bopts []BuilderOption, cons ...Constructor) ([]string, error) {
	cfg := newBuilderConfig(bopts...)
	lines, err := buildLines(cfg, cons)
	if err != nil {
		return nil, fmt.Errorf("BuildLines: %w", err)
	}

	return lines, nil
}

// BuildGraph generates lines like BuildLines and hands them to core.Build.
// The builder separator is applied first, so gopts may not override it
// with a different value without breaking the parse.
func BuildGraph(gopts []core.GraphOption, bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	cfg := newBuilderConfig(bopts...)
	lines, err := buildLines(cfg, cons)
	if err != nil {
		return nil, fmt.Errorf("BuildGraph: %w", err)
	}

	opts := make([]core.GraphOption, 0, len(gopts)+1)
	opts = append(opts, core.WithSeparator(cfg.sep))
	opts = append(opts, gopts...)
	g, err := core.Build(lines, opts...)
	if err != nil {
		return nil, fmt.Errorf("BuildGraph: %w", err)
	}

	return g, nil
}

func buildLines(cfg builderConfig, cons []Constructor) ([]string, error) {
	ls := newLineSet(cfg.sep)
	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(ls, cfg); err != nil {
			return nil, err
		}
	}

	return ls.lines, nil
}
