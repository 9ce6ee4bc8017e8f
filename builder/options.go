// SPDX-License-Identifier: MIT
// Package: cavepaths/builder
//
// options.go - functional options for the builder package.
//
// Contract:
//   • Option constructors validate and panic on meaningless inputs.
//     Generators themselves never panic.
//   • Determinism is explicit: randomness only via WithSeed or WithRand.

package builder

import (
	"math/rand"

	"github.com/katalvlaran/cavepaths/core"
)

// BuilderOption customizes a builderConfig before generation starts.
type BuilderOption func(*builderConfig)

// builderConfig aggregates all knobs used by constructors.
// It is passed by value, so constructors cannot leak changes.
type builderConfig struct {
	idFn       IDFn       // index → base name
	rng        *rand.Rand // nil means no randomness
	sep        string     // edge separator in emitted lines
	largeEvery int        // 0 = no forced large caves
	start, end string     // endpoint names for Entrance/Exit
}

// newBuilderConfig applies opts over deterministic defaults, in order.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn:  LetterIDFn,
		sep:   core.DefaultSeparator,
		start: "start",
		end:   "end",
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithIDScheme sets the node naming function.
// Panics on nil.
func WithIDScheme(fn IDFn) BuilderOption {
	if fn == nil {
		panic("builder: WithIDScheme(nil)")
	}
	return func(c *builderConfig) {
		c.idFn = fn
	}
}

// WithRand provides an explicit RNG for stochastic constructors.
// Panics on nil; prefer WithSeed for reproducible runs.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithSeparator sets the separator written between the two names of a line.
// BuildGraph passes the same separator to core.Build.
// Panics on "".
func WithSeparator(sep string) BuilderOption {
	if sep == "" {
		panic("builder: WithSeparator(\"\")")
	}
	return func(c *builderConfig) {
		c.sep = sep
	}
}

// WithLargeEvery upper-cases the name of every node whose index is a
// multiple of k, making it a large cave. k == 0 disables the rule.
// Panics if k < 0.
func WithLargeEvery(k int) BuilderOption {
	if k < 0 {
		panic("builder: WithLargeEvery(k < 0)")
	}
	return func(c *builderConfig) {
		c.largeEvery = k
	}
}

// WithEndpoints renames the nodes used by Entrance and Exit.
// Panics if either name is empty.
func WithEndpoints(start, end string) BuilderOption {
	if start == "" || end == "" {
		panic("builder: WithEndpoints with empty name")
	}
	return func(c *builderConfig) {
		c.start, c.end = start, end
	}
}
