// SPDX-License-Identifier: MIT
// Package: cavepaths/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Constructors attach the method name and parameters via %w.
//   • Option constructors (WithX) panic on meaningless input; generators never do.

package builder

import "errors"

// ErrTooFewVertices indicates that a size parameter is below the minimum the
// requested topology needs.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a probability outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates that a stochastic constructor ran without
// WithSeed or WithRand.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrLargeAdjacent indicates a passage between two large caves.
var ErrLargeAdjacent = errors.New("builder: passage joins two large caves")

// ErrConstructFailed indicates a structural failure such as a nil
// constructor or a node index outside the topology.
var ErrConstructFailed = errors.New("builder: construction failed")
