// SPDX-License-Identifier: MIT
// Package: cavepaths/builder
//
// impl_random_sparse.go - Erdős–Rényi-like random cave networks.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices); p ∈ [0,1] (else ErrInvalidProbability).
//   - An RNG is required when 0 < p < 1 (else ErrNeedRandSource).
//   - Pairs of large caves are never sampled, so the result always has a
//     finite number of paths.
//
// Determinism:
//   - Trial order is i ascending, then j ascending (j > i).
//   - One rng.Float64() call per eligible pair, so a fixed seed fixes the output.

package builder

import "fmt"

const (
	methodRandomSparse      = "RandomSparse"
	minRandomSparseVertices = 1
	probMin                 = 0.0
	probMax                 = 1.0
)

// RandomSparse samples each eligible pair of nodes 0..n-1 independently
// with probability p.
func RandomSparse(n int, p float64) Constructor {
	return func(ls *lineSet, cfg builderConfig) error {
		// 1) Validate parameters before emitting anything.
		if n < minRandomSparseVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w",
				methodRandomSparse, n, minRandomSparseVertices, ErrTooFewVertices)
		}
		if p < probMin || p > probMax {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				methodRandomSparse, p, probMin, probMax, ErrInvalidProbability)
		}
		rng := cfg.rng
		if rng == nil && p > probMin && p < probMax {
			return fmt.Errorf("%s: rng is required: %w", methodRandomSparse, ErrNeedRandSource)
		}

		// 2) Resolve names once.
		names := make([]string, n)
		for i := range names {
			names[i] = cfg.name(i)
		}

		// 3) One Bernoulli trial per eligible pair.
		var keep bool
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if isLargePair(names[i], names[j]) {
					continue
				}
				switch {
				case rng == nil:
					keep = p == probMax
				default:
					keep = rng.Float64() < p
				}
				if !keep {
					continue
				}
				if err := ls.add(methodRandomSparse, names[i], names[j]); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
