// SPDX-License-Identifier: MIT
// Package: mstree/builder
//
// impl_random.go - stochastic constructors RandomSparse and RandomConnected.
//
// Determinism:
//   - Stable vertex order: i asc.
//   - Stable trial order and a single RNG (cfg.rng) shared by topology and
//     weight draws, so a fixed seed fixes the whole graph.

package builder

import (
	"fmt"

	"github.com/katalvlaran/mstree/core"
)

const (
	minRandomSparseVertices    = 1
	minRandomConnectedVertices = 1
	probMin                    = 0.0
	probMax                    = 1.0
)

// RandomSparse returns a Constructor that samples an Erdős–Rényi-like graph:
// every unordered pair {i,j}, i<j, becomes an arc with probability p.
// The RNG is required unless p ∈ {0,1}.
// Complexity: O(n²) Bernoulli trials.
func RandomSparse(n int, p float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minRandomSparseVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w",
				MethodRandomSparse, n, minRandomSparseVertices, ErrTooFewVertices)
		}
		if p < probMin || p > probMax {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				MethodRandomSparse, p, probMin, probMax, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > probMin && p < probMax {
			return fmt.Errorf("%s: %w", MethodRandomSparse, ErrNeedRandSource)
		}
		if err := addVertices(g, cfg, MethodRandomSparse, n); err != nil {
			return err
		}

		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				var hit bool
				switch {
				case p == probMin:
					hit = false
				case p == probMax:
					hit = true
				default:
					hit = cfg.rng.Float64() < p
				}
				if !hit {
					continue
				}
				if err := addArc(g, cfg, MethodRandomSparse, cfg.idFn(i), cfg.idFn(j)); err != nil {
					return err
				}
			}
		}

		return nil
	}
}

// RandomConnected returns a Constructor for a connected graph with n vertices
// and m arcs: a spanning chain over a random permutation of the vertices,
// then m-(n-1) distinct extra pairs chosen at random.
//
// Requires the RNG, n ≥ 1 and n-1 ≤ m ≤ n(n-1)/2.
// Complexity: O(n + m) expected while m is well below n(n-1)/2.
func RandomConnected(n, m int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minRandomConnectedVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w",
				MethodRandomConnected, n, minRandomConnectedVertices, ErrTooFewVertices)
		}
		maxArcs := n * (n - 1) / 2
		if m < n-1 {
			return fmt.Errorf("%s: m=%d < n-1=%d: %w", MethodRandomConnected, m, n-1, ErrTooFewVertices)
		}
		if m > maxArcs {
			return fmt.Errorf("%s: m=%d > %d: %w", MethodRandomConnected, m, maxArcs, ErrTooManyArcs)
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: %w", MethodRandomConnected, ErrNeedRandSource)
		}
		if err := addVertices(g, cfg, MethodRandomConnected, n); err != nil {
			return err
		}

		type pair struct{ u, v int }
		seen := make(map[pair]struct{}, m)
		key := func(u, v int) pair {
			if u > v {
				u, v = v, u
			}
			return pair{u, v}
		}

		// 1) Spanning chain over a shuffled order guarantees connectivity.
		perm := cfg.rng.Perm(n)
		for i := 1; i < n; i++ {
			u, v := perm[i-1], perm[i]
			seen[key(u, v)] = struct{}{}
			if err := addArc(g, cfg, MethodRandomConnected, cfg.idFn(u), cfg.idFn(v)); err != nil {
				return err
			}
		}

		// 2) Extra distinct pairs. Dense requests fall back to a full scan.
		extra := m - (n - 1)
		if extra > maxArcs/2 {
			var rest []pair
			for i := 0; i < n; i++ {
				for j := i + 1; j < n; j++ {
					if _, ok := seen[pair{i, j}]; !ok {
						rest = append(rest, pair{i, j})
					}
				}
			}
			cfg.rng.Shuffle(len(rest), func(a, b int) { rest[a], rest[b] = rest[b], rest[a] })
			for _, p := range rest[:extra] {
				if err := addArc(g, cfg, MethodRandomConnected, cfg.idFn(p.u), cfg.idFn(p.v)); err != nil {
					return err
				}
			}
			return nil
		}
		for extra > 0 {
			u, v := cfg.rng.Intn(n), cfg.rng.Intn(n)
			if u == v {
				continue
			}
			k := key(u, v)
			if _, dup := seen[k]; dup {
				continue
			}
			seen[k] = struct{}{}
			if err := addArc(g, cfg, MethodRandomConnected, cfg.idFn(u), cfg.idFn(v)); err != nil {
				return err
			}
			extra--
		}

		return nil
	}
}
