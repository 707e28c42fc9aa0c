// SPDX-License-Identifier: MIT
// Package: mstree/builder
//
// impl_topology.go - deterministic topologies: Path, Cycle, Star, Complete.
//
// Contract:
//   - Vertices are added via cfg.idFn in ascending index order (Star adds
//     CenterVertexID first).
//   - Arcs are emitted in a stable, documented order; weights come from
//     cfg.weightFn(cfg.rng) in that order.

package builder

import (
	"fmt"

	"github.com/katalvlaran/mstree/core"
)

const (
	minPathNodes     = 2
	minCycleNodes    = 3
	minStarNodes     = 2
	minCompleteNodes = 1
)

// Path returns a Constructor for P_n: arcs (i-1)—i for i = 1..n-1.
// Complexity: O(n).
func Path(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", MethodPath, n, minPathNodes, ErrTooFewVertices)
		}
		if err := addVertices(g, cfg, MethodPath, n); err != nil {
			return err
		}
		for i := 1; i < n; i++ {
			if err := addArc(g, cfg, MethodPath, cfg.idFn(i-1), cfg.idFn(i)); err != nil {
				return err
			}
		}

		return nil
	}
}

// Cycle returns a Constructor for C_n: the path arcs followed by (n-1)—0.
// Complexity: O(n).
func Cycle(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", MethodCycle, n, minCycleNodes, ErrTooFewVertices)
		}
		if err := addVertices(g, cfg, MethodCycle, n); err != nil {
			return err
		}
		for i := 1; i < n; i++ {
			if err := addArc(g, cfg, MethodCycle, cfg.idFn(i-1), cfg.idFn(i)); err != nil {
				return err
			}
		}

		// Close the ring.
		return addArc(g, cfg, MethodCycle, cfg.idFn(n-1), cfg.idFn(0))
	}
}

// Star returns a Constructor for a hub CenterVertexID joined to n-1 leaves
// with IDs idFn(1)..idFn(n-1).
// Complexity: O(n).
func Star(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", MethodStar, n, minStarNodes, ErrTooFewVertices)
		}
		if err := g.AddVertex(CenterVertexID); err != nil {
			return fmt.Errorf("%s: AddVertex(%s): %w", MethodStar, CenterVertexID, err)
		}
		for i := 1; i < n; i++ {
			if err := addArc(g, cfg, MethodStar, CenterVertexID, cfg.idFn(i)); err != nil {
				return err
			}
		}

		return nil
	}
}

// Complete returns a Constructor for K_n: arcs i—j for i < j, i then j ascending.
// Complexity: O(n²).
func Complete(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", MethodComplete, n, minCompleteNodes, ErrTooFewVertices)
		}
		if err := addVertices(g, cfg, MethodComplete, n); err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if err := addArc(g, cfg, MethodComplete, cfg.idFn(i), cfg.idFn(j)); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
