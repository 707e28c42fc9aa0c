// SPDX-License-Identifier: MIT
// Package: mstree/builder
//
// api.go - public entry point of the builder package.

package builder

import (
	"fmt"

	"github.com/katalvlaran/mstree/core"
)

// Canonical constructor names, used as error prefixes.
const (
	MethodPath            = "Path"
	MethodCycle           = "Cycle"
	MethodStar            = "Star"
	MethodComplete        = "Complete"
	MethodRandomSparse    = "RandomSparse"
	MethodRandomConnected = "RandomConnected"
)

// CenterVertexID is the hub of Star.
const CenterVertexID = "Center"

// Constructor applies a deterministic graph mutation using the resolved
// builderConfig. Constructors validate parameters first and return sentinel
// errors; they never panic.
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildGraph creates a new core.Graph with gopts, resolves bopts and applies
// cons in order. The first constructor error is returned wrapped as
// "BuildGraph: %w"; no partial graph is returned.
//
// Complexity: O(len(bopts)) plus the cost of each constructor.
func BuildGraph(gopts []core.GraphOption, bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	g := core.NewGraph(gopts...)
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}

// addVertices inserts IDs for indices 0..n-1 in ascending order.
func addVertices(g *core.Graph, cfg builderConfig, method string, n int) error {
	for i := 0; i < n; i++ {
		id := cfg.idFn(i)
		if err := g.AddVertex(id); err != nil {
			return fmt.Errorf("%s: AddVertex(%s): %w", method, id, err)
		}
	}

	return nil
}

// addArc draws a weight and adds u—v.
func addArc(g *core.Graph, cfg builderConfig, method, u, v string) error {
	w := cfg.weightFn(cfg.rng)
	if _, err := g.AddArc(u, v, w); err != nil {
		return fmt.Errorf("%s: AddArc(%s—%s, w=%g): %w", method, u, v, w, err)
	}

	return nil
}
