// SPDX-License-Identifier: MIT
// Package: mstree/builder
//
// errors.go — sentinel errors for the builder package.
//
// Callers branch with errors.Is; constructors attach their method name and
// parameters with %w.

package builder

import "errors"

// ErrTooFewVertices indicates that n is below the constructor's minimum.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a probability outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates a stochastic constructor ran without WithSeed/WithRand.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrTooManyArcs indicates a requested arc count beyond what a simple graph on n vertices holds.
var ErrTooManyArcs = errors.New("builder: too many arcs requested")

// ErrConstructFailed indicates a nil constructor or an unrecoverable construction step.
var ErrConstructFailed = errors.New("builder: construction failed")
