// SPDX-License-Identifier: MIT
// Package: mstree/builder
//
// config.go — internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • idFn     = decimalID ("0","1","2",...)
//   • rng      = nil (no randomness unless seeded)
//   • weightFn = constant DefaultArcWeight

package builder

import (
	"math/rand"
	"strconv"
)

// DefaultArcWeight is the weight of every arc when no weight option is given.
const DefaultArcWeight = 1.0

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors.
type builderConfig struct {
	idFn     func(int) string
	rng      *rand.Rand
	weightFn WeightFn
}

// newBuilderConfig applies opts in order over the defaults; last wins.
// Complexity: O(len(opts)).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn:     decimalID,
		rng:      nil,
		weightFn: ConstantWeightFn(DefaultArcWeight),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// decimalID renders an index as a base-10 string.
func decimalID(i int) string {
	return strconv.Itoa(i)
}
