// SPDX-License-Identifier: MIT
// Package builder generates deterministic weighted graphs for tests,
// benchmarks and the `mstree generate` command.
//
// One orchestrator, BuildGraph(gopts, bopts, cons...), creates a core.Graph,
// resolves the builder options into an immutable config, and applies the
// constructors in order. Same inputs, options and seed ⇒ identical graph.
//
// Constructors:
//
//	Path(n)                 P_n, n ≥ 2
//	Cycle(n)                C_n, n ≥ 3
//	Star(n)                 center "Center" plus n-1 leaves, n ≥ 2
//	Complete(n)             K_n, n ≥ 1
//	RandomSparse(n, p)      each pair {i,j} independently with probability p
//	RandomConnected(n, m)   random spanning chain plus random extra arcs up to m total
//
// Options:
//
//	WithSeed / WithRand     RNG for the Random* constructors and weight draws
//	WithIDScheme            vertex ID generator (default "0","1",...)
//	WithWeightFn            custom weight generator
//	WithConstantWeight      every arc gets the same weight (default 1)
//	WithUniformWeight       continuous U[min,max)
//	WithIntWeight           integer U{min..max}, friendly to the text format
//
// Option constructors panic on meaningless input (nil functions, inverted
// ranges); constructors themselves return sentinel errors and never panic.
package builder
