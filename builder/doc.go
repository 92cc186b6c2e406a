// Package builder generates deterministic network topologies as
// core.Description values: paths, cycles, stars, complete meshes, grids and
// random sparse networks.
//
// Constructors are composed with Build; each adds nodes 1..n (repeated IDs
// are declared once) and emits edges in a stable, documented order:
//
//	desc, err := builder.Build(
//		[]builder.Option{builder.WithSeed(42), builder.WithWeightFn(builder.UniformWeight(1, 20))},
//		builder.Cycle(6),
//	)
//	g, err := core.Build(desc, core.WithDirected(false))
//
// Determinism: the same options, seed and constructor order yield identical
// descriptions. Stochastic constructors require an RNG (WithSeed or WithRand).
package builder
