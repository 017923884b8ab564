// Package testutil provides testing utilities for vecmath.
//
// This package is intended for use in tests and benchmarks only.
// It provides a seeded, thread-safe RNG for generating random fixed
// vectors in property tests.
//
// # Random Vector Generation
//
//	rng := testutil.NewRNG(seed)
//	v := testutil.UniformVector[float64, [3]float64](rng, -1, 1)
//	vs := testutil.UniformVectors[int, [2]int](rng, 100, -50, 50)
package testutil
