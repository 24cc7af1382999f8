// Package testutil provides testing utilities for tsigo.
//
// This package is intended for use in tests and benchmarks only.
// It provides a seeded random number generator and a random mesh builder
// so round-trip and benchmark inputs stay reproducible across runs.
//
// # Random Mesh Generation
//
//	rng := testutil.NewRNG(42)
//	m := rng.GenerateMesh(1000, 2000, 50, 10)
package testutil
