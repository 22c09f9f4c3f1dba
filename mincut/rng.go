// Package mincut - RNG utilities for the randomized contraction solver.
//
// This file centralizes deterministic random generation for Karger trials.
//
// Goals:
//   - Determinism: same seed ⇒ identical trial outcomes across platforms
//     and across worker counts.
//   - Encapsulation: a single RNG factory; no time-based sources anywhere.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. Each trial gets its own derived
//     stream via trialRNG, so trials never share generator state.
package mincut

import "math/rand"

// defaultRNGSeed is the fixed "zero" seed used when callers pass seed==0.
// The value is arbitrary but stable to keep reproducible defaults.
const defaultRNGSeed int64 = 1

// normalizeSeed applies the seed==0 ⇒ defaultRNGSeed policy.
//
// Complexity: O(1).
func normalizeSeed(seed int64) int64 {
	if seed == 0 {
		return defaultRNGSeed
	}

	return seed
}

// deriveSeed mixes a parent seed and a stream identifier into a new 64-bit
// seed using a SplitMix64-style finalizer, eliminating correlation between
// consecutive trial streams.
//
// Complexity: O(1).
func deriveSeed(parent int64, stream uint64) int64 {
	// Canonical SplitMix64 multipliers/finalizer (Vigna 2014).
	var x uint64
	x = uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31

	return int64(x)
}

// trialRNG returns the independent deterministic RNG stream for one trial.
// Keyed only by (seed, trial index), so a trial's outcome is identical
// whether it runs sequentially or on a worker pool.
//
// Complexity: O(1).
func trialRNG(seed int64, trial int) *rand.Rand {
	return rand.New(rand.NewSource(deriveSeed(normalizeSeed(seed), uint64(trial))))
}
