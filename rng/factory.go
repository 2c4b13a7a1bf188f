// SPDX-License-Identifier: MIT
// Package rng - built-in seed factories.
//
// Both factories hash the seed string first so that short, human-typed
// seeds ("abc", "1") still spread across the whole state space.

package rng

import (
	"hash/fnv"
	"math/rand"
)

var (
	_ Factory = MathRand
	_ Factory = Mulberry32
)

// MathRand returns a math/rand stream keyed by FNV-64a(seed).
// Complexity: O(len(seed)) setup, O(1) per draw.
func MathRand(seed string) func() float64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(seed))
	r := rand.New(rand.NewSource(int64(h.Sum64())))

	return r.Float64
}

// Mulberry32 returns a Mulberry32 stream keyed by FNV-32a(seed).
// Each draw yields a multiple of 2^-32 in [0,1).
func Mulberry32(seed string) func() float64 {
	h := fnv.New32a()
	_, _ = h.Write([]byte(seed))
	state := h.Sum32()

	return func() float64 {
		state += 0x6D2B79F5
		t := state
		t = (t ^ (t >> 15)) * (t | 1)
		t ^= t + (t^(t>>7))*(t|61)
		return float64(t^(t>>14)) / 4294967296.0
	}
}
