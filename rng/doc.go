// Package rng supplies the pluggable random source used by the
// diamond-square generator.
//
// A Factory turns a seed string into a zero-argument stream of floats in
// [0,1). Supplying a Factory makes runs reproducible: the resolved seed is
// kept on the Source so a caller can replay a run by passing the same seed
// and the same Factory again. Without a Factory the Source falls back to the
// process-wide math/rand stream and reports Reproducible() == false.
//
// Built-in factories:
//
//   - MathRand:   FNV-64a(seed) → math/rand source (Go's additive lagged Fibonacci).
//   - Mulberry32: FNV-32a(seed) → 32-bit Mulberry32 stream (small, portable).
//
// Concurrency:
//
//	A Source is NOT goroutine-safe; give each generator its own.
package rng
