// Package heightmap is a small toolkit for generating pseudo-terrain
// heightmaps.
//
// Under the hood, everything is organized under three subpackages:
//
//	grid/           square 2^n+1 container of optional values, read-only View, Summary
//	rng/            seedable random sources and built-in seed factories
//	diamondsquare/  the Diamond-Square generator: seeding, displacement, hooks, smoothing
//
// Quick ASCII example of the first subdivision level:
//
//	nw ─── n ─── ne
//	│      │      │
//	w ─── mid ─── e
//	│      │      │
//	sw ─── s ─── se
//
// corners are drawn first, mid is their mean, and n/e/s/w average two
// corners with the centre.
//
//	go get github.com/katalvlaran/heightmap
package heightmap
