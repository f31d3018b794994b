// Package geom provides the integer geometry primitives shared by every
// other package in this module: points and vectors, axis-aligned boxes,
// circles, and the exact predicates (side-of-line, cross product) that the
// tile shape algebra and maze search rely on for correctness.
//
// All coordinates are signed fixed-point integers in an internal unit where
// 1 mm = 10000 units. The legal coordinate range is bounded by CritInt so
// that the cross products computed by SideOf (and the one addition usually
// chained onto them) fit in 64 bits with headroom; Validate rejects any
// point or box whose coordinates exceed that bound.
//
// Errors:
//
//	ErrOutOfRange - a coordinate exceeds the critical-integer bound.
package geom

import "errors"

// ErrOutOfRange indicates a coordinate magnitude exceeds CritInt.
var ErrOutOfRange = errors.New("geom: coordinate out of range")

// CritInt is the critical integer bound C = 2^25: any coordinate whose
// absolute value exceeds this is refused at ingest, guaranteeing that cross
// products (two coordinate products plus one addition) fit safely inside
// int64.
const CritInt int64 = 1 << 25

// UnitsPerMM is the internal fixed-point scale: 1 mm = 10000 units.
const UnitsPerMM int64 = 10000
