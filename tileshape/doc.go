// Package tileshape implements a convex tile shape algebra: a single Tile
// type tagged as Box, Octagon, or Polygon, supporting intersection,
// half-plane cuts, border-edge enumeration, and touching-edge detection.
// This is the algebraic substrate expansion rooms and doors are built from.
//
// Grounded on original_source/include/geometry/{TileShape.h, ConvexPolygon.h,
// IntOctagon.h, IntBox.h}: the Kind tag and dispatch-on-tag structure follow
// the "collapse into tagged variants" design, in the style of
// github.com/katalvlaran/lvlath's core.Graph - one flat struct with an
// internal discriminant rather than an interface hierarchy.
//
// Errors:
//
//	ErrInvalidPolygon - fewer than 3 distinct, non-collinear vertices after
//	                    cleanup.
//	ErrDimensionMismatch - an operation that requires 2-D input received a
//	                    degenerate shape.
package tileshape

import "errors"

// ErrInvalidPolygon indicates a polygon could not be built from its vertex
// list (fewer than 3 vertices survive collinear/duplicate removal).
var ErrInvalidPolygon = errors.New("tileshape: invalid polygon")

// ErrDimensionMismatch indicates an operation required a 2-D tile but
// received one of lower dimension.
var ErrDimensionMismatch = errors.New("tileshape: dimension mismatch")
