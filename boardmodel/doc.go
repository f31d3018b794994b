// Package boardmodel implements the board item model: items (pads, vias,
// traces, keep-outs, board outline, conduction areas) carrying nets,
// clearance class, fixed state, and layer span, owned by a Board that
// indexes them in a spatialindex.Tree and answers the obstacle, prohibition,
// and connectivity queries the rest of the engine depends on.
//
// Grounded on original_source/include/board/{Item.h,Pin.h,Via.h,Trace.h,
// RuleArea.h,BoardOutline.h,ConductionArea.h,RoutingBoard.h}. The Board
// type's map-of-items-plus-RWMutex shape and its id-assignment convention
// follow github.com/katalvlaran/lvlath's core.Graph (vertices/edges stored
// in maps keyed by a generated id, guarded by muVert/muEdgeAdj) - here one
// mutex covers the item catalog and the spatial index together since every
// mutation touches both atomically.
//
// Errors:
//
//	ErrEmptyBoundingBox - AddItem received an item with an empty box.
//	ErrInvalidNet        - AddItem received a negative net number.
package boardmodel

import "errors"

// Sentinel errors.
var (
	ErrEmptyBoundingBox = errors.New("boardmodel: item has an empty bounding box")
	ErrInvalidNet        = errors.New("boardmodel: net number must be non-negative")
)
