// Package rules holds the board-independent design rules: the clearance
// matrix (class x class x layer, always even units), net classes (per-layer
// trace half-width, active-layer mask, via rule), and via rules (ordered
// padstack-by-layer-range preference lists).
//
// Grounded on original_source/include/rules/{ClearanceMatrix.h,Net.h,
// NetClass.h,ViaRule.h,ViaInfo.h}, rendered with the sentinel-error
// convention of github.com/katalvlaran/lvlath's dijkstra package.
package rules

import "errors"

// Sentinel errors.
var (
	// ErrOddClearance indicates a clearance value was not even: clearance
	// matrix values must be non-negative and even.
	ErrOddClearance = errors.New("rules: clearance value must be even")
	// ErrNegativeClearance indicates a negative clearance value.
	ErrNegativeClearance = errors.New("rules: clearance value must be non-negative")
	// ErrClassIndex indicates a clearance-class index outside [0, N).
	ErrClassIndex = errors.New("rules: clearance class index out of range")
	// ErrLayerIndex indicates a layer index outside [0, L).
	ErrLayerIndex = errors.New("rules: layer index out of range")
	// ErrNoViaFits indicates ViaRule.Select found no padstack spanning the
	// requested layer range.
	ErrNoViaFits = errors.New("rules: no via in rule spans the requested layer range")
)

// SafetyMargin is the fixed additional spacing added to a clearance lookup
// performed "with margin" during routing; reporting/DRC lookups never add
// it.
const SafetyMargin = 200 // 0.02mm in internal units
