package maze

import (
	"github.com/tracequest/tracequest/boardmodel"
	"github.com/tracequest/tracequest/geom"
)

// RipupConfig holds the per-pass ripup cost parameters.
type RipupConfig struct {
	Base       int64
	Multiplier int64
	Limit      int64
}

// DefaultRipupConfig returns the stated defaults: base 10, multiplier 5,
// limit 5000 (internal units of cost, not board distance).
func DefaultRipupConfig() RipupConfig {
	return RipupConfig{Base: 10, Multiplier: 5, Limit: 5000}
}

// Cost returns the cost of ripping up it during pass passNumber (1-based):
// Base + Multiplier*passNumber*item_length_normalised, capped at Limit.
// item_length_normalised is the Manhattan length (width plus height) of the
// item's bounding box in whole millimetres (minimum 1, so a via-sized item
// still costs something).
func Cost(it *boardmodel.Item, passNumber int, cfg RipupConfig) int64 {
	box := it.BoundingBox()
	length := geom.ManhattanDistance(box.Lo, box.Hi) / geom.UnitsPerMM
	if length == 0 {
		length = 1
	}

	cost := cfg.Base + cfg.Multiplier*int64(passNumber)*length
	if cost > cfg.Limit {
		cost = cfg.Limit
	}

	return cost
}

// Ripupable reports whether it may be traversed (at a cost) rather than
// blocking the search outright: routable items that are not user- or
// system-fixed.
func Ripupable(it *boardmodel.Item) bool {
	return it.Routable()
}
