package router

import (
	"github.com/tracequest/tracequest/heuristic"
	"github.com/tracequest/tracequest/maze"
	"github.com/tracequest/tracequest/rules"
)

// Config parameterises one connection attempt.
type Config struct {
	Net           int
	PassNumber    int
	RipupBudget   int64
	MaxIterations int
	AnglePolicy   maze.AnglePolicy
	NetClass      *rules.NetClass
	LayerCosts    []heuristic.LayerCost
	RipupConfig   maze.RipupConfig
	RoomMargin    int64 // how far the candidate room extends past the source/dest union box
}

// Result is the outcome of one connection attempt.
type Result struct {
	Routed        bool
	Path          []maze.PointLayer
	TraceIDs      []uint32
	ViaIDs        []uint32
	RippedItemIDs []uint32
	Iterations    int
}
