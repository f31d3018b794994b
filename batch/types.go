package batch

import (
	"github.com/tracequest/tracequest/heuristic"
	"github.com/tracequest/tracequest/maze"
)

// Connection is one incomplete two-pad edge to route: FromItemID and
// ToItemID are pad or via items sharing Net.
type Connection struct {
	Net        int
	FromItemID uint32
	ToItemID   uint32
}

// Outcome classifies what became of one connection attempt.
type Outcome int

const (
	OutcomeRouted Outcome = iota
	OutcomeFailed
	OutcomeSkipped
	OutcomeInsertError
	OutcomeAlreadyConnected
)

// String renders the Outcome for diagnostics.
func (o Outcome) String() string {
	switch o {
	case OutcomeRouted:
		return "Routed"
	case OutcomeFailed:
		return "Failed"
	case OutcomeSkipped:
		return "Skipped"
	case OutcomeInsertError:
		return "InsertError"
	case OutcomeAlreadyConnected:
		return "AlreadyConnected"
	default:
		return "Unknown"
	}
}

// ConnectionResult records the outcome of one connection across however
// many passes it took.
type ConnectionResult struct {
	Connection    Connection
	Outcome       Outcome
	Pass          int
	TraceIDs      []uint32
	ViaIDs        []uint32
	RippedItemIDs []uint32
}

// Config parameterises a batch run, mirroring spec's routing configuration
// options table.
type Config struct {
	MaxPasses               int
	StartRipupCost          int64
	WithPreferredDirections bool
	PullTightAccuracy       int64
	RemoveUnconnectedVias   bool
	AnglePolicy             maze.AnglePolicy
	LayerCosts              []heuristic.LayerCost
	MaxIterationsPerConn    int
	Stop                    func() bool
}

// DefaultConfig returns the stated option defaults.
func DefaultConfig() Config {
	return Config{
		MaxPasses:               100,
		StartRipupCost:          100,
		WithPreferredDirections: true,
		PullTightAccuracy:       500,
		RemoveUnconnectedVias:   true,
	}
}

// Result is the outcome of a full batch run.
type Result struct {
	Connections []ConnectionResult
	PassesRun   int
}

// Routed reports whether every connection ended OutcomeRouted or was
// already joined by pre-existing board connectivity.
func (r Result) Routed() bool {
	for _, c := range r.Connections {
		if c.Outcome != OutcomeRouted && c.Outcome != OutcomeAlreadyConnected {
			return false
		}
	}

	return true
}
