// Package drc implements the design-rule checker run after a routing pass:
// clearance violations between differently-netted items, outright net
// conflicts where copper actually overlaps, keep-out violations, and
// unconnected-net reports built from boardmodel's connected-component
// analysis.
//
// Grounded on original_source/include/board's DRC pass, which drives the
// same four checks off the same clearance matrix and spatial index; ported
// here onto boardmodel.Board.NeighborsInBox and boardmodel.ClearanceMatrix
// rather than a dedicated DRC-only index.
package drc

// Kind discriminates the violation categories this engine reports.
type Kind int

const (
	KindClearance Kind = iota
	KindNetConflict
	KindKeepOut
	KindUnconnectedNet
)

// String renders the Kind for diagnostics.
func (k Kind) String() string {
	switch k {
	case KindClearance:
		return "Clearance"
	case KindNetConflict:
		return "NetConflict"
	case KindKeepOut:
		return "KeepOut"
	case KindUnconnectedNet:
		return "UnconnectedNet"
	default:
		return "Unknown"
	}
}

// Severity ranks how strongly a violation should block acceptance.
type Severity int

const (
	SeverityWarning Severity = iota
	SeverityError
)

// String renders the Severity for diagnostics.
func (s Severity) String() string {
	if s == SeverityError {
		return "Error"
	}

	return "Warning"
}
