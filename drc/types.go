package drc

import "github.com/tracequest/tracequest/geom"

// Violation is one design-rule finding.
type Violation struct {
	Kind     Kind
	Severity Severity
	Message  string
	Layer    int
	Location geom.Point
	ItemIDs  []uint32
}
