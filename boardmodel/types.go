package boardmodel

import (
	"github.com/tracequest/tracequest/geom"
	"github.com/tracequest/tracequest/tileshape"
)

// FixedState is the totally ordered lifecycle tag on items: NotFixed <
// ShoveFixed < UserFixed < SystemFixed. It determines what the router may
// move.
type FixedState int

const (
	NotFixed FixedState = iota
	ShoveFixed
	UserFixed
	SystemFixed
)

// Routable reports whether an item in this fixed state may ever be ripped
// up or relocated by the router. UserFixed and SystemFixed are not.
func (f FixedState) Routable() bool {
	return f == NotFixed || f == ShoveFixed
}

// String renders the fixed state for diagnostics.
func (f FixedState) String() string {
	switch f {
	case NotFixed:
		return "NotFixed"
	case ShoveFixed:
		return "ShoveFixed"
	case UserFixed:
		return "UserFixed"
	case SystemFixed:
		return "SystemFixed"
	default:
		return "Unknown"
	}
}

// Kind discriminates the board item variants.
type Kind int

const (
	KindPad Kind = iota
	KindVia
	KindTrace
	KindKeepOut
	KindOutline
	KindPour
)

// String renders the Kind for diagnostics.
func (k Kind) String() string {
	switch k {
	case KindPad:
		return "Pad"
	case KindVia:
		return "Via"
	case KindTrace:
		return "Trace"
	case KindKeepOut:
		return "KeepOut"
	case KindOutline:
		return "Outline"
	case KindPour:
		return "Pour"
	default:
		return "Unknown"
	}
}

// Item is a single board object. Fields not relevant to Kind are zero.
type Item struct {
	ID             uint32
	Kind           Kind
	Fixed          FixedState
	ClearanceClass int
	Component      int // 0 if standalone
	Nets           map[int]struct{}
	FirstLayer     int
	LastLayer      int

	// Pad/Pin
	PadCenter   geom.Point
	Padstack    string
	PinNumber   int
	PadShape    tileshape.Tile

	// Via
	ViaCenter geom.Point
	AttachSMD bool

	// Trace
	TraceFrom, TraceTo geom.Point
	HalfWidth          int64

	// KeepOut / Outline / Pour
	Shape          tileshape.Tile
	ProhibitsTrace bool
	ProhibitsVia   bool
	ProhibitsPour  bool
	NetScope       int // 0 = applies to every net
}

// HasNet reports whether the item belongs to net n.
func (it *Item) HasNet(n int) bool {
	_, ok := it.Nets[n]

	return ok
}

// SharesNetWith reports whether it and other have at least one net number in
// common.
func (it *Item) SharesNetWith(other *Item) bool {
	for n := range it.Nets {
		if other.HasNet(n) {
			return true
		}
	}

	return false
}

// LayerOverlaps reports whether [firstLayer, lastLayer] intersects it's span.
func (it *Item) LayerOverlaps(firstLayer, lastLayer int) bool {
	return it.FirstLayer <= lastLayer && firstLayer <= it.LastLayer
}

// BoundingBox returns the axis-aligned box enclosing the item's geometry.
func (it *Item) BoundingBox() geom.Box {
	switch it.Kind {
	case KindPad:
		if it.PadShape.Dim() >= 0 {
			return it.PadShape.BoundingBox()
		}

		return geom.BoxFromPoint(it.PadCenter)
	case KindVia:
		return geom.BoxFromPoint(it.ViaCenter).Expand(it.HalfWidth)
	case KindTrace:
		return geom.BoxFromPoints(it.TraceFrom, it.TraceTo).Expand(it.HalfWidth)
	default: // KeepOut, Outline, Pour
		return it.Shape.BoundingBox()
	}
}

// Routable reports whether the item can ever be matched, ripped up, or
// otherwise moved by the router: routable unless user- or system-fixed,
// restricted further to kinds that are routable at all.
func (it *Item) Routable() bool {
	switch it.Kind {
	case KindVia, KindTrace:
		return it.Fixed != UserFixed && it.Fixed != SystemFixed
	default:
		return false
	}
}

// IsObstacle reports whether it is an obstacle to other, per the per-kind
// obstacle contract: items sharing a net are never obstacles to each other.
func (it *Item) IsObstacle(other *Item) bool {
	if it == other {
		return false
	}
	if !it.LayerOverlaps(other.FirstLayer, other.LastLayer) {
		return false
	}

	switch it.Kind {
	case KindPad, KindVia, KindTrace:
		return !it.SharesNetWith(other)
	case KindPour:
		return other.Kind != KindPour && !it.SharesNetWith(other) && other.Kind != KindKeepOut && other.Kind != KindOutline
	case KindKeepOut:
		if it.NetScope != 0 && other.HasNet(it.NetScope) {
			return false // keep-out exempts its own scoped net
		}

		return kindProhibited(it, other.Kind)
	case KindOutline:
		b := other.BoundingBox()
		for _, c := range []geom.Point{b.Lo, {X: b.Hi.X, Y: b.Lo.Y}, b.Hi, {X: b.Lo.X, Y: b.Hi.Y}} {
			if !it.Shape.Contains(c) {
				return true
			}
		}

		return false
	default:
		return false
	}
}

func kindProhibited(keepOut *Item, otherKind Kind) bool {
	switch otherKind {
	case KindTrace:
		return keepOut.ProhibitsTrace
	case KindVia:
		return keepOut.ProhibitsVia
	case KindPour:
		return keepOut.ProhibitsPour
	default:
		return false
	}
}
