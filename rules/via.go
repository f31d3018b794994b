package rules

// ViaInfo is one padstack entry in a ViaRule: the padstack name, the
// clearance class vias of this kind belong to, whether the via may attach
// directly to an SMD pad, and the inclusive layer range it spans.
type ViaInfo struct {
	PadstackName   string
	ClearanceClass int
	AttachSMD      bool
	FirstLayer     int
	LastLayer      int
	DrillDiameter  int64
	PadDiameter    int64
	Cost           int64 // base via cost used by the destination heuristic and maze search
}

// spansRange reports whether the via's layer range covers [from, to]
// (order-independent).
func (v ViaInfo) spansRange(from, to int) bool {
	lo, hi := from, to
	if lo > hi {
		lo, hi = hi, lo
	}

	return v.FirstLayer <= lo && v.LastLayer >= hi
}

// ViaRule is an ordered list of ViaInfo entries; the first entry whose
// layer range satisfies a requested transition is preferred.
type ViaRule struct {
	Name    string
	Entries []ViaInfo
}

// NewViaRule returns an empty, named ViaRule.
func NewViaRule(name string) *ViaRule {
	return &ViaRule{Name: name}
}

// Add appends a via entry, preserving priority order (earlier entries are
// preferred).
func (r *ViaRule) Add(info ViaInfo) {
	r.Entries = append(r.Entries, info)
}

// Select returns the first via (in priority order) whose padstack spans the
// requested [fromLayer, toLayer] transition.
func (r *ViaRule) Select(fromLayer, toLayer int) (ViaInfo, bool) {
	for _, v := range r.Entries {
		if v.spansRange(fromLayer, toLayer) {
			return v, true
		}
	}

	return ViaInfo{}, false
}

// MinCost returns the cheapest via cost among all of the rule's entries,
// whatever layers they span; the router passes it to the destination
// heuristic as its single via cost. Returns 0, false if the rule has no
// entries.
func (r *ViaRule) MinCost() (int64, bool) {
	if len(r.Entries) == 0 {
		return 0, false
	}

	best := r.Entries[0].Cost
	for _, v := range r.Entries[1:] {
		if v.Cost < best {
			best = v.Cost
		}
	}

	return best, true
}
