/*
Package bond implements the per-interaction-type geometric predicates
and energy formulas (C5): disulfide, van der Waals, ionic, hydrogen,
pi-pi stacking, pi-cation, and the generic (contact-map) kind. Every
Test* function is a pure predicate over the candidate entities and the
caller's configured thresholds. TestVdW, TestPiPi and TestGeneric return
a bond and true, or nil and false; TestHydrogen returns one bond per
accepted hydrogen (possibly none); TestIonic and TestPiCation return a
bond, nil for a rejected pair, or an error for an unsupported residue.
None of it touches a spatial index or an
aggregator — that's network's and rin's job.
*/
package bond

import "github.com/polyrin/rin/graph"

// Kind identifies which of the seven interaction variants a Bond is.
type Kind int

const (
	SSKind Kind = iota
	VdWKind
	IonicKind
	HydrogenKind
	PiPiKind
	PiCationKind
	GenericKind
)

func (k Kind) String() string {
	switch k {
	case SSKind:
		return "SSBOND"
	case VdWKind:
		return "VDW"
	case IonicKind:
		return "IONIC"
	case HydrogenKind:
		return "HBOND"
	case PiPiKind:
		return "PIPISTACK"
	case PiCationKind:
		return "PICATION"
	case GenericKind:
		return "GENERIC"
	default:
		return "UNKNOWN"
	}
}

// Bond is satisfied by each of the seven kind-specific structs. It is
// the direct translation of spec §3's "Bond — variant of {...}" note
// into a Go interface.
type Bond interface {
	Length() float64
	Energy() float64
	Kind() Kind
	ResidueIDs() (string, string)
	ToEdge() graph.Edge
}

// Less implements spec §3's bond ordering: a < b iff a.Energy() <
// b.Energy(), tiebreak by a.Length() < b.Length(). Used by network's
// best-front push rule and by GetOne's per-pair selection.
func Less(a, b Bond) bool {
	if a.Energy() != b.Energy() {
		return a.Energy() < b.Energy()
	}
	return a.Length() < b.Length()
}
