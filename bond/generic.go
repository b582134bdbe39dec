package bond

import (
	"github.com/polyrin/rin/geometry"
	"github.com/polyrin/rin/graph"
	"github.com/polyrin/rin/residue"
)

// CarbonKind selects which backbone carbon a contact-map run searches
// over, per spec §6's cmap_type option.
type CarbonKind int

const (
	Alpha CarbonKind = iota
	Beta
	// Closest labels a generic edge "GENERIC:CLOSEST" rather than by a
	// fixed carbon kind. The documented pipeline (spec §4.8) only ever
	// drives CONTACT_MAP with Alpha or Beta; Closest exists for label
	// completeness with spec §6's interaction-label list and is
	// available to a caller that wants a residue-closest-atom variant
	// without extending CarbonKind further.
	Closest
)

func (k CarbonKind) String() string {
	switch k {
	case Beta:
		return "CB"
	case Closest:
		return "CLOSEST"
	default:
		return "CA"
	}
}

// Generic is a contact-map edge between two backbone carbons; it has no
// energy formula.
type Generic struct {
	a, b   *residue.Atom
	carbon CarbonKind
	length float64
}

func (b *Generic) Length() float64 { return b.length }

// Energy is not defined for this kind, per spec §4.5; it is always 0.
func (b *Generic) Energy() float64 { return 0 }
func (b *Generic) Kind() Kind      { return GenericKind }

func (b *Generic) ResidueIDs() (string, string) { return b.a.Residue.ID, b.b.Residue.ID }

func (b *Generic) ToEdge() graph.Edge {
	sourceID, targetID := b.ResidueIDs()
	return graph.Edge{
		SourceID:         sourceID,
		TargetID:         targetID,
		Length:           b.length,
		Energy:           b.Energy(),
		InteractionLabel: "GENERIC:" + b.carbon.String(),
		SourceAtom:       b.a.Name,
		TargetAtom:       b.b.Name,
	}
}

// TestGeneric applies spec §4.5's contact-map predicate to one (carbon
// A, carbon B) pair already known to be within query_dist_cmap of each
// other: the residues need only satisfy the minimum separation and not
// be the same residue.
func TestGeneric(a, b *residue.Atom, carbon CarbonKind, seqSep int) (*Generic, bool) {
	if a.Residue.ID == b.Residue.ID {
		return nil, false
	}
	if !SatisfiesMinimumSeparation(a.Residue, b.Residue, seqSep) {
		return nil, false
	}
	return &Generic{a: a, b: b, carbon: carbon, length: geometry.Distance(a.Pos, b.Pos)}, true
}
