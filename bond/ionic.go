package bond

import (
	"github.com/polyrin/rin/chem"
	"github.com/polyrin/rin/geometry"
	"github.com/polyrin/rin/graph"
	"github.com/polyrin/rin/residue"
)

// Ionic is a salt bridge between two oppositely-charged ionic groups.
type Ionic struct {
	positive, negative *residue.IonicGroup
	length             float64
	energy             float64
}

func (b *Ionic) Length() float64 { return b.length }
func (b *Ionic) Energy() float64 { return b.energy }
func (b *Ionic) Kind() Kind      { return IonicKind }

func (b *Ionic) ResidueIDs() (string, string) {
	return b.positive.Atoms[0].Residue.ID, b.negative.Atoms[0].Residue.ID
}

func (b *Ionic) ToEdge() graph.Edge {
	sourceID, targetID := b.ResidueIDs()
	positiveID := sourceID
	return graph.Edge{
		SourceID:         sourceID,
		TargetID:         targetID,
		Length:           b.length,
		Energy:           b.energy,
		InteractionLabel: "IONIC:SC_SC",
		SourceAtom:       groupAtomLabel(b.positive),
		TargetAtom:       groupAtomLabel(b.negative),
		Positive:         sptr(positiveID),
	}
}

func groupAtomLabel(g *residue.IonicGroup) string {
	var out string
	for i, a := range g.Atoms {
		if i > 0 {
			out += ":"
		}
		out += a.Name
	}
	return out
}

// TestIonic applies spec §4.5's ionic predicate to one (positive,
// negative) ionic group pair within query_dist_ionic of each other
// (the caller is expected to have already filtered to that radius via
// the k-d tree). UnsupportedResidueError is returned when either
// residue's effective charge isn't in the fixed {LYS, ASP, HIS, ARG,
// GLU} table.
func TestIonic(positive, negative *residue.IonicGroup, seqSep int) (*Ionic, error) {
	posRes := positive.Atoms[0].Residue
	negRes := negative.Atoms[0].Residue
	if !SatisfiesMinimumSeparation(posRes, negRes, seqSep) {
		return nil, nil
	}
	if positive.Charge != 1 || negative.Charge != -1 {
		return nil, nil
	}

	qPos, ok := chem.IonicCharge(posRes.Name)
	if !ok {
		return nil, &UnsupportedResidueError{residueName: posRes.Name, context: "ionic energy"}
	}
	qNeg, ok := chem.IonicCharge(negRes.Name)
	if !ok {
		return nil, &UnsupportedResidueError{residueName: negRes.Name, context: "ionic energy"}
	}

	length := geometry.Distance(positive.Pos, negative.Pos)
	energy := chem.IonicConstant * qPos * qNeg / length

	return &Ionic{positive: positive, negative: negative, length: length, energy: energy}, nil
}
