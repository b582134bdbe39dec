package bond

import (
	"github.com/polyrin/rin/chem"
	"github.com/polyrin/rin/geometry"
	"github.com/polyrin/rin/graph"
	"github.com/polyrin/rin/residue"
)

// PiCation is a pi-cation interaction between a charged point atom and
// an aromatic ring.
type PiCation struct {
	cation *residue.Atom
	ring   *residue.Ring
	angle  float64
	length float64
	energy float64
}

func (b *PiCation) Length() float64 { return b.length }
func (b *PiCation) Energy() float64 { return b.energy }
func (b *PiCation) Kind() Kind      { return PiCationKind }

func (b *PiCation) ResidueIDs() (string, string) {
	return b.ring.Atoms[0].Residue.ID, b.cation.Residue.ID
}

func (b *PiCation) ToEdge() graph.Edge {
	sourceID, targetID := b.ResidueIDs()
	cationID := b.cation.Residue.ID
	return graph.Edge{
		SourceID:         sourceID,
		TargetID:         targetID,
		Length:           b.length,
		Energy:           b.energy,
		InteractionLabel: "PICATION:SC_SC",
		SourceAtom:       ringAtomLabel(b.ring),
		TargetAtom:       b.cation.Name,
		Angle:            ptr(b.angle),
		Cation:           sptr(cationID),
	}
}

// TestPiCation applies spec §4.5's pi-cation predicate to one (cation
// atom, ring) pair already known to be within query_dist_pica of each
// other. Returns an *UnsupportedResidueError when the cation or ring
// residue is outside the fixed kappa/alpha tables.
func TestPiCation(cation *residue.Atom, ring *residue.Ring, picationAngle float64, seqSep int) (*PiCation, error) {
	ringRes := ring.Atoms[0].Residue
	if !SatisfiesMinimumSeparation(ringRes, cation.Residue, seqSep) {
		return nil, nil
	}

	ringToCation := geometry.Sub(ring.Pos, cation.Pos)
	theta := 90 - geometry.DirectionalAngle(ring.Normal, ringToCation)
	if theta < picationAngle {
		return nil, nil
	}

	kappa, err := chem.PiCationKappa(cation.Residue.Name)
	if err != nil {
		return nil, &UnsupportedResidueError{residueName: cation.Residue.Name, context: "pi-cation kappa"}
	}
	alpha, err := chem.PiCationAlpha(ringRes.Name)
	if err != nil {
		return nil, &UnsupportedResidueError{residueName: ringRes.Name, context: "pi-cation alpha"}
	}

	length := geometry.Distance(ring.Pos, cation.Pos)
	energy := -(kappa * alpha) / (length * length * length * length)

	return &PiCation{cation: cation, ring: ring, angle: theta, length: length, energy: energy}, nil
}
