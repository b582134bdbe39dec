package bond

import (
	"math"

	"github.com/polyrin/rin/chem"
	"github.com/polyrin/rin/geometry"
	"github.com/polyrin/rin/graph"
	"github.com/polyrin/rin/residue"
)

// PiPi is a pi-pi stacking interaction between two aromatic rings.
type PiPi struct {
	a, b   *residue.Ring
	angle  float64
	length float64
	energy float64
}

func (b *PiPi) Length() float64 { return b.length }
func (b *PiPi) Energy() float64 { return b.energy }
func (b *PiPi) Kind() Kind      { return PiPiKind }

func (b *PiPi) ResidueIDs() (string, string) {
	return b.a.Atoms[0].Residue.ID, b.b.Atoms[0].Residue.ID
}

func (b *PiPi) ToEdge() graph.Edge {
	sourceID, targetID := b.ResidueIDs()
	return graph.Edge{
		SourceID:         sourceID,
		TargetID:         targetID,
		Length:           b.length,
		Energy:           b.energy,
		InteractionLabel: "PIPISTACK:SC_SC",
		SourceAtom:       ringAtomLabel(b.a),
		TargetAtom:       ringAtomLabel(b.b),
		Angle:            ptr(b.angle),
	}
}

func ringAtomLabel(r *residue.Ring) string {
	var out string
	for i, a := range r.Atoms {
		if i > 0 {
			out += ":"
		}
		out += a.Name
	}
	return out
}

// minRingAtomDistance is the smallest pairwise atom-atom distance
// across the two rings, used by the mn <= max_pipi_atom_atom_distance
// test in spec §4.5.
func minRingAtomDistance(a, b *residue.Ring) float64 {
	min := math.Inf(1)
	for _, x := range a.Atoms {
		for _, y := range b.Atoms {
			if d := geometry.Distance(x.Pos, y.Pos); d < min {
				min = d
			}
		}
	}
	return min
}

// PiStackParams bundles the three configured thresholds the pi-pi
// predicate needs, plus the energy-formula coefficients (see
// chem.PiStackConstants).
type PiStackParams struct {
	NormalNormalAngleRange float64
	NormalCentreAngleRange float64
	MaxAtomAtomDistance    float64
	Constants              chem.PiStackConstants
}

// TestPiPi applies spec §4.5's pi-pi stacking predicate to one ring
// pair already known to be within query_dist_pipi of each other.
func TestPiPi(a, b *residue.Ring, p PiStackParams, seqSep int) (*PiPi, bool) {
	resA, resB := a.Atoms[0].Residue, b.Atoms[0].Residue
	if !SatisfiesMinimumSeparation(resA, resB, seqSep) {
		return nil, false
	}

	aToB := geometry.Sub(a.Pos, b.Pos)
	bToA := geometry.Sub(b.Pos, a.Pos)

	nc1 := geometry.DirectionalAngle(a.Normal, aToB)
	nc2 := geometry.DirectionalAngle(b.Normal, bToA)
	nn := geometry.DirectionalAngle(a.Normal, b.Normal)
	mn := minRingAtomDistance(a, b)

	if nn < 0 || nn > p.NormalNormalAngleRange {
		return nil, false
	}
	if !((nc1 >= 0 && nc1 <= p.NormalCentreAngleRange) || (nc2 >= 0 && nc2 <= p.NormalCentreAngleRange)) {
		return nil, false
	}
	if mn > p.MaxAtomAtomDistance {
		return nil, false
	}

	length := geometry.Distance(a.Pos, b.Pos)
	cosPart := math.Cos(1 / (nn + 10))
	energy := p.Constants.A + p.Constants.B*nn + p.Constants.C*nn*cosPart

	return &PiPi{a: a, b: b, angle: nn, length: length, energy: energy}, true
}
