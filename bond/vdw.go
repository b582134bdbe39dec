package bond

import (
	"math"

	"github.com/polyrin/rin/geometry"
	"github.com/polyrin/rin/graph"
	"github.com/polyrin/rin/residue"
)

// VdW is a van der Waals contact between two registered OPLS atoms.
type VdW struct {
	a, b   *residue.Atom
	length float64
	energy float64
}

func (b *VdW) Length() float64 { return b.length }
func (b *VdW) Energy() float64 { return b.energy }
func (b *VdW) Kind() Kind      { return VdWKind }

func (b *VdW) ResidueIDs() (string, string) { return b.a.Residue.ID, b.b.Residue.ID }

func (b *VdW) ToEdge() graph.Edge {
	sourceID, targetID := b.ResidueIDs()
	orientation := mainChainLabel(b.a.IsMainChain()) + "_" + mainChainLabel(b.b.IsMainChain())
	return graph.Edge{
		SourceID:         sourceID,
		TargetID:         targetID,
		Length:           b.length,
		Energy:           b.energy,
		InteractionLabel: "VDW:" + orientation,
		SourceAtom:       b.a.Name,
		TargetAtom:       b.b.Name,
		Orientation:      sptr(orientation),
	}
}

// TestVdW applies spec §4.5's van der Waals predicate: the surface-to-
// surface gap (center distance minus both vdw radii) must be within
// surfaceDistVdw, both atoms must be OPLS candidates, and the residues
// must satisfy the minimum separation.
func TestVdW(a, b *residue.Atom, surfaceDistVdw float64, seqSep int) (*VdW, bool) {
	if !SatisfiesMinimumSeparation(a.Residue, b.Residue, seqSep) {
		return nil, false
	}
	paramsA, okA := a.VdWParams()
	paramsB, okB := b.VdWParams()
	if !okA || !okB {
		return nil, false
	}

	d := geometry.Distance(a.Pos, b.Pos)
	gap := d - (a.VdWRadius() + b.VdWRadius())
	if gap > surfaceDistVdw {
		return nil, false
	}

	sigma := math.Sqrt(paramsA.Sigma * paramsB.Sigma)
	epsilon := math.Sqrt(paramsA.Epsilon * paramsB.Epsilon)
	ratio := sigma / d
	energy := 4 * epsilon * (math.Pow(ratio, 12) - math.Pow(ratio, 6))

	return &VdW{a: a, b: b, length: d, energy: energy}, true
}
