package bond

import (
	"math"

	"github.com/polyrin/rin/chem"
	"github.com/polyrin/rin/geometry"
	"github.com/polyrin/rin/graph"
	"github.com/polyrin/rin/residue"
)

// Hydrogen is a hydrogen bond between one acceptor and one donor,
// mediated by one specific attached hydrogen on the donor.
type Hydrogen struct {
	acceptor, donor, hydrogen *residue.Atom
	adhAngle, ahdAngle        float64
	length                    float64
	energy                    float64
}

func (b *Hydrogen) Length() float64 { return b.length }
func (b *Hydrogen) Energy() float64 { return b.energy }
func (b *Hydrogen) Kind() Kind      { return HydrogenKind }

func (b *Hydrogen) ResidueIDs() (string, string) {
	return b.acceptor.Residue.ID, b.donor.Residue.ID
}

// Donor returns the hydrogen-donating atom, exported so network's
// realism filter can key its per-atom capacity counters off it.
func (b *Hydrogen) Donor() *residue.Atom { return b.donor }

// HydrogenAtom returns the specific hydrogen mediating this bond.
func (b *Hydrogen) HydrogenAtom() *residue.Atom { return b.hydrogen }

// Acceptor returns the accepting atom.
func (b *Hydrogen) Acceptor() *residue.Atom { return b.acceptor }

func (b *Hydrogen) ToEdge() graph.Edge {
	sourceID, targetID := b.ResidueIDs()
	orientation := mainChainLabel(b.acceptor.IsMainChain()) + "_" + mainChainLabel(b.donor.IsMainChain())
	donorID := b.donor.Residue.ID
	return graph.Edge{
		SourceID:         sourceID,
		TargetID:         targetID,
		Length:           b.length,
		Energy:           b.energy,
		InteractionLabel: "HBOND:" + orientation,
		SourceAtom:       b.acceptor.Name,
		TargetAtom:       b.donor.Name,
		Angle:            ptr(b.ahdAngle),
		Donor:            sptr(donorID),
		Orientation:      sptr(orientation),
	}
}

// TestHydrogen applies spec §4.5's hydrogen-bond predicate to one
// (acceptor, donor) pair already known to be within queryDistHbond of
// each other. It returns one Hydrogen bond per attached hydrogen on the
// donor whose ADH angle is within hbondAngle — a donor with no attached
// hydrogens (or none passing the angle test) yields no bonds.
func TestHydrogen(acceptor, donor *residue.Atom, hbondAngle float64, seqSep int) []*Hydrogen {
	if !SatisfiesMinimumSeparation(acceptor.Residue, donor.Residue, seqSep) {
		return nil
	}
	if !acceptor.IsAcceptor() || !donor.IsDonor() {
		return nil
	}

	var out []*Hydrogen
	for _, h := range donor.AttachedHydrogens() {
		donorToAcceptor := geometry.Sub(acceptor.Pos, donor.Pos)
		donorToHydrogen := geometry.Sub(h.Pos, donor.Pos)
		adh := geometry.Angle(donorToAcceptor, donorToHydrogen)
		if adh > hbondAngle {
			continue
		}

		hydrogenToAcceptor := geometry.Sub(acceptor.Pos, h.Pos)
		hydrogenToDonor := geometry.Sub(donor.Pos, h.Pos)
		ahd := geometry.Angle(hydrogenToAcceptor, hydrogenToDonor)

		length := geometry.Distance(acceptor.Pos, donor.Pos)
		dHA := geometry.Distance(h.Pos, acceptor.Pos)
		params := chem.HBondParams(donor.Element, donor.Charge, acceptor.Element, acceptor.Charge)
		ratio := params.Sigma / dHA
		energy := 4 * params.Epsilon * (math.Pow(ratio, 12) - math.Pow(ratio, 10))

		out = append(out, &Hydrogen{
			acceptor: acceptor, donor: donor, hydrogen: h,
			adhAngle: adh, ahdAngle: ahd,
			length: length, energy: energy,
		})
	}
	return out
}
