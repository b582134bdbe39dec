package residue

import (
	"github.com/polyrin/rin/chem"
	"github.com/polyrin/rin/geometry"
)

// IonicGroup is a charged side-chain group: its atoms, mass centroid,
// sign, and per-residue effective charge magnitude used by the ionic
// energy formula.
type IonicGroup struct {
	Atoms           []*Atom
	ResidueName     string
	Pos             geometry.Vector
	Charge          int // +1 or -1
	EffectiveCharge float64
}

// Position implements kdtree.Point.
func (g *IonicGroup) Position() geometry.Vector { return g.Pos }

// buildIonicGroup constructs an IonicGroup. Unlike a ring there is no
// minimum-atom-count invariant; a group that fails to match the
// residue's expected atom set is still flagged IllformedGroup so the
// configured policy can decide what to do with it.
func buildIonicGroup(residueID, residueName string, atoms []*Atom, charge int, expected []string) (*IonicGroup, error) {
	q, _ := chem.IonicCharge(residueName)

	if !sameSet(atomNames(atoms), expected) {
		group := &IonicGroup{Atoms: atoms, ResidueName: residueName, Charge: charge, EffectiveCharge: q}
		group.recomputePosition()
		return group, newIllformedGroupError(residueID, "ionic group", expected, atomNames(atoms))
	}

	group := &IonicGroup{Atoms: atoms, ResidueName: residueName, Charge: charge, EffectiveCharge: q}
	group.recomputePosition()
	return group, nil
}

func (g *IonicGroup) recomputePosition() {
	if len(g.Atoms) == 0 {
		return
	}
	positions := make([]geometry.Vector, len(g.Atoms))
	masses := make([]float64, len(g.Atoms))
	for i, a := range g.Atoms {
		positions[i] = a.Pos
		masses[i] = a.Mass()
	}
	g.Pos = geometry.Centroid(positions, masses)
}

func sameSet(got, want []string) bool {
	if len(got) != len(want) {
		return false
	}
	seen := make(map[string]bool, len(want))
	for _, w := range want {
		seen[w] = true
	}
	for _, g := range got {
		if !seen[g] {
			return false
		}
	}
	return true
}
