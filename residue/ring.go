package residue

import (
	"github.com/polyrin/rin/chem"
	"github.com/polyrin/rin/geometry"
)

// Ring is an aromatic ring: its atoms, mass centroid, normal vector, and
// mean atom-to-centroid radius.
type Ring struct {
	Atoms       []*Atom
	ResidueName string
	Pos         geometry.Vector
	Normal      geometry.Vector
	MeanRadius  float64
}

// Position implements kdtree.Point.
func (r *Ring) Position() geometry.Vector { return r.Pos }

// Size returns the number of atoms in the ring (5 or 6).
func (r *Ring) Size() int { return len(r.Atoms) }

// PiCationCandidate reports whether this ring can participate in a
// pi-cation interaction.
func (r *Ring) PiCationCandidate() bool {
	return chem.PiCationCandidate(r.ResidueName, r.Size())
}

// buildRing constructs a Ring from its atoms. Fails with
// IllformedGroupError and no ring if fewer than three atoms were found,
// mirroring spec §3's "must have >= 3 atoms" invariant. With three or
// more atoms that still differ from the expected set, the ring is built
// and returned alongside an IllformedGroupError so the configured policy
// decides whether to keep it.
func buildRing(residueID, residueName string, atoms []*Atom, expected []string) (*Ring, error) {
	if len(atoms) < 3 {
		return nil, newIllformedGroupError(residueID, "ring", expected, atomNames(atoms))
	}
	positions := make([]geometry.Vector, len(atoms))
	masses := make([]float64, len(atoms))
	for i, a := range atoms {
		positions[i] = a.Pos
		masses[i] = a.Mass()
	}
	centroid := geometry.Centroid(positions, masses)

	normal := geometry.Cross(
		geometry.Sub(atoms[0].Pos, atoms[1].Pos),
		geometry.Sub(atoms[2].Pos, atoms[1].Pos),
	)

	var radiusSum float64
	for _, p := range positions {
		radiusSum += geometry.Distance(p, centroid)
	}

	ring := &Ring{
		Atoms:       atoms,
		ResidueName: residueName,
		Pos:         centroid,
		Normal:      normal,
		MeanRadius:  radiusSum / float64(len(atoms)),
	}
	if !sameSet(atomNames(atoms), expected) {
		return ring, newIllformedGroupError(residueID, "ring", expected, atomNames(atoms))
	}
	return ring, nil
}

func atomNames(atoms []*Atom) []string {
	out := make([]string, len(atoms))
	for i, a := range atoms {
		out[i] = a.Name
	}
	return out
}
