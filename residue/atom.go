package residue

import (
	"github.com/polyrin/rin/chem"
	"github.com/polyrin/rin/geometry"
)

// Atom is a single 3D-positioned atom belonging to a Residue. Every
// chemistry predicate on it (IsDonor, IsAcceptor, IsCation, ...) is a
// pure function of (residue name, atom name, element) looked up in
// package chem; Atom itself carries no chemistry logic beyond forwarding
// its own name/element/residue to those lookups.
type Atom struct {
	Name       string
	Element    string
	Pos        geometry.Vector
	Charge     int // formal charge: -1, 0, +1
	TempFactor float64
	Serial     int
	IsHydrogen bool

	// Residue is a non-owning back-reference, set once by Build.
	Residue *Residue
}

// Position implements kdtree.Point.
func (a *Atom) Position() geometry.Vector { return a.Pos }

// Mass returns the atom's mass by element.
func (a *Atom) Mass() float64 { return chem.Mass(a.Element) }

// VdWRadius returns the atom's van der Waals radius by element.
func (a *Atom) VdWRadius() float64 { return chem.VdWRadius(a.Element) }

// IsDonor reports whether this atom is a hydrogen-bond donor.
func (a *Atom) IsDonor() bool { return chem.IsDonor(a.Residue.Name, a.Name) }

// DonorCapacity returns how many hydrogens this atom can simultaneously
// donate; 0 if it is not a donor.
func (a *Atom) DonorCapacity() int { return chem.DonorCapacity(a.Residue.Name, a.Name) }

// IsAcceptor reports whether this atom is a hydrogen-bond acceptor.
func (a *Atom) IsAcceptor() bool { return chem.IsAcceptor(a.Residue.Name, a.Name) }

// AcceptorCapacity returns how many hydrogen bonds this atom can
// simultaneously accept; 0 if it is not an acceptor.
func (a *Atom) AcceptorCapacity() int { return chem.AcceptorCapacity(a.Residue.Name, a.Name) }

// IsCation reports whether this atom is a pi-cation point charge.
func (a *Atom) IsCation() bool { return chem.IsCation(a.Residue.Name, a.Name) }

// InPositiveIonicGroup reports whether this atom belongs to its
// residue's positive ionic group atom set.
func (a *Atom) InPositiveIonicGroup() bool {
	return chem.InPositiveIonicGroup(a.Residue.Name, a.Name)
}

// InNegativeIonicGroup reports whether this atom belongs to its
// residue's negative ionic group atom set.
func (a *Atom) InNegativeIonicGroup() bool {
	return chem.InNegativeIonicGroup(a.Residue.Name, a.Name)
}

// IsVdWCandidate reports whether this atom has an entry in the OPLS
// van der Waals table.
func (a *Atom) IsVdWCandidate() bool {
	return chem.IsVdWCandidate(a.Residue.Name, a.Name, a.Element)
}

// VdWParams returns this atom's OPLS (q, sigma, epsilon) triple, and
// false if it is not a vdw candidate.
func (a *Atom) VdWParams() (chem.VdWEntry, bool) {
	return chem.VdWParams(a.Residue.Name, a.Name, a.Element)
}

// mainChainAtoms is the atom-name set is_main_chain checks, per spec §3.
var mainChainAtoms = map[string]bool{"C": true, "O": true, "H": true, "HA": true, "N": true}

// IsMainChain reports whether this atom's name is one of the fixed
// backbone names {C, O, H, HA, N}.
func (a *Atom) IsMainChain() bool { return mainChainAtoms[a.Name] }

// AttachedHydrogens returns the hydrogens on this residue whose name
// suffix matches this donor atom's name with its first character
// stripped — e.g. donor "ND1" matches hydrogens "HD1", "1HD1", "2HD1".
func (a *Atom) AttachedHydrogens() []*Atom {
	if len(a.Name) == 0 {
		return nil
	}
	suffix := a.Name[1:]
	var out []*Atom
	for _, other := range a.Residue.Atoms {
		if !other.IsHydrogen {
			continue
		}
		if hydrogenSuffix(other.Name) == suffix {
			out = append(out, other)
		}
	}
	return out
}

// hydrogenSuffix strips a hydrogen atom name down to the part that
// should match its donor's suffix: a leading digit (as in "1HD1") is
// dropped, then the leading "H".
func hydrogenSuffix(name string) string {
	if len(name) == 0 {
		return name
	}
	if name[0] >= '0' && name[0] <= '9' {
		name = name[1:]
	}
	if len(name) > 0 && (name[0] == 'H' || name[0] == 'h') {
		name = name[1:]
	}
	return name
}
