package network

import (
	"sort"

	"github.com/polyrin/rin/bond"
	"github.com/polyrin/rin/residue"
)

// ApplyHydrogenRealism implements spec §4.7's valence-capacity greedy
// filter: hydrogen bonds are admitted in ascending-energy order as long
// as their donor, mediating hydrogen, and acceptor atoms each still have
// spare capacity (Atom.DonorCapacity / Atom.AcceptorCapacity for the
// donor/acceptor, one slot per distinct hydrogen atom). Rejected
// hydrogen bonds are dropped; every other kind passes through
// unchanged. The output preserves the input's relative order.
func ApplyHydrogenRealism(bonds []bond.Bond) []bond.Bond {
	type scored struct {
		b   *bond.Hydrogen
		idx int
	}

	var hydrogens []scored
	for i, b := range bonds {
		if h, ok := b.(*bond.Hydrogen); ok {
			hydrogens = append(hydrogens, scored{b: h, idx: i})
		}
	}
	if len(hydrogens) == 0 {
		return bonds
	}

	sort.SliceStable(hydrogens, func(i, j int) bool {
		return hydrogens[i].b.Energy() < hydrogens[j].b.Energy()
	})

	donorUsed := make(map[*residue.Atom]int)
	hydrogenUsed := make(map[*residue.Atom]bool)
	acceptorUsed := make(map[*residue.Atom]int)
	rejected := make(map[int]bool)

	for _, s := range hydrogens {
		donor := s.b.Donor()
		hAtom := s.b.HydrogenAtom()
		acceptor := s.b.Acceptor()

		if hydrogenUsed[hAtom] {
			rejected[s.idx] = true
			continue
		}
		if donorUsed[donor] >= donor.DonorCapacity() {
			rejected[s.idx] = true
			continue
		}
		if acceptorUsed[acceptor] >= acceptor.AcceptorCapacity() {
			rejected[s.idx] = true
			continue
		}

		donorUsed[donor]++
		acceptorUsed[acceptor]++
		hydrogenUsed[hAtom] = true
	}

	out := make([]bond.Bond, 0, len(bonds))
	for i, b := range bonds {
		if rejected[i] {
			continue
		}
		out = append(out, b)
	}
	return out
}
