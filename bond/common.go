package bond

import "github.com/polyrin/rin/residue"

// SatisfiesMinimumSeparation implements spec §4.5's
// satisfies_minimum_separation(a,b): distinct residues, and either on
// different chains or at least seqSep apart in sequence number on the
// same chain.
func SatisfiesMinimumSeparation(a, b *residue.Residue, seqSep int) bool {
	if a == b || a.ID == b.ID {
		return false
	}
	if a.ChainID != b.ChainID {
		return true
	}
	diff := a.SequenceNumber - b.SequenceNumber
	if diff < 0 {
		diff = -diff
	}
	return diff >= seqSep
}

// mainChainLabel returns "MC" or "SC" for an atom, per spec §4.5's
// orientation-label convention.
func mainChainLabel(isMainChain bool) string {
	if isMainChain {
		return "MC"
	}
	return "SC"
}

func ptr(f float64) *float64 { return &f }
func sptr(s string) *string  { return &s }
