package bond

import "github.com/polyrin/rin/graph"

// SS is a disulfide bridge. Unlike every other kind it is never
// geometrically discovered — it is parsed verbatim from the model's
// explicit Connection records (spec §4.5), so there is no Test function
// here, only a constructor.
type SS struct {
	sourceResidueID, targetResidueID string
	length                           float64
}

// NewSS builds an SS bond from a parsed disulfide connection. Source and
// target atoms are always "SG" per spec §4.5, so they are not stored.
func NewSS(sourceResidueID, targetResidueID string, length float64) *SS {
	return &SS{sourceResidueID: sourceResidueID, targetResidueID: targetResidueID, length: length}
}

func (b *SS) Length() float64 { return b.length }

// Energy is the fixed 167 every disulfide bridge is assigned, per
// spec §4.5 — disulfides are parsed, not computed, so there is no
// formula to evaluate.
func (b *SS) Energy() float64 { return 167.0 }

func (b *SS) Kind() Kind { return SSKind }

func (b *SS) ResidueIDs() (string, string) { return b.sourceResidueID, b.targetResidueID }

func (b *SS) ToEdge() graph.Edge {
	return graph.Edge{
		SourceID:         b.sourceResidueID,
		TargetID:         b.targetResidueID,
		Length:           b.length,
		Energy:           b.Energy(),
		InteractionLabel: "SSBOND:SC_SC",
		SourceAtom:       "SG",
		TargetAtom:       "SG",
	}
}
