/*
Package rin is the pipeline orchestrator (C8): it turns a parsed
model.Model and a Params configuration into the output graph.Graph,
wiring together residue, bond, and network exactly as spec §4.8
describes.
*/
package rin

import (
	"fmt"

	"github.com/polyrin/rin/bond"
	"github.com/polyrin/rin/chem"
	"github.com/polyrin/rin/graph"
	"github.com/polyrin/rin/kdtree"
	"github.com/polyrin/rin/model"
	"github.com/polyrin/rin/network"
	"github.com/polyrin/rin/residue"
)

// ComputeRIN builds residues from m, enumerates candidate interactions
// per p.InteractionType, projects the aggregator via p.NetworkPolicy,
// optionally applies the hydrogen-bond realism filter, and materializes
// the result graph. The only error path is residue construction failing
// under the Fail illformed policy; a malformed individual bond predicate
// never aborts the whole run.
func ComputeRIN(m model.Model, p Params) (*graph.Graph, error) {
	residues, err := residue.BuildAll(m, p.IllformedPolicy)
	if err != nil {
		return nil, err
	}

	byID := make(map[string]*residue.Residue, len(residues))
	for _, r := range residues {
		byID[r.ID] = r
	}

	agg := network.New()

	if p.InteractionType == ContactMap {
		runContactMap(agg, residues, p)
	} else {
		runNonCovalent(agg, residues, p)
		pushSSConnections(agg, m, byID)
	}

	var bonds []bond.Bond
	switch p.NetworkPolicy {
	case PolicyBestPerType:
		bonds = agg.GetMultiple()
	case PolicyBestOne:
		bonds = agg.GetOne()
	default:
		bonds = agg.GetAll()
	}

	if p.HBondRealistic {
		bonds = network.ApplyHydrogenRealism(bonds)
	}

	return materialize(residues, bonds), nil
}

// features holds the flattened search vectors spec §4.8 step 1 names.
type features struct {
	donors, acceptors, vdwAtoms, cations, alphas, betas []*residue.Atom
	rings, picationRings                                []*residue.Ring
	positives, negatives                                []*residue.IonicGroup
}

func flatten(residues []*residue.Residue) features {
	var f features
	for _, r := range residues {
		for _, a := range r.Atoms {
			if a.IsDonor() {
				f.donors = append(f.donors, a)
			}
			if a.IsAcceptor() {
				f.acceptors = append(f.acceptors, a)
			}
			if a.IsVdWCandidate() {
				f.vdwAtoms = append(f.vdwAtoms, a)
			}
			if a.IsCation() {
				f.cations = append(f.cations, a)
			}
		}
		for _, ring := range []*residue.Ring{r.Ring1, r.Ring2} {
			if ring == nil {
				continue
			}
			f.rings = append(f.rings, ring)
			if ring.PiCationCandidate() {
				f.picationRings = append(f.picationRings, ring)
			}
		}
		if r.PositiveGroup != nil {
			f.positives = append(f.positives, r.PositiveGroup)
		}
		if r.NegativeGroup != nil {
			f.negatives = append(f.negatives, r.NegativeGroup)
		}
		if r.Alpha != nil {
			f.alphas = append(f.alphas, r.Alpha)
		}
		if r.Beta != nil {
			f.betas = append(f.betas, r.Beta)
		}
	}
	return f
}

// runNonCovalent implements spec §4.8 step 3's NONCOVALENT branch: one
// range-search-then-predicate pass per interaction kind.
func runNonCovalent(agg *network.Aggregator, residues []*residue.Residue, p Params) {
	f := flatten(residues)

	vdwTree := kdtree.New(f.vdwAtoms)
	vdwSearchRadius := p.SurfaceDistVdW + 2*chem.MaxVdWRadius
	for _, a := range f.vdwAtoms {
		for _, b := range vdwTree.RangeSearch(a.Position(), vdwSearchRadius) {
			if bnd, ok := bond.TestVdW(a, b, p.SurfaceDistVdW, p.SequenceSeparation); ok {
				agg.Push(bnd)
			}
		}
	}

	positiveTree := kdtree.New(f.positives)
	for _, neg := range f.negatives {
		for _, pos := range positiveTree.RangeSearch(neg.Position(), p.QueryDistIonic) {
			if bnd, err := bond.TestIonic(pos, neg, p.SequenceSeparation); err == nil && bnd != nil {
				agg.Push(bnd)
			}
		}
	}

	donorTree := kdtree.New(f.donors)
	for _, acceptor := range f.acceptors {
		for _, donor := range donorTree.RangeSearch(acceptor.Position(), p.QueryDistHBond) {
			for _, h := range bond.TestHydrogen(acceptor, donor, p.HBondAngle, p.SequenceSeparation) {
				agg.Push(h)
			}
		}
	}

	picationRingTree := kdtree.New(f.picationRings)
	for _, cation := range f.cations {
		for _, ring := range picationRingTree.RangeSearch(cation.Position(), p.QueryDistPiCat) {
			if bnd, err := bond.TestPiCation(cation, ring, p.PiCationAngle, p.SequenceSeparation); err == nil && bnd != nil {
				agg.Push(bnd)
			}
		}
	}

	ringTree := kdtree.New(f.rings)
	pipiParams := bond.PiStackParams{
		NormalNormalAngleRange: p.PiPiNormalNormalAngleRange,
		NormalCentreAngleRange: p.PiPiNormalCentreAngleRange,
		MaxAtomAtomDistance:    p.MaxPiPiAtomAtomDistance,
		Constants:              p.PiStack,
	}
	for _, a := range f.rings {
		for _, b := range ringTree.RangeSearch(a.Position(), p.QueryDistPiPi) {
			if bnd, ok := bond.TestPiPi(a, b, pipiParams, p.SequenceSeparation); ok {
				agg.Push(bnd)
			}
		}
	}
}

// runContactMap implements spec §4.8 step 3's CONTACT_MAP branch.
func runContactMap(agg *network.Aggregator, residues []*residue.Residue, p Params) {
	f := flatten(residues)

	carbons, carbonKind := f.alphas, bond.Alpha
	if p.CmapType == CmapBeta {
		carbons, carbonKind = f.betas, bond.Beta
	}

	tree := kdtree.New(carbons)
	for _, a := range carbons {
		for _, b := range tree.RangeSearch(a.Position(), p.QueryDistCmap) {
			if bnd, ok := bond.TestGeneric(a, b, carbonKind, p.SequenceSeparation); ok {
				agg.Push(bnd)
			}
		}
	}
}

// pushSSConnections copies the model's explicit disulfide Connection
// records into the aggregator, per spec §4.8 step 3's "additionally
// copy parsed SS bonds" instruction. A connection naming a residue that
// didn't survive BuildAll (e.g. dropped under SkipResidue) is silently
// skipped, matching the rest of the pipeline's soft-fail-per-pair rule.
func pushSSConnections(agg *network.Aggregator, m model.Model, byID map[string]*residue.Residue) {
	for _, c := range m.Connections {
		if c.Kind != model.SS {
			continue
		}
		sourceID := endpointResidueID(c.A)
		targetID := endpointResidueID(c.B)
		if _, ok := byID[sourceID]; !ok {
			continue
		}
		if _, ok := byID[targetID]; !ok {
			continue
		}
		agg.Push(bond.NewSS(sourceID, targetID, c.Distance))
	}
}

func endpointResidueID(e model.ConnectionEndpoint) string {
	return fmt.Sprintf("%s:%d:_:%s", e.ChainID, e.SequenceNumber, e.ResidueName)
}

// materialize builds the output graph: one node per residue (spec §4.9's
// node field set), then one edge per projected/filtered bond.
func materialize(residues []*residue.Residue, bonds []bond.Bond) *graph.Graph {
	g := graph.New()
	for _, r := range residues {
		var bfactor *float64
		if r.Alpha != nil {
			v := r.Alpha.TempFactor
			bfactor = &v
		}
		g.AddNode(graph.Node{
			ID:                 r.ID,
			Chain:              r.ChainID,
			SequenceNumber:     r.SequenceNumber,
			Name:               r.Name,
			X:                  r.Pos[0],
			Y:                  r.Pos[1],
			Z:                  r.Pos[2],
			BFactorCA:          bfactor,
			SecondaryStructure: r.SecondaryStruct.String(),
			ProteinName:        r.ProteinName,
		})
	}
	for _, b := range bonds {
		g.AddEdge(b.ToEdge())
	}
	return g
}
