/*
Package residue builds the chemical-feature model of a protein: residues
as collections of atoms plus the derived rings, ionic groups, and
backbone carbons the rest of the core searches over. Construction is the
only place a Residue is ever mutated; everything after Build returns is
read-only.
*/
package residue

import (
	"fmt"
	"log"
	"runtime"
	"sync"

	"github.com/polyrin/rin/chem"
	"github.com/polyrin/rin/geometry"
	"github.com/polyrin/rin/model"
)

// Residue is one residue's worth of built chemical features: its atoms
// in file order, the (at most) two derived aromatic rings, the (at most
// one each) positive/negative ionic groups, its backbone alpha/beta
// carbons, its mass-weighted centroid, and its secondary-structure tag.
type Residue struct {
	ID             string
	Name           string
	ChainID        string
	SequenceNumber int
	ProteinName    string

	Atoms []*Atom
	Alpha *Atom
	Beta  *Atom

	Ring1          *Ring
	Ring2          *Ring
	PositiveGroup  *IonicGroup
	NegativeGroup  *IonicGroup
	SecondaryStruct SecondaryStructure

	Pos geometry.Vector
}

// Position implements kdtree.Point.
func (r *Residue) Position() geometry.Vector { return r.Pos }

func residueID(chain string, seq int, name string) string {
	return fmt.Sprintf("%s:%d:_:%s", chain, seq, name)
}

// Build constructs a single Residue from its atom records. ss is the
// already-resolved secondary-structure tag (looked up by the caller from
// the model's helix/sheet interval records, per spec §4.4 step 7).
//
// Build returns (nil, nil) under SkipResidue when the whole residue is
// dropped; it returns a nil Residue and a non-nil error when the policy
// is Fail and a group mismatch aborts construction.
func Build(mr model.Residue, proteinName string, ss SecondaryStructure, policy IllformedPolicy) (*Residue, error) {
	id := residueID(mr.ChainID, mr.SequenceNumber, mr.Name)

	res := &Residue{
		ID:              id,
		Name:            mr.Name,
		ChainID:         mr.ChainID,
		SequenceNumber:  mr.SequenceNumber,
		ProteinName:     proteinName,
		SecondaryStruct: ss,
	}

	res.Atoms = make([]*Atom, len(mr.Atoms))
	for i, ma := range mr.Atoms {
		res.Atoms[i] = &Atom{
			Name:       ma.Name,
			Element:    ma.Element,
			Pos:        geometry.Vector{ma.X, ma.Y, ma.Z},
			Charge:     ma.Charge,
			TempFactor: ma.TempFactor,
			Serial:     ma.Serial,
			IsHydrogen: ma.IsHydrogen,
			Residue:    res,
		}
	}

	for _, a := range res.Atoms {
		switch a.Name {
		case "CA":
			res.Alpha = a
		case "CB":
			res.Beta = a
		}
	}

	expectedRings := chem.RingAtoms(mr.Name)
	expectedPositive := chem.PositiveIonicAtoms(mr.Name)
	expectedNegative := chem.NegativeIonicAtoms(mr.Name)

	var ring1Atoms, ring2Atoms, positiveAtoms, negativeAtoms []*Atom
	for _, a := range res.Atoms {
		if len(expectedRings) > 0 && contains(expectedRings[0], a.Name) {
			ring1Atoms = append(ring1Atoms, a)
		}
		if len(expectedRings) > 1 && contains(expectedRings[1], a.Name) {
			ring2Atoms = append(ring2Atoms, a)
		}
		if contains(expectedPositive, a.Name) {
			positiveAtoms = append(positiveAtoms, a)
		}
		if contains(expectedNegative, a.Name) {
			negativeAtoms = append(negativeAtoms, a)
		}
	}

	positions := make([]geometry.Vector, len(res.Atoms))
	masses := make([]float64, len(res.Atoms))
	for i, a := range res.Atoms {
		positions[i] = a.Pos
		masses[i] = a.Mass()
	}
	res.Pos = geometry.Centroid(positions, masses)

	if len(ring1Atoms) > 0 {
		ring, err := buildRing(id, mr.Name, ring1Atoms, expectedRings[0])
		keep, abort, abortErr := resolveGroupError(policy, err)
		if abort {
			return nil, abortErr
		}
		if keep {
			res.Ring1 = ring
		}
	}
	if len(ring2Atoms) > 0 {
		ring, err := buildRing(id, mr.Name, ring2Atoms, expectedRings[1])
		keep, abort, abortErr := resolveGroupError(policy, err)
		if abort {
			return nil, abortErr
		}
		if keep {
			res.Ring2 = ring
		}
	}
	if len(positiveAtoms) > 0 {
		group, err := buildIonicGroup(id, mr.Name, positiveAtoms, +1, expectedPositive)
		keep, abort, abortErr := resolveGroupError(policy, err)
		if abort {
			return nil, abortErr
		}
		if keep {
			res.PositiveGroup = group
		}
	}
	if len(negativeAtoms) > 0 {
		group, err := buildIonicGroup(id, mr.Name, negativeAtoms, -1, expectedNegative)
		keep, abort, abortErr := resolveGroupError(policy, err)
		if abort {
			return nil, abortErr
		}
		if keep {
			res.NegativeGroup = group
		}
	}

	return res, nil
}

// resolveGroupError interprets a possible IllformedGroupError from
// building one ring or ionic group according to policy. abort reports
// that the caller must stop building this whole residue right now and
// return (nil, abortErr) — abortErr is non-nil under Fail (and for an
// unrecognized policy value), nil under SkipResidue. keep
// reports whether the just-built group should be attached to the
// residue at all.
func resolveGroupError(policy IllformedPolicy, err error) (keep, abort bool, abortErr error) {
	if err == nil {
		return true, false, nil
	}
	switch policy {
	case Fail:
		return false, true, err
	case SkipResidue:
		return false, true, nil
	case KeepResidue:
		log.Printf("residue: %v (group dropped, residue kept)", err)
		return false, false, nil
	case KeepAll:
		return true, false, nil
	default:
		return false, true, err
	}
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

// BuildAll builds every residue in a model, resolving secondary-structure
// tags from the model's helix/sheet interval records once up front. Per
// SPEC_FULL §5, construction fans out across a bounded worker pool when
// there are enough residues to make that worthwhile; results preserve
// input order regardless.
func BuildAll(m model.Model, policy IllformedPolicy) ([]*Residue, error) {
	index := newSecondaryIndex(m)

	type result struct {
		res *Residue
		err error
	}
	results := make([]result, len(m.Residues))

	build := func(i int) {
		mr := m.Residues[i]
		ss := index.lookup(mr.ChainID, mr.SequenceNumber)
		res, err := Build(mr, m.ProteinName, ss, policy)
		results[i] = result{res: res, err: err}
	}

	const parallelThreshold = 64
	if len(m.Residues) < parallelThreshold {
		for i := range m.Residues {
			build(i)
		}
	} else {
		workers := runtime.GOMAXPROCS(0)
		if workers < 1 {
			workers = 1
		}
		var wg sync.WaitGroup
		jobs := make(chan int)
		for w := 0; w < workers; w++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				for i := range jobs {
					build(i)
				}
			}()
		}
		for i := range m.Residues {
			jobs <- i
		}
		close(jobs)
		wg.Wait()
	}

	out := make([]*Residue, 0, len(m.Residues))
	for _, r := range results {
		if r.err != nil {
			return nil, r.err
		}
		if r.res != nil {
			out = append(out, r.res)
		}
	}
	return out, nil
}

// secondaryIndex resolves a (chain, seq) pair to the SecondaryStructure
// tag spec §4.4 step 7 describes: a matching helix or sheet interval
// wins; otherwise LOOP if the model carries any annotations at all, else
// NONE.
type secondaryIndex struct {
	helices []model.HelixRecord
	sheets  []model.SheetRecord
}

func newSecondaryIndex(m model.Model) *secondaryIndex {
	return &secondaryIndex{helices: m.Helices, sheets: m.Sheets}
}

func (idx *secondaryIndex) lookup(chain string, seq int) SecondaryStructure {
	for _, h := range idx.helices {
		if h.ChainID == chain && seq >= h.StartSeq && seq <= h.EndSeq {
			return SecondaryStructure{Kind: SSHelix, Serial: h.Serial, Start: h.StartSeq}
		}
	}
	for _, s := range idx.sheets {
		if s.ChainID == chain && seq >= s.StartSeq && seq <= s.EndSeq {
			return SecondaryStructure{Kind: SSSheet, SheetID: s.ID, Start: s.StartSeq}
		}
	}
	if len(idx.helices) > 0 || len(idx.sheets) > 0 {
		return SecondaryStructure{Kind: SSLoop}
	}
	return SecondaryStructure{Kind: SSNone}
}
