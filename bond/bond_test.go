package bond

import (
	"math"
	"testing"

	"github.com/polyrin/rin/model"
	"github.com/polyrin/rin/residue"
)

func atom(name, element string, x, y, z float64) model.Atom {
	return model.Atom{Name: name, Element: element, X: x, Y: y, Z: z}
}

func buildResidue(t *testing.T, mr model.Residue) *residue.Residue {
	t.Helper()
	r, err := residue.Build(mr, "test", residue.SecondaryStructure{Kind: residue.SSNone}, residue.SkipResidue)
	if err != nil {
		t.Fatalf("residue.Build returned error: %v", err)
	}
	if r == nil {
		t.Fatal("residue.Build unexpectedly dropped the residue")
	}
	return r
}

func almostEqual(a, b, tolerance float64) bool {
	return math.Abs(a-b) <= tolerance
}

func TestLessOrdersByEnergyThenLength(t *testing.T) {
	a := &Generic{length: 5}
	b := &Generic{length: 3}
	// both energy 0, so tiebreak by length
	if !Less(b, a) {
		t.Error("expected shorter bond to be Less when energies are equal")
	}
}

func TestSatisfiesMinimumSeparation(t *testing.T) {
	his := buildResidue(t, model.Residue{Name: "HIS", ChainID: "A", SequenceNumber: 10, Atoms: []model.Atom{atom("CA", "C", 0, 0, 0)}})
	near := buildResidue(t, model.Residue{Name: "ALA", ChainID: "A", SequenceNumber: 11, Atoms: []model.Atom{atom("CA", "C", 1, 0, 0)}})
	far := buildResidue(t, model.Residue{Name: "ALA", ChainID: "A", SequenceNumber: 20, Atoms: []model.Atom{atom("CA", "C", 1, 0, 0)}})
	otherChain := buildResidue(t, model.Residue{Name: "ALA", ChainID: "B", SequenceNumber: 11, Atoms: []model.Atom{atom("CA", "C", 1, 0, 0)}})

	if SatisfiesMinimumSeparation(his, near, 3) {
		t.Error("residues 1 apart on the same chain should fail separation with seqSep=3")
	}
	if !SatisfiesMinimumSeparation(his, far, 3) {
		t.Error("residues 10 apart on the same chain should satisfy separation")
	}
	if !SatisfiesMinimumSeparation(his, otherChain, 3) {
		t.Error("residues on different chains should always satisfy separation")
	}
	if SatisfiesMinimumSeparation(his, his, 3) {
		t.Error("a residue should never satisfy separation against itself")
	}
}

func TestTestIonicHISAspPair(t *testing.T) {
	// Roughly reproduces ionion/2's HIS<->ASP pair shape (not the exact
	// fixture coordinates, which aren't reproduced here, but the same
	// predicate path: opposite charges, separated residues).
	his := buildResidue(t, model.Residue{
		Name: "HIS", ChainID: "A", SequenceNumber: 1,
		Atoms: []model.Atom{
			atom("CG", "C", 0, 0, 0), atom("CD2", "C", 1, 0, 0), atom("CE1", "C", 1, 1, 0),
			atom("ND1", "N", 0, 1, 0), atom("NE2", "N", 0.5, 1.5, 0),
		},
	})
	asp := buildResidue(t, model.Residue{
		Name: "ASP", ChainID: "A", SequenceNumber: 20,
		Atoms: []model.Atom{
			atom("CG", "C", 2, 0, 0), atom("OD1", "O", 3, 0, 0), atom("OD2", "O", 3, 1, 0),
		},
	})
	if his.PositiveGroup == nil {
		t.Fatal("HIS should have a positive ionic group")
	}
	if asp.NegativeGroup == nil {
		t.Fatal("ASP should have a negative ionic group")
	}

	got, err := TestIonic(his.PositiveGroup, asp.NegativeGroup, 3)
	if err != nil {
		t.Fatalf("TestIonic returned error: %v", err)
	}
	if got == nil {
		t.Fatal("expected an ionic bond between HIS and ASP")
	}
	if got.Kind() != IonicKind {
		t.Errorf("Kind() = %v, want IonicKind", got.Kind())
	}
}

func TestTestIonicRejectsSameSignPair(t *testing.T) {
	his1 := buildResidue(t, model.Residue{
		Name: "HIS", ChainID: "A", SequenceNumber: 1,
		Atoms: []model.Atom{
			atom("CG", "C", 0, 0, 0), atom("CD2", "C", 1, 0, 0), atom("CE1", "C", 1, 1, 0),
			atom("ND1", "N", 0, 1, 0), atom("NE2", "N", 0.5, 1.5, 0),
		},
	})
	his2 := buildResidue(t, model.Residue{
		Name: "HIS", ChainID: "A", SequenceNumber: 20,
		Atoms: []model.Atom{
			atom("CG", "C", 2, 0, 0), atom("CD2", "C", 3, 0, 0), atom("CE1", "C", 3, 1, 0),
			atom("ND1", "N", 2, 1, 0), atom("NE2", "N", 2.5, 1.5, 0),
		},
	})
	got, err := TestIonic(his1.PositiveGroup, his2.PositiveGroup, 3)
	if err != nil {
		t.Fatalf("TestIonic returned error: %v", err)
	}
	if got != nil {
		t.Error("two positive groups must never form an ionic bond")
	}
}

func TestTestHydrogenRequiresAttachedHydrogen(t *testing.T) {
	asn1 := buildResidue(t, model.Residue{
		Name: "ASN", ChainID: "A", SequenceNumber: 1,
		Atoms: []model.Atom{atom("OD1", "O", 0, 0, 0)},
	})
	asn2 := buildResidue(t, model.Residue{
		Name: "ASN", ChainID: "A", SequenceNumber: 20,
		Atoms: []model.Atom{atom("ND2", "N", 2, 0, 0)},
	})
	bonds := TestHydrogen(asn1.Atoms[0], asn2.Atoms[0], 63, 3)
	if len(bonds) != 0 {
		t.Error("a donor with no attached hydrogen must yield no hydrogen bonds")
	}
}

func TestTestHydrogenWithAttachedHydrogen(t *testing.T) {
	acceptorRes := buildResidue(t, model.Residue{
		Name: "ASN", ChainID: "A", SequenceNumber: 1,
		Atoms: []model.Atom{atom("OD1", "O", 0, 0, 0)},
	})
	donorRes := buildResidue(t, model.Residue{
		Name: "ASN", ChainID: "A", SequenceNumber: 20,
		Atoms: []model.Atom{
			atom("ND2", "N", 2, 0, 0),
			func() model.Atom { a := atom("1HD2", "H", 1, 0, 0); a.IsHydrogen = true; return a }(),
		},
	})
	donor := donorRes.Atoms[0]
	bonds := TestHydrogen(acceptorRes.Atoms[0], donor, 63, 3)
	if len(bonds) != 1 {
		t.Fatalf("expected 1 hydrogen bond, got %d", len(bonds))
	}
	b := bonds[0]
	if b.Kind() != HydrogenKind {
		t.Errorf("Kind() = %v, want HydrogenKind", b.Kind())
	}
	if b.Donor() != donor {
		t.Error("Donor() should return the donor atom the bond was built from")
	}
}

func TestTestVdWRejectsNonCandidateAtom(t *testing.T) {
	a := buildResidue(t, model.Residue{Name: "GLY", ChainID: "A", SequenceNumber: 1, Atoms: []model.Atom{atom("XX", "X", 0, 0, 0)}})
	b := buildResidue(t, model.Residue{Name: "GLY", ChainID: "A", SequenceNumber: 20, Atoms: []model.Atom{atom("CA", "C", 1, 0, 0)}})
	_, ok := TestVdW(a.Atoms[0], b.Atoms[0], 0.5, 3)
	if ok {
		t.Error("an atom outside the OPLS table must never produce a VdW bond")
	}
}

func TestTestVdWAcceptsCloseCandidates(t *testing.T) {
	a := buildResidue(t, model.Residue{Name: "GLY", ChainID: "A", SequenceNumber: 1, Atoms: []model.Atom{atom("CA", "C", 0, 0, 0)}})
	b := buildResidue(t, model.Residue{Name: "GLY", ChainID: "A", SequenceNumber: 20, Atoms: []model.Atom{atom("CA", "C", 3.8, 0, 0)}})
	got, ok := TestVdW(a.Atoms[0], b.Atoms[0], 0.5, 3)
	if !ok {
		t.Fatal("expected a VdW bond between two close GLY CA atoms")
	}
	if !almostEqual(got.Length(), 3.8, 1e-9) {
		t.Errorf("Length() = %v, want 3.8", got.Length())
	}
}

func TestTestGenericRejectsSameResidue(t *testing.T) {
	r := buildResidue(t, model.Residue{Name: "ALA", ChainID: "A", SequenceNumber: 1, Atoms: []model.Atom{atom("CA", "C", 0, 0, 0)}})
	_, ok := TestGeneric(r.Atoms[0], r.Atoms[0], Alpha, 3)
	if ok {
		t.Error("a carbon must never form a generic edge with itself")
	}
}

func TestTestGenericAccepts(t *testing.T) {
	a := buildResidue(t, model.Residue{Name: "ALA", ChainID: "A", SequenceNumber: 1, Atoms: []model.Atom{atom("CA", "C", 0, 0, 0)}})
	b := buildResidue(t, model.Residue{Name: "ALA", ChainID: "A", SequenceNumber: 20, Atoms: []model.Atom{atom("CA", "C", 5, 0, 0)}})
	got, ok := TestGeneric(a.Atoms[0], b.Atoms[0], Alpha, 3)
	if !ok {
		t.Fatal("expected a generic edge")
	}
	if got.ToEdge().InteractionLabel != "GENERIC:CA" {
		t.Errorf("InteractionLabel = %q, want GENERIC:CA", got.ToEdge().InteractionLabel)
	}
}

func TestNewSSFixedEnergy(t *testing.T) {
	b := NewSS("A:1:_:CYS", "A:50:_:CYS", 2.05)
	if b.Energy() != 167.0 {
		t.Errorf("Energy() = %v, want 167.0", b.Energy())
	}
	if b.ToEdge().InteractionLabel != "SSBOND:SC_SC" {
		t.Errorf("InteractionLabel = %q, want SSBOND:SC_SC", b.ToEdge().InteractionLabel)
	}
}
