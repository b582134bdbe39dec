package residue

import "fmt"

// SecondaryStructureKind tags which of the four secondary-structure
// variants a Residue carries.
type SecondaryStructureKind int

const (
	SSNone SecondaryStructureKind = iota
	SSLoop
	SSHelix
	SSSheet
)

func (k SecondaryStructureKind) String() string {
	switch k {
	case SSNone:
		return "None"
	case SSLoop:
		return "Loop"
	case SSHelix:
		return "Helix"
	case SSSheet:
		return "Sheet"
	default:
		return "Unknown"
	}
}

// SecondaryStructure is the NONE | LOOP | HELIX{serial,start} |
// SHEET{id,start} tag from spec §3. Serial/Start are only meaningful
// when Kind is SSHelix; SheetID/Start only when Kind is SSSheet.
type SecondaryStructure struct {
	Kind    SecondaryStructureKind
	Serial  int
	SheetID string
	Start   int
}

func (s SecondaryStructure) String() string {
	switch s.Kind {
	case SSHelix:
		return fmt.Sprintf("Helix{serial=%d, start=%d}", s.Serial, s.Start)
	case SSSheet:
		return fmt.Sprintf("Sheet{id=%s, start=%d}", s.SheetID, s.Start)
	default:
		return s.Kind.String()
	}
}
