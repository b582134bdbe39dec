package residue

import "fmt"

// IllformedPolicy governs how residue construction reacts to a ring or
// ionic group whose found atoms don't match the schema's expected set
// (spec §4.4 step 6).
type IllformedPolicy int

const (
	// Fail aborts construction with an IllformedGroupError.
	Fail IllformedPolicy = iota
	// SkipResidue drops the whole residue, returning (nil, nil).
	SkipResidue
	// KeepResidue logs a warning, drops only the offending group, and
	// keeps the rest of the residue.
	KeepResidue
	// KeepAll proceeds with whatever atoms were found; the caller is
	// responsible for the resulting group being chemically meaningless.
	KeepAll
)

// IllformedGroupError reports a ring or ionic-group atom-set mismatch
// found while building a Residue.
type IllformedGroupError struct {
	residueID string
	groupKind string // "ring" or "ionic group"
	expected  []string
	found     []string
}

func newIllformedGroupError(residueID, groupKind string, expected, found []string) *IllformedGroupError {
	return &IllformedGroupError{residueID: residueID, groupKind: groupKind, expected: expected, found: found}
}

func (e *IllformedGroupError) Error() string {
	return fmt.Sprintf("residue %s: illformed %s: expected atoms %v, found %v",
		e.residueID, e.groupKind, e.expected, e.found)
}

// ResidueID returns the id of the residue the group belongs to.
func (e *IllformedGroupError) ResidueID() string { return e.residueID }

// GroupKind returns "ring" or "ionic group".
func (e *IllformedGroupError) GroupKind() string { return e.groupKind }
