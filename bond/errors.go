package bond

import "fmt"

// UnsupportedResidueError reports a per-residue constant lookup that has
// no entry: the ionic charge table (residues outside {LYS, ASP, HIS,
// ARG, GLU}) in TestIonic, or the pi-cation kappa/alpha tables in
// TestPiCation. The caller skips the pair; Test functions that use
// neither table never return it.
type UnsupportedResidueError struct {
	residueName string
	context     string
}

func (e *UnsupportedResidueError) Error() string {
	return fmt.Sprintf("bond: residue %q is not supported for %s", e.residueName, e.context)
}
