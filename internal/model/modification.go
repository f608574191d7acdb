package model

import "sort"

// Modification is a single replacement: new text plus the range it replaces.
// The selection is expressed in the local coordinate space of the fragment
// that was read, not in absolute document coordinates.
type Modification struct {
	Code      Code
	Selection Selection
}

// ApplyModifications splices a batch of modifications into a fragment as one
// atomic edit. Modifications are applied back to front so earlier ranges stay
// valid while later ones are rewritten.
func ApplyModifications(fragment Code, modifications []Modification) Code {
	if len(modifications) == 0 {
		return fragment
	}

	sorted := make([]Modification, len(modifications))
	copy(sorted, modifications)

	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[j].Selection.Compare(sorted[i].Selection) < 0
	})

	result := fragment
	for _, mod := range sorted {
		result = result.Splice(mod.Selection, mod.Code)
	}

	return result
}
