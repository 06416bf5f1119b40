package dataset

// Selection describes how to restrict a Dataset. Exactly one of its
// fields may be set; a nil field is unset, while an empty non-nil
// field is a selection of nothing.
type Selection struct {
	// Columns maps column names to accepted values. A Row is kept iff,
	// for every named column, its value is one of the accepted values.
	Columns map[string][]string

	// Mask holds one boolean per unit of the Dataset. Units are kept where true.
	Mask []bool

	// Groups lists GroupKeys, as returned by Dataset.Groups, to keep, in the order given.
	Groups []GroupKey

	// Positions lists unit positions to keep, in the order given.
	Positions []int
}

// Modes returns the names of the selection modes set on this Selection
func (s Selection) Modes() []string {
	modes := []string{}
	if s.Columns != nil {
		modes = append(modes, "columns")
	}
	if s.Mask != nil {
		modes = append(modes, "mask")
	}
	if s.Groups != nil {
		modes = append(modes, "groups")
	}
	if s.Positions != nil {
		modes = append(modes, "positions")
	}
	return modes
}

// ByColumn is a convenience for a single-column Selection
func ByColumn(colName string, values ...string) Selection {
	return Selection{Columns: map[string][]string{colName: values}}
}

// ByMask is a convenience for a boolean-mask Selection
func ByMask(mask []bool) Selection {
	return Selection{Mask: mask}
}

// ByGroups is a convenience for an explicit-groups Selection
func ByGroups(groups ...GroupKey) Selection {
	if groups == nil {
		groups = []GroupKey{}
	}
	return Selection{Groups: groups}
}

// ByPositions is a convenience for an explicit-positions Selection
func ByPositions(positions ...int) Selection {
	if positions == nil {
		positions = []int{}
	}
	return Selection{Positions: positions}
}
