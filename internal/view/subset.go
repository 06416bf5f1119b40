package view

import (
	"sort"

	"github.com/go-sif/dataset"
	"github.com/go-sif/dataset/errors"
	"github.com/go-sif/dataset/internal/grouping"
	iutil "github.com/go-sif/dataset/internal/util"
	"github.com/hashicorp/go-multierror"
)

// GetSubset returns a Dataset restricted according to a Selection. Exactly one
// selection mode must be set. The result keeps the grouping of this Dataset.
func (v *viewImpl) GetSubset(sel dataset.Selection) (dataset.Dataset, error) {
	modes := sel.Modes()
	if len(modes) != 1 {
		return nil, errors.AmbiguousSelectionError{Modes: modes}
	}
	var restriction []int
	var err error
	switch {
	case sel.Columns != nil:
		restriction, err = v.selectColumns(sel.Columns)
	case sel.Mask != nil:
		restriction, err = v.selectMask(sel.Mask)
	case sel.Groups != nil:
		restriction, err = v.selectGroups(sel.Groups)
	default:
		restriction, err = v.selectPositions(sel.Positions)
	}
	if err != nil {
		return nil, err
	}
	return v.derive(restriction), nil
}

// selectColumns keeps the rows of the restriction which hold an accepted value in every
// filtered column
func (v *viewImpl) selectColumns(filters map[string][]string) ([]int, error) {
	// sort for deterministic error reporting
	names := make([]string, 0, len(filters))
	for name := range filters {
		names = append(names, name)
	}
	sort.Strings(names)

	var multierr *multierror.Error
	cols := make([]int, 0, len(names))
	accepted := make([]map[string]bool, 0, len(names))
	for _, name := range names {
		pos, err := v.idx.ColumnPositions([]string{name})
		if err != nil {
			multierr = multierror.Append(multierr, err)
			continue
		}
		values := make(map[string]bool, len(filters[name]))
		for _, val := range filters[name] {
			values[val] = true
		}
		cols = append(cols, pos[0])
		accepted = append(accepted, values)
	}
	if multierr != nil {
		multierr.ErrorFormat = iutil.FormatMultiError
		return nil, multierr
	}

	restriction := []int{}
rows:
	for _, pos := range v.restriction {
		for i, c := range cols {
			if !accepted[i][v.idx.Value(pos, c)] {
				continue rows
			}
		}
		restriction = append(restriction, pos)
	}
	return restriction, nil
}

// selectMask keeps the rows of the units for which the mask is true, in restriction order
func (v *viewImpl) selectMask(mask []bool) ([]int, error) {
	if len(mask) != v.Len() {
		return nil, errors.LengthMismatchError{Length: len(mask), Expected: v.Len()}
	}
	if v.groups == nil {
		restriction := []int{}
		for i, keep := range mask {
			if keep {
				restriction = append(restriction, v.restriction[i])
			}
		}
		return restriction, nil
	}
	kept := make(map[int]bool)
	for i, keep := range mask {
		if keep {
			for _, pos := range v.unit(i) {
				kept[pos] = true
			}
		}
	}
	restriction := []int{}
	for _, pos := range v.restriction {
		if kept[pos] {
			restriction = append(restriction, pos)
		}
	}
	return restriction, nil
}

// selectGroups keeps the rows of the listed groups, in the order the groups are listed.
// In a grouped Dataset, listing a group twice is the same as listing it once. In an
// ungrouped Dataset every row is its own group, so each listed key takes the next row
// holding those values which has not been taken yet; keys listed more often than they
// occur are ignored once their rows run out.
func (v *viewImpl) selectGroups(keys []dataset.GroupKey) ([]int, error) {
	groups := v.groups
	if groups == nil {
		all := make([]int, v.idx.NumColumns())
		for i := range all {
			all[i] = i
		}
		groups = grouping.Compute(v.idx, v.restriction, all)
	}
	restriction := []int{}
	taken := make(map[int]int, len(keys))
	for _, key := range keys {
		gi, ok := groups.Find(key)
		if !ok {
			return nil, errors.UnknownGroupError{Group: key.Clone()}
		}
		members := groups.Members(gi)
		if v.groups == nil {
			if next := taken[gi]; next < len(members) {
				restriction = append(restriction, members[next])
				taken[gi] = next + 1
			}
			continue
		}
		if taken[gi] > 0 {
			continue
		}
		taken[gi] = 1
		restriction = append(restriction, members...)
	}
	return restriction, nil
}

// selectPositions keeps the units at the given positions, in the order given.
// Repeated positions repeat their rows; in a grouped Dataset the repeats fold
// back into a single group, since group identity is a value.
func (v *viewImpl) selectPositions(positions []int) ([]int, error) {
	n := v.Len()
	restriction := []int{}
	for _, p := range positions {
		if p < 0 || p >= n {
			return nil, errors.IndexRangeError{Position: p, Length: n}
		}
		restriction = append(restriction, v.unit(p)...)
	}
	return restriction, nil
}
