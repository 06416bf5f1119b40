package view

import (
	"github.com/go-sif/dataset/errors"
	"github.com/go-sif/dataset/internal/grouping"
	iutil "github.com/go-sif/dataset/internal/util"
)

// CreateGroupLabels returns one ordinal label per unit, derived from the given columns.
// For a grouped Dataset the columns must be a subset of the grouping columns, so that
// every row of a group agrees on them. Labels are handed out in order of first
// occurrence; two units share a label iff they agree on every given column.
func (v *viewImpl) CreateGroupLabels(colNames ...string) ([]int, error) {
	if len(colNames) == 0 {
		return nil, errors.EmptyColumnsError{Operation: "CreateGroupLabels"}
	}
	available := v.groupCols
	if available == nil {
		available = v.idx.ColumnNames()
	}
	if missing := iutil.ContainsAll(available, colNames); len(missing) > 0 {
		return nil, errors.InvalidColumnSubsetError{Columns: iutil.CopyStrings(colNames), Available: iutil.CopyStrings(available)}
	}
	cols, err := v.idx.ColumnPositions(colNames)
	if err != nil {
		return nil, err
	}
	return grouping.Labels(v.idx, v.units(), cols), nil
}
