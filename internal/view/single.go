package view

import (
	"github.com/go-sif/dataset/errors"
	"github.com/go-sif/dataset/internal/grouping"
)

// countUnits returns the number of units obtained by grouping the restriction by
// colNames, or by every column if none are given
func (v *viewImpl) countUnits(colNames []string) (int, []string, error) {
	if len(colNames) == 0 {
		colNames = v.idx.ColumnNames()
	}
	cols, err := v.idx.ColumnPositions(colNames)
	if err != nil {
		return 0, nil, err
	}
	return grouping.CountDistinct(v.idx, v.restriction, cols), colNames, nil
}

// IsSingle returns true iff grouping this Dataset by the given columns (all columns,
// if none) yields exactly one unit. The grouping of this Dataset is not consulted.
func (v *viewImpl) IsSingle(colNames ...string) (bool, error) {
	n, _, err := v.countUnits(colNames)
	if err != nil {
		return false, err
	}
	return n == 1, nil
}

// AssertIsSingle returns a NotSingleUnitError naming contextName unless IsSingle holds
// for colNames. It is intended to guard operations which only make sense for a
// single data-point, such as loading its payload.
func (v *viewImpl) AssertIsSingle(colNames []string, contextName string) error {
	n, cols, err := v.countUnits(colNames)
	if err != nil {
		return err
	}
	if n != 1 {
		return errors.NotSingleUnitError{Context: contextName, Columns: cols, Units: n}
	}
	return nil
}
