package util

import (
	"context"
	"fmt"

	"github.com/go-sif/dataset"
)

// SafeIndexGenerator wraps an IndexGenerator such that panics are recovered and nice error messages are constructed
func SafeIndexGenerator(name string, gen dataset.IndexGenerator) (safeGen dataset.IndexGenerator) {
	return func() (idx *dataset.RawIndex, err error) {
		defer func() {
			if r := recover(); r != nil {
				if anErr, ok := r.(error); ok {
					err = fmt.Errorf("Index Generator Panic (%s): %w\n%s", name, anErr, GetTrace())
				} else {
					err = fmt.Errorf("Index Generator Panic (%s): %v\n%s", name, r, GetTrace())
				}
			} else if err != nil {
				err = fmt.Errorf("Index Generator Error (%s): %w", name, err)
			}
		}()
		idx, err = gen()
		return
	}
}

// SafeLoadOperation wraps a LoadOperation such that panics are recovered and nice error messages are constructed
func SafeLoadOperation(name string, loadOp dataset.LoadOperation) (safeLoadOp dataset.LoadOperation) {
	return func(ctx context.Context, unit dataset.Dataset) (payload []byte, err error) {
		defer func() {
			if r := recover(); r != nil {
				if anErr, ok := r.(error); ok {
					err = fmt.Errorf("Load Panic (%s): %w\nUnit: %s\n%s", name, anErr, describeUnit(unit), GetTrace())
				} else {
					err = fmt.Errorf("Load Panic (%s): %v\nUnit: %s\n%s", name, r, describeUnit(unit), GetTrace())
				}
			} else if err != nil {
				err = fmt.Errorf("Load Error (%s): %w\nUnit: %s", name, err, describeUnit(unit))
			}
		}()
		payload, err = loadOp(ctx, unit)
		return
	}
}

// SafeUnitOperation wraps a UnitOperation such that panics are recovered and nice error messages are constructed
func SafeUnitOperation(unitOp dataset.UnitOperation) (safeUnitOp dataset.UnitOperation) {
	return func(i int, unit dataset.Dataset) (err error) {
		defer func() {
			if r := recover(); r != nil {
				if anErr, ok := r.(error); ok {
					err = fmt.Errorf("Unit Panic: %w\nUnit %d: %s\n%s", anErr, i, describeUnit(unit), GetTrace())
				} else {
					err = fmt.Errorf("Unit Panic: %v\nUnit %d: %s\n%s", r, i, describeUnit(unit), GetTrace())
				}
			}
		}()
		err = unitOp(i, unit)
		return
	}
}

// SafeFilterOperation wraps a FilterOperation such that panics are recovered and nice error messages are constructed
func SafeFilterOperation(filterOp dataset.FilterOperation) (safeFilterOp dataset.FilterOperation) {
	return func(unit dataset.Dataset) (keep bool, err error) {
		defer func() {
			if r := recover(); r != nil {
				if anErr, ok := r.(error); ok {
					err = fmt.Errorf("Filter Panic: %w\nUnit: %s\n%s", anErr, describeUnit(unit), GetTrace())
				} else {
					err = fmt.Errorf("Filter Panic: %v\nUnit: %s\n%s", r, describeUnit(unit), GetTrace())
				}
			} else if err != nil {
				err = fmt.Errorf("Filter Error: %w\nUnit: %s", err, describeUnit(unit))
			}
		}()
		keep, err = filterOp(unit)
		return
	}
}

func describeUnit(unit dataset.Dataset) string {
	if unit == nil || unit.NumRows() == 0 {
		return "<empty>"
	}
	row, err := unit.Row(0)
	if err != nil {
		return "<unavailable>"
	}
	if unit.NumRows() == 1 {
		return row.ToString()
	}
	return fmt.Sprintf("%s (+%d rows)", row.ToString(), unit.NumRows()-1)
}
