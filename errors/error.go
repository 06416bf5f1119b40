package errors

import (
	"fmt"
	"strings"
)

// EmptyIndexError occurs when an IndexGenerator produces an index without Rows
type EmptyIndexError struct{ Name string }

// Error returns a textual representation of this EmptyIndexError
func (e EmptyIndexError) Error() string {
	return fmt.Sprintf("Index generator for %s returned zero rows", e.Name)
}

// IncompatibleRowError occurs when a Row's width does not match the number of index columns
type IncompatibleRowError struct {
	Position int
	Width    int
	Expected int
}

// Error returns a textual representation of this IncompatibleRowError
func (e IncompatibleRowError) Error() string {
	return fmt.Sprintf("Row %d has %d values, but the index has %d columns", e.Position, e.Width, e.Expected)
}

// DuplicateColumnError occurs when a column name is used twice in an index or column list
type DuplicateColumnError struct{ Name string }

// Error returns a textual representation of this DuplicateColumnError
func (e DuplicateColumnError) Error() string {
	return fmt.Sprintf("Column %s appears more than once", e.Name)
}

// EmptyColumnsError occurs when an operation requiring at least one column is given none
type EmptyColumnsError struct{ Operation string }

// Error returns a textual representation of this EmptyColumnsError
func (e EmptyColumnsError) Error() string {
	return fmt.Sprintf("%s requires at least one column", e.Operation)
}

// UnknownColumnError occurs when a column name does not exist in the index
type UnknownColumnError struct{ Name string }

// Error returns a textual representation of this UnknownColumnError
func (e UnknownColumnError) Error() string {
	return fmt.Sprintf("Index does not contain column with name %s", e.Name)
}

// NonDeterministicIndexError occurs when two invocations of an IndexGenerator produce different indices
type NonDeterministicIndexError struct {
	Name   string
	First  uint64
	Second uint64
}

// Error returns a textual representation of this NonDeterministicIndexError
func (e NonDeterministicIndexError) Error() string {
	return fmt.Sprintf("Index generator for %s is not deterministic: fingerprint %016x changed to %016x", e.Name, e.First, e.Second)
}

// AmbiguousSelectionError occurs when a Selection sets zero or more than one selection mode
type AmbiguousSelectionError struct{ Modes []string }

// Error returns a textual representation of this AmbiguousSelectionError
func (e AmbiguousSelectionError) Error() string {
	if len(e.Modes) == 0 {
		return "Selection must set exactly one of columns, mask, groups or positions, but none were set"
	}
	return fmt.Sprintf("Selection must set exactly one of columns, mask, groups or positions, but %s were set", strings.Join(e.Modes, ", "))
}

// LengthMismatchError occurs when a boolean mask or a list of unit labels is not aligned with the units of a Dataset
type LengthMismatchError struct {
	Length   int
	Expected int
}

// Error returns a textual representation of this LengthMismatchError
func (e LengthMismatchError) Error() string {
	return fmt.Sprintf("Length %d does not match the %d units of the Dataset", e.Length, e.Expected)
}

// UnknownGroupError occurs when a GroupKey does not identify a group of a Dataset
type UnknownGroupError struct{ Group []string }

// Error returns a textual representation of this UnknownGroupError
func (e UnknownGroupError) Error() string {
	return fmt.Sprintf("Group (%s) does not exist in the Dataset", strings.Join(e.Group, ", "))
}

// IndexRangeError occurs when a unit position is negative or beyond the end of a Dataset
type IndexRangeError struct {
	Position int
	Length   int
}

// Error returns a textual representation of this IndexRangeError
func (e IndexRangeError) Error() string {
	return fmt.Sprintf("Position %d is out of range for a Dataset with %d units", e.Position, e.Length)
}

// InvalidColumnSubsetError occurs when label columns are not a subset of the columns available for labelling
type InvalidColumnSubsetError struct {
	Columns   []string
	Available []string
}

// Error returns a textual representation of this InvalidColumnSubsetError
func (e InvalidColumnSubsetError) Error() string {
	return fmt.Sprintf("Columns [%s] are not a subset of [%s]", strings.Join(e.Columns, ", "), strings.Join(e.Available, ", "))
}

// NotSingleUnitError occurs when an operation requiring a single unit is applied to a Dataset with zero or several
type NotSingleUnitError struct {
	Context string
	Columns []string
	Units   int
}

// Error returns a textual representation of this NotSingleUnitError
func (e NotSingleUnitError) Error() string {
	return fmt.Sprintf("%s can only be accessed on a Dataset with exactly one unit over [%s], but it has %d", e.Context, strings.Join(e.Columns, ", "), e.Units)
}

// NoMoreUnitsError occurs when there are no more units in a UnitIterator
type NoMoreUnitsError struct{}

// Error returns a textual representation of this NoMoreUnitsError
func (e NoMoreUnitsError) Error() string {
	return "No more units"
}
