// Package view implements Datasets: immutable Views over an index
package view

import (
	"fmt"

	"github.com/go-sif/dataset"
	"github.com/go-sif/dataset/errors"
	"github.com/go-sif/dataset/internal/grouping"
	"github.com/go-sif/dataset/internal/index"
	iutil "github.com/go-sif/dataset/internal/util"
)

// A viewImpl implements Dataset. It owns no data: it references a shared
// Index and holds the grouping columns and restriction over it. No method
// mutates a viewImpl after newView returns.
type viewImpl struct {
	name        string
	idx         *index.Index
	groupCols   []string         // nil if ungrouped
	groupColPos []int            // positions of groupCols within index rows
	restriction []int            // positions into idx, shared between views and never modified
	groups      *grouping.Groups // nil if ungrouped
}

// CreateDataset is a factory for Datasets. This function is not intended to be used
// directly, as Datasets are returned by the datasource package.
func CreateDataset(name string, idx *index.Index, groupBy []string) (dataset.Dataset, error) {
	restriction := make([]int, idx.NumRows())
	for i := range restriction {
		restriction[i] = i
	}
	root := newView(name, idx, nil, nil, restriction)
	if len(groupBy) == 0 {
		return root, nil
	}
	return root.GroupBy(groupBy...)
}

func newView(name string, idx *index.Index, groupCols []string, groupColPos []int, restriction []int) *viewImpl {
	v := &viewImpl{
		name:        name,
		idx:         idx,
		groupCols:   groupCols,
		groupColPos: groupColPos,
		restriction: restriction,
	}
	if groupCols != nil {
		v.groups = grouping.Compute(idx, restriction, groupColPos)
	}
	return v
}

// derive creates a View over the same Index with the same grouping and a new restriction
func (v *viewImpl) derive(restriction []int) *viewImpl {
	return newView(v.name, v.idx, v.groupCols, v.groupColPos, restriction)
}

// IndexID returns the unique ID of the index this Dataset is a View of
func (v *viewImpl) IndexID() string {
	return v.idx.ID()
}

// Name returns the configured name of this Dataset
func (v *viewImpl) Name() string {
	return v.name
}

// Schema returns the Schema of the underlying index
func (v *viewImpl) Schema() dataset.Schema {
	return v.idx.Schema()
}

// Columns returns the names of all index columns, in Schema order
func (v *viewImpl) Columns() []string {
	return v.idx.ColumnNames()
}

// GroupedBy returns the active grouping columns, or nil if ungrouped
func (v *viewImpl) GroupedBy() []string {
	return iutil.CopyStrings(v.groupCols)
}

// IsGrouped returns true iff this Dataset is grouped
func (v *viewImpl) IsGrouped() bool {
	return v.groupCols != nil
}

// NumRows returns the number of index Rows this Dataset spans
func (v *viewImpl) NumRows() int {
	return len(v.restriction)
}

// Positions returns a copy of the restriction of this Dataset
func (v *viewImpl) Positions() []int {
	res := make([]int, len(v.restriction))
	copy(res, v.restriction)
	return res
}

// Rows returns the Rows this Dataset spans, in restriction order
func (v *viewImpl) Rows() []dataset.Row {
	rows := make([]dataset.Row, len(v.restriction))
	for i, pos := range v.restriction {
		rows[i] = v.idx.Row(pos)
	}
	return rows
}

// Row returns the i-th Row this Dataset spans
func (v *viewImpl) Row(i int) (dataset.Row, error) {
	if i < 0 || i >= len(v.restriction) {
		return nil, errors.IndexRangeError{Position: i, Length: len(v.restriction)}
	}
	return v.idx.Row(v.restriction[i]), nil
}

// Len returns the number of units in this Dataset
func (v *viewImpl) Len() int {
	if v.groups != nil {
		return v.groups.Len()
	}
	return len(v.restriction)
}

// unit returns the positions belonging to the i-th unit. The result must not be modified.
func (v *viewImpl) unit(i int) []int {
	if v.groups != nil {
		return v.groups.Members(i)
	}
	return v.restriction[i : i+1]
}

// units returns the positions of every unit, in unit order
func (v *viewImpl) units() [][]int {
	res := make([][]int, v.Len())
	for i := range res {
		res[i] = v.unit(i)
	}
	return res
}

// At returns a single-unit Dataset for the i-th unit
func (v *viewImpl) At(i int) (dataset.Dataset, error) {
	if i < 0 || i >= v.Len() {
		return nil, errors.IndexRangeError{Position: i, Length: v.Len()}
	}
	members := v.unit(i)
	restriction := make([]int, len(members))
	copy(restriction, members)
	return v.derive(restriction), nil
}

// Groups returns one GroupKey per unit. For ungrouped Datasets, keys span all columns.
func (v *viewImpl) Groups() []dataset.GroupKey {
	if v.groups != nil {
		return v.groups.Keys()
	}
	res := make([]dataset.GroupKey, len(v.restriction))
	for i, pos := range v.restriction {
		res[i] = dataset.GroupKey(v.idx.Values(pos)).Clone()
	}
	return res
}

// Unique returns the distinct values of a column, in order of first occurrence
func (v *viewImpl) Unique(colName string) ([]string, error) {
	cols, err := v.idx.ColumnPositions([]string{colName})
	if err != nil {
		return nil, err
	}
	g := grouping.Compute(v.idx, v.restriction, cols)
	res := make([]string, g.Len())
	for i := range res {
		res[i] = g.Key(i)[0]
	}
	return res, nil
}

// GroupBy returns a Dataset grouped by the given columns, with the same restriction.
// No columns removes grouping.
func (v *viewImpl) GroupBy(colNames ...string) (dataset.Dataset, error) {
	if len(colNames) == 0 {
		return newView(v.name, v.idx, nil, nil, v.restriction), nil
	}
	pos, err := v.idx.ColumnPositions(colNames)
	if err != nil {
		return nil, err
	}
	return newView(v.name, v.idx, iutil.CopyStrings(colNames), pos, v.restriction), nil
}

// ForEach calls fn for every unit, in order, stopping at the first error
func (v *viewImpl) ForEach(fn func(i int, unit dataset.Dataset) error) error {
	safeFn := iutil.SafeUnitOperation(fn)
	it := v.Iterate()
	for i := 0; it.HasNext(); i++ {
		unit, err := it.Next()
		if err != nil {
			return err
		}
		if err := safeFn(i, unit); err != nil {
			return err
		}
	}
	return nil
}

// To is a "functional operations" factory method for Datasets,
// chaining operations onto the current one(s).
func (v *viewImpl) To(ops ...dataset.DatasetOperation) (dataset.Dataset, error) {
	var next dataset.Dataset = v
	for i, op := range ops {
		result, err := op(next)
		if err != nil {
			return nil, fmt.Errorf("operation %d: %w", i, err)
		}
		next = result
	}
	return next, nil
}

// Equals returns true iff both Datasets view the same index with the same grouping and restriction
func (v *viewImpl) Equals(other dataset.Dataset) bool {
	if other == nil || v.IndexID() != other.IndexID() || v.IsGrouped() != other.IsGrouped() {
		return false
	}
	if !dataset.GroupKey(v.groupCols).Equal(other.GroupedBy()) {
		return false
	}
	otherPositions := other.Positions()
	if len(otherPositions) != len(v.restriction) {
		return false
	}
	for i, pos := range v.restriction {
		if otherPositions[i] != pos {
			return false
		}
	}
	return true
}

// String returns a short description of this Dataset
func (v *viewImpl) String() string {
	if v.groups != nil {
		return fmt.Sprintf("%s [%d groups over %v, %d rows]", v.name, v.Len(), v.groupCols, len(v.restriction))
	}
	return fmt.Sprintf("%s [%d rows]", v.name, len(v.restriction))
}
