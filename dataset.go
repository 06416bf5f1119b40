package dataset

// A Dataset is an immutable View over the index of a dataset: a reference
// to a shared index, a (possibly empty) list of grouping columns and a
// restriction, the ordered list of index positions the View spans.
// Every transformation returns a new Dataset, so Datasets can be shared
// freely between goroutines.
//
// Length and iteration are measured in units: one Row if the Dataset is
// ungrouped, one group if it is grouped.
type Dataset interface {
	Sequence
	// IndexID returns the unique ID of the index this Dataset is a View of
	IndexID() string
	// Name returns the configured name of this Dataset
	Name() string
	// Schema returns the Schema of the underlying index
	Schema() Schema
	// Columns returns the names of all index columns, in Schema order
	Columns() []string
	// GroupedBy returns the active grouping columns, or nil if ungrouped
	GroupedBy() []string
	// IsGrouped returns true iff this Dataset is grouped
	IsGrouped() bool
	// NumRows returns the number of index Rows this Dataset spans
	NumRows() int
	// Positions returns a copy of the restriction of this Dataset
	Positions() []int
	// Rows returns the Rows this Dataset spans, in restriction order
	Rows() []Row
	// Row returns the i-th Row this Dataset spans
	Row(i int) (Row, error)
	// Groups returns one GroupKey per unit. For ungrouped Datasets, keys span all columns.
	Groups() []GroupKey
	// Unique returns the distinct values of a column, in order of first occurrence
	Unique(colName string) ([]string, error)
	// GroupBy returns a Dataset grouped by the given columns. No columns removes grouping.
	GroupBy(colNames ...string) (Dataset, error)
	// GetSubset returns a Dataset restricted according to a Selection
	GetSubset(sel Selection) (Dataset, error)
	// IsSingle returns true iff grouping by the given columns (all columns, if none) yields exactly one unit
	IsSingle(colNames ...string) (bool, error)
	// AssertIsSingle returns a NotSingleUnitError naming contextName unless IsSingle holds
	AssertIsSingle(colNames []string, contextName string) error
	// CreateGroupLabels returns one ordinal label per unit, derived from the given columns
	CreateGroupLabels(colNames ...string) ([]int, error)
	// ForEach calls fn for every unit, stopping at the first error
	ForEach(fn func(i int, unit Dataset) error) error
	// To is a "functional operations" factory method for Datasets, chaining operations onto the current one
	To(ops ...DatasetOperation) (Dataset, error)
	// Equals returns true iff both Datasets view the same index with the same grouping and restriction
	Equals(other Dataset) bool
}

// A Sequence is the minimal protocol expected by partitioning utilities:
// a length, positional access, and a restartable iterator.
type Sequence interface {
	Len() int                  // Len returns the number of units in this Sequence
	At(i int) (Dataset, error) // At returns a single-unit Dataset for the i-th unit
	Iterate() UnitIterator     // Iterate returns a fresh iterator over every unit
}

// UnitIterator iterates over the units of a Dataset, producing a
// single-unit Dataset for each
type UnitIterator interface {
	HasNext() bool
	Next() (Dataset, error)
}
