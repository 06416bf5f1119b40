package dataset

// Schema is an ordered mapping from column names to positions
// within a Row. It allows one to obtain positions by name,
// define new columns and validate column subsets.
type Schema interface {
	Equals(otherSchema Schema) error
	Clone() Schema
	NumColumns() int
	GetColumn(colName string) (col Column, err error)
	HasColumn(colName string) bool
	CreateColumn(colName string) (newSchema Schema, err error)
	ColumnNames() []string
	Positions(colNames []string) ([]int, error) // Positions returns the Row positions of the given columns, in the order given
	ForEachColumn(fn func(name string, col Column) error) error
}
