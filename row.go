package dataset

// A Row is a read-only view of a single entry of an index
type Row interface {
	Position() int                               // Position returns the position of this Row within the full index
	Schema() Schema                              // Schema returns the Schema of this Row
	Get(colName string) (string, error)          // Get returns the value of the named column
	Values() []string                            // Values returns a copy of every value in this Row, in Schema order
	Project(colNames []string) (GroupKey, error) // Project returns the values of the named columns, in the order given
	ToString() string                            // ToString returns a string representation of this Row
}
