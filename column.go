package dataset

// Column describes the position of a named field within
// the Rows of an index.
type Column interface {
	Clone() Column // Clone returns a copy of this Column
	Index() int    // Index returns the index of this Column within a Schema
	Name() string  // Name returns the name of this Column
}
