package dataset

// RawIndex is the table produced by an IndexGenerator: an ordered list
// of Rows, each holding one value per column, in column order.
type RawIndex struct {
	Columns []string
	Rows    [][]string
}

// NumRows returns the number of rows in this RawIndex
func (r *RawIndex) NumRows() int {
	if r == nil {
		return 0
	}
	return len(r.Rows)
}

// An IndexGenerator produces the index of a dataset. It is invoked once
// when a Dataset is created and must return the same table every time it
// is called: the engine keeps positions into the table, so a generator
// whose output depends on, for example, directory listing order breaks
// every View derived from it.
type IndexGenerator func() (*RawIndex, error)
