package index

import (
	"fmt"
	"strings"

	"github.com/go-sif/dataset"
)

// rowImpl is a read-only reference to a single row of an Index
type rowImpl struct {
	idx *Index
	pos int
}

// Position returns the position of this row within the Index
func (r *rowImpl) Position() int {
	return r.pos
}

// Schema returns a read-only copy of the schema for a row
func (r *rowImpl) Schema() dataset.Schema {
	return r.idx.Schema()
}

// Get returns the value of the named column
func (r *rowImpl) Get(colName string) (string, error) {
	col, err := r.idx.schema.GetColumn(colName)
	if err != nil {
		return "", err
	}
	return r.idx.rows[r.pos][col.Index()], nil
}

// Values returns a copy of every value in this row, in Schema order
func (r *rowImpl) Values() []string {
	vals := make([]string, len(r.idx.rows[r.pos]))
	copy(vals, r.idx.rows[r.pos])
	return vals
}

// Project returns the values of the named columns, in the order given
func (r *rowImpl) Project(colNames []string) (dataset.GroupKey, error) {
	cols, err := r.idx.schema.Positions(colNames)
	if err != nil {
		return nil, err
	}
	key := make(dataset.GroupKey, len(cols))
	for i, c := range cols {
		key[i] = r.idx.rows[r.pos][c]
	}
	return key, nil
}

// ToString returns a string representation of this row
func (r *rowImpl) ToString() string {
	var res strings.Builder
	fmt.Fprint(&res, "{")
	r.idx.schema.ForEachColumn(func(name string, col dataset.Column) error {
		if col.Index() > 0 {
			fmt.Fprint(&res, ", ")
		}
		fmt.Fprintf(&res, "%q: %q", name, r.idx.rows[r.pos][col.Index()])
		return nil
	})
	fmt.Fprint(&res, "}")
	return res.String()
}
