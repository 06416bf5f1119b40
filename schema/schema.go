package schema

import (
	"fmt"

	"github.com/go-sif/dataset"
	"github.com/go-sif/dataset/errors"
)

// column describes the position of a named field within a Row
type column struct {
	idx  int
	name string
}

// Clone returns a copy of this Column
func (c *column) Clone() dataset.Column {
	return &column{c.idx, c.name}
}

// Index returns the index of this Column within a Schema
func (c *column) Index() int {
	return c.idx
}

// Name returns the name of this Column
func (c *column) Name() string {
	return c.name
}

// schema is an ordered mapping from column names to positions within a Row
type schema struct {
	schema map[string]dataset.Column
	names  []string
}

// CreateSchema is a factory for Schemas
func CreateSchema() dataset.Schema {
	return &schema{
		schema: make(map[string]dataset.Column),
		names:  []string{},
	}
}

// FromColumnNames creates a Schema containing the given columns, in order
func FromColumnNames(colNames ...string) (dataset.Schema, error) {
	var s dataset.Schema = CreateSchema()
	for _, name := range colNames {
		if len(name) == 0 {
			return nil, fmt.Errorf("Column names cannot be empty")
		}
		var err error
		s, err = s.CreateColumn(name)
		if err != nil {
			return nil, err
		}
	}
	return s, nil
}

// Equals returns nil iff this and another Schema are equivalent
func (s *schema) Equals(otherSchema dataset.Schema) error {
	if s.NumColumns() != otherSchema.NumColumns() {
		return fmt.Errorf("Schemas have unequal numbers of columns")
	}
	return s.ForEachColumn(func(name string, col dataset.Column) error {
		otherCol, err := otherSchema.GetColumn(name)
		if err != nil {
			return err
		}
		if col.Index() != otherCol.Index() {
			return fmt.Errorf("Column %s indices do not match", name)
		}
		return nil
	})
}

// Clone returns a copy of this Schema
func (s *schema) Clone() dataset.Schema {
	newSchema := make(map[string]dataset.Column, len(s.schema))
	for k, v := range s.schema {
		newSchema[k] = v.Clone()
	}
	names := make([]string, len(s.names))
	copy(names, s.names)
	return &schema{schema: newSchema, names: names}
}

// NumColumns returns the number of columns in this Schema
func (s *schema) NumColumns() int {
	return len(s.names)
}

// GetColumn returns the named column
func (s *schema) GetColumn(colName string) (col dataset.Column, err error) {
	col, ok := s.schema[colName]
	if !ok {
		err = errors.UnknownColumnError{Name: colName}
	}
	return
}

// HasColumn returns true iff this schema contains a column with the given name
func (s *schema) HasColumn(colName string) bool {
	_, ok := s.schema[colName]
	return ok
}

// CreateColumn appends a new column to the Schema
func (s *schema) CreateColumn(colName string) (newSchema dataset.Schema, err error) {
	if s.HasColumn(colName) {
		return nil, errors.DuplicateColumnError{Name: colName}
	}
	s.schema[colName] = &column{len(s.names), colName}
	s.names = append(s.names, colName)
	return s, nil
}

// ColumnNames returns the names in the schema, in index order
func (s *schema) ColumnNames() []string {
	names := make([]string, len(s.names))
	copy(names, s.names)
	return names
}

// Positions returns the Row positions of the given columns, in the order given
func (s *schema) Positions(colNames []string) ([]int, error) {
	res := make([]int, len(colNames))
	seen := make(map[string]bool, len(colNames))
	for i, name := range colNames {
		col, err := s.GetColumn(name)
		if err != nil {
			return nil, err
		}
		if seen[name] {
			return nil, errors.DuplicateColumnError{Name: name}
		}
		seen[name] = true
		res[i] = col.Index()
	}
	return res, nil
}

// ForEachColumn iterates over the columns in this Schema, in index order
func (s *schema) ForEachColumn(fn func(name string, col dataset.Column) error) error {
	for _, name := range s.names {
		if err := fn(name, s.schema[name]); err != nil {
			return err
		}
	}
	return nil
}
