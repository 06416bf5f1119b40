// Package index implements the immutable index store shared by every View of a dataset
package index

import (
	"github.com/go-sif/dataset"
	"github.com/go-sif/dataset/errors"
	iutil "github.com/go-sif/dataset/internal/util"
	"github.com/go-sif/dataset/schema"
	"github.com/gofrs/uuid"
	"github.com/hashicorp/go-multierror"
)

// Index is the validated, immutable table produced by an IndexGenerator.
// Nothing mutates an Index after Build returns, so it can be read from
// any number of goroutines.
type Index struct {
	id          string
	name        string
	schema      dataset.Schema
	rows        [][]string
	fingerprint uint64
}

// Build invokes an IndexGenerator and validates the resulting table. The generator is
// invoked exactly once, unless conf.CheckDeterminism is set, in which case it is invoked
// a second time and both results must share a fingerprint.
func Build(conf *dataset.Config, gen dataset.IndexGenerator) (*Index, error) {
	name := conf.Name
	logger := conf.Logger.With("index")
	safeGen := iutil.SafeIndexGenerator(name, gen)
	raw, err := safeGen()
	if err != nil {
		return nil, err
	}
	idx, err := fromRaw(name, raw)
	if err != nil {
		return nil, err
	}
	if conf.CheckDeterminism {
		again, err := safeGen()
		if err != nil {
			return nil, err
		}
		if second := Fingerprint(again); second != idx.fingerprint {
			return nil, errors.NonDeterministicIndexError{Name: name, First: idx.fingerprint, Second: second}
		}
	}
	logger.Debugf("built index %s for %s: %d rows, columns %v, fingerprint %016x", idx.id, name, len(idx.rows), idx.schema.ColumnNames(), idx.fingerprint)
	return idx, nil
}

// fromRaw validates a RawIndex and copies it into a fresh Index
func fromRaw(name string, raw *dataset.RawIndex) (*Index, error) {
	if raw.NumRows() == 0 {
		return nil, errors.EmptyIndexError{Name: name}
	}
	s, err := schema.FromColumnNames(raw.Columns...)
	if err != nil {
		return nil, err
	}
	if s.NumColumns() == 0 {
		return nil, errors.EmptyColumnsError{Operation: "An index"}
	}
	var multierr *multierror.Error
	rows := make([][]string, len(raw.Rows))
	for i, r := range raw.Rows {
		if len(r) != s.NumColumns() {
			multierr = multierror.Append(multierr, errors.IncompatibleRowError{Position: i, Width: len(r), Expected: s.NumColumns()})
			continue
		}
		rows[i] = iutil.CopyStrings(r)
	}
	if multierr != nil {
		multierr.ErrorFormat = iutil.FormatMultiError
		return nil, multierr
	}
	id, err := uuid.NewV4()
	if err != nil {
		return nil, err
	}
	return &Index{
		id:          id.String(),
		name:        name,
		schema:      s,
		rows:        rows,
		fingerprint: Fingerprint(raw),
	}, nil
}

// ID returns the unique ID of this Index
func (idx *Index) ID() string {
	return idx.id
}

// Name returns the name of the dataset this Index belongs to
func (idx *Index) Name() string {
	return idx.name
}

// Schema returns a copy of the Schema of this Index
func (idx *Index) Schema() dataset.Schema {
	return idx.schema.Clone()
}

// ColumnNames returns the column names of this Index, in order
func (idx *Index) ColumnNames() []string {
	return idx.schema.ColumnNames()
}

// ColumnPositions returns the positions of the named columns within each row, in the order given
func (idx *Index) ColumnPositions(colNames []string) ([]int, error) {
	return idx.schema.Positions(colNames)
}

// NumRows returns the number of rows in this Index
func (idx *Index) NumRows() int {
	return len(idx.rows)
}

// NumColumns returns the number of columns in this Index
func (idx *Index) NumColumns() int {
	return idx.schema.NumColumns()
}

// Value returns the value of a column within a row. Neither argument is bounds-checked.
func (idx *Index) Value(pos int, col int) string {
	return idx.rows[pos][col]
}

// Values returns the values of a row. The result must not be modified.
func (idx *Index) Values(pos int) []string {
	return idx.rows[pos]
}

// Row returns a read-only Row for a position in this Index
func (idx *Index) Row(pos int) dataset.Row {
	return &rowImpl{idx: idx, pos: pos}
}

// Fingerprint returns the fingerprint computed when this Index was built
func (idx *Index) Fingerprint() uint64 {
	return idx.fingerprint
}
