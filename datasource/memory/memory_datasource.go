// Package memory provides IndexGenerators for indices which are already held in memory
package memory

import (
	"github.com/go-sif/dataset"
	"github.com/go-sif/dataset/datasource"
)

// Generator returns an IndexGenerator producing a copy of the given table on every invocation
func Generator(columns []string, rows [][]string) dataset.IndexGenerator {
	return func() (*dataset.RawIndex, error) {
		raw := &dataset.RawIndex{
			Columns: make([]string, len(columns)),
			Rows:    make([][]string, len(rows)),
		}
		copy(raw.Columns, columns)
		for i, r := range rows {
			raw.Rows[i] = make([]string, len(r))
			copy(raw.Rows[i], r)
		}
		return raw, nil
	}
}

// FromRecords returns an IndexGenerator for a list of records, each a mapping from column
// name to value. Columns are ordered as given; a record missing a column holds "" for it.
func FromRecords(columns []string, records []map[string]string) dataset.IndexGenerator {
	rows := make([][]string, len(records))
	for i, rec := range records {
		rows[i] = make([]string, len(columns))
		for j, col := range columns {
			rows[i][j] = rec[col]
		}
	}
	return Generator(columns, rows)
}

// CreateDataset is a convenience for creating a Dataset from an in-memory table
func CreateDataset(conf *dataset.Config, columns []string, rows [][]string) (dataset.Dataset, error) {
	return datasource.CreateDataset(conf, Generator(columns, rows))
}
