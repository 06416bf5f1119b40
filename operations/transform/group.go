package transform

import "github.com/go-sif/dataset"

// Group regroups a Dataset by the given columns
func Group(colNames ...string) dataset.DatasetOperation {
	return func(d dataset.Dataset) (dataset.Dataset, error) {
		return d.GroupBy(colNames...)
	}
}

// Ungroup makes every row of a Dataset its own unit
func Ungroup() dataset.DatasetOperation {
	return func(d dataset.Dataset) (dataset.Dataset, error) {
		return d.GroupBy()
	}
}
