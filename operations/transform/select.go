package transform

import "github.com/go-sif/dataset"

// Select restricts a Dataset with a Selection
func Select(sel dataset.Selection) dataset.DatasetOperation {
	return func(d dataset.Dataset) (dataset.Dataset, error) {
		return d.GetSubset(sel)
	}
}

// Where keeps the rows whose value in colName is one of values
func Where(colName string, values ...string) dataset.DatasetOperation {
	return Select(dataset.ByColumn(colName, values...))
}

// Take keeps the first n units of a Dataset, or all of them if it has fewer
func Take(n int) dataset.DatasetOperation {
	return func(d dataset.Dataset) (dataset.Dataset, error) {
		mask := make([]bool, d.Len())
		for i := 0; i < n && i < len(mask); i++ {
			mask[i] = true
		}
		return d.GetSubset(dataset.ByMask(mask))
	}
}
