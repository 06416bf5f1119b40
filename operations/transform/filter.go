package transform

import (
	"github.com/go-sif/dataset"
	iutil "github.com/go-sif/dataset/internal/util"
)

// Filter keeps the units of a Dataset for which fn returns true. The result keeps
// the grouping of the input.
func Filter(fn dataset.FilterOperation) dataset.DatasetOperation {
	safeFn := iutil.SafeFilterOperation(fn)
	return func(d dataset.Dataset) (dataset.Dataset, error) {
		mask := make([]bool, d.Len())
		err := d.ForEach(func(i int, unit dataset.Dataset) (err error) {
			mask[i], err = safeFn(unit)
			return
		})
		if err != nil {
			return nil, err
		}
		return d.GetSubset(dataset.ByMask(mask))
	}
}
