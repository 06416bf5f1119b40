package dataset

import "context"

// LoadOperation loads the payload (signals, files, ...) belonging to a
// single-unit Dataset. It is supplied by the collaborator that knows what
// a data-point means; the engine only gates access to it.
type LoadOperation func(ctx context.Context, unit Dataset) ([]byte, error)

// UnitOperation is applied to single-unit Datasets during iteration
type UnitOperation func(i int, unit Dataset) error

// DatasetOperation derives one Dataset from another. DatasetOperations are
// chained with Dataset.To.
type DatasetOperation func(d Dataset) (Dataset, error)

// FilterOperation decides whether a single-unit Dataset is kept by a filter
type FilterOperation func(unit Dataset) (keep bool, err error)
