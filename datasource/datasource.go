// Package datasource creates Datasets from IndexGenerators. Its sub-packages provide
// IndexGenerators for common index sources: literal tables, delimiter-separated and
// JSON-lines index files, and directory structures.
package datasource

import (
	"github.com/go-sif/dataset"
	"github.com/go-sif/dataset/internal/index"
	"github.com/go-sif/dataset/internal/util"
	"github.com/go-sif/dataset/internal/view"
	"github.com/go-sif/dataset/logging"
)

// DefaultName is the Dataset name used when a Config does not provide one
const DefaultName = "dataset"

// CreateDataset invokes an IndexGenerator, validates the index it produces and returns
// an initial View spanning every row, grouped by conf.GroupBy if set. conf may be nil.
func CreateDataset(conf *dataset.Config, gen dataset.IndexGenerator) (dataset.Dataset, error) {
	c := withDefaults(conf)
	idx, err := index.Build(c, gen)
	if err != nil {
		c.Logger.Errorf("unable to build index for %s: %v", c.Name, err)
		return nil, err
	}
	return view.CreateDataset(c.Name, idx, c.GroupBy)
}

// withDefaults returns a copy of conf with defaults filled in, leaving conf untouched
func withDefaults(conf *dataset.Config) *dataset.Config {
	c := &dataset.Config{}
	if conf != nil {
		*c = *conf
		c.GroupBy = util.CopyStrings(conf.GroupBy)
	}
	if len(c.Name) == 0 {
		c.Name = DefaultName
	}
	if c.Logger == nil {
		c.Logger = logging.Discard()
	}
	return c
}
