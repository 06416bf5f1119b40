package file

import (
	"fmt"
	"path/filepath"
	"regexp"
	"sort"

	"github.com/go-sif/dataset"
	"github.com/go-sif/dataset/datasource"
)

// Conf configures a file IndexGenerator
type Conf struct {
	Glob            string // The glob matching candidate files. Required.
	Pattern         string // A regular expression with named capture groups, matched against slash-separated paths. Each group becomes a column. Required.
	PathColumn      string // If set, an additional column of this name holds the matched path. Defaults to no path column.
	IgnoreUnmatched bool   // If true, files matching the glob but not the pattern are skipped rather than failing index generation. Defaults to false.
}

// Generator returns an IndexGenerator which scans the file system on every invocation.
// Matching paths are sorted before rows are produced, so that the index does not depend
// on the order in which the file system lists directories.
func Generator(conf *Conf) (dataset.IndexGenerator, error) {
	if len(conf.Glob) == 0 {
		return nil, fmt.Errorf("file index generation requires a glob")
	}
	re, err := regexp.Compile(conf.Pattern)
	if err != nil {
		return nil, fmt.Errorf("invalid path pattern %s: %w", conf.Pattern, err)
	}
	columns := []string{}
	groups := []int{}
	for i, name := range re.SubexpNames() {
		if len(name) > 0 {
			columns = append(columns, name)
			groups = append(groups, i)
		}
	}
	if len(columns) == 0 {
		return nil, fmt.Errorf("path pattern %s has no named capture groups", conf.Pattern)
	}
	if len(conf.PathColumn) > 0 {
		columns = append(columns, conf.PathColumn)
	}

	return func() (*dataset.RawIndex, error) {
		matches, err := filepath.Glob(conf.Glob)
		if err != nil {
			return nil, err
		}
		sort.Strings(matches)
		raw := &dataset.RawIndex{
			Columns: append([]string{}, columns...),
			Rows:    make([][]string, 0, len(matches)),
		}
		for _, path := range matches {
			slashed := filepath.ToSlash(path)
			submatches := re.FindStringSubmatch(slashed)
			if submatches == nil {
				if conf.IgnoreUnmatched {
					continue
				}
				return nil, fmt.Errorf("path %s does not match pattern %s", slashed, conf.Pattern)
			}
			row := make([]string, 0, len(columns))
			for _, g := range groups {
				row = append(row, submatches[g])
			}
			if len(conf.PathColumn) > 0 {
				row = append(row, path)
			}
			raw.Rows = append(raw.Rows, row)
		}
		return raw, nil
	}, nil
}

// CreateDataset is a convenience for creating a Dataset from a directory structure
func CreateDataset(dsConf *dataset.Config, conf *Conf) (dataset.Dataset, error) {
	gen, err := Generator(conf)
	if err != nil {
		return nil, err
	}
	return datasource.CreateDataset(dsConf, gen)
}
