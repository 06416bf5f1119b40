package config

import (
	"github.com/go-sif/dataset"
	"github.com/go-sif/dataset/datasource/file"
	"github.com/go-sif/dataset/datasource/parser/dsv"
	"github.com/go-sif/dataset/datasource/parser/jsonl"
	"github.com/go-sif/dataset/logging"
	"github.com/go-sif/dataset/split"
)

// Generator returns the IndexGenerator described by this IndexConfig
func (c *IndexConfig) Generator() (dataset.IndexGenerator, error) {
	switch c.Source {
	case SourceJSONL:
		return jsonl.Generator(c.Path, &jsonl.ParserConf{
			Paths:    c.Paths,
			Columns:  c.Columns,
			NilValue: c.NilValue,
			Comment:  firstRune(c.Comment),
		}), nil
	case SourceFiles:
		return file.Generator(&file.Conf{
			Glob:            c.Path,
			Pattern:         c.Pattern,
			PathColumn:      c.PathColumn,
			IgnoreUnmatched: c.IgnoreUnmatched,
		})
	default:
		return dsv.Generator(c.Path, &dsv.ParserConf{
			Columns:     c.Columns,
			HeaderLines: c.HeaderLines,
			Delimiter:   firstRune(c.Delimiter),
			Comment:     firstRune(c.Comment),
			TrimSpace:   c.TrimSpace,
		}), nil
	}
}

// DatasetConfig returns the configuration of the project's initial Dataset
func (c *Config) DatasetConfig(logger *logging.Logger) *dataset.Config {
	groupBy := make([]string, len(c.GroupBy))
	copy(groupBy, c.GroupBy)
	return &dataset.Config{
		Name:             c.Name,
		GroupBy:          groupBy,
		CheckDeterminism: c.Index.CheckDeterminism,
		Logger:           logger,
	}
}

// Splitter returns the fold Splitter described by this FoldsConfig
func (c *FoldsConfig) Splitter() split.Splitter {
	if len(c.GroupColumns) > 0 {
		return split.GroupKFold{N: c.N}
	}
	return split.KFold{N: c.N, Shuffle: c.Shuffle, Seed: c.Seed}
}

func firstRune(s string) rune {
	for _, r := range s {
		return r
	}
	return 0
}
