// Package dsv parses index files of delimiter-separated values (CSV, TSV, ...).
package dsv

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/go-sif/dataset"
)

// ParserConf configures a DSV Parser
type ParserConf struct {
	Columns     []string // The column names of the index. Defaults to the first (non-skipped) line of the file.
	HeaderLines int      // The number of lines to ignore from the beginning of each file, before the column names if those are read from the file. Defaults to 0.
	Delimiter   rune     // The delimiter separating columns in the file. Defaults to ,
	Comment     rune     // Lines beginning with the comment character are ignored. Cannot be equal to the Delimiter. Defaults to no comment character.
	TrimSpace   bool     // If true, leading and trailing white space is removed from every value. Defaults to false.
}

// Parser produces index tables from DSV data
type Parser struct {
	conf *ParserConf
}

// CreateParser returns a new DSV Parser
func CreateParser(conf *ParserConf) *Parser {
	if conf == nil {
		conf = &ParserConf{}
	}
	if conf.Delimiter == 0 {
		conf.Delimiter = ','
	}
	return &Parser{conf: conf}
}

// Parse parses DSV data into an index table
func (p *Parser) Parse(r io.Reader) (*dataset.RawIndex, error) {
	reader := csv.NewReader(r)
	reader.Comma = p.conf.Delimiter
	reader.Comment = p.conf.Comment
	// preamble lines may have any number of fields
	reader.FieldsPerRecord = -1

	// ignore header lines, if configured to do so
	for i := 0; i < p.conf.HeaderLines; i++ {
		if _, err := reader.Read(); err != nil {
			return nil, fmt.Errorf("unable to skip header line %d: %w", i, err)
		}
	}

	raw := &dataset.RawIndex{Rows: [][]string{}}
	if len(p.conf.Columns) > 0 {
		raw.Columns = p.clean(p.conf.Columns)
		reader.FieldsPerRecord = len(raw.Columns)
	} else {
		header, err := reader.Read()
		if err == io.EOF {
			return nil, fmt.Errorf("DSV index has no column header")
		} else if err != nil {
			return nil, err
		}
		raw.Columns = p.clean(header)
		reader.FieldsPerRecord = len(raw.Columns)
	}

	for {
		record, err := reader.Read()
		if err == io.EOF {
			return raw, nil
		} else if err != nil {
			return nil, err
		}
		raw.Rows = append(raw.Rows, p.clean(record))
	}
}

// clean copies a record, trimming values if configured to do so
func (p *Parser) clean(record []string) []string {
	res := make([]string, len(record))
	for i, v := range record {
		if p.conf.TrimSpace {
			v = strings.TrimSpace(v)
		}
		res[i] = v
	}
	return res
}

// Generator returns an IndexGenerator which parses the DSV file at path on every invocation
func Generator(path string, conf *ParserConf) dataset.IndexGenerator {
	parser := CreateParser(conf)
	return func() (*dataset.RawIndex, error) {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		return parser.Parse(f)
	}
}

// BytesGenerator returns an IndexGenerator which parses in-memory DSV data on every invocation
func BytesGenerator(data []byte, conf *ParserConf) dataset.IndexGenerator {
	parser := CreateParser(conf)
	return func() (*dataset.RawIndex, error) {
		return parser.Parse(bytes.NewReader(data))
	}
}
