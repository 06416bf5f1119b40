package jsonl

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/go-sif/dataset"
	"github.com/tidwall/gjson"
)

// ParserConf configures a JSONL Parser, suitable for JSON lines data
type ParserConf struct {
	Paths         []string // gjson paths of the values forming each row. Required.
	Columns       []string // Column names, one per path. Defaults to the paths themselves.
	NilValue      string   // The value used when a path does not exist in a line. Defaults to "" (the empty string).
	Comment       rune     // Lines beginning with the comment character are ignored. Defaults to no comment character.
	MaxBufferSize int      // Maximum size in bytes of the buffer used to read lines from the file
}

// Parser produces index tables from JSONL data
type Parser struct {
	conf *ParserConf
}

// CreateParser returns a new JSONL Parser. Values are extracted lazily from each line
// of JSON using their gjson path; values which do not correspond to a path are ignored.
func CreateParser(conf *ParserConf) *Parser {
	if conf.MaxBufferSize == 0 {
		conf.MaxBufferSize = bufio.MaxScanTokenSize
	}
	return &Parser{conf: conf}
}

// Parse parses JSONL data into an index table
func (p *Parser) Parse(r io.Reader) (*dataset.RawIndex, error) {
	if len(p.conf.Paths) == 0 {
		return nil, fmt.Errorf("JSONL parsing requires at least one path")
	}
	columns := p.conf.Columns
	if len(columns) == 0 {
		columns = p.conf.Paths
	} else if len(columns) != len(p.conf.Paths) {
		return nil, fmt.Errorf("JSONL parser has %d paths but %d column names", len(p.conf.Paths), len(columns))
	}
	raw := &dataset.RawIndex{
		Columns: append([]string{}, columns...),
		Rows:    [][]string{},
	}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 4096), p.conf.MaxBufferSize)
	for lineNum := 1; scanner.Scan(); lineNum++ {
		line := strings.TrimSpace(scanner.Text())
		if len(line) == 0 || (p.conf.Comment != 0 && strings.HasPrefix(line, string(p.conf.Comment))) {
			continue
		}
		if !gjson.Valid(line) {
			return nil, fmt.Errorf("line %d is not valid JSON: %s", lineNum, line)
		}
		raw.Rows = append(raw.Rows, p.scanRow(gjson.Parse(line)))
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return raw, nil
}

// scanRow extracts the value of every path from a parsed line
func (p *Parser) scanRow(doc gjson.Result) []string {
	row := make([]string, len(p.conf.Paths))
	for i, path := range p.conf.Paths {
		val := doc.Get(path)
		if !val.Exists() || val.Type == gjson.Null {
			row[i] = p.conf.NilValue
			continue
		}
		row[i] = val.String()
	}
	return row
}

// Generator returns an IndexGenerator which parses the JSONL file at path on every invocation
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

// BytesGenerator returns an IndexGenerator which parses in-memory JSONL data on every invocation
func BytesGenerator(data []byte, conf *ParserConf) dataset.IndexGenerator {
	parser := CreateParser(conf)
	return func() (*dataset.RawIndex, error) {
		return parser.Parse(bytes.NewReader(data))
	}
}
