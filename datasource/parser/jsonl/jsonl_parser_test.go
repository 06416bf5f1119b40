package jsonl

import (
	"strings"
	"testing"

	"github.com/go-sif/dataset"
	"github.com/go-sif/dataset/datasource"
	"github.com/stretchr/testify/require"
)

const sessions = `{"subject": {"id": "p1", "age": 31}, "recording": "rec_1", "trial": 1}
# a comment line
{"subject": {"id": "p1", "age": 31}, "recording": "rec_2", "trial": 1}

{"subject": {"id": "p2"}, "recording": "rec_1", "trial": null}
`

func TestJSONLParser(t *testing.T) {
	parser := CreateParser(&ParserConf{
		Paths:    []string{"subject.id", "recording", "trial", "subject.age"},
		Columns:  []string{"participant", "recording", "trial", "age"},
		NilValue: "n/a",
		Comment:  '#',
	})
	raw, err := parser.Parse(strings.NewReader(sessions))
	require.Nil(t, err)
	require.Equal(t, []string{"participant", "recording", "trial", "age"}, raw.Columns)
	require.Equal(t, [][]string{
		{"p1", "rec_1", "1", "31"},
		{"p1", "rec_2", "1", "31"},
		{"p2", "rec_1", "n/a", "n/a"},
	}, raw.Rows)
}

func TestJSONLParserDefaultsColumnsToPaths(t *testing.T) {
	parser := CreateParser(&ParserConf{Paths: []string{"subject.id"}, Comment: '#'})
	raw, err := parser.Parse(strings.NewReader(sessions))
	require.Nil(t, err)
	require.Equal(t, []string{"subject.id"}, raw.Columns)
}

func TestJSONLParserErrors(t *testing.T) {
	_, err := CreateParser(&ParserConf{}).Parse(strings.NewReader(sessions))
	require.NotNil(t, err)

	_, err = CreateParser(&ParserConf{Paths: []string{"a", "b"}, Columns: []string{"a"}}).Parse(strings.NewReader(sessions))
	require.NotNil(t, err)

	_, err = CreateParser(&ParserConf{Paths: []string{"a"}}).Parse(strings.NewReader("{\"a\": 1}\n{\"a\": \n"))
	require.NotNil(t, err)
	require.Contains(t, err.Error(), "line 2")
}

func TestJSONLBytesGenerator(t *testing.T) {
	ds, err := datasource.CreateDataset(&dataset.Config{GroupBy: []string{"participant"}}, BytesGenerator([]byte(sessions), &ParserConf{
		Paths:   []string{"subject.id", "recording"},
		Columns: []string{"participant", "recording"},
		Comment: '#',
	}))
	require.Nil(t, err)
	require.Equal(t, []dataset.GroupKey{{"p1"}, {"p2"}}, ds.Groups())
}
