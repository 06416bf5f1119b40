package main

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	dstest "github.com/go-sif/dataset/testing"
	"github.com/stretchr/testify/require"
)

const projectYAML = `
name: recordings
groupBy: [participant, recording]
index:
  source: dsv
folds:
  n: 2
  groupColumns: [participant]
  parallelism: 2
`

func writeProject(t *testing.T, numParticipants int) string {
	dir := t.TempDir()
	var index strings.Builder
	index.WriteString(strings.Join(dstest.RecordingColumns, ",") + "\n")
	for _, row := range dstest.RecordingRows(numParticipants) {
		index.WriteString(strings.Join(row, ",") + "\n")
	}
	indexPath := filepath.Join(dir, "index.csv")
	require.Nil(t, os.WriteFile(indexPath, []byte(index.String()), 0644))
	projectPath := filepath.Join(dir, "dataset.yaml")
	project := strings.Replace(projectYAML, "  source: dsv\n", "  source: dsv\n  path: "+indexPath+"\n", 1)
	require.Nil(t, os.WriteFile(projectPath, []byte(project), 0644))
	return projectPath
}

func run(t *testing.T, args ...string) (string, error) {
	root := newRootCommand()
	out := new(bytes.Buffer)
	root.SetOut(out)
	root.SetErr(io.Discard)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

// field returns the value printed after key on the line starting with key
func field(t *testing.T, out string, key string) string {
	for _, line := range strings.Split(out, "\n") {
		if strings.HasPrefix(line, key+" ") {
			return strings.TrimSpace(line[len(key):])
		}
	}
	require.Fail(t, "missing output line", "no line starts with %q in:\n%s", key, out)
	return ""
}

// lines returns the non-empty output lines after the header line
func lines(out string) [][]string {
	res := [][]string{}
	for i, line := range strings.Split(strings.TrimSpace(out), "\n") {
		if i > 0 {
			res = append(res, strings.Fields(line))
		}
	}
	return res
}

func TestSummary(t *testing.T) {
	project := writeProject(t, 3)
	out, err := run(t, "--config", project, "summary")
	require.Nil(t, err)
	require.Equal(t, "recordings", field(t, out, "name"))
	require.Equal(t, "12", field(t, out, "rows"))
	require.Equal(t, "9", field(t, out, "units"))
	require.Equal(t, "participant, recording, trial", field(t, out, "columns"))
	require.Equal(t, "participant, recording", field(t, out, "grouped by"))
	require.Equal(t, "3", field(t, out, "distinct participant"))
	require.Equal(t, "2", field(t, out, "distinct trial"))

	out, err = run(t, "--config", project, "--group-by", "participant", "summary")
	require.Nil(t, err)
	require.Equal(t, "3", field(t, out, "units"))
}

func TestGroups(t *testing.T) {
	project := writeProject(t, 2)
	out, err := run(t, "--config", project, "groups")
	require.Nil(t, err)
	rows := lines(out)
	require.Len(t, rows, 6)
	require.Equal(t, []string{"(p1,", "rec_1)", "1"}, rows[0])
	require.Equal(t, []string{"(p1,", "rec_3)", "2"}, rows[2])
	require.Equal(t, []string{"(p2,", "rec_3)", "2"}, rows[5])
}

func TestLabels(t *testing.T) {
	project := writeProject(t, 3)
	out, err := run(t, "--config", project, "labels", "--columns", "participant")
	require.Nil(t, err)
	rows := lines(out)
	require.Len(t, rows, 9)
	labels := []string{}
	for _, row := range rows {
		labels = append(labels, row[len(row)-1])
	}
	require.Equal(t, []string{"0", "0", "0", "1", "1", "1", "2", "2", "2"}, labels)

	// trial is not one of the grouping columns
	_, err = run(t, "--config", project, "labels", "--columns", "trial")
	require.NotNil(t, err)
	_, err = run(t, "--config", project, "labels")
	require.NotNil(t, err)
}

func TestFolds(t *testing.T) {
	project := writeProject(t, 3)
	out, err := run(t, "--config", project, "folds", "--n", "3")
	require.Nil(t, err)
	rows := lines(out)
	require.Len(t, rows, 3)
	for i, row := range rows {
		// fold, train units, test units, train rows, test rows, test group
		require.Equal(t, []string{string(rune('0' + i)), "6", "3", "8", "4", "(p" + string(rune('1'+i)) + ")"}, row)
	}

	out, err = run(t, "--config", project, "folds")
	require.Nil(t, err)
	require.Len(t, lines(out), 2)

	_, err = run(t, "--config", project, "folds", "--n", "4")
	require.NotNil(t, err)
}

func TestConfigErrors(t *testing.T) {
	_, err := run(t, "--config", filepath.Join(t.TempDir(), "missing.yaml"), "summary")
	require.NotNil(t, err)

	project := writeProject(t, 1)
	_, err = run(t, "--config", project, "--index", filepath.Join(t.TempDir(), "missing.csv"), "summary")
	require.NotNil(t, err)
}
