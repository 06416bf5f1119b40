// Package testing provides index fixtures shared by the tests of this module and of
// code built on it.
package testing

import (
	"fmt"

	"github.com/go-sif/dataset"
)

// RecordingColumns are the columns of the recording index fixture
var RecordingColumns = []string{"participant", "recording", "trial"}

// RecordingRows returns the rows of an index describing numParticipants participants
// (p1, p2, ...), each with three recordings (rec_1, rec_2, rec_3). rec_1 and rec_2
// hold a single trial (t1) while rec_3 holds two (t1, t2), so every participant
// contributes four rows.
func RecordingRows(numParticipants int) [][]string {
	rows := make([][]string, 0, numParticipants*4)
	for p := 1; p <= numParticipants; p++ {
		participant := fmt.Sprintf("p%d", p)
		rows = append(rows,
			[]string{participant, "rec_1", "t1"},
			[]string{participant, "rec_2", "t1"},
			[]string{participant, "rec_3", "t1"},
			[]string{participant, "rec_3", "t2"},
		)
	}
	return rows
}

// RecordingGenerator returns an IndexGenerator for the recording index fixture
func RecordingGenerator(numParticipants int) dataset.IndexGenerator {
	return func() (*dataset.RawIndex, error) {
		columns := make([]string, len(RecordingColumns))
		copy(columns, RecordingColumns)
		return &dataset.RawIndex{Columns: columns, Rows: RecordingRows(numParticipants)}, nil
	}
}

// Participants returns the participant names p1..pN
func Participants(n int) []string {
	res := make([]string, n)
	for i := range res {
		res[i] = fmt.Sprintf("p%d", i+1)
	}
	return res
}
