package dataset

import "github.com/go-sif/dataset/logging"

// Config configures the construction of a Dataset. It is read once, when
// the Dataset is created, and never consulted implicitly afterwards.
type Config struct {
	Name             string          // A name for the Dataset, used in log messages. Defaults to "dataset".
	GroupBy          []string        // Columns by which the initial View is grouped. Defaults to none (ungrouped).
	CheckDeterminism bool            // If true, the IndexGenerator is invoked twice and the results compared. Defaults to false.
	Logger           *logging.Logger // Destination for log messages. Defaults to logging.Discard().
}
