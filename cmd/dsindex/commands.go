package main

import (
	"context"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/go-sif/dataset"
	"github.com/go-sif/dataset/config"
	"github.com/go-sif/dataset/datasource"
	"github.com/go-sif/dataset/logging"
	"github.com/go-sif/dataset/split"
	"github.com/spf13/cobra"
)

// project holds the state shared by every command: the loaded configuration
// and the flags overriding it
type project struct {
	configPath string
	logLevel   string
	groupBy    []string
	indexPath  string
	logOut     io.Writer // defaults to stderr
	cfg        *config.Config
}

func newRootCommand() *cobra.Command {
	p := &project{}
	root := &cobra.Command{
		Use:           "dsindex",
		Short:         "Inspect the index of a dataset project",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return p.load()
		},
	}
	root.PersistentFlags().StringVarP(&p.configPath, "config", "c", "dataset.yaml", "path to the project file")
	root.PersistentFlags().StringVar(&p.logLevel, "log-level", "", "overrides the log level of the project file")
	root.PersistentFlags().StringSliceVar(&p.groupBy, "group-by", nil, "overrides the grouping columns of the project file")
	root.PersistentFlags().StringVar(&p.indexPath, "index", "", "overrides the index path of the project file")

	root.AddCommand(
		newSummaryCommand(p),
		newGroupsCommand(p),
		newLabelsCommand(p),
		newFoldsCommand(p),
	)
	return root
}

func (p *project) load() error {
	cfg, err := config.Load(p.configPath)
	if err != nil {
		return err
	}
	if p.logLevel != "" {
		cfg.LogLevel = p.logLevel
	}
	if len(p.groupBy) > 0 {
		cfg.GroupBy = p.groupBy
	}
	if p.indexPath != "" {
		cfg.Index.Path = p.indexPath
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	p.cfg = cfg
	return nil
}

func (p *project) dataset() (dataset.Dataset, error) {
	level := logging.ParseLevel(p.cfg.LogLevel)
	logger := logging.Stderr(level, "dsindex")
	if p.logOut != nil {
		logger = logging.New(p.logOut, level, "dsindex")
	}
	gen, err := p.cfg.Index.Generator()
	if err != nil {
		return nil, err
	}
	logger.Debugf("reading %s index from %s", p.cfg.Index.Source, p.cfg.Index.Path)
	return datasource.CreateDataset(p.cfg.DatasetConfig(logger), gen)
}

func newSummaryCommand(p *project) *cobra.Command {
	return &cobra.Command{
		Use:   "summary",
		Short: "Print the size and shape of the index",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ds, err := p.dataset()
			if err != nil {
				return err
			}
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintf(w, "name\t%s\n", ds.Name())
			fmt.Fprintf(w, "rows\t%d\n", ds.NumRows())
			fmt.Fprintf(w, "units\t%d\n", ds.Len())
			fmt.Fprintf(w, "columns\t%s\n", strings.Join(ds.Columns(), ", "))
			if ds.IsGrouped() {
				fmt.Fprintf(w, "grouped by\t%s\n", strings.Join(ds.GroupedBy(), ", "))
			}
			for _, col := range ds.Columns() {
				values, err := ds.Unique(col)
				if err != nil {
					return err
				}
				fmt.Fprintf(w, "distinct %s\t%d\n", col, len(values))
			}
			return w.Flush()
		},
	}
}

func newGroupsCommand(p *project) *cobra.Command {
	return &cobra.Command{
		Use:   "groups",
		Short: "List the groups of the index and the number of rows in each",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ds, err := p.dataset()
			if err != nil {
				return err
			}
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintf(w, "group\trows\n")
			keys := ds.Groups()
			err = ds.ForEach(func(i int, unit dataset.Dataset) error {
				_, err := fmt.Fprintf(w, "%s\t%d\n", keys[i], unit.NumRows())
				return err
			})
			if err != nil {
				return err
			}
			return w.Flush()
		},
	}
}

func newLabelsCommand(p *project) *cobra.Command {
	var columns []string
	cmd := &cobra.Command{
		Use:   "labels",
		Short: "Label every unit of the index by the values of a subset of its grouping columns",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ds, err := p.dataset()
			if err != nil {
				return err
			}
			labels, err := ds.CreateGroupLabels(columns...)
			if err != nil {
				return err
			}
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintf(w, "unit\tgroup\tlabel\n")
			for i, key := range ds.Groups() {
				fmt.Fprintf(w, "%d\t%s\t%d\n", i, key, labels[i])
			}
			return w.Flush()
		},
	}
	cmd.Flags().StringSliceVar(&columns, "columns", nil, "the columns to label units by")
	_ = cmd.MarkFlagRequired("columns")
	return cmd
}

type foldSummary struct {
	trainUnits int
	testUnits  int
	trainRows  int
	testRows   int
	testGroups []string
}

func newFoldsCommand(p *project) *cobra.Command {
	var n int
	cmd := &cobra.Command{
		Use:   "folds",
		Short: "Split the units of the index into train/test folds",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("n") {
				p.cfg.Folds.N = n
			}
			ds, err := p.dataset()
			if err != nil {
				return err
			}
			var labels []int
			if len(p.cfg.Folds.GroupColumns) > 0 {
				labels, err = ds.CreateGroupLabels(p.cfg.Folds.GroupColumns...)
				if err != nil {
					return err
				}
			}
			folds, err := p.cfg.Folds.Splitter().Split(ds, labels)
			if err != nil {
				return err
			}
			summaries := make([]foldSummary, len(folds))
			err = split.RunFolds(cmd.Context(), ds, folds, p.cfg.Folds.Parallelism, func(ctx context.Context, i int, train dataset.Dataset, test dataset.Dataset) error {
				s := foldSummary{
					trainUnits: train.Len(),
					testUnits:  test.Len(),
					trainRows:  train.NumRows(),
					testRows:   test.NumRows(),
				}
				if len(p.cfg.Folds.GroupColumns) > 0 {
					grouped, err := test.GroupBy(p.cfg.Folds.GroupColumns...)
					if err != nil {
						return err
					}
					for _, key := range grouped.Groups() {
						s.testGroups = append(s.testGroups, key.String())
					}
				}
				summaries[i] = s
				return nil
			})
			if err != nil {
				return err
			}
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintf(w, "fold\ttrain units\ttest units\ttrain rows\ttest rows\ttest groups\n")
			for i, s := range summaries {
				fmt.Fprintf(w, "%d\t%d\t%d\t%d\t%d\t%s\n", i, s.trainUnits, s.testUnits, s.trainRows, s.testRows, strings.Join(s.testGroups, " "))
			}
			return w.Flush()
		},
	}
	cmd.Flags().IntVar(&n, "n", 0, "the number of folds (overrides the project file)")
	return cmd
}
