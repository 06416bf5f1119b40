package split

import (
	"context"
	"fmt"
	"runtime"

	"github.com/go-sif/dataset"
	"github.com/go-sif/dataset/internal/util"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"
)

// FoldOperation evaluates a single fold
type FoldOperation func(ctx context.Context, i int, train dataset.Dataset, test dataset.Dataset) error

// RunFolds applies fn to every fold of ds, evaluating at most parallelism folds at once
// (GOMAXPROCS if parallelism < 1). The first error cancels the context passed to the
// remaining evaluations, prevents further folds from starting, and is returned.
func RunFolds(ctx context.Context, ds dataset.Dataset, folds []Fold, parallelism int, fn FoldOperation) error {
	if parallelism < 1 {
		parallelism = runtime.GOMAXPROCS(0)
	}
	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	sem := semaphore.NewWeighted(int64(parallelism))
	var g errgroup.Group
	for i := range folds {
		if err := sem.Acquire(runCtx, 1); err != nil {
			break
		}
		i := i
		g.Go(func() error {
			err := runFold(runCtx, ds, i, folds[i], fn)
			if err != nil {
				// cancel before releasing, so that the slot cannot start another fold
				cancel()
			}
			sem.Release(1)
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	return ctx.Err()
}

func runFold(ctx context.Context, ds dataset.Dataset, i int, fold Fold, fn FoldOperation) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("Fold Panic (fold %d): %v\n%s", i, r, util.GetTrace())
		}
	}()
	train, test, err := Apply(ds, fold)
	if err != nil {
		return fmt.Errorf("fold %d: %w", i, err)
	}
	if err := fn(ctx, i, train, test); err != nil {
		return fmt.Errorf("fold %d: %w", i, err)
	}
	return nil
}
