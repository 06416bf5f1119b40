// Package split partitions the units of a Dataset into train/test folds, optionally
// keeping every group of units on one side of each fold.
package split

import (
	"fmt"
	"math/rand"
	"sort"

	"github.com/go-sif/dataset"
	"github.com/go-sif/dataset/errors"
)

// Fold is one train/test partition of the units of a Sequence, as unit indices
type Fold struct {
	Train []int
	Test  []int
}

// Splitter produces folds over the units of a Sequence. labels assigns a group
// label to each unit (see Dataset.CreateGroupLabels) and is ignored by
// Splitters which are not group-aware.
type Splitter interface {
	Split(seq dataset.Sequence, labels []int) ([]Fold, error)
}

// KFold splits units into N folds of near-equal size. The first Len % N folds
// receive one extra test unit.
type KFold struct {
	N       int
	Shuffle bool
	Seed    int64
}

// Split implements Splitter
func (k KFold) Split(seq dataset.Sequence, labels []int) ([]Fold, error) {
	n := seq.Len()
	if err := checkFoldCount(k.N, n, "units"); err != nil {
		return nil, err
	}
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	if k.Shuffle {
		r := rand.New(rand.NewSource(k.Seed))
		r.Shuffle(n, func(i, j int) { order[i], order[j] = order[j], order[i] })
	}
	folds := make([]Fold, k.N)
	start := 0
	for f := range folds {
		size := n / k.N
		if f < n%k.N {
			size++
		}
		testSet := make(map[int]bool, size)
		for _, u := range order[start : start+size] {
			testSet[u] = true
		}
		folds[f] = partition(n, func(u int) bool { return testSet[u] })
		start += size
	}
	return folds, nil
}

// GroupKFold splits units into N folds such that the units sharing a label are
// all in the same test fold. Groups are assigned largest first to the fold with
// the fewest test units so far.
type GroupKFold struct {
	N int
}

// Split implements Splitter
func (k GroupKFold) Split(seq dataset.Sequence, labels []int) ([]Fold, error) {
	n := seq.Len()
	sizes, err := groupSizes(n, labels)
	if err != nil {
		return nil, err
	}
	if err := checkFoldCount(k.N, len(sizes), "groups"); err != nil {
		return nil, err
	}
	byLabel := make([]int, len(sizes))
	for l := range byLabel {
		byLabel[l] = l
	}
	sort.SliceStable(byLabel, func(i, j int) bool { return sizes[byLabel[i]] > sizes[byLabel[j]] })
	foldOf := make([]int, len(sizes))
	weights := make([]int, k.N)
	for _, l := range byLabel {
		lightest := 0
		for f := 1; f < k.N; f++ {
			if weights[f] < weights[lightest] {
				lightest = f
			}
		}
		foldOf[l] = lightest
		weights[lightest] += sizes[l]
	}
	folds := make([]Fold, k.N)
	for f := range folds {
		f := f
		folds[f] = partition(n, func(u int) bool { return foldOf[labels[u]] == f })
	}
	return folds, nil
}

// LeaveOneGroupOut produces one fold per label, whose test units are exactly the
// units carrying that label. Folds are ordered by label.
type LeaveOneGroupOut struct{}

// Split implements Splitter
func (LeaveOneGroupOut) Split(seq dataset.Sequence, labels []int) ([]Fold, error) {
	n := seq.Len()
	sizes, err := groupSizes(n, labels)
	if err != nil {
		return nil, err
	}
	if err := checkFoldCount(len(sizes), len(sizes), "groups"); err != nil {
		return nil, err
	}
	folds := make([]Fold, len(sizes))
	for l := range folds {
		l := l
		folds[l] = partition(n, func(u int) bool { return labels[u] == l })
	}
	return folds, nil
}

// Apply produces the train and test Datasets of a fold computed over ds
func Apply(ds dataset.Dataset, fold Fold) (train dataset.Dataset, test dataset.Dataset, err error) {
	train, err = selectUnits(ds, fold.Train)
	if err != nil {
		return nil, nil, err
	}
	test, err = selectUnits(ds, fold.Test)
	if err != nil {
		return nil, nil, err
	}
	return train, test, nil
}

func selectUnits(ds dataset.Dataset, units []int) (dataset.Dataset, error) {
	return ds.GetSubset(dataset.ByPositions(units...))
}

// partition splits the unit indices 0..n-1 into train and test, preserving order
func partition(n int, isTest func(u int) bool) Fold {
	fold := Fold{Train: []int{}, Test: []int{}}
	for u := 0; u < n; u++ {
		if isTest(u) {
			fold.Test = append(fold.Test, u)
		} else {
			fold.Train = append(fold.Train, u)
		}
	}
	return fold
}

// groupSizes validates labels against n units and counts the units per label.
// Labels must be the ordinals 0..k-1.
func groupSizes(n int, labels []int) ([]int, error) {
	if len(labels) != n {
		return nil, errors.LengthMismatchError{Length: len(labels), Expected: n}
	}
	sizes := []int{}
	for u, l := range labels {
		if l < 0 {
			return nil, fmt.Errorf("unit %d has negative label %d", u, l)
		}
		for l >= len(sizes) {
			sizes = append(sizes, 0)
		}
		sizes[l]++
	}
	for l, size := range sizes {
		if size == 0 {
			return nil, fmt.Errorf("label %d is not assigned to any unit", l)
		}
	}
	return sizes, nil
}

func checkFoldCount(folds int, available int, what string) error {
	if folds < 2 {
		return fmt.Errorf("cannot split into %d folds: at least 2 are required", folds)
	}
	if folds > available {
		return fmt.Errorf("cannot split %d %s into %d folds", available, what, folds)
	}
	return nil
}
