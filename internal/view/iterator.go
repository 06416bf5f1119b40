package view

import (
	"sync"

	"github.com/go-sif/dataset"
	"github.com/go-sif/dataset/errors"
)

// unitIterator produces a single-unit Dataset for each unit of a View. Every
// call to Iterate creates a fresh unitIterator, so iteration is restartable.
type unitIterator struct {
	view *viewImpl
	next int
	lock sync.Mutex
}

// Iterate returns a fresh iterator over every unit
func (v *viewImpl) Iterate() dataset.UnitIterator {
	return &unitIterator{view: v}
}

// HasNext returns true iff this iterator can produce another unit
func (it *unitIterator) HasNext() bool {
	it.lock.Lock()
	defer it.lock.Unlock()
	return it.next < it.view.Len()
}

// Next returns the next unit if one is available, or an error
func (it *unitIterator) Next() (dataset.Dataset, error) {
	it.lock.Lock()
	defer it.lock.Unlock()
	if it.next >= it.view.Len() {
		return nil, errors.NoMoreUnitsError{}
	}
	unit, err := it.view.At(it.next)
	if err != nil {
		return nil, err
	}
	it.next++
	return unit, nil
}
