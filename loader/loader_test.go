package loader

import (
	"context"
	goerrors "errors"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/go-sif/dataset"
	"github.com/go-sif/dataset/datasource"
	"github.com/go-sif/dataset/errors"
	dstest "github.com/go-sif/dataset/testing"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func createRecordingDataset(t *testing.T, numParticipants int) dataset.Dataset {
	ds, err := datasource.CreateDataset(&dataset.Config{Name: "recordings"}, dstest.RecordingGenerator(numParticipants))
	require.Nil(t, err)
	return ds
}

func participant(t *testing.T, ds dataset.Dataset, name string) dataset.Dataset {
	unit, err := ds.GetSubset(dataset.ByColumn("participant", name))
	require.Nil(t, err)
	return unit
}

// countingLoad produces "<participant>:<rows>" and counts its invocations
func countingLoad(calls *int32) dataset.LoadOperation {
	return func(ctx context.Context, unit dataset.Dataset) ([]byte, error) {
		atomic.AddInt32(calls, 1)
		row, err := unit.Row(0)
		if err != nil {
			return nil, err
		}
		p, err := row.Get("participant")
		if err != nil {
			return nil, err
		}
		return []byte(fmt.Sprintf("%s:%d", p, unit.NumRows())), nil
	}
}

func TestLoaderRequiresLoad(t *testing.T) {
	_, err := New(&Config{Name: "eeg"})
	require.NotNil(t, err)
}

func TestLoaderGet(t *testing.T) {
	ds := createRecordingDataset(t, 3)
	var calls int32
	cache, err := NewLRU(&LRUConfig{Size: 8})
	require.Nil(t, err)
	l, err := New(&Config{
		Name:    "eeg",
		Columns: []string{"participant"},
		Load:    countingLoad(&calls),
		Cache:   cache,
	})
	require.Nil(t, err)

	payload, err := l.Get(context.Background(), participant(t, ds, "p2"))
	require.Nil(t, err)
	require.Equal(t, "p2:4", string(payload))
	require.EqualValues(t, 1, atomic.LoadInt32(&calls))

	// the same unit reached through a different view is served from the cache
	grouped, err := ds.GroupBy("participant")
	require.Nil(t, err)
	unit, err := grouped.At(1)
	require.Nil(t, err)
	payload, err = l.Get(context.Background(), unit)
	require.Nil(t, err)
	require.Equal(t, "p2:4", string(payload))
	require.EqualValues(t, 1, atomic.LoadInt32(&calls))
	require.Equal(t, 1, cache.CurrentSize())
}

func TestLoaderKey(t *testing.T) {
	ds := createRecordingDataset(t, 2)
	l, err := New(&Config{Name: "eeg", Columns: []string{"participant"}, Load: countingLoad(new(int32))})
	require.Nil(t, err)
	k1, err := l.Key(participant(t, ds, "p1"))
	require.Nil(t, err)
	k2, err := l.Key(participant(t, ds, "p2"))
	require.Nil(t, err)
	require.NotEqual(t, k1, k2)

	other := createRecordingDataset(t, 2)
	k3, err := l.Key(participant(t, other, "p1"))
	require.Nil(t, err)
	require.NotEqual(t, k1, k3, "keys of different indices must differ")
}

func TestLoaderRejectsMultipleUnits(t *testing.T) {
	ds := createRecordingDataset(t, 3)
	var calls int32
	l, err := New(&Config{Name: "eeg", Columns: []string{"participant"}, Load: countingLoad(&calls)})
	require.Nil(t, err)

	_, err = l.Get(context.Background(), ds)
	require.NotNil(t, err)
	var notSingle errors.NotSingleUnitError
	require.True(t, goerrors.As(err, &notSingle))
	require.Equal(t, "eeg", notSingle.Context)
	require.Equal(t, 3, notSingle.Units)

	// a single participant still spans several recordings
	l, err = New(&Config{Name: "recording", Columns: []string{"participant", "recording"}, Load: countingLoad(&calls)})
	require.Nil(t, err)
	_, err = l.Get(context.Background(), participant(t, ds, "p1"))
	require.True(t, goerrors.As(err, &notSingle))
	require.Equal(t, 3, notSingle.Units)
	require.EqualValues(t, 0, atomic.LoadInt32(&calls))
}

func TestLoaderErrors(t *testing.T) {
	ds := createRecordingDataset(t, 1)
	reg := prometheus.NewRegistry()
	metrics := NewMetrics(reg)
	cache, err := NewLRU(&LRUConfig{Size: 4})
	require.Nil(t, err)
	boom := fmt.Errorf("file is corrupt")
	var calls int32
	l, err := New(&Config{
		Name:    "eeg",
		Columns: []string{"participant"},
		Load: func(ctx context.Context, unit dataset.Dataset) ([]byte, error) {
			atomic.AddInt32(&calls, 1)
			return nil, boom
		},
		Cache:   cache,
		Metrics: metrics,
	})
	require.Nil(t, err)

	_, err = l.Get(context.Background(), ds)
	require.NotNil(t, err)
	require.True(t, goerrors.Is(err, boom))
	// failures are not cached
	_, err = l.Get(context.Background(), ds)
	require.NotNil(t, err)
	require.EqualValues(t, 2, atomic.LoadInt32(&calls))
	require.Equal(t, 0, cache.CurrentSize())
	require.Equal(t, 2.0, testutil.ToFloat64(metrics.LoadsTotal.WithLabelValues("eeg", "error")))
	require.Equal(t, 0.0, testutil.ToFloat64(metrics.LoadsTotal.WithLabelValues("eeg", "ok")))
}

func TestLoaderPanics(t *testing.T) {
	ds := createRecordingDataset(t, 1)
	l, err := New(&Config{
		Name: "eeg",
		Load: func(ctx context.Context, unit dataset.Dataset) ([]byte, error) {
			panic(fmt.Errorf("index out of range"))
		},
	})
	require.Nil(t, err)
	single, err := ds.GetSubset(dataset.ByPositions(0))
	require.Nil(t, err)
	_, err = l.Get(context.Background(), single)
	require.NotNil(t, err)
	require.Contains(t, err.Error(), "Load Panic (eeg)")
}

func TestLoaderCanceledContext(t *testing.T) {
	ds := createRecordingDataset(t, 1)
	var calls int32
	l, err := New(&Config{Name: "eeg", Columns: []string{"participant"}, Load: countingLoad(&calls)})
	require.Nil(t, err)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = l.Get(ctx, ds)
	require.True(t, goerrors.Is(err, context.Canceled))
	require.EqualValues(t, 0, atomic.LoadInt32(&calls))
}

func TestLoaderConcurrentGet(t *testing.T) {
	defer goleak.VerifyNone(t)
	ds := createRecordingDataset(t, 4)
	var calls int32
	cache, err := NewLRU(&LRUConfig{Size: 8, CompressedFraction: 0.5})
	require.Nil(t, err)
	l, err := New(&Config{Name: "eeg", Columns: []string{"participant"}, Load: countingLoad(&calls), Cache: cache})
	require.Nil(t, err)
	grouped, err := ds.GroupBy("participant")
	require.Nil(t, err)

	var wg sync.WaitGroup
	errs := make(chan error, 10*grouped.Len())
	for i := 0; i < 10; i++ {
		for u := 0; u < grouped.Len(); u++ {
			wg.Add(1)
			go func(u int) {
				defer wg.Done()
				unit, err := grouped.At(u)
				if err != nil {
					errs <- err
					return
				}
				payload, err := l.Get(context.Background(), unit)
				if err != nil {
					errs <- err
					return
				}
				if string(payload) != fmt.Sprintf("p%d:4", u+1) {
					errs <- fmt.Errorf("unit %d got payload %s", u, payload)
				}
			}(u)
		}
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		require.Nil(t, err)
	}
	require.EqualValues(t, grouped.Len(), atomic.LoadInt32(&calls))
}

func TestLoaderSharedLoadSurvivesCanceledCaller(t *testing.T) {
	defer goleak.VerifyNone(t)
	ds := participant(t, createRecordingDataset(t, 2), "p1")
	started := make(chan struct{}, 2)
	release := make(chan struct{})
	l, err := New(&Config{Name: "eeg", Columns: []string{"participant"}, Load: func(ctx context.Context, unit dataset.Dataset) ([]byte, error) {
		started <- struct{}{}
		<-release
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		return []byte("p1"), nil
	}})
	require.Nil(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	firstErr := make(chan error, 1)
	go func() {
		_, err := l.Get(ctx, ds)
		firstErr <- err
	}()
	<-started
	cancel()
	require.True(t, goerrors.Is(<-firstErr, context.Canceled))

	second := make(chan []byte, 1)
	secondErr := make(chan error, 1)
	go func() {
		payload, err := l.Get(context.Background(), ds)
		secondErr <- err
		second <- payload
	}()
	close(release)
	require.Nil(t, <-secondErr)
	require.Equal(t, []byte("p1"), <-second)
}
