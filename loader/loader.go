package loader

import (
	"context"
	"fmt"
	"time"

	"github.com/docker/docker/pkg/locker"
	"github.com/go-sif/dataset"
	"github.com/go-sif/dataset/internal/util"
	"github.com/go-sif/dataset/logging"
	"golang.org/x/sync/singleflight"
)

// Config configures a Loader
type Config struct {
	Name    string                // The name of the payload, reported in errors and metrics
	Columns []string              // Columns over which a Dataset must form a single unit before it is loaded. Defaults to every column.
	Load    dataset.LoadOperation // Produces the payload for a single unit
	Cache   PayloadCache          // Optional cache for loaded payloads
	Metrics *Metrics              // Optional collectors for load statistics
	Logger  *logging.Logger       // Destination for log messages. Defaults to discarding them.
}

// Loader loads the payload of a single-unit Dataset, gated by an
// assertion that the Dataset is one unit over the configured columns.
// Concurrent loads of the same unit are serialized so that the payload
// is produced once and then served from the cache. Without a cache,
// concurrent loads of the same unit share a single invocation, which runs
// with the values of the first caller's context but ignores its
// cancellation; a canceled caller stops waiting without failing the others.
type Loader struct {
	conf     *Config
	load     dataset.LoadOperation
	locks    *locker.Locker
	inflight singleflight.Group
}

// New produces a Loader
func New(conf *Config) (*Loader, error) {
	if conf.Load == nil {
		return nil, fmt.Errorf("Loader %s has no Load operation", conf.Name)
	}
	c := *conf
	if c.Name == "" {
		c.Name = "payload"
	}
	if c.Logger == nil {
		c.Logger = logging.Discard()
	}
	c.Logger = c.Logger.With(c.Name)
	c.Columns = util.CopyStrings(conf.Columns)
	return &Loader{
		conf:  &c,
		load:  util.SafeLoadOperation(c.Name, c.Load),
		locks: locker.New(),
	}, nil
}

// Key returns the cache key for a single-unit Dataset
func (l *Loader) Key(ds dataset.Dataset) (string, error) {
	cols := l.columns(ds)
	if err := ds.AssertIsSingle(cols, l.conf.Name); err != nil {
		return "", err
	}
	row, err := ds.Row(0)
	if err != nil {
		return "", err
	}
	values, err := row.Project(cols)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s/%s/%q", ds.IndexID(), l.conf.Name, []string(values)), nil
}

// Get returns the payload for ds, which must be a single unit over the configured columns
func (l *Loader) Get(ctx context.Context, ds dataset.Dataset) ([]byte, error) {
	key, err := l.Key(ds)
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if l.conf.Cache == nil {
		// the shared load outlives any one caller's cancellation
		loadCtx := context.WithoutCancel(ctx)
		ch := l.inflight.DoChan(key, func() (interface{}, error) {
			return l.loadAndRecord(loadCtx, ds, key)
		})
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case res := <-ch:
			if res.Err != nil {
				return nil, res.Err
			}
			return res.Val.([]byte), nil
		}
	}
	if payload, ok := l.conf.Cache.Get(key); ok {
		return payload, nil
	}
	l.locks.Lock(key)
	defer l.locks.Unlock(key)
	// another goroutine may have loaded this payload while we waited
	if payload, ok := l.conf.Cache.Get(key); ok {
		return payload, nil
	}
	payload, err := l.loadAndRecord(ctx, ds, key)
	if err != nil {
		return nil, err
	}
	l.conf.Cache.Add(key, payload)
	return payload, nil
}

func (l *Loader) loadAndRecord(ctx context.Context, ds dataset.Dataset, key string) ([]byte, error) {
	started := time.Now()
	payload, err := l.load(ctx, ds)
	l.conf.Metrics.load(l.conf.Name, started, err)
	if err != nil {
		l.conf.Logger.Warnf("failed to load %s: %v", key, err)
		return nil, fmt.Errorf("loading %s: %w", key, err)
	}
	l.conf.Logger.Debugf("loaded %s (%d bytes) in %s", key, len(payload), time.Since(started))
	return payload, nil
}

func (l *Loader) columns(ds dataset.Dataset) []string {
	if len(l.conf.Columns) > 0 {
		return l.conf.Columns
	}
	return ds.Columns()
}
