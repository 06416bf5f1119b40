package loader

import (
	"bytes"
	"container/list"
	"fmt"
	"io"
	"sync"

	"github.com/go-sif/dataset/logging"
	"github.com/pierrec/lz4"
)

const (
	rawTier        = "raw"
	compressedTier = "compressed"
)

// PayloadCache is a bounded, keyed cache for loaded payloads
type PayloadCache interface {
	// Add stores a payload, evicting the least recently used payloads if the cache is full
	Add(key string, value []byte)
	// Get returns a payload, if present
	Get(key string) (value []byte, ok bool)
	// CurrentSize returns the number of cached payloads
	CurrentSize() int
	// Destroy drops every cached payload
	Destroy()
}

// LRUConfig configures an LRU PayloadCache
type LRUConfig struct {
	Size               int             // The maximum number of cached payloads, across both tiers. Must be at least 2.
	CompressedFraction float32         // The fraction of Size held lz4-compressed. Must be between 0 and 1. Defaults to 0.
	Logger             *logging.Logger // Destination for log messages. Defaults to discarding them.
	Metrics            *Metrics        // Collectors for cache statistics. Defaults to none.
}

// lru is an LRU cache for payloads. Recently used payloads are held as-is; when
// that tier is full, the least recently used payload is compressed into the
// second tier, and when that one is full too, its oldest entry is dropped.
type lru struct {
	config          *LRUConfig
	lock            sync.Mutex
	pmap            map[string]*list.Element
	recentList      *list.List // back is oldest, front is newest
	compressedPmap  map[string]*list.Element
	compressedList  *list.List // back is oldest, front is newest
	maxUncompressed int
	maxCompressed   int
}

type cachedPayload struct {
	key   string
	value []byte
}

// NewLRU produces an LRU PayloadCache
func NewLRU(config *LRUConfig) (PayloadCache, error) {
	if config.Size < 2 {
		return nil, fmt.Errorf("LRUConfig.Size %d must be at least 2", config.Size)
	}
	if config.CompressedFraction < 0 || config.CompressedFraction > 1 {
		return nil, fmt.Errorf("LRUConfig.CompressedFraction %f must be between 0 and 1", config.CompressedFraction)
	}
	maxCompressed := int(float32(config.Size) * config.CompressedFraction)
	maxUncompressed := config.Size - maxCompressed
	if maxUncompressed < 1 {
		maxUncompressed = 1
		maxCompressed = config.Size - 1
	}
	return &lru{
		config:          config,
		pmap:            make(map[string]*list.Element),
		recentList:      list.New(),
		compressedPmap:  make(map[string]*list.Element),
		compressedList:  list.New(),
		maxUncompressed: maxUncompressed,
		maxCompressed:   maxCompressed,
	}, nil
}

// Add stores a payload, replacing any previous payload with the same key
func (c *lru) Add(key string, value []byte) {
	c.lock.Lock()
	defer c.lock.Unlock()
	c.removeLocked(key)
	c.pmap[key] = c.recentList.PushFront(&cachedPayload{key: key, value: copyPayload(value)})
	c.shrinkLocked()
}

// Get returns a copy of a payload, if present, marking it as recently used
func (c *lru) Get(key string) ([]byte, bool) {
	c.lock.Lock()
	defer c.lock.Unlock()
	if e, ok := c.pmap[key]; ok {
		c.recentList.MoveToFront(e)
		c.config.Metrics.hit(rawTier)
		return copyPayload(e.Value.(*cachedPayload).value), true
	}
	if e, ok := c.compressedPmap[key]; ok {
		value, err := decompress(e.Value.(*cachedPayload).value)
		c.compressedList.Remove(e)
		delete(c.compressedPmap, key)
		if err != nil {
			c.config.Logger.Warnf("dropping corrupt compressed payload %s: %v", key, err)
			c.config.Metrics.miss()
			return nil, false
		}
		// promote back to the uncompressed tier
		c.pmap[key] = c.recentList.PushFront(&cachedPayload{key: key, value: value})
		c.shrinkLocked()
		c.config.Metrics.hit(compressedTier)
		return copyPayload(value), true
	}
	c.config.Metrics.miss()
	return nil, false
}

// CurrentSize returns the number of cached payloads, across both tiers
func (c *lru) CurrentSize() int {
	c.lock.Lock()
	defer c.lock.Unlock()
	return len(c.pmap) + len(c.compressedPmap)
}

// Destroy drops every cached payload
func (c *lru) Destroy() {
	c.lock.Lock()
	defer c.lock.Unlock()
	c.pmap = make(map[string]*list.Element)
	c.recentList.Init()
	c.compressedPmap = make(map[string]*list.Element)
	c.compressedList.Init()
}

func (c *lru) removeLocked(key string) {
	if e, ok := c.pmap[key]; ok {
		c.recentList.Remove(e)
		delete(c.pmap, key)
	}
	if e, ok := c.compressedPmap[key]; ok {
		c.compressedList.Remove(e)
		delete(c.compressedPmap, key)
	}
}

// shrinkLocked evicts payloads until both tiers are within their bounds
func (c *lru) shrinkLocked() {
	for c.recentList.Len() > c.maxUncompressed {
		oldest := c.recentList.Back()
		c.recentList.Remove(oldest)
		p := oldest.Value.(*cachedPayload)
		delete(c.pmap, p.key)
		c.config.Metrics.evict(rawTier)
		if c.maxCompressed == 0 {
			c.config.Logger.Tracef("dropped payload %s", p.key)
			continue
		}
		compressed, err := compress(p.value)
		if err != nil {
			c.config.Logger.Warnf("unable to compress payload %s, dropping it: %v", p.key, err)
			continue
		}
		c.compressedPmap[p.key] = c.compressedList.PushFront(&cachedPayload{key: p.key, value: compressed})
		c.config.Logger.Tracef("compressed payload %s (%d -> %d bytes)", p.key, len(p.value), len(compressed))
	}
	for c.compressedList.Len() > c.maxCompressed {
		oldest := c.compressedList.Back()
		c.compressedList.Remove(oldest)
		p := oldest.Value.(*cachedPayload)
		delete(c.compressedPmap, p.key)
		c.config.Metrics.evict(compressedTier)
		c.config.Logger.Tracef("dropped compressed payload %s", p.key)
	}
}

func compress(value []byte) ([]byte, error) {
	buf := new(bytes.Buffer)
	w := lz4.NewWriter(buf)
	if _, err := w.Write(value); err != nil {
		return nil, err
	}
	if err := w.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func decompress(value []byte) ([]byte, error) {
	return io.ReadAll(lz4.NewReader(bytes.NewReader(value)))
}

func copyPayload(value []byte) []byte {
	return append([]byte(nil), value...)
}
