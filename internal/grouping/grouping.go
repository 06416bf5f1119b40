// Package grouping computes insertion-ordered groups over rows of an index.
//
// Groups are ordered by first occurrence within the scanned positions,
// never sorted: iteration order and label assignment downstream depend on it.
package grouping

import (
	"encoding/binary"

	xxhash "github.com/cespare/xxhash/v2"
	"github.com/go-sif/dataset"
)

// Table provides the values being grouped
type Table interface {
	Value(pos int, col int) string
}

// Groups is the ordered result of grouping a list of positions
type Groups struct {
	keys    []dataset.GroupKey
	members [][]int
	buckets map[uint64][]int // hash of a key -> indices into keys
}

func newGroups(sizeHint int) *Groups {
	return &Groups{
		keys:    make([]dataset.GroupKey, 0, sizeHint),
		members: make([][]int, 0, sizeHint),
		buckets: make(map[uint64][]int, sizeHint),
	}
}

// Compute groups positions by their values over cols. The positions of each group
// keep their relative order from the input.
func Compute(t Table, positions []int, cols []int) *Groups {
	g := newGroups(0)
	buf := make(dataset.GroupKey, len(cols))
	for _, pos := range positions {
		for i, c := range cols {
			buf[i] = t.Value(pos, c)
		}
		gi := g.insert(buf)
		g.members[gi] = append(g.members[gi], pos)
	}
	return g
}

// insert returns the index of the group for key, creating it if necessary. key is
// copied on creation, so callers may reuse it.
func (g *Groups) insert(key dataset.GroupKey) int {
	h := hashKey(key)
	for _, gi := range g.buckets[h] {
		if g.keys[gi].Equal(key) {
			return gi
		}
	}
	gi := len(g.keys)
	g.keys = append(g.keys, key.Clone())
	g.members = append(g.members, nil)
	g.buckets[h] = append(g.buckets[h], gi)
	return gi
}

// Len returns the number of groups
func (g *Groups) Len() int {
	return len(g.keys)
}

// Key returns the key of the i-th group. The result must not be modified.
func (g *Groups) Key(i int) dataset.GroupKey {
	return g.keys[i]
}

// Keys returns a copy of every group key, in group order
func (g *Groups) Keys() []dataset.GroupKey {
	res := make([]dataset.GroupKey, len(g.keys))
	for i, k := range g.keys {
		res[i] = k.Clone()
	}
	return res
}

// Members returns the positions belonging to the i-th group. The result must not be modified.
func (g *Groups) Members(i int) []int {
	return g.members[i]
}

// Find returns the index of the group with the given key
func (g *Groups) Find(key dataset.GroupKey) (int, bool) {
	for _, gi := range g.buckets[hashKey(key)] {
		if g.keys[gi].Equal(key) {
			return gi, true
		}
	}
	return -1, false
}

// hashKey hashes a key, length-prefixing each value so that
// ("ab", "c") and ("a", "bc") hash differently
func hashKey(key dataset.GroupKey) uint64 {
	hasher := xxhash.New()
	var lenBuf [4]byte
	for _, v := range key {
		binary.LittleEndian.PutUint32(lenBuf[:], uint32(len(v)))
		hasher.Write(lenBuf[:])
		hasher.Write([]byte(v))
	}
	return hasher.Sum64()
}
