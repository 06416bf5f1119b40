package index

import (
	"encoding/binary"

	xxhash "github.com/cespare/xxhash/v2"
	"github.com/go-sif/dataset"
)

// Fingerprint hashes the columns and rows of a RawIndex. Every value is
// length-prefixed, so tables differing only in where values are split
// produce different fingerprints.
func Fingerprint(raw *dataset.RawIndex) uint64 {
	hasher := xxhash.New()
	if raw == nil {
		return hasher.Sum64()
	}
	lenBuf := make([]byte, 4)
	write := func(values []string) {
		binary.LittleEndian.PutUint32(lenBuf, uint32(len(values)))
		hasher.Write(lenBuf)
		for _, v := range values {
			binary.LittleEndian.PutUint32(lenBuf, uint32(len(v)))
			hasher.Write(lenBuf)
			hasher.Write([]byte(v))
		}
	}
	write(raw.Columns)
	for _, r := range raw.Rows {
		write(r)
	}
	return hasher.Sum64()
}
