package htmlstore

import (
	"encoding/hex"

	"github.com/cespare/xxhash/v2"
)

// Identify maps an absolute file path to its stable record identifier.
// The identifier is a pure function of the literal path string: the same
// path always yields the same ID across runs and platforms, which is what
// makes re-indexing idempotent. Renaming or moving a file produces a new
// ID even though the bytes on disk are unchanged.
func Identify(path string) string {
	h := xxhash.Sum64String(path)
	b := make([]byte, 8)
	b[0] = byte(h >> 56)
	b[1] = byte(h >> 48)
	b[2] = byte(h >> 40)
	b[3] = byte(h >> 32)
	b[4] = byte(h >> 24)
	b[5] = byte(h >> 16)
	b[6] = byte(h >> 8)
	b[7] = byte(h)
	return hex.EncodeToString(b)
}
