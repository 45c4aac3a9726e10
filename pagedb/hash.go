package pagedb

import "github.com/cespare/xxhash/v2"

// Hasher computes a deterministic 64-bit digest of a URL. The digest is
// assumed collision-free within a single store; callers needing a
// collision-detection probe can compare the incoming URL against the
// stored one returned by a lookup (see Error ErrInternal in that path).
//
// The default Hasher is XXHash. Callers may supply their own via
// PageDBConfig.Hasher, for example to inject deterministic collisions in
// tests of the collision-probe behaviour.
type Hasher interface {
	Hash(url []byte) uint64
}

// XXHash is the default non-cryptographic 64-bit Hasher.
type XXHash struct{}

// Hash implements Hasher.
func (XXHash) Hash(url []byte) uint64 {
	return xxhash.Sum64(url)
}
