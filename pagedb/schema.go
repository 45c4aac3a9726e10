package pagedb

import "encoding/binary"

// Bucket names for the five logical indices this store keeps. bbolt has no
// pluggable comparator, so every u64 key in this schema is encoded
// big-endian: byte-lexicographic order over a big-endian encoding
// coincides with numeric order, which is what "numeric key order" means
// on this storage engine.
var (
	bucketInfo       = []byte("info")
	bucketHash2Idx   = []byte("hash2idx")
	bucketHash2Info  = []byte("hash2info")
	bucketLinks      = []byte("links")
	bucketLinkScores = []byte("links_scores") // reserved for future per-link scores; unused
)

// allBuckets lists every bucket Open must ensure exists.
var allBuckets = [][]byte{
	bucketInfo, bucketHash2Idx, bucketHash2Info, bucketLinks, bucketLinkScores,
}

// infoKeyNPages is the enum-style tag under which the global page counter
// is stored in the info bucket.
var infoKeyNPages = []byte("n_pages")

// encodeU64 renders x as an 8-byte big-endian key.
func encodeU64(x uint64) []byte {
	buf := make([]byte, 8)
	binary.BigEndian.PutUint64(buf, x)
	return buf
}

// decodeU64 parses an 8-byte big-endian key produced by encodeU64.
func decodeU64(buf []byte) (uint64, bool) {
	if len(buf) != 8 {
		return 0, false
	}
	return binary.BigEndian.Uint64(buf), true
}

// encodeU64LE renders x as an 8-byte little-endian value. Values (as
// opposed to keys) have no ordering requirement, so they use the same
// little-endian convention as the PageInfo codec.
func encodeU64LE(x uint64) []byte {
	buf := make([]byte, 8)
	binary.LittleEndian.PutUint64(buf, x)
	return buf
}

// decodeU64LE parses an 8-byte little-endian value produced by encodeU64LE.
func decodeU64LE(buf []byte) (uint64, bool) {
	if len(buf) != 8 {
		return 0, false
	}
	return binary.LittleEndian.Uint64(buf), true
}

// encodeU64Slice packs a sequence of target indices into links[from]'s
// value: a flat run of 8-byte big-endian u64s, in page order, with no
// separators (the length is implicit in the slice length, since bbolt
// values are not otherwise framed by this schema).
func encodeU64Slice(xs []uint64) []byte {
	buf := make([]byte, 8*len(xs))
	for i, x := range xs {
		binary.BigEndian.PutUint64(buf[8*i:], x)
	}
	return buf
}

// decodeU64Slice is the inverse of encodeU64Slice. It rejects a buffer
// whose length is not a multiple of 8.
func decodeU64Slice(buf []byte) ([]uint64, error) {
	if len(buf)%8 != 0 {
		return nil, &Error{Code: ErrInternal, Message: "links value length is not a multiple of 8"}
	}
	n := len(buf) / 8
	xs := make([]uint64, n)
	for i := 0; i < n; i++ {
		xs[i] = binary.BigEndian.Uint64(buf[8*i:])
	}
	return xs, nil
}
