package pagedb

import (
	"encoding/binary"
	"fmt"
	"time"
)

// MaxURLLen is the maximum length, in bytes, of a URL this store will
// accept. A URL whose encoded key would exceed it is rejected with
// ErrInvalidArgument rather than silently truncated.
const MaxURLLen = 500

// MaxContentHashLen bounds the variable-length content hash field so a
// corrupt or hostile buffer cannot claim an unbounded allocation during
// decode.
const MaxContentHashLen = 1 << 16

// pageInfoHeaderLen is the size, in bytes, of the fixed-width prefix of a
// serialised PageInfo: two f64, one f32, two u64, two u16.
const pageInfoHeaderLen = 8 + 8 + 4 + 8 + 8 + 2 + 2

// PageInfo is the per-URL observational record this store keeps: crawl
// timestamps, counts, a relevance score, and the most recent content hash.
type PageInfo struct {
	URL         string
	FirstCrawl  float64
	LastCrawl   float64
	NCrawls     uint64
	NChanges    uint64
	Score       float32
	ContentHash []byte
}

// Validate checks the three invariants a well-formed PageInfo must
// satisfy: first_crawl precedes last_crawl, n_changes never exceeds
// max(0, n_crawls-1), and an uncrawled page carries no content hash. It
// is not called on the hot Add path; callers (and tests) use it to
// assert the ingestion algorithm never produces an inconsistent record.
func (p *PageInfo) Validate() error {
	if p.FirstCrawl > p.LastCrawl {
		return fmt.Errorf("pagedb: page info invariant violated: first_crawl %v > last_crawl %v", p.FirstCrawl, p.LastCrawl)
	}
	maxChanges := uint64(0)
	if p.NCrawls > 0 {
		maxChanges = p.NCrawls - 1
	}
	if p.NChanges > maxChanges {
		return fmt.Errorf("pagedb: page info invariant violated: n_changes %d > max(0, n_crawls-1) %d", p.NChanges, maxChanges)
	}
	if p.NCrawls == 0 && len(p.ContentHash) != 0 {
		return fmt.Errorf("pagedb: page info invariant violated: n_crawls == 0 but content_hash is non-empty")
	}
	return nil
}

// Dump serialises p into a contiguous little-endian buffer. The layout is
// total and self-delimiting: Load(Dump(p)) reproduces p field-for-field.
func (p *PageInfo) Dump() ([]byte, error) {
	if len(p.URL) > 0xFFFF {
		return nil, fmt.Errorf("pagedb: url too long to encode (%d bytes)", len(p.URL))
	}
	if len(p.ContentHash) > 0xFFFF {
		return nil, fmt.Errorf("pagedb: content hash too long to encode (%d bytes)", len(p.ContentHash))
	}

	buf := make([]byte, pageInfoHeaderLen+len(p.URL)+len(p.ContentHash))
	off := 0
	binary.LittleEndian.PutUint64(buf[off:], float64bits(p.FirstCrawl))
	off += 8
	binary.LittleEndian.PutUint64(buf[off:], float64bits(p.LastCrawl))
	off += 8
	binary.LittleEndian.PutUint32(buf[off:], float32bits(p.Score))
	off += 4
	binary.LittleEndian.PutUint64(buf[off:], p.NCrawls)
	off += 8
	binary.LittleEndian.PutUint64(buf[off:], p.NChanges)
	off += 8
	binary.LittleEndian.PutUint16(buf[off:], uint16(len(p.URL)))
	off += 2
	binary.LittleEndian.PutUint16(buf[off:], uint16(len(p.ContentHash)))
	off += 2
	copy(buf[off:], p.URL)
	off += len(p.URL)
	copy(buf[off:], p.ContentHash)

	return buf, nil
}

// LoadPageInfo deserialises a buffer produced by Dump. It rejects
// malformed input (short reads, lengths that would overrun the buffer)
// with a decode error instead of panicking.
func LoadPageInfo(buf []byte) (*PageInfo, error) {
	if len(buf) < pageInfoHeaderLen {
		return nil, fmt.Errorf("pagedb: decode page info: short buffer (%d bytes, need at least %d)", len(buf), pageInfoHeaderLen)
	}

	off := 0
	firstCrawl := float64frombits(binary.LittleEndian.Uint64(buf[off:]))
	off += 8
	lastCrawl := float64frombits(binary.LittleEndian.Uint64(buf[off:]))
	off += 8
	score := float32frombits(binary.LittleEndian.Uint32(buf[off:]))
	off += 4
	nCrawls := binary.LittleEndian.Uint64(buf[off:])
	off += 8
	nChanges := binary.LittleEndian.Uint64(buf[off:])
	off += 8
	urlLen := int(binary.LittleEndian.Uint16(buf[off:]))
	off += 2
	hashLen := int(binary.LittleEndian.Uint16(buf[off:]))
	off += 2

	if urlLen > MaxURLLen {
		return nil, fmt.Errorf("pagedb: decode page info: url_len %d exceeds maximum %d", urlLen, MaxURLLen)
	}
	if hashLen > MaxContentHashLen {
		return nil, fmt.Errorf("pagedb: decode page info: content_hash_len %d exceeds maximum %d", hashLen, MaxContentHashLen)
	}
	if len(buf) != off+urlLen+hashLen {
		return nil, fmt.Errorf("pagedb: decode page info: buffer length %d does not match header-declared sizes (want %d)", len(buf), off+urlLen+hashLen)
	}

	url := string(buf[off : off+urlLen])
	off += urlLen
	contentHash := append([]byte(nil), buf[off:off+hashLen]...)

	return &PageInfo{
		URL:         url,
		FirstCrawl:  firstCrawl,
		LastCrawl:   lastCrawl,
		NCrawls:     nCrawls,
		NChanges:    nChanges,
		Score:       score,
		ContentHash: contentHash,
	}, nil
}

// Print renders a fixed-width, human-readable line intended only for
// inspection tooling, never for the ingestion path:
//
//	<ctime first_crawl> <ctime last_crawl> <e-notation n_crawls> <e-notation n_changes> <url truncated to 512 bytes>
func (p *PageInfo) Print() string {
	const urlTruncate = 512
	url := p.URL
	if len(url) > urlTruncate {
		url = url[:urlTruncate]
	}
	return fmt.Sprintf("%s %s %8.2e %8.2e %s",
		ctime(p.FirstCrawl),
		ctime(p.LastCrawl),
		float64(p.NCrawls),
		float64(p.NChanges),
		url,
	)
}

// ctime renders t in the fixed 24-byte layout C's ctime uses:
// "Mon Jan  2 15:04:05 2006".
func ctime(secondsSinceEpoch float64) string {
	if secondsSinceEpoch == 0 {
		return time.Unix(0, 0).UTC().Format("Mon Jan  2 15:04:05 2006")
	}
	t := time.Unix(int64(secondsSinceEpoch), 0).UTC()
	return t.Format("Mon Jan  2 15:04:05 2006")
}
