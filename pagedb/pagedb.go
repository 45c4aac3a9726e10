// Package pagedb implements a crawl page store and link graph engine: a
// multi-index key/value store, layered on an embedded mmap-backed
// transactional store, that assigns every observed URL a dense integer
// index, records a per-URL PageInfo record, and persists each fetched
// page's outbound links as a packed adjacency list.
package pagedb

import (
	"log/slog"
	"sync"

	"github.com/hashicorp/go-multierror"
	"go.etcd.io/bbolt"
)

// PageDBConfig configures Open. The zero value is valid and selects the
// documented defaults.
type PageDBConfig struct {
	// InitialMapSize is the starting mmap size. Defaults to 100 MiB.
	InitialMapSize uint64
	// MaxMapSize is the growth cap. Defaults to 32 GiB.
	MaxMapSize uint64
	// Hasher computes the 64-bit URL digest. Defaults to XXHash.
	Hasher Hasher
	// Logger receives structured diagnostics (grow events, resource leak
	// warnings). Defaults to slog.Default().
	Logger *slog.Logger
}

// PageDB is the page-info store and link graph engine. A PageDB handle is
// safe for concurrent use by many readers; writes serialise internally.
type PageDB struct {
	tm     *txnManager
	hasher Hasher
	logger *slog.Logger

	lastErr lastErrorSlot

	streamsMu sync.Mutex
	streams   map[*pageDBLinkStream]struct{}
}

// Open opens (creating if necessary) the page database rooted at path,
// which must be a directory the caller has read/write/execute permission
// on. Resuming an existing database picks up where it left off: indices,
// PageInfo records and edge lists all survive a close/reopen cycle.
func Open(path string, cfg PageDBConfig) (*PageDB, error) {
	hasher := cfg.Hasher
	if hasher == nil {
		hasher = XXHash{}
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	tm, err := openTxnManager(path, cfg.InitialMapSize, cfg.MaxMapSize, logger)
	if err != nil {
		return nil, err
	}

	db := &PageDB{
		tm:      tm,
		hasher:  hasher,
		logger:  logger,
		streams: make(map[*pageDBLinkStream]struct{}),
	}
	return db, nil
}

// Close releases the underlying environment. Any link stream still open
// on this PageDB is invalidated: its cursor and read transaction are
// released as part of Close, and subsequent calls to Next/Reset on it
// return the error state. Closing the database invalidates all
// outstanding cursors and streams — callers must not outlive the store.
func (db *PageDB) Close() error {
	db.streamsMu.Lock()
	streams := make([]*pageDBLinkStream, 0, len(db.streams))
	for s := range db.streams {
		streams = append(streams, s)
	}
	db.streams = make(map[*pageDBLinkStream]struct{})
	db.streamsMu.Unlock()

	var errs *multierror.Error
	for _, s := range streams {
		if err := s.closeLocked(); err != nil {
			errs = multierror.Append(errs, err)
			db.logger.Warn("pagedb: closed outstanding link stream during Close", "err", err)
		}
	}

	if err := db.tm.close(); err != nil {
		errs = multierror.Append(errs, err)
	}

	if errs != nil {
		err := asPageDBError(errs)
		db.lastErr.set(err.(*Error))
		return err
	}
	return nil
}

// LastError returns the most recently set error for this PageDB. It is a
// convenience slot for single-threaded, C-style callers — per-call error
// returns remain authoritative, and this slot is never cleared
// automatically.
func (db *PageDB) LastError() *Error {
	return db.lastErr.get()
}

func (db *PageDB) setLastErr(err error) error {
	if err == nil {
		return nil
	}
	pe := asPageDBError(err).(*Error)
	db.lastErr.set(pe)
	return pe
}

// validateURL enforces the maximum key size this store accepts for a URL,
// returning ErrInvalidArgument rather than silently truncating.
func validateURL(url string) error {
	if len(url) > MaxURLLen {
		return newError(ErrInvalidArgument, nil, "url of length %d exceeds maximum key size %d", len(url), MaxURLLen)
	}
	return nil
}

// getOrAllocateIdx looks up url's index inside tx, allocating and
// persisting a new dense index (without writing a PageInfo record) if it
// is not yet known. It reports whether the index was newly allocated.
func getOrAllocateIdx(tx *bbolt.Tx, hasher Hasher, url string) (idx uint64, hash uint64, isNew bool, err error) {
	hash = hasher.Hash([]byte(url))

	h2i := tx.Bucket(bucketHash2Idx)
	if raw := h2i.Get(encodeU64(hash)); raw != nil {
		existing, ok := decodeU64LE(raw)
		if !ok {
			return 0, hash, false, newError(ErrInternal, nil, "corrupt hash2idx value for hash %x", hash)
		}
		return existing, hash, false, nil
	}

	idx, err = nextIndex(tx)
	if err != nil {
		return 0, hash, false, err
	}
	if err := h2i.Put(encodeU64(hash), encodeU64LE(idx)); err != nil {
		return 0, hash, false, newError(ErrInternal, err, "write hash2idx[%x]=%d: %v", hash, idx, err)
	}
	return idx, hash, true, nil
}

// nextIndex reads and increments the info["n_pages"] counter.
func nextIndex(tx *bbolt.Tx) (uint64, error) {
	info := tx.Bucket(bucketInfo)
	raw := info.Get(infoKeyNPages)

	var n uint64
	if raw != nil {
		v, ok := decodeU64LE(raw)
		if !ok {
			return 0, newError(ErrInternal, nil, "corrupt info[n_pages] value")
		}
		n = v
	}

	if err := info.Put(infoKeyNPages, encodeU64LE(n+1)); err != nil {
		return 0, newError(ErrInternal, err, "write info[n_pages]=%d: %v", n+1, err)
	}
	return n, nil
}

// readNPages returns the current value of info["n_pages"] (0 if never
// written).
func readNPages(tx *bbolt.Tx) (uint64, error) {
	raw := tx.Bucket(bucketInfo).Get(infoKeyNPages)
	if raw == nil {
		return 0, nil
	}
	n, ok := decodeU64LE(raw)
	if !ok {
		return 0, newError(ErrInternal, nil, "corrupt info[n_pages] value")
	}
	return n, nil
}

func putPageInfo(tx *bbolt.Tx, hash uint64, pi *PageInfo) error {
	buf, err := pi.Dump()
	if err != nil {
		return newError(ErrInternal, err, "serialise page info for hash %x: %v", hash, err)
	}
	if err := tx.Bucket(bucketHash2Info).Put(encodeU64(hash), buf); err != nil {
		return newError(ErrInternal, err, "write hash2info[%x]: %v", hash, err)
	}
	return nil
}

func getPageInfo(tx *bbolt.Tx, hash uint64) (*PageInfo, bool, error) {
	raw := tx.Bucket(bucketHash2Info).Get(encodeU64(hash))
	if raw == nil {
		return nil, false, nil
	}
	pi, err := LoadPageInfo(raw)
	if err != nil {
		return nil, false, newError(ErrInternal, err, "decode page info for hash %x: %v", hash, err)
	}
	return pi, true, nil
}

// Add admits a fetched page and its outbound links: it allocates dense
// indices for any URL seen for the first time (the page itself and each
// link target), updates the page's PageInfo (crawl count, change count,
// timestamps, content hash), and replaces its outbound edge list with the
// links just observed. It runs inside one write transaction (replayed in
// full on an internal map-grow, so the transaction body is intentionally
// a pure function of committed state plus cp) and returns a snapshot of
// every PageInfo it observed or created, source first, then links in page
// order.
func (db *PageDB) Add(cp *CrawledPage) ([]PageSnapshot, error) {
	if err := validateURL(cp.URL); err != nil {
		return nil, db.setLastErr(err)
	}
	for _, l := range cp.Links {
		if err := validateURL(l.URL); err != nil {
			return nil, db.setLastErr(err)
		}
	}

	var snapshots []PageSnapshot

	err := db.tm.beginWrite(func(tx *bbolt.Tx) error {
		snapshots = nil // idempotent on replay

		srcIdx, srcHash, isNew, err := getOrAllocateIdx(tx, db.hasher, cp.URL)
		if err != nil {
			return err
		}

		var srcInfo *PageInfo
		if isNew {
			srcInfo = &PageInfo{
				URL:         cp.URL,
				FirstCrawl:  cp.Time,
				LastCrawl:   cp.Time,
				NCrawls:     1,
				NChanges:    0,
				Score:       cp.Score,
				ContentHash: cp.ContentHash,
			}
		} else {
			existing, found, err := getPageInfo(tx, srcHash)
			if err != nil {
				return err
			}
			if !found {
				// Index allocated but PageInfo missing: treat as first
				// observation via this crawl, matching the allocate path.
				existing = &PageInfo{URL: cp.URL}
			}
			existing.LastCrawl = maxFloat64(existing.LastCrawl, cp.Time)
			if existing.NCrawls == 0 {
				// A link-only page being crawled for the first time
				// establishes first_crawl now.
				existing.FirstCrawl = cp.Time
			}
			existing.NCrawls++
			if len(existing.ContentHash) != 0 && !bytesEqual(existing.ContentHash, cp.ContentHash) {
				existing.NChanges++
			}
			existing.ContentHash = cp.ContentHash
			existing.Score = cp.Score
			srcInfo = existing
		}

		if err := putPageInfo(tx, srcHash, srcInfo); err != nil {
			return err
		}
		snapshots = append(snapshots, PageSnapshot{Hash: srcHash, Info: *srcInfo})

		targets := make([]uint64, 0, len(cp.Links))
		for _, link := range cp.Links {
			idx, hash, isNewLink, err := getOrAllocateIdx(tx, db.hasher, link.URL)
			if err != nil {
				return err
			}

			var linkInfo *PageInfo
			if isNewLink {
				linkInfo = &PageInfo{URL: link.URL}
				if err := putPageInfo(tx, hash, linkInfo); err != nil {
					return err
				}
			} else {
				existing, found, err := getPageInfo(tx, hash)
				if err != nil {
					return err
				}
				if !found {
					existing = &PageInfo{URL: link.URL}
				}
				linkInfo = existing
			}

			targets = append(targets, idx)
			snapshots = append(snapshots, PageSnapshot{Hash: hash, Info: *linkInfo})
		}

		if err := tx.Bucket(bucketLinks).Put(encodeU64(srcIdx), encodeU64Slice(targets)); err != nil {
			return newError(ErrInternal, err, "write links[%d]: %v", srcIdx, err)
		}

		return nil
	})
	if err != nil {
		return nil, db.setLastErr(err)
	}

	return snapshots, nil
}

// GetInfoFromURL looks up the PageInfo for url. It reports found=false,
// err=nil if the URL has never been observed — absence is not an error.
func (db *PageDB) GetInfoFromURL(url string) (*PageInfo, bool, error) {
	if err := validateURL(url); err != nil {
		return nil, false, db.setLastErr(err)
	}
	hash := db.hasher.Hash([]byte(url))
	return db.GetInfoFromHash(hash)
}

// GetInfoFromHash looks up the PageInfo stored for a URL's hash directly.
func (db *PageDB) GetInfoFromHash(hash uint64) (*PageInfo, bool, error) {
	var pi *PageInfo
	var found bool
	err := db.tm.beginRead(func(tx *bbolt.Tx) error {
		var err error
		pi, found, err = getPageInfo(tx, hash)
		return err
	})
	if err != nil {
		return nil, false, db.setLastErr(err)
	}
	return pi, found, nil
}

// GetIdx returns the dense index assigned to url, if any.
func (db *PageDB) GetIdx(url string) (uint64, bool, error) {
	if err := validateURL(url); err != nil {
		return 0, false, db.setLastErr(err)
	}
	hash := db.hasher.Hash([]byte(url))

	var idx uint64
	var found bool
	err := db.tm.beginRead(func(tx *bbolt.Tx) error {
		raw := tx.Bucket(bucketHash2Idx).Get(encodeU64(hash))
		if raw == nil {
			return nil
		}
		v, ok := decodeU64LE(raw)
		if !ok {
			return newError(ErrInternal, nil, "corrupt hash2idx value for hash %x", hash)
		}
		idx, found = v, true
		return nil
	})
	if err != nil {
		return 0, false, db.setLastErr(err)
	}
	return idx, found, nil
}

// NPages returns the current value of the global page counter: the next
// index Add would issue.
func (db *PageDB) NPages() (uint64, error) {
	var n uint64
	err := db.tm.beginRead(func(tx *bbolt.Tx) error {
		var err error
		n, err = readNPages(tx)
		return err
	})
	if err != nil {
		return 0, db.setLastErr(err)
	}
	return n, nil
}

func maxFloat64(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}

func bytesEqual(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
