package pagedb

import (
	"fmt"
	"log/slog"
	"os"
	"sync"

	"go.etcd.io/bbolt"
)

const (
	// defaultInitialMapSize is the initial mmap size used when a caller
	// does not set PageDBConfig.InitialMapSize.
	defaultInitialMapSize = 100 * 1024 * 1024
	// defaultMaxMapSize is this implementation's growth cap.
	defaultMaxMapSize = 32 * 1024 * 1024 * 1024
	// growHeadroomPct is the fraction of the current map size below which
	// a write pre-emptively triggers a grow, so that a write never fails
	// mid-transaction for want of address space.
	growHeadroomPct = 0.10
)

// txnManager arbitrates read/write transactions against the underlying
// bbolt environment and implements a grow-and-retry policy: a write that
// would exceed the current map size causes the manager to double the map
// size (up to maxMapSize), reopen the environment, and re-run the
// caller's closure. Grow is serialised with all transactions via growMu.
type txnManager struct {
	path string

	growMu sync.RWMutex // held for read by every txn, for write only while growing
	db     *bbolt.DB

	currentLimit uint64
	maxMapSize   uint64

	logger *slog.Logger
}

func openTxnManager(path string, initialMapSize, maxMapSize uint64, logger *slog.Logger) (*txnManager, error) {
	if initialMapSize == 0 {
		initialMapSize = defaultInitialMapSize
	}
	if maxMapSize == 0 {
		maxMapSize = defaultMaxMapSize
	}
	if logger == nil {
		logger = slog.Default()
	}

	db, err := bbolt.Open(path, 0600, &bbolt.Options{
		InitialMmapSize: int(initialMapSize),
	})
	if err != nil {
		return nil, newError(ErrInvalidPath, err, "open bbolt environment at %s: %v", path, err)
	}

	tm := &txnManager{
		path:         path,
		db:           db,
		currentLimit: initialMapSize,
		maxMapSize:   maxMapSize,
		logger:       logger,
	}

	if err := tm.ensureBuckets(); err != nil {
		_ = db.Close()
		return nil, err
	}

	return tm, nil
}

func (tm *txnManager) ensureBuckets() error {
	return tm.db.Update(func(tx *bbolt.Tx) error {
		for _, b := range allBuckets {
			if _, err := tx.CreateBucketIfNotExists(b); err != nil {
				return newError(ErrInternal, err, "create bucket %s: %v", b, err)
			}
		}
		return nil
	})
}

// beginRead runs fn inside a read-only bbolt transaction.
func (tm *txnManager) beginRead(fn func(tx *bbolt.Tx) error) error {
	tm.growMu.RLock()
	db := tm.db
	tm.growMu.RUnlock()

	if err := db.View(fn); err != nil {
		return asPageDBError(err)
	}
	return nil
}

// beginWrite runs fn inside an exclusive bbolt write transaction,
// pre-emptively growing the map (and retrying fn, which must therefore be
// idempotent) if the store is close to its current limit.
func (tm *txnManager) beginWrite(fn func(tx *bbolt.Tx) error) error {
	for {
		if err := tm.maybeGrow(); err != nil {
			return err
		}

		tm.growMu.RLock()
		db := tm.db
		tm.growMu.RUnlock()

		err := db.Update(fn)
		if err == nil {
			return nil
		}
		if isMapFullErr(err) {
			if grown, growErr := tm.grow(); growErr != nil {
				return growErr
			} else if grown {
				continue
			}
			return newError(ErrMapFull, err, "map full at cap %d bytes", tm.maxMapSize)
		}
		return asPageDBError(err)
	}
}

// maybeGrow grows the map ahead of a write if the on-disk file size has
// crept within growHeadroomPct of the current limit.
func (tm *txnManager) maybeGrow() error {
	tm.growMu.RLock()
	path, limit := tm.path, tm.currentLimit
	tm.growMu.RUnlock()

	fi, err := os.Stat(path)
	if err != nil {
		return nil // let the write itself surface the problem
	}
	if uint64(fi.Size()) < uint64(float64(limit)*(1-growHeadroomPct)) {
		return nil
	}
	_, err = tm.grow()
	return err
}

// grow doubles the map size (capped at maxMapSize) and reopens the
// environment at the new size. It returns grown=false, err=nil if the
// store is already at its cap. All callers must already be prepared to
// retry their closure afterwards.
func (tm *txnManager) grow() (bool, error) {
	tm.growMu.Lock()
	defer tm.growMu.Unlock()

	if tm.currentLimit >= tm.maxMapSize {
		return false, nil
	}

	newLimit := tm.currentLimit * 2
	if newLimit > tm.maxMapSize {
		newLimit = tm.maxMapSize
	}

	if err := tm.db.Close(); err != nil {
		return false, newError(ErrInternal, err, "close environment before grow: %v", err)
	}

	db, err := bbolt.Open(tm.path, 0600, &bbolt.Options{
		InitialMmapSize: int(newLimit),
	})
	if err != nil {
		return false, newError(ErrInternal, err, "reopen environment at %d bytes: %v", newLimit, err)
	}

	tm.logger.Info("pagedb: grew map", "from", tm.currentLimit, "to", newLimit)
	tm.db = db
	tm.currentLimit = newLimit
	return true, nil
}

func (tm *txnManager) close() error {
	tm.growMu.Lock()
	defer tm.growMu.Unlock()
	return tm.db.Close()
}

// isMapFullErr reports whether err indicates the environment ran out of
// address space for the current map size.
func isMapFullErr(err error) bool {
	return err == bbolt.ErrDatabaseNotOpen || fmt.Sprintf("%v", err) == "mmap: resize failed"
}

func asPageDBError(err error) error {
	if err == nil {
		return nil
	}
	if pe, ok := err.(*Error); ok {
		return pe
	}
	return newError(ErrInternal, err, "%v", err)
}
