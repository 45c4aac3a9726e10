package pagedb

import (
	"go.etcd.io/bbolt"
)

// State is the link stream's current position.
type State int

const (
	// StateInit is the state immediately after creation or Reset,
	// before the first call to Next.
	StateInit State = iota
	// StateNext indicates a valid edge is available: the last call to
	// Next populated it.
	StateNext
	// StateEnd indicates the stream is exhausted.
	StateEnd
	// StateError indicates a decode or I/O error. Every subsequent call
	// returns StateError again.
	StateError
)

// Edge is an ordered pair (From, To) of dense indices induced by a source
// page's outbound link.
type Edge struct {
	From uint64
	To   uint64
}

// LinkStream is the capability consumed by graph-analysis passes: a
// restartable lazy sequence of edges. Two implementations live in this
// package: pageDBLinkStream (backed by a live PageDB) and MemoryLinkStream
// (slice-backed, for tests and synthetic graphs).
type LinkStream interface {
	// Reset repositions the stream before the first edge and returns the
	// new state (StateInit on success).
	Reset() State
	// Next advances the stream. On success it populates out and returns
	// StateNext; at end of stream it returns StateEnd; on failure it
	// returns StateError and all subsequent calls do too.
	Next(out *Edge) State
	// Close releases any resources (cursors, transactions) held by the
	// stream. It is always safe to call, including more than once.
	Close() error
}

// pageDBLinkStream iterates the links bucket of a live PageDB. It holds
// one read transaction for its entire lifetime, so it observes a
// consistent snapshot fixed at creation time: concurrent writers do not
// affect an already-open stream. Opening a stream blocks internal map
// growth until the stream is closed (see txn.go); callers should not hold
// streams open indefinitely on a store that is still being written to.
type pageDBLinkStream struct {
	db *PageDB
	tx *bbolt.Tx
	c  *bbolt.Cursor

	from uint64
	to   []uint64
	iTo  int

	state State
	err   error

	closed bool
}

// openLinkStream opens a new link stream over db's current links index.
func openLinkStream(db *PageDB) (*pageDBLinkStream, error) {
	db.tm.growMu.RLock()
	tx, err := db.tm.db.Begin(false)
	if err != nil {
		db.tm.growMu.RUnlock()
		return nil, newError(ErrInternal, err, "begin read transaction for link stream: %v", err)
	}

	s := &pageDBLinkStream{
		db:    db,
		tx:    tx,
		c:     tx.Bucket(bucketLinks).Cursor(),
		state: StateInit,
	}

	db.streamsMu.Lock()
	db.streams[s] = struct{}{}
	db.streamsMu.Unlock()

	return s, nil
}

// Reset repositions the cursor at the first source key, rewinding the
// in-memory target buffer. The read transaction (and therefore the
// snapshot) is unchanged.
func (s *pageDBLinkStream) Reset() State {
	if s.closed {
		s.state, s.err = StateError, errStreamClosed
		return s.state
	}
	s.c = s.tx.Bucket(bucketLinks).Cursor()
	s.from = 0
	s.to = nil
	s.iTo = 0
	s.state = StateInit
	s.err = nil
	return s.state
}

// Next advances the stream. See LinkStream.Next.
func (s *pageDBLinkStream) Next(out *Edge) State {
	if s.closed {
		s.state, s.err = StateError, errStreamClosed
		return s.state
	}
	if s.state == StateError {
		return s.state
	}

	for s.iTo >= len(s.to) {
		var k, v []byte
		if s.state == StateInit {
			k, v = s.c.First()
		} else {
			k, v = s.c.Next()
		}
		s.state = StateNext // tentative; reset below if we hit end/error

		if k == nil {
			s.state = StateEnd
			return s.state
		}

		from, ok := decodeU64(k)
		if !ok {
			s.state, s.err = StateError, newError(ErrInternal, nil, "corrupt links key")
			return s.state
		}
		targets, err := decodeU64Slice(v)
		if err != nil {
			s.state, s.err = StateError, err
			return s.state
		}

		s.from = from
		s.to = targets
		s.iTo = 0
	}

	out.From = s.from
	out.To = s.to[s.iTo]
	s.iTo++
	s.state = StateNext
	return s.state
}

// Err returns the error that put the stream into StateError, if any.
func (s *pageDBLinkStream) Err() error { return s.err }

// Close releases the cursor's read transaction and the growMu read lock
// it holds, and removes the stream from its PageDB's tracked set.
func (s *pageDBLinkStream) Close() error {
	s.db.streamsMu.Lock()
	delete(s.db.streams, s)
	s.db.streamsMu.Unlock()
	return s.closeLocked()
}

// closeLocked performs the actual teardown; callers (Close, or PageDB.Close
// tearing down outstanding streams) must not still hold db.streamsMu.
func (s *pageDBLinkStream) closeLocked() error {
	if s.closed {
		return nil
	}
	s.closed = true
	s.state = StateError
	s.err = errStreamClosed

	err := s.tx.Rollback()
	s.db.tm.growMu.RUnlock()
	if err != nil {
		return newError(ErrInternal, err, "close link stream transaction: %v", err)
	}
	return nil
}

// MemoryLinkStream is a slice-backed LinkStream over a fixed edge list,
// used by tests and by callers wiring a synthetic graph without a PageDB.
type MemoryLinkStream struct {
	edges []Edge
	pos   int
	state State
}

// NewMemoryLinkStream creates a LinkStream over a fixed, ordered slice of
// edges.
func NewMemoryLinkStream(edges []Edge) *MemoryLinkStream {
	return &MemoryLinkStream{edges: append([]Edge(nil), edges...), state: StateInit}
}

// Reset implements LinkStream.
func (m *MemoryLinkStream) Reset() State {
	m.pos = 0
	m.state = StateInit
	return m.state
}

// Next implements LinkStream.
func (m *MemoryLinkStream) Next(out *Edge) State {
	if m.state == StateError {
		return m.state
	}
	if m.pos >= len(m.edges) {
		m.state = StateEnd
		return m.state
	}
	*out = m.edges[m.pos]
	m.pos++
	m.state = StateNext
	return m.state
}

// Close implements LinkStream. MemoryLinkStream holds no resources.
func (m *MemoryLinkStream) Close() error { return nil }

// Err returns nil: a MemoryLinkStream never enters StateError on its own.
func (m *MemoryLinkStream) Err() error { return nil }

var errStreamClosed = newError(ErrInternal, nil, "link stream is closed")

// OpenLinkStream opens a new LinkStream over db's current links index.
func (db *PageDB) OpenLinkStream() (LinkStream, error) {
	s, err := openLinkStream(db)
	if err != nil {
		return nil, db.setLastErr(err)
	}
	return s, nil
}
