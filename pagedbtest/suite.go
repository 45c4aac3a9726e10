// Package pagedbtest provides a shared-contract test suite for anything
// shaped like a pagedb.PageDB, runnable against multiple backends the way a
// gocheck suite is embedded and parameterised by SetUpTest.
//
// Only one backend (the real bbolt-backed PageDB) exists in this module,
// but the suite is still factored out of the *_test.go files so that a
// future in-memory or mock-store backend can be exercised against the
// same invariants without duplicating the assertions.
package pagedbtest

import (
	"os"

	gc "gopkg.in/check.v1"

	"pagedb/pagedb"
)

// SuiteBase exercises the core storage invariants of a pagedb.PageDB
// opened by the embedding suite's SetUpTest: codec round-tripping, the
// hash/index bijection, index monotonicity, idempotent re-crawls, change
// detection, edge-list replacement, and restartability after a close and
// reopen. Embed this type in a gocheck suite and call SetDB after opening
// a fresh store.
type SuiteBase struct {
	db  *pagedb.PageDB
	dir string
}

// SetDB installs the PageDB under test. Call this from SetUpTest after
// opening a fresh store rooted at dir.
func (s *SuiteBase) SetDB(db *pagedb.PageDB, dir string) {
	s.db = db
	s.dir = dir
}

// DB returns the PageDB under test.
func (s *SuiteBase) DB() *pagedb.PageDB { return s.db }

// TearDownTest closes the database and removes its directory.
func (s *SuiteBase) TearDownTest(c *gc.C) {
	if s.db != nil {
		c.Assert(s.db.Close(), gc.IsNil)
		s.db = nil
	}
	if s.dir != "" {
		_ = os.RemoveAll(s.dir)
		s.dir = ""
	}
}

// TestCodecRoundTrip checks that Dump followed by LoadPageInfo recovers
// every field of the original PageInfo unchanged.
func (s *SuiteBase) TestCodecRoundTrip(c *gc.C) {
	p := &pagedb.PageInfo{
		URL:         "http://example.com/a",
		FirstCrawl:  1000,
		LastCrawl:   2000,
		NCrawls:     3,
		NChanges:    1,
		Score:       0.5,
		ContentHash: []byte{0xAA, 0xBB, 0xCC},
	}
	buf, err := p.Dump()
	c.Assert(err, gc.IsNil)

	got, err := pagedb.LoadPageInfo(buf)
	c.Assert(err, gc.IsNil)
	c.Check(got.URL, gc.Equals, p.URL)
	c.Check(got.FirstCrawl, gc.Equals, p.FirstCrawl)
	c.Check(got.LastCrawl, gc.Equals, p.LastCrawl)
	c.Check(got.NCrawls, gc.Equals, p.NCrawls)
	c.Check(got.NChanges, gc.Equals, p.NChanges)
	c.Check(got.Score, gc.Equals, p.Score)
	c.Check(got.ContentHash, gc.DeepEquals, p.ContentHash)
}

// TestIndexBijection checks that distinct URLs receive distinct dense
// indices in the range [0, NPages).
func (s *SuiteBase) TestIndexBijection(c *gc.C) {
	cpA := pagedb.NewCrawledPage("http://example.com/a")
	cpB := pagedb.NewCrawledPage("http://example.com/b")

	_, err := s.db.Add(cpA)
	c.Assert(err, gc.IsNil)
	_, err = s.db.Add(cpB)
	c.Assert(err, gc.IsNil)

	idxA, found, err := s.db.GetIdx(cpA.URL)
	c.Assert(err, gc.IsNil)
	c.Assert(found, gc.Equals, true)

	idxB, found, err := s.db.GetIdx(cpB.URL)
	c.Assert(err, gc.IsNil)
	c.Assert(found, gc.Equals, true)

	c.Check(idxA, gc.Not(gc.Equals), idxB)
	c.Check(idxA < 2 && idxB < 2, gc.Equals, true)
}

// TestMonotonicIndices checks that each newly seen URL receives the next
// unused index in order, starting at zero.
func (s *SuiteBase) TestMonotonicIndices(c *gc.C) {
	urls := []string{"http://x/1", "http://x/2", "http://x/3"}
	for i, u := range urls {
		before, err := s.db.NPages()
		c.Assert(err, gc.IsNil)
		c.Check(before, gc.Equals, uint64(i))

		_, err = s.db.Add(pagedb.NewCrawledPage(u))
		c.Assert(err, gc.IsNil)

		idx, found, err := s.db.GetIdx(u)
		c.Assert(err, gc.IsNil)
		c.Assert(found, gc.Equals, true)
		c.Check(idx, gc.Equals, uint64(i))
	}
}

// TestIdempotentReAdd checks that adding the same unchanged page twice
// increments NCrawls without recording a change or moving LastCrawl
// backward.
func (s *SuiteBase) TestIdempotentReAdd(c *gc.C) {
	cp := pagedb.NewCrawledPage("http://example.com/idempotent")
	cp.Time = 1000
	cp.SetHash64(0xAA)

	_, err := s.db.Add(cp)
	c.Assert(err, gc.IsNil)
	_, err = s.db.Add(cp)
	c.Assert(err, gc.IsNil)

	info, found, err := s.db.GetInfoFromURL(cp.URL)
	c.Assert(err, gc.IsNil)
	c.Assert(found, gc.Equals, true)
	c.Check(info.NCrawls, gc.Equals, uint64(2))
	c.Check(info.NChanges, gc.Equals, uint64(0))
	c.Check(info.LastCrawl, gc.Equals, float64(1000))
}

// TestChangeDetection checks that a re-crawl with a different content
// hash increments NChanges.
func (s *SuiteBase) TestChangeDetection(c *gc.C) {
	cp := pagedb.NewCrawledPage("http://example.com/changes")
	cp.Time = 1000
	cp.SetHash64(0xAA)
	_, err := s.db.Add(cp)
	c.Assert(err, gc.IsNil)

	cp2 := pagedb.NewCrawledPage(cp.URL)
	cp2.Time = 1100
	cp2.SetHash64(0xBB)
	_, err = s.db.Add(cp2)
	c.Assert(err, gc.IsNil)

	info, found, err := s.db.GetInfoFromURL(cp.URL)
	c.Assert(err, gc.IsNil)
	c.Assert(found, gc.Equals, true)
	c.Check(info.NChanges, gc.Equals, uint64(1))
}

// TestEdgeListReplacement checks that a page's outbound edge list from a
// later crawl fully replaces the one from an earlier crawl rather than
// accumulating.
func (s *SuiteBase) TestEdgeListReplacement(c *gc.C) {
	cp1 := pagedb.NewCrawledPage("http://example.com/edges")
	cp1.AddLink("http://example.com/l1", 0)
	cp1.AddLink("http://example.com/l2", 0)
	_, err := s.db.Add(cp1)
	c.Assert(err, gc.IsNil)

	cp2 := pagedb.NewCrawledPage(cp1.URL)
	cp2.AddLink("http://example.com/l3", 0)
	_, err = s.db.Add(cp2)
	c.Assert(err, gc.IsNil)

	srcIdx, _, err := s.db.GetIdx(cp1.URL)
	c.Assert(err, gc.IsNil)
	l3Idx, _, err := s.db.GetIdx("http://example.com/l3")
	c.Assert(err, gc.IsNil)

	edges := collectEdges(c, s.db)
	var fromSrc []pagedb.Edge
	for _, e := range edges {
		if e.From == srcIdx {
			fromSrc = append(fromSrc, e)
		}
	}
	c.Assert(fromSrc, gc.HasLen, 1)
	c.Check(fromSrc[0].To, gc.Equals, l3Idx)
}

// TestRestartability checks that resetting a link stream and reading it
// again yields the exact same edge sequence.
func (s *SuiteBase) TestRestartability(c *gc.C) {
	cp := pagedb.NewCrawledPage("http://example.com/restart")
	cp.AddLink("http://example.com/r1", 0)
	cp.AddLink("http://example.com/r2", 0)
	_, err := s.db.Add(cp)
	c.Assert(err, gc.IsNil)

	stream, err := s.db.OpenLinkStream()
	c.Assert(err, gc.IsNil)
	defer stream.Close()

	first := readAllFrom(c, stream)

	st := stream.Reset()
	c.Assert(st, gc.Equals, pagedb.StateInit)
	second := readAllFrom(c, stream)

	c.Check(second, gc.DeepEquals, first)
}

func collectEdges(c *gc.C, db *pagedb.PageDB) []pagedb.Edge {
	stream, err := db.OpenLinkStream()
	c.Assert(err, gc.IsNil)
	defer stream.Close()
	return readAllFrom(c, stream)
}

func readAllFrom(c *gc.C, stream pagedb.LinkStream) []pagedb.Edge {
	var edges []pagedb.Edge
	var e pagedb.Edge
	for {
		st := stream.Next(&e)
		if st == pagedb.StateEnd {
			break
		}
		c.Assert(st, gc.Equals, pagedb.StateNext)
		edges = append(edges, e)
	}
	return edges
}
