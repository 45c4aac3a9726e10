package pagedb_test

import (
	"os"
	"path/filepath"
	"testing"

	gc "gopkg.in/check.v1"

	"pagedb/pagedb"
	"pagedb/pagedbtest"
)

func Test(t *testing.T) { gc.TestingT(t) }

var _ = gc.Suite(new(PageDBTestSuite))

type PageDBTestSuite struct {
	pagedbtest.SuiteBase
}

func (s *PageDBTestSuite) SetUpTest(c *gc.C) {
	dir, err := os.MkdirTemp("", "pagedb-test-")
	c.Assert(err, gc.IsNil)

	db, err := pagedb.Open(filepath.Join(dir, "db"), pagedb.PageDBConfig{})
	c.Assert(err, gc.IsNil)

	s.SetDB(db, dir)
}

// TestAddNewPageWithNewLinks checks that adding a fresh page with two
// outbound links to unseen URLs allocates all three indices, records the
// new page's crawl but not the link-only placeholders, and writes the
// expected edge list.
func (s *PageDBTestSuite) TestAddNewPageWithNewLinks(c *gc.C) {
	db := s.DB()

	cp := pagedb.NewCrawledPage("http://a/")
	cp.Time = 1000.0
	cp.Score = 0.5
	cp.SetHash64(0xAA)
	cp.AddLink("http://b/", 0.1)
	cp.AddLink("http://c/", 0.2)

	snapshots, err := db.Add(cp)
	c.Assert(err, gc.IsNil)
	c.Assert(snapshots, gc.HasLen, 3)

	n, err := db.NPages()
	c.Assert(err, gc.IsNil)
	c.Check(n, gc.Equals, uint64(3))

	idxA, _, err := db.GetIdx("http://a/")
	c.Assert(err, gc.IsNil)
	idxB, _, err := db.GetIdx("http://b/")
	c.Assert(err, gc.IsNil)
	idxC, _, err := db.GetIdx("http://c/")
	c.Assert(err, gc.IsNil)
	c.Check(idxA, gc.Equals, uint64(0))
	c.Check(idxB, gc.Equals, uint64(1))
	c.Check(idxC, gc.Equals, uint64(2))

	edges := streamAll(c, db)
	c.Check(edges, gc.DeepEquals, []pagedb.Edge{{From: 0, To: 1}, {From: 0, To: 2}})

	infoA, found, err := db.GetInfoFromURL("http://a/")
	c.Assert(err, gc.IsNil)
	c.Assert(found, gc.Equals, true)
	c.Check(infoA.NCrawls, gc.Equals, uint64(1))

	infoB, found, err := db.GetInfoFromURL("http://b/")
	c.Assert(err, gc.IsNil)
	c.Assert(found, gc.Equals, true)
	c.Check(infoB.NCrawls, gc.Equals, uint64(0))
}

// TestAddCrawlOfPreviouslyLinkedPage checks that later crawling a page
// that was previously known only as a link target sets its FirstCrawl to
// that crawl's time and appends its outbound edges alongside the
// existing ones.
func (s *PageDBTestSuite) TestAddCrawlOfPreviouslyLinkedPage(c *gc.C) {
	db := s.DB()

	cpA := pagedb.NewCrawledPage("http://a/")
	cpA.Time = 1000.0
	cpA.Score = 0.5
	cpA.SetHash64(0xAA)
	cpA.AddLink("http://b/", 0.1)
	cpA.AddLink("http://c/", 0.2)
	_, err := db.Add(cpA)
	c.Assert(err, gc.IsNil)

	cpB := pagedb.NewCrawledPage("http://b/")
	cpB.Time = 1100.0
	cpB.Score = 0.7
	cpB.SetHash64(0xBB)
	cpB.AddLink("http://a/", 0.0)
	_, err = db.Add(cpB)
	c.Assert(err, gc.IsNil)

	n, err := db.NPages()
	c.Assert(err, gc.IsNil)
	c.Check(n, gc.Equals, uint64(3))

	edges := streamAll(c, db)
	c.Check(edges, gc.DeepEquals, []pagedb.Edge{
		{From: 0, To: 1}, {From: 0, To: 2}, {From: 1, To: 0},
	})

	infoB, found, err := db.GetInfoFromURL("http://b/")
	c.Assert(err, gc.IsNil)
	c.Assert(found, gc.Equals, true)
	c.Check(infoB.FirstCrawl, gc.Equals, 1100.0)
	c.Check(infoB.NCrawls, gc.Equals, uint64(1))
}

// TestAddUnchangedPageTwice checks that re-adding an identical page
// bumps NCrawls without recording a change or moving LastCrawl.
func (s *PageDBTestSuite) TestAddUnchangedPageTwice(c *gc.C) {
	db := s.DB()

	cp := pagedb.NewCrawledPage("http://a/")
	cp.Time = 1000.0
	cp.Score = 0.5
	cp.SetHash64(0xAA)
	cp.AddLink("http://b/", 0.1)
	cp.AddLink("http://c/", 0.2)
	_, err := db.Add(cp)
	c.Assert(err, gc.IsNil)
	_, err = db.Add(cp)
	c.Assert(err, gc.IsNil)

	n, err := db.NPages()
	c.Assert(err, gc.IsNil)
	c.Check(n, gc.Equals, uint64(3))

	info, found, err := db.GetInfoFromURL("http://a/")
	c.Assert(err, gc.IsNil)
	c.Assert(found, gc.Equals, true)
	c.Check(info.NCrawls, gc.Equals, uint64(2))
	c.Check(info.NChanges, gc.Equals, uint64(0))
	c.Check(info.LastCrawl, gc.Equals, 1000.0)
}

// TestAddPageWithChangedHash checks that a re-crawl carrying a different
// content hash increments NChanges and persists the new hash bytes
// exactly as SetHash64 encodes them.
func (s *PageDBTestSuite) TestAddPageWithChangedHash(c *gc.C) {
	db := s.DB()

	cp := pagedb.NewCrawledPage("http://a/")
	cp.Time = 1000.0
	cp.SetHash64(0xAA)
	_, err := db.Add(cp)
	c.Assert(err, gc.IsNil)

	cp2 := pagedb.NewCrawledPage("http://a/")
	cp2.Time = 1000.0
	cp2.SetHash64(0xCC)
	_, err = db.Add(cp2)
	c.Assert(err, gc.IsNil)

	info, found, err := db.GetInfoFromURL("http://a/")
	c.Assert(err, gc.IsNil)
	c.Assert(found, gc.Equals, true)
	c.Check(info.NChanges, gc.Equals, uint64(1))

	var want [8]byte
	for i := 0; i < 8; i++ {
		want[i] = byte(uint64(0xCC) >> (8 * i))
	}
	c.Check(info.ContentHash, gc.DeepEquals, want[:])
}

// TestReopenAfterClose checks that indices, page info, and edges all
// survive closing a database and reopening it at the same path.
func (s *PageDBTestSuite) TestReopenAfterClose(c *gc.C) {
	dir, err := os.MkdirTemp("", "pagedb-s6-")
	c.Assert(err, gc.IsNil)
	defer os.RemoveAll(dir)
	path := filepath.Join(dir, "db")

	db, err := pagedb.Open(path, pagedb.PageDBConfig{})
	c.Assert(err, gc.IsNil)

	cp := pagedb.NewCrawledPage("http://reopen/a")
	cp.AddLink("http://reopen/b", 0)
	_, err = db.Add(cp)
	c.Assert(err, gc.IsNil)

	c.Assert(db.Close(), gc.IsNil)

	db2, err := pagedb.Open(path, pagedb.PageDBConfig{})
	c.Assert(err, gc.IsNil)
	defer db2.Close()

	idx, found, err := db2.GetIdx("http://reopen/a")
	c.Assert(err, gc.IsNil)
	c.Assert(found, gc.Equals, true)
	c.Check(idx, gc.Equals, uint64(0))

	info, found, err := db2.GetInfoFromURL("http://reopen/a")
	c.Assert(err, gc.IsNil)
	c.Assert(found, gc.Equals, true)
	c.Check(info.URL, gc.Equals, "http://reopen/a")

	edges := streamAll(c, db2)
	c.Check(edges, gc.DeepEquals, []pagedb.Edge{{From: 0, To: 1}})
}

func streamAll(c *gc.C, db *pagedb.PageDB) []pagedb.Edge {
	stream, err := db.OpenLinkStream()
	c.Assert(err, gc.IsNil)
	defer stream.Close()

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
