package pagedb

import "time"

// LinkInfo is the information that comes with a link inside a crawled
// page. The score is consumed by schedulers upstream of this store and is
// never persisted by Add.
type LinkInfo struct {
	URL   string
	Score float32
}

// CrawledPage is the ephemeral input to Add: a fetched page's URL, crawl
// time, score, optional content hash, and its ordered outbound links.
// The constructor and builder methods below let a caller assemble one
// incrementally while it parses a fetched page, rather than building the
// struct literal in one shot.
type CrawledPage struct {
	URL         string
	Time        float64
	Score       float32
	ContentHash []byte
	Links       []LinkInfo
}

// NewCrawledPage creates a CrawledPage for url, defaulting Time to now and
// Score to zero. Use AddLink and SetHash to fill in the rest.
func NewCrawledPage(url string) *CrawledPage {
	return &CrawledPage{
		URL:  url,
		Time: float64(time.Now().Unix()),
	}
}

// AddLink appends a new outbound link to the page, in the order it
// appeared. Duplicate URLs are not de-duplicated.
func (cp *CrawledPage) AddLink(url string, score float32) {
	cp.Links = append(cp.Links, LinkInfo{URL: url, Score: score})
}

// SetHash sets the page's content hash to an arbitrary byte sequence.
func (cp *CrawledPage) SetHash(hash []byte) {
	cp.ContentHash = append([]byte(nil), hash...)
}

// SetHash64 sets the page's content hash from a 64-bit digest, encoded
// little-endian.
func (cp *CrawledPage) SetHash64(hash uint64) {
	buf := make([]byte, 8)
	for i := 0; i < 8; i++ {
		buf[i] = byte(hash >> (8 * i))
	}
	cp.ContentHash = buf
}

// PageSnapshot pairs a URL's hash with the PageInfo Add observed or
// produced for it. Add returns a slice of these as a plain owned
// sequence rather than a linked list the caller must walk and free.
type PageSnapshot struct {
	Hash uint64
	Info PageInfo
}
