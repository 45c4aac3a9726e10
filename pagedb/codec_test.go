package pagedb

import "testing"

func TestPageInfoDumpLoadRoundTrip(t *testing.T) {
	cases := []*PageInfo{
		{URL: "http://example.com/", FirstCrawl: 0, LastCrawl: 0, NCrawls: 0, NChanges: 0, Score: 0, ContentHash: nil},
		{URL: "http://example.com/a", FirstCrawl: 100.5, LastCrawl: 200.25, NCrawls: 4, NChanges: 2, Score: 0.875, ContentHash: []byte{1, 2, 3, 4}},
	}

	for _, want := range cases {
		buf, err := want.Dump()
		if err != nil {
			t.Fatalf("Dump: %v", err)
		}
		got, err := LoadPageInfo(buf)
		if err != nil {
			t.Fatalf("LoadPageInfo: %v", err)
		}
		if got.URL != want.URL || got.FirstCrawl != want.FirstCrawl || got.LastCrawl != want.LastCrawl ||
			got.NCrawls != want.NCrawls || got.NChanges != want.NChanges || got.Score != want.Score {
			t.Fatalf("round trip mismatch: got %+v, want %+v", got, want)
		}
		if len(got.ContentHash) != len(want.ContentHash) {
			t.Fatalf("content hash length mismatch: got %d, want %d", len(got.ContentHash), len(want.ContentHash))
		}
	}
}

func TestLoadPageInfoRejectsShortBuffer(t *testing.T) {
	if _, err := LoadPageInfo([]byte{1, 2, 3}); err == nil {
		t.Fatal("expected error for short buffer")
	}
}

func TestLoadPageInfoRejectsOversizeLength(t *testing.T) {
	buf := make([]byte, pageInfoHeaderLen)
	// url_len field sits at offset 36 (8+8+4+8+8), set it past MaxURLLen.
	buf[36] = 0xFF
	buf[37] = 0xFF
	if _, err := LoadPageInfo(buf); err == nil {
		t.Fatal("expected error for oversize url_len")
	}
}

func TestPageInfoValidate(t *testing.T) {
	bad := &PageInfo{FirstCrawl: 10, LastCrawl: 5}
	if err := bad.Validate(); err == nil {
		t.Fatal("expected invariant violation for first_crawl > last_crawl")
	}

	bad2 := &PageInfo{NCrawls: 0, ContentHash: []byte{1}}
	if err := bad2.Validate(); err == nil {
		t.Fatal("expected invariant violation for n_crawls == 0 with non-empty content hash")
	}

	good := &PageInfo{FirstCrawl: 1, LastCrawl: 2, NCrawls: 2, NChanges: 1}
	if err := good.Validate(); err != nil {
		t.Fatalf("unexpected invariant violation: %v", err)
	}
}

func TestPageInfoPrintFixedWidth(t *testing.T) {
	p := &PageInfo{URL: "http://example.com/", NCrawls: 3, NChanges: 1}
	line := p.Print()
	if line == "" {
		t.Fatal("expected non-empty print output")
	}
}
