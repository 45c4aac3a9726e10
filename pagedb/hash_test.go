package pagedb

import "testing"

func TestXXHashDeterministic(t *testing.T) {
	h := XXHash{}
	a := h.Hash([]byte("http://example.com/"))
	b := h.Hash([]byte("http://example.com/"))
	if a != b {
		t.Fatalf("expected deterministic hash, got %d != %d", a, b)
	}
}

func TestXXHashDistinctURLs(t *testing.T) {
	h := XXHash{}
	a := h.Hash([]byte("http://example.com/a"))
	b := h.Hash([]byte("http://example.com/b"))
	if a == b {
		t.Fatalf("expected distinct hashes for distinct URLs, both got %d", a)
	}
}
