package piecetree

import "testing"

func TestSearchCachePutGetRoundTrip(t *testing.T) {
	c := newSearchCache(4)
	if _, ok := c.get(); ok {
		t.Error("get() on an empty cache should report ok=false")
	}

	n := &node{}
	c.put(cacheEntry{node: n, nodeStartOff: 10, nodeStartLine: 2})

	e, ok := c.get()
	if !ok {
		t.Fatal("get() after put() should report ok=true")
	}
	if e.node != n || e.nodeStartOff != 10 || e.nodeStartLine != 2 {
		t.Errorf("get() = %+v, want matching entry", e)
	}
}

func TestSearchCacheInvalidateClears(t *testing.T) {
	c := newSearchCache(4)
	c.put(cacheEntry{node: &node{}, nodeStartOff: 1, nodeStartLine: 1})
	c.invalidate()

	if _, ok := c.get(); ok {
		t.Error("get() after invalidate() should report ok=false")
	}
}

func TestCacheInvalidatedByMutation(t *testing.T) {
	tr := New([]string{"hello world"}, EOLLF, true)
	tr.cache.put(cacheEntry{node: tr.root, nodeStartOff: 0, nodeStartLine: 0})

	tr.Insert(0, "x", true)

	if _, ok := tr.cache.get(); ok {
		t.Error("a mutation should invalidate the search cache")
	}
}
