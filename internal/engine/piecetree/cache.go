package piecetree

// cacheEntry remembers a node reached by a previous lookup along with the
// accumulated (byte, line) totals of everything before it, so a nearby
// repeat lookup can resume from here instead of walking from the root
// (spec §4.4.8).
type cacheEntry struct {
	node          *node
	nodeStartOff  int
	nodeStartLine int
}

// searchCache is a small bounded LRU of recent node lookups. Besides the
// entries it drops for capacity, it is cleared by invalidate after every
// mutation, so no entry ever refers to a pre-edit node or offset.
type searchCache struct {
	entries []cacheEntry
	limit   int
}

func newSearchCache(limit int) *searchCache {
	return &searchCache{limit: limit}
}

// get returns the most recently added entry, or false if the cache is
// empty. It does no validation of its own; callers check whether the
// entry covers what they are looking for and fall back to a tree search
// when it does not.
func (c *searchCache) get() (cacheEntry, bool) {
	if len(c.entries) == 0 {
		return cacheEntry{}, false
	}
	return c.entries[len(c.entries)-1], true
}

// put records e as the most recent lookup, evicting the oldest entry once
// the cache is at capacity.
func (c *searchCache) put(e cacheEntry) {
	if c.limit <= 0 {
		return
	}
	c.entries = append(c.entries, e)
	if len(c.entries) > c.limit {
		c.entries = c.entries[len(c.entries)-c.limit:]
	}
}

// invalidate drops every cached entry. Called after any structural tree
// mutation (insert, delete, rotation outside of a fixup-local scope)
// since cached node pointers may now sit at a different offset or may
// have been freed from the tree entirely.
func (c *searchCache) invalidate() {
	c.entries = c.entries[:0]
}
