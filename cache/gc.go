package cache

// Cycle participation. A cache may end up inside a reference cycle with its
// own contents: a value holding the cache, a value holding a container that
// holds the cache, two caches storing each other, or a callback closing over
// the cache. The Go collector reclaims all of these without assistance, so
// unlike runtimes with refcount-based collection no traverse/clear hooks are
// required for correctness. What remains useful is deterministic teardown
// (release everything now, run no user code) and leak auditing (enumerate
// exactly what the cache keeps alive); this file provides both.

// OwnedReferences returns every reference the cache strongly owns: each
// resident key, each resident value (most recently used first), and the
// eviction callback if one is set. Intended for teardown audits and leak
// tooling; the result is a copy and holds no entry internals.
func (c *Cache[K, V]) OwnedReferences() []any {
	refs := make([]any, 0, 2*c.list.len()+1)
	for n := c.list.front(); n != nil; n = n.next {
		refs = append(refs, n.key, n.val)
	}
	if c.onEvict != nil {
		refs = append(refs, c.onEvict)
	}
	return refs
}

// ForceClear drops every owned reference immediately: all bindings and the
// eviction callback itself. No callback runs for any of the dropped entries
// (running arbitrary user code mid-teardown is unsafe). Afterwards the cache
// is empty like after Clear, with the counters untouched, and remains
// usable.
func (c *Cache[K, V]) ForceClear() {
	c.onEvict = nil
	c.Clear()
}
