// Package cache provides a fixed-capacity, generic, recency-ordered
// dictionary (an LRU cache) with O(1) expected lookup, insert, and eviction,
// an optional eviction callback with reentrancy-safe dispatch, lightweight
// metrics hooks, and explicit teardown support for caches that end up inside
// reference cycles with their own contents.
//
// Design
//
//   - Storage: a fixed-size open-addressing hash table (index.go) maps keys
//     to entry nodes, and an intrusive MRU↔LRU doubly linked list (list.go)
//     keeps recency order. The table never resizes: the number of resident
//     entries is bounded by the capacity chosen at construction, so the slot
//     count is fixed up front. All operations are O(1) expected.
//
//   - Eviction: inserting a new key into a full cache removes exactly the
//     least-recently-used entry first. Updating an existing key never evicts.
//     Explicit removal (Delete/Pop/Clear) is not an eviction and never fires
//     the callback.
//
//   - Callbacks: Options.OnEvict(k, v) runs synchronously after the evicted
//     entry has been unlinked and before the new entry is inserted, so a
//     callback that re-enters the cache observes a consistent state missing
//     only the evicted binding. A reentrancy guard keeps a callback that
//     itself causes evictions from triggering nested callbacks; such nested
//     evictions are structural only. A panicking callback is recovered and
//     reported as *CallbackError by the Set that triggered the eviction,
//     after the insertion has completed.
//
//   - Concurrency: the cache performs no internal locking and assumes a
//     single logical mutator at a time. Share it across goroutines only
//     behind an external mutex. No operation blocks or spawns goroutines.
//
//   - Cycles: values may reference the cache itself, directly or through
//     intermediate containers; the Go collector reclaims such cycles without
//     help. OwnedReferences and ForceClear exist for deterministic teardown
//     and leak auditing: ForceClear drops every owned reference at once and
//     never runs the callback.
//
//   - Metrics: Options.Metrics receives Hit/Miss/Evict/Size signals.
//     NoopMetrics is the default; the metrics/prom package exports them to
//     Prometheus. Independently, monotonic hit/miss/eviction counters are
//     always kept and readable via Stats().
//
// Basic usage
//
//	c, err := cache.New[string, int](cache.Options[string, int]{Capacity: 1024})
//	if err != nil {
//	    // capacity was not positive
//	}
//	_ = c.Set("a", 1)
//	if v, err := c.Get("a"); err == nil {
//	    _ = v // use value
//	}
//	_ = c.Delete("a")
//
// With an eviction callback
//
//	c, _ := cache.New[string, string](cache.Options[string, string]{
//	    Capacity: 2,
//	    OnEvict: func(k, v string) {
//	        // runs once per capacity eviction with the evicted pair
//	    },
//	})
//
// Recency-ordered snapshot
//
//	for _, it := range c.Snapshot() { // most recent first
//	    fmt.Println(it.Key, it.Value)
//	}
//
// # Complexity
//
// Get/Set/Delete/Contains are O(1) expected: one probe sequence in the fixed
// table plus a constant number of pointer fixes in the recency list.
// Snapshot/Keys/Values/Clear are O(n).
package cache
