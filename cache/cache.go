package cache

import (
	"fmt"

	"github.com/IvanBrykalov/lrudict/internal/util"
)

// Cache is a fixed-capacity dictionary ordered by recency of use.
// The zero value is not usable; construct with New.
//
// Cache performs no internal locking: it assumes a single logical mutator at
// a time and must be serialized externally (e.g. with a sync.Mutex) when
// shared across goroutines. See the package documentation for the full
// concurrency and reentrancy contract.
type Cache[K comparable, V any] struct {
	capacity int
	hasher   util.Hasher[K]
	idx      *index[K, V]
	list     recencyList[K, V]
	stats    statsCounter
	disp     dispatcher[K, V]

	onEvict   EvictCallback[K, V]
	suspended bool

	metrics Metrics
}

// Item is one key/value binding, as produced by Snapshot and consumed by
// Update. Items are copies: mutating them never affects the cache.
type Item[K comparable, V any] struct {
	Key   K
	Value V
}

// New constructs a cache with the provided Options.
// Fails with *InvalidCapacityError unless opt.Capacity > 0. The capacity is
// immutable for the cache's lifetime.
func New[K comparable, V any](opt Options[K, V]) (*Cache[K, V], error) {
	if opt.Capacity <= 0 {
		return nil, &InvalidCapacityError{Capacity: opt.Capacity}
	}
	if opt.Metrics == nil {
		opt.Metrics = NoopMetrics{}
	}
	return &Cache[K, V]{
		capacity: opt.Capacity,
		hasher:   util.NewHasher[K](),
		idx:      newIndex[K, V](opt.Capacity),
		onEvict:  opt.OnEvict,
		metrics:  opt.Metrics,
	}, nil
}

// ---- lookups ----

// Get returns the value bound to k and promotes the binding to most
// recently used. A miss counts and returns an error wrapping ErrKeyNotFound.
func (c *Cache[K, V]) Get(k K) (V, error) {
	if n := c.idx.lookup(k, c.hasher.Hash(k)); n != nil {
		c.list.moveToFront(n)
		c.stats.hit()
		c.metrics.Hit()
		return n.val, nil
	}
	c.stats.miss()
	c.metrics.Miss()
	var zero V
	return zero, fmt.Errorf("get %v: %w", k, ErrKeyNotFound)
}

// GetDefault is Get with a fallback: a miss still counts but returns def
// instead of an error. Only a hit touches recency order.
func (c *Cache[K, V]) GetDefault(k K, def V) V {
	if n := c.idx.lookup(k, c.hasher.Hash(k)); n != nil {
		c.list.moveToFront(n)
		c.stats.hit()
		c.metrics.Hit()
		return n.val
	}
	c.stats.miss()
	c.metrics.Miss()
	return def
}

// Peek returns the value bound to k without promoting the binding and
// without touching the hit/miss counters.
func (c *Cache[K, V]) Peek(k K) (V, bool) {
	if n := c.idx.lookup(k, c.hasher.Hash(k)); n != nil {
		return n.val, true
	}
	var zero V
	return zero, false
}

// Contains reports whether k is resident. Recency order and counters are
// unaffected.
func (c *Cache[K, V]) Contains(k K) bool {
	return c.idx.lookup(k, c.hasher.Hash(k)) != nil
}

// ---- mutators ----

// Set binds k to v and leaves the binding most recently used.
//
// Updating an existing key replaces the value in place: no eviction, no
// callback. A genuinely new key inserted at full capacity first evicts the
// least-recently-used binding, dispatching the eviction callback between
// the structural removal and the new insertion. If the callback panicked,
// Set still completes the insertion and then returns the recovered failure
// as *CallbackError; any other outcome returns nil.
func (c *Cache[K, V]) Set(k K, v V) error {
	h := c.hasher.Hash(k)
	if n := c.idx.lookup(k, h); n != nil {
		n.val = v
		c.list.moveToFront(n)
		return nil
	}

	var cbErr error
	if c.list.len() >= c.capacity {
		cbErr = c.makeRoom()
		// A reentrant callback may have inserted k itself while the
		// dispatch ran. Re-probe and update that binding in place:
		// inserting a second node for the same key would corrupt both
		// structures.
		if n := c.idx.lookup(k, h); n != nil {
			n.val = v
			c.list.moveToFront(n)
			return cbErr
		}
	}
	n := &node[K, V]{key: k, val: v, hash: h}
	c.idx.insert(n)
	c.list.pushFront(n)
	c.metrics.Size(c.list.len())
	return cbErr
}

// SetDefault returns the value bound to k, inserting def first if k is
// absent. A hit promotes and counts like Get; an insertion behaves like Set,
// including possible eviction and a possible *CallbackError. Inserting the
// default is not a lookup failure, so it counts no miss.
func (c *Cache[K, V]) SetDefault(k K, def V) (V, error) {
	if n := c.idx.lookup(k, c.hasher.Hash(k)); n != nil {
		c.list.moveToFront(n)
		c.stats.hit()
		c.metrics.Hit()
		return n.val, nil
	}
	return def, c.Set(k, def)
}

// Update applies Set for each item in order (so the last item ends up most
// recently used). If any eviction callback panicked along the way, the first
// such *CallbackError is returned after the whole batch has been applied.
func (c *Cache[K, V]) Update(items []Item[K, V]) error {
	var first error
	for _, it := range items {
		if err := c.Set(it.Key, it.Value); err != nil && first == nil {
			first = err
		}
	}
	return first
}

// Delete removes the binding for k. Fails with an error wrapping
// ErrKeyNotFound if k is absent. Explicit removal is not an eviction: the
// callback does not run and the eviction counter does not move.
func (c *Cache[K, V]) Delete(k K) error {
	n := c.idx.lookup(k, c.hasher.Hash(k))
	if n == nil {
		return fmt.Errorf("delete %v: %w", k, ErrKeyNotFound)
	}
	c.unlink(n)
	return nil
}

// Pop removes the binding for k and returns its value.
// Fails with an error wrapping ErrKeyNotFound if k is absent; no callback.
func (c *Cache[K, V]) Pop(k K) (V, error) {
	n := c.idx.lookup(k, c.hasher.Hash(k))
	if n == nil {
		var zero V
		return zero, fmt.Errorf("pop %v: %w", k, ErrKeyNotFound)
	}
	v := n.val
	c.unlink(n)
	return v, nil
}

// PopNewest removes and returns the most recently used binding.
// Returns false on an empty cache; no callback.
func (c *Cache[K, V]) PopNewest() (K, V, bool) {
	return c.popNode(c.list.front())
}

// PopOldest removes and returns the least recently used binding.
// Returns false on an empty cache; no callback.
func (c *Cache[K, V]) PopOldest() (K, V, bool) {
	return c.popNode(c.list.back())
}

// Clear removes every binding without running the callback for any of them
// (bulk teardown is not an eviction sequence). Counters are monotonic and
// survive a Clear.
func (c *Cache[K, V]) Clear() {
	c.idx.reset()
	c.list.reset()
	c.metrics.Size(0)
}

// ---- observers ----

// Len returns the number of resident bindings.
func (c *Cache[K, V]) Len() int { return c.list.len() }

// Cap returns the immutable capacity chosen at construction.
func (c *Cache[K, V]) Cap() int { return c.capacity }

// Stats returns a copy of the monotonic hit/miss/eviction counters.
func (c *Cache[K, V]) Stats() Stats { return c.stats.snapshot() }

// PeekNewest returns the most recently used binding without promoting it or
// touching counters. Returns false on an empty cache.
func (c *Cache[K, V]) PeekNewest() (K, V, bool) {
	return peekNode(c.list.front())
}

// PeekOldest returns the least recently used binding (the next eviction
// victim) without promoting it or touching counters. Returns false on an
// empty cache.
func (c *Cache[K, V]) PeekOldest() (K, V, bool) {
	return peekNode(c.list.back())
}

// Snapshot returns an independent copy of all current bindings ordered from
// most to least recently used. Producing it mutates neither recency order
// nor counters, and mutating the result never affects the cache.
func (c *Cache[K, V]) Snapshot() []Item[K, V] {
	items := make([]Item[K, V], 0, c.list.len())
	for n := c.list.front(); n != nil; n = n.next {
		items = append(items, Item[K, V]{Key: n.key, Value: n.val})
	}
	return items
}

// Keys returns all resident keys, most recently used first.
func (c *Cache[K, V]) Keys() []K {
	keys := make([]K, 0, c.list.len())
	for n := c.list.front(); n != nil; n = n.next {
		keys = append(keys, n.key)
	}
	return keys
}

// Values returns all resident values, most recently used first.
func (c *Cache[K, V]) Values() []V {
	vals := make([]V, 0, c.list.len())
	for n := c.list.front(); n != nil; n = n.next {
		vals = append(vals, n.val)
	}
	return vals
}

// ---- callback control ----

// SetOnEvict replaces the eviction callback. The new callback (nil to
// disable) takes effect on the next eviction, including evictions later in
// a mutation sequence already underway.
func (c *Cache[K, V]) SetOnEvict(cb EvictCallback[K, V]) { c.onEvict = cb }

// SuspendCallbacks toggles callback suppression. While suspended, evictions
// still happen structurally but the callback does not run. The flag may be
// flipped at any point, including from within a running callback.
func (c *Cache[K, V]) SuspendCallbacks(suspend bool) { c.suspended = suspend }

// CallbacksSuspended reports the current suspension flag.
func (c *Cache[K, V]) CallbacksSuspended() bool { return c.suspended }

// ---- internals ----

// makeRoom frees at least one slot for an incoming insertion. The first
// eviction dispatches the callback; if a reentrant callback refilled the
// cache meanwhile, the extra evictions needed to restore room are
// structural only, the same externally observable effect as a suspended or
// nested dispatch. That also bounds the work: the callback runs at most
// once per triggering Set.
func (c *Cache[K, V]) makeRoom() error {
	err := c.evictTail(true)
	for c.list.len() >= c.capacity {
		_ = c.evictTail(false)
	}
	return err
}

// evictTail removes the least-recently-used binding and, when dispatch is
// set, runs the eviction callback. By the time the callback runs the
// structure is fully consistent minus the evicted entry, so reentrant
// operations are safe. Suspension and an already-active dispatch both
// degrade the eviction to structural-only.
func (c *Cache[K, V]) evictTail(dispatch bool) error {
	tail := c.list.back()
	if tail == nil {
		return nil
	}
	c.idx.remove(tail)
	c.list.remove(tail)
	c.stats.evict()
	c.metrics.Evict()

	cb := c.onEvict
	if !dispatch || cb == nil || c.suspended || c.disp.active() {
		return nil
	}
	return c.disp.dispatch(cb, tail.key, tail.val)
}

// unlink removes n from both structures. Shared by the explicit-removal
// paths, which never dispatch.
func (c *Cache[K, V]) unlink(n *node[K, V]) {
	c.idx.remove(n)
	c.list.remove(n)
	c.metrics.Size(c.list.len())
}

func (c *Cache[K, V]) popNode(n *node[K, V]) (K, V, bool) {
	if n == nil {
		var zk K
		var zv V
		return zk, zv, false
	}
	k, v := n.key, n.val
	c.unlink(n)
	return k, v, true
}

func peekNode[K comparable, V any](n *node[K, V]) (K, V, bool) {
	if n == nil {
		var zk K
		var zv V
		return zk, zv, false
	}
	return n.key, n.val, true
}
