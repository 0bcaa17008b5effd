package cache

// dispatcher runs the eviction callback under a reentrancy guard.
//
// The guard is a plain depth counter, not a lock: the cache is
// single-mutator by contract, so the only way dispatch can be re-entered is
// a callback calling back into the same cache and causing another eviction.
// The cache checks active() before dispatching and skips the nested
// callback; the nested eviction itself still happens.
type dispatcher[K comparable, V any] struct {
	depth int
}

// active reports whether a dispatch is currently in flight.
func (d *dispatcher[K, V]) active() bool { return d.depth > 0 }

// dispatch invokes cb with the evicted pair. A panic in cb is recovered and
// returned as *CallbackError; the guard is released either way.
func (d *dispatcher[K, V]) dispatch(cb EvictCallback[K, V], k K, v V) (err error) {
	d.depth++
	defer func() {
		d.depth--
		if r := recover(); r != nil {
			err = &CallbackError{Key: k, Value: v, Recovered: r}
		}
	}()
	cb(k, v)
	return nil
}
