package cache

// EvictCallback receives each binding removed by a capacity eviction.
// It runs synchronously on the goroutine that performed the overflowing Set,
// after the entry is unlinked and before the new entry is inserted. It is
// never called for Delete, Pop, Clear, or ForceClear.
//
// The callback may re-enter the cache; evictions caused by such reentrant
// calls are structural only (no nested callback). A panic in the callback is
// recovered and surfaced as *CallbackError from the triggering call.
type EvictCallback[K comparable, V any] func(k K, v V)

// Options configures the cache. Capacity is required; everything else is
// optional:
//   - nil OnEvict  => no callback
//   - nil Metrics  => NoopMetrics
type Options[K comparable, V any] struct {
	// Capacity is the immutable entry count limit. New fails with
	// *InvalidCapacityError unless Capacity > 0.
	Capacity int

	// OnEvict is called once per capacity eviction with the evicted pair.
	// Replaceable later via SetOnEvict; suppressible via SuspendCallbacks.
	OnEvict EvictCallback[K, V]

	// Metrics receives Hit/Miss/Evict/Size signals.
	Metrics Metrics
}
