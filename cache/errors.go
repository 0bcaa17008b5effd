package cache

import (
	"errors"
	"fmt"
)

// ErrKeyNotFound is returned by Get, Delete, and Pop when the key is not
// resident. Returned errors wrap this sentinel; test with errors.Is.
var ErrKeyNotFound = errors.New("cache: key not found")

// InvalidCapacityError reports a non-positive capacity passed to New.
type InvalidCapacityError struct {
	Capacity int
}

func (e *InvalidCapacityError) Error() string {
	return fmt.Sprintf("cache: capacity must be positive, got %d", e.Capacity)
}

// CallbackError wraps a panic recovered from the eviction callback. It is
// returned by the Set (or SetDefault/Update) call whose eviction ran the
// callback, always after the cache structure is consistent again and the
// triggering insertion has completed.
// The evicted pair is carried so the caller can still reach it: after the
// eviction the cache no longer owns the key or value, and the failed
// callback may have dropped them on the floor.
type CallbackError struct {
	Key       any // evicted key the callback was invoked with
	Value     any // evicted value the callback was invoked with
	Recovered any // value recovered from the callback's panic
}

func (e *CallbackError) Error() string {
	return fmt.Sprintf("cache: eviction callback for key %v panicked: %v", e.Key, e.Recovered)
}
