package cache

// node is one resident binding: an intrusive doubly linked list element that
// is simultaneously an occupant of the hash index. Nodes are owned
// exclusively by the Cache and never escape to callers; accessors copy the
// key/value out instead.
type node[K comparable, V any] struct {
	key K
	val V

	// Cached hash of key. Fixes the node's home slot in the index and
	// avoids rehashing during backward-shift deletion.
	hash uint64

	// Intrusive list links: head is MRU, tail is LRU.
	prev *node[K, V]
	next *node[K, V]
}
