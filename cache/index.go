package cache

import "github.com/IvanBrykalov/lrudict/internal/util"

// index is a fixed-size open-addressing hash table mapping keys to resident
// nodes. Linear probing with backward-shift deletion: removing an entry
// compacts the probe chain behind it, so no tombstones accumulate no matter
// how much churn the table sees.
//
// The slot count is the next power of two >= 2*capacity and never changes:
// the cache evicts before inserting, so occupancy never exceeds capacity and
// the load factor stays at or below 1/2.
type index[K comparable, V any] struct {
	slots []*node[K, V]
	mask  uint64
}

func newIndex[K comparable, V any](capacity int) *index[K, V] {
	n := util.NextPow2(2 * uint64(capacity))
	if n < 8 {
		n = 8
	}
	return &index[K, V]{
		slots: make([]*node[K, V], n),
		mask:  n - 1,
	}
}

// lookup returns the node bound to k, or nil. hash must be the hash of k.
func (t *index[K, V]) lookup(k K, hash uint64) *node[K, V] {
	i := hash & t.mask
	for {
		n := t.slots[i]
		if n == nil {
			return nil
		}
		if n.hash == hash && n.key == k {
			return n
		}
		i = (i + 1) & t.mask
	}
}

// insert places n at the first free slot of its probe chain.
// The caller guarantees the key is absent and a free slot exists (occupancy
// is capacity-bounded, and eviction runs before the overflowing insert).
func (t *index[K, V]) insert(n *node[K, V]) {
	i := n.hash & t.mask
	for t.slots[i] != nil {
		i = (i + 1) & t.mask
	}
	t.slots[i] = n
}

// remove deletes n's slot and backward-shifts the probe chain behind it:
// each follower whose home slot does not lie strictly inside the gap moves
// into the hole, keeping every remaining entry reachable from its home.
func (t *index[K, V]) remove(n *node[K, V]) {
	i := n.hash & t.mask
	for t.slots[i] != n {
		i = (i + 1) & t.mask
	}
	j := i
	for {
		t.slots[i] = nil
		for {
			j = (j + 1) & t.mask
			m := t.slots[j]
			if m == nil {
				return
			}
			home := m.hash & t.mask
			// m can fill the hole at i only if its home is not in the
			// cyclic interval (i, j]; otherwise probing from home would
			// no longer reach it.
			if (j-home)&t.mask >= (j-i)&t.mask {
				break
			}
		}
		t.slots[i] = t.slots[j]
		i = j
	}
}

// reset drops every slot. O(slots).
func (t *index[K, V]) reset() {
	for i := range t.slots {
		t.slots[i] = nil
	}
}
