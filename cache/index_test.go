package cache

import (
	"math/rand"
	"testing"

	"github.com/IvanBrykalov/lrudict/internal/util"
)

func TestIndex_SlotCount(t *testing.T) {
	t.Parallel()

	for _, capacity := range []int{1, 2, 3, 7, 8, 100, 4096} {
		idx := newIndex[int, int](capacity)
		n := uint64(len(idx.slots))
		if !util.IsPowerOfTwo(n) {
			t.Fatalf("capacity %d: slot count %d not a power of two", capacity, n)
		}
		if n < 2*uint64(capacity) {
			t.Fatalf("capacity %d: slot count %d below 2x capacity", capacity, n)
		}
		if idx.mask != n-1 {
			t.Fatalf("capacity %d: mask %d != slots-1", capacity, idx.mask)
		}
	}
}

func TestIndex_InsertLookupRemove(t *testing.T) {
	t.Parallel()

	h := util.NewHasher[string]()
	idx := newIndex[string, int](4)

	a := &node[string, int]{key: "a", val: 1, hash: h.Hash("a")}
	b := &node[string, int]{key: "b", val: 2, hash: h.Hash("b")}
	idx.insert(a)
	idx.insert(b)

	if got := idx.lookup("a", a.hash); got != a {
		t.Fatal("lookup a")
	}
	if got := idx.lookup("b", b.hash); got != b {
		t.Fatal("lookup b")
	}
	if got := idx.lookup("c", h.Hash("c")); got != nil {
		t.Fatalf("lookup absent key returned %v", got)
	}

	idx.remove(a)
	if idx.lookup("a", a.hash) != nil {
		t.Fatal("a still found after remove")
	}
	if idx.lookup("b", b.hash) != b {
		t.Fatal("remove a must not disturb b")
	}
}

// Force every key into the same probe chain and delete from the middle:
// backward-shift deletion must keep all survivors reachable.
func TestIndex_CollisionChainDeletion(t *testing.T) {
	t.Parallel()

	idx := newIndex[int, int](8) // 16 slots
	// Hand-crafted hashes, all with home slot 3.
	nodes := make([]*node[int, int], 6)
	for i := range nodes {
		nodes[i] = &node[int, int]{key: i, hash: 3}
		idx.insert(nodes[i])
	}
	// Remove from the middle, then the head of the chain.
	idx.remove(nodes[2])
	idx.remove(nodes[0])

	for i, n := range nodes {
		want := i != 0 && i != 2
		got := idx.lookup(n.key, n.hash) == n
		if got != want {
			t.Fatalf("node %d reachable=%v, want %v", i, got, want)
		}
	}
}

// Chains that wrap around the end of the table must survive deletion too.
func TestIndex_WrapAroundChain(t *testing.T) {
	t.Parallel()

	idx := newIndex[int, int](4) // 8 slots
	home := idx.mask             // last slot, chain wraps to 0,1,...
	nodes := make([]*node[int, int], 4)
	for i := range nodes {
		nodes[i] = &node[int, int]{key: i, hash: home}
		idx.insert(nodes[i])
	}
	idx.remove(nodes[0]) // empties the pre-wrap slot

	for i := 1; i < len(nodes); i++ {
		if idx.lookup(nodes[i].key, nodes[i].hash) != nodes[i] {
			t.Fatalf("node %d unreachable after wrap-around shift", i)
		}
	}
}

// Randomized churn against a reference map. High occupancy plus heavy
// delete/insert cycles is exactly the workload that rots tombstone-based
// tables; the backward-shift scheme must stay exact.
func TestIndex_RandomChurn(t *testing.T) {
	t.Parallel()

	const capacity = 64
	h := util.NewHasher[int]()
	idx := newIndex[int, int](capacity)
	ref := make(map[int]*node[int, int])
	r := rand.New(rand.NewSource(1))

	for step := 0; step < 50_000; step++ {
		k := r.Intn(256)
		if n, ok := ref[k]; ok {
			if r.Intn(2) == 0 {
				idx.remove(n)
				delete(ref, k)
			}
		} else if len(ref) < capacity {
			n := &node[int, int]{key: k, hash: h.Hash(k)}
			idx.insert(n)
			ref[k] = n
		}

		// Spot-check a few random keys each step.
		for i := 0; i < 4; i++ {
			probe := r.Intn(256)
			want := ref[probe]
			if got := idx.lookup(probe, h.Hash(probe)); got != want {
				t.Fatalf("step %d: lookup(%d)=%v want %v", step, probe, got, want)
			}
		}
	}
}
