package cache

import "testing"

// order walks the list head to tail and returns the keys.
func order[K comparable, V any](l *recencyList[K, V]) []K {
	var keys []K
	for n := l.front(); n != nil; n = n.next {
		keys = append(keys, n.key)
	}
	return keys
}

// reverseOrder walks tail to head via prev links, checking link symmetry.
func reverseOrder[K comparable, V any](l *recencyList[K, V]) []K {
	var keys []K
	for n := l.back(); n != nil; n = n.prev {
		keys = append(keys, n.key)
	}
	return keys
}

func sameKeys[K comparable](a, b []K) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestRecencyList_PushMoveRemove(t *testing.T) {
	t.Parallel()

	var l recencyList[string, int]
	a := &node[string, int]{key: "a"}
	b := &node[string, int]{key: "b"}
	c := &node[string, int]{key: "c"}

	l.pushFront(a)
	l.pushFront(b)
	l.pushFront(c)
	if !sameKeys(order(&l), []string{"c", "b", "a"}) {
		t.Fatalf("after pushes: %v", order(&l))
	}
	if l.len() != 3 {
		t.Fatalf("len=%d", l.len())
	}

	l.moveToFront(a) // tail to head
	if !sameKeys(order(&l), []string{"a", "c", "b"}) {
		t.Fatalf("after moveToFront(a): %v", order(&l))
	}
	l.moveToFront(a) // already head: no-op
	if !sameKeys(order(&l), []string{"a", "c", "b"}) {
		t.Fatalf("moveToFront(head) must be a no-op: %v", order(&l))
	}
	l.moveToFront(c) // middle to head
	if !sameKeys(order(&l), []string{"c", "a", "b"}) {
		t.Fatalf("after moveToFront(c): %v", order(&l))
	}

	// prev links must mirror next links.
	fwd, rev := order(&l), reverseOrder(&l)
	for i := range fwd {
		if fwd[i] != rev[len(rev)-1-i] {
			t.Fatalf("asymmetric links: fwd=%v rev=%v", fwd, rev)
		}
	}

	l.remove(a) // middle
	if !sameKeys(order(&l), []string{"c", "b"}) {
		t.Fatalf("after remove(a): %v", order(&l))
	}
	if a.prev != nil || a.next != nil {
		t.Fatal("removed node must have nil links")
	}
	l.remove(c) // head
	l.remove(b) // last node
	if l.len() != 0 || l.front() != nil || l.back() != nil {
		t.Fatal("list must be empty")
	}
}

func TestRecencyList_SingleNode(t *testing.T) {
	t.Parallel()

	var l recencyList[int, int]
	n := &node[int, int]{key: 1}
	l.pushFront(n)

	if l.front() != n || l.back() != n {
		t.Fatal("single node must be both head and tail")
	}
	l.moveToFront(n)
	if l.front() != n || l.back() != n || l.len() != 1 {
		t.Fatal("moveToFront on single node must be stable")
	}
	l.remove(n)
	if l.front() != nil || l.back() != nil || l.len() != 0 {
		t.Fatal("list must be empty after removing the only node")
	}
}

func TestRecencyList_Reset(t *testing.T) {
	t.Parallel()

	var l recencyList[int, int]
	for i := 0; i < 5; i++ {
		l.pushFront(&node[int, int]{key: i})
	}
	l.reset()
	if l.len() != 0 || l.front() != nil || l.back() != nil {
		t.Fatal("reset must empty the list")
	}
	// Reusable after reset.
	l.pushFront(&node[int, int]{key: 9})
	if l.len() != 1 || l.front().key != 9 {
		t.Fatal("list must be usable after reset")
	}
}
