package cache

// recencyList is the intrusive MRU↔LRU doubly linked list that keeps the
// total recency order over resident nodes: head is the most recently used,
// tail the least. All operations are O(1) pointer fixes.
//
// The list holds no ownership bookkeeping of its own; the Cache keeps the
// index and the list in lockstep.
type recencyList[K comparable, V any] struct {
	head *node[K, V] // MRU
	tail *node[K, V] // LRU
	size int
}

// pushFront inserts n at MRU.
func (l *recencyList[K, V]) pushFront(n *node[K, V]) {
	n.prev = nil
	n.next = l.head
	if l.head != nil {
		l.head.prev = n
	}
	l.head = n
	if l.tail == nil {
		l.tail = n
	}
	l.size++
}

// moveToFront promotes n to MRU.
func (l *recencyList[K, V]) moveToFront(n *node[K, V]) {
	if n == l.head {
		return
	}
	// detach
	if n.prev != nil {
		n.prev.next = n.next
	}
	if n.next != nil {
		n.next.prev = n.prev
	}
	if l.tail == n {
		l.tail = n.prev
	}
	// insert at head
	n.prev = nil
	n.next = l.head
	if l.head != nil {
		l.head.prev = n
	}
	l.head = n
	if l.tail == nil {
		l.tail = n
	}
}

// remove detaches n from the list.
func (l *recencyList[K, V]) remove(n *node[K, V]) {
	if n.prev != nil {
		n.prev.next = n.next
	}
	if n.next != nil {
		n.next.prev = n.prev
	}
	if l.head == n {
		l.head = n.next
	}
	if l.tail == n {
		l.tail = n.prev
	}
	n.prev, n.next = nil, nil
	l.size--
}

// front returns the current MRU node (nil if empty).
func (l *recencyList[K, V]) front() *node[K, V] { return l.head }

// back returns the current LRU node (nil if empty).
func (l *recencyList[K, V]) back() *node[K, V] { return l.tail }

// len returns the number of resident nodes.
func (l *recencyList[K, V]) len() int { return l.size }

// reset empties the list. Node links are left to the collector.
func (l *recencyList[K, V]) reset() {
	l.head, l.tail = nil, nil
	l.size = 0
}
