package cache

// node is a single cache entry threaded onto the recency list.
// Each node carries its own copy of the key so that eviction can delete
// the matching store entry without a reverse lookup.
type node[K comparable, V any] struct {
	key   K
	value V
	prev  *node[K, V]
	next  *node[K, V]
}

// list is a doubly-linked recency list: the front holds the most
// recently used entry, the back the least recently used. Together with
// the key-to-node store index it gives O(1) promotion and eviction.
//
// The list is not safe for concurrent use; the owning cache provides
// whatever coordination its callers need.
type list[K comparable, V any] struct {
	front *node[K, V]
	back  *node[K, V]
	size  int
}

// newList creates an empty recency list.
func newList[K comparable, V any]() *list[K, V] {
	return &list[K, V]{}
}

// Len returns the number of entries on the list.
func (l *list[K, V]) Len() int {
	return l.size
}

// PushFront adds a new entry at the front (most recently used position)
// and returns its node for the store index.
func (l *list[K, V]) PushFront(key K, value V) *node[K, V] {
	n := &node[K, V]{key: key, value: value}
	if l.front == nil {
		// First entry
		l.front = n
		l.back = n
	} else {
		n.next = l.front
		l.front.prev = n
		l.front = n
	}
	l.size++
	return n
}

// MoveToFront promotes an existing node to the most recently used
// position. Promoting the front node is a no-op.
func (l *list[K, V]) MoveToFront(n *node[K, V]) {
	if n == l.front {
		return
	}
	l.unlink(n)
	n.next = l.front
	l.front.prev = n
	l.front = n
	l.size++
}

// Remove unlinks a node from the list.
func (l *list[K, V]) Remove(n *node[K, V]) {
	l.unlink(n)
}

// Back returns the least recently used node, or nil if the list is
// empty.
func (l *list[K, V]) Back() *node[K, V] {
	return l.back
}

// RemoveBack unlinks and returns the least recently used node. Returns
// nil if the list is empty.
func (l *list[K, V]) RemoveBack() *node[K, V] {
	n := l.back
	if n != nil {
		l.unlink(n)
	}
	return n
}

// Clear drops every entry from the list.
func (l *list[K, V]) Clear() {
	l.front = nil
	l.back = nil
	l.size = 0
}

// unlink removes a node from its current position and clears its link
// pointers.
func (l *list[K, V]) unlink(n *node[K, V]) {
	if n.prev != nil {
		n.prev.next = n.next
	} else {
		l.front = n.next
	}
	if n.next != nil {
		n.next.prev = n.prev
	} else {
		l.back = n.prev
	}
	n.prev = nil
	n.next = nil
	l.size--
}
