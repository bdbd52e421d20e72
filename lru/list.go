// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package lru

// nilSlot marks the absence of a neighbor or endpoint.
const nilSlot = -1

// maxPrealloc bounds the number of slots reserved up front so that very
// large capacities do not allocate memory they may never use.
const maxPrealloc = 4096

// slot holds one entry of the recency list. prev points towards the head
// (more recently used), next towards the tail.
type slot[K comparable, V any] struct {
	key   K
	value V
	prev  int
	next  int
}

// recencyList is a doubly linked list of entries stored in a slice. Links are
// slot indices, and released slots are kept on a free list for reuse.
//
// The head is the most recently used entry and the tail the least recently
// used one.
type recencyList[K comparable, V any] struct {
	slots []slot[K, V]
	free  []int
	head  int
	tail  int
	len   int
}

func newRecencyList[K comparable, V any](capacity int) *recencyList[K, V] {
	return &recencyList[K, V]{
		slots: make([]slot[K, V], 0, min(capacity, maxPrealloc)),
		head:  nilSlot,
		tail:  nilSlot,
	}
}

// insertAtHead stores a new entry as the most recently used one and returns
// its slot.
func (l *recencyList[K, V]) insertAtHead(key K, value V) int {
	var i int
	if n := len(l.free); n > 0 {
		i = l.free[n-1]
		l.free = l.free[:n-1]
	} else {
		i = len(l.slots)
		l.slots = append(l.slots, slot[K, V]{})
	}

	s := &l.slots[i]
	s.key = key
	s.value = value
	l.pushFront(i)
	l.len++
	return i
}

// touch replaces the value held in slot i, moves the entry to the head and
// returns the value it held before.
func (l *recencyList[K, V]) touch(i int, value V) V {
	s := &l.slots[i]
	previous := s.value
	s.value = value
	l.moveToFront(i)
	return previous
}

// promote moves the entry in slot i to the head without changing its value.
func (l *recencyList[K, V]) promote(i int) V {
	l.moveToFront(i)
	return l.slots[i].value
}

// evictTail removes the least recently used entry and returns it. The list
// must not be empty.
func (l *recencyList[K, V]) evictTail() (K, V) {
	if l.tail == nilSlot {
		panic("lru: evictTail called on an empty list")
	}
	return l.remove(l.tail)
}

// remove unlinks the entry in slot i, releases the slot and returns the
// entry's contents.
func (l *recencyList[K, V]) remove(i int) (K, V) {
	l.unlink(i)
	s := &l.slots[i]
	key, value := s.key, s.value

	// Drop references so released slots do not keep values alive.
	*s = slot[K, V]{prev: nilSlot, next: nilSlot}
	l.free = append(l.free, i)
	l.len--
	return key, value
}

func (l *recencyList[K, V]) size() int {
	return l.len
}

// reset empties the list while keeping the allocated slots.
func (l *recencyList[K, V]) reset() {
	clear(l.slots)
	l.slots = l.slots[:0]
	l.free = l.free[:0]
	l.head, l.tail = nilSlot, nilSlot
	l.len = 0
}

// entry returns the contents of slot i.
func (l *recencyList[K, V]) entry(i int) (K, V) {
	s := &l.slots[i]
	return s.key, s.value
}

// each calls fn for every entry from head to tail until fn returns false.
func (l *recencyList[K, V]) each(fn func(K, V) bool) {
	for i := l.head; i != nilSlot; i = l.slots[i].next {
		if !fn(l.slots[i].key, l.slots[i].value) {
			return
		}
	}
}

// Doubly-linked list operations for LRU

func (l *recencyList[K, V]) pushFront(i int) {
	s := &l.slots[i]
	s.prev = nilSlot
	s.next = l.head
	if l.head != nilSlot {
		l.slots[l.head].prev = i
	}
	l.head = i
	if l.tail == nilSlot {
		l.tail = i
	}
}

func (l *recencyList[K, V]) unlink(i int) {
	s := &l.slots[i]
	if s.prev != nilSlot {
		l.slots[s.prev].next = s.next
	} else {
		l.head = s.next
	}
	if s.next != nilSlot {
		l.slots[s.next].prev = s.prev
	} else {
		l.tail = s.prev
	}
	s.prev, s.next = nilSlot, nilSlot
}

func (l *recencyList[K, V]) moveToFront(i int) {
	if l.head == i {
		return
	}
	l.unlink(i)
	l.pushFront(i)
}
