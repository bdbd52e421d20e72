// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package lru provides a fixed-capacity LRU cache backed by a hash index and
// a slot-indexed recency list.
package lru

import (
	"fmt"
	"iter"

	"github.com/luxfi/lrucache"
)

var _ lrucache.Cacher[struct{}, struct{}] = (*Cache[struct{}, struct{}])(nil)

// Cache is an LRU cache holding at most a fixed number of entries.
//
// Cache is not safe for concurrent use. Wrap it with the synced package when
// more than one goroutine needs access.
type Cache[K comparable, V any] struct {
	capacity int
	index    map[K]int
	order    *recencyList[K, V]
	onEvict  func(K, V)

	checkKey   bool
	checkValue bool
}

// New creates a cache holding at most capacity entries.
func New[K comparable, V any](capacity int, opts ...Option[K, V]) (*Cache[K, V], error) {
	if capacity <= 0 {
		return nil, fmt.Errorf("%w: capacity %d must be positive", lrucache.ErrInvalidArgument, capacity)
	}
	return newCache(capacity, opts...), nil
}

// NewDefault creates a cache holding at most lrucache.DefaultCapacity entries.
func NewDefault[K comparable, V any](opts ...Option[K, V]) *Cache[K, V] {
	return newCache(lrucache.DefaultCapacity, opts...)
}

// newCache builds a cache; capacity must be positive.
func newCache[K comparable, V any](capacity int, opts ...Option[K, V]) *Cache[K, V] {
	c := &Cache[K, V]{
		capacity:   capacity,
		index:      make(map[K]int, min(capacity, maxPrealloc)),
		order:      newRecencyList[K, V](capacity),
		checkKey:   nillable[K](),
		checkValue: nillable[V](),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Put inserts or replaces the value stored under key and marks the entry as
// most recently used. When key was present its previous value is returned
// with true. Inserting a new key into a full cache evicts the least recently
// used entry first.
func (c *Cache[K, V]) Put(key K, value V) (V, bool, error) {
	var zero V
	if c.checkKey && isNil(key) {
		return zero, false, errNilKey
	}
	if c.checkValue && isNil(value) {
		return zero, false, errNilValue
	}

	if i, ok := c.index[key]; ok {
		return c.order.touch(i, value), true, nil
	}

	if c.order.size() == c.capacity {
		c.evictOldest()
	}
	c.index[key] = c.order.insertAtHead(key, value)
	return zero, false, nil
}

// Get returns the value stored under key and marks the entry as most
// recently used.
func (c *Cache[K, V]) Get(key K) (V, bool, error) {
	var zero V
	if c.checkKey && isNil(key) {
		return zero, false, errNilKey
	}

	i, ok := c.index[key]
	if !ok {
		return zero, false, nil
	}
	return c.order.promote(i), true, nil
}

// Peek returns the value stored under key without changing its recency.
func (c *Cache[K, V]) Peek(key K) (V, bool) {
	i, ok := c.index[key]
	if !ok {
		var zero V
		return zero, false
	}
	_, value := c.order.entry(i)
	return value, true
}

// Contains reports whether key is present without changing its recency.
func (c *Cache[K, V]) Contains(key K) bool {
	_, ok := c.index[key]
	return ok
}

// Oldest returns the least recently used entry, the next one to be evicted.
func (c *Cache[K, V]) Oldest() (K, V, bool) {
	if c.order.tail == nilSlot {
		var (
			key   K
			value V
		)
		return key, value, false
	}
	key, value := c.order.entry(c.order.tail)
	return key, value, true
}

// Evict removes the entry stored under key and reports whether it existed.
func (c *Cache[K, V]) Evict(key K) bool {
	i, ok := c.index[key]
	if !ok {
		return false
	}
	delete(c.index, key)
	c.order.remove(i)
	return true
}

// Flush removes all entries from the cache.
func (c *Cache[K, V]) Flush() {
	clear(c.index)
	c.order.reset()
}

// Len returns the number of entries in the cache.
func (c *Cache[K, V]) Len() int {
	return c.order.size()
}

// Cap returns the maximum number of entries the cache holds.
func (c *Cache[K, V]) Cap() int {
	return c.capacity
}

// PortionFilled returns fraction of cache currently filled (0 --> 1).
func (c *Cache[K, V]) PortionFilled() float64 {
	return float64(c.order.size()) / float64(c.capacity)
}

// Keys returns the cached keys from most to least recently used.
func (c *Cache[K, V]) Keys() []K {
	keys := make([]K, 0, c.order.size())
	c.order.each(func(key K, _ V) bool {
		keys = append(keys, key)
		return true
	})
	return keys
}

// All iterates over the cached entries from most to least recently used
// without changing their recency. The cache must not be modified during
// iteration.
func (c *Cache[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		c.order.each(yield)
	}
}

func (c *Cache[K, V]) evictOldest() {
	key, value := c.order.evictTail()
	delete(c.index, key)
	if c.onEvict != nil {
		c.onEvict(key, value)
	}
}
