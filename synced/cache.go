// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package synced provides LRU caches that are safe for concurrent use.
package synced

import (
	"sync"

	"github.com/luxfi/lrucache"
	"github.com/luxfi/lrucache/lru"
)

var _ lrucache.Cacher[struct{}, struct{}] = (*Cache[struct{}, struct{}])(nil)

// Cache is a thread-safe LRU cache. A single mutex guards every operation.
type Cache[K comparable, V any] struct {
	lock  sync.Mutex
	cache *lru.Cache[K, V]
}

// New creates a thread-safe cache holding at most capacity entries.
//
// An lru.WithOnEvict callback runs while the cache's lock is held. Calling
// back into the same cache from it deadlocks.
func New[K comparable, V any](capacity int, opts ...lru.Option[K, V]) (*Cache[K, V], error) {
	c, err := lru.New[K, V](capacity, opts...)
	if err != nil {
		return nil, err
	}
	return &Cache[K, V]{cache: c}, nil
}

// Put inserts or replaces an element in the cache.
func (c *Cache[K, V]) Put(key K, value V) (V, bool, error) {
	c.lock.Lock()
	defer c.lock.Unlock()
	return c.cache.Put(key, value)
}

// Get returns the entry with the key, if it exists.
func (c *Cache[K, V]) Get(key K) (V, bool, error) {
	c.lock.Lock()
	defer c.lock.Unlock()
	return c.cache.Get(key)
}

// Peek returns the entry with the key without marking it as used.
func (c *Cache[K, V]) Peek(key K) (V, bool) {
	c.lock.Lock()
	defer c.lock.Unlock()
	return c.cache.Peek(key)
}

// Contains checks key existence
func (c *Cache[K, V]) Contains(key K) bool {
	c.lock.Lock()
	defer c.lock.Unlock()
	return c.cache.Contains(key)
}

// Evict removes the specified entry from the cache.
func (c *Cache[K, V]) Evict(key K) bool {
	c.lock.Lock()
	defer c.lock.Unlock()
	return c.cache.Evict(key)
}

// Flush removes all entries from the cache.
func (c *Cache[K, V]) Flush() {
	c.lock.Lock()
	defer c.lock.Unlock()
	c.cache.Flush()
}

// Len returns the number of elements in the cache.
func (c *Cache[K, V]) Len() int {
	c.lock.Lock()
	defer c.lock.Unlock()
	return c.cache.Len()
}

// Cap returns the maximum number of elements in the cache.
func (c *Cache[K, V]) Cap() int {
	return c.cache.Cap()
}

// PortionFilled returns fraction of cache currently filled.
func (c *Cache[K, V]) PortionFilled() float64 {
	c.lock.Lock()
	defer c.lock.Unlock()
	return c.cache.PortionFilled()
}

// Keys returns a snapshot of the keys from most to least recently used.
func (c *Cache[K, V]) Keys() []K {
	c.lock.Lock()
	defer c.lock.Unlock()
	return c.cache.Keys()
}
