// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package lrucache provides the interfaces shared by the fixed-capacity
// least-recently-used caches in this module.
package lrucache

// DefaultCapacity is the number of entries a cache holds when no capacity is
// given.
const DefaultCapacity = 1024

// Cacher is a fixed-capacity key value store that evicts the least recently
// used entry when a new key would exceed its capacity.
type Cacher[K comparable, V any] interface {
	// Put inserts or replaces the value stored under key and marks it as most
	// recently used. If key was already present, its previous value is
	// returned together with true.
	Put(key K, value V) (V, bool, error)

	// Get returns the value stored under key, if it exists, and marks it as
	// most recently used.
	Get(key K) (V, bool, error)

	// Evict removes the specified entry from the cache.
	Evict(key K) bool

	// Flush removes all entries from the cache.
	Flush()

	// Len returns the number of elements in the cache.
	Len() int

	// PortionFilled returns fraction of cache currently filled (0 --> 1).
	PortionFilled() float64
}
