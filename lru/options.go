// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package lru

// Option configures a Cache at construction.
type Option[K comparable, V any] func(*Cache[K, V])

// WithOnEvict registers fn to be called with every entry removed to make room
// for a new key. Explicit Evict and Flush calls do not invoke it.
//
// fn runs inside Put. When the cache is wrapped by a synced.Cache the wrapper's
// lock is held, so fn must not call back into that same cache.
func WithOnEvict[K comparable, V any](fn func(K, V)) Option[K, V] {
	return func(c *Cache[K, V]) {
		c.onEvict = fn
	}
}
