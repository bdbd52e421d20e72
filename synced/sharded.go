// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package synced

import (
	"fmt"

	"github.com/luxfi/ids"
	"github.com/spaolacci/murmur3"

	"github.com/luxfi/lrucache"
	"github.com/luxfi/lrucache/lru"
)

var _ lrucache.Cacher[struct{}, struct{}] = (*Sharded[struct{}, struct{}])(nil)

// Sharded spreads keys over independently locked caches to reduce lock
// contention. Recency is tracked per shard, so an eviction removes the least
// recently used entry of the key's shard rather than of the whole cache.
type Sharded[K comparable, V any] struct {
	shards   []*Cache[K, V]
	keyBytes func(K) []byte
}

// NewSharded creates a cache of the given number of shards, each holding at
// most capacityPerShard entries. keyBytes encodes a key for hashing; equal
// keys must encode to equal bytes. It runs before the key is validated, so it
// must also accept nil keys.
func NewSharded[K comparable, V any](
	shards int,
	capacityPerShard int,
	keyBytes func(K) []byte,
	opts ...lru.Option[K, V],
) (*Sharded[K, V], error) {
	if shards <= 0 {
		return nil, fmt.Errorf("%w: shard count %d must be positive", lrucache.ErrInvalidArgument, shards)
	}
	if keyBytes == nil {
		return nil, fmt.Errorf("%w: nil key encoder", lrucache.ErrInvalidArgument)
	}

	s := &Sharded[K, V]{
		shards:   make([]*Cache[K, V], shards),
		keyBytes: keyBytes,
	}
	for i := range s.shards {
		c, err := New[K, V](capacityPerShard, opts...)
		if err != nil {
			return nil, err
		}
		s.shards[i] = c
	}
	return s, nil
}

// StringBytes encodes string keys.
func StringBytes(key string) []byte {
	return []byte(key)
}

// IDBytes encodes ids.ID keys.
func IDBytes(id ids.ID) []byte {
	return id[:]
}

func (s *Sharded[K, V]) shard(key K) *Cache[K, V] {
	h := murmur3.Sum64(s.keyBytes(key))
	return s.shards[h%uint64(len(s.shards))]
}

// Put inserts or replaces an element in the key's shard.
func (s *Sharded[K, V]) Put(key K, value V) (V, bool, error) {
	return s.shard(key).Put(key, value)
}

// Get returns the entry with the key, if it exists.
func (s *Sharded[K, V]) Get(key K) (V, bool, error) {
	return s.shard(key).Get(key)
}

// Evict removes the specified entry from the cache.
func (s *Sharded[K, V]) Evict(key K) bool {
	return s.shard(key).Evict(key)
}

// Flush removes all entries from every shard.
func (s *Sharded[K, V]) Flush() {
	for _, c := range s.shards {
		c.Flush()
	}
}

// Len returns the number of elements across all shards. Concurrent writers
// may make the result stale.
func (s *Sharded[K, V]) Len() int {
	n := 0
	for _, c := range s.shards {
		n += c.Len()
	}
	return n
}

// Cap returns the total capacity of all shards.
func (s *Sharded[K, V]) Cap() int {
	return len(s.shards) * s.shards[0].Cap()
}

// PortionFilled returns fraction of cache currently filled (0 --> 1).
func (s *Sharded[K, V]) PortionFilled() float64 {
	return float64(s.Len()) / float64(s.Cap())
}
