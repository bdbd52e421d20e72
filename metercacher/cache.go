// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package metercacher provides metered cache implementations.
package metercacher

import (
	"time"

	"github.com/luxfi/metric"

	"github.com/luxfi/lrucache"
)

var _ lrucache.Cacher[struct{}, struct{}] = (*Cache[struct{}, struct{}])(nil)

// Cache wraps a Cacher with metrics.
type Cache[K comparable, V any] struct {
	lrucache.Cacher[K, V]
	metrics *cacheMetrics
}

// New creates a new metered cache wrapper. The collectors are registered on
// registry; a metric.Registry satisfies it.
func New[K comparable, V any](
	namespace string,
	registry metric.Registerer,
	c lrucache.Cacher[K, V],
) (*Cache[K, V], error) {
	metrics, err := newMetrics(namespace, registry)
	return &Cache[K, V]{
		Cacher:  c,
		metrics: metrics,
	}, err
}

func (c *Cache[K, V]) Put(key K, value V) (V, bool, error) {
	start := time.Now()
	previous, replaced, err := c.Cacher.Put(key, value)
	putDuration := time.Since(start)

	if err != nil {
		c.metrics.rejectedCount.With(putLabels).Inc()
		return previous, replaced, err
	}

	c.metrics.putCount.Inc()
	c.metrics.putTime.Add(float64(putDuration))
	if replaced {
		c.metrics.replaceCount.Inc()
	}
	c.updateSize()
	return previous, replaced, nil
}

func (c *Cache[K, V]) Get(key K) (V, bool, error) {
	start := time.Now()
	value, has, err := c.Cacher.Get(key)
	getDuration := time.Since(start)

	switch {
	case err != nil:
		c.metrics.rejectedCount.With(getLabels).Inc()
	case has:
		c.metrics.getCount.With(hitLabels).Inc()
		c.metrics.getTime.With(hitLabels).Add(float64(getDuration))
	default:
		c.metrics.getCount.With(missLabels).Inc()
		c.metrics.getTime.With(missLabels).Add(float64(getDuration))
	}

	return value, has, err
}

func (c *Cache[K, _]) Evict(key K) bool {
	evicted := c.Cacher.Evict(key)
	c.updateSize()
	return evicted
}

func (c *Cache[_, _]) Flush() {
	c.Cacher.Flush()
	c.updateSize()
}

func (c *Cache[_, _]) updateSize() {
	c.metrics.len.Set(float64(c.Cacher.Len()))
	c.metrics.portionFilled.Set(c.Cacher.PortionFilled())
}
