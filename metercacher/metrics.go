// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package metercacher

import (
	"fmt"

	"github.com/luxfi/metric"
)

const (
	resultLabel = "result"
	hitResult   = "hit"
	missResult  = "miss"

	opLabel = "op"
	putOp   = "put"
	getOp   = "get"
)

var (
	hitLabels = metric.Labels{
		resultLabel: hitResult,
	}
	missLabels = metric.Labels{
		resultLabel: missResult,
	}
	putLabels = metric.Labels{
		opLabel: putOp,
	}
	getLabels = metric.Labels{
		opLabel: getOp,
	}
)

type cacheMetrics struct {
	getCount      metric.CounterVec
	getTime       metric.CounterVec
	putCount      metric.Counter
	putTime       metric.Counter
	replaceCount  metric.Counter
	rejectedCount metric.CounterVec
	len           metric.Gauge
	portionFilled metric.Gauge
}

func newMetrics(
	namespace string,
	reg metric.Registerer,
) (*cacheMetrics, error) {
	m := &cacheMetrics{
		getCount: metric.NewCounterVec(
			metric.CounterOpts{
				Namespace: namespace,
				Name:      "get_count",
				Help:      "number of get calls",
			},
			[]string{resultLabel},
		),
		getTime: metric.NewCounterVec(
			metric.CounterOpts{
				Namespace: namespace,
				Name:      "get_time",
				Help:      "time spent (ns) in get calls",
			},
			[]string{resultLabel},
		),
		putCount: metric.NewCounter(metric.CounterOpts{
			Namespace: namespace,
			Name:      "put_count",
			Help:      "number of put calls",
		}),
		putTime: metric.NewCounter(metric.CounterOpts{
			Namespace: namespace,
			Name:      "put_time",
			Help:      "time spent (ns) in put calls",
		}),
		replaceCount: metric.NewCounter(metric.CounterOpts{
			Namespace: namespace,
			Name:      "replace_count",
			Help:      "number of put calls that replaced an existing value",
		}),
		rejectedCount: metric.NewCounterVec(
			metric.CounterOpts{
				Namespace: namespace,
				Name:      "rejected_count",
				Help:      "number of calls rejected for invalid arguments",
			},
			[]string{opLabel},
		),
		len: metric.NewGauge(metric.GaugeOpts{
			Namespace: namespace,
			Name:      "len",
			Help:      "number of entries",
		}),
		portionFilled: metric.NewGauge(metric.GaugeOpts{
			Namespace: namespace,
			Name:      "portion_filled",
			Help:      "fraction of cache filled",
		}),
	}

	errs := &metric.Errs{}
	for _, c := range []any{
		m.getCount,
		m.getTime,
		m.putCount,
		m.putTime,
		m.replaceCount,
		m.rejectedCount,
		m.len,
		m.portionFilled,
	} {
		if err := reg.Register(metric.AsCollector(c)); err != nil {
			errs.Add(fmt.Errorf("%w: %w", metric.ErrFailedRegistering, err))
		}
	}
	return m, errs.Err
}
