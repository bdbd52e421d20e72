package metercacher

import (
	"testing"

	"github.com/luxfi/metric"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"

	"github.com/luxfi/lrucache"
	"github.com/luxfi/lrucache/lru"
	"github.com/luxfi/lrucache/synced"
)

func newTestCache[K comparable, V any](t *testing.T, inner lrucache.Cacher[K, V]) *Cache[K, V] {
	t.Helper()
	c, err := New("test", metric.NewRegistry(), inner)
	require.NoError(t, err)
	return c
}

// collected reads the current value of a wrapped counter or gauge.
func collected(m any) float64 {
	return testutil.ToFloat64(metric.AsCollector(m))
}

func TestMeteredCache(t *testing.T) {
	require := require.New(t)

	inner, err := lru.New[int, string](2)
	require.NoError(err)
	c := newTestCache[int, string](t, inner)

	_, _, err = c.Put(1, "A")
	require.NoError(err)
	_, _, err = c.Put(2, "B")
	require.NoError(err)
	previous, replaced, err := c.Put(1, "AA")
	require.NoError(err)
	require.True(replaced)
	require.Equal("A", previous)

	require.Equal(3.0, collected(c.metrics.putCount))
	require.Equal(1.0, collected(c.metrics.replaceCount))
	require.Equal(2.0, collected(c.metrics.len))
	require.Equal(1.0, collected(c.metrics.portionFilled))

	value, ok, err := c.Get(1)
	require.NoError(err)
	require.True(ok)
	require.Equal("AA", value)

	_, ok, err = c.Get(3)
	require.NoError(err)
	require.False(ok)

	require.Equal(1.0, collected(c.metrics.getCount.With(hitLabels)))
	require.Equal(1.0, collected(c.metrics.getCount.With(missLabels)))

	require.True(c.Evict(2))
	require.Equal(1.0, collected(c.metrics.len))
	require.Equal(0.5, collected(c.metrics.portionFilled))

	c.Flush()
	require.Zero(collected(c.metrics.len))
	require.Zero(c.Len())
}

func TestMeteredCacheCountsRejectedCalls(t *testing.T) {
	require := require.New(t)

	inner, err := synced.New[*int, string](2)
	require.NoError(err)
	c := newTestCache[*int, string](t, inner)

	_, _, err = c.Put(nil, "A")
	require.ErrorIs(err, lrucache.ErrInvalidArgument)
	_, _, err = c.Get(nil)
	require.ErrorIs(err, lrucache.ErrInvalidArgument)

	require.Equal(1.0, collected(c.metrics.rejectedCount.With(putLabels)))
	require.Equal(1.0, collected(c.metrics.rejectedCount.With(getLabels)))
	require.Zero(collected(c.metrics.putCount))
	require.Zero(c.Len())
}

func TestNewFailsOnDuplicateRegistration(t *testing.T) {
	require := require.New(t)

	reg := metric.NewRegistry()
	inner := lru.NewDefault[string, string]()

	_, err := New[string, string]("dup", reg, inner)
	require.NoError(err)

	_, err = New[string, string]("dup", reg, inner)
	require.ErrorIs(err, metric.ErrFailedRegistering)
}

func TestMetricsAreGathered(t *testing.T) {
	require := require.New(t)

	reg := metric.NewRegistry()
	c, err := New[string, int]("lru", reg, lru.NewDefault[string, int]())
	require.NoError(err)

	_, _, err = c.Put("a", 1)
	require.NoError(err)
	_, _, err = c.Get("a")
	require.NoError(err)

	families, err := reg.Gather()
	require.NoError(err)

	names := make([]string, 0, len(families))
	for _, family := range families {
		names = append(names, family.GetName())
	}
	require.Subset(names, []string{
		"lru_get_count",
		"lru_get_time",
		"lru_put_count",
		"lru_put_time",
		"lru_len",
		"lru_portion_filled",
	})
}
