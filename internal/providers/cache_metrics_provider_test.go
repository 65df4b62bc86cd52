package providers

import (
	"testing"
	"time"
	"timelinecsv/internal/structures"

	"github.com/stretchr/testify/assert"
)

type cacheMetricsTestMetrics struct {
	hits   int
	misses int
}

func (m *cacheMetricsTestMetrics) IncFiles(_ string)                              {}
func (m *cacheMetricsTestMetrics) IncEntries(_ string)                            {}
func (m *cacheMetricsTestMetrics) SetRowsWritten(_ string, _ int)                 {}
func (m *cacheMetricsTestMetrics) ObserveStageDuration(_ string, _ time.Duration) {}
func (m *cacheMetricsTestMetrics) IncCacheHits()                                  { m.hits++ }
func (m *cacheMetricsTestMetrics) IncCacheMisses()                                { m.misses++ }
func (m *cacheMetricsTestMetrics) Flush() error                                   { return nil }

type cacheMetricsTestInner struct {
	data map[string][]byte
}

func (c *cacheMetricsTestInner) Get(key string) ([]byte, bool) {
	v, ok := c.data[key]
	return v, ok
}
func (c *cacheMetricsTestInner) Set(key string, value []byte) {
	c.data[key] = value
}

func TestMetricsCacheProvider_Hit(t *testing.T) {
	inner := &cacheMetricsTestInner{data: map[string][]byte{"key1": []byte("val1")}}
	metrics := &cacheMetricsTestMetrics{}
	cache := &MetricsCacheProvider{inner: inner, metrics: metrics}

	val, ok := cache.Get("key1")
	assert.True(t, ok)
	assert.Equal(t, []byte("val1"), val)
	assert.Equal(t, 1, metrics.hits)
	assert.Equal(t, 0, metrics.misses)
}

func TestMetricsCacheProvider_Miss(t *testing.T) {
	inner := &cacheMetricsTestInner{data: map[string][]byte{}}
	metrics := &cacheMetricsTestMetrics{}
	cache := &MetricsCacheProvider{inner: inner, metrics: metrics}

	val, ok := cache.Get("missing")
	assert.False(t, ok)
	assert.Nil(t, val)
	assert.Equal(t, 0, metrics.hits)
	assert.Equal(t, 1, metrics.misses)
}

func TestMetricsCacheProvider_SetDelegates(t *testing.T) {
	inner := &cacheMetricsTestInner{data: map[string][]byte{}}
	metrics := &cacheMetricsTestMetrics{}
	cache := &MetricsCacheProvider{inner: inner, metrics: metrics}

	cache.Set("key2", []byte("val2"))

	val, ok := inner.Get("key2")
	assert.True(t, ok)
	assert.Equal(t, []byte("val2"), val)
}

func TestMetricsCacheProvider_MultipleOperations(t *testing.T) {
	inner := &cacheMetricsTestInner{data: map[string][]byte{"a": []byte("1")}}
	metrics := &cacheMetricsTestMetrics{}
	cache := &MetricsCacheProvider{inner: inner, metrics: metrics}

	cache.Get("a") // hit
	cache.Get("b") // miss
	cache.Get("a") // hit
	cache.Get("c") // miss

	assert.Equal(t, 2, metrics.hits)
	assert.Equal(t, 2, metrics.misses)
}

func TestNewInstrumentedCacheProvider_DisabledIsNotWrapped(t *testing.T) {
	conf := &structures.Config{Cache: structures.CacheConfig{Enabled: false}}
	metrics := &cacheMetricsTestMetrics{}
	c := NewInstrumentedCacheProvider(conf, &cacheTestLogger{}, metrics)

	assert.IsType(t, &noopCache{}, c)
	c.Get("x")
	assert.Equal(t, 0, metrics.misses)
}

func TestNewInstrumentedCacheProvider_EnabledCountsHits(t *testing.T) {
	conf := &structures.Config{Cache: structures.CacheConfig{Enabled: true, Size: 1}}
	metrics := &cacheMetricsTestMetrics{}
	c := NewInstrumentedCacheProvider(conf, &cacheTestLogger{}, metrics)

	c.Get("k")
	c.Set("k", []byte("v"))
	c.Get("k")
	assert.Equal(t, 1, metrics.hits)
	assert.Equal(t, 1, metrics.misses)
}
