package providers

import (
	"os"
	"path/filepath"
	"testing"
	"time"
	"timelinecsv/internal/structures"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNoopMetrics_WhenDisabled(t *testing.T) {
	conf := &structures.Config{
		Metrics: structures.MetricsConfig{Enabled: false},
	}
	m := NewMetricsProvider(conf)
	_, ok := m.(*noopMetrics)
	assert.True(t, ok, "should return noopMetrics when disabled")

	// Ensure no-op methods don't panic
	m.IncFiles(FileLoaded)
	m.IncEntries(EntryPlace)
	m.SetRowsWritten("timeline.csv", 10)
	m.ObserveStageDuration("locate", time.Millisecond)
	m.IncCacheHits()
	m.IncCacheMisses()
	assert.NoError(t, m.Flush())
}

func TestMetricsProvider_WhenEnabled(t *testing.T) {
	conf := &structures.Config{
		Metrics: structures.MetricsConfig{Enabled: true},
	}
	m := NewMetricsProvider(conf)
	_, ok := m.(*MetricsProvider)
	assert.True(t, ok, "should return MetricsProvider when enabled")
}

func TestMetricsProvider_TwoInstancesDoNotCollide(t *testing.T) {
	conf := &structures.Config{
		Metrics: structures.MetricsConfig{Enabled: true},
	}
	assert.NotPanics(t, func() {
		NewMetricsProvider(conf)
		NewMetricsProvider(conf)
	})
}

func TestMetricsProvider_IncrementCounters(t *testing.T) {
	conf := &structures.Config{
		Metrics: structures.MetricsConfig{Enabled: true},
	}
	m := NewMetricsProvider(conf).(*MetricsProvider)

	m.IncFiles(FileLoaded)
	m.IncFiles(FileLoaded)
	m.IncFiles(FileMissing)
	m.IncEntries(EntryDropped)
	m.IncCacheHits()
	m.IncCacheMisses()
	m.IncCacheMisses()
	m.SetRowsWritten("timeline.csv", 42)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.filesTotal.WithLabelValues(FileLoaded)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.filesTotal.WithLabelValues(FileMissing)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.entriesTotal.WithLabelValues(EntryDropped)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.cacheHits))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.cacheMisses))
	assert.Equal(t, 42.0, testutil.ToFloat64(m.rowsWritten.WithLabelValues("timeline.csv")))
}

func TestMetricsProvider_FlushWritesTextfile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "timelinecsv.prom")
	conf := &structures.Config{
		Metrics: structures.MetricsConfig{Enabled: true, Textfile: path},
	}
	m := NewMetricsProvider(conf)
	m.IncFiles(FileInvalid)
	m.ObserveStageDuration("emit", 5*time.Millisecond)

	require.NoError(t, m.Flush())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	content := string(data)
	assert.Contains(t, content, `timelinecsv_files_total{status="invalid"} 1`)
	assert.Contains(t, content, "timelinecsv_stage_duration_seconds_count")
	assert.Contains(t, content, "timelinecsv_last_run_timestamp_seconds")
}

func TestMetricsProvider_FlushWithoutTextfile(t *testing.T) {
	conf := &structures.Config{
		Metrics: structures.MetricsConfig{Enabled: true},
	}
	m := NewMetricsProvider(conf)
	assert.NoError(t, m.Flush())
}
