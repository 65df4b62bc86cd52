package providers

import (
	"time"
	"timelinecsv/internal/structures"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	FileLoaded  = "loaded"
	FileMissing = "missing"
	FileInvalid = "invalid"

	EntryPlace    = "place"
	EntryActivity = "activity"
	EntryDropped  = "dropped"
)

type MetricsProviderInterface interface {
	IncFiles(status string)
	IncEntries(kind string)
	SetRowsWritten(report string, count int)
	ObserveStageDuration(stage string, duration time.Duration)
	IncCacheHits()
	IncCacheMisses()
	Flush() error
}

// MetricsProvider collects run metrics in a private registry and writes them
// in the node exporter textfile format once the run is over.
type MetricsProvider struct {
	registry      *prometheus.Registry
	textfile      string
	filesTotal    *prometheus.CounterVec
	entriesTotal  *prometheus.CounterVec
	rowsWritten   *prometheus.GaugeVec
	stageDuration *prometheus.HistogramVec
	cacheHits     prometheus.Counter
	cacheMisses   prometheus.Counter
	lastRun       prometheus.Gauge
}

func (m *MetricsProvider) IncFiles(status string) {
	m.filesTotal.WithLabelValues(status).Inc()
}

func (m *MetricsProvider) IncEntries(kind string) {
	m.entriesTotal.WithLabelValues(kind).Inc()
}

func (m *MetricsProvider) SetRowsWritten(report string, count int) {
	m.rowsWritten.WithLabelValues(report).Set(float64(count))
}

func (m *MetricsProvider) ObserveStageDuration(stage string, duration time.Duration) {
	m.stageDuration.WithLabelValues(stage).Observe(duration.Seconds())
}

func (m *MetricsProvider) IncCacheHits() {
	m.cacheHits.Inc()
}

func (m *MetricsProvider) IncCacheMisses() {
	m.cacheMisses.Inc()
}

func (m *MetricsProvider) Flush() error {
	if m.textfile == "" {
		return nil
	}
	m.lastRun.SetToCurrentTime()
	return prometheus.WriteToTextfile(m.textfile, m.registry)
}

func NewMetricsProvider(conf *structures.Config) MetricsProviderInterface {
	if !conf.Metrics.Enabled {
		return &noopMetrics{}
	}

	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &MetricsProvider{
		registry: reg,
		textfile: conf.Metrics.Textfile,

		filesTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "timelinecsv_files_total",
			Help: "Monthly history files by outcome",
		}, []string{"status"}),

		entriesTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "timelinecsv_entries_total",
			Help: "Timeline entries by classification",
		}, []string{"kind"}),

		rowsWritten: factory.NewGaugeVec(prometheus.GaugeOpts{
			Name: "timelinecsv_rows_written",
			Help: "Data rows written per report",
		}, []string{"report"}),

		stageDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "timelinecsv_stage_duration_seconds",
			Help:    "Duration of pipeline stages in seconds",
			Buckets: prometheus.DefBuckets,
		}, []string{"stage"}),

		cacheHits: factory.NewCounter(prometheus.CounterOpts{
			Name: "timelinecsv_cache_hits_total",
			Help: "Total number of timestamp cache hits",
		}),

		cacheMisses: factory.NewCounter(prometheus.CounterOpts{
			Name: "timelinecsv_cache_misses_total",
			Help: "Total number of timestamp cache misses",
		}),

		lastRun: factory.NewGauge(prometheus.GaugeOpts{
			Name: "timelinecsv_last_run_timestamp_seconds",
			Help: "Unix time of the last completed run",
		}),
	}
}

// noopMetrics is a no-op implementation for when metrics are disabled.
type noopMetrics struct{}

func (n *noopMetrics) IncFiles(_ string)                              {}
func (n *noopMetrics) IncEntries(_ string)                            {}
func (n *noopMetrics) SetRowsWritten(_ string, _ int)                 {}
func (n *noopMetrics) ObserveStageDuration(_ string, _ time.Duration) {}
func (n *noopMetrics) IncCacheHits()                                  {}
func (n *noopMetrics) IncCacheMisses()                                {}
func (n *noopMetrics) Flush() error                                   { return nil }
