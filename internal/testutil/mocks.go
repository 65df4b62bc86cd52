package testutil

import (
	"fmt"
	"strings"
	"sync"
	"time"
	"timelinecsv/internal/models"
	"timelinecsv/internal/providers"
)

// MockLogger implements providers.Logger and records calls.
type MockLogger struct {
	mu   sync.Mutex
	Logs []LogEntry
}

type LogEntry struct {
	Level  string
	Type   providers.TypeEnum
	Format string
	Args   []interface{}
}

func (e LogEntry) Message() string {
	return fmt.Sprintf(e.Format, e.Args...)
}

func (m *MockLogger) record(level string, t providers.TypeEnum, format string, args ...interface{}) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Logs = append(m.Logs, LogEntry{Level: level, Type: t, Format: format, Args: args})
}

func (m *MockLogger) Errorf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("error", t, format, args...)
}
func (m *MockLogger) Warnf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("warn", t, format, args...)
}
func (m *MockLogger) Debugf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("debug", t, format, args...)
}
func (m *MockLogger) Infof(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("info", t, format, args...)
}
func (m *MockLogger) Fatalf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("fatal", t, format, args...)
}
func (m *MockLogger) Close() {}

// Count returns the number of entries at level whose message contains substr.
func (m *MockLogger) Count(level, substr string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for _, e := range m.Logs {
		if e.Level == level && strings.Contains(e.Message(), substr) {
			n++
		}
	}
	return n
}

// MockMetrics implements providers.MetricsProviderInterface with plain counters.
type MockMetrics struct {
	mu          sync.Mutex
	Files       map[string]int
	Entries     map[string]int
	Rows        map[string]int
	Stages      []string
	CacheHits   int
	CacheMisses int
	Flushes     int
	FlushErr    error
}

func NewMockMetrics() *MockMetrics {
	return &MockMetrics{
		Files:   make(map[string]int),
		Entries: make(map[string]int),
		Rows:    make(map[string]int),
	}
}

func (m *MockMetrics) IncFiles(status string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Files[status]++
}

func (m *MockMetrics) IncEntries(kind string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Entries[kind]++
}

func (m *MockMetrics) SetRowsWritten(report string, count int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Rows[report] = count
}

func (m *MockMetrics) ObserveStageDuration(stage string, _ time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Stages = append(m.Stages, stage)
}

func (m *MockMetrics) IncCacheHits() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.CacheHits++
}

func (m *MockMetrics) IncCacheMisses() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.CacheMisses++
}

func (m *MockMetrics) Flush() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Flushes++
	return m.FlushErr
}

// MockCache implements providers.CacheProviderInterface.
type MockCache struct {
	mu   sync.Mutex
	Data map[string][]byte
}

func NewMockCache() *MockCache {
	return &MockCache{Data: make(map[string][]byte)}
}

func (m *MockCache) Get(key string) ([]byte, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	val, ok := m.Data[key]
	return val, ok
}

func (m *MockCache) Set(key string, value []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Data[key] = value
}

// MockCompressor implements interfaces.CompressorInterface with injectable behavior.
type MockCompressor struct {
	CompressFn   func([]byte) ([]byte, error)
	DecompressFn func([]byte) ([]byte, error)
}

func (m *MockCompressor) Compress(val []byte) ([]byte, error) {
	if m.CompressFn != nil {
		return m.CompressFn(val)
	}
	// Default: return as-is (identity)
	out := make([]byte, len(val))
	copy(out, val)
	return out, nil
}

func (m *MockCompressor) Decompress(val []byte) ([]byte, error) {
	if m.DecompressFn != nil {
		return m.DecompressFn(val)
	}
	out := make([]byte, len(val))
	copy(out, val)
	return out, nil
}

func (m *MockCompressor) Close() {}

// MockLoader implements interfaces.LoaderInterface from an in-memory map.
type MockLoader struct {
	mu     sync.Mutex
	Files  map[string][]models.TimelineObject
	Errors map[string]error
	Calls  []string
	Delay  func(path string)
}

func (m *MockLoader) Load(path string) ([]models.TimelineObject, error) {
	if m.Delay != nil {
		m.Delay(path)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Calls = append(m.Calls, path)
	if err, ok := m.Errors[path]; ok {
		return nil, err
	}
	return m.Files[path], nil
}
