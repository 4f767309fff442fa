package testutil

import (
	"sync"

	"github.com/backupify/cassava/types"
)

// TestMetricsCollector is a types.MetricsCollector that tracks calls per
// statement kind for assertion in tests.
type TestMetricsCollector struct {
	mu sync.RWMutex

	StatementTotal    map[types.StatementKind]int64
	StatementErrors   map[types.StatementKind]int64
	StatementDuration map[types.StatementKind][]float64
	AsyncTotal        map[types.StatementKind]int64
}

// Compile-time assertion that TestMetricsCollector implements types.MetricsCollector.
var _ types.MetricsCollector = (*TestMetricsCollector)(nil)

// NewTestMetricsCollector creates a new test metrics collector.
func NewTestMetricsCollector() *TestMetricsCollector {
	return &TestMetricsCollector{
		StatementTotal:    make(map[types.StatementKind]int64),
		StatementErrors:   make(map[types.StatementKind]int64),
		StatementDuration: make(map[types.StatementKind][]float64),
		AsyncTotal:        make(map[types.StatementKind]int64),
	}
}

func (m *TestMetricsCollector) IncStatementTotal(kind types.StatementKind) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.StatementTotal[kind]++
}

func (m *TestMetricsCollector) IncStatementError(kind types.StatementKind) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.StatementErrors[kind]++
}

func (m *TestMetricsCollector) ObserveStatementDuration(kind types.StatementKind, seconds float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.StatementDuration[kind] = append(m.StatementDuration[kind], seconds)
}

func (m *TestMetricsCollector) IncAsyncStatementTotal(kind types.StatementKind) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.AsyncTotal[kind]++
}

// Total returns the number of synchronous executions of kind.
func (m *TestMetricsCollector) Total(kind types.StatementKind) int64 {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.StatementTotal[kind]
}

// Errors returns the number of failed executions of kind.
func (m *TestMetricsCollector) Errors(kind types.StatementKind) int64 {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.StatementErrors[kind]
}

// Durations returns the observed durations of kind.
func (m *TestMetricsCollector) Durations(kind types.StatementKind) []float64 {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return append([]float64(nil), m.StatementDuration[kind]...)
}

// Async returns the number of asynchronous executions of kind.
func (m *TestMetricsCollector) Async(kind types.StatementKind) int64 {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.AsyncTotal[kind]
}
