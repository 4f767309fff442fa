// Package metrics provides internal metrics utilities for cassava.
package metrics

import "github.com/backupify/cassava/types"

// NopMetrics is a no-op metrics collector that discards all metrics.
//
// This is used as the default metrics collector when no collector is configured,
// avoiding nil checks throughout the codebase.
type NopMetrics struct{}

// Compile-time assertion that NopMetrics implements types.MetricsCollector.
var _ types.MetricsCollector = (*NopMetrics)(nil)

// NewNopMetrics creates a new no-op metrics collector.
//
// Returns:
//   - *NopMetrics: A collector that discards all metrics
func NewNopMetrics() *NopMetrics {
	return &NopMetrics{}
}

// IncStatementTotal discards the metric.
func (m *NopMetrics) IncStatementTotal(_ types.StatementKind) {}

// IncStatementError discards the metric.
func (m *NopMetrics) IncStatementError(_ types.StatementKind) {}

// ObserveStatementDuration discards the metric.
func (m *NopMetrics) ObserveStatementDuration(_ types.StatementKind, _ float64) {}

// IncAsyncStatementTotal discards the metric.
func (m *NopMetrics) IncAsyncStatementTotal(_ types.StatementKind) {}
