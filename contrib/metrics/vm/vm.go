package vm

import (
	"fmt"
	"io"
	"net/http"

	"github.com/VictoriaMetrics/metrics"

	"github.com/backupify/cassava/types"
)

// Option configures a Collector.
type Option func(*Collector)

// WithPrefix sets the metric name prefix.
//
// Default: "cassava"
//
// Parameters:
//   - prefix: The prefix to use for all metric names
//
// Returns:
//   - Option: A configuration option
func WithPrefix(prefix string) Option {
	return func(c *Collector) {
		c.prefix = prefix
	}
}

// WithMetricsSet sets the metrics set to use.
//
// If provided, the collector will register metrics with this set instead of
// creating a new one. The caller is responsible for exposing this set
// (e.g., via metrics.WritePrometheus or a custom handler).
//
// Parameters:
//   - set: The metrics set to use
//
// Returns:
//   - Option: A configuration option
func WithMetricsSet(set *metrics.Set) Option {
	return func(c *Collector) {
		c.set = set
	}
}

// kinds lists every statement kind that gets its own series.
var kinds = []types.StatementKind{
	types.KindSelect,
	types.KindInsert,
	types.KindUpdate,
	types.KindDelete,
	types.KindOther,
}

// kindMetrics holds the pre-created series of one statement kind.
type kindMetrics struct {
	total      *metrics.Counter
	errors     *metrics.Counter
	duration   *metrics.Histogram
	asyncTotal *metrics.Counter
}

// Collector implements types.MetricsCollector using VictoriaMetrics.
//
// All metrics are pre-created at initialization time for optimal performance.
// Thread-safe for concurrent use.
type Collector struct {
	set    *metrics.Set
	prefix string

	byKind map[types.StatementKind]*kindMetrics
}

// Compile-time assertion that Collector implements types.MetricsCollector.
var _ types.MetricsCollector = (*Collector)(nil)

// New creates a new VictoriaMetrics-based metrics collector.
//
// The collector creates its own metrics.Set and registers it globally.
// All metrics are pre-created at initialization for optimal performance.
//
// Parameters:
//   - opts: Configuration options (e.g., WithPrefix)
//
// Returns:
//   - *Collector: A new metrics collector ready for use
//
// Example:
//
//	collector := vm.New(vm.WithPrefix("myapp"))
//	client, _ := cassava.NewClient(session,
//	    cassava.WithMetrics(collector),
//	)
func New(opts ...Option) *Collector {
	c := &Collector{
		prefix: "cassava",
	}

	for _, opt := range opts {
		opt(c)
	}

	// If no set is provided, create a new one and register it globally.
	// If a set is provided, we assume the caller manages it.
	if c.set == nil {
		c.set = metrics.NewSet()
		metrics.RegisterSet(c.set)
	}

	c.initMetrics()

	return c
}

// initMetrics pre-creates all metrics with the configured prefix.
func (c *Collector) initMetrics() {
	p := c.prefix
	c.byKind = make(map[types.StatementKind]*kindMetrics, len(kinds))

	for _, kind := range kinds {
		c.byKind[kind] = &kindMetrics{
			total:      c.set.NewCounter(fmt.Sprintf(`%s_statements_total{kind="%s"}`, p, kind)),
			errors:     c.set.NewCounter(fmt.Sprintf(`%s_statement_errors_total{kind="%s"}`, p, kind)),
			duration:   c.set.NewHistogram(fmt.Sprintf(`%s_statement_duration_seconds{kind="%s"}`, p, kind)),
			asyncTotal: c.set.NewCounter(fmt.Sprintf(`%s_async_statements_total{kind="%s"}`, p, kind)),
		}
	}
}

// Set returns the underlying metrics set.
func (c *Collector) Set() *metrics.Set {
	return c.set
}

// Handler returns an HTTP handler that exposes metrics in Prometheus format.
//
// Example:
//
//	http.HandleFunc("/metrics", collector.Handler)
func (c *Collector) Handler(w http.ResponseWriter, _ *http.Request) {
	c.set.WritePrometheus(w)
}

// WritePrometheus writes all metrics in Prometheus format to the given writer.
//
// Parameters:
//   - w: The writer to write metrics to
func (c *Collector) WritePrometheus(w io.Writer) {
	c.set.WritePrometheus(w)
}

// IncStatementTotal increments the synchronous execution counter of kind.
func (c *Collector) IncStatementTotal(kind types.StatementKind) {
	c.metricsFor(kind).total.Inc()
}

// IncStatementError increments the failed execution counter of kind.
func (c *Collector) IncStatementError(kind types.StatementKind) {
	c.metricsFor(kind).errors.Inc()
}

// ObserveStatementDuration records an execution duration in seconds.
func (c *Collector) ObserveStatementDuration(kind types.StatementKind, seconds float64) {
	c.metricsFor(kind).duration.Update(seconds)
}

// IncAsyncStatementTotal increments the asynchronous execution counter of kind.
func (c *Collector) IncAsyncStatementTotal(kind types.StatementKind) {
	c.metricsFor(kind).asyncTotal.Inc()
}

// metricsFor falls back to the "other" series for unknown kinds.
func (c *Collector) metricsFor(kind types.StatementKind) *kindMetrics {
	if m, ok := c.byKind[kind]; ok {
		return m
	}

	return c.byKind[types.KindOther]
}
