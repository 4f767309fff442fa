package types

// MetricsCollector defines methods for collecting statement execution metrics.
//
// Implementations should be thread-safe as methods may be called concurrently.
//
// Example usage with VictoriaMetrics (via contrib/metrics/vm):
//
//	import vmmetrics "github.com/backupify/cassava/contrib/metrics/vm"
//
//	collector := vmmetrics.New(vmmetrics.WithPrefix("myapp"))
//	client, _ := cassava.NewClient(session, cassava.WithMetrics(collector))
//
//	// Expose metrics via HTTP
//	http.HandleFunc("/metrics", collector.Handler)
type MetricsCollector interface {
	// IncStatementTotal increments the synchronous statement counter.
	IncStatementTotal(kind StatementKind)

	// IncStatementError increments the synchronous statement error counter.
	IncStatementError(kind StatementKind)

	// ObserveStatementDuration records a synchronous execution duration in seconds.
	ObserveStatementDuration(kind StatementKind, seconds float64)

	// IncAsyncStatementTotal increments the asynchronous statement counter.
	// Completion of asynchronous statements is not observed.
	IncAsyncStatementTotal(kind StatementKind)
}
