// Package vm provides a VictoriaMetrics-based implementation of the MetricsCollector interface.
//
// This package uses github.com/VictoriaMetrics/metrics for lightweight,
// high-performance Prometheus-compatible metrics collection.
//
// # Basic Usage
//
// Create a collector with default prefix "cassava":
//
//	collector := vm.New()
//	client, _ := cassava.NewClient(session,
//	    cassava.WithMetrics(collector),
//	)
//
// # Custom Prefix
//
// Use WithPrefix to customize the metric name prefix:
//
//	collector := vm.New(vm.WithPrefix("myapp"))
//
// This produces metrics like:
//   - myapp_statements_total{kind="select"}
//   - myapp_statement_duration_seconds{kind="insert"}
//
// # Exposing Metrics
//
// Use the Handler method to expose metrics via HTTP:
//
//	http.HandleFunc("/metrics", collector.Handler)
//	http.ListenAndServe(":8080", nil)
//
// Or use WritePrometheus to write metrics to a custom writer:
//
//	collector.WritePrometheus(w)
//
// # Metrics Provided
//
// Every series is labeled with kind, one of select, insert, update, delete
// or other:
//   - {prefix}_statements_total{kind} - Counter of synchronous executions
//   - {prefix}_statement_errors_total{kind} - Counter of failed executions
//   - {prefix}_statement_duration_seconds{kind} - Histogram of execution latencies
//   - {prefix}_async_statements_total{kind} - Counter of started asynchronous executions
//
// # Performance Notes
//
// This implementation pre-creates all metrics at initialization time
// using the NewXXX pattern (instead of GetOrCreateXXX) for optimal
// performance in hot paths, as recommended by the VictoriaMetrics documentation.
//
// The metrics are registered with a dedicated Set that is registered
// globally, allowing standard Prometheus scraping.
package vm
