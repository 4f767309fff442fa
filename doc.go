// Package cassava builds and executes CQL statements over a Cassandra driver.
//
// Statements are composed with an immutable fluent builder, rendered into
// parameterized CQL with bound values in placeholder order, and executed
// synchronously or asynchronously through a driver-neutral session.
//
// # Basic Usage
//
//	session := v1.NewSession(gocqlSession)
//
//	client, err := cassava.NewClient(session,
//	    cassava.WithLogger(slog.Default()),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	_, err = client.Insert(ctx, "events", map[string]any{
//	    "id":  "e1",
//	    "a":   1,
//	    "ttl": 3600,
//	})
//
//	rs, err := client.Select("events").
//	    Where(map[string]any{"id": "e1"}).
//	    Where(cassava.Range{Column: "a", Lower: 0}).
//	    Order("a", cassava.Desc).
//	    Limit(10).
//	    Execute(ctx)
//
//	for row := range rs.All() {
//	    fmt.Println(row["b"])
//	}
//
// # Statement Rendering
//
// Clauses always render in the same order regardless of call order:
// main (SELECT or DELETE), WHERE, ORDER BY, LIMIT, ALLOW FILTERING.
// Calling a clause method twice replaces the clause, except Where which
// appends a predicate joined with AND. Values never appear in the CQL
// text; each one is bound to a ? placeholder.
//
// # Error Handling
//
// Composition mistakes such as Count on a delete are recorded by the builder
// and returned by Statement and Execute. Driver failures are logged with the
// statement and options, then returned unchanged so errors.Is and errors.As
// see the driver's own error values.
//
// # Drivers
//
// Two adapters implement cql.Session:
//   - adapter/cql/v1 for github.com/gocql/gocql
//   - adapter/cql/v2 for github.com/apache/cassandra-gocql-driver/v2
//
// # Observability
//
// WithLogger accepts any slog-style logger, WithMetrics any
// types.MetricsCollector (see contrib/metrics/vm), and WithTracer an
// OpenTelemetry tracer. All default to no-ops.
package cassava
