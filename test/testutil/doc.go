// Package testutil provides test doubles and container helpers for cassava.
//
// # Test Doubles
//
//   - [RecordingSession]: cql.Session that records prepares and executions
//   - [TestMetricsCollector]: types.MetricsCollector counting per statement kind
//   - [RecordingLogger]: types.Logger keeping messages in memory
//
// # Usage
//
//	session := testutil.NewRecordingSession()
//	session.Rows = []cql.Row{{"id": "i", "a": 1}}
//
//	client, _ := cassava.NewClient(session)
//	_, _ = client.Select("test").Where(map[string]any{"id": "i"}).Execute(ctx)
//
//	exec, _ := session.LastExecution()
//	// exec.Statement == "SELECT * FROM test WHERE id = ?"
//
// # Integration Test Helpers
//
//   - StartCassandra: Starts a Cassandra test container (requires Docker)
//   - CreateTestTable: Creates a table with the shared test schema
package testutil
