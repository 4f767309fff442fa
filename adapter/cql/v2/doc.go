// Package v2 provides an adapter for gocql v2 (github.com/apache/cassandra-gocql-driver).
//
// # Usage
//
//	cluster := gocql.NewCluster("127.0.0.1", "127.0.0.2")
//	cluster.Keyspace = "my_keyspace"
//
//	gocqlSession, err := cluster.CreateSession()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	client, err := cassava.NewClient(v2.NewSession(gocqlSession))
//
// Execution uses the driver's context-aware IterContext, so cancelling the
// context passed to Execute aborts the request.
package v2
