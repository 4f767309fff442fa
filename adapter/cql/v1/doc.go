// Package v1 provides an adapter for gocql v1.x to work with cassava.
//
// # Usage
//
// Create a gocql session and wrap it with the v1 adapter:
//
//	cluster := gocql.NewCluster("127.0.0.1", "127.0.0.2")
//	cluster.Keyspace = "my_keyspace"
//	cluster.Consistency = gocql.Quorum
//
//	gocqlSession, err := cluster.CreateSession()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer gocqlSession.Close()
//
//	client, err := cassava.NewClient(v1.NewSession(gocqlSession))
//
// Connection settings can also be loaded from YAML with [LoadConfig]
// and turned into a *gocql.ClusterConfig with [Config.NewCluster].
//
// # Thread Safety
//
// All adapter types are safe for concurrent use, matching gocql's thread safety guarantees.
package v1
