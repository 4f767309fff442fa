// Package testutil provides testing utilities for the cassava project.
package testutil

import (
	"context"
	"fmt"
	"time"

	"github.com/gocql/gocql"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/cassandra"

	v1 "github.com/backupify/cassava/adapter/cql/v1"
)

// TestTableSchema is the schema of the table shared by integration tests,
// with %s for the table name.
const TestTableSchema = `CREATE TABLE IF NOT EXISTS %s (
	id text,
	a int,
	b text,
	c text,
	d int,
	PRIMARY KEY ((id), a, b)
)`

// CassandraCluster is a single-node Cassandra container with a session
// bound to a freshly created keyspace.
type CassandraCluster struct {
	Host    string
	Config  v1.Config
	Session *gocql.Session

	container *cassandra.CassandraContainer
}

// Close closes the session (does not terminate the container).
func (c *CassandraCluster) Close() {
	if c.Session != nil {
		c.Session.Close()
		c.Session = nil
	}
}

// Terminate closes the session and terminates the container.
func (c *CassandraCluster) Terminate(ctx context.Context) error {
	c.Close()

	if c.container != nil {
		return c.container.Terminate(ctx)
	}

	return nil
}

// CassandraOptions configures the Cassandra container.
type CassandraOptions struct {
	// Image is the Cassandra image to use. Defaults to "cassandra:4.1".
	Image string
	// Keyspace is the keyspace to create. Defaults to "cassava_test".
	Keyspace string
	// Timeout applies to both connect and query timeouts. Defaults to 60s.
	Timeout time.Duration
}

// DefaultCassandraOptions returns default options for the Cassandra container.
func DefaultCassandraOptions() CassandraOptions {
	return CassandraOptions{
		Image:    "cassandra:4.1",
		Keyspace: "cassava_test",
		Timeout:  60 * time.Second,
	}
}

// StartCassandra starts a Cassandra container, creates the keyspace and
// connects a session to it. The caller terminates the returned cluster.
//
// Parameters:
//   - ctx: Context for container operations
//   - opts: Optional configuration (nil uses defaults)
//
// Returns:
//   - *CassandraCluster: Cluster with connection details and session
//   - error: Error if the container or session fails to start
func StartCassandra(ctx context.Context, opts *CassandraOptions) (*CassandraCluster, error) {
	if opts == nil {
		defaultOpts := DefaultCassandraOptions()
		opts = &defaultOpts
	}

	container, err := cassandra.Run(ctx, opts.Image,
		testcontainers.WithEnv(map[string]string{
			"HEAP_NEWSIZE":     "128M",
			"MAX_HEAP_SIZE":    "512M",
			"CASSANDRA_SNITCH": "SimpleSnitch",
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to start Cassandra container: %w", err)
	}

	host, err := container.ConnectionHost(ctx)
	if err != nil {
		_ = container.Terminate(ctx)
		return nil, fmt.Errorf("failed to get connection host: %w", err)
	}

	cfg := v1.DefaultConfig()
	cfg.Hosts = []string{host}
	cfg.Consistency = "ONE"
	cfg.Timeout = opts.Timeout
	cfg.ConnectTimeout = opts.Timeout
	cfg.NumConns = 1
	cfg.DisableInitialHostLookup = true

	session, err := createSession(cfg, opts.Keyspace)
	if err != nil {
		_ = container.Terminate(ctx)
		return nil, fmt.Errorf("failed to create session: %w", err)
	}
	cfg.Keyspace = opts.Keyspace

	return &CassandraCluster{
		Host:      host,
		Config:    cfg,
		Session:   session,
		container: container,
	}, nil
}

// CreateTestTable creates a table with TestTableSchema named table.
func CreateTestTable(session *gocql.Session, table string) error {
	if err := session.Query(fmt.Sprintf(TestTableSchema, table)).Exec(); err != nil {
		return fmt.Errorf("failed to create table %s: %w", table, err)
	}

	return nil
}

// DropTable drops table if it exists.
func DropTable(session *gocql.Session, table string) error {
	return session.Query(fmt.Sprintf("DROP TABLE IF EXISTS %s", table)).Exec()
}

func createSession(cfg v1.Config, keyspace string) (*gocql.Session, error) {
	cfg.Keyspace = "system"
	cluster, err := cfg.NewCluster()
	if err != nil {
		return nil, err
	}

	// Wait for Cassandra to accept connections
	var session *gocql.Session
	for i := 0; i < 10; i++ {
		session, err = cluster.CreateSession()
		if err == nil {
			break
		}
		time.Sleep(3 * time.Second)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to connect to system keyspace: %w", err)
	}

	createKeyspaceQuery := fmt.Sprintf(`
		CREATE KEYSPACE IF NOT EXISTS %s
		WITH replication = {'class': 'SimpleStrategy', 'replication_factor': 1}
	`, keyspace)

	if err := session.Query(createKeyspaceQuery).Exec(); err != nil {
		session.Close()
		return nil, fmt.Errorf("failed to create keyspace: %w", err)
	}
	session.Close()

	cluster.Keyspace = keyspace

	return cluster.CreateSession()
}
