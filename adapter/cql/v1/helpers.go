package v1

import (
	"github.com/gocql/gocql"

	"github.com/backupify/cassava/adapter/cql"
)

// ToGocqlConsistency converts a cql.Consistency to gocql.Consistency.
func ToGocqlConsistency(c cql.Consistency) gocql.Consistency {
	return gocql.Consistency(c)
}

// FromGocqlConsistency converts a gocql.Consistency to cql.Consistency.
func FromGocqlConsistency(c gocql.Consistency) cql.Consistency {
	return cql.Consistency(c)
}

// ToGocqlSerialConsistency converts a cql.Consistency to gocql.SerialConsistency.
//
// Only Serial and LocalSerial are meaningful for conditional statements.
func ToGocqlSerialConsistency(c cql.Consistency) gocql.SerialConsistency {
	return gocql.SerialConsistency(c)
}

// UnwrapSession returns the underlying gocql.Session from a Session adapter.
//
// Example:
//
//	gocqlSession := v1.UnwrapSession(session)
//	keyspaceMeta, _ := gocqlSession.KeyspaceMetadata("my_keyspace")
func UnwrapSession(s *Session) *gocql.Session {
	return s.session
}
