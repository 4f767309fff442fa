// Package v2 provides an adapter for gocql v2 (github.com/apache/cassandra-gocql-driver).
package v2

import (
	"context"
	"strings"

	gocql "github.com/apache/cassandra-gocql-driver/v2"

	"github.com/backupify/cassava/adapter/cql"
)

// Session wraps a gocql v2 session.
type Session struct {
	session *gocql.Session
}

// Compile-time assertion that Session implements cql.Session.
var _ cql.Session = (*Session)(nil)

// NewSession creates a new v2 adapter from a gocql session.
//
// Parameters:
//   - session: A gocql.Session instance from the Apache driver
//
// Returns:
//   - *Session: An adapter implementing cql.Session
func NewSession(session *gocql.Session) *Session {
	return &Session{session: session}
}

// WrapSession is an alias for NewSession returning the cql.Session interface.
func WrapSession(session *gocql.Session) cql.Session {
	return NewSession(session)
}

// Prepare returns a handle for stmt. The driver prepares on first execution.
func (s *Session) Prepare(_ context.Context, stmt string) (cql.Statement, error) {
	if strings.TrimSpace(stmt) == "" {
		return nil, cql.ErrEmptyStatement
	}

	return cql.NewPreparedStatement(stmt), nil
}

// Execute runs stmt and reads its rows, one page when opts.PageSize is set.
func (s *Session) Execute(ctx context.Context, stmt cql.Statement, opts cql.Options) (*cql.ResultSet, error) {
	iter := s.query(stmt, opts).IterContext(ctx)

	maps, err := iter.SliceMap()
	if err != nil {
		_ = iter.Close()
		return nil, err
	}
	pageState := iter.PageState()
	if err := iter.Close(); err != nil {
		return nil, err
	}

	rows := make([]cql.Row, len(maps))
	for i, m := range maps {
		rows[i] = cql.Row(m)
	}

	return cql.NewResultSet(rows, pageState), nil
}

// ExecuteAsync runs Execute in a new goroutine.
func (s *Session) ExecuteAsync(ctx context.Context, stmt cql.Statement, opts cql.Options) *cql.Future {
	return cql.Go(ctx, func(ctx context.Context) (*cql.ResultSet, error) {
		return s.Execute(ctx, stmt, opts)
	})
}

// Close terminates the session.
func (s *Session) Close() {
	s.session.Close()
}

// UnwrapSession returns the underlying Apache driver session.
func UnwrapSession(s *Session) *gocql.Session {
	return s.session
}

// ToGocqlConsistency converts a cql.Consistency to gocql.Consistency.
//
// The v2 driver uses the same type for regular and serial consistency.
func ToGocqlConsistency(c cql.Consistency) gocql.Consistency {
	return gocql.Consistency(c)
}

func (s *Session) query(stmt cql.Statement, opts cql.Options) *gocql.Query {
	q := s.session.Query(stmt.CQL(), opts.Arguments...)

	if opts.Consistency != nil {
		q = q.Consistency(ToGocqlConsistency(*opts.Consistency))
	}
	if opts.SerialConsistency != nil {
		q = q.SerialConsistency(ToGocqlConsistency(*opts.SerialConsistency))
	}
	// Setting a page state, even nil, turns off the driver's automatic paging
	if opts.PageSize > 0 {
		q = q.PageSize(opts.PageSize).PageState(opts.PageState)
	}
	if opts.Timestamp != nil {
		q = q.WithTimestamp(*opts.Timestamp)
	}
	if opts.Idempotent {
		q = q.Idempotent(true)
	}

	return q
}
