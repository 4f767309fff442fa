package testutil

import (
	"context"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/backupify/cassava/adapter/cql"
)

// Execution is one statement run by a RecordingSession.
type Execution struct {
	Statement string
	Options   cql.Options
	Async     bool
}

// RecordingSession is a cql.Session that records prepares and executions
// and answers with configured rows or errors.
type RecordingSession struct {
	mu         sync.Mutex
	prepared   []string
	executions []Execution
	closed     bool

	// PrepareErr is returned by every Prepare when set.
	PrepareErr error
	// ExecErr is returned by every execution when set.
	ExecErr error
	// Rows is the result of every successful execution.
	Rows []cql.Row
	// PageState is attached to every successful result.
	PageState []byte
	// Delay is waited before each execution returns, honoring the context.
	Delay time.Duration
	// OnExecute, when set, computes the result instead of Rows and ExecErr.
	OnExecute func(stmt string, opts cql.Options) (*cql.ResultSet, error)
}

// Compile-time assertion that RecordingSession implements cql.Session.
var _ cql.Session = (*RecordingSession)(nil)

// NewRecordingSession creates a session that returns no rows.
func NewRecordingSession() *RecordingSession {
	return &RecordingSession{}
}

// Prepare records stmt and returns a prepared handle for it.
func (s *RecordingSession) Prepare(_ context.Context, stmt string) (cql.Statement, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.prepared = append(s.prepared, stmt)
	if s.PrepareErr != nil {
		return nil, s.PrepareErr
	}
	if strings.TrimSpace(stmt) == "" {
		return nil, cql.ErrEmptyStatement
	}

	return cql.NewPreparedStatement(stmt), nil
}

// Execute records the execution and returns the configured result.
func (s *RecordingSession) Execute(ctx context.Context, stmt cql.Statement, opts cql.Options) (*cql.ResultSet, error) {
	s.record(stmt, opts, false)

	return s.result(ctx, stmt, opts)
}

// ExecuteAsync records the execution and resolves the future in the background.
func (s *RecordingSession) ExecuteAsync(ctx context.Context, stmt cql.Statement, opts cql.Options) *cql.Future {
	s.record(stmt, opts, true)

	return cql.Go(ctx, func(ctx context.Context) (*cql.ResultSet, error) {
		return s.result(ctx, stmt, opts)
	})
}

// Close marks the session closed.
func (s *RecordingSession) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.closed = true
}

// Closed reports whether Close was called.
func (s *RecordingSession) Closed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.closed
}

// Prepared returns the prepared statement texts in call order.
func (s *RecordingSession) Prepared() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	return slices.Clone(s.prepared)
}

// Executions returns the recorded executions in call order.
func (s *RecordingSession) Executions() []Execution {
	s.mu.Lock()
	defer s.mu.Unlock()

	return slices.Clone(s.executions)
}

// LastExecution returns the most recent execution.
func (s *RecordingSession) LastExecution() (Execution, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.executions) == 0 {
		return Execution{}, false
	}

	return s.executions[len(s.executions)-1], true
}

func (s *RecordingSession) record(stmt cql.Statement, opts cql.Options, async bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.executions = append(s.executions, Execution{
		Statement: stmt.CQL(),
		Options:   opts,
		Async:     async,
	})
}

func (s *RecordingSession) result(ctx context.Context, stmt cql.Statement, opts cql.Options) (*cql.ResultSet, error) {
	if s.Delay > 0 {
		select {
		case <-time.After(s.Delay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	if s.OnExecute != nil {
		return s.OnExecute(stmt.CQL(), opts)
	}
	if s.ExecErr != nil {
		return nil, s.ExecErr
	}

	return cql.NewResultSet(slices.Clone(s.Rows), s.PageState), nil
}
