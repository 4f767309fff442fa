package cassava

import (
	"context"
	"time"

	"github.com/backupify/cassava/adapter/cql"
	"github.com/backupify/cassava/internal/tracing"
	"github.com/backupify/cassava/types"
)

// Executor forwards statements to a session with logging, metrics and tracing.
//
// It is stateless beyond its collaborators and safe for concurrent use.
type Executor struct {
	session cql.Session
	logger  types.Logger
	metrics types.MetricsCollector
	tracer  tracing.Tracer
}

func newExecutor(session cql.Session, config *ClientConfig) *Executor {
	return &Executor{
		session: session,
		logger:  config.Logger,
		metrics: config.Metrics,
		tracer:  config.tracer,
	}
}

// Prepare passes stmt to the session's statement preparation.
func (e *Executor) Prepare(ctx context.Context, stmt string) (cql.Statement, error) {
	return e.session.Prepare(ctx, stmt)
}

// Execute runs stmt and blocks until the session returns.
//
// A failure is logged with the statement and options, and the session's
// error is returned as-is.
func (e *Executor) Execute(ctx context.Context, stmt cql.Statement, opts cql.Options) (*cql.ResultSet, error) {
	text := stmt.CQL()
	kind := types.KindOf(text)

	e.logger.Debug("executing statement", "statement", text, "options", opts)

	ctx, span := e.tracer.StartSpan(ctx, "cassava.execute")
	span.SetAttributes(tracing.StatementAttributes(text, len(opts.Arguments))...)

	start := time.Now()
	rs, err := e.session.Execute(ctx, stmt, opts)
	elapsed := time.Since(start)

	e.metrics.IncStatementTotal(kind)
	e.metrics.ObserveStatementDuration(kind, elapsed.Seconds())
	tracing.Finish(span, err)

	if err != nil {
		e.metrics.IncStatementError(kind)
		e.logger.Error("statement execution failed",
			"statement", text,
			"options", opts,
			"error", err,
		)

		return nil, err
	}

	e.logger.Debug("statement executed",
		"statement", text,
		"rows", rs.Count(),
		"duration", elapsed,
	)

	return rs, nil
}

// ExecuteAsync starts stmt and returns the session's future.
// Completion is not observed here; errors surface through the future.
func (e *Executor) ExecuteAsync(ctx context.Context, stmt cql.Statement, opts cql.Options) *cql.Future {
	text := stmt.CQL()

	e.logger.Debug("executing statement asynchronously", "statement", text, "options", opts)
	e.metrics.IncAsyncStatementTotal(types.KindOf(text))

	return e.session.ExecuteAsync(ctx, stmt, opts)
}
