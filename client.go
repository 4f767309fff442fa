package cassava

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/backupify/cassava/adapter/cql"
	"github.com/backupify/cassava/internal/logging"
	"github.com/backupify/cassava/internal/metrics"
	"github.com/backupify/cassava/internal/tracing"
	"github.com/backupify/cassava/types"
)

// Pseudo-columns of Insert data that become USING modifiers instead of values.
const (
	// TTLColumn holds the time-to-live in seconds (an integer or time.Duration).
	TTLColumn = "ttl"

	// TimestampColumn holds the write timestamp in microseconds (an integer or time.Time).
	TimestampColumn = "optional_timestamp"
)

// Client builds and executes CQL statements against one session.
//
// # Thread Safety
//
// Client is safe for concurrent use from multiple goroutines. It holds no
// mutable state; the session is only ever invoked.
//
// # Lifecycle
//
// The caller owns the session: create it before NewClient and close it
// after the client is no longer used.
type Client struct {
	executor *Executor
}

// NewClient creates a new client over session.
//
// Parameters:
//   - session: CQL session (required), e.g. v1.NewSession(gocqlSession)
//   - opts: Optional configuration options
//
// Returns:
//   - *Client: A new client
//   - error: ErrNilSession if session is nil
func NewClient(session cql.Session, opts ...Option) (*Client, error) {
	if session == nil {
		return nil, types.ErrNilSession
	}

	config := DefaultConfig()
	for _, opt := range opts {
		opt(config)
	}

	// Ensure collaborators are never nil
	if config.Logger == nil {
		config.Logger = logging.NewNopLogger()
	}
	if config.Metrics == nil {
		config.Metrics = metrics.NewNopMetrics()
	}
	if config.tracer == nil {
		config.tracer = tracing.NopTracer{}
	}

	return &Client{executor: newExecutor(session, config)}, nil
}

// Executor returns the executor shared by all statements of the client.
func (c *Client) Executor() *Executor {
	return c.executor
}

// Select starts a SELECT statement. No columns selects all of them.
func (c *Client) Select(table string, columns ...string) *StatementBuilder {
	return newStatementBuilder(c.executor).Select(table, columns...)
}

// Delete starts a DELETE statement. No columns deletes whole rows.
func (c *Client) Delete(table string, columns ...string) *StatementBuilder {
	return newStatementBuilder(c.executor).Delete(table, columns...)
}

// Insert writes one row and blocks until the driver returns.
//
// Every key of data is a column, except TTLColumn and TimestampColumn which
// become USING TTL and USING TIMESTAMP. Columns are rendered in lexical order
// with their values bound in the same order. With IfNotExists the result
// holds the [applied] row.
func (c *Client) Insert(ctx context.Context, table string, data map[string]any, opts ...ExecOption) (*cql.ResultSet, error) {
	stmt, options, err := c.prepareInsert(ctx, table, data, opts)
	if err != nil {
		return nil, err
	}

	return c.executor.Execute(ctx, stmt, options)
}

// InsertAsync is the non-blocking form of Insert.
// Composition and preparation errors are delivered through the future.
func (c *Client) InsertAsync(ctx context.Context, table string, data map[string]any, opts ...ExecOption) *cql.Future {
	stmt, options, err := c.prepareInsert(ctx, table, data, opts)
	if err != nil {
		return cql.Resolved(nil, err)
	}

	return c.executor.ExecuteAsync(ctx, stmt, options)
}

// SelectTTL returns the remaining TTL in seconds of column in the first row
// matching where, and false when there is no row or no TTL.
// An empty where is ErrInvalidWhere.
func (c *Client) SelectTTL(ctx context.Context, table, column string, where map[string]any, opts ...ExecOption) (int64, bool, error) {
	return c.selectCellValue(ctx, c.selectTTLStatement(table, column, where), "ttl("+column+")", opts)
}

// SelectWritetime returns the write timestamp in microseconds of column in
// the first row matching where, and false when there is no row or value.
func (c *Client) SelectWritetime(ctx context.Context, table, column string, where map[string]any, opts ...ExecOption) (int64, bool, error) {
	return c.selectCellValue(ctx, c.selectWritetimeStatement(table, column, where), "writetime("+column+")", opts)
}

// Execute runs a statement the caller has already built.
// Bind values are passed with WithArguments.
func (c *Client) Execute(ctx context.Context, stmt cql.Statement, opts ...ExecOption) (*cql.ResultSet, error) {
	return c.executor.Execute(ctx, stmt, newExecConfig(opts).options)
}

// ExecuteAsync is the non-blocking form of Execute.
func (c *Client) ExecuteAsync(ctx context.Context, stmt cql.Statement, opts ...ExecOption) *cql.Future {
	return c.executor.ExecuteAsync(ctx, stmt, newExecConfig(opts).options)
}

func (c *Client) selectTTLStatement(table, column string, where map[string]any) *StatementBuilder {
	return c.Select(table, "ttl("+column+")").Where(where)
}

func (c *Client) selectWritetimeStatement(table, column string, where map[string]any) *StatementBuilder {
	return c.Select(table, "WRITETIME("+column+")").Where(where)
}

func (c *Client) selectCellValue(ctx context.Context, b *StatementBuilder, resultColumn string, opts []ExecOption) (int64, bool, error) {
	rs, err := b.Execute(ctx, opts...)
	if err != nil {
		return 0, false, err
	}

	row, ok := rs.First()
	if !ok {
		return 0, false, nil
	}

	// Drivers decode a null cell as zero
	v, ok := row.Int64(resultColumn)
	if !ok || v == 0 {
		return 0, false, nil
	}

	return v, true, nil
}

func (c *Client) prepareInsert(ctx context.Context, table string, data map[string]any, opts []ExecOption) (cql.Statement, cql.Options, error) {
	cfg := newExecConfig(opts)

	text, args, err := insertStatement(table, data, cfg.ifNotExists)
	if err != nil {
		return nil, cql.Options{}, err
	}

	stmt, err := c.executor.Prepare(ctx, text)
	if err != nil {
		return nil, cql.Options{}, err
	}

	options := cfg.options
	options.Arguments = args

	return stmt, options, nil
}

// insertStatement renders
// INSERT INTO <table> (<cols>) VALUES (<?s>) [IF NOT EXISTS] [USING TTL <n> [AND TIMESTAMP <m>]].
func insertStatement(table string, data map[string]any, ifNotExists bool) (string, []any, error) {
	columns := make([]string, 0, len(data))
	for column := range data {
		if column != TTLColumn && column != TimestampColumn {
			columns = append(columns, column)
		}
	}
	if len(columns) == 0 {
		return "", nil, types.ErrEmptyInsert
	}
	sort.Strings(columns)

	args := make([]any, len(columns))
	for i, column := range columns {
		args[i] = data[column]
	}

	var b strings.Builder
	b.WriteString("INSERT INTO ")
	b.WriteString(table)
	b.WriteString(" (")
	b.WriteString(strings.Join(columns, ","))
	b.WriteString(") VALUES (")
	b.WriteString(placeholders(len(columns), ","))
	b.WriteString(")")

	if ifNotExists {
		b.WriteString(" IF NOT EXISTS")
	}

	var using []string
	if v, ok := data[TTLColumn]; ok {
		ttl, err := ttlSeconds(v)
		if err != nil {
			return "", nil, err
		}
		using = append(using, "TTL "+strconv.FormatInt(ttl, 10))
	}
	if v, ok := data[TimestampColumn]; ok {
		ts, err := timestampMicros(v)
		if err != nil {
			return "", nil, err
		}
		using = append(using, "TIMESTAMP "+strconv.FormatInt(ts, 10))
	}
	if len(using) > 0 {
		b.WriteString(" USING ")
		b.WriteString(strings.Join(using, " AND "))
	}

	return b.String(), args, nil
}

func ttlSeconds(v any) (int64, error) {
	if d, ok := v.(time.Duration); ok {
		return int64(d / time.Second), nil
	}

	n, ok := integer(v)
	if !ok {
		return 0, fmt.Errorf("%w: %s is %T", types.ErrInvalidUsingValue, TTLColumn, v)
	}

	return n, nil
}

func timestampMicros(v any) (int64, error) {
	if t, ok := v.(time.Time); ok {
		return t.UnixMicro(), nil
	}

	n, ok := integer(v)
	if !ok {
		return 0, fmt.Errorf("%w: %s is %T", types.ErrInvalidUsingValue, TimestampColumn, v)
	}

	return n, nil
}

func integer(v any) (int64, bool) {
	switch n := v.(type) {
	case int:
		return int64(n), true
	case int8:
		return int64(n), true
	case int16:
		return int64(n), true
	case int32:
		return int64(n), true
	case int64:
		return n, true
	case uint8:
		return int64(n), true
	case uint16:
		return int64(n), true
	case uint32:
		return int64(n), true
	default:
		return 0, false
	}
}
