package cassava

import (
	"context"
	"slices"
	"strconv"
	"strings"

	"github.com/backupify/cassava/adapter/cql"
	"github.com/backupify/cassava/types"
)

// Direction is a clustering order direction.
type Direction string

const (
	Asc  Direction = "asc"
	Desc Direction = "desc"
)

// clauseKind indexes the clause slots. Declaration order is render order.
type clauseKind int

const (
	clauseMain clauseKind = iota
	clauseWhere
	clauseOrder
	clauseLimit
	clauseAllowFiltering
	numClauseKinds
)

// StatementBuilder composes a SELECT or DELETE statement.
//
// A StatementBuilder is immutable: every method returns a new builder and
// leaves the receiver untouched, so a partial statement can be shared and
// extended from multiple goroutines.
//
// Misuse such as Count without a select is recorded and returned by
// Statement, Execute and ExecuteAsync.
//
// Example:
//
//	rs, err := client.Select("events").
//	    Where(map[string]any{"id": id}).
//	    Order("a", cassava.Desc).
//	    Limit(2).
//	    Execute(ctx)
type StatementBuilder struct {
	executor *Executor
	clauses  [numClauseKinds]Clause
	err      error
}

func newStatementBuilder(executor *Executor) *StatementBuilder {
	return &StatementBuilder{executor: executor}
}

// Select replaces the main clause with SELECT <columns> FROM <table>.
// No columns selects all of them.
func (b *StatementBuilder) Select(table string, columns ...string) *StatementBuilder {
	return b.with(clauseMain, SelectClause{Table: table, Columns: slices.Clone(columns)})
}

// Delete replaces the main clause with DELETE <columns> FROM <table>.
// No columns deletes whole rows.
func (b *StatementBuilder) Delete(table string, columns ...string) *StatementBuilder {
	return b.with(clauseMain, DeleteClause{Table: table, Columns: slices.Clone(columns)})
}

// Where adds a predicate, joined to earlier ones with AND.
//
// cond is a raw string whose placeholders are bound to args, a non-empty
// string-keyed map of column values (slices become IN), or a Range.
func (b *StatementBuilder) Where(cond any, args ...any) *StatementBuilder {
	var where WhereClause
	if w, ok := b.clauses[clauseWhere].(WhereClause); ok {
		where = w
	}

	next, err := where.Where(cond, args...)
	if err != nil {
		return b.fail(err)
	}

	return b.with(clauseWhere, next)
}

// Order replaces the ordering with ORDER BY <column> <direction>.
// An empty direction is ascending.
func (b *StatementBuilder) Order(column string, direction Direction) *StatementBuilder {
	if direction == "" {
		direction = Asc
	}

	return b.with(clauseOrder, Fragment("ORDER BY "+column+" "+string(direction)))
}

// Limit replaces the row limit with LIMIT <n>.
func (b *StatementBuilder) Limit(n int) *StatementBuilder {
	return b.with(clauseLimit, Fragment("LIMIT "+strconv.Itoa(n)))
}

// AllowFiltering appends ALLOW FILTERING.
func (b *StatementBuilder) AllowFiltering() *StatementBuilder {
	return b.with(clauseAllowFiltering, Fragment("ALLOW FILTERING"))
}

// Count turns the select into SELECT COUNT(*), dropping its column list.
func (b *StatementBuilder) Count() *StatementBuilder {
	sel, ok := b.clauses[clauseMain].(SelectClause)
	if !ok {
		return b.fail(types.ErrCountWithoutSelect)
	}

	return b.with(clauseMain, sel.WithCount())
}

// UsingTimestamp adds USING TIMESTAMP <ts> to a delete.
func (b *StatementBuilder) UsingTimestamp(ts int64) *StatementBuilder {
	del, ok := b.clauses[clauseMain].(DeleteClause)
	if !ok {
		return b.fail(types.ErrTimestampWithoutDelete)
	}
	del.Timestamp = &ts

	return b.with(clauseMain, del)
}

// Err returns the first composition error, if any.
func (b *StatementBuilder) Err() error {
	return b.err
}

// Statement renders the clauses in fixed order separated by spaces.
// Bound values are not included; see Args.
func (b *StatementBuilder) Statement() (string, error) {
	if b.err != nil {
		return "", b.err
	}
	if b.clauses[clauseMain] == nil {
		return "", types.ErrMissingMainClause
	}

	parts := make([]string, 0, numClauseKinds)
	for _, c := range b.clauses {
		if c == nil {
			continue
		}
		if text := c.CQL(); text != "" {
			parts = append(parts, text)
		}
	}

	return strings.Join(parts, " "), nil
}

// Args returns the bound values in placeholder order.
func (b *StatementBuilder) Args() []any {
	var args []any
	for _, c := range b.clauses {
		if c != nil {
			args = append(args, c.Args()...)
		}
	}

	return args
}

// Execute renders, prepares and runs the statement, blocking until the
// driver returns. The builder's bound values replace any WithArguments.
func (b *StatementBuilder) Execute(ctx context.Context, opts ...ExecOption) (*cql.ResultSet, error) {
	stmt, options, err := b.prepare(ctx, opts)
	if err != nil {
		return nil, err
	}

	return b.executor.Execute(ctx, stmt, options)
}

// ExecuteAsync renders, prepares and starts the statement.
// Composition and preparation errors are delivered through the future.
func (b *StatementBuilder) ExecuteAsync(ctx context.Context, opts ...ExecOption) *cql.Future {
	stmt, options, err := b.prepare(ctx, opts)
	if err != nil {
		return cql.Resolved(nil, err)
	}

	return b.executor.ExecuteAsync(ctx, stmt, options)
}

func (b *StatementBuilder) prepare(ctx context.Context, opts []ExecOption) (cql.Statement, cql.Options, error) {
	text, err := b.Statement()
	if err != nil {
		return nil, cql.Options{}, err
	}

	stmt, err := b.executor.Prepare(ctx, text)
	if err != nil {
		return nil, cql.Options{}, err
	}

	options := newExecConfig(opts).options
	options.Arguments = b.Args()

	return stmt, options, nil
}

// with returns a copy of b with the slot for kind set to c.
func (b *StatementBuilder) with(kind clauseKind, c Clause) *StatementBuilder {
	next := *b
	next.clauses[kind] = c

	return &next
}

// fail returns a copy of b carrying err, keeping an earlier error.
func (b *StatementBuilder) fail(err error) *StatementBuilder {
	next := *b
	if next.err == nil {
		next.err = err
	}

	return &next
}
