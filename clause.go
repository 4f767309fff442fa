package cassava

import (
	"fmt"
	"reflect"
	"slices"
	"sort"
	"strconv"
	"strings"

	"github.com/backupify/cassava/types"
)

// Clause is one rendered piece of a statement.
//
// The set of clauses is closed: SelectClause, DeleteClause, WhereClause and Fragment.
type Clause interface {
	// CQL returns the clause text, with ? for every bound value.
	CQL() string

	// Args returns the bound values in placeholder order.
	Args() []any

	isClause()
}

// SelectClause renders SELECT <columns> FROM <table>.
type SelectClause struct {
	Table   string
	Columns []string // empty selects all columns
	Count   bool
}

// CQL renders the clause.
func (c SelectClause) CQL() string {
	if c.Count {
		return "SELECT COUNT(*) FROM " + c.Table
	}

	columns := "*"
	if len(c.Columns) > 0 {
		columns = strings.Join(c.Columns, ", ")
	}

	return "SELECT " + columns + " FROM " + c.Table
}

// Args returns nil; a select target binds nothing.
func (c SelectClause) Args() []any { return nil }

// WithCount returns the count-mode variant, discarding the column list.
func (c SelectClause) WithCount() SelectClause {
	return SelectClause{Table: c.Table, Count: true}
}

func (SelectClause) isClause() {}

// DeleteClause renders DELETE [<columns>] FROM <table> [USING TIMESTAMP <n>].
type DeleteClause struct {
	Table     string
	Columns   []string // empty deletes whole rows
	Timestamp *int64
}

// CQL renders the clause.
func (c DeleteClause) CQL() string {
	var b strings.Builder
	b.WriteString("DELETE ")
	if len(c.Columns) > 0 {
		b.WriteString(strings.Join(c.Columns, ", "))
		b.WriteString(" ")
	}
	b.WriteString("FROM ")
	b.WriteString(c.Table)
	if c.Timestamp != nil {
		b.WriteString(" USING TIMESTAMP ")
		b.WriteString(strconv.FormatInt(*c.Timestamp, 10))
	}

	return b.String()
}

// Args returns nil; a delete target binds nothing.
func (c DeleteClause) Args() []any { return nil }

func (DeleteClause) isClause() {}

// Fragment is literal clause text such as ORDER BY, LIMIT or ALLOW FILTERING.
type Fragment string

// CQL returns the fragment text.
func (f Fragment) CQL() string { return string(f) }

// Args returns nil.
func (f Fragment) Args() []any { return nil }

func (Fragment) isClause() {}

// Range is a two-bound where condition on one column.
//
// A present Lower renders Column > ?, a present Upper renders Column < ?.
// A bound is absent when it is nil or a nil pointer. At least one bound is required.
type Range struct {
	Column string
	Lower  any
	Upper  any
}

// WhereClause accumulates predicates joined with AND.
//
// The zero value has no predicates and renders as an empty string.
// WhereClause is immutable; Where returns a new value.
type WhereClause struct {
	predicates []string
	args       []any
}

// Where returns w extended with cond.
//
// cond is one of:
//   - string: a raw predicate; args are bound to its placeholders in order
//   - a map with string keys (map[string]any, map[string]string, ...): column = ?
//     per key, or column IN(?, ...) for slice values; keys are rendered in
//     lexical order and the map must not be empty
//   - Range: column > ? and/or column < ?
func (w WhereClause) Where(cond any, args ...any) (WhereClause, error) {
	next := WhereClause{
		predicates: slices.Clip(w.predicates),
		args:       slices.Clip(w.args),
	}

	switch c := cond.(type) {
	case string:
		if strings.TrimSpace(c) == "" {
			return w, fmt.Errorf("%w: empty predicate", types.ErrInvalidWhere)
		}
		next.predicates = append(next.predicates, c)
		next.args = append(next.args, args...)

	case Range:
		if c.Column == "" {
			return w, fmt.Errorf("%w: range without column", types.ErrInvalidWhere)
		}
		if len(args) > 0 {
			return w, fmt.Errorf("%w: range conditions take no extra arguments", types.ErrInvalidWhere)
		}
		lower, upper := !isAbsent(c.Lower), !isAbsent(c.Upper)
		if !lower && !upper {
			return w, fmt.Errorf("%w: range without bounds", types.ErrInvalidWhere)
		}
		if lower {
			next.predicates = append(next.predicates, c.Column+" > ?")
			next.args = append(next.args, c.Lower)
		}
		if upper {
			next.predicates = append(next.predicates, c.Column+" < ?")
			next.args = append(next.args, c.Upper)
		}

	default:
		m, ok := columnValues(cond)
		if !ok {
			return w, fmt.Errorf("%w: got %T", types.ErrInvalidWhere, cond)
		}
		if len(m) == 0 {
			return w, fmt.Errorf("%w: empty condition map", types.ErrInvalidWhere)
		}
		if len(args) > 0 {
			return w, fmt.Errorf("%w: map conditions take no extra arguments", types.ErrInvalidWhere)
		}

		keys := make([]string, 0, len(m))
		for k := range m {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		for _, column := range keys {
			value := m[column]
			if values, ok := listValues(value); ok {
				next.predicates = append(next.predicates, column+" IN("+placeholders(len(values), ", ")+")")
				next.args = append(next.args, values...)
			} else {
				next.predicates = append(next.predicates, column+" = ?")
				next.args = append(next.args, value)
			}
		}
	}

	return next, nil
}

// Predicates returns a copy of the accumulated predicates.
func (w WhereClause) Predicates() []string {
	return slices.Clone(w.predicates)
}

// CQL renders WHERE p1 AND p2 ..., or "" when there are no predicates.
func (w WhereClause) CQL() string {
	if len(w.predicates) == 0 {
		return ""
	}

	return "WHERE " + strings.Join(w.predicates, " AND ")
}

// Args returns a copy of the bound values.
func (w WhereClause) Args() []any {
	return slices.Clone(w.args)
}

func (WhereClause) isClause() {}

// columnValues converts any map with string keys to map[string]any.
func columnValues(v any) (map[string]any, bool) {
	if m, ok := v.(map[string]any); ok {
		return m, true
	}

	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Map || rv.Type().Key().Kind() != reflect.String {
		return nil, false
	}

	m := make(map[string]any, rv.Len())
	iter := rv.MapRange()
	for iter.Next() {
		m[iter.Key().String()] = iter.Value().Interface()
	}

	return m, true
}

// isAbsent reports whether a range bound is nil or a nil pointer.
func isAbsent(v any) bool {
	if v == nil {
		return true
	}

	rv := reflect.ValueOf(v)

	return rv.Kind() == reflect.Pointer && rv.IsNil()
}

// listValues expands slice and array values for IN conditions.
// []byte is a blob value, not a list.
func listValues(v any) ([]any, bool) {
	switch list := v.(type) {
	case nil, []byte:
		return nil, false
	case []any:
		return list, true
	}

	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, false
	}

	values := make([]any, rv.Len())
	for i := range values {
		values[i] = rv.Index(i).Interface()
	}

	return values, true
}

func placeholders(n int, sep string) string {
	if n == 0 {
		return ""
	}

	return strings.Repeat("?"+sep, n-1) + "?"
}
