package cql

import (
	"iter"
	"strings"
	"time"
)

// Row maps column names to values, as produced by gocql's MapScan.
type Row map[string]any

// Get returns the value of column.
//
// Synthetic columns such as ttl(d) or writetime(d) are named by the server,
// so a case-insensitive match is tried when there is no exact one.
func (r Row) Get(column string) (any, bool) {
	if v, ok := r[column]; ok {
		return v, true
	}
	for name, v := range r {
		if strings.EqualFold(name, column) {
			return v, true
		}
	}

	return nil, false
}

// Int64 returns the value of column as an int64.
//
// It reports false when the column is absent, null, or not an integer.
func (r Row) Int64(column string) (int64, bool) {
	v, ok := r.Get(column)
	if !ok {
		return 0, false
	}

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
	case *int:
		if n != nil {
			return int64(*n), true
		}
	case *int32:
		if n != nil {
			return int64(*n), true
		}
	case *int64:
		if n != nil {
			return *n, true
		}
	case time.Duration:
		return int64(n), true
	}

	return 0, false
}

// ResultSet holds the rows of one page of a query result.
type ResultSet struct {
	rows      []Row
	pageState []byte
}

// NewResultSet creates a ResultSet from rows and the paging token of the next page.
func NewResultSet(rows []Row, pageState []byte) *ResultSet {
	return &ResultSet{rows: rows, pageState: pageState}
}

// Rows returns all rows. A nil ResultSet has none.
func (rs *ResultSet) Rows() []Row {
	if rs == nil {
		return nil
	}

	return rs.rows
}

// All returns an iterator over the rows.
func (rs *ResultSet) All() iter.Seq[Row] {
	return func(yield func(Row) bool) {
		for _, row := range rs.Rows() {
			if !yield(row) {
				return
			}
		}
	}
}

// Count returns the number of rows.
func (rs *ResultSet) Count() int {
	return len(rs.Rows())
}

// First returns the first row, reporting false when there are no rows.
func (rs *ResultSet) First() (Row, bool) {
	rows := rs.Rows()
	if len(rows) == 0 {
		return nil, false
	}

	return rows[0], true
}

// PageState returns the paging token for the next page, nil on the last page.
func (rs *ResultSet) PageState() []byte {
	if rs == nil {
		return nil
	}

	return rs.pageState
}
