// Package types provides shared types and errors for the cassava library.
//
// This is a "leaf" package with no imports from other cassava packages,
// allowing it to be imported by any package without causing import cycles.
package types

import (
	"errors"
	"strings"
)

// Logger is the structured logging capability used by cassava.
//
// Arguments after the message are alternating key/value pairs.
// *slog.Logger satisfies this interface.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

// StatementKind classifies a CQL statement by its leading keyword.
type StatementKind string

const (
	KindSelect StatementKind = "select"
	KindInsert StatementKind = "insert"
	KindUpdate StatementKind = "update"
	KindDelete StatementKind = "delete"
	KindOther  StatementKind = "other"
)

// String returns the string representation of the StatementKind.
func (k StatementKind) String() string {
	return string(k)
}

// KindOf returns the StatementKind of a CQL statement.
func KindOf(cql string) StatementKind {
	keyword, _, _ := strings.Cut(strings.TrimSpace(cql), " ")
	switch strings.ToUpper(keyword) {
	case "SELECT":
		return KindSelect
	case "INSERT":
		return KindInsert
	case "UPDATE":
		return KindUpdate
	case "DELETE":
		return KindDelete
	default:
		return KindOther
	}
}

// Sentinel errors for programmer misuse. Driver errors are never translated
// into these; they reach the caller unchanged.
var (
	// ErrNilSession indicates that a nil session was provided.
	ErrNilSession = errors.New("cassava: session cannot be nil")

	// ErrMissingMainClause indicates a statement was rendered without a
	// select or delete clause.
	ErrMissingMainClause = errors.New("cassava: statement has no select or delete clause")

	// ErrCountWithoutSelect indicates Count was called on a builder whose
	// main clause is not a select.
	ErrCountWithoutSelect = errors.New("cassava: count requires a select clause")

	// ErrTimestampWithoutDelete indicates UsingTimestamp was called on a builder
	// whose main clause is not a delete.
	ErrTimestampWithoutDelete = errors.New("cassava: using timestamp requires a delete clause")

	// ErrInvalidWhere indicates Where was called with an unsupported condition shape.
	ErrInvalidWhere = errors.New("cassava: where expects a string, map[string]any or Range")

	// ErrInvalidUsingValue indicates a TTL or timestamp value that is not an integer.
	ErrInvalidUsingValue = errors.New("cassava: ttl and timestamp values must be integers")

	// ErrEmptyInsert indicates an insert with no columns left after removing
	// the ttl and timestamp pseudo-columns.
	ErrEmptyInsert = errors.New("cassava: insert requires at least one column")
)
