// Package cql defines the driver boundary consumed by cassava.
package cql

import (
	"context"
	"errors"
	"log/slog"
)

// Consistency represents the Cassandra consistency level.
// Values match gocql v1 and v2.
type Consistency uint16

// Common consistency levels matching gocql.
const (
	Any         Consistency = 0x00
	One         Consistency = 0x01
	Two         Consistency = 0x02
	Three       Consistency = 0x03
	Quorum      Consistency = 0x04
	All         Consistency = 0x05
	LocalQuorum Consistency = 0x06
	EachQuorum  Consistency = 0x07
	Serial      Consistency = 0x08
	LocalSerial Consistency = 0x09
	LocalOne    Consistency = 0x0A
)

var consistencyNames = map[Consistency]string{
	Any:         "ANY",
	One:         "ONE",
	Two:         "TWO",
	Three:       "THREE",
	Quorum:      "QUORUM",
	All:         "ALL",
	LocalQuorum: "LOCAL_QUORUM",
	EachQuorum:  "EACH_QUORUM",
	Serial:      "SERIAL",
	LocalSerial: "LOCAL_SERIAL",
	LocalOne:    "LOCAL_ONE",
}

// String returns the CQL name of the consistency level.
func (c Consistency) String() string {
	if name, ok := consistencyNames[c]; ok {
		return name
	}

	return "UNKNOWN"
}

// ErrEmptyStatement is returned by Prepare for blank statement text.
var ErrEmptyStatement = errors.New("cassava: statement text is empty")

// Session represents a CQL session from the underlying driver.
//
// This interface is implemented by adapters for gocql v1 and v2.
// Errors returned by a Session are the driver's own errors.
type Session interface {
	// Prepare returns a statement handle for stmt.
	//
	// Parameters:
	//   - ctx: Context for the preparation
	//   - stmt: CQL statement with ? placeholders
	//
	// Returns:
	//   - Statement: An opaque handle accepted by Execute and ExecuteAsync
	//   - error: Driver error, or ErrEmptyStatement
	Prepare(ctx context.Context, stmt string) (Statement, error)

	// Execute runs stmt and blocks until the driver returns.
	//
	// Parameters:
	//   - ctx: Context for the execution
	//   - stmt: Statement from Prepare, or a RawStatement
	//   - opts: Bind arguments and per-query driver options
	//
	// Returns:
	//   - *ResultSet: The rows of the first page
	//   - error: Driver error, unchanged
	Execute(ctx context.Context, stmt Statement, opts Options) (*ResultSet, error)

	// ExecuteAsync starts stmt and returns immediately.
	//
	// Errors are delivered through the returned Future.
	ExecuteAsync(ctx context.Context, stmt Statement, opts Options) *Future

	// Close terminates the session.
	Close()
}

// Statement is CQL text ready for execution.
type Statement interface {
	CQL() string
}

// RawStatement is a Statement that has not been through Prepare.
type RawStatement string

// CQL returns the statement text.
func (s RawStatement) CQL() string {
	return string(s)
}

// PreparedStatement is the handle returned by the gocql adapters.
//
// gocql prepares bound statements transparently on first execution and
// caches them per session, so the handle only carries the text.
type PreparedStatement struct {
	cql string
}

// NewPreparedStatement creates a handle for stmt.
func NewPreparedStatement(stmt string) *PreparedStatement {
	return &PreparedStatement{cql: stmt}
}

// CQL returns the statement text.
func (s *PreparedStatement) CQL() string {
	return s.cql
}

// Options carries bind arguments and per-query driver settings.
//
// Nil pointer fields and zero values leave the session defaults in place.
type Options struct {
	// Arguments are the bind values, in placeholder order.
	Arguments []any

	// Consistency overrides the session consistency.
	Consistency *Consistency

	// SerialConsistency sets the serial phase consistency of conditional statements.
	SerialConsistency *Consistency

	// PageSize, when positive, returns one page of at most PageSize rows
	// per execution. Zero fetches every page.
	PageSize int

	// PageState resumes paging from a previous ResultSet. Used with PageSize.
	PageState []byte

	// Timestamp sets the client-side write timestamp in microseconds.
	Timestamp *int64

	// Idempotent marks the statement as safe to retry.
	Idempotent bool
}

// LogValue implements slog.LogValuer.
func (o Options) LogValue() slog.Value {
	attrs := []slog.Attr{slog.Any("arguments", o.Arguments)}
	if o.Consistency != nil {
		attrs = append(attrs, slog.String("consistency", o.Consistency.String()))
	}
	if o.SerialConsistency != nil {
		attrs = append(attrs, slog.String("serial_consistency", o.SerialConsistency.String()))
	}
	if o.PageSize > 0 {
		attrs = append(attrs, slog.Int("page_size", o.PageSize))
	}
	if o.PageState != nil {
		attrs = append(attrs, slog.Int("page_state_bytes", len(o.PageState)))
	}
	if o.Timestamp != nil {
		attrs = append(attrs, slog.Int64("timestamp", *o.Timestamp))
	}
	if o.Idempotent {
		attrs = append(attrs, slog.Bool("idempotent", true))
	}

	return slog.GroupValue(attrs...)
}
