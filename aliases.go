package cassava

import (
	"github.com/backupify/cassava/adapter/cql"
	"github.com/backupify/cassava/types"
)

// Re-exported so callers need only import cassava for common use.
type (
	Logger           = types.Logger
	MetricsCollector = types.MetricsCollector
	Session          = cql.Session
	Statement        = cql.Statement
	RawStatement     = cql.RawStatement
	ResultSet        = cql.ResultSet
	Row              = cql.Row
	Future           = cql.Future
	Consistency      = cql.Consistency
)

// Consistency levels.
const (
	Any         = cql.Any
	One         = cql.One
	Two         = cql.Two
	Three       = cql.Three
	Quorum      = cql.Quorum
	All         = cql.All
	LocalQuorum = cql.LocalQuorum
	EachQuorum  = cql.EachQuorum
	Serial      = cql.Serial
	LocalSerial = cql.LocalSerial
	LocalOne    = cql.LocalOne
)

// Errors returned by cassava.
var (
	ErrNilSession             = types.ErrNilSession
	ErrMissingMainClause      = types.ErrMissingMainClause
	ErrCountWithoutSelect     = types.ErrCountWithoutSelect
	ErrTimestampWithoutDelete = types.ErrTimestampWithoutDelete
	ErrInvalidWhere           = types.ErrInvalidWhere
	ErrInvalidUsingValue      = types.ErrInvalidUsingValue
	ErrEmptyInsert            = types.ErrEmptyInsert
)
