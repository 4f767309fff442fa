// Package types provides shared types and error definitions for the cassava library.
//
// This is a leaf package with zero cassava imports to prevent import cycles.
// All packages in cassava can safely import this package.
//
// # Errors
//
// Sentinel errors report misuse of the statement builder and client:
//
//   - ErrNilSession: A nil session was provided
//   - ErrMissingMainClause: A statement has no select or delete clause
//   - ErrCountWithoutSelect: Count was called without a select clause
//   - ErrTimestampWithoutDelete: UsingTimestamp was called without a delete clause
//   - ErrInvalidWhere: Where received an unsupported condition
//   - ErrInvalidUsingValue: A ttl or timestamp value is not an integer
//   - ErrEmptyInsert: An insert has no columns
//
// Errors returned by the database driver are never wrapped or replaced.
//
// # Interfaces
//
// Logger and MetricsCollector are the observability hooks accepted by the client.
// Both have no-op defaults, so neither needs to be configured.
package types
