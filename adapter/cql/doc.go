// Package cql defines the driver-facing interfaces and value types of cassava.
//
// A Session prepares and executes statements; adapters for gocql v1
// (adapter/cql/v1) and the Apache gocql v2 driver (adapter/cql/v2) implement it.
// Results come back as a ResultSet of Row maps keyed by column name,
// synchronously or through a Future.
//
// # Options
//
// Options carries the bind arguments of an execution together with the
// driver settings cassava forwards (consistency, paging, timestamp and
// idempotence). Unset fields leave the session defaults untouched.
package cql
