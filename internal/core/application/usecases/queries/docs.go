// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Aggregate reads go through the ports; listings and statistics run plain SQL
// against the read tables and return flat read models.
package queries
