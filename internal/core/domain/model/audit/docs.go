// Package audit holds the append-only audit trail shared by the verification
// and order state machines.
//
// Aggregates never write the trail themselves. Each mutating operation records
// an Entry in the aggregate's Journal, and the command handler appends the
// pending entries through ports.AuditLog inside the same transaction as the
// conditional state write. Nothing in the domain reads the trail back;
// Replay exists so the trail can be checked against current state.
package audit
