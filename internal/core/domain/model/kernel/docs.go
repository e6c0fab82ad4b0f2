// Package kernel holds the primitives shared by the verification and order
// aggregates: UUID identifiers, the SystemActor used by scheduled jobs, and
// Revision, the version counter behind optimistic locking.
package kernel
