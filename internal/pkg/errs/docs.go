// Package errs provides the error taxonomy shared by the lifecycle engine.
//
// General validation errors:
//   - ValueIsRequiredError, ValueIsInvalidError, ValueIsOutOfRangeError
//   - ObjectNotFoundError
//
// Lifecycle errors:
//   - InvalidTransitionError: the requested state is not a legal successor
//   - DocumentsIncompleteError: approval attempted with unapproved required documents
//   - ReviewerConflictError: another reviewer holds the application
//   - AlreadyAssignedError: the order already has a delivery person
//   - StaleWriteError: optimistic-lock mismatch, re-read and retry
//   - AuditWriteFailureError: the audit append failed and the transaction was rolled back
//
// Each error type has a sentinel (ErrX), a struct carrying the details, NewX
// constructors and an Unwrap method returning the sentinel, so callers classify
// with errors.Is and inspect details with errors.As.
package errs
