package errs

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrInvalidTransition   = errors.New("invalid transition")
	ErrDocumentsIncomplete = errors.New("documents incomplete")
	ErrReviewerConflict    = errors.New("reviewer conflict")
	ErrAlreadyAssigned     = errors.New("already assigned")
	ErrStaleWrite          = errors.New("stale write")
	ErrAuditWriteFailure   = errors.New("audit write failure")
)

// InvalidTransitionError is returned when the requested state is not a legal
// successor of the current one. It is never retried automatically.
type InvalidTransitionError struct {
	Entity string
	From   string
	To     string
	Cause  error
}

func NewInvalidTransitionError(entity, from, to string) *InvalidTransitionError {
	return &InvalidTransitionError{Entity: entity, From: from, To: to}
}

func NewInvalidTransitionErrorWithCause(entity, from, to string, cause error) *InvalidTransitionError {
	return &InvalidTransitionError{Entity: entity, From: from, To: to, Cause: cause}
}

func (e *InvalidTransitionError) Error() string {
	msg := fmt.Sprintf("%s: %s cannot move from %s to %s", ErrInvalidTransition, e.Entity, e.From, e.To)
	if e.Cause != nil {
		return fmt.Sprintf("%s (cause: %v)", msg, e.Cause)
	}
	return msg
}

func (e *InvalidTransitionError) Unwrap() error {
	return ErrInvalidTransition
}

// DocumentsIncompleteError lists the required document types that are not approved yet.
type DocumentsIncompleteError struct {
	ApplicationID string
	Missing       []string
}

func NewDocumentsIncompleteError(applicationID string, missing []string) *DocumentsIncompleteError {
	return &DocumentsIncompleteError{ApplicationID: applicationID, Missing: missing}
}

func (e *DocumentsIncompleteError) Error() string {
	return fmt.Sprintf("%s: application %s has unapproved required documents: %s",
		ErrDocumentsIncomplete, e.ApplicationID, strings.Join(e.Missing, ", "))
}

func (e *DocumentsIncompleteError) Unwrap() error {
	return ErrDocumentsIncomplete
}

// ReviewerConflictError is returned when another reviewer holds the application.
type ReviewerConflictError struct {
	ApplicationID string
	HeldBy        string
	Requested     string
}

func NewReviewerConflictError(applicationID, heldBy, requested string) *ReviewerConflictError {
	return &ReviewerConflictError{ApplicationID: applicationID, HeldBy: heldBy, Requested: requested}
}

func (e *ReviewerConflictError) Error() string {
	return fmt.Sprintf("%s: application %s is held by reviewer %s, not %s",
		ErrReviewerConflict, e.ApplicationID, e.HeldBy, e.Requested)
}

func (e *ReviewerConflictError) Unwrap() error {
	return ErrReviewerConflict
}

// AlreadyAssignedError is returned when an order already has a different delivery person.
type AlreadyAssignedError struct {
	OrderID          string
	DeliveryPersonID string
}

func NewAlreadyAssignedError(orderID, deliveryPersonID string) *AlreadyAssignedError {
	return &AlreadyAssignedError{OrderID: orderID, DeliveryPersonID: deliveryPersonID}
}

func (e *AlreadyAssignedError) Error() string {
	return fmt.Sprintf("%s: order %s is assigned to %s", ErrAlreadyAssigned, e.OrderID, e.DeliveryPersonID)
}

func (e *AlreadyAssignedError) Unwrap() error {
	return ErrAlreadyAssigned
}

// StaleWriteError is returned when the stored version no longer matches the
// version the caller read. The caller must re-read and retry.
type StaleWriteError struct {
	Entity          string
	ID              string
	ExpectedVersion int64
}

func NewStaleWriteError(entity, id string, expectedVersion int64) *StaleWriteError {
	return &StaleWriteError{Entity: entity, ID: id, ExpectedVersion: expectedVersion}
}

func (e *StaleWriteError) Error() string {
	return fmt.Sprintf("%s: %s %s is no longer at version %d", ErrStaleWrite, e.Entity, e.ID, e.ExpectedVersion)
}

func (e *StaleWriteError) Unwrap() error {
	return ErrStaleWrite
}

// AuditWriteFailureError wraps a failed audit append. The surrounding
// transaction must be rolled back when it is returned.
type AuditWriteFailureError struct {
	Cause error
}

func NewAuditWriteFailureError(cause error) *AuditWriteFailureError {
	return &AuditWriteFailureError{Cause: cause}
}

func (e *AuditWriteFailureError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s (cause: %v)", ErrAuditWriteFailure, e.Cause)
	}
	return ErrAuditWriteFailure.Error()
}

func (e *AuditWriteFailureError) Unwrap() error {
	return ErrAuditWriteFailure
}
