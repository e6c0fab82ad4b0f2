// Package servers holds the HTTP models and the echo server interface for
// api/openapi.yaml, laid out the way oapi-codegen emits them.
package servers

import (
	"time"

	openapi_types "github.com/oapi-codegen/runtime/types"
)

// Defines values for NewApplicationSubjectType.
const (
	Business NewApplicationSubjectType = "business"
	Driver   NewApplicationSubjectType = "driver"
)

// Defines values for NewApplicationPriority.
const (
	Low    NewApplicationPriority = "low"
	Normal NewApplicationPriority = "normal"
	High   NewApplicationPriority = "high"
	Urgent NewApplicationPriority = "urgent"
)

// Defines values for DocumentReviewStatus.
const (
	DocumentReviewStatusUnderReview DocumentReviewStatus = "under_review"
	DocumentReviewStatusApproved    DocumentReviewStatus = "approved"
	DocumentReviewStatusRejected    DocumentReviewStatus = "rejected"
)

// Defines values for ReviewDecisionStatus.
const (
	ReviewDecisionStatusApproved               ReviewDecisionStatus = "approved"
	ReviewDecisionStatusRejected               ReviewDecisionStatus = "rejected"
	ReviewDecisionStatusAdditionalInfoRequired ReviewDecisionStatus = "additional_info_required"
)

// Error defines model for Error.
type Error struct {
	Code    int    `json:"code"`
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

// DocumentSpec defines model for DocumentSpec.
type DocumentSpec struct {
	Required *bool  `json:"required,omitempty"`
	Type     string `json:"type" validate:"required"`
}

// NewApplication defines model for NewApplication.
type NewApplication struct {
	Documents   *[]DocumentSpec           `json:"documents,omitempty" validate:"omitempty,dive"`
	Priority    *NewApplicationPriority   `json:"priority,omitempty" validate:"omitempty,oneof=low normal high urgent"`
	SubjectId   openapi_types.UUID        `json:"subjectId"`
	SubjectType NewApplicationSubjectType `json:"subjectType" validate:"required,oneof=business driver"`
}

// NewApplicationPriority defines model for NewApplication.Priority.
type NewApplicationPriority string

// NewApplicationSubjectType defines model for NewApplication.SubjectType.
type NewApplicationSubjectType string

// Document defines model for Document.
type Document struct {
	Id              openapi_types.UUID  `json:"id"`
	RejectionReason *string             `json:"rejectionReason,omitempty"`
	Required        bool                `json:"required"`
	ReviewedAt      *time.Time          `json:"reviewedAt,omitempty"`
	ReviewedBy      *openapi_types.UUID `json:"reviewedBy,omitempty"`
	Status          string              `json:"status"`
	Type            string              `json:"type"`
}

// ReviewRecord defines model for ReviewRecord.
type ReviewRecord struct {
	Comments   *string            `json:"comments,omitempty"`
	FromStatus string             `json:"fromStatus"`
	RecordedAt time.Time          `json:"recordedAt"`
	ReviewerId openapi_types.UUID `json:"reviewerId"`
	ToStatus   string             `json:"toStatus"`
}

// InfoRequest defines model for InfoRequest.
type InfoRequest struct {
	CreatedAt          time.Time          `json:"createdAt"`
	DocumentsRequested []string           `json:"documentsRequested"`
	DueDate            time.Time          `json:"dueDate"`
	Id                 openapi_types.UUID `json:"id"`
	Message            string             `json:"message"`
	ResolvedAt         *time.Time         `json:"resolvedAt,omitempty"`
	Status             string             `json:"status"`
}

// Application defines model for Application.
type Application struct {
	AssignedReviewerId *openapi_types.UUID `json:"assignedReviewerId,omitempty"`
	CompletedAt        *time.Time          `json:"completedAt,omitempty"`
	CreatedAt          time.Time           `json:"createdAt"`
	Documents          []Document          `json:"documents"`
	Id                 openapi_types.UUID  `json:"id"`
	InfoRequests       []InfoRequest       `json:"infoRequests"`
	Priority           string              `json:"priority"`
	Reviews            []ReviewRecord      `json:"reviews"`
	Status             string              `json:"status"`
	SubjectId          openapi_types.UUID  `json:"subjectId"`
	SubjectType        string              `json:"subjectType"`
	SubmittedAt        *time.Time          `json:"submittedAt,omitempty"`
	Version            int64               `json:"version"`
}

// ReviewerAssignment defines model for ReviewerAssignment.
type ReviewerAssignment struct {
	ReviewerId openapi_types.UUID `json:"reviewerId"`
}

// DocumentReview defines model for DocumentReview.
type DocumentReview struct {
	RejectionReason *string              `json:"rejectionReason,omitempty" validate:"required_if=Status rejected"`
	Status          DocumentReviewStatus `json:"status" validate:"required,oneof=under_review approved rejected"`
}

// DocumentReviewStatus defines model for DocumentReview.Status.
type DocumentReviewStatus string

// ReviewDecision defines model for ReviewDecision.
type ReviewDecision struct {
	ChangesRequested *[]string            `json:"changesRequested,omitempty"`
	Comments         *string              `json:"comments,omitempty" validate:"required_unless=Status approved"`
	DueDate          *time.Time           `json:"dueDate,omitempty"`
	Status           ReviewDecisionStatus `json:"status" validate:"required,oneof=approved rejected additional_info_required"`
}

// ReviewDecisionStatus defines model for ReviewDecision.Status.
type ReviewDecisionStatus string

// NewInfoRequest defines model for NewInfoRequest.
type NewInfoRequest struct {
	DocumentsRequested *[]string `json:"documentsRequested,omitempty"`
	DueDate            time.Time `json:"dueDate"`
	Message            string    `json:"message" validate:"required"`
}

// Reason defines model for Reason.
type Reason struct {
	Reason string `json:"reason" validate:"required"`
}

// Statistics defines model for Statistics.
type Statistics struct {
	ByPriority          map[string]int64 `json:"byPriority"`
	ByStatus            map[string]int64 `json:"byStatus"`
	OverdueInfoRequests int64            `json:"overdueInfoRequests"`
	Total               int64            `json:"total"`
}

// ReviewQueueItem defines model for ReviewQueueItem.
type ReviewQueueItem struct {
	AssignedReviewerId *openapi_types.UUID `json:"assignedReviewerId,omitempty"`
	Id                 openapi_types.UUID  `json:"id"`
	OpenInfoRequests   int                 `json:"openInfoRequests"`
	Priority           string              `json:"priority"`
	Status             string              `json:"status"`
	SubjectId          openapi_types.UUID  `json:"subjectId"`
	SubjectType        string              `json:"subjectType"`
	SubmittedAt        *time.Time          `json:"submittedAt,omitempty"`
}

// NewOrder defines model for NewOrder.
type NewOrder struct {
	BusinessId openapi_types.UUID `json:"businessId"`
	CustomerId openapi_types.UUID `json:"customerId"`
}

// HistoryEntry defines model for HistoryEntry.
type HistoryEntry struct {
	ActorId openapi_types.UUID `json:"actorId"`
	At      time.Time          `json:"at"`
	Notes   *string            `json:"notes,omitempty"`
	Status  string             `json:"status"`
}

// Order defines model for Order.
type Order struct {
	BusinessId       openapi_types.UUID  `json:"businessId"`
	CreatedAt        time.Time           `json:"createdAt"`
	CustomerId       openapi_types.UUID  `json:"customerId"`
	DeliveryPersonId *openapi_types.UUID `json:"deliveryPersonId,omitempty"`
	History          []HistoryEntry      `json:"history"`
	Id               openapi_types.UUID  `json:"id"`
	Progress         int                 `json:"progress"`
	Status           string              `json:"status"`
	Version          int64               `json:"version"`
}

// StatusChange defines model for StatusChange.
type StatusChange struct {
	Notes  *string `json:"notes,omitempty"`
	Status string  `json:"status" validate:"required"`
}

// DriverAssignment defines model for DriverAssignment.
type DriverAssignment struct {
	DriverId openapi_types.UUID `json:"driverId"`
}

// AuditEntry defines model for AuditEntry.
type AuditEntry struct {
	Action     string                 `json:"action"`
	ActorId    openapi_types.UUID     `json:"actorId"`
	EntityId   openapi_types.UUID     `json:"entityId"`
	EntityType string                 `json:"entityType"`
	FromState  *string                `json:"fromState,omitempty"`
	Metadata   map[string]interface{} `json:"metadata"`
	OccurredAt time.Time              `json:"occurredAt"`
	Sequence   int64                  `json:"sequence"`
	ToState    string                 `json:"toState"`
}

// ActorID defines model for ActorID.
type ActorID = openapi_types.UUID

// ListReviewQueueParams defines parameters for ListReviewQueue.
type ListReviewQueueParams struct {
	Limit *int `form:"limit,omitempty" json:"limit,omitempty"`
}

// ActorParams carries the X-Actor-ID header of every mutating operation.
type ActorParams struct {
	XActorID ActorID `json:"X-Actor-ID"`
}
