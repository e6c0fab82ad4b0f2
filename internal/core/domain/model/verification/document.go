package verification

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
)

// DocumentStatus is the review state of a single document.
type DocumentStatus int

const (
	DocumentUnknown DocumentStatus = iota
	DocumentPending
	DocumentUnderReview
	DocumentApproved
	DocumentRejected
)

func getDocumentStatusStrings() map[DocumentStatus]string {
	return map[DocumentStatus]string{
		DocumentUnknown:     "unknown",
		DocumentPending:     "pending",
		DocumentUnderReview: "under_review",
		DocumentApproved:    "approved",
		DocumentRejected:    "rejected",
	}
}

func ParseDocumentStatus(s string) (DocumentStatus, error) {
	for ds, name := range getDocumentStatusStrings() {
		if ds != DocumentUnknown && name == s {
			return ds, nil
		}
	}
	return DocumentUnknown, errs.NewValueIsInvalidErrorWithCause("document status is invalid", fmt.Errorf("%q is not a valid document status", s))
}

func (s DocumentStatus) Validate() error {
	if s < DocumentPending || s > DocumentRejected {
		return errs.NewValueIsInvalidErrorWithCause("document status is invalid", fmt.Errorf("%d is not a valid document status", s))
	}
	return nil
}

func (s DocumentStatus) String() string {
	if str, ok := getDocumentStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsDecision reports whether a reviewer may set the document to s.
// Pending is only the initial state.
func (s DocumentStatus) IsDecision() bool {
	return s == DocumentUnderReview || s == DocumentApproved || s == DocumentRejected
}

// DocumentSpec describes a document expected when an application is created.
type DocumentSpec struct {
	Type     string
	Required bool
}

// DocumentState is the stored form of a Document.
type DocumentState struct {
	ID              kernel.UUID
	Type            string
	Required        bool
	Status          DocumentStatus
	ReviewedBy      *kernel.UUID
	RejectionReason string
	ReviewedAt      *time.Time
}

// Document is a document attached to an application. Its review decision is
// independent of the application status.
type Document struct {
	id              kernel.UUID
	docType         string
	required        bool
	status          DocumentStatus
	reviewedBy      *kernel.UUID
	rejectionReason string
	reviewedAt      *time.Time
}

func newDocument(spec DocumentSpec) (*Document, error) {
	docType := strings.TrimSpace(spec.Type)
	if docType == "" {
		return nil, errs.NewValueIsRequiredError("document type")
	}
	return &Document{
		id:       kernel.NewUUID(),
		docType:  docType,
		required: spec.Required,
		status:   DocumentPending,
	}, nil
}

// RestoreDocument rebuilds a stored document.
func RestoreDocument(s DocumentState) (*Document, error) {
	var reasonErr error
	if s.Status == DocumentRejected && strings.TrimSpace(s.RejectionReason) == "" {
		reasonErr = errs.NewValueIsRequiredError("rejection reason")
	}
	var typeErr error
	if strings.TrimSpace(s.Type) == "" {
		typeErr = errs.NewValueIsRequiredError("document type")
	}
	if err := errors.Join(s.ID.Validate(), s.Status.Validate(), typeErr, reasonErr); err != nil {
		return nil, err
	}

	return &Document{
		id:              s.ID,
		docType:         s.Type,
		required:        s.Required,
		status:          s.Status,
		reviewedBy:      s.ReviewedBy,
		rejectionReason: s.RejectionReason,
		reviewedAt:      s.ReviewedAt,
	}, nil
}

func (d *Document) ID() kernel.UUID {
	return d.id
}

func (d *Document) Type() string {
	return d.docType
}

func (d *Document) Required() bool {
	return d.required
}

// Status returns the review status of the document.
func (d *Document) Status() DocumentStatus {
	return d.status
}

func (d *Document) ReviewedBy() *kernel.UUID {
	return d.reviewedBy
}

func (d *Document) RejectionReason() string {
	return d.rejectionReason
}

func (d *Document) ReviewedAt() *time.Time {
	return d.reviewedAt
}

func (d *Document) IsApproved() bool {
	return d.status == DocumentApproved
}

// State returns the stored form of the document.
func (d *Document) State() DocumentState {
	return DocumentState{
		ID:              d.id,
		Type:            d.docType,
		Required:        d.required,
		Status:          d.status,
		ReviewedBy:      d.reviewedBy,
		RejectionReason: d.rejectionReason,
		ReviewedAt:      d.reviewedAt,
	}
}

// review applies a reviewer decision. It reports false when the document
// already carries exactly this decision.
func (d *Document) review(reviewer kernel.UUID, decision DocumentStatus, reason string, now time.Time) (bool, error) {
	if !decision.IsDecision() {
		return false, errs.NewInvalidTransitionError("verification document", d.status.String(), decision.String())
	}
	reason = strings.TrimSpace(reason)
	if decision == DocumentRejected && reason == "" {
		return false, errs.NewValueIsRequiredError("rejection reason")
	}
	if decision != DocumentRejected {
		reason = ""
	}
	if d.status == decision && d.rejectionReason == reason {
		return false, nil
	}

	reviewedAt := now.UTC()
	d.status = decision
	d.rejectionReason = reason
	d.reviewedBy = &reviewer
	d.reviewedAt = &reviewedAt
	return true, nil
}
