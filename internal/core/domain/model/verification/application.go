package verification

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"marketplace/internal/core/domain/model/audit"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
)

var (
	// ErrApplicationIsNotConstructed is returned when an Application was not created
	// through NewApplication or RestoreApplication.
	ErrApplicationIsNotConstructed = errors.New("Application must be created via NewApplication or RestoreApplication")
)

const entityName = "verification application"

// ApplicationState is the stored form of an Application, used by repositories
// to rebuild the aggregate.
type ApplicationState struct {
	ID                 kernel.UUID
	SubjectType        SubjectType
	SubjectID          kernel.UUID
	Status             Status
	Priority           Priority
	AssignedReviewerID *kernel.UUID
	Documents          []*Document
	Reviews            []ReviewRecord
	InfoRequests       []*InfoRequest
	SubmittedAt        *time.Time
	CompletedAt        *time.Time
	CreatedAt          time.Time
	Version            int64
}

// Application is the verification case of one business or driver. It is the
// aggregate root for its documents, review records and info requests.
//
// Application follows these invariants:
//   - The overall status changes only through transition, which appends a
//     ReviewRecord and an audit entry in the same step
//   - Approved is reachable only when every required document is approved
//   - assignedReviewerID is held by at most one reviewer and is released when
//     the case reaches a terminal status
//   - Every mutating operation bumps the revision exactly once; an operation
//     that changes nothing leaves it untouched
type Application struct {
	id                 kernel.UUID
	subjectType        SubjectType
	subjectID          kernel.UUID
	status             Status
	priority           Priority
	assignedReviewerID *kernel.UUID
	documents          []*Document
	reviews            []ReviewRecord
	storedReviews      int
	infoRequests       []*InfoRequest
	submittedAt        *time.Time
	completedAt        *time.Time
	createdAt          time.Time
	revision           kernel.Revision
	journal            audit.Journal
	isConstructed      bool
}

// NewApplication opens a draft application with the expected documents.
// Document types must be unique within an application.
func NewApplication(
	subjectType SubjectType,
	subjectID kernel.UUID,
	priority Priority,
	documents []DocumentSpec,
	actor kernel.UUID,
	now time.Time,
) (*Application, error) {
	if err := errors.Join(
		subjectType.Validate(),
		subjectID.Validate(),
		priority.Validate(),
		actor.Validate(),
	); err != nil {
		return nil, err
	}

	a := &Application{
		id:            kernel.NewUUID(),
		subjectType:   subjectType,
		subjectID:     subjectID,
		status:        StatusDraft,
		priority:      priority,
		createdAt:     now.UTC(),
		revision:      kernel.NewRevision(),
		isConstructed: true,
	}

	for _, spec := range documents {
		doc, err := newDocument(spec)
		if err != nil {
			return nil, err
		}
		if a.documentByType(doc.docType) != nil {
			return nil, errs.NewValueIsInvalidErrorWithCause("documents are invalid",
				fmt.Errorf("document type %q is listed twice", doc.docType))
		}
		a.documents = append(a.documents, doc)
	}

	if err := a.record(audit.EntityApplication, a.id, audit.ActionCreate, "", a.status.String(), actor, now, audit.Metadata{
		"subject_type": subjectType.String(),
		"subject_id":   subjectID.String(),
		"priority":     priority.String(),
	}); err != nil {
		return nil, err
	}
	for _, doc := range a.documents {
		if err := a.record(audit.EntityDocument, doc.id, audit.ActionCreate, "", doc.status.String(), actor, now, audit.Metadata{
			"application_id": a.id.String(),
			"type":           doc.docType,
			"required":       doc.required,
		}); err != nil {
			return nil, err
		}
	}

	return a, nil
}

// RestoreApplication rebuilds an application read from storage. The restored
// aggregate has no pending audit entries and no pending review records.
func RestoreApplication(s ApplicationState) (*Application, error) {
	revision, revErr := kernel.RestoreRevision(s.Version)
	var createdErr error
	if s.CreatedAt.IsZero() {
		createdErr = errs.NewValueIsRequiredError("createdAt")
	}
	if err := errors.Join(
		s.ID.Validate(),
		s.SubjectType.Validate(),
		s.SubjectID.Validate(),
		s.Status.Validate(),
		s.Priority.Validate(),
		revErr,
		createdErr,
	); err != nil {
		return nil, err
	}

	return &Application{
		id:                 s.ID,
		subjectType:        s.SubjectType,
		subjectID:          s.SubjectID,
		status:             s.Status,
		priority:           s.Priority,
		assignedReviewerID: s.AssignedReviewerID,
		documents:          slices.Clone(s.Documents),
		reviews:            slices.Clone(s.Reviews),
		storedReviews:      len(s.Reviews),
		infoRequests:       slices.Clone(s.InfoRequests),
		submittedAt:        s.SubmittedAt,
		completedAt:        s.CompletedAt,
		createdAt:          s.CreatedAt,
		revision:           revision,
		isConstructed:      true,
	}, nil
}

// Validate ensures the Application was built by one of its constructors.
func (a *Application) Validate() error {
	if a == nil || !a.isConstructed {
		return ErrApplicationIsNotConstructed
	}
	return nil
}

func (a *Application) IsEqual(other *Application) bool {
	return other != nil && a.id.IsEqual(other.id)
}

// ID returns the application's unique identifier.
func (a *Application) ID() kernel.UUID {
	return a.id
}

func (a *Application) SubjectType() SubjectType {
	return a.subjectType
}

func (a *Application) SubjectID() kernel.UUID {
	return a.subjectID
}

// Status returns the current status of the application.
func (a *Application) Status() Status {
	return a.status
}

func (a *Application) Priority() Priority {
	return a.priority
}

// AssignedReviewerID returns the reviewer holding the application.
// Returns nil if no reviewer holds it.
func (a *Application) AssignedReviewerID() *kernel.UUID {
	return a.assignedReviewerID
}

// SubmittedAt returns nil while the application is a draft.
func (a *Application) SubmittedAt() *time.Time {
	return a.submittedAt
}

func (a *Application) CompletedAt() *time.Time {
	return a.completedAt
}

func (a *Application) CreatedAt() time.Time {
	return a.createdAt
}

func (a *Application) Revision() kernel.Revision {
	return a.revision
}

// Version is the version the application will have once its pending changes are stored.
func (a *Application) Version() int64 {
	return a.revision.Current()
}

func (a *Application) Documents() []*Document {
	return slices.Clone(a.documents)
}

// Document returns the document with the given id.
func (a *Application) Document(id kernel.UUID) (*Document, error) {
	for _, doc := range a.documents {
		if doc.id.IsEqual(id) {
			return doc, nil
		}
	}
	return nil, errs.NewObjectNotFoundError("documentID", id.String())
}

func (a *Application) Reviews() []ReviewRecord {
	return slices.Clone(a.reviews)
}

// NewReviews returns the review records appended since the application was loaded.
func (a *Application) NewReviews() []ReviewRecord {
	return slices.Clone(a.reviews[a.storedReviews:])
}

func (a *Application) InfoRequests() []*InfoRequest {
	return slices.Clone(a.infoRequests)
}

// InfoRequest returns the request with the given id.
func (a *Application) InfoRequest(id kernel.UUID) (*InfoRequest, error) {
	for _, req := range a.infoRequests {
		if req.id.IsEqual(id) {
			return req, nil
		}
	}
	return nil, errs.NewObjectNotFoundError("requestID", id.String())
}

// PendingAuditEntries returns the audit entries produced since load.
func (a *Application) PendingAuditEntries() []audit.Entry {
	return a.journal.Pending()
}

func (a *Application) ClearPendingAuditEntries() {
	a.journal.Clear()
}

// AllRequiredDocumentsApproved is a query only; it never changes the status.
func (a *Application) AllRequiredDocumentsApproved() bool {
	return len(a.MissingRequiredDocuments()) == 0
}

// MissingRequiredDocuments lists the types of required documents that are not approved.
func (a *Application) MissingRequiredDocuments() []string {
	var missing []string
	for _, doc := range a.documents {
		if doc.required && !doc.IsApproved() {
			missing = append(missing, doc.docType)
		}
	}
	return missing
}

// HasUnresolvedInfoRequests reports whether an open or expired request remains.
func (a *Application) HasUnresolvedInfoRequests() bool {
	return slices.ContainsFunc(a.infoRequests, (*InfoRequest).IsUnresolved)
}

// Submit hands a draft application over for review.
func (a *Application) Submit(actor kernel.UUID, now time.Time) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	if err := a.transition(StatusSubmitted, actor, "", now, audit.ActionSubmit, nil); err != nil {
		return err
	}
	a.revision.Bump()
	return nil
}

// AssignReviewer gives the application to a reviewer.
//
// The hold is acquire-if-null-or-self: assigning the current holder again
// changes nothing, while another reviewer gets a reviewer conflict. Assigning a
// submitted application is the reviewer picking it up, so it also moves to
// under review.
func (a *Application) AssignReviewer(reviewer kernel.UUID, now time.Time) error {
	if err := reviewer.Validate(); err != nil {
		return err
	}
	switch a.status {
	case StatusSubmitted, StatusUnderReview, StatusAdditionalInfoRequired:
	default:
		return errs.NewInvalidTransitionErrorWithCause(entityName, a.status.String(), StatusUnderReview.String(),
			fmt.Errorf("a reviewer cannot be assigned while %s", a.status))
	}
	if err := a.checkReviewer(reviewer); err != nil {
		return err
	}
	if a.assignedReviewerID != nil && a.status != StatusSubmitted {
		return nil
	}

	a.holdReviewer(reviewer)
	meta := audit.Metadata{"reviewer_id": reviewer.String()}
	var err error
	if a.status == StatusSubmitted {
		err = a.transition(StatusUnderReview, reviewer, "", now, audit.ActionAssignReviewer, meta)
	} else {
		err = a.record(audit.EntityApplication, a.id, audit.ActionAssignReviewer,
			a.status.String(), a.status.String(), reviewer, now, meta)
	}
	if err != nil {
		return err
	}
	a.revision.Bump()
	return nil
}

// ReviewDocument records a reviewer decision on one document. It never changes
// the overall status; approval is checked only when the application is decided.
func (a *Application) ReviewDocument(
	documentID, reviewer kernel.UUID,
	decision DocumentStatus,
	reason string,
	now time.Time,
) error {
	if err := reviewer.Validate(); err != nil {
		return err
	}
	doc, err := a.Document(documentID)
	if err != nil {
		return err
	}
	if a.status != StatusUnderReview && a.status != StatusAdditionalInfoRequired {
		return errs.NewInvalidTransitionErrorWithCause("verification document", doc.status.String(), decision.String(),
			fmt.Errorf("documents cannot be reviewed while the application is %s", a.status))
	}
	if err = a.checkReviewer(reviewer); err != nil {
		return err
	}

	from := doc.status
	changed, err := doc.review(reviewer, decision, reason, now)
	if err != nil || !changed {
		return err
	}

	a.holdReviewer(reviewer)
	meta := audit.Metadata{"application_id": a.id.String(), "type": doc.docType}
	if doc.rejectionReason != "" {
		meta["rejection_reason"] = doc.rejectionReason
	}
	if err = a.record(audit.EntityDocument, doc.id, audit.ActionReviewDocument,
		from.String(), doc.status.String(), reviewer, now, meta); err != nil {
		return err
	}
	a.revision.Bump()
	return nil
}

// Decide applies the reviewer's decision on an application under review.
//
// Approved requires every required document to be approved. Rejected requires
// comments. AdditionalInfoRequired opens an info request whose message is the
// comments and whose documents are changesRequested, due at dueDate.
func (a *Application) Decide(
	reviewer kernel.UUID,
	decision Status,
	comments string,
	changesRequested []string,
	dueDate time.Time,
	now time.Time,
) error {
	if err := reviewer.Validate(); err != nil {
		return err
	}
	switch decision {
	case StatusApproved, StatusRejected, StatusAdditionalInfoRequired:
	default:
		return errs.NewInvalidTransitionErrorWithCause(entityName, a.status.String(), decision.String(),
			fmt.Errorf("%s is not a review decision", decision))
	}
	if a.status != StatusUnderReview {
		return errs.NewInvalidTransitionError(entityName, a.status.String(), decision.String())
	}
	if err := a.checkReviewer(reviewer); err != nil {
		return err
	}

	comments = strings.TrimSpace(comments)
	var req *InfoRequest
	switch decision {
	case StatusApproved:
		if missing := a.MissingRequiredDocuments(); len(missing) > 0 {
			return errs.NewDocumentsIncompleteError(a.id.String(), missing)
		}
	case StatusRejected:
		if comments == "" {
			return errs.NewValueIsRequiredError("comments")
		}
	default:
		var err error
		if req, err = newInfoRequest(comments, changesRequested, dueDate, now); err != nil {
			return err
		}
	}

	a.holdReviewer(reviewer)
	if req != nil {
		if err := a.openInfoRequest(req, reviewer, now); err != nil {
			return err
		}
	}
	if err := a.transition(decision, reviewer, comments, now, audit.ActionDecide, nil); err != nil {
		return err
	}
	a.revision.Bump()
	return nil
}

// RequestAdditionalInfo opens an info request. From under review it moves the
// application to additional info required; while already waiting for info it
// only adds the request.
func (a *Application) RequestAdditionalInfo(
	reviewer kernel.UUID,
	message string,
	documentsRequested []string,
	dueDate time.Time,
	now time.Time,
) (kernel.UUID, error) {
	if err := reviewer.Validate(); err != nil {
		return kernel.UUID{}, err
	}
	if a.status != StatusUnderReview && a.status != StatusAdditionalInfoRequired {
		return kernel.UUID{}, errs.NewInvalidTransitionError(entityName, a.status.String(), StatusAdditionalInfoRequired.String())
	}
	if err := a.checkReviewer(reviewer); err != nil {
		return kernel.UUID{}, err
	}
	req, err := newInfoRequest(message, documentsRequested, dueDate, now)
	if err != nil {
		return kernel.UUID{}, err
	}

	a.holdReviewer(reviewer)
	if err = a.openInfoRequest(req, reviewer, now); err != nil {
		return kernel.UUID{}, err
	}
	if a.status == StatusUnderReview {
		if err = a.transition(StatusAdditionalInfoRequired, reviewer, req.message, now, audit.ActionRequestInfo, nil); err != nil {
			return kernel.UUID{}, err
		}
	}
	a.revision.Bump()
	return req.id, nil
}

// ResolveInfoRequest marks an open or expired request fulfilled. When the last
// unresolved request is answered while the application waits for info, the
// application returns to under review. Resolving a fulfilled request changes nothing.
func (a *Application) ResolveInfoRequest(requestID, actor kernel.UUID, now time.Time) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	req, err := a.InfoRequest(requestID)
	if err != nil {
		return err
	}

	from := req.status
	if !req.fulfil(now) {
		return nil
	}
	if err = a.record(audit.EntityInfoRequest, req.id, audit.ActionResolveInfoRequest,
		from.String(), req.status.String(), actor, now, audit.Metadata{"application_id": a.id.String()}); err != nil {
		return err
	}
	if a.status == StatusAdditionalInfoRequired && !a.HasUnresolvedInfoRequests() {
		if err = a.transition(StatusUnderReview, actor, "additional info received", now,
			audit.ActionResolveInfoRequest, audit.Metadata{"request_id": req.id.String()}); err != nil {
			return err
		}
	}
	a.revision.Bump()
	return nil
}

// Suspend ends the review without a decision on the documents.
func (a *Application) Suspend(reviewer kernel.UUID, reason string, now time.Time) error {
	if err := reviewer.Validate(); err != nil {
		return err
	}
	if !a.status.CanTransitionTo(StatusSuspended) {
		return errs.NewInvalidTransitionError(entityName, a.status.String(), StatusSuspended.String())
	}
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return errs.NewValueIsRequiredError("reason")
	}
	if err := a.checkReviewer(reviewer); err != nil {
		return err
	}

	if err := a.transition(StatusSuspended, reviewer, reason, now, audit.ActionSuspend, audit.Metadata{"reason": reason}); err != nil {
		return err
	}
	a.revision.Bump()
	return nil
}

// ExpireOverdue expires every open request whose due date has passed and
// escalates the priority of a case that is still open. It never rejects.
// It returns the number of requests expired.
func (a *Application) ExpireOverdue(now time.Time) (int, error) {
	expired := 0
	for _, req := range a.infoRequests {
		if !req.IsOverdue(now) {
			continue
		}
		req.expire()
		expired++
		if err := a.record(audit.EntityInfoRequest, req.id, audit.ActionExpireInfoRequest,
			InfoRequestOpen.String(), req.status.String(), kernel.SystemActor, now, audit.Metadata{
				"application_id": a.id.String(),
				"due_date":       req.dueDate.Format(time.RFC3339),
			}); err != nil {
			return 0, err
		}
	}
	if expired == 0 {
		return 0, nil
	}

	if escalated := a.priority.Escalated(); escalated != a.priority && !a.status.IsTerminal() {
		if err := a.record(audit.EntityApplication, a.id, audit.ActionEscalatePriority,
			a.status.String(), a.status.String(), kernel.SystemActor, now, audit.Metadata{
				"from_priority": a.priority.String(),
				"to_priority":   escalated.String(),
			}); err != nil {
			return 0, err
		}
		a.priority = escalated
	}
	a.revision.Bump()
	return expired, nil
}

// transition is the only place the overall status changes.
func (a *Application) transition(
	to Status,
	actor kernel.UUID,
	comments string,
	now time.Time,
	action audit.Action,
	meta audit.Metadata,
) error {
	next, err := a.status.TransitionTo(to)
	if err != nil {
		return err
	}

	from := a.status
	if comments != "" {
		if meta == nil {
			meta = audit.Metadata{}
		}
		meta["comments"] = comments
	}
	if err = a.record(audit.EntityApplication, a.id, action, from.String(), next.String(), actor, now, meta); err != nil {
		return err
	}

	at := now.UTC()
	a.reviews = append(a.reviews, ReviewRecord{
		reviewerID: actor,
		fromStatus: from,
		toStatus:   next,
		comments:   comments,
		recordedAt: at,
	})
	a.status = next
	if next == StatusSubmitted {
		a.submittedAt = &at
	}
	if next.IsTerminal() {
		a.completedAt = &at
		a.assignedReviewerID = nil
	}
	return nil
}

func (a *Application) openInfoRequest(req *InfoRequest, reviewer kernel.UUID, now time.Time) error {
	a.infoRequests = append(a.infoRequests, req)
	return a.record(audit.EntityInfoRequest, req.id, audit.ActionRequestInfo, "", req.status.String(), reviewer, now, audit.Metadata{
		"application_id":      a.id.String(),
		"due_date":            req.dueDate.Format(time.RFC3339),
		"documents_requested": req.DocumentsRequested(),
	})
}

func (a *Application) checkReviewer(reviewer kernel.UUID) error {
	if a.assignedReviewerID != nil && !a.assignedReviewerID.IsEqual(reviewer) {
		return errs.NewReviewerConflictError(a.id.String(), a.assignedReviewerID.String(), reviewer.String())
	}
	return nil
}

func (a *Application) holdReviewer(reviewer kernel.UUID) {
	if a.assignedReviewerID == nil {
		a.assignedReviewerID = &reviewer
	}
}

func (a *Application) documentByType(docType string) *Document {
	for _, doc := range a.documents {
		if doc.docType == docType {
			return doc
		}
	}
	return nil
}

func (a *Application) record(
	entityType audit.EntityType,
	entityID kernel.UUID,
	action audit.Action,
	from, to string,
	actor kernel.UUID,
	now time.Time,
	meta audit.Metadata,
) error {
	entry, err := audit.NewEntry(entityType, entityID, action, from, to, actor, now, meta)
	if err != nil {
		return err
	}
	a.journal.Record(entry)
	return nil
}
