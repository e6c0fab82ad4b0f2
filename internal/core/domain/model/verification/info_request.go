package verification

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
)

// InfoRequestStatus is the state of an additional-info request.
//
//	Open ──┬──> Fulfilled
//	       └──> Expired ──> Fulfilled
//
// Expired requests stay unresolved until the applicant answers them.
type InfoRequestStatus int

const (
	InfoRequestUnknown InfoRequestStatus = iota
	InfoRequestOpen
	InfoRequestFulfilled
	InfoRequestExpired
)

func getInfoRequestStatusStrings() map[InfoRequestStatus]string {
	return map[InfoRequestStatus]string{
		InfoRequestUnknown:   "unknown",
		InfoRequestOpen:      "open",
		InfoRequestFulfilled: "fulfilled",
		InfoRequestExpired:   "expired",
	}
}

func ParseInfoRequestStatus(s string) (InfoRequestStatus, error) {
	for rs, name := range getInfoRequestStatusStrings() {
		if rs != InfoRequestUnknown && name == s {
			return rs, nil
		}
	}
	return InfoRequestUnknown, errs.NewValueIsInvalidErrorWithCause("info request status is invalid", fmt.Errorf("%q is not a valid info request status", s))
}

func (s InfoRequestStatus) Validate() error {
	if s < InfoRequestOpen || s > InfoRequestExpired {
		return errs.NewValueIsInvalidErrorWithCause("info request status is invalid", fmt.Errorf("%d is not a valid info request status", s))
	}
	return nil
}

func (s InfoRequestStatus) String() string {
	if str, ok := getInfoRequestStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// InfoRequestState is the stored form of an InfoRequest.
type InfoRequestState struct {
	ID                 kernel.UUID
	Message            string
	DocumentsRequested []string
	DueDate            time.Time
	Status             InfoRequestStatus
	CreatedAt          time.Time
	ResolvedAt         *time.Time
}

// InfoRequest asks the applicant for more information or documents.
// The due date is a soft deadline: passing it only expires the request.
type InfoRequest struct {
	id                 kernel.UUID
	message            string
	documentsRequested []string
	dueDate            time.Time
	status             InfoRequestStatus
	createdAt          time.Time
	resolvedAt         *time.Time
}

func newInfoRequest(message string, documentsRequested []string, dueDate, now time.Time) (*InfoRequest, error) {
	var messageErr, dueErr error
	message = strings.TrimSpace(message)
	if message == "" {
		messageErr = errs.NewValueIsRequiredError("message")
	}
	if !dueDate.After(now) {
		dueErr = errs.NewValueIsInvalidErrorWithCause("due date is invalid",
			fmt.Errorf("%s is not after %s", dueDate.UTC().Format(time.RFC3339), now.UTC().Format(time.RFC3339)))
	}
	if err := errors.Join(messageErr, dueErr); err != nil {
		return nil, err
	}

	return &InfoRequest{
		id:                 kernel.NewUUID(),
		message:            message,
		documentsRequested: normalizeDocumentTypes(documentsRequested),
		dueDate:            dueDate.UTC(),
		status:             InfoRequestOpen,
		createdAt:          now.UTC(),
	}, nil
}

// RestoreInfoRequest rebuilds a stored request.
func RestoreInfoRequest(s InfoRequestState) (*InfoRequest, error) {
	var resolvedErr error
	if s.Status == InfoRequestFulfilled && s.ResolvedAt == nil {
		resolvedErr = errs.NewValueIsRequiredError("resolvedAt")
	}
	if err := errors.Join(s.ID.Validate(), s.Status.Validate(), resolvedErr); err != nil {
		return nil, err
	}
	return &InfoRequest{
		id:                 s.ID,
		message:            s.Message,
		documentsRequested: normalizeDocumentTypes(s.DocumentsRequested),
		dueDate:            s.DueDate,
		status:             s.Status,
		createdAt:          s.CreatedAt,
		resolvedAt:         s.ResolvedAt,
	}, nil
}

func (r *InfoRequest) ID() kernel.UUID {
	return r.id
}

func (r *InfoRequest) Message() string {
	return r.message
}

func (r *InfoRequest) DueDate() time.Time {
	return r.dueDate
}

func (r *InfoRequest) Status() InfoRequestStatus {
	return r.status
}

func (r *InfoRequest) CreatedAt() time.Time {
	return r.createdAt
}

func (r *InfoRequest) ResolvedAt() *time.Time {
	return r.resolvedAt
}

func (r *InfoRequest) DocumentsRequested() []string {
	return slices.Clone(r.documentsRequested)
}

// IsUnresolved reports whether the request still blocks the return to review.
func (r *InfoRequest) IsUnresolved() bool {
	return r.status == InfoRequestOpen || r.status == InfoRequestExpired
}

// IsOverdue reports whether an open request has passed its due date.
func (r *InfoRequest) IsOverdue(now time.Time) bool {
	return r.status == InfoRequestOpen && now.After(r.dueDate)
}

func (r *InfoRequest) State() InfoRequestState {
	return InfoRequestState{
		ID:                 r.id,
		Message:            r.message,
		DocumentsRequested: r.DocumentsRequested(),
		DueDate:            r.dueDate,
		Status:             r.status,
		CreatedAt:          r.createdAt,
		ResolvedAt:         r.resolvedAt,
	}
}

// fulfil reports false when the request was already fulfilled.
func (r *InfoRequest) fulfil(now time.Time) bool {
	if r.status == InfoRequestFulfilled {
		return false
	}
	resolvedAt := now.UTC()
	r.status = InfoRequestFulfilled
	r.resolvedAt = &resolvedAt
	return true
}

func (r *InfoRequest) expire() {
	r.status = InfoRequestExpired
}

// normalizeDocumentTypes trims, drops blanks and de-duplicates while keeping order.
func normalizeDocumentTypes(types []string) []string {
	out := make([]string, 0, len(types))
	for _, t := range types {
		t = strings.TrimSpace(t)
		if t != "" && !slices.Contains(out, t) {
			out = append(out, t)
		}
	}
	return out
}
