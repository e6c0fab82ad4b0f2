package verification

import (
	"fmt"

	"marketplace/internal/pkg/errs"
)

// Status is the overall state of a verification application.
//
// State transitions:
//
//	Draft ──> Submitted ──> UnderReview ──┬──> Approved
//	                          ▲    │      ├──> Rejected
//	                          │    ▼      └──> Suspended
//	                  AdditionalInfoRequired ──> Suspended
//
// Approved, Rejected and Suspended are terminal.
type Status int

const (
	StatusUnknown Status = iota
	StatusDraft
	StatusSubmitted
	StatusUnderReview
	StatusAdditionalInfoRequired
	StatusApproved
	StatusRejected
	StatusSuspended
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:                "unknown",
		StatusDraft:                  "draft",
		StatusSubmitted:              "submitted",
		StatusUnderReview:            "under_review",
		StatusAdditionalInfoRequired: "additional_info_required",
		StatusApproved:               "approved",
		StatusRejected:               "rejected",
		StatusSuspended:              "suspended",
	}
}

// Statuses lists every valid status in lifecycle order.
func Statuses() []Status {
	return []Status{
		StatusDraft,
		StatusSubmitted,
		StatusUnderReview,
		StatusAdditionalInfoRequired,
		StatusApproved,
		StatusRejected,
		StatusSuspended,
	}
}

// getTransitions is the only place legal successors are defined.
func getTransitions() map[Status][]Status {
	//nolint:exhaustive // terminal and unknown statuses have no successors
	return map[Status][]Status{
		StatusDraft:                  {StatusSubmitted},
		StatusSubmitted:              {StatusUnderReview},
		StatusUnderReview:            {StatusAdditionalInfoRequired, StatusApproved, StatusRejected, StatusSuspended},
		StatusAdditionalInfoRequired: {StatusUnderReview, StatusSuspended},
	}
}

// ParseStatus converts a stored or transported name into a Status.
func ParseStatus(s string) (Status, error) {
	for status, name := range getStatusStrings() {
		if status != StatusUnknown && name == s {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%q is not a valid status", s))
}

func (s Status) Validate() error {
	if s <= StatusUnknown || s > StatusSuspended {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsTerminal reports whether no further transition is possible.
func (s Status) IsTerminal() bool {
	return s == StatusApproved || s == StatusRejected || s == StatusSuspended
}

// CanTransitionTo reports whether next is a legal successor of s.
func (s Status) CanTransitionTo(next Status) bool {
	for _, candidate := range getTransitions()[s] {
		if candidate == next {
			return true
		}
	}
	return false
}

// TransitionTo returns next when it is a legal successor, or an invalid transition error.
func (s Status) TransitionTo(next Status) (Status, error) {
	if !s.CanTransitionTo(next) {
		return StatusUnknown, errs.NewInvalidTransitionError("verification application", s.String(), next.String())
	}
	return next, nil
}
