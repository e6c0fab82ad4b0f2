package audit

import (
	"errors"
	"maps"
	"strings"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
)

// Action is the verb recorded for an audit entry.
type Action string

const (
	ActionCreate             Action = "create"
	ActionSubmit             Action = "submit"
	ActionAssignReviewer     Action = "assign_reviewer"
	ActionReviewDocument     Action = "review_document"
	ActionDecide             Action = "decide"
	ActionRequestInfo        Action = "request_info"
	ActionResolveInfoRequest Action = "resolve_info_request"
	ActionExpireInfoRequest  Action = "expire_info_request"
	ActionEscalatePriority   Action = "escalate_priority"
	ActionSuspend            Action = "suspend"
	ActionPlace              Action = "place"
	ActionAdvance            Action = "advance"
	ActionAssignDelivery     Action = "assign_delivery_person"
	ActionCancel             Action = "cancel"
)

// Metadata carries free-form context for an entry (comments, reasons, reviewer ids).
type Metadata map[string]any

// Entry is a single immutable line of the audit trail.
//
// Sequence is zero until the entry has been stored; the store assigns it in
// insertion order. FromState is empty for entries that create a record.
type Entry struct {
	sequence   int64
	entityType EntityType
	entityID   kernel.UUID
	action     Action
	fromState  string
	toState    string
	actorID    kernel.UUID
	occurredAt time.Time
	metadata   Metadata
}

// NewEntry builds an entry that has not been stored yet.
func NewEntry(
	entityType EntityType,
	entityID kernel.UUID,
	action Action,
	fromState, toState string,
	actorID kernel.UUID,
	occurredAt time.Time,
	metadata Metadata,
) (Entry, error) {
	if err := errors.Join(
		entityType.Validate(),
		entityID.Validate(),
		actorID.Validate(),
		validateAction(action),
		validateToState(toState),
		validateTime(occurredAt),
	); err != nil {
		return Entry{}, err
	}

	return Entry{
		entityType: entityType,
		entityID:   entityID,
		action:     action,
		fromState:  fromState,
		toState:    toState,
		actorID:    actorID,
		occurredAt: occurredAt.UTC(),
		metadata:   maps.Clone(metadata),
	}, nil
}

// RestoreEntry rebuilds a stored entry.
func RestoreEntry(
	sequence int64,
	entityType EntityType,
	entityID kernel.UUID,
	action Action,
	fromState, toState string,
	actorID kernel.UUID,
	occurredAt time.Time,
	metadata Metadata,
) (Entry, error) {
	if sequence < 1 {
		return Entry{}, errs.NewValueIsOutOfRangeError("sequence", sequence, 1, "unbounded")
	}
	e, err := NewEntry(entityType, entityID, action, fromState, toState, actorID, occurredAt, metadata)
	if err != nil {
		return Entry{}, err
	}
	e.sequence = sequence
	return e, nil
}

func (e Entry) Sequence() int64 {
	return e.sequence
}

func (e Entry) EntityType() EntityType {
	return e.entityType
}

func (e Entry) EntityID() kernel.UUID {
	return e.entityID
}

func (e Entry) Action() Action {
	return e.action
}

func (e Entry) FromState() string {
	return e.fromState
}

func (e Entry) ToState() string {
	return e.toState
}

func (e Entry) ActorID() kernel.UUID {
	return e.actorID
}

func (e Entry) OccurredAt() time.Time {
	return e.occurredAt
}

// Metadata returns a copy; entries are immutable.
func (e Entry) Metadata() Metadata {
	return maps.Clone(e.metadata)
}

func validateAction(a Action) error {
	if strings.TrimSpace(string(a)) == "" {
		return errs.NewValueIsRequiredError("action")
	}
	return nil
}

func validateToState(s string) error {
	if strings.TrimSpace(s) == "" {
		return errs.NewValueIsRequiredError("toState")
	}
	return nil
}

func validateTime(t time.Time) error {
	if t.IsZero() {
		return errs.NewValueIsRequiredError("occurredAt")
	}
	return nil
}
