package order

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
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
)

// HistoryEntry is one line of the append-only status history.
type HistoryEntry struct {
	Status  Status
	At      time.Time
	ActorID kernel.UUID
	Notes   string
}

// State is the stored form of an Order.
type State struct {
	ID               kernel.UUID
	CustomerID       kernel.UUID
	BusinessID       kernel.UUID
	Status           Status
	History          []HistoryEntry
	DeliveryPersonID *kernel.UUID
	CreatedAt        time.Time
	Version          int64
}

// Order represents a marketplace order. It is the aggregate root that tracks the
// order from placement to delivery or cancellation.
//
// Order follows these invariants:
//   - Status moves only to its immediate successor or to Cancelled
//   - Every status change appends one HistoryEntry and one audit entry
//   - At most one delivery person is held; it is set together with Assigned
//   - Every mutating operation bumps the revision exactly once
//
// The Order struct uses private fields to ensure encapsulation and maintains
// its invariants through validated methods.
type Order struct {
	// id is the unique identifier for the order
	id kernel.UUID

	customerID kernel.UUID
	businessID kernel.UUID

	// deliveryPersonID is the assigned driver (nil until assigned)
	deliveryPersonID *kernel.UUID

	// status represents the current state in the order lifecycle
	status Status

	// history is append-only; storedHistory entries were loaded from storage
	history       []HistoryEntry
	storedHistory int

	createdAt time.Time
	revision  kernel.Revision
	journal   audit.Journal

	// isConstructed ensures the order was created via a constructor
	isConstructed bool
}

// NewOrder places a pending order for a customer at a business.
//
// Example:
//
//	o, err := order.NewOrder(customerID, businessID, customerID, time.Now())
//	if err != nil {
//	    // Handle validation error
//	}
func NewOrder(customerID, businessID, actor kernel.UUID, now time.Time) (*Order, error) {
	if err := errors.Join(
		customerID.Validate(),
		businessID.Validate(),
		actor.Validate(),
	); err != nil {
		return nil, err
	}

	o := &Order{
		id:            kernel.NewUUID(),
		customerID:    customerID,
		businessID:    businessID,
		status:        Pending,
		createdAt:     now.UTC(),
		revision:      kernel.NewRevision(),
		isConstructed: true,
	}
	o.history = append(o.history, HistoryEntry{Status: Pending, At: now.UTC(), ActorID: actor})
	if err := o.record(audit.ActionPlace, "", Pending, actor, now, audit.Metadata{
		"customer_id": customerID.String(),
		"business_id": businessID.String(),
	}); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder rebuilds an order read from storage.
func RestoreOrder(s State) (*Order, error) {
	revision, revErr := kernel.RestoreRevision(s.Version)
	var historyErr error
	if len(s.History) == 0 {
		historyErr = errs.NewValueIsRequiredError("history")
	} else if last := s.History[len(s.History)-1].Status; last != s.Status {
		historyErr = errs.NewValueIsInvalidErrorWithCause("history is invalid",
			fmt.Errorf("last entry is %s but status is %s", last, s.Status))
	}
	if err := errors.Join(
		s.ID.Validate(),
		s.CustomerID.Validate(),
		s.BusinessID.Validate(),
		s.Status.Validate(),
		s.Status.ValidateCanHaveDeliveryPerson(s.DeliveryPersonID != nil),
		revErr,
		historyErr,
	); err != nil {
		return nil, err
	}

	return &Order{
		id:               s.ID,
		customerID:       s.CustomerID,
		businessID:       s.BusinessID,
		deliveryPersonID: s.DeliveryPersonID,
		status:           s.Status,
		history:          slices.Clone(s.History),
		storedHistory:    len(s.History),
		createdAt:        s.CreatedAt,
		revision:         revision,
		isConstructed:    true,
	}, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

func (o *Order) CustomerID() kernel.UUID {
	return o.customerID
}

func (o *Order) BusinessID() kernel.UUID {
	return o.businessID
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// DeliveryPerson returns the assigned driver's ID, or nil if none is assigned.
func (o *Order) DeliveryPerson() *kernel.UUID {
	return o.deliveryPersonID
}

func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

func (o *Order) Revision() kernel.Revision {
	return o.revision
}

// Version is the version the order will have once its pending changes are stored.
func (o *Order) Version() int64 {
	return o.revision.Current()
}

// Progress returns the completion percentage of the current status.
func (o *Order) Progress() int {
	return o.status.Progress()
}

func (o *Order) History() []HistoryEntry {
	return slices.Clone(o.history)
}

// NewHistory returns the entries appended since the order was loaded.
func (o *Order) NewHistory() []HistoryEntry {
	return slices.Clone(o.history[o.storedHistory:])
}

func (o *Order) PendingAuditEntries() []audit.Entry {
	return o.journal.Pending()
}

func (o *Order) ClearPendingAuditEntries() {
	o.journal.Clear()
}

// Advance moves the order to next, which must be the immediate successor or
// Cancelled from a non-terminal status. Notes are optional either way.
// Assigned can only be reached through AssignDeliveryPerson. Unlike Cancel,
// advancing a cancelled order is an invalid transition.
func (o *Order) Advance(next Status, actor kernel.UUID, notes string, now time.Time) error {
	if err := errors.Join(next.Validate(), actor.Validate()); err != nil {
		return err
	}
	if next == Assigned {
		return errs.NewInvalidTransitionErrorWithCause("order", o.status.String(), next.String(),
			errors.New("a delivery person must be assigned instead"))
	}

	action := audit.ActionAdvance
	if next == Cancelled {
		action = audit.ActionCancel
	}
	if err := o.transition(next, actor, strings.TrimSpace(notes), now, action, nil); err != nil {
		return err
	}
	o.revision.Bump()
	return nil
}

// AssignDeliveryPerson sets the driver of a ready order and moves it to Assigned
// in one step.
//
// Assigning the same driver again changes nothing. A different driver while one
// is held returns an already-assigned error.
func (o *Order) AssignDeliveryPerson(driverID, actor kernel.UUID, now time.Time) error {
	if err := errors.Join(driverID.Validate(), actor.Validate()); err != nil {
		return err
	}
	if o.deliveryPersonID != nil {
		if o.deliveryPersonID.IsEqual(driverID) {
			return nil
		}
		return errs.NewAlreadyAssignedError(o.id.String(), o.deliveryPersonID.String())
	}
	if o.status != Ready {
		return errs.NewInvalidTransitionError("order", o.status.String(), Assigned.String())
	}

	if err := o.transition(Assigned, actor, "", now, audit.ActionAssignDelivery, audit.Metadata{
		"delivery_person_id": driverID.String(),
	}); err != nil {
		return err
	}
	o.deliveryPersonID = &driverID
	o.revision.Bump()
	return nil
}

// Cancel stops an order that is not yet delivered. Cancelling a cancelled order
// changes nothing.
func (o *Order) Cancel(actor kernel.UUID, reason string, now time.Time) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	if o.status == Cancelled {
		return nil
	}
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return errs.NewValueIsRequiredError("reason")
	}

	if err := o.transition(Cancelled, actor, reason, now, audit.ActionCancel, audit.Metadata{"reason": reason}); err != nil {
		return err
	}
	o.revision.Bump()
	return nil
}

// transition is the only place the status changes.
func (o *Order) transition(
	to Status,
	actor kernel.UUID,
	notes string,
	now time.Time,
	action audit.Action,
	meta audit.Metadata,
) error {
	next, err := o.status.TransitionTo(to)
	if err != nil {
		return err
	}

	if notes != "" {
		if meta == nil {
			meta = audit.Metadata{}
		}
		meta["notes"] = notes
	}
	if err = o.record(action, o.status.String(), next, actor, now, meta); err != nil {
		return err
	}

	o.history = append(o.history, HistoryEntry{Status: next, At: now.UTC(), ActorID: actor, Notes: notes})
	o.status = next
	return nil
}

func (o *Order) record(action audit.Action, from string, to Status, actor kernel.UUID, now time.Time, meta audit.Metadata) error {
	entry, err := audit.NewEntry(audit.EntityOrder, o.id, action, from, to.String(), actor, now, meta)
	if err != nil {
		return err
	}
	o.journal.Record(entry)
	return nil
}
