package services

import (
	"time"

	"marketplace/internal/core/domain/model/audit"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/domain/model/verification"
)

// EventType names an integration event.
type EventType string

const (
	EventVerificationApproved  EventType = "verification.approved"
	EventVerificationRejected  EventType = "verification.rejected"
	EventVerificationSuspended EventType = "verification.suspended"
	EventOrderDelivered        EventType = "order.delivered"
	EventOrderCancelled        EventType = "order.cancelled"
)

// LifecycleEvent is raised once when an application or an order reaches a
// terminal status.
type LifecycleEvent struct {
	ID         kernel.UUID
	Type       EventType
	EntityType audit.EntityType
	EntityID   kernel.UUID
	OccurredAt time.Time
	Payload    map[string]any
}

// LifecycleHooks maps terminal transitions to integration events.
//
// Example usage:
//
//	hooks := services.NewLifecycleHooks()
//	previous := app.Status()
//	_ = app.Decide(reviewer, verification.StatusApproved, "", nil, time.Time{}, now)
//	if evt, ok := hooks.ApplicationTransitioned(app, previous, now); ok {
//	    // store evt in the outbox
//	}
type LifecycleHooks struct{}

func NewLifecycleHooks() LifecycleHooks {
	return LifecycleHooks{}
}

// ApplicationTransitioned returns the event for an application that has just
// moved from previous into a terminal status.
func (LifecycleHooks) ApplicationTransitioned(
	app *verification.Application,
	previous verification.Status,
	now time.Time,
) (LifecycleEvent, bool) {
	if app == nil || previous == app.Status() || !app.Status().IsTerminal() {
		return LifecycleEvent{}, false
	}

	var eventType EventType
	switch app.Status() {
	case verification.StatusApproved:
		eventType = EventVerificationApproved
	case verification.StatusRejected:
		eventType = EventVerificationRejected
	default:
		eventType = EventVerificationSuspended
	}

	payload := map[string]any{
		"application_id": app.ID().String(),
		"subject_type":   app.SubjectType().String(),
		"subject_id":     app.SubjectID().String(),
		"status":         app.Status().String(),
		"version":        app.Version(),
	}
	if reviews := app.Reviews(); len(reviews) > 0 {
		last := reviews[len(reviews)-1]
		payload["reviewer_id"] = last.ReviewerID().String()
		if last.Comments() != "" {
			payload["comments"] = last.Comments()
		}
	}

	return LifecycleEvent{
		ID:         kernel.NewUUID(),
		Type:       eventType,
		EntityType: audit.EntityApplication,
		EntityID:   app.ID(),
		OccurredAt: now.UTC(),
		Payload:    payload,
	}, true
}

// OrderTransitioned returns the event for an order that has just been
// delivered or cancelled.
func (LifecycleHooks) OrderTransitioned(o *order.Order, previous order.Status, now time.Time) (LifecycleEvent, bool) {
	if o == nil || previous == o.Status() || !o.Status().IsTerminal() {
		return LifecycleEvent{}, false
	}

	eventType := EventOrderDelivered
	if o.Status() == order.Cancelled {
		eventType = EventOrderCancelled
	}

	payload := map[string]any{
		"order_id":    o.ID().String(),
		"customer_id": o.CustomerID().String(),
		"business_id": o.BusinessID().String(),
		"status":      o.Status().String(),
		"version":     o.Version(),
	}
	if driver := o.DeliveryPerson(); driver != nil {
		payload["delivery_person_id"] = driver.String()
	}
	if history := o.History(); len(history) > 0 {
		last := history[len(history)-1]
		payload["actor_id"] = last.ActorID.String()
		if last.Notes != "" {
			payload["notes"] = last.Notes
		}
	}

	return LifecycleEvent{
		ID:         kernel.NewUUID(),
		Type:       eventType,
		EntityType: audit.EntityOrder,
		EntityID:   o.ID(),
		OccurredAt: now.UTC(),
		Payload:    payload,
	}, true
}
