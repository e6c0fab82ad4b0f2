package http

import (
	"time"

	"marketplace/internal/core/application/usecases/queries"
	"marketplace/internal/core/domain/model/audit"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/domain/model/verification"
	"marketplace/internal/generated/servers"

	openapi_types "github.com/oapi-codegen/runtime/types"
)

func toKernelUUID(id openapi_types.UUID) (kernel.UUID, error) {
	return kernel.UUIDFromBytes(id[:])
}

func optionalString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func optionalTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	utc := t.UTC()
	return &utc
}

func deref[T any](p *T) T {
	var zero T
	if p == nil {
		return zero
	}
	return *p
}

func applicationResponse(app *verification.Application) servers.Application {
	documents := make([]servers.Document, 0, len(app.Documents()))
	for _, d := range app.Documents() {
		documents = append(documents, servers.Document{
			Id:              d.ID().Bytes(),
			Type:            d.Type(),
			Required:        d.Required(),
			Status:          d.Status().String(),
			ReviewedBy:      kernel.PtrBytes(d.ReviewedBy()),
			RejectionReason: optionalString(d.RejectionReason()),
			ReviewedAt:      optionalTime(d.ReviewedAt()),
		})
	}

	reviews := make([]servers.ReviewRecord, 0, len(app.Reviews()))
	for _, r := range app.Reviews() {
		reviews = append(reviews, servers.ReviewRecord{
			ReviewerId: r.ReviewerID().Bytes(),
			FromStatus: r.FromStatus().String(),
			ToStatus:   r.ToStatus().String(),
			Comments:   optionalString(r.Comments()),
			RecordedAt: r.RecordedAt().UTC(),
		})
	}

	requests := make([]servers.InfoRequest, 0, len(app.InfoRequests()))
	for _, r := range app.InfoRequests() {
		requests = append(requests, servers.InfoRequest{
			Id:                 r.ID().Bytes(),
			Message:            r.Message(),
			DocumentsRequested: r.DocumentsRequested(),
			DueDate:            r.DueDate().UTC(),
			Status:             r.Status().String(),
			CreatedAt:          r.CreatedAt().UTC(),
			ResolvedAt:         optionalTime(r.ResolvedAt()),
		})
	}

	return servers.Application{
		Id:                 app.ID().Bytes(),
		SubjectType:        app.SubjectType().String(),
		SubjectId:          app.SubjectID().Bytes(),
		Status:             app.Status().String(),
		Priority:           app.Priority().String(),
		AssignedReviewerId: kernel.PtrBytes(app.AssignedReviewerID()),
		SubmittedAt:        optionalTime(app.SubmittedAt()),
		CompletedAt:        optionalTime(app.CompletedAt()),
		CreatedAt:          app.CreatedAt().UTC(),
		Version:            app.Version(),
		Documents:          documents,
		Reviews:            reviews,
		InfoRequests:       requests,
	}
}

func orderResponse(o *order.Order) servers.Order {
	history := make([]servers.HistoryEntry, 0, len(o.History()))
	for _, h := range o.History() {
		history = append(history, servers.HistoryEntry{
			Status:  h.Status.String(),
			At:      h.At.UTC(),
			ActorId: h.ActorID.Bytes(),
			Notes:   optionalString(h.Notes),
		})
	}

	return servers.Order{
		Id:               o.ID().Bytes(),
		CustomerId:       o.CustomerID().Bytes(),
		BusinessId:       o.BusinessID().Bytes(),
		Status:           o.Status().String(),
		DeliveryPersonId: kernel.PtrBytes(o.DeliveryPerson()),
		Progress:         o.Progress(),
		CreatedAt:        o.CreatedAt().UTC(),
		Version:          o.Version(),
		History:          history,
	}
}

func auditEntriesResponse(entries []audit.Entry) []servers.AuditEntry {
	response := make([]servers.AuditEntry, 0, len(entries))
	for _, e := range entries {
		metadata := map[string]interface{}(e.Metadata())
		if metadata == nil {
			metadata = map[string]interface{}{}
		}
		response = append(response, servers.AuditEntry{
			Sequence:   e.Sequence(),
			EntityType: e.EntityType().String(),
			EntityId:   e.EntityID().Bytes(),
			Action:     string(e.Action()),
			FromState:  optionalString(e.FromState()),
			ToState:    e.ToState(),
			ActorId:    e.ActorID().Bytes(),
			OccurredAt: e.OccurredAt().UTC(),
			Metadata:   metadata,
		})
	}
	return response
}

func statisticsResponse(stats queries.GetVerificationStatisticsQueryResponse) servers.Statistics {
	return servers.Statistics{
		Total:               stats.Total,
		ByStatus:            stats.ByStatus,
		ByPriority:          stats.ByPriority,
		OverdueInfoRequests: stats.OverdueInfoRequests,
	}
}

func reviewQueueResponse(items []queries.ListReviewQueueQueryResponse) []servers.ReviewQueueItem {
	response := make([]servers.ReviewQueueItem, 0, len(items))
	for _, item := range items {
		response = append(response, servers.ReviewQueueItem{
			Id:                 item.ID.Bytes(),
			SubjectType:        item.SubjectType,
			SubjectId:          item.SubjectID.Bytes(),
			Status:             item.Status,
			Priority:           item.Priority,
			AssignedReviewerId: kernel.PtrBytes(item.AssignedReviewerID),
			SubmittedAt:        optionalTime(item.SubmittedAt),
			OpenInfoRequests:   item.OpenInfoRequests,
		})
	}
	return response
}
