package queries

import (
	"context"

	"marketplace/internal/core/domain/model/verification"

	"gorm.io/gorm"
)

// GetVerificationStatisticsQueryHandler aggregates the applications table with
// plain SQL.
//
// Example:
//
//	handler := NewGetVerificationStatisticsQueryHandler(db)
//	query, _ := NewGetVerificationStatisticsQuery(time.Now())
//
//	stats, err := handler.Handle(ctx, query)
//	if err != nil {
//	    log.Printf("Failed to get statistics: %v", err)
//	    return err
//	}
type GetVerificationStatisticsQueryHandler struct {
	db *gorm.DB
}

// NewGetVerificationStatisticsQueryHandler requires a GORM database connection.
func NewGetVerificationStatisticsQueryHandler(db *gorm.DB) GetVerificationStatisticsQueryHandler {
	return GetVerificationStatisticsQueryHandler{db: db}
}

// Handle runs one grouped count over applications and one count over overdue
// info requests. Soft-deleted rows are ignored.
func (h GetVerificationStatisticsQueryHandler) Handle(
	ctx context.Context,
	query GetVerificationStatisticsQuery,
) (GetVerificationStatisticsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetVerificationStatisticsQueryResponse{}, err
	}

	stats := GetVerificationStatisticsQueryResponse{
		ByStatus:   make(map[string]int64),
		ByPriority: make(map[string]int64),
	}
	for _, s := range verification.Statuses() {
		stats.ByStatus[s.String()] = 0
	}
	for _, p := range verification.Priorities() {
		stats.ByPriority[p.String()] = 0
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			status,
			priority,
			COUNT(*)
		FROM verification_applications
		WHERE deleted_at IS NULL
		GROUP BY status, priority
	`).Rows()
	if err != nil {
		return GetVerificationStatisticsQueryResponse{}, err
	}
	defer rows.Close()

	for rows.Next() {
		var status, priority string
		var count int64
		if err = rows.Scan(&status, &priority, &count); err != nil {
			return GetVerificationStatisticsQueryResponse{}, err
		}
		stats.ByStatus[status] += count
		stats.ByPriority[priority] += count
		stats.Total += count
	}
	if err = rows.Err(); err != nil {
		return GetVerificationStatisticsQueryResponse{}, err
	}

	err = h.db.WithContext(ctx).Raw(`
		SELECT COUNT(*)
		FROM verification_info_requests
		WHERE deleted_at IS NULL
			AND status = ?
			AND due_date < ?
	`, verification.InfoRequestOpen.String(), query.AsOf()).Scan(&stats.OverdueInfoRequests).Error
	if err != nil {
		return GetVerificationStatisticsQueryResponse{}, err
	}

	return stats, nil
}
