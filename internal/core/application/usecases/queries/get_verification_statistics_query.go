package queries

import (
	"errors"
	"time"

	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var (
	ErrGetVerificationStatisticsQueryIsNotConstructed = errors.New(
		"GetVerificationStatisticsQuery must be created via NewGetVerificationStatisticsQuery constructor",
	)
)

// GetVerificationStatisticsQuery counts applications by status and priority for
// the admin dashboard. Info requests still open after asOf are counted as overdue.
//
// Example:
//
//	query, _ := NewGetVerificationStatisticsQuery(time.Now())
//	stats, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to load statistics: %w", err)
//	}
//	fmt.Printf("%d waiting for review\n", stats.ByStatus["submitted"])
type GetVerificationStatisticsQuery struct {
	asOf time.Time

	guard guard.ConstructorGuard
}

func NewGetVerificationStatisticsQuery(asOf time.Time) (GetVerificationStatisticsQuery, error) {
	if asOf.IsZero() {
		return GetVerificationStatisticsQuery{}, errs.NewValueIsRequiredError("asOf")
	}
	return GetVerificationStatisticsQuery{asOf: asOf, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetVerificationStatisticsQuery) Validate() error {
	return q.guard.Validate(ErrGetVerificationStatisticsQueryIsNotConstructed)
}

func (q GetVerificationStatisticsQuery) AsOf() time.Time {
	return q.asOf
}

// GetVerificationStatisticsQueryResponse is the dashboard read model. Every
// known status and priority is present, with zero when nothing matches.
type GetVerificationStatisticsQueryResponse struct {
	Total               int64
	ByStatus            map[string]int64
	ByPriority          map[string]int64
	OverdueInfoRequests int64
}
