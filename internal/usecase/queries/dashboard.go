package queries

import (
	"context"

	"shoestore-api/internal/pkg/errs"
)

type DashboardReadStore interface {
	GetStats(ctx context.Context) (*DashboardStats, error)
	GetPaymentsOverview(ctx context.Context) ([]*PaymentOverviewItem, error)
}

// DashboardQueries is the back-office read model: aggregate numbers and the
// payments listing, derived by scanning persisted orders.
type DashboardQueries interface {
	Stats(ctx context.Context) (*DashboardStats, error)
	PaymentsOverview(ctx context.Context) ([]*PaymentOverviewItem, error)
}

type dashboardQueriesImpl struct {
	store DashboardReadStore
}

func NewDashboardQueries(store DashboardReadStore) DashboardQueries {
	return &dashboardQueriesImpl{store: store}
}

func (q *dashboardQueriesImpl) Stats(ctx context.Context) (*DashboardStats, error) {
	stats, err := q.store.GetStats(ctx)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return stats, nil
}

func (q *dashboardQueriesImpl) PaymentsOverview(ctx context.Context) ([]*PaymentOverviewItem, error) {
	items, err := q.store.GetPaymentsOverview(ctx)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return items, nil
}
