package usecase

import (
	"context"
	"strings"
	"time"

	"pharma_fieldops/internal/domain/metrics"
	"pharma_fieldops/internal/usecase/interfaces"
)

// IPharmacyUseCase aggregates collections and orders for the pharmacy
// dashboard and monthly report.

type IPharmacyUseCase interface {
	Dashboard(ctx context.Context, f metrics.PharmacyFilter) (metrics.PharmacyDashboard, error)
	MonthlyReport(ctx context.Context, month string) (metrics.PharmacyMonthlyReport, error)
}

type PharmacyUseCase struct {
	store interfaces.IRecordStore
}

var _ IPharmacyUseCase = (*PharmacyUseCase)(nil)

func NewPharmacyUseCase(store interfaces.IRecordStore) *PharmacyUseCase {
	return &PharmacyUseCase{store: store}
}

func (u *PharmacyUseCase) Dashboard(ctx context.Context, f metrics.PharmacyFilter) (metrics.PharmacyDashboard, error) {
	records, err := u.store.LoadCollections(ctx)
	if err != nil {
		return metrics.PharmacyDashboard{}, err
	}
	return metrics.BuildPharmacyDashboard(records, f), nil
}

func (u *PharmacyUseCase) MonthlyReport(ctx context.Context, month string) (metrics.PharmacyMonthlyReport, error) {
	month = strings.TrimSpace(month)
	if _, err := time.Parse(metrics.MonthLayout, month); err != nil {
		return metrics.PharmacyMonthlyReport{}, metrics.ErrInvalidMonth
	}
	records, err := u.store.LoadCollections(ctx)
	if err != nil {
		return metrics.PharmacyMonthlyReport{}, err
	}
	return metrics.BuildPharmacyMonthlyReport(records, month)
}
