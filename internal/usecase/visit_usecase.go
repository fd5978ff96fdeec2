package usecase

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"pharma_fieldops/internal/domain/entities"
	"pharma_fieldops/internal/domain/filtering"
	"pharma_fieldops/internal/domain/metrics"
	"pharma_fieldops/internal/domain/reference"
	"pharma_fieldops/internal/usecase/interfaces"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrInvalidVisitDate = errors.New("invalid visit date")
	ErrInvalidVisitTime = errors.New("invalid visit time")
	ErrInvalidSamples   = errors.New("samples must not be negative")
)

// IVisitUseCase records doctor visits and reports on them.

type IVisitUseCase interface {
	List(ctx context.Context) ([]entities.Visit, error)
	Record(ctx context.Context, v entities.Visit) (entities.Visit, error)
	MonthlyReport(ctx context.Context, month string) (metrics.MonthlyVisitReport, error)
}

type VisitUseCase struct {
	mu       sync.Mutex
	store    interfaces.IRecordStore
	ref      *reference.Data
	calendar ICalendarUseCase
	log      *zap.Logger
}

var _ IVisitUseCase = (*VisitUseCase)(nil)

func NewVisitUseCase(store interfaces.IRecordStore, ref *reference.Data, cal ICalendarUseCase, log *zap.Logger) *VisitUseCase {
	if log == nil {
		log = zap.NewNop()
	}
	return &VisitUseCase{store: store, ref: ref, calendar: cal, log: log}
}

func (u *VisitUseCase) List(ctx context.Context) ([]entities.Visit, error) {
	return u.store.LoadVisits(ctx)
}

// Record validates and appends a visit. The location must follow the
// reference tree. Products outside the doctor's lists are accepted with a
// warning since field reps sometimes promote off-list items.
func (u *VisitUseCase) Record(ctx context.Context, v entities.Visit) (entities.Visit, error) {
	v.DoctorName = strings.TrimSpace(v.DoctorName)
	v.VisitDate = strings.TrimSpace(v.VisitDate)
	v.VisitTime = strings.TrimSpace(v.VisitTime)
	if v.DoctorName == "" {
		return entities.Visit{}, ErrInvalidDoctorName
	}
	if _, err := time.Parse(filtering.DateLayout, v.VisitDate); err != nil {
		return entities.Visit{}, ErrInvalidVisitDate
	}
	if v.VisitTime != "" {
		if _, err := time.Parse("15:04", v.VisitTime); err != nil {
			return entities.Visit{}, ErrInvalidVisitTime
		}
	}
	for _, s := range v.Slots() {
		if s.Samples < 0 {
			return entities.Visit{}, ErrInvalidSamples
		}
	}
	location := filtering.State{Country: v.Country, Area: v.Area, City: v.City}
	if err := filtering.Validate(location, u.ref); err != nil {
		return entities.Visit{}, err
	}
	products := filtering.State{DoctorName: v.DoctorName, Product1: v.Product1, Product2: v.Product2, Product3: v.Product3}
	if err := filtering.Validate(products, u.ref); err != nil {
		u.log.Warn("[visit][usecase] product not in doctor list",
			zap.String("doctor", v.DoctorName), zap.Error(err))
	}

	u.mu.Lock()
	defer u.mu.Unlock()

	visits, err := u.store.LoadVisits(ctx)
	if err != nil {
		return entities.Visit{}, err
	}
	v.ID = uuid.NewString()
	if err := u.store.SaveVisits(ctx, append(visits, v)); err != nil {
		return entities.Visit{}, err
	}
	u.log.Info("[visit][usecase] visit recorded", zap.String("id", v.ID), zap.String("doctor", v.DoctorName))
	return v, nil
}

// Seed stores visits only when the visit list is empty and reports how many
// were written.
func (u *VisitUseCase) Seed(ctx context.Context, visits []entities.Visit) (int, error) {
	if len(visits) == 0 {
		return 0, nil
	}

	u.mu.Lock()
	defer u.mu.Unlock()

	existing, err := u.store.LoadVisits(ctx)
	if err != nil {
		return 0, err
	}
	if len(existing) > 0 {
		return 0, nil
	}
	if err := u.store.SaveVisits(ctx, visits); err != nil {
		return 0, err
	}
	return len(visits), nil
}

func (u *VisitUseCase) MonthlyReport(ctx context.Context, month string) (metrics.MonthlyVisitReport, error) {
	month = strings.TrimSpace(month)
	if _, err := time.Parse(metrics.MonthLayout, month); err != nil {
		return metrics.MonthlyVisitReport{}, metrics.ErrInvalidMonth
	}
	workDays, err := u.calendar.ExpectedWorkDays(ctx, month)
	if err != nil {
		return metrics.MonthlyVisitReport{}, err
	}
	visits, err := u.store.LoadVisits(ctx)
	if err != nil {
		return metrics.MonthlyVisitReport{}, err
	}
	return metrics.BuildMonthlyVisitReport(visits, month, workDays)
}
