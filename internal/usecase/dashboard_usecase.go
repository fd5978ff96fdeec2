package usecase

import (
	"context"
	"errors"
	"strings"

	"pharma_fieldops/internal/domain/entities"
	"pharma_fieldops/internal/domain/filtering"
	"pharma_fieldops/internal/domain/metrics"
	"pharma_fieldops/internal/domain/reference"
	"pharma_fieldops/internal/usecase/interfaces"
)

var (
	ErrVisitNotFound  = errors.New("visit not found")
	ErrInvalidVisitID = errors.New("invalid visit id")
)

// DashboardView is everything the visits dashboard renders for one filter
// state.
type DashboardView struct {
	State   filtering.State   `json:"state"`
	Options filtering.Options `json:"options"`
	Records []entities.Visit  `json:"records"`
	Metrics metrics.Dashboard `json:"metrics"`
}

// FilterChange is the result of applying one selector change.
type FilterChange struct {
	State   filtering.State   `json:"state"`
	Options filtering.Options `json:"options"`
}

// IDashboardUseCase drives the cascading filter and the derived views.
//
//   - Dashboard(): filter the visit history and aggregate it
//   - ApplyFilter(): one selector change through the reducer
//   - Focus(): narrow the dashboard to one attribute of a visit

type IDashboardUseCase interface {
	Dashboard(ctx context.Context, state filtering.State) (DashboardView, error)
	ApplyFilter(ctx context.Context, state filtering.State, field, value string) (FilterChange, error)
	Focus(ctx context.Context, visitID, field string) (filtering.State, error)
}

type DashboardUseCase struct {
	store interfaces.IRecordStore
	ref   *reference.Data
}

var _ IDashboardUseCase = (*DashboardUseCase)(nil)

func NewDashboardUseCase(store interfaces.IRecordStore, ref *reference.Data) *DashboardUseCase {
	return &DashboardUseCase{store: store, ref: ref}
}

func (u *DashboardUseCase) Dashboard(ctx context.Context, state filtering.State) (DashboardView, error) {
	if err := filtering.Validate(state, u.ref); err != nil {
		return DashboardView{}, err
	}
	visits, err := u.store.LoadVisits(ctx)
	if err != nil {
		return DashboardView{}, err
	}

	filtered := filtering.FilterRecords(visits, state)
	return DashboardView{
		State:   state,
		Options: filtering.DependentOptions(state, u.ref, visits),
		Records: filtered,
		Metrics: metrics.BuildDashboard(filtered),
	}, nil
}

func (u *DashboardUseCase) ApplyFilter(ctx context.Context, state filtering.State, field, value string) (FilterChange, error) {
	update, err := filtering.ParseUpdate(strings.TrimSpace(field), value)
	if err != nil {
		return FilterChange{}, err
	}
	next, err := filtering.Reduce(state, update, u.ref)
	if err != nil {
		return FilterChange{}, err
	}

	visits, err := u.store.LoadVisits(ctx)
	if err != nil {
		return FilterChange{}, err
	}
	return FilterChange{State: next, Options: filtering.DependentOptions(next, u.ref, visits)}, nil
}

func (u *DashboardUseCase) Focus(ctx context.Context, visitID, field string) (filtering.State, error) {
	visitID = strings.TrimSpace(visitID)
	if visitID == "" {
		return filtering.State{}, ErrInvalidVisitID
	}
	visits, err := u.store.LoadVisits(ctx)
	if err != nil {
		return filtering.State{}, err
	}
	for _, v := range visits {
		if v.ID == visitID {
			return filtering.FocusOn(v, strings.TrimSpace(field))
		}
	}
	return filtering.State{}, ErrVisitNotFound
}
