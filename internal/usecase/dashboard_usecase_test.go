package usecase

import (
	"context"
	"errors"
	"testing"

	"pharma_fieldops/internal/domain/entities"
	"pharma_fieldops/internal/domain/filtering"
	"pharma_fieldops/internal/domain/reference"
	mock_interfaces "pharma_fieldops/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func dashboardVisits() []entities.Visit {
	return []entities.Visit{
		{ID: "1", DoctorName: "د. أحمد محمد", Product1: "Panadol", Samples1: 2, Country: "المملكة العربية السعودية", Area: "المنطقة الشرقية", City: "الدمام", Classification: "Class A", VisitDate: "2024-03-01"},
		{ID: "2", DoctorName: "د. سارة خالد", Product1: "Augmentin", Samples1: 4, Country: "الإمارات العربية المتحدة", Area: "إمارة دبي", City: "دبي", Classification: "Class B", VisitDate: "2024-03-02"},
		{ID: "3", DoctorName: "د. أحمد محمد", Product1: "Brufen", Samples1: 1, Country: "المملكة العربية السعودية", Area: "المنطقة الشرقية", City: "الخبر", Classification: "Class A", VisitDate: "2024-03-05"},
	}
}

func TestDashboardUseCase_Dashboard(t *testing.T) {
	ref := reference.Default()

	t.Run("filters and aggregates", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mock_interfaces.NewMockIRecordStore(ctrl)
		uc := NewDashboardUseCase(store, ref)
		store.EXPECT().LoadVisits(gomock.Any()).Return(dashboardVisits(), nil)

		got, err := uc.Dashboard(context.Background(), filtering.State{Country: "المملكة العربية السعودية"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got.Records) != 2 || got.Metrics.TotalVisits != 2 || got.Metrics.ByDoctor[0].Value != 2 {
			t.Fatalf("unexpected view: %+v", got)
		}
		if len(got.Options.Areas) != 3 || len(got.Options.Cities) != 0 {
			t.Fatalf("unexpected options: %+v", got.Options)
		}
	})

	t.Run("invalid state is rejected before loading", func(t *testing.T) {
		uc := NewDashboardUseCase(nil, ref)
		_, err := uc.Dashboard(context.Background(), filtering.State{Country: "مصر", Area: "إمارة دبي"})
		if !errors.Is(err, filtering.ErrAreaNotInCountry) {
			t.Fatalf("expected ErrAreaNotInCountry, got %v", err)
		}
	})
}

func TestDashboardUseCase_ApplyFilter(t *testing.T) {
	ref := reference.Default()

	t.Run("doctor change clears products", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mock_interfaces.NewMockIRecordStore(ctrl)
		uc := NewDashboardUseCase(store, ref)
		store.EXPECT().LoadVisits(gomock.Any()).Return(dashboardVisits(), nil)

		prev := filtering.State{DoctorName: "د. أحمد محمد", Product1: "Panadol"}
		got, err := uc.ApplyFilter(context.Background(), prev, "doctorName", "د. سارة خالد")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.State.DoctorName != "د. سارة خالد" || got.State.Product1 != "" {
			t.Fatalf("unexpected state: %+v", got.State)
		}
		if len(got.Options.AvailableProducts.Products1) != 2 || got.Options.AvailableProducts.Products1[0] != "Augmentin" {
			t.Fatalf("unexpected products: %+v", got.Options.AvailableProducts)
		}
	})

	t.Run("unknown field", func(t *testing.T) {
		uc := NewDashboardUseCase(nil, ref)
		if _, err := uc.ApplyFilter(context.Background(), filtering.State{}, "color", "red"); !errors.Is(err, filtering.ErrUnknownField) {
			t.Fatalf("expected ErrUnknownField, got %v", err)
		}
	})

	t.Run("rejected update", func(t *testing.T) {
		uc := NewDashboardUseCase(nil, ref)
		prev := filtering.State{Country: "مصر"}
		if _, err := uc.ApplyFilter(context.Background(), prev, "area", "إمارة دبي"); !errors.Is(err, filtering.ErrAreaNotInCountry) {
			t.Fatalf("expected ErrAreaNotInCountry, got %v", err)
		}
	})
}

func TestDashboardUseCase_Focus(t *testing.T) {
	ref := reference.Default()

	t.Run("location field keeps the chain", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mock_interfaces.NewMockIRecordStore(ctrl)
		uc := NewDashboardUseCase(store, ref)
		store.EXPECT().LoadVisits(gomock.Any()).Return(dashboardVisits(), nil)

		got, err := uc.Focus(context.Background(), "3", "city")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.City != "الخبر" || got.Area != "المنطقة الشرقية" || got.DoctorName != "" {
			t.Fatalf("unexpected state: %+v", got)
		}
	})

	t.Run("unknown visit", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mock_interfaces.NewMockIRecordStore(ctrl)
		uc := NewDashboardUseCase(store, ref)
		store.EXPECT().LoadVisits(gomock.Any()).Return(dashboardVisits(), nil)

		if _, err := uc.Focus(context.Background(), "99", "city"); !errors.Is(err, ErrVisitNotFound) {
			t.Fatalf("expected ErrVisitNotFound, got %v", err)
		}
	})

	t.Run("missing id", func(t *testing.T) {
		uc := NewDashboardUseCase(nil, ref)
		if _, err := uc.Focus(context.Background(), "", "city"); !errors.Is(err, ErrInvalidVisitID) {
			t.Fatalf("expected ErrInvalidVisitID, got %v", err)
		}
	})
}
