package usecase

import (
	"context"
	"errors"
	"testing"

	"pharma_fieldops/internal/domain/entities"
	"pharma_fieldops/internal/domain/reference"
	mock_interfaces "pharma_fieldops/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func validSampleRequest() entities.SampleRequest {
	return entities.SampleRequest{
		RequestDate:  "2024-03-04",
		DeliveryDate: "2024-03-06",
		Medicine:     "Panadol",
		DoctorName:   "د. أحمد محمد",
		Quantity:     20,
		Notes:        " عينات للعيادة ",
	}
}

func TestSampleUseCase_Create(t *testing.T) {
	t.Run("validation", func(t *testing.T) {
		uc := NewSampleUseCase(nil, reference.Default(), nil)
		cases := []struct {
			name   string
			mutate func(s *entities.SampleRequest)
			err    error
		}{
			{"missing doctor", func(s *entities.SampleRequest) { s.DoctorName = " " }, ErrInvalidDoctorName},
			{"doctor outside the directory", func(s *entities.SampleRequest) { s.DoctorName = "د. غير معروف" }, ErrDoctorNotFound},
			{"missing medicine", func(s *entities.SampleRequest) { s.Medicine = "" }, ErrInvalidSampleMedicine},
			{"zero quantity", func(s *entities.SampleRequest) { s.Quantity = 0 }, ErrInvalidSampleQuantity},
			{"negative quantity", func(s *entities.SampleRequest) { s.Quantity = -3 }, ErrInvalidSampleQuantity},
			{"bad request date", func(s *entities.SampleRequest) { s.RequestDate = "04/03/2024" }, ErrInvalidRequestDate},
			{"bad delivery date", func(s *entities.SampleRequest) { s.DeliveryDate = "2024-02-30" }, ErrInvalidDeliveryDate},
			{"delivery before request", func(s *entities.SampleRequest) { s.DeliveryDate = "2024-03-03" }, ErrDeliveryBeforeRequest},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				in := validSampleRequest()
				tc.mutate(&in)
				if _, err := uc.Create(context.Background(), in); !errors.Is(err, tc.err) {
					t.Fatalf("expected %v, got %v", tc.err, err)
				}
			})
		}
	})

	t.Run("same-day delivery is accepted", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mock_interfaces.NewMockIRecordStore(ctrl)
		uc := NewSampleUseCase(store, reference.Default(), nil)

		store.EXPECT().LoadSampleRequests(gomock.Any()).Return(nil, nil)
		store.EXPECT().SaveSampleRequests(gomock.Any(), gomock.Len(1)).Return(nil)

		in := validSampleRequest()
		in.DeliveryDate = in.RequestDate
		if _, err := uc.Create(context.Background(), in); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("success appends to the stored list", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mock_interfaces.NewMockIRecordStore(ctrl)
		uc := NewSampleUseCase(store, reference.Default(), nil)

		existing := []entities.SampleRequest{{ID: "s-0", DoctorName: "د. سارة خالد", Medicine: "Amoxil", Quantity: 5}}
		store.EXPECT().LoadSampleRequests(gomock.Any()).Return(existing, nil)
		store.EXPECT().SaveSampleRequests(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, requests []entities.SampleRequest) error {
				if len(requests) != 2 || requests[0].ID != "s-0" || requests[1].Medicine != "Panadol" {
					t.Fatalf("unexpected list: %+v", requests)
				}
				return nil
			},
		)

		got, err := uc.Create(context.Background(), validSampleRequest())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.ID == "" || got.CreatedAt.IsZero() || got.Notes != "عينات للعيادة" {
			t.Fatalf("unexpected result: %+v", got)
		}
	})

	t.Run("store error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mock_interfaces.NewMockIRecordStore(ctrl)
		uc := NewSampleUseCase(store, reference.Default(), nil)

		store.EXPECT().LoadSampleRequests(gomock.Any()).Return(nil, errors.New("boom"))

		if _, err := uc.Create(context.Background(), validSampleRequest()); err == nil {
			t.Fatalf("expected error")
		}
	})
}

func TestSampleUseCase_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	store := mock_interfaces.NewMockIRecordStore(ctrl)
	uc := NewSampleUseCase(store, reference.Default(), nil)

	store.EXPECT().LoadSampleRequests(gomock.Any()).Return([]entities.SampleRequest{{ID: "s-1"}}, nil)

	got, err := uc.List(context.Background())
	if err != nil || len(got) != 1 || got[0].ID != "s-1" {
		t.Fatalf("unexpected result: %+v %v", got, err)
	}
}
