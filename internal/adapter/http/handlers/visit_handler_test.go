package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"pharma_fieldops/internal/adapter/http/handlers/mocks"
	"pharma_fieldops/internal/domain/entities"
	"pharma_fieldops/internal/domain/filtering"
	"pharma_fieldops/internal/domain/metrics"
	"pharma_fieldops/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

const visitBody = `{"doctorName":"د. أحمد محمد","product1":"Panadol","samples1":2,"visitDate":"2024-03-04","visitTime":"10:30","country":"المملكة العربية السعودية","area":"المنطقة الشرقية","city":"الدمام"}`

func TestVisitHandler_CreateVisit(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing doctor", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		h := NewVisitHandler(mocks.NewMockIVisitUseCase(ctrl))

		r := gin.New()
		r.POST("/v1/visits", h.CreateVisit)

		w := performRequest(r, http.MethodPost, "/v1/visits", `{"visitDate":"2024-03-04"}`)
		expectStatus(t, w, http.StatusBadRequest)
	})

	t.Run("location rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIVisitUseCase(ctrl)
		h := NewVisitHandler(uc)

		r := gin.New()
		r.POST("/v1/visits", h.CreateVisit)

		uc.EXPECT().Record(gomock.Any(), gomock.Any()).Return(entities.Visit{}, filtering.ErrCityNotInArea)

		w := performRequest(r, http.MethodPost, "/v1/visits", visitBody)
		expectStatus(t, w, http.StatusBadRequest)
		if decodeError(t, w).Code != "INVALID_LOCATION" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("invalid time", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIVisitUseCase(ctrl)
		h := NewVisitHandler(uc)

		r := gin.New()
		r.POST("/v1/visits", h.CreateVisit)

		uc.EXPECT().Record(gomock.Any(), gomock.Any()).Return(entities.Visit{}, usecase.ErrInvalidVisitTime)

		w := performRequest(r, http.MethodPost, "/v1/visits", visitBody)
		expectStatus(t, w, http.StatusBadRequest)
		if decodeError(t, w).Code != "INVALID_VISIT" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIVisitUseCase(ctrl)
		h := NewVisitHandler(uc)

		r := gin.New()
		r.POST("/v1/visits", h.CreateVisit)

		uc.EXPECT().Record(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, v entities.Visit) (entities.Visit, error) {
			if v.City != "الدمام" || v.Samples1 != 2 {
				t.Fatalf("unexpected visit: %+v", v)
			}
			v.ID = "visit-1"
			return v, nil
		})

		w := performRequest(r, http.MethodPost, "/v1/visits", visitBody)
		expectStatus(t, w, http.StatusCreated)

		var body entities.Visit
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid body: %v", err)
		}
		if body.ID != "visit-1" {
			t.Fatalf("unexpected body: %+v", body)
		}
	})
}

func TestVisitHandler_GetMonthlyReport(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid month", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIVisitUseCase(ctrl)
		h := NewVisitHandler(uc)

		r := gin.New()
		r.GET("/v1/visits/report", h.GetMonthlyReport)

		uc.EXPECT().MonthlyReport(gomock.Any(), "2024-13").Return(metrics.MonthlyVisitReport{}, metrics.ErrInvalidMonth)

		w := performRequest(r, http.MethodGet, "/v1/visits/report?month=2024-13", "")
		expectStatus(t, w, http.StatusBadRequest)
		if decodeError(t, w).Code != "INVALID_MONTH" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIVisitUseCase(ctrl)
		h := NewVisitHandler(uc)

		r := gin.New()
		r.GET("/v1/visits/report", h.GetMonthlyReport)

		uc.EXPECT().MonthlyReport(gomock.Any(), "2024-09").Return(metrics.MonthlyVisitReport{Month: "2024-09", TargetVisits: 125}, nil)

		w := performRequest(r, http.MethodGet, "/v1/visits/report?month=2024-09", "")
		expectStatus(t, w, http.StatusOK)

		var body metrics.MonthlyVisitReport
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid body: %v", err)
		}
		if body.TargetVisits != 125 {
			t.Fatalf("unexpected body: %+v", body)
		}
	})
}
