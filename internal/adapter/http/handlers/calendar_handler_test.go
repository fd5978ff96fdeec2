package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"pharma_fieldops/internal/adapter/http/handlers/mocks"
	"pharma_fieldops/internal/domain/calendar"
	"pharma_fieldops/internal/domain/entities"
	"pharma_fieldops/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func calendarRouter(h *CalendarHandler) *gin.Engine {
	r := gin.New()
	r.GET("/v1/calendar/holidays", h.ListHolidays)
	r.POST("/v1/calendar/holidays", h.CreateHoliday)
	r.PUT("/v1/calendar/holidays/:id", h.UpdateHoliday)
	r.DELETE("/v1/calendar/holidays/:id", h.DeleteHoliday)
	r.GET("/v1/calendar/settings", h.GetSettings)
	r.PUT("/v1/calendar/settings", h.UpdateSettings)
	r.GET("/v1/calendar/day", h.GetDay)
	r.GET("/v1/calendar/month", h.GetMonth)
	return r
}

func TestCalendarHandler_Holidays(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("create defaults type to custom", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICalendarUseCase(ctrl)
		r := calendarRouter(NewCalendarHandler(uc))

		uc.EXPECT().AddHoliday(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, h entities.Holiday) (entities.Holiday, error) {
			if h.Type != entities.HolidayTypeCustom {
				t.Fatalf("unexpected type: %s", h.Type)
			}
			h.ID = "h-1"
			return h, nil
		})

		w := performRequest(r, http.MethodPost, "/v1/calendar/holidays", `{"date":"2024-10-01","name":"إجازة الشركة"}`)
		expectStatus(t, w, http.StatusCreated)
	})

	t.Run("invalid type", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICalendarUseCase(ctrl)
		r := calendarRouter(NewCalendarHandler(uc))

		uc.EXPECT().AddHoliday(gomock.Any(), gomock.Any()).Return(entities.Holiday{}, calendar.ErrInvalidHolidayType)

		w := performRequest(r, http.MethodPost, "/v1/calendar/holidays", `{"date":"2024-10-01","name":"x","type":"weekly"}`)
		expectStatus(t, w, http.StatusBadRequest)
		if decodeError(t, w).Code != "INVALID_HOLIDAY" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("update missing holiday", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICalendarUseCase(ctrl)
		r := calendarRouter(NewCalendarHandler(uc))

		uc.EXPECT().UpdateHoliday(gomock.Any(), "h-9", gomock.Any()).Return(entities.Holiday{}, usecase.ErrHolidayNotFound)

		w := performRequest(r, http.MethodPut, "/v1/calendar/holidays/h-9", `{"date":"2024-10-01","name":"x"}`)
		expectStatus(t, w, http.StatusNotFound)
	})

	t.Run("delete", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICalendarUseCase(ctrl)
		r := calendarRouter(NewCalendarHandler(uc))

		uc.EXPECT().DeleteHoliday(gomock.Any(), "h-1").Return(nil)

		w := performRequest(r, http.MethodDelete, "/v1/calendar/holidays/h-1", "")
		expectStatus(t, w, http.StatusNoContent)
	})
}

func TestCalendarHandler_Settings(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid hours", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICalendarUseCase(ctrl)
		r := calendarRouter(NewCalendarHandler(uc))

		uc.EXPECT().UpdateSettings(gomock.Any(), gomock.Any()).Return(entities.WorkSettings{}, calendar.ErrInvalidHours)

		w := performRequest(r, http.MethodPut, "/v1/calendar/settings", `{"weeklyHolidays":[5],"workingHours":{"start":"17:00","end":"09:00"}}`)
		expectStatus(t, w, http.StatusBadRequest)
		if decodeError(t, w).Code != "INVALID_WORK_SETTINGS" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("get", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICalendarUseCase(ctrl)
		r := calendarRouter(NewCalendarHandler(uc))

		uc.EXPECT().GetSettings(gomock.Any()).Return(calendar.DefaultSettings(), nil)

		w := performRequest(r, http.MethodGet, "/v1/calendar/settings", "")
		expectStatus(t, w, http.StatusOK)

		var body entities.WorkSettings
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid body: %v", err)
		}
		if body.WorkingHours.Start == "" {
			t.Fatalf("unexpected body: %+v", body)
		}
	})
}

func TestCalendarHandler_DayAndMonth(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("day", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICalendarUseCase(ctrl)
		r := calendarRouter(NewCalendarHandler(uc))

		uc.EXPECT().Day(gomock.Any(), "2024-09-23").Return(calendar.DayInfo{Date: "2024-09-23", IsHoliday: true, Type: entities.HolidayTypeNational}, nil)

		w := performRequest(r, http.MethodGet, "/v1/calendar/day?date=2024-09-23", "")
		expectStatus(t, w, http.StatusOK)
	})

	t.Run("bad date", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICalendarUseCase(ctrl)
		r := calendarRouter(NewCalendarHandler(uc))

		uc.EXPECT().Day(gomock.Any(), "tomorrow").Return(calendar.DayInfo{}, calendar.ErrInvalidDate)

		w := performRequest(r, http.MethodGet, "/v1/calendar/day?date=tomorrow", "")
		expectStatus(t, w, http.StatusBadRequest)
		if decodeError(t, w).Code != "INVALID_DATE" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("month", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICalendarUseCase(ctrl)
		r := calendarRouter(NewCalendarHandler(uc))

		uc.EXPECT().Month(gomock.Any(), "2024-09").Return(calendar.MonthStats{Month: "2024-09", WorkDays: 25, HolidayDays: 5, TotalDays: 30}, nil)

		w := performRequest(r, http.MethodGet, "/v1/calendar/month?month=2024-09", "")
		expectStatus(t, w, http.StatusOK)

		var body calendar.MonthStats
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid body: %v", err)
		}
		if body.WorkDays != 25 {
			t.Fatalf("unexpected body: %+v", body)
		}
	})
}
