package handlers

import (
	"errors"
	"net/http"

	request "pharma_fieldops/internal/adapter/http/dto/request"
	"pharma_fieldops/internal/domain/calendar"
	"pharma_fieldops/internal/usecase"
	"pharma_fieldops/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CalendarHandler manages the work calendar: holidays, weekly days off and
// working hours, plus the per-day and per-month views derived from them.

type CalendarHandler struct {
	usecase usecase.ICalendarUseCase
}

func NewCalendarHandler(uc usecase.ICalendarUseCase) *CalendarHandler {
	return &CalendarHandler{usecase: uc}
}

func (h *CalendarHandler) ListHolidays(c *gin.Context) {
	holidays, err := h.usecase.ListHolidays(c.Request.Context())
	if err != nil {
		writeError(c, mapCalendarError(err))
		return
	}
	c.JSON(http.StatusOK, holidays)
}

func (h *CalendarHandler) CreateHoliday(c *gin.Context) {
	var payload request.HolidayRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidRequest)
		return
	}

	created, err := h.usecase.AddHoliday(c.Request.Context(), payload.ToEntity())
	if err != nil {
		writeError(c, mapCalendarError(err))
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *CalendarHandler) UpdateHoliday(c *gin.Context) {
	var payload request.HolidayRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidRequest)
		return
	}

	updated, err := h.usecase.UpdateHoliday(c.Request.Context(), c.Param("id"), payload.ToEntity())
	if err != nil {
		writeError(c, mapCalendarError(err))
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *CalendarHandler) DeleteHoliday(c *gin.Context) {
	id := c.Param("id")
	if err := h.usecase.DeleteHoliday(c.Request.Context(), id); err != nil {
		writeError(c, mapCalendarError(err))
		return
	}
	zap.L().Info("[calendar][handler] holiday deleted", zap.String("id", id))
	c.Status(http.StatusNoContent)
}

func (h *CalendarHandler) GetSettings(c *gin.Context) {
	settings, err := h.usecase.GetSettings(c.Request.Context())
	if err != nil {
		writeError(c, mapCalendarError(err))
		return
	}
	c.JSON(http.StatusOK, settings)
}

func (h *CalendarHandler) UpdateSettings(c *gin.Context) {
	var payload request.WorkSettingsRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidRequest)
		return
	}

	settings, err := h.usecase.UpdateSettings(c.Request.Context(), payload.ToEntity())
	if err != nil {
		writeError(c, mapCalendarError(err))
		return
	}
	c.JSON(http.StatusOK, settings)
}

// GetDay reports whether ?date=yyyy-MM-dd is a day off and why.
func (h *CalendarHandler) GetDay(c *gin.Context) {
	info, err := h.usecase.Day(c.Request.Context(), c.Query("date"))
	if err != nil {
		writeError(c, mapCalendarError(err))
		return
	}
	c.JSON(http.StatusOK, info)
}

// GetMonth godoc
// @Summary  Work and holiday day counts of a month
// @Tags     calendar
// @Produce  json
// @Param    month query string true "yyyy-MM"
// @Success  200 {object} calendar.MonthStats
// @Failure  400 {object} pkg.HTTPError
// @Router   /calendar/month [get]
func (h *CalendarHandler) GetMonth(c *gin.Context) {
	stats, err := h.usecase.Month(c.Request.Context(), c.Query("month"))
	if err != nil {
		writeError(c, mapCalendarError(err))
		return
	}
	c.JSON(http.StatusOK, stats)
}

func mapCalendarError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidHolidayID):
		return errInvalidRequest
	case errors.Is(err, calendar.ErrInvalidMonth):
		return errInvalidMonth
	case errors.Is(err, calendar.ErrInvalidDate):
		return pkg.NewDomainErrorSimple("INVALID_DATE", "Date must use the yyyy-MM-dd layout", http.StatusBadRequest)
	case errors.Is(err, calendar.ErrInvalidHolidayName),
		errors.Is(err, calendar.ErrInvalidHolidayType):
		return pkg.NewDomainErrorSimple("INVALID_HOLIDAY", err.Error(), http.StatusBadRequest)
	case errors.Is(err, calendar.ErrInvalidWeekday), errors.Is(err, calendar.ErrInvalidHours):
		return pkg.NewDomainErrorSimple("INVALID_WORK_SETTINGS", err.Error(), http.StatusBadRequest)
	case errors.Is(err, usecase.ErrHolidayNotFound):
		return pkg.NewDomainErrorSimple("HOLIDAY_NOT_FOUND", "Holiday not found", http.StatusNotFound)
	default:
		return internalError(err)
	}
}
