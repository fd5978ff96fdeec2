package handlers

import (
	"errors"
	"net/http"

	request "pharma_fieldops/internal/adapter/http/dto/request"
	"pharma_fieldops/internal/domain/calendar"
	"pharma_fieldops/internal/domain/filtering"
	"pharma_fieldops/internal/domain/metrics"
	"pharma_fieldops/internal/usecase"
	"pharma_fieldops/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type VisitHandler struct {
	usecase usecase.IVisitUseCase
}

func NewVisitHandler(uc usecase.IVisitUseCase) *VisitHandler {
	return &VisitHandler{usecase: uc}
}

func (h *VisitHandler) ListVisits(c *gin.Context) {
	visits, err := h.usecase.List(c.Request.Context())
	if err != nil {
		writeError(c, mapVisitError(err))
		return
	}
	c.JSON(http.StatusOK, visits)
}

// CreateVisit godoc
// @Summary  Record a doctor visit
// @Tags     visits
// @Accept   json
// @Produce  json
// @Param    visit body request.VisitRequest true "Visit"
// @Success  201 {object} entities.Visit
// @Failure  400 {object} pkg.HTTPError
// @Router   /visits [post]
func (h *VisitHandler) CreateVisit(c *gin.Context) {
	var payload request.VisitRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidRequest)
		return
	}

	visit, err := h.usecase.Record(c.Request.Context(), payload.ToEntity())
	if err != nil {
		zap.L().Info("[visit][handler] create rejected", zap.String("doctor", payload.DoctorName), zap.Error(err))
		writeError(c, mapVisitError(err))
		return
	}
	c.JSON(http.StatusCreated, visit)
}

// GetMonthlyReport returns the KPI sheet of ?month=yyyy-MM.
func (h *VisitHandler) GetMonthlyReport(c *gin.Context) {
	report, err := h.usecase.MonthlyReport(c.Request.Context(), c.Query("month"))
	if err != nil {
		writeError(c, mapVisitError(err))
		return
	}
	c.JSON(http.StatusOK, report)
}

func mapVisitError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidDoctorName),
		errors.Is(err, usecase.ErrInvalidVisitDate),
		errors.Is(err, usecase.ErrInvalidVisitTime),
		errors.Is(err, usecase.ErrInvalidSamples):
		return pkg.NewDomainErrorSimple("INVALID_VISIT", err.Error(), http.StatusBadRequest)
	case errors.Is(err, filtering.ErrUnknownCountry),
		errors.Is(err, filtering.ErrAreaNotInCountry),
		errors.Is(err, filtering.ErrCityNotInArea):
		return pkg.NewDomainErrorSimple("INVALID_LOCATION", err.Error(), http.StatusBadRequest)
	case errors.Is(err, metrics.ErrInvalidMonth), errors.Is(err, calendar.ErrInvalidMonth):
		return errInvalidMonth
	default:
		return internalError(err)
	}
}
