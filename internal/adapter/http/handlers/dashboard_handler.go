package handlers

import (
	"errors"
	"io"
	"net/http"

	request "pharma_fieldops/internal/adapter/http/dto/request"
	"pharma_fieldops/internal/domain/filtering"
	"pharma_fieldops/internal/usecase"
	"pharma_fieldops/pkg"

	"github.com/gin-gonic/gin"
)

// DashboardHandler drives the visits dashboard: the cascading filter and the
// derived views.

type DashboardHandler struct {
	usecase usecase.IDashboardUseCase
}

func NewDashboardHandler(uc usecase.IDashboardUseCase) *DashboardHandler {
	return &DashboardHandler{usecase: uc}
}

// GetDashboard godoc
// @Summary  Filtered visits, dependent options and the five dashboard views
// @Tags     dashboard
// @Accept   json
// @Produce  json
// @Param    state body filtering.State false "Filter state"
// @Success  200 {object} usecase.DashboardView
// @Failure  400 {object} pkg.HTTPError
// @Router   /dashboard [post]
func (h *DashboardHandler) GetDashboard(c *gin.Context) {
	// An empty body, chunked or not, means the zero state.
	var state filtering.State
	if err := c.ShouldBindJSON(&state); err != nil && !errors.Is(err, io.EOF) {
		writeError(c, errInvalidRequest)
		return
	}

	view, err := h.usecase.Dashboard(c.Request.Context(), state)
	if err != nil {
		writeError(c, mapDashboardError(err))
		return
	}
	c.JSON(http.StatusOK, view)
}

// ApplyFilter godoc
// @Summary  Apply one selector change with its cascade rules
// @Tags     dashboard
// @Accept   json
// @Produce  json
// @Param    change body request.FilterChangeRequest true "Current state and change"
// @Success  200 {object} usecase.FilterChange
// @Failure  400 {object} pkg.HTTPError
// @Router   /dashboard/filters [post]
func (h *DashboardHandler) ApplyFilter(c *gin.Context) {
	var payload request.FilterChangeRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidRequest)
		return
	}

	change, err := h.usecase.ApplyFilter(c.Request.Context(), payload.State, payload.Field, payload.Value)
	if err != nil {
		writeError(c, mapDashboardError(err))
		return
	}
	c.JSON(http.StatusOK, change)
}

// Focus narrows the dashboard to one attribute of a visit.
func (h *DashboardHandler) Focus(c *gin.Context) {
	var payload request.FocusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidRequest)
		return
	}

	state, err := h.usecase.Focus(c.Request.Context(), payload.VisitID, payload.Field)
	if err != nil {
		writeError(c, mapDashboardError(err))
		return
	}
	c.JSON(http.StatusOK, state)
}

func mapDashboardError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidVisitID), errors.Is(err, filtering.ErrInvalidResetState):
		return errInvalidRequest
	case errors.Is(err, filtering.ErrUnknownField), errors.Is(err, filtering.ErrFocusFieldNotAllowed):
		return pkg.NewDomainErrorSimple("INVALID_FILTER_FIELD", err.Error(), http.StatusBadRequest)
	case errors.Is(err, filtering.ErrUnknownCountry),
		errors.Is(err, filtering.ErrAreaNotInCountry),
		errors.Is(err, filtering.ErrCityNotInArea),
		errors.Is(err, filtering.ErrInvalidProductSlot),
		errors.Is(err, filtering.ErrProductNotForDoctor),
		errors.Is(err, filtering.ErrInvalidDate):
		return pkg.NewDomainErrorSimple("INVALID_FILTER", err.Error(), http.StatusBadRequest)
	case errors.Is(err, usecase.ErrVisitNotFound):
		return pkg.NewDomainErrorSimple("VISIT_NOT_FOUND", "Visit not found", http.StatusNotFound)
	default:
		return internalError(err)
	}
}
