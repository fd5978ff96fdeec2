package handlers

import (
	"errors"
	"net/http"

	"pharma_fieldops/internal/domain/metrics"
	"pharma_fieldops/internal/usecase"
	"pharma_fieldops/pkg"

	"github.com/gin-gonic/gin"
)

type PharmacyHandler struct {
	usecase usecase.IPharmacyUseCase
}

func NewPharmacyHandler(uc usecase.IPharmacyUseCase) *PharmacyHandler {
	return &PharmacyHandler{usecase: uc}
}

// GetDashboard godoc
// @Summary  Pharmacy collections and orders dashboard
// @Tags     pharmacy
// @Produce  json
// @Param    start    query string false "yyyy-MM-dd"
// @Param    end      query string false "yyyy-MM-dd"
// @Param    pharmacy query string false "Pharmacy name"
// @Param    medicine query string false "Medicine name"
// @Success  200 {object} metrics.PharmacyDashboard
// @Router   /pharmacy/dashboard [get]
func (h *PharmacyHandler) GetDashboard(c *gin.Context) {
	filter := metrics.PharmacyFilter{
		Start:    c.Query("start"),
		End:      c.Query("end"),
		Pharmacy: c.Query("pharmacy"),
		Medicine: c.Query("medicine"),
	}
	dashboard, err := h.usecase.Dashboard(c.Request.Context(), filter)
	if err != nil {
		writeError(c, mapPharmacyError(err))
		return
	}
	c.JSON(http.StatusOK, dashboard)
}

func (h *PharmacyHandler) GetMonthlyReport(c *gin.Context) {
	report, err := h.usecase.MonthlyReport(c.Request.Context(), c.Query("month"))
	if err != nil {
		writeError(c, mapPharmacyError(err))
		return
	}
	c.JSON(http.StatusOK, report)
}

func mapPharmacyError(err error) *pkg.AppError {
	if errors.Is(err, metrics.ErrInvalidMonth) {
		return errInvalidMonth
	}
	return internalError(err)
}
