package handlers

import (
	"errors"
	"net/http"

	request "pharma_fieldops/internal/adapter/http/dto/request"
	"pharma_fieldops/internal/usecase"
	"pharma_fieldops/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type SampleHandler struct {
	usecase usecase.ISampleUseCase
}

func NewSampleHandler(uc usecase.ISampleUseCase) *SampleHandler {
	return &SampleHandler{usecase: uc}
}

func (h *SampleHandler) ListSamples(c *gin.Context) {
	samples, err := h.usecase.List(c.Request.Context())
	if err != nil {
		writeError(c, mapSampleError(err))
		return
	}
	c.JSON(http.StatusOK, samples)
}

// CreateSample godoc
// @Summary  Request medicine samples for a doctor
// @Tags     samples
// @Accept   json
// @Produce  json
// @Param    sample body request.SamplesRequest true "Sample request"
// @Success  201 {object} entities.SampleRequest
// @Failure  400 {object} pkg.HTTPError
// @Router   /samples [post]
func (h *SampleHandler) CreateSample(c *gin.Context) {
	var payload request.SamplesRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidRequest)
		return
	}

	sample, err := h.usecase.Create(c.Request.Context(), payload.ToEntity())
	if err != nil {
		zap.L().Info("[sample][handler] create rejected", zap.String("doctor", payload.DoctorName), zap.Error(err))
		writeError(c, mapSampleError(err))
		return
	}
	c.JSON(http.StatusCreated, sample)
}

func mapSampleError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidDoctorName),
		errors.Is(err, usecase.ErrDoctorNotFound),
		errors.Is(err, usecase.ErrInvalidSampleMedicine),
		errors.Is(err, usecase.ErrInvalidSampleQuantity),
		errors.Is(err, usecase.ErrInvalidRequestDate),
		errors.Is(err, usecase.ErrInvalidDeliveryDate),
		errors.Is(err, usecase.ErrDeliveryBeforeRequest):
		return pkg.NewDomainErrorSimple("INVALID_SAMPLE_REQUEST", err.Error(), http.StatusBadRequest)
	default:
		return internalError(err)
	}
}
