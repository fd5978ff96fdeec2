package handlers

import (
	"errors"
	"net/http"

	request "pharma_fieldops/internal/adapter/http/dto/request"
	response "pharma_fieldops/internal/adapter/http/dto/response"
	"pharma_fieldops/internal/domain/entities"
	"pharma_fieldops/internal/usecase"
	"pharma_fieldops/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// EvaluationHandler serves the representative evaluation form.

type EvaluationHandler struct {
	usecase usecase.IEvaluationUseCase
}

func NewEvaluationHandler(uc usecase.IEvaluationUseCase) *EvaluationHandler {
	return &EvaluationHandler{usecase: uc}
}

func (h *EvaluationHandler) GetCriteria(c *gin.Context) {
	c.JSON(http.StatusOK, h.usecase.Criteria())
}

// ScoreEvaluation previews the scores of a form without storing it.
func (h *EvaluationHandler) ScoreEvaluation(c *gin.Context) {
	var payload request.ScoreRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidRequest)
		return
	}
	c.JSON(http.StatusOK, response.FromEvaluationResult(h.usecase.Score(entities.Ratings(payload.Ratings))))
}

// SubmitEvaluation godoc
// @Summary  Store an evaluation report with server-side scores
// @Tags     evaluations
// @Accept   json
// @Produce  json
// @Param    report body request.EvaluationRequest true "Evaluation"
// @Success  201 {object} response.EvaluationResponse
// @Failure  400 {object} pkg.HTTPError
// @Router   /evaluations [post]
func (h *EvaluationHandler) SubmitEvaluation(c *gin.Context) {
	var payload request.EvaluationRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidRequest)
		return
	}

	stored, err := h.usecase.Submit(c.Request.Context(), payload.ToEntity())
	if err != nil {
		writeError(c, mapEvaluationError(err))
		return
	}
	zap.L().Info("[evaluation][handler] report stored",
		zap.String("id", stored.ID), zap.Float64("total", stored.Scores.Total), zap.String("tier", stored.Tier))
	c.JSON(http.StatusCreated, response.FromEvaluation(stored))
}

func (h *EvaluationHandler) ListEvaluations(c *gin.Context) {
	list, err := h.usecase.List(c.Request.Context())
	if err != nil {
		writeError(c, mapEvaluationError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromEvaluations(list))
}

func mapEvaluationError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidReportTitle):
		return pkg.NewDomainErrorSimple("INVALID_EVALUATION", "Report title is required", http.StatusBadRequest)
	default:
		return internalError(err)
	}
}
