package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	response "pharma_fieldops/internal/adapter/http/dto/response"
	"pharma_fieldops/internal/adapter/http/handlers/mocks"
	"pharma_fieldops/internal/domain/entities"
	"pharma_fieldops/internal/domain/evaluation"
	"pharma_fieldops/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestEvaluationHandler_ScoreEvaluation(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIEvaluationUseCase(ctrl)
	h := NewEvaluationHandler(uc)

	r := gin.New()
	r.POST("/v1/evaluations/score", h.ScoreEvaluation)

	uc.EXPECT().Score(entities.Ratings{"targeting": 4.5}).Return(evaluation.Evaluate(entities.Ratings{"targeting": 4.5}))

	w := performRequest(r, http.MethodPost, "/v1/evaluations/score", `{"ratings":{"targeting":4.5}}`)
	expectStatus(t, w, http.StatusOK)

	var body response.ScoreResponse
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid body: %v", err)
	}
	if body.Scores.Planning != 4.5 || body.Color != "red" || body.MaxTotal != 100 {
		t.Fatalf("unexpected body: %+v", body)
	}
}

func TestEvaluationHandler_SubmitEvaluation(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing title", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		h := NewEvaluationHandler(mocks.NewMockIEvaluationUseCase(ctrl))

		r := gin.New()
		r.POST("/v1/evaluations", h.SubmitEvaluation)

		w := performRequest(r, http.MethodPost, "/v1/evaluations", `{"ratings":{}}`)
		expectStatus(t, w, http.StatusBadRequest)
	})

	t.Run("blank title from usecase", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEvaluationUseCase(ctrl)
		h := NewEvaluationHandler(uc)

		r := gin.New()
		r.POST("/v1/evaluations", h.SubmitEvaluation)

		uc.EXPECT().Submit(gomock.Any(), gomock.Any()).Return(entities.Evaluation{}, usecase.ErrInvalidReportTitle)

		w := performRequest(r, http.MethodPost, "/v1/evaluations", `{"reportTitle":"   "}`)
		expectStatus(t, w, http.StatusBadRequest)
		if decodeError(t, w).Code != "INVALID_EVALUATION" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEvaluationUseCase(ctrl)
		h := NewEvaluationHandler(uc)

		r := gin.New()
		r.POST("/v1/evaluations", h.SubmitEvaluation)

		uc.EXPECT().Submit(gomock.Any(), gomock.Any()).Return(entities.Evaluation{
			ID: "ev-1", ReportTitle: "تقييم", Scores: entities.ScoreBreakdown{Total: 80}, Tier: evaluation.TierNeedsDevelopment,
		}, nil)

		w := performRequest(r, http.MethodPost, "/v1/evaluations", `{"reportTitle":"تقييم","ratings":{"targeting":5}}`)
		expectStatus(t, w, http.StatusCreated)

		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid body: %v", err)
		}
		if body["id"] != "ev-1" || body["color"] != "blue" {
			t.Fatalf("unexpected body: %v", body)
		}
	})
}
