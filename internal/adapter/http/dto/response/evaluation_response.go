package response

import (
	"pharma_fieldops/internal/domain/entities"
	"pharma_fieldops/internal/domain/evaluation"
)

// ScoreResponse is the live preview of an evaluation form.
type ScoreResponse struct {
	Ratings         entities.Ratings        `json:"ratings"`
	Scores          entities.ScoreBreakdown `json:"scores"`
	MaxTotal        float64                 `json:"maxTotal"`
	Tier            string                  `json:"tier"`
	Color           string                  `json:"color"`
	Recommendations []string                `json:"recommendations"`
}

func FromEvaluationResult(r evaluation.Result) ScoreResponse {
	return ScoreResponse{
		Ratings:         r.Ratings,
		Scores:          r.Scores,
		MaxTotal:        evaluation.MaxTotal(),
		Tier:            r.Classification.Tier,
		Color:           string(r.Classification.Color),
		Recommendations: r.Recommendations,
	}
}

type EvaluationResponse struct {
	entities.Evaluation
	Color string `json:"color"`
}

// FromEvaluation adds the display color of the stored tier.
func FromEvaluation(e entities.Evaluation) EvaluationResponse {
	return EvaluationResponse{
		Evaluation: e,
		Color:      string(evaluation.Classify(e.Scores.Total).Color),
	}
}

func FromEvaluations(list []entities.Evaluation) []EvaluationResponse {
	out := make([]EvaluationResponse, 0, len(list))
	for _, e := range list {
		out = append(out, FromEvaluation(e))
	}
	return out
}
