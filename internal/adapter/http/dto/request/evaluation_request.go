package request

import "pharma_fieldops/internal/domain/entities"

type ScoreRequest struct {
	Ratings map[string]float64 `json:"ratings"`
}

// EvaluationRequest is a coaching report. Scores, tier and recommendations
// are derived server side and never read from the payload.
type EvaluationRequest struct {
	ReportTitle    string             `json:"reportTitle" binding:"required"`
	Representative string             `json:"representative"`
	Ratings        map[string]float64 `json:"ratings"`
	Comments       string             `json:"comments"`
	Recommendation string             `json:"recommendation"`
}

func (r EvaluationRequest) ToEntity() entities.Evaluation {
	return entities.Evaluation{
		ReportTitle:    r.ReportTitle,
		Representative: r.Representative,
		Ratings:        entities.Ratings(r.Ratings),
		Comments:       r.Comments,
		Recommendation: r.Recommendation,
	}
}
