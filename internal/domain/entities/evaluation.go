package entities

import "time"

// Ratings maps an evaluation criterion id to its score on the half-point grid.
type Ratings map[string]float64

// ScoreBreakdown is the per-category sum of a set of ratings.
type ScoreBreakdown struct {
	Planning       float64 `json:"planning"`
	PersonalTraits float64 `json:"personalTraits"`
	Knowledge      float64 `json:"knowledge"`
	SellingSkills  float64 `json:"sellingSkills"`
	Total          float64 `json:"total"`
}

// Evaluation is a submitted field-coaching report for a representative.
type Evaluation struct {
	ID              string         `json:"id"`
	ReportTitle     string         `json:"reportTitle"`
	Representative  string         `json:"representative,omitempty"`
	Ratings         Ratings        `json:"ratings"`
	Comments        string         `json:"comments,omitempty"`
	Recommendation  string         `json:"recommendation,omitempty"`
	Scores          ScoreBreakdown `json:"scores"`
	Tier            string         `json:"tier"`
	Recommendations []string       `json:"recommendations"`
	CreatedAt       time.Time      `json:"createdAt"`
}
