package request

import "pharma_fieldops/internal/domain/filtering"

// FilterChangeRequest carries the current dashboard state and one selector
// change. Field uses the console field names (doctorName, country, ...).
type FilterChangeRequest struct {
	State filtering.State `json:"state"`
	Field string          `json:"field" binding:"required"`
	Value string          `json:"value"`
}

type FocusRequest struct {
	VisitID string `json:"visit_id" binding:"required"`
	Field   string `json:"field" binding:"required"`
}
