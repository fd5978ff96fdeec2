package request

import (
	"strings"

	"pharma_fieldops/internal/domain/entities"
)

// SamplesRequest is the sample request form.
type SamplesRequest struct {
	RequestDate  string `json:"requestDate" binding:"required"`
	DeliveryDate string `json:"deliveryDate" binding:"required"`
	Medicine     string `json:"medicine" binding:"required"`
	DoctorName   string `json:"doctorName" binding:"required"`
	Quantity     int    `json:"quantity"`
	Notes        string `json:"notes"`
}

func (r SamplesRequest) ToEntity() entities.SampleRequest {
	return entities.SampleRequest{
		RequestDate:  strings.TrimSpace(r.RequestDate),
		DeliveryDate: strings.TrimSpace(r.DeliveryDate),
		Medicine:     strings.TrimSpace(r.Medicine),
		DoctorName:   strings.TrimSpace(r.DoctorName),
		Quantity:     r.Quantity,
		Notes:        strings.TrimSpace(r.Notes),
	}
}
