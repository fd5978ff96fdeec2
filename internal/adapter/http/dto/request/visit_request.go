package request

import (
	"strings"

	"pharma_fieldops/internal/domain/entities"
)

// VisitRequest is the visit form submitted by a representative.
type VisitRequest struct {
	DoctorName     string `json:"doctorName" binding:"required"`
	ClinicName     string `json:"clinicName"`
	Product1       string `json:"product1"`
	Product2       string `json:"product2"`
	Product3       string `json:"product3"`
	Samples1       int    `json:"samples1"`
	Samples2       int    `json:"samples2"`
	Samples3       int    `json:"samples3"`
	VisitDate      string `json:"visitDate" binding:"required"`
	VisitTime      string `json:"visitTime"`
	Country        string `json:"country"`
	Area           string `json:"area"`
	City           string `json:"city"`
	Address        string `json:"address"`
	Brand          string `json:"brand"`
	Classification string `json:"classification"`
	Specialty      string `json:"specialty"`
}

func (r VisitRequest) ToEntity() entities.Visit {
	return entities.Visit{
		DoctorName:     r.DoctorName,
		ClinicName:     strings.TrimSpace(r.ClinicName),
		Product1:       strings.TrimSpace(r.Product1),
		Product2:       strings.TrimSpace(r.Product2),
		Product3:       strings.TrimSpace(r.Product3),
		Samples1:       r.Samples1,
		Samples2:       r.Samples2,
		Samples3:       r.Samples3,
		VisitDate:      r.VisitDate,
		VisitTime:      r.VisitTime,
		Country:        strings.TrimSpace(r.Country),
		Area:           strings.TrimSpace(r.Area),
		City:           strings.TrimSpace(r.City),
		Address:        strings.TrimSpace(r.Address),
		Brand:          strings.TrimSpace(r.Brand),
		Classification: strings.TrimSpace(r.Classification),
		Specialty:      strings.TrimSpace(r.Specialty),
	}
}
