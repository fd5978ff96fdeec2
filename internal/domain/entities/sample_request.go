package entities

import "time"

// SampleRequest asks for free medicine samples to be delivered to a doctor.
type SampleRequest struct {
	ID           string    `json:"id"`
	RequestDate  string    `json:"requestDate"`
	DeliveryDate string    `json:"deliveryDate"`
	Medicine     string    `json:"medicine"`
	DoctorName   string    `json:"doctorName"`
	Quantity     int       `json:"quantity"`
	Notes        string    `json:"notes,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
}
