package entities

// Visit is a representative-to-doctor interaction logged from the field.
//
// Dates are kept as ISO strings (yyyy-MM-dd) and times as HH:mm, exactly as the
// console submits them. Location fields follow the reference location tree
// (country -> area -> city).
type Visit struct {
	ID             string `json:"id"`
	DoctorName     string `json:"doctorName"`
	ClinicName     string `json:"clinicName"`
	Product1       string `json:"product1"`
	Product2       string `json:"product2"`
	Product3       string `json:"product3"`
	Samples1       int    `json:"samples1"`
	Samples2       int    `json:"samples2"`
	Samples3       int    `json:"samples3"`
	VisitDate      string `json:"visitDate"`
	VisitTime      string `json:"visitTime"`
	Country        string `json:"country"`
	Area           string `json:"area"`
	City           string `json:"city"`
	Address        string `json:"address"`
	Brand          string `json:"brand"`
	Classification string `json:"classification"`
	Specialty      string `json:"specialty"`
}

// ProductSamples pairs a product slot with the samples handed out for it.
type ProductSamples struct {
	Product string
	Samples int
}

// Slots returns the three product/sample pairs in slot order.
func (v Visit) Slots() [3]ProductSamples {
	return [3]ProductSamples{
		{Product: v.Product1, Samples: v.Samples1},
		{Product: v.Product2, Samples: v.Samples2},
		{Product: v.Product3, Samples: v.Samples3},
	}
}
