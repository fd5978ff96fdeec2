package metrics

import (
	"pharma_fieldops/internal/domain/entities"
)

// DatePoint is one row of the visits-over-time series.
type DatePoint struct {
	Date   string `json:"date"`
	Visits int    `json:"visits"`
}

// Dashboard bundles the five grouped views of a filtered visit set.
type Dashboard struct {
	TotalVisits      int         `json:"totalVisits"`
	ByDoctor         []KeyValue  `json:"byDoctor"`
	ByCountry        []KeyValue  `json:"byCountry"`
	ByClassification []KeyValue  `json:"byClassification"`
	ProductUsage     []KeyValue  `json:"productUsage"`
	OverTime         []DatePoint `json:"overTime"`
}

// BuildDashboard recomputes every view from scratch.
func BuildDashboard(visits []entities.Visit) Dashboard {
	return Dashboard{
		TotalVisits:      len(visits),
		ByDoctor:         ByDoctor(visits),
		ByCountry:        ByCountry(visits),
		ByClassification: ByClassification(visits),
		ProductUsage:     ProductUsage(visits),
		OverTime:         OverTime(visits),
	}
}

// ByDoctor counts visits per doctor, most visited first.
func ByDoctor(visits []entities.Visit) []KeyValue {
	return countBy(visits, func(v entities.Visit) string { return v.DoctorName })
}

func ByCountry(visits []entities.Visit) []KeyValue {
	return countBy(visits, func(v entities.Visit) string { return v.Country })
}

func ByClassification(visits []entities.Visit) []KeyValue {
	return countBy(visits, func(v entities.Visit) string { return v.Classification })
}

// ProductUsage sums the samples handed out per product over the three slots
// of every visit, largest quantity first.
func ProductUsage(visits []entities.Visit) []KeyValue {
	c := newCounter()
	for _, v := range visits {
		for _, slot := range v.Slots() {
			c.add(slot.Product, slot.Samples)
		}
	}
	return c.descending()
}

// OverTime counts visits per visit date, oldest first. Dates compare as
// strings, which orders ISO yyyy-MM-dd dates chronologically.
func OverTime(visits []entities.Visit) []DatePoint {
	c := newCounter()
	for _, v := range visits {
		c.add(v.VisitDate, 1)
	}
	rows := c.byKey()
	out := make([]DatePoint, 0, len(rows))
	for _, r := range rows {
		out = append(out, DatePoint{Date: r.Name, Visits: r.Value})
	}
	return out
}

func countBy(visits []entities.Visit, key func(entities.Visit) string) []KeyValue {
	c := newCounter()
	for _, v := range visits {
		c.add(key(v), 1)
	}
	return c.descending()
}
