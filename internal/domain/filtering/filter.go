package filtering

import (
	"time"

	"pharma_fieldops/internal/domain/entities"
)

// FilterRecords keeps the visits matching every non-empty field of s by exact
// equality and, when both date bounds are set, whose visit date lies in the
// closed interval [start, end]. Input order is preserved.
//
// A date bound that does not parse disables the date constraint; a visit whose
// own date does not parse never matches an active date constraint.
func FilterRecords(records []entities.Visit, s State) []entities.Visit {
	start, end, withDates := s.dateBounds()

	out := make([]entities.Visit, 0, len(records))
	for _, v := range records {
		if !matchesFields(v, s) {
			continue
		}
		if withDates && !withinDates(v.VisitDate, start, end) {
			continue
		}
		out = append(out, v)
	}
	return out
}

func matchesFields(v entities.Visit, s State) bool {
	return match(s.DoctorName, v.DoctorName) &&
		match(s.ClinicName, v.ClinicName) &&
		match(s.Product1, v.Product1) &&
		match(s.Product2, v.Product2) &&
		match(s.Product3, v.Product3) &&
		match(s.Country, v.Country) &&
		match(s.Area, v.Area) &&
		match(s.City, v.City) &&
		match(s.Brand, v.Brand) &&
		match(s.Classification, v.Classification) &&
		match(s.Specialty, v.Specialty)
}

func match(want, got string) bool {
	return want == "" || want == got
}

func withinDates(date string, start, end time.Time) bool {
	d, err := time.Parse(DateLayout, date)
	if err != nil {
		return false
	}
	return !d.Before(start) && !d.After(end)
}
