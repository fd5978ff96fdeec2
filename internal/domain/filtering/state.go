// Package filtering implements the dashboard's cascading filter model: the
// filter state, the reducer that applies field changes with their cascade
// rules, the dependent option lists and the record predicate.
package filtering

import (
	"errors"
	"time"
)

const DateLayout = "2006-01-02"

var (
	ErrUnknownField         = errors.New("unknown filter field")
	ErrUnknownCountry       = errors.New("country is not in the location tree")
	ErrAreaNotInCountry     = errors.New("area does not belong to the selected country")
	ErrCityNotInArea        = errors.New("city does not belong to the selected area")
	ErrInvalidProductSlot   = errors.New("product slot must be 1, 2 or 3")
	ErrProductNotForDoctor  = errors.New("product is not promoted to the selected doctor")
	ErrInvalidDate          = errors.New("date must use the yyyy-MM-dd layout")
	ErrInvalidResetState    = errors.New("invalid replacement filter state")
	ErrFocusFieldNotAllowed = errors.New("field cannot be focused")
)

type DateRange struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// State is the dashboard filter. Every field is optional; the empty string
// means "no constraint".
type State struct {
	DoctorName     string    `json:"doctorName"`
	ClinicName     string    `json:"clinicName"`
	Product1       string    `json:"product1"`
	Product2       string    `json:"product2"`
	Product3       string    `json:"product3"`
	Country        string    `json:"country"`
	Area           string    `json:"area"`
	City           string    `json:"city"`
	Brand          string    `json:"brand"`
	Classification string    `json:"classification"`
	Specialty      string    `json:"specialty"`
	DateRange      DateRange `json:"dateRange"`
}

func (s State) product(slot int) string {
	switch slot {
	case 1:
		return s.Product1
	case 2:
		return s.Product2
	case 3:
		return s.Product3
	}
	return ""
}

func (s *State) setProduct(slot int, value string) {
	switch slot {
	case 1:
		s.Product1 = value
	case 2:
		s.Product2 = value
	case 3:
		s.Product3 = value
	}
}

func (s *State) clearProducts() {
	s.Product1, s.Product2, s.Product3 = "", "", ""
}

// dateBounds returns the parsed interval when both bounds are set and valid.
func (s State) dateBounds() (start, end time.Time, ok bool) {
	if s.DateRange.Start == "" || s.DateRange.End == "" {
		return time.Time{}, time.Time{}, false
	}
	start, err := time.Parse(DateLayout, s.DateRange.Start)
	if err != nil {
		return time.Time{}, time.Time{}, false
	}
	end, err = time.Parse(DateLayout, s.DateRange.End)
	if err != nil {
		return time.Time{}, time.Time{}, false
	}
	return start, end, true
}

func validDate(value string) bool {
	if value == "" {
		return true
	}
	_, err := time.Parse(DateLayout, value)
	return err == nil
}
