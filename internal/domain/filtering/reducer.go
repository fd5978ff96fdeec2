package filtering

import (
	"encoding/json"
	"fmt"
	"slices"
	"strings"

	"pharma_fieldops/internal/domain/entities"
	"pharma_fieldops/internal/domain/reference"
)

// Update is one field change of the filter state. The concrete variants carry
// the cascade rule of their field.
type Update interface {
	apply(prev State, ref *reference.Data) (State, error)
}

// SetDoctor selects a doctor and clears the three product fields, whose
// options depend on the doctor.
type SetDoctor struct{ Name string }

type SetClinic struct{ Name string }

// SetProduct selects the product of slot 1..3. With a doctor selected the
// product must be on that doctor's list for the slot.
type SetProduct struct {
	Slot  int
	Value string
}

// SetCountry selects a country and clears area and city.
type SetCountry struct{ Name string }

// SetArea selects an area of the current country and clears city.
type SetArea struct{ Name string }

// SetCity selects a city of the current country and area.
type SetCity struct{ Name string }

type SetBrand struct{ Name string }

type SetClassification struct{ Name string }

type SetSpecialty struct{ Name string }

type SetDateStart struct{ Date string }

type SetDateEnd struct{ Date string }

// ResetAll replaces the whole state. The replacement is validated like the
// individual updates so the cascade can't be bypassed.
type ResetAll struct{ State State }

// Reduce applies u to prev. prev is never modified.
func Reduce(prev State, u Update, ref *reference.Data) (State, error) {
	return u.apply(prev, ref)
}

func (u SetDoctor) apply(prev State, _ *reference.Data) (State, error) {
	next := prev
	next.DoctorName = u.Name
	next.clearProducts()
	return next, nil
}

func (u SetClinic) apply(prev State, _ *reference.Data) (State, error) {
	next := prev
	next.ClinicName = u.Name
	return next, nil
}

func (u SetProduct) apply(prev State, ref *reference.Data) (State, error) {
	if u.Slot < 1 || u.Slot > 3 {
		return prev, ErrInvalidProductSlot
	}
	if err := checkProduct(ref, prev.DoctorName, u.Slot, u.Value); err != nil {
		return prev, err
	}
	next := prev
	next.setProduct(u.Slot, u.Value)
	return next, nil
}

func (u SetCountry) apply(prev State, ref *reference.Data) (State, error) {
	if u.Name != "" && !slices.Contains(ref.Countries(), u.Name) {
		return prev, ErrUnknownCountry
	}
	next := prev
	next.Country = u.Name
	next.Area = ""
	next.City = ""
	return next, nil
}

func (u SetArea) apply(prev State, ref *reference.Data) (State, error) {
	if u.Name != "" && !ref.HasArea(prev.Country, u.Name) {
		return prev, ErrAreaNotInCountry
	}
	next := prev
	next.Area = u.Name
	next.City = ""
	return next, nil
}

func (u SetCity) apply(prev State, ref *reference.Data) (State, error) {
	if u.Name != "" && !ref.HasCity(prev.Country, prev.Area, u.Name) {
		return prev, ErrCityNotInArea
	}
	next := prev
	next.City = u.Name
	return next, nil
}

func (u SetBrand) apply(prev State, _ *reference.Data) (State, error) {
	next := prev
	next.Brand = u.Name
	return next, nil
}

func (u SetClassification) apply(prev State, _ *reference.Data) (State, error) {
	next := prev
	next.Classification = u.Name
	return next, nil
}

func (u SetSpecialty) apply(prev State, _ *reference.Data) (State, error) {
	next := prev
	next.Specialty = u.Name
	return next, nil
}

func (u SetDateStart) apply(prev State, _ *reference.Data) (State, error) {
	if !validDate(u.Date) {
		return prev, ErrInvalidDate
	}
	next := prev
	next.DateRange.Start = u.Date
	return next, nil
}

func (u SetDateEnd) apply(prev State, _ *reference.Data) (State, error) {
	if !validDate(u.Date) {
		return prev, ErrInvalidDate
	}
	next := prev
	next.DateRange.End = u.Date
	return next, nil
}

func (u ResetAll) apply(prev State, ref *reference.Data) (State, error) {
	if err := Validate(u.State, ref); err != nil {
		return prev, err
	}
	return u.State, nil
}

// Validate checks the location hierarchy, product eligibility and date layout
// of a complete state.
func Validate(s State, ref *reference.Data) error {
	if s.Country != "" && !slices.Contains(ref.Countries(), s.Country) {
		return ErrUnknownCountry
	}
	if s.Area != "" && !ref.HasArea(s.Country, s.Area) {
		return ErrAreaNotInCountry
	}
	if s.City != "" && !ref.HasCity(s.Country, s.Area, s.City) {
		return ErrCityNotInArea
	}
	for slot := 1; slot <= 3; slot++ {
		if err := checkProduct(ref, s.DoctorName, slot, s.product(slot)); err != nil {
			return err
		}
	}
	if !validDate(s.DateRange.Start) || !validDate(s.DateRange.End) {
		return ErrInvalidDate
	}
	return nil
}

func checkProduct(ref *reference.Data, doctor string, slot int, product string) error {
	if product == "" || doctor == "" {
		return nil
	}
	profile, ok := ref.Doctor(doctor)
	if !ok || !slices.Contains(profile.ProductSlot(slot), product) {
		return ErrProductNotForDoctor
	}
	return nil
}

// ParseUpdate maps a console field name and its raw value to an update.
// "resetAll" carries a JSON encoded State as its value.
func ParseUpdate(field, value string) (Update, error) {
	switch field {
	case "doctorName":
		return SetDoctor{Name: value}, nil
	case "clinicName":
		return SetClinic{Name: value}, nil
	case "product1":
		return SetProduct{Slot: 1, Value: value}, nil
	case "product2":
		return SetProduct{Slot: 2, Value: value}, nil
	case "product3":
		return SetProduct{Slot: 3, Value: value}, nil
	case "country":
		return SetCountry{Name: value}, nil
	case "area":
		return SetArea{Name: value}, nil
	case "city":
		return SetCity{Name: value}, nil
	case "brand":
		return SetBrand{Name: value}, nil
	case "classification":
		return SetClassification{Name: value}, nil
	case "specialty":
		return SetSpecialty{Name: value}, nil
	case "date_start", "dateRange.start":
		return SetDateStart{Date: value}, nil
	case "date_end", "dateRange.end":
		return SetDateEnd{Date: value}, nil
	case "resetAll":
		var s State
		dec := json.NewDecoder(strings.NewReader(value))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&s); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidResetState, err)
		}
		return ResetAll{State: s}, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownField, field)
}

// FocusOn builds the state used when a detail view narrows the dashboard to
// one attribute of a visit: every other field is cleared, except that picking
// any location field keeps the visit's whole country/area/city chain.
func FocusOn(v entities.Visit, field string) (State, error) {
	var s State
	switch field {
	case "doctorName":
		s.DoctorName = v.DoctorName
	case "clinicName":
		s.ClinicName = v.ClinicName
	case "product1":
		s.Product1 = v.Product1
	case "product2":
		s.Product2 = v.Product2
	case "product3":
		s.Product3 = v.Product3
	case "country", "area", "city":
		s.Country = v.Country
		s.Area = v.Area
		s.City = v.City
	case "brand":
		s.Brand = v.Brand
	case "classification":
		s.Classification = v.Classification
	case "specialty":
		s.Specialty = v.Specialty
	default:
		return State{}, fmt.Errorf("%w: %q", ErrFocusFieldNotAllowed, field)
	}
	return s, nil
}
