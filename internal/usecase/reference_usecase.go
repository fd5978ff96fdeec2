package usecase

import (
	"errors"
	"strings"

	"pharma_fieldops/internal/domain/filtering"
	"pharma_fieldops/internal/domain/reference"
)

var (
	ErrDoctorNotFound    = errors.New("doctor not found")
	ErrInvalidDoctorName = errors.New("invalid doctor name")
)

// IReferenceUseCase exposes the static lookup tables that feed the console
// selectors.

type IReferenceUseCase interface {
	Locations() []reference.Country
	Brands() []string
	Classifications() []string
	Specialties() []string
	Doctors() []reference.DoctorProfile
	DoctorProducts(name string) (filtering.ProductOptions, error)
}

type ReferenceUseCase struct {
	ref *reference.Data
}

var _ IReferenceUseCase = (*ReferenceUseCase)(nil)

func NewReferenceUseCase(ref *reference.Data) *ReferenceUseCase {
	return &ReferenceUseCase{ref: ref}
}

func (u *ReferenceUseCase) Locations() []reference.Country { return u.ref.Locations() }
func (u *ReferenceUseCase) Brands() []string               { return u.ref.Brands() }
func (u *ReferenceUseCase) Classifications() []string      { return u.ref.Classifications() }
func (u *ReferenceUseCase) Specialties() []string          { return u.ref.Specialties() }

func (u *ReferenceUseCase) Doctors() []reference.DoctorProfile {
	names := u.ref.DoctorNames()
	out := make([]reference.DoctorProfile, 0, len(names))
	for _, n := range names {
		if d, ok := u.ref.Doctor(n); ok {
			out = append(out, d)
		}
	}
	return out
}

func (u *ReferenceUseCase) DoctorProducts(name string) (filtering.ProductOptions, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return filtering.ProductOptions{}, ErrInvalidDoctorName
	}
	d, ok := u.ref.Doctor(name)
	if !ok {
		return filtering.ProductOptions{}, ErrDoctorNotFound
	}
	return filtering.ProductOptions{Products1: d.Products1, Products2: d.Products2, Products3: d.Products3}, nil
}
