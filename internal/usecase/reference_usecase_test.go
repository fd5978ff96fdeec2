package usecase

import (
	"errors"
	"testing"

	"pharma_fieldops/internal/domain/reference"
)

func TestReferenceUseCase(t *testing.T) {
	uc := NewReferenceUseCase(reference.Default())

	if len(uc.Locations()) != 3 || len(uc.Brands()) != 5 || len(uc.Classifications()) != 3 {
		t.Fatalf("unexpected reference tables")
	}
	doctors := uc.Doctors()
	if len(doctors) != 10 || doctors[0].Name != "د. أحمد محمد" {
		t.Fatalf("unexpected doctors: %+v", doctors)
	}

	products, err := uc.DoctorProducts("د. أحمد محمد")
	if err != nil || products.Products2[0] != "Nexium" {
		t.Fatalf("unexpected products: %+v %v", products, err)
	}
	if _, err := uc.DoctorProducts("د. مجهول"); !errors.Is(err, ErrDoctorNotFound) {
		t.Fatalf("expected ErrDoctorNotFound, got %v", err)
	}
	if _, err := uc.DoctorProducts(" "); !errors.Is(err, ErrInvalidDoctorName) {
		t.Fatalf("expected ErrInvalidDoctorName, got %v", err)
	}
}
