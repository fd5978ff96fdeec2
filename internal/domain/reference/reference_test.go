package reference

import (
	"slices"
	"testing"
)

func TestData_LocationLookups(t *testing.T) {
	ref := Default()

	if got := ref.Countries(); len(got) != 3 || got[0] != countrySaudi {
		t.Fatalf("unexpected countries: %v", got)
	}
	areas := ref.Areas(countrySaudi)
	if !slices.Equal(areas, []string{"المنطقة الشرقية", "المنطقة الوسطى", "المنطقة الغربية"}) {
		t.Fatalf("unexpected areas: %v", areas)
	}
	if got := ref.Cities(countrySaudi, "المنطقة الشرقية"); !slices.Equal(got, []string{"الدمام", "الخبر", "الظهران"}) {
		t.Fatalf("unexpected cities: %v", got)
	}

	if got := ref.Areas("unknown"); got == nil || len(got) != 0 {
		t.Fatalf("expected empty non-nil areas, got %v", got)
	}
	if got := ref.Cities(countrySaudi, "إمارة دبي"); len(got) != 0 {
		t.Fatalf("expected no cities for an area of another country, got %v", got)
	}
	if !ref.HasCity(countryUAE, "إمارة دبي", "جبل علي") {
		t.Fatalf("expected city to belong to area")
	}
	if ref.HasArea(countryEgypt, "إمارة دبي") {
		t.Fatalf("area must not belong to another country")
	}
}

func TestData_DoctorLookup(t *testing.T) {
	ref := Default()

	doc, ok := ref.Doctor("د. سارة خالد")
	if !ok {
		t.Fatalf("expected doctor")
	}
	if !slices.Equal(doc.ProductSlot(2), []string{"Zithromax", "Crestor"}) {
		t.Fatalf("unexpected slot 2: %v", doc.ProductSlot(2))
	}
	if doc.ProductSlot(4) != nil {
		t.Fatalf("expected nil for unknown slot")
	}

	doc.Products1[0] = "mutated"
	again, _ := ref.Doctor("د. سارة خالد")
	if again.Products1[0] != "Augmentin" {
		t.Fatalf("reference tables must not be mutable through lookups")
	}

	if _, ok := ref.Doctor("nobody"); ok {
		t.Fatalf("expected unknown doctor")
	}
	if len(ref.DoctorNames()) != 10 {
		t.Fatalf("expected 10 doctors")
	}
}

func TestData_DoctorsRespectLocationTree(t *testing.T) {
	ref := Default()
	for _, name := range ref.DoctorNames() {
		doc, _ := ref.Doctor(name)
		if !ref.HasCity(doc.Country, doc.Area, doc.City) {
			t.Fatalf("doctor %s has a location outside the tree", name)
		}
		if !slices.Contains(ref.Brands(), doc.Brand) || !slices.Contains(ref.Classifications(), doc.Classification) || !slices.Contains(ref.Specialties(), doc.Specialty) {
			t.Fatalf("doctor %s has unknown lookup values", name)
		}
	}
}
