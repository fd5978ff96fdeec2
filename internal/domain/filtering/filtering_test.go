package filtering

import (
	"errors"
	"slices"
	"testing"

	"pharma_fieldops/internal/domain/entities"
	"pharma_fieldops/internal/domain/reference"
)

const (
	saudi   = "المملكة العربية السعودية"
	eastern = "المنطقة الشرقية"
	dammam  = "الدمام"
	khobar  = "الخبر"
	uae     = "الإمارات العربية المتحدة"
	dubaiEm = "إمارة دبي"
	dubai   = "دبي"
	ahmed   = "د. أحمد محمد"
	sara    = "د. سارة خالد"
)

func sampleVisits() []entities.Visit {
	return []entities.Visit{
		{ID: "v1", DoctorName: ahmed, ClinicName: "عيادة النور", Product1: "Panadol", Product2: "Nexium", Product3: "Concor", VisitDate: "2024-03-01", Country: saudi, Area: eastern, City: dammam, Brand: "فايزر", Classification: "Class A"},
		{ID: "v2", DoctorName: sara, ClinicName: "عيادة الأمل", Product1: "Amoxil", Product2: "Crestor", Product3: "Lantus", VisitDate: "2024-03-05", Country: uae, Area: dubaiEm, City: dubai, Brand: "نوفارتس", Classification: "Class B"},
		{ID: "v3", DoctorName: ahmed, ClinicName: "عيادة الأمل", Product1: "Brufen", Product2: "Nexium", Product3: "Glucophage", VisitDate: "2024-03-10", Country: saudi, Area: eastern, City: dammam, Brand: "فايزر", Classification: "Class A"},
		{ID: "v4", DoctorName: "د. رنا محمود", ClinicName: "عيادة النور", Product1: "Voltaren", Product2: "Plavix", Product3: "Januvia", VisitDate: "2024-04-01", Country: saudi, Area: eastern, City: khobar, Brand: "باير", Classification: "Class B"},
	}
}

func ids(vs []entities.Visit) []string {
	out := make([]string, 0, len(vs))
	for _, v := range vs {
		out = append(out, v.ID)
	}
	return out
}

func TestReduce_CascadeRules(t *testing.T) {
	ref := reference.Default()

	t.Run("doctor change clears products", func(t *testing.T) {
		prev := State{DoctorName: ahmed, Product1: "Panadol", Product2: "Nexium", Product3: "Concor", Brand: "فايزر"}
		next, err := Reduce(prev, SetDoctor{Name: sara}, ref)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if next.Product1 != "" || next.Product2 != "" || next.Product3 != "" {
			t.Fatalf("expected products cleared, got %+v", next)
		}
		if next.DoctorName != sara || next.Brand != "فايزر" {
			t.Fatalf("unexpected state: %+v", next)
		}
		if prev.Product1 != "Panadol" {
			t.Fatalf("previous state must not be modified")
		}
	})

	t.Run("clearing doctor clears products", func(t *testing.T) {
		next, err := Reduce(State{DoctorName: ahmed, Product2: "Lipitor"}, SetDoctor{}, ref)
		if err != nil || next.Product2 != "" || next.DoctorName != "" {
			t.Fatalf("unexpected result: %+v %v", next, err)
		}
	})

	t.Run("country change clears area and city", func(t *testing.T) {
		next, err := Reduce(State{Country: saudi, Area: eastern, City: dammam}, SetCountry{Name: uae}, ref)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if next.Country != uae || next.Area != "" || next.City != "" {
			t.Fatalf("unexpected state: %+v", next)
		}
	})

	t.Run("area change clears city", func(t *testing.T) {
		next, err := Reduce(State{Country: saudi, Area: eastern, City: dammam}, SetArea{Name: "المنطقة الوسطى"}, ref)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if next.Area != "المنطقة الوسطى" || next.City != "" || next.Country != saudi {
			t.Fatalf("unexpected state: %+v", next)
		}
	})

	t.Run("other fields replace only themselves", func(t *testing.T) {
		prev := State{Country: saudi, Area: eastern, City: dammam, DoctorName: ahmed, Product1: "Panadol"}
		next, err := Reduce(prev, SetClassification{Name: "Class A"}, ref)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := prev
		want.Classification = "Class A"
		if next != want {
			t.Fatalf("expected %+v, got %+v", want, next)
		}
	})

	t.Run("date bounds", func(t *testing.T) {
		next, err := Reduce(State{}, SetDateStart{Date: "2024-01-01"}, ref)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		next, err = Reduce(next, SetDateEnd{Date: "2024-01-31"}, ref)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if next.DateRange != (DateRange{Start: "2024-01-01", End: "2024-01-31"}) {
			t.Fatalf("unexpected range: %+v", next.DateRange)
		}
		if _, err := Reduce(next, SetDateEnd{Date: "31/01/2024"}, ref); !errors.Is(err, ErrInvalidDate) {
			t.Fatalf("expected ErrInvalidDate, got %v", err)
		}
	})
}

func TestReduce_HierarchyIsEnforced(t *testing.T) {
	ref := reference.Default()

	cases := []struct {
		name string
		prev State
		u    Update
		want error
	}{
		{name: "unknown country", prev: State{}, u: SetCountry{Name: "Atlantis"}, want: ErrUnknownCountry},
		{name: "area without country", prev: State{}, u: SetArea{Name: eastern}, want: ErrAreaNotInCountry},
		{name: "area of another country", prev: State{Country: uae}, u: SetArea{Name: eastern}, want: ErrAreaNotInCountry},
		{name: "city of another area", prev: State{Country: saudi, Area: eastern}, u: SetCity{Name: "الرياض"}, want: ErrCityNotInArea},
		{name: "product outside doctor list", prev: State{DoctorName: ahmed}, u: SetProduct{Slot: 1, Value: "Amoxil"}, want: ErrProductNotForDoctor},
		{name: "product from another slot", prev: State{DoctorName: ahmed}, u: SetProduct{Slot: 2, Value: "Panadol"}, want: ErrProductNotForDoctor},
		{name: "product for unknown doctor", prev: State{DoctorName: "nobody"}, u: SetProduct{Slot: 1, Value: "Panadol"}, want: ErrProductNotForDoctor},
		{name: "bad slot", prev: State{}, u: SetProduct{Slot: 4, Value: "Panadol"}, want: ErrInvalidProductSlot},
		{name: "reset with broken cascade", prev: State{}, u: ResetAll{State: State{Country: uae, Area: eastern}}, want: ErrAreaNotInCountry},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			next, err := Reduce(tc.prev, tc.u, ref)
			if !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
			if next != tc.prev {
				t.Fatalf("rejected update must return the previous state")
			}
		})
	}

	t.Run("valid picks", func(t *testing.T) {
		s, err := Reduce(State{}, SetCountry{Name: saudi}, ref)
		if err == nil {
			s, err = Reduce(s, SetArea{Name: eastern}, ref)
		}
		if err == nil {
			s, err = Reduce(s, SetCity{Name: khobar}, ref)
		}
		if err == nil {
			s, err = Reduce(s, SetDoctor{Name: ahmed}, ref)
		}
		if err == nil {
			s, err = Reduce(s, SetProduct{Slot: 3, Value: "Glucophage"}, ref)
		}
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if s.City != khobar || s.Product3 != "Glucophage" {
			t.Fatalf("unexpected state: %+v", s)
		}
	})

	t.Run("product without doctor stays free", func(t *testing.T) {
		s, err := Reduce(State{}, SetProduct{Slot: 1, Value: "Amoxil"}, ref)
		if err != nil || s.Product1 != "Amoxil" {
			t.Fatalf("unexpected result: %+v %v", s, err)
		}
	})
}

func TestParseUpdate(t *testing.T) {
	ref := reference.Default()

	u, err := ParseUpdate("product2", "Nexium")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if u != (SetProduct{Slot: 2, Value: "Nexium"}) {
		t.Fatalf("unexpected update: %#v", u)
	}

	if _, err := ParseUpdate("nickname", "x"); !errors.Is(err, ErrUnknownField) {
		t.Fatalf("expected ErrUnknownField, got %v", err)
	}

	u, err = ParseUpdate("resetAll", `{"country":"`+uae+`","area":"`+dubaiEm+`","city":"`+dubai+`","dateRange":{"start":"","end":""}}`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	next, err := Reduce(State{DoctorName: ahmed, Brand: "روش"}, u, ref)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if next != (State{Country: uae, Area: dubaiEm, City: dubai}) {
		t.Fatalf("reset must replace the whole state, got %+v", next)
	}

	if _, err := ParseUpdate("resetAll", "{"); !errors.Is(err, ErrInvalidResetState) {
		t.Fatalf("expected ErrInvalidResetState, got %v", err)
	}
}

func TestFocusOn(t *testing.T) {
	ref := reference.Default()
	v := sampleVisits()[3]

	s, err := FocusOn(v, "city")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s != (State{Country: saudi, Area: eastern, City: khobar}) {
		t.Fatalf("unexpected focus state: %+v", s)
	}
	if err := Validate(s, ref); err != nil {
		t.Fatalf("focused state must respect the cascade: %v", err)
	}

	s, err = FocusOn(v, "doctorName")
	if err != nil || s != (State{DoctorName: v.DoctorName}) {
		t.Fatalf("unexpected focus state: %+v %v", s, err)
	}

	if _, err := FocusOn(v, "visitDate"); !errors.Is(err, ErrFocusFieldNotAllowed) {
		t.Fatalf("expected ErrFocusFieldNotAllowed, got %v", err)
	}
}

func TestDependentOptions(t *testing.T) {
	ref := reference.Default()
	records := sampleVisits()

	t.Run("empty state", func(t *testing.T) {
		opts := DependentOptions(State{}, ref, records)
		if len(opts.Areas) != 0 || len(opts.Cities) != 0 {
			t.Fatalf("expected no location options, got %+v", opts)
		}
		if !slices.Equal(opts.AvailableProducts.Products1, []string{"Panadol", "Amoxil", "Brufen", "Voltaren"}) {
			t.Fatalf("unexpected distinct products: %v", opts.AvailableProducts.Products1)
		}
		if !slices.Equal(opts.AvailableProducts.Products2, []string{"Nexium", "Crestor", "Plavix"}) {
			t.Fatalf("unexpected distinct products: %v", opts.AvailableProducts.Products2)
		}
	})

	t.Run("country and area", func(t *testing.T) {
		opts := DependentOptions(State{Country: saudi, Area: eastern}, ref, records)
		if len(opts.Areas) != 3 || !slices.Equal(opts.Cities, []string{"الدمام", "الخبر", "الظهران"}) {
			t.Fatalf("unexpected options: %+v", opts)
		}
	})

	t.Run("area without country yields no cities", func(t *testing.T) {
		opts := DependentOptions(State{Area: eastern}, ref, records)
		if len(opts.Cities) != 0 {
			t.Fatalf("expected no cities, got %v", opts.Cities)
		}
	})

	t.Run("doctor products", func(t *testing.T) {
		opts := DependentOptions(State{DoctorName: ahmed}, ref, records)
		if !slices.Equal(opts.AvailableProducts.Products3, []string{"Concor", "Glucophage"}) {
			t.Fatalf("unexpected doctor products: %+v", opts.AvailableProducts)
		}
	})

	t.Run("unknown doctor", func(t *testing.T) {
		opts := DependentOptions(State{DoctorName: "nobody"}, ref, records)
		p := opts.AvailableProducts
		if p.Products1 == nil || len(p.Products1)+len(p.Products2)+len(p.Products3) != 0 {
			t.Fatalf("expected empty product lists, got %+v", p)
		}
	})
}

func TestFilterRecords(t *testing.T) {
	records := sampleVisits()

	cases := []struct {
		name  string
		state State
		want  []string
	}{
		{name: "no constraints", state: State{}, want: []string{"v1", "v2", "v3", "v4"}},
		{name: "doctor", state: State{DoctorName: ahmed}, want: []string{"v1", "v3"}},
		{name: "and of fields", state: State{DoctorName: ahmed, ClinicName: "عيادة الأمل"}, want: []string{"v3"}},
		{name: "city", state: State{Country: saudi, Area: eastern, City: khobar}, want: []string{"v4"}},
		{name: "no partial match", state: State{DoctorName: "أحمد"}, want: []string{}},
		{name: "closed interval", state: State{DateRange: DateRange{Start: "2024-03-05", End: "2024-03-10"}}, want: []string{"v2", "v3"}},
		{name: "only start bound", state: State{DateRange: DateRange{Start: "2024-03-06"}}, want: []string{"v1", "v2", "v3", "v4"}},
		{name: "only end bound", state: State{DateRange: DateRange{End: "2024-03-01"}}, want: []string{"v1", "v2", "v3", "v4"}},
		{name: "inverted interval", state: State{DateRange: DateRange{Start: "2024-04-01", End: "2024-03-01"}}, want: []string{}},
		{name: "dates and fields", state: State{Classification: "Class B", DateRange: DateRange{Start: "2024-03-01", End: "2024-03-31"}}, want: []string{"v2"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := FilterRecords(records, tc.state)
			if !slices.Equal(ids(got), tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, ids(got))
			}
			again := FilterRecords(got, tc.state)
			if !slices.Equal(ids(again), ids(got)) {
				t.Fatalf("filter must be idempotent: %v vs %v", ids(again), ids(got))
			}
		})
	}

	t.Run("unparseable visit date is excluded by a date range", func(t *testing.T) {
		bad := []entities.Visit{{ID: "x", VisitDate: "01/03/2024"}}
		got := FilterRecords(bad, State{DateRange: DateRange{Start: "2024-01-01", End: "2024-12-31"}})
		if len(got) != 0 {
			t.Fatalf("expected no match, got %v", ids(got))
		}
	})
}
