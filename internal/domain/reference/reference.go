// Package reference holds the static lookup tables of the console: the
// location tree, brands, classifications, specialties and the doctor
// directory with each doctor's product lists.
//
// Every lookup is by exact key and unknown keys yield empty results.
package reference

import "slices"

type Area struct {
	Name   string
	Cities []string
}

type Country struct {
	Name  string
	Areas []Area
}

// DoctorProfile is the directory entry of a doctor: the products that may be
// promoted in each of the three visit slots plus the doctor's practice data.
type DoctorProfile struct {
	Name           string   `json:"name"`
	Products1      []string `json:"products1"`
	Products2      []string `json:"products2"`
	Products3      []string `json:"products3"`
	Country        string   `json:"country"`
	Area           string   `json:"area"`
	City           string   `json:"city"`
	Address        string   `json:"address"`
	Brand          string   `json:"brand"`
	Classification string   `json:"classification"`
	Specialty      string   `json:"specialty"`
}

// ProductSlot returns the allowed products for slot 1..3.
func (d DoctorProfile) ProductSlot(slot int) []string {
	switch slot {
	case 1:
		return d.Products1
	case 2:
		return d.Products2
	case 3:
		return d.Products3
	}
	return nil
}

// Data is an immutable set of reference tables. Accessors return copies so
// callers can never mutate the tables.
type Data struct {
	countries       []Country
	brands          []string
	classifications []string
	specialties     []string
	doctors         []DoctorProfile
}

func New(countries []Country, brands, classifications, specialties []string, doctors []DoctorProfile) *Data {
	return &Data{
		countries:       countries,
		brands:          brands,
		classifications: classifications,
		specialties:     specialties,
		doctors:         doctors,
	}
}

func (d *Data) Countries() []string {
	out := make([]string, 0, len(d.countries))
	for _, c := range d.countries {
		out = append(out, c.Name)
	}
	return out
}

// Areas lists the areas of a country in table order.
func (d *Data) Areas(country string) []string {
	c, ok := d.country(country)
	if !ok {
		return []string{}
	}
	out := make([]string, 0, len(c.Areas))
	for _, a := range c.Areas {
		out = append(out, a.Name)
	}
	return out
}

// Cities lists the cities of an area within a country.
func (d *Data) Cities(country, area string) []string {
	c, ok := d.country(country)
	if !ok {
		return []string{}
	}
	for _, a := range c.Areas {
		if a.Name == area {
			return slices.Clone(a.Cities)
		}
	}
	return []string{}
}

func (d *Data) HasArea(country, area string) bool {
	return slices.Contains(d.Areas(country), area)
}

func (d *Data) HasCity(country, area, city string) bool {
	return slices.Contains(d.Cities(country, area), city)
}

// Locations returns the full tree as nested ordered lists.
func (d *Data) Locations() []Country {
	out := make([]Country, 0, len(d.countries))
	for _, c := range d.countries {
		areas := make([]Area, 0, len(c.Areas))
		for _, a := range c.Areas {
			areas = append(areas, Area{Name: a.Name, Cities: slices.Clone(a.Cities)})
		}
		out = append(out, Country{Name: c.Name, Areas: areas})
	}
	return out
}

func (d *Data) Brands() []string          { return slices.Clone(d.brands) }
func (d *Data) Classifications() []string { return slices.Clone(d.classifications) }
func (d *Data) Specialties() []string     { return slices.Clone(d.specialties) }

func (d *Data) DoctorNames() []string {
	out := make([]string, 0, len(d.doctors))
	for _, doc := range d.doctors {
		out = append(out, doc.Name)
	}
	return out
}

// Doctor looks a doctor up by exact name.
func (d *Data) Doctor(name string) (DoctorProfile, bool) {
	for _, doc := range d.doctors {
		if doc.Name == name {
			return DoctorProfile{
				Name:           doc.Name,
				Products1:      slices.Clone(doc.Products1),
				Products2:      slices.Clone(doc.Products2),
				Products3:      slices.Clone(doc.Products3),
				Country:        doc.Country,
				Area:           doc.Area,
				City:           doc.City,
				Address:        doc.Address,
				Brand:          doc.Brand,
				Classification: doc.Classification,
				Specialty:      doc.Specialty,
			}, true
		}
	}
	return DoctorProfile{}, false
}

func (d *Data) country(name string) (Country, bool) {
	for _, c := range d.countries {
		if c.Name == name {
			return c, true
		}
	}
	return Country{}, false
}
