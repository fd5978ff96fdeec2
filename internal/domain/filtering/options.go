package filtering

import (
	"pharma_fieldops/internal/domain/entities"
	"pharma_fieldops/internal/domain/reference"
)

type ProductOptions struct {
	Products1 []string `json:"products1"`
	Products2 []string `json:"products2"`
	Products3 []string `json:"products3"`
}

// Options are the choices the dependent selectors may offer for a state.
type Options struct {
	Areas             []string       `json:"areas"`
	Cities            []string       `json:"cities"`
	AvailableProducts ProductOptions `json:"availableProducts"`
}

// DependentOptions computes the option lists that depend on other fields:
// areas of the chosen country, cities of the chosen country and area, and the
// chosen doctor's products. Without a doctor the products fall back to the
// distinct values found in records, per slot and in first-seen order.
func DependentOptions(s State, ref *reference.Data, records []entities.Visit) Options {
	opts := Options{Areas: []string{}, Cities: []string{}}
	if s.Country != "" {
		opts.Areas = ref.Areas(s.Country)
		if s.Area != "" {
			opts.Cities = ref.Cities(s.Country, s.Area)
		}
	}

	if s.DoctorName == "" {
		opts.AvailableProducts = DistinctProducts(records)
		return opts
	}
	profile, ok := ref.Doctor(s.DoctorName)
	if !ok {
		opts.AvailableProducts = ProductOptions{Products1: []string{}, Products2: []string{}, Products3: []string{}}
		return opts
	}
	opts.AvailableProducts = ProductOptions{
		Products1: profile.Products1,
		Products2: profile.Products2,
		Products3: profile.Products3,
	}
	return opts
}

// DistinctProducts lists the products seen in each slot across records.
func DistinctProducts(records []entities.Visit) ProductOptions {
	return ProductOptions{
		Products1: distinct(records, func(v entities.Visit) string { return v.Product1 }),
		Products2: distinct(records, func(v entities.Visit) string { return v.Product2 }),
		Products3: distinct(records, func(v entities.Visit) string { return v.Product3 }),
	}
}

// DistinctValues lists the distinct values of one visit attribute in
// first-seen order.
func DistinctValues(records []entities.Visit, field func(entities.Visit) string) []string {
	return distinct(records, field)
}

func distinct(records []entities.Visit, field func(entities.Visit) string) []string {
	seen := make(map[string]struct{}, len(records))
	out := make([]string, 0)
	for _, r := range records {
		v := field(r)
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}
