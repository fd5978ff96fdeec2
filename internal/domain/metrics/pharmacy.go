package metrics

import (
	"sort"
	"strings"
	"time"

	"pharma_fieldops/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// PharmacyFilter narrows the pharmacy dashboard. Empty fields do not
// constrain; the date range applies only when both bounds are set.
type PharmacyFilter struct {
	Start    string `json:"start"`
	End      string `json:"end"`
	Pharmacy string `json:"pharmacy"`
	Medicine string `json:"medicine"`
}

type PharmacyPerformance struct {
	Name        string          `json:"name"`
	Collections decimal.Decimal `json:"collections"`
	Orders      int             `json:"orders"`
}

type AmountPoint struct {
	Date   string          `json:"date"`
	Amount decimal.Decimal `json:"amount"`
}

type PharmacyDashboard struct {
	TotalCollections     decimal.Decimal       `json:"totalCollections"`
	TotalOrders          int                   `json:"totalOrders"`
	MedicineDistribution []KeyValue            `json:"medicineDistribution"`
	PharmacyPerformance  []PharmacyPerformance `json:"pharmacyPerformance"`
	CollectionTrends     []AmountPoint         `json:"collectionTrends"`
	Pharmacies           []string              `json:"pharmacies"`
	Medicines            []string              `json:"medicines"`
	Records              []entities.Collection `json:"records"`
}

// FilterCollections applies a PharmacyFilter, preserving input order.
func FilterCollections(records []entities.Collection, f PharmacyFilter) []entities.Collection {
	start, errStart := time.Parse("2006-01-02", f.Start)
	end, errEnd := time.Parse("2006-01-02", f.End)
	withDates := f.Start != "" && f.End != "" && errStart == nil && errEnd == nil

	out := make([]entities.Collection, 0, len(records))
	for _, r := range records {
		if f.Pharmacy != "" && r.Pharmacy != f.Pharmacy {
			continue
		}
		if f.Medicine != "" && r.Medicine != f.Medicine {
			continue
		}
		if withDates {
			d, err := time.Parse("2006-01-02", r.Date)
			if err != nil || d.Before(start) || d.After(end) {
				continue
			}
		}
		out = append(out, r)
	}
	return out
}

// BuildPharmacyDashboard aggregates collected amounts and ordered quantities
// of the records matching f.
func BuildPharmacyDashboard(records []entities.Collection, f PharmacyFilter) PharmacyDashboard {
	filtered := FilterCollections(records, f)

	d := PharmacyDashboard{
		TotalCollections: decimal.Zero,
		Pharmacies:       []string{},
		Medicines:        []string{},
		Records:          filtered,
	}
	medicines := newCounter()
	perfIndex := map[string]int{}
	trends := map[string]decimal.Decimal{}
	seenMedicine := map[string]struct{}{}

	for _, r := range filtered {
		i, ok := perfIndex[r.Pharmacy]
		if !ok {
			i = len(d.PharmacyPerformance)
			perfIndex[r.Pharmacy] = i
			d.PharmacyPerformance = append(d.PharmacyPerformance, PharmacyPerformance{Name: r.Pharmacy, Collections: decimal.Zero})
			d.Pharmacies = append(d.Pharmacies, r.Pharmacy)
		}
		if r.Medicine != "" {
			if _, ok := seenMedicine[r.Medicine]; !ok {
				seenMedicine[r.Medicine] = struct{}{}
				d.Medicines = append(d.Medicines, r.Medicine)
			}
		}

		switch r.Type {
		case entities.CollectionTypeCollection:
			amount := r.AmountOrZero()
			d.TotalCollections = d.TotalCollections.Add(amount)
			d.PharmacyPerformance[i].Collections = d.PharmacyPerformance[i].Collections.Add(amount)
			trend, ok := trends[r.Date]
			if !ok {
				trend = decimal.Zero
			}
			trends[r.Date] = trend.Add(amount)
		case entities.CollectionTypeOrder:
			d.TotalOrders += r.Quantity
			d.PharmacyPerformance[i].Orders += r.Quantity
			if r.Medicine != "" && r.Quantity > 0 {
				medicines.add(r.Medicine, r.Quantity)
			}
		}
	}

	d.MedicineDistribution = medicines.descending()
	d.CollectionTrends = make([]AmountPoint, 0, len(trends))
	for date, amount := range trends {
		d.CollectionTrends = append(d.CollectionTrends, AmountPoint{Date: date, Amount: amount})
	}
	sort.Slice(d.CollectionTrends, func(i, j int) bool { return d.CollectionTrends[i].Date < d.CollectionTrends[j].Date })
	if d.PharmacyPerformance == nil {
		d.PharmacyPerformance = []PharmacyPerformance{}
	}
	return d
}

// PharmacyMonthlyReport summarises one month of pharmacy activity.
type PharmacyMonthlyReport struct {
	Month               string                `json:"month"`
	PharmacyVisits      int                   `json:"pharmacyVisits"`
	TotalCollections    decimal.Decimal       `json:"totalCollections"`
	ApprovedCollections decimal.Decimal       `json:"approvedCollections"`
	PendingCollections  decimal.Decimal       `json:"pendingCollections"`
	MedicineQuantities  []KeyValue            `json:"medicineQuantities"`
	Collections         []entities.Collection `json:"collections"`
	Orders              []entities.Collection `json:"orders"`
}

func BuildPharmacyMonthlyReport(records []entities.Collection, month string) (PharmacyMonthlyReport, error) {
	if _, err := time.Parse(MonthLayout, month); err != nil {
		return PharmacyMonthlyReport{}, ErrInvalidMonth
	}
	prefix := month + "-"

	r := PharmacyMonthlyReport{
		Month:               month,
		TotalCollections:    decimal.Zero,
		ApprovedCollections: decimal.Zero,
		PendingCollections:  decimal.Zero,
		Collections:         []entities.Collection{},
		Orders:              []entities.Collection{},
	}
	pharmacies := map[string]struct{}{}
	medicines := newCounter()
	for _, c := range records {
		if !strings.HasPrefix(c.Date, prefix) {
			continue
		}
		pharmacies[c.Pharmacy] = struct{}{}
		switch c.Type {
		case entities.CollectionTypeCollection:
			amount := c.AmountOrZero()
			r.TotalCollections = r.TotalCollections.Add(amount)
			switch c.Status {
			case entities.StatusApproved:
				r.ApprovedCollections = r.ApprovedCollections.Add(amount)
			case entities.StatusPending:
				r.PendingCollections = r.PendingCollections.Add(amount)
			}
			r.Collections = append(r.Collections, c)
		case entities.CollectionTypeOrder:
			if c.Medicine != "" && c.Quantity > 0 {
				medicines.add(c.Medicine, c.Quantity)
			}
			r.Orders = append(r.Orders, c)
		}
	}
	r.PharmacyVisits = len(pharmacies)
	r.MedicineQuantities = medicines.descending()
	return r, nil
}
