// Package seed generates demo visits so a fresh console has data to chart.
package seed

import (
	"fmt"
	"math/rand"
	"time"

	"pharma_fieldops/internal/domain/entities"
	"pharma_fieldops/internal/domain/reference"
)

var clinics = []string{
	"عيادة الشفاء",
	"مركز الرعاية الطبي",
	"عيادة النور",
	"المركز التخصصي",
	"عيادة الأمل",
	"مستشفى السلام",
	"مركز الحياة الطبي",
	"عيادة الرحمة",
	"المركز الدولي",
	"مجمع العيادات الحديثة",
}

// Visits generates count visits over the 365 days before today. Each visit
// takes one of the doctor's allowed products per slot, 1 to 15 samples per
// product and a time between 08:00 and 19:59. The same seed yields the same
// visits for the same today.
func Visits(ref *reference.Data, count int, seed int64, today time.Time) []entities.Visit {
	names := ref.DoctorNames()
	if count <= 0 || len(names) == 0 {
		return []entities.Visit{}
	}
	rng := rand.New(rand.NewSource(seed))
	pick := func(list []string) string {
		if len(list) == 0 {
			return ""
		}
		return list[rng.Intn(len(list))]
	}

	out := make([]entities.Visit, 0, count)
	for i := 0; i < count; i++ {
		doctor, _ := ref.Doctor(names[rng.Intn(len(names))])
		date := today.AddDate(0, 0, -rng.Intn(365))
		out = append(out, entities.Visit{
			ID:             fmt.Sprintf("visit-%d", i+1),
			DoctorName:     doctor.Name,
			ClinicName:     pick(clinics),
			Product1:       pick(doctor.Products1),
			Product2:       pick(doctor.Products2),
			Product3:       pick(doctor.Products3),
			Samples1:       rng.Intn(15) + 1,
			Samples2:       rng.Intn(15) + 1,
			Samples3:       rng.Intn(15) + 1,
			VisitDate:      date.Format("2006-01-02"),
			VisitTime:      fmt.Sprintf("%02d:%02d", rng.Intn(12)+8, rng.Intn(60)),
			Country:        doctor.Country,
			Area:           doctor.Area,
			City:           doctor.City,
			Address:        doctor.Address,
			Brand:          doctor.Brand,
			Classification: doctor.Classification,
			Specialty:      doctor.Specialty,
		})
	}
	return out
}
