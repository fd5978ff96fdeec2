package metrics

import (
	"errors"
	"math"
	"strings"
	"time"

	"pharma_fieldops/internal/domain/entities"
)

const (
	MonthLayout = "2006-01"

	// TargetDailyVisits is the number of doctor visits expected per work day.
	TargetDailyVisits = 5
)

var ErrInvalidMonth = errors.New("month must use the yyyy-MM layout")

// MonthlyVisitReport is the representative's monthly KPI sheet.
type MonthlyVisitReport struct {
	Month                string  `json:"month"`
	TotalDoctors         int     `json:"totalDoctors"`
	TargetDailyVisits    int     `json:"targetDailyVisits"`
	ExpectedWorkDays     int     `json:"expectedWorkDays"`
	ActualWorkDays       int     `json:"actualWorkDays"`
	TargetVisits         int     `json:"targetVisits"`
	ActualVisits         int     `json:"actualVisits"`
	ClassAVisits         int     `json:"classAVisits"`
	ClassBVisits         int     `json:"classBVisits"`
	DailyAverage         float64 `json:"dailyAverage"`
	MissedVisits         int     `json:"missedVisits"`
	DoctorsWithoutVisits int     `json:"doctorsWithoutVisits"`
	DaysWithoutReport    int     `json:"daysWithoutReport"`
	VisitCompletion      float64 `json:"visitCompletion"`
	DoctorCoverage       float64 `json:"doctorCoverage"`
}

// BuildMonthlyVisitReport computes the KPIs of month (yyyy-MM) from the full
// visit history. expectedWorkDays comes from the work calendar.
func BuildMonthlyVisitReport(all []entities.Visit, month string, expectedWorkDays int) (MonthlyVisitReport, error) {
	if _, err := time.Parse(MonthLayout, month); err != nil {
		return MonthlyVisitReport{}, ErrInvalidMonth
	}
	prefix := month + "-"

	doctors := newCounter()
	for _, v := range all {
		doctors.add(v.DoctorName, 0)
	}

	visited := map[string]struct{}{}
	days := map[string]struct{}{}
	r := MonthlyVisitReport{
		Month:             month,
		TotalDoctors:      len(doctors.rows),
		TargetDailyVisits: TargetDailyVisits,
		ExpectedWorkDays:  expectedWorkDays,
		TargetVisits:      expectedWorkDays * TargetDailyVisits,
	}
	for _, v := range all {
		if !strings.HasPrefix(v.VisitDate, prefix) {
			continue
		}
		r.ActualVisits++
		visited[v.DoctorName] = struct{}{}
		days[v.VisitDate] = struct{}{}
		switch v.Classification {
		case "Class A":
			r.ClassAVisits++
		case "Class B":
			r.ClassBVisits++
		}
	}

	r.ActualWorkDays = len(days)
	r.DoctorsWithoutVisits = r.TotalDoctors - len(visited)
	r.MissedVisits = max(r.TargetVisits-r.ActualVisits, 0)
	r.DaysWithoutReport = max(r.ExpectedWorkDays-r.ActualWorkDays, 0)
	if r.ActualWorkDays > 0 {
		r.DailyAverage = round1(float64(r.ActualVisits) / float64(r.ActualWorkDays))
	}
	if r.TargetVisits > 0 {
		r.VisitCompletion = round1(float64(r.ActualVisits) / float64(r.TargetVisits) * 100)
	}
	if r.TotalDoctors > 0 {
		r.DoctorCoverage = round1(float64(r.TotalDoctors-r.DoctorsWithoutVisits) / float64(r.TotalDoctors) * 100)
	}
	return r, nil
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
