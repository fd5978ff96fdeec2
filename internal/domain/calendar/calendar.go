// Package calendar answers work-day questions from the configured holidays and
// weekly days off.
package calendar

import (
	"errors"
	"strings"
	"time"

	"pharma_fieldops/internal/domain/entities"
)

const (
	DateLayout  = "2006-01-02"
	MonthLayout = "2006-01"
	HourLayout  = "15:04"
)

// HolidayTypeWeekly marks a day that is off only because of its weekday.
const HolidayTypeWeekly entities.HolidayType = "weekly"

var (
	ErrInvalidDate        = errors.New("date must use the yyyy-MM-dd layout")
	ErrInvalidMonth       = errors.New("month must use the yyyy-MM layout")
	ErrInvalidHolidayName = errors.New("holiday name is required")
	ErrInvalidHolidayType = errors.New("holiday type must be national, religious or custom")
	ErrInvalidWeekday     = errors.New("weekly holidays must be weekdays between 0 and 6")
	ErrInvalidHours       = errors.New("working hours must use HH:mm with start before end")
)

var weekdayNames = [7]string{"الأحد", "الاثنين", "الثلاثاء", "الأربعاء", "الخميس", "الجمعة", "السبت"}

// WeekdayName returns the Arabic name of a weekday (0 = Sunday).
func WeekdayName(d time.Weekday) string {
	return weekdayNames[d]
}

// DefaultHolidays is the calendar shipped before any holiday is saved.
func DefaultHolidays() []entities.Holiday {
	return []entities.Holiday{
		{ID: "1", Date: "2024-09-23", Name: "اليوم الوطني السعودي", Type: entities.HolidayTypeNational, Recurring: true},
		{ID: "2", Date: "2024-04-10", Name: "عيد الفطر", Type: entities.HolidayTypeReligious, Recurring: false},
		{ID: "3", Date: "2024-06-16", Name: "عيد الأضحى", Type: entities.HolidayTypeReligious, Recurring: false},
	}
}

// DefaultSettings takes Friday off and works 08:00 to 17:00.
func DefaultSettings() entities.WorkSettings {
	return entities.WorkSettings{
		WeeklyHolidays: []int{int(time.Friday)},
		WorkingHours:   entities.WorkingHours{Start: "08:00", End: "17:00"},
	}
}

// ValidateHoliday checks a holiday before it is stored. The id is not checked.
func ValidateHoliday(h entities.Holiday) error {
	if _, err := time.Parse(DateLayout, h.Date); err != nil {
		return ErrInvalidDate
	}
	if strings.TrimSpace(h.Name) == "" {
		return ErrInvalidHolidayName
	}
	if !h.Type.Valid() {
		return ErrInvalidHolidayType
	}
	return nil
}

// ValidateSettings checks weekdays and working hours.
func ValidateSettings(s entities.WorkSettings) error {
	for _, d := range s.WeeklyHolidays {
		if d < 0 || d > 6 {
			return ErrInvalidWeekday
		}
	}
	start, err := time.Parse(HourLayout, s.WorkingHours.Start)
	if err != nil {
		return ErrInvalidHours
	}
	end, err := time.Parse(HourLayout, s.WorkingHours.End)
	if err != nil || !start.Before(end) {
		return ErrInvalidHours
	}
	return nil
}

// Calendar is a read-only view over holidays and settings.
type Calendar struct {
	holidays []entities.Holiday
	weekly   map[time.Weekday]struct{}
}

func New(holidays []entities.Holiday, settings entities.WorkSettings) *Calendar {
	weekly := make(map[time.Weekday]struct{}, len(settings.WeeklyHolidays))
	for _, d := range settings.WeeklyHolidays {
		weekly[time.Weekday(d)] = struct{}{}
	}
	return &Calendar{holidays: holidays, weekly: weekly}
}

// DayInfo describes why a day is off.
type DayInfo struct {
	Date      string               `json:"date"`
	Weekday   int                  `json:"weekday"`
	IsHoliday bool                 `json:"isHoliday"`
	Name      string               `json:"name,omitempty"`
	Type      entities.HolidayType `json:"type,omitempty"`
	HolidayID string               `json:"holidayId,omitempty"`
}

// HolidayInfo reports whether day is off. A configured holiday takes
// precedence over the weekly day off; recurring holidays match the month and
// day of any year.
func (c *Calendar) HolidayInfo(day time.Time) DayInfo {
	info := DayInfo{Date: day.Format(DateLayout), Weekday: int(day.Weekday())}
	if h, ok := c.findHoliday(day); ok {
		info.IsHoliday = true
		info.Name = h.Name
		info.Type = h.Type
		info.HolidayID = h.ID
		return info
	}
	if _, ok := c.weekly[day.Weekday()]; ok {
		info.IsHoliday = true
		info.Name = "عطلة " + WeekdayName(day.Weekday())
		info.Type = HolidayTypeWeekly
	}
	return info
}

func (c *Calendar) IsHoliday(day time.Time) bool {
	return c.HolidayInfo(day).IsHoliday
}

func (c *Calendar) findHoliday(day time.Time) (entities.Holiday, bool) {
	for _, h := range c.holidays {
		d, err := time.Parse(DateLayout, h.Date)
		if err != nil {
			continue
		}
		if d.Month() != day.Month() || d.Day() != day.Day() {
			continue
		}
		if h.Recurring || d.Year() == day.Year() {
			return h, true
		}
	}
	return entities.Holiday{}, false
}

// MonthStats counts the work days and days off of one month.
type MonthStats struct {
	Month       string    `json:"month"`
	WorkDays    int       `json:"workDays"`
	HolidayDays int       `json:"holidayDays"`
	TotalDays   int       `json:"totalDays"`
	Days        []DayInfo `json:"days"`
}

// Month computes the stats of month (yyyy-MM).
func (c *Calendar) Month(month string) (MonthStats, error) {
	first, err := time.Parse(MonthLayout, month)
	if err != nil {
		return MonthStats{}, ErrInvalidMonth
	}
	stats := MonthStats{Month: month}
	for d := first; d.Month() == first.Month(); d = d.AddDate(0, 0, 1) {
		info := c.HolidayInfo(d)
		if info.IsHoliday {
			stats.HolidayDays++
		} else {
			stats.WorkDays++
		}
		stats.Days = append(stats.Days, info)
	}
	stats.TotalDays = len(stats.Days)
	return stats, nil
}
