package request

import (
	"strings"

	"pharma_fieldops/internal/domain/entities"
)

type HolidayRequest struct {
	Date      string `json:"date" binding:"required"`
	Name      string `json:"name" binding:"required"`
	Type      string `json:"type"`
	Recurring bool   `json:"recurring"`
}

// ToEntity defaults an empty type to custom, the type the console uses for
// holidays added by hand.
func (r HolidayRequest) ToEntity() entities.Holiday {
	t := entities.HolidayType(strings.ToLower(strings.TrimSpace(r.Type)))
	if t == "" {
		t = entities.HolidayTypeCustom
	}
	return entities.Holiday{
		Date:      strings.TrimSpace(r.Date),
		Name:      strings.TrimSpace(r.Name),
		Type:      t,
		Recurring: r.Recurring,
	}
}

type WorkingHoursRequest struct {
	Start string `json:"start" binding:"required"`
	End   string `json:"end" binding:"required"`
}

type WorkSettingsRequest struct {
	WeeklyHolidays []int               `json:"weeklyHolidays"`
	WorkingHours   WorkingHoursRequest `json:"workingHours" binding:"required"`
}

func (r WorkSettingsRequest) ToEntity() entities.WorkSettings {
	days := r.WeeklyHolidays
	if days == nil {
		days = []int{}
	}
	return entities.WorkSettings{
		WeeklyHolidays: days,
		WorkingHours: entities.WorkingHours{
			Start: strings.TrimSpace(r.WorkingHours.Start),
			End:   strings.TrimSpace(r.WorkingHours.End),
		},
	}
}
