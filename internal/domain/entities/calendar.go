package entities

type HolidayType string

const (
	HolidayTypeNational  HolidayType = "national"
	HolidayTypeReligious HolidayType = "religious"
	HolidayTypeCustom    HolidayType = "custom"
)

func (t HolidayType) Valid() bool {
	switch t {
	case HolidayTypeNational, HolidayTypeReligious, HolidayTypeCustom:
		return true
	}
	return false
}

// Holiday is a day off on the work calendar. Recurring holidays repeat every
// year on the same month and day.
type Holiday struct {
	ID        string      `json:"id"`
	Date      string      `json:"date"`
	Name      string      `json:"name"`
	Type      HolidayType `json:"type"`
	Recurring bool        `json:"recurring"`
}

type WorkingHours struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// WorkSettings holds the weekly days off (0 = Sunday ... 6 = Saturday) and the
// working hours of the field force.
type WorkSettings struct {
	WeeklyHolidays []int        `json:"weeklyHolidays"`
	WorkingHours   WorkingHours `json:"workingHours"`
}
