package usecase

import (
	"context"
	"errors"
	"slices"
	"strings"
	"sync"
	"time"

	"pharma_fieldops/internal/domain/calendar"
	"pharma_fieldops/internal/domain/entities"
	"pharma_fieldops/internal/usecase/interfaces"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrHolidayNotFound  = errors.New("holiday not found")
	ErrInvalidHolidayID = errors.New("invalid holiday id")
)

// ICalendarUseCase manages the work calendar: holidays, weekly days off and
// working hours, and the work-day counts derived from them.

type ICalendarUseCase interface {
	ListHolidays(ctx context.Context) ([]entities.Holiday, error)
	AddHoliday(ctx context.Context, h entities.Holiday) (entities.Holiday, error)
	UpdateHoliday(ctx context.Context, id string, h entities.Holiday) (entities.Holiday, error)
	DeleteHoliday(ctx context.Context, id string) error
	GetSettings(ctx context.Context) (entities.WorkSettings, error)
	UpdateSettings(ctx context.Context, s entities.WorkSettings) (entities.WorkSettings, error)
	Day(ctx context.Context, date string) (calendar.DayInfo, error)
	Month(ctx context.Context, month string) (calendar.MonthStats, error)
	ExpectedWorkDays(ctx context.Context, month string) (int, error)
}

type CalendarUseCase struct {
	mu    sync.Mutex
	store interfaces.IRecordStore
	log   *zap.Logger
}

var _ ICalendarUseCase = (*CalendarUseCase)(nil)

func NewCalendarUseCase(store interfaces.IRecordStore, log *zap.Logger) *CalendarUseCase {
	if log == nil {
		log = zap.NewNop()
	}
	return &CalendarUseCase{store: store, log: log}
}

func (u *CalendarUseCase) ListHolidays(ctx context.Context) ([]entities.Holiday, error) {
	return u.store.LoadHolidays(ctx)
}

func normalizeHoliday(h entities.Holiday) (entities.Holiday, error) {
	h.Name = strings.TrimSpace(h.Name)
	h.Date = strings.TrimSpace(h.Date)
	if h.Type == "" {
		h.Type = entities.HolidayTypeCustom
	}
	return h, calendar.ValidateHoliday(h)
}

func (u *CalendarUseCase) AddHoliday(ctx context.Context, h entities.Holiday) (entities.Holiday, error) {
	h, err := normalizeHoliday(h)
	if err != nil {
		return entities.Holiday{}, err
	}

	u.mu.Lock()
	defer u.mu.Unlock()

	holidays, err := u.store.LoadHolidays(ctx)
	if err != nil {
		return entities.Holiday{}, err
	}
	h.ID = uuid.NewString()
	if err := u.store.SaveHolidays(ctx, append(holidays, h)); err != nil {
		return entities.Holiday{}, err
	}
	u.log.Info("[calendar][usecase] holiday added", zap.String("id", h.ID), zap.String("date", h.Date))
	return h, nil
}

func (u *CalendarUseCase) UpdateHoliday(ctx context.Context, id string, h entities.Holiday) (entities.Holiday, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Holiday{}, ErrInvalidHolidayID
	}
	h, err := normalizeHoliday(h)
	if err != nil {
		return entities.Holiday{}, err
	}

	u.mu.Lock()
	defer u.mu.Unlock()

	holidays, err := u.store.LoadHolidays(ctx)
	if err != nil {
		return entities.Holiday{}, err
	}
	i := slices.IndexFunc(holidays, func(x entities.Holiday) bool { return x.ID == id })
	if i < 0 {
		return entities.Holiday{}, ErrHolidayNotFound
	}
	h.ID = id
	holidays[i] = h
	if err := u.store.SaveHolidays(ctx, holidays); err != nil {
		return entities.Holiday{}, err
	}
	return h, nil
}

func (u *CalendarUseCase) DeleteHoliday(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidHolidayID
	}

	u.mu.Lock()
	defer u.mu.Unlock()

	holidays, err := u.store.LoadHolidays(ctx)
	if err != nil {
		return err
	}
	i := slices.IndexFunc(holidays, func(x entities.Holiday) bool { return x.ID == id })
	if i < 0 {
		return ErrHolidayNotFound
	}
	if err := u.store.SaveHolidays(ctx, slices.Delete(holidays, i, i+1)); err != nil {
		return err
	}
	u.log.Info("[calendar][usecase] holiday deleted", zap.String("id", id))
	return nil
}

func (u *CalendarUseCase) GetSettings(ctx context.Context) (entities.WorkSettings, error) {
	return u.store.LoadWorkSettings(ctx)
}

// UpdateSettings replaces the settings. Weekdays are deduplicated and sorted.
func (u *CalendarUseCase) UpdateSettings(ctx context.Context, s entities.WorkSettings) (entities.WorkSettings, error) {
	s.WorkingHours.Start = strings.TrimSpace(s.WorkingHours.Start)
	s.WorkingHours.End = strings.TrimSpace(s.WorkingHours.End)
	if err := calendar.ValidateSettings(s); err != nil {
		return entities.WorkSettings{}, err
	}
	days := slices.Clone(s.WeeklyHolidays)
	slices.Sort(days)
	s.WeeklyHolidays = slices.Compact(days)
	if s.WeeklyHolidays == nil {
		s.WeeklyHolidays = []int{}
	}

	u.mu.Lock()
	defer u.mu.Unlock()

	if err := u.store.SaveWorkSettings(ctx, s); err != nil {
		return entities.WorkSettings{}, err
	}
	return s, nil
}

func (u *CalendarUseCase) load(ctx context.Context) (*calendar.Calendar, error) {
	holidays, err := u.store.LoadHolidays(ctx)
	if err != nil {
		return nil, err
	}
	settings, err := u.store.LoadWorkSettings(ctx)
	if err != nil {
		return nil, err
	}
	return calendar.New(holidays, settings), nil
}

func (u *CalendarUseCase) Day(ctx context.Context, date string) (calendar.DayInfo, error) {
	d, err := time.Parse(calendar.DateLayout, strings.TrimSpace(date))
	if err != nil {
		return calendar.DayInfo{}, calendar.ErrInvalidDate
	}
	cal, err := u.load(ctx)
	if err != nil {
		return calendar.DayInfo{}, err
	}
	return cal.HolidayInfo(d), nil
}

func (u *CalendarUseCase) Month(ctx context.Context, month string) (calendar.MonthStats, error) {
	month = strings.TrimSpace(month)
	if _, err := time.Parse(calendar.MonthLayout, month); err != nil {
		return calendar.MonthStats{}, calendar.ErrInvalidMonth
	}
	cal, err := u.load(ctx)
	if err != nil {
		return calendar.MonthStats{}, err
	}
	return cal.Month(month)
}

func (u *CalendarUseCase) ExpectedWorkDays(ctx context.Context, month string) (int, error) {
	stats, err := u.Month(ctx, month)
	if err != nil {
		return 0, err
	}
	return stats.WorkDays, nil
}
