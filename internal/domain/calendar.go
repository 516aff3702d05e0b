package domain

import "time"

// Default working day boundaries.
const (
	DefaultStartHour = 9
	DefaultEndHour   = 17

	// WorkDaysPerWeek is fixed: Monday through Friday.
	WorkDaysPerWeek = 5
)

// Calendar describes the working hours of a five-day working week.
// It is a value type; copies are independent and safe to share.
type Calendar struct {
	StartHour int
	EndHour   int
}

// DefaultCalendar returns the Monday-Friday, 09:00-17:00 calendar.
func DefaultCalendar() Calendar {
	return Calendar{
		StartHour: DefaultStartHour,
		EndHour:   DefaultEndHour,
	}
}

// Validate checks that the calendar describes a non-empty working day.
func (c Calendar) Validate() error {
	if c.StartHour < 0 || c.StartHour > 23 {
		return invalidCalendarError("start hour %d out of range", c.StartHour)
	}
	if c.EndHour < 1 || c.EndHour > 24 {
		return invalidCalendarError("end hour %d out of range", c.EndHour)
	}
	if c.StartHour >= c.EndHour {
		return invalidCalendarError("start hour %d must be before end hour %d", c.StartHour, c.EndHour)
	}
	return nil
}

// HoursPerDay returns the number of working hours in one working day.
func (c Calendar) HoursPerDay() int {
	return c.EndHour - c.StartHour
}

// HoursPerWeek returns the number of working hours in one working week.
func (c Calendar) HoursPerWeek() int {
	return WorkDaysPerWeek * c.HoursPerDay()
}

// IsWorkDay returns true if t falls on Monday through Friday.
func (c Calendar) IsWorkDay(t time.Time) bool {
	day := t.Weekday()
	return day >= time.Monday && day <= time.Friday
}

// DayIndex returns the zero-based position of t's weekday in the working
// week (Monday=0 ... Friday=4). Weekend days return values past the week.
func (c Calendar) DayIndex(t time.Time) int {
	return (int(t.Weekday()) + 6) % 7
}

// StartOfWork returns t's date at the start of the working day.
func (c Calendar) StartOfWork(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), c.StartHour, 0, 0, 0, t.Location())
}

// EndOfWork returns t's date at the end of the working day.
func (c Calendar) EndOfWork(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), c.EndHour, 0, 0, 0, t.Location())
}

// IsWorkingInstant reports whether t lies within [start, end] of a working day.
func (c Calendar) IsWorkingInstant(t time.Time) bool {
	if !c.IsWorkDay(t) {
		return false
	}
	return !t.Before(c.StartOfWork(t)) && !t.After(c.EndOfWork(t))
}
