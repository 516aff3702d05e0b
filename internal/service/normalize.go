package service

import "time"

// Normalize maps t to the nearest working instant at or after it.
// Start and end of work both count as working time.
func (c *Calculator) Normalize(t time.Time) time.Time {
	cal := c.calendar

	switch {
	case !cal.IsWorkDay(t):
		return cal.StartOfWork(nextMonday(t))
	case t.Before(cal.StartOfWork(t)):
		return cal.StartOfWork(t)
	case t.After(cal.EndOfWork(t)) && t.Weekday() == time.Friday:
		return cal.StartOfWork(nextMonday(t))
	case t.After(cal.EndOfWork(t)):
		return cal.StartOfWork(t.AddDate(0, 0, 1))
	default:
		return t
	}
}

// nextMonday returns the Monday strictly after t, keeping the time of day.
func nextMonday(t time.Time) time.Time {
	days := (8 - int(t.Weekday())) % 7
	if days == 0 {
		days = 7
	}
	return t.AddDate(0, 0, days)
}

// withHour returns t with its hour replaced; minutes and below are kept.
func withHour(t time.Time, hour int) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), hour, t.Minute(), t.Second(), t.Nanosecond(), t.Location())
}

// addHours adds wall-clock hours to t.
func addHours(t time.Time, hours int) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour()+hours, t.Minute(), t.Second(), t.Nanosecond(), t.Location())
}
