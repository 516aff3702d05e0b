package service

import (
	"time"

	"github.com/mtlprog/duedate/internal/domain"
)

// progress is the state carried between the advancement stages.
type progress struct {
	base      time.Time // instant the remaining hours are counted from
	remaining int       // working hours not yet placed
	weeks     int       // whole weeks to add in the final placement
	days      int       // whole days to add in the final placement
	pastToday int       // working hours already elapsed on base's day
}

// advance moves a working instant forward by turnover working hours.
// start must come from Normalize; weekend or out-of-hours instants give
// meaningless results. Hours are consumed at week, then day, then hour
// granularity, so the cost does not depend on the size of the turnover.
func (c *Calculator) advance(start time.Time, turnover int) time.Time {
	p := progress{
		base:      start,
		remaining: turnover,
		pastToday: start.Hour() - c.calendar.StartHour,
	}

	p = rollWeek(c.calendar, p)
	p = rollDay(c.calendar, p)
	return place(p)
}

// rollWeek carries the turnover over the end of the current working week
// when it does not fit in what is left of it.
func rollWeek(cal domain.Calendar, p progress) progress {
	pastThisWeek := cal.DayIndex(p.base)*cal.HoursPerDay() + p.pastToday
	leftThisWeek := cal.HoursPerWeek() - pastThisWeek

	if p.remaining < leftThisWeek {
		return p
	}

	remaining := p.remaining - leftThisWeek

	p.weeks = remaining / cal.HoursPerWeek()
	p.remaining = remaining % cal.HoursPerWeek()
	p.base = withHour(nextMonday(p.base), cal.StartHour)
	p.pastToday = 0
	return p
}

// rollDay carries the turnover over the end of the current working day
// when it does not fit in what is left of it.
func rollDay(cal domain.Calendar, p progress) progress {
	leftToday := cal.HoursPerDay() - p.pastToday

	if p.remaining < leftToday {
		return p
	}

	remaining := p.remaining - leftToday

	p.days = remaining / cal.HoursPerDay()
	p.remaining = remaining % cal.HoursPerDay()
	p.base = withHour(p.base, cal.StartHour).AddDate(0, 0, 1)
	p.pastToday = 0
	return p
}

// place adds the carried whole weeks and days as calendar days, then the
// leftover hours.
func place(p progress) time.Time {
	days := p.weeks*7 + p.days
	return addHours(p.base.AddDate(0, 0, days), p.remaining)
}
