// Package service implements due date calculation on top of a working calendar.
package service

import (
	"log/slog"
	"time"

	"github.com/mtlprog/duedate/internal/domain"
)

// Calculator computes due dates for submitted issues.
// It holds only an immutable calendar and is safe for concurrent use.
type Calculator struct {
	calendar domain.Calendar
}

// NewCalculator creates a new Calculator for the given calendar.
// The calendar is expected to be valid; see domain.Calendar.Validate.
func NewCalculator(calendar domain.Calendar) *Calculator {
	return &Calculator{
		calendar: calendar,
	}
}

// Calendar returns the calendar the calculator works with.
func (c *Calculator) Calendar() domain.Calendar {
	return c.calendar
}

// CalculateDueDate returns the instant at which the issue described by req
// is due. Submit times outside working hours are first moved to the next
// working instant, then the turnover is consumed week by week, day by day
// and finally hour by hour.
func (c *Calculator) CalculateDueDate(req *domain.SubmissionRequest) (time.Time, error) {
	if err := ValidateRequest(req); err != nil {
		return time.Time{}, err
	}

	start := c.Normalize(req.SubmitTime)
	due := c.advance(start, req.TurnoverHours)

	slog.Debug("due date calculated",
		"submit_time", req.SubmitTime,
		"normalized_submit_time", start,
		"turnover_hours", req.TurnoverHours,
		"due_date", due,
	)

	return due, nil
}

var defaultCalculator = NewCalculator(domain.DefaultCalendar())

// CalculateDueDate computes a due date on the default Monday-Friday,
// 09:00-17:00 calendar.
func CalculateDueDate(req *domain.SubmissionRequest) (time.Time, error) {
	return defaultCalculator.CalculateDueDate(req)
}
